// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a start or stop hook may take before the
// application gives up on graceful shutdown.
const DefaultTimeout = 10 * time.Second
