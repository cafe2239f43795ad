package service

import (
	"context"
)

// StaleEndpointSink surfaces push endpoints the push service reported as
// permanently dead (404/410). An external collaborator drains the sink and
// removes the stale subscriptions out of band; this subsystem only flags
// them, exactly once per dispatch cycle.
type StaleEndpointSink interface {
	RecordStale(ctx context.Context, endpoint string) error
}
