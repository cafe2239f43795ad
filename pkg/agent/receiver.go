package agent

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"stockwatch/internal/domain/constants"

	"github.com/pkg/errors"
)

// pushPayload is the wire shape the dispatcher encrypts into each message.
type pushPayload struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	ProductID string `json:"productId"`
}

// Receiver turns decrypted push payloads into notifications and routes
// notification clicks to the product page.
type Receiver struct {
	center  NotificationCenter
	windows WindowRegistry
}

// NewReceiver creates a receiver over the given notification and window surfaces.
func NewReceiver(center NotificationCenter, windows WindowRegistry) *Receiver {
	return &Receiver{
		center:  center,
		windows: windows,
	}
}

// HandlePush processes one decrypted push payload. An empty payload is
// dropped silently: it carries nothing worth interrupting the visitor for.
func (r *Receiver) HandlePush(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}

	var push pushPayload
	if err := json.Unmarshal(payload, &push); err != nil {
		return errors.Wrap(err, "failed to parse push payload")
	}
	if push.ProductID == "" {
		return errors.New("push payload carries no product id")
	}

	return r.center.Show(ctx, &Notification{
		Title:     push.Title,
		Text:      push.Text,
		ProductID: push.ProductID,
	})
}

// HandleClick dismisses the clicked notification and routes to the product
// page. A window already showing that page is focused; otherwise a new one
// opens. Exactly one of the two happens.
func (r *Receiver) HandleClick(ctx context.Context, productID string) error {
	if err := r.center.Dismiss(ctx); err != nil {
		return errors.Wrap(err, "failed to dismiss notification")
	}

	if productID == "" {
		return errors.New("click carries no product id")
	}

	target := ProductURL(productID)

	windows, err := r.windows.Windows(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to enumerate windows")
	}

	for _, window := range windows {
		if matchesProductPage(window.URL(), target) {
			return window.Focus(ctx)
		}
	}

	return r.windows.Open(ctx, target)
}

// ProductURL builds the storefront path for a product page.
func ProductURL(productID string) string {
	return constants.ProductPathPrefix + productID
}

// matchesProductPage reports whether the window URL shows exactly the target
// product page, ignoring query strings and fragments. A path that merely
// ends with the product segment (a nested route) is a different page.
func matchesProductPage(windowURL, target string) bool {
	parsed, err := url.Parse(windowURL)
	if err != nil {
		return false
	}

	return strings.TrimSuffix(parsed.Path, "/") == target
}
