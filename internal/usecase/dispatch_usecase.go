package usecase

import (
	"context"
)

// DispatchSummary tallies the outcome of one dispatch cycle for a product.
// Sent + Stale + Rejected + Remaining equals the number of pending requests
// the cycle started with.
type DispatchSummary struct {
	ProductID string `json:"product_id"`
	Sent      int    `json:"sent"`      // Delivered and marked sent.
	Stale     int    `json:"stale"`     // Endpoint gone; flagged stale and marked sent.
	Rejected  int    `json:"rejected"`  // Push service refused the message; marked sent.
	Remaining int    `json:"remaining"` // Transient failures that exhausted this cycle's retries; still pending.
}

// DispatchUsecase defines the interface for push dispatch use cases
type DispatchUsecase interface {
	// DispatchProduct delivers a notification to every pending request for
	// the product. One failing subscription never blocks the rest.
	DispatchProduct(ctx context.Context, productID string) (*DispatchSummary, error)
}
