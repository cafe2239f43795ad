package agent

import (
	"context"

	"stockwatch/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedPlatform is returned when the environment cannot deliver push.
	ErrUnsupportedPlatform = errors.New("push notifications are not supported on this platform")

	// ErrPermissionDenied is returned when the visitor refused notifications.
	ErrPermissionDenied = errors.New("notification permission was denied")
)

// AlertAPI is the backend surface the registrar talks to.
type AlertAPI interface {
	// PublicKey fetches the application server key to subscribe with.
	PublicKey(ctx context.Context) (string, error)

	// RegisterAlert files a stock notification request for the product.
	RegisterAlert(ctx context.Context, productID string, subscription *entity.PushSubscription, device entity.DeviceInfo) error

	// UnregisterAlert revokes every request bound to the endpoint.
	UnregisterAlert(ctx context.Context, endpoint string) error
}

// Registrar drives the opt-in flow: capability check, permission prompt,
// subscription creation and backend registration.
type Registrar struct {
	platform Platform
	api      AlertAPI
}

// NewRegistrar creates a registrar over the given platform and backend.
func NewRegistrar(platform Platform, api AlertAPI) *Registrar {
	return &Registrar{
		platform: platform,
		api:      api,
	}
}

// RegisterForRestock runs the full opt-in flow for one product.
//
// The permission prompt only appears when the state is still prompt; a prior
// denial fails immediately so the visitor is never nagged. The subscription
// is created before the backend call, so a backend failure leaves the browser
// subscription reusable on retry.
func (r *Registrar) RegisterForRestock(ctx context.Context, productID string) (*entity.PushSubscription, error) {
	if !r.platform.PushSupported() {
		return nil, ErrUnsupportedPlatform
	}

	permission := r.platform.Permission()
	if permission == PermissionPrompt {
		requested, err := r.platform.RequestPermission(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to request notification permission")
		}
		permission = requested
	}
	if permission != PermissionGranted {
		return nil, ErrPermissionDenied
	}

	serverKey, err := r.api.PublicKey(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch application server key")
	}

	subscription, err := r.platform.Subscribe(ctx, serverKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create push subscription")
	}
	if err := subscription.Validate(); err != nil {
		return nil, err
	}

	if err := r.api.RegisterAlert(ctx, productID, subscription, r.platform.DeviceInfo()); err != nil {
		return nil, errors.Wrap(err, "failed to register stock alert")
	}

	return subscription, nil
}

// Unregister revokes the opt-in: backend first, then the local subscription.
func (r *Registrar) Unregister(ctx context.Context, subscription *entity.PushSubscription) error {
	if err := subscription.Validate(); err != nil {
		return err
	}

	if err := r.api.UnregisterAlert(ctx, subscription.Endpoint); err != nil {
		return errors.Wrap(err, "failed to unregister stock alert")
	}

	return r.platform.Unsubscribe(ctx)
}
