// Package agent implements the client-side half of the stock notification
// pipeline: registering a push subscription with the backend and routing an
// incoming notification to the right product page. The browser surface is
// abstracted behind small interfaces so the flows stay testable.
package agent

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// PermissionState mirrors the Notification permission states a browser exposes.
type PermissionState string

const (
	// PermissionPrompt means the visitor has not been asked yet.
	PermissionPrompt PermissionState = "prompt"
	// PermissionGranted means notifications may be shown.
	PermissionGranted PermissionState = "granted"
	// PermissionDenied means the visitor refused; never ask again.
	PermissionDenied PermissionState = "denied"
)

// Platform is the push capability surface of the host environment.
type Platform interface {
	// PushSupported reports whether the environment can deliver push at all.
	PushSupported() bool

	// Permission returns the current notification permission without prompting.
	Permission() PermissionState

	// RequestPermission prompts the visitor and returns the resulting state.
	RequestPermission(ctx context.Context) (PermissionState, error)

	// Subscribe creates (or returns the existing) push subscription bound to
	// the given application server key.
	Subscribe(ctx context.Context, applicationServerKey string) (*entity.PushSubscription, error)

	// Unsubscribe tears down the current push subscription, if any.
	Unsubscribe(ctx context.Context) error

	// DeviceInfo describes the host for diagnostic metadata.
	DeviceInfo() entity.DeviceInfo
}

// Notification is what the receiver asks the platform to display.
type Notification struct {
	Title     string
	Text      string
	ProductID string
}

// NotificationCenter displays notifications to the visitor.
type NotificationCenter interface {
	// Show renders a visible notification.
	Show(ctx context.Context, notification *Notification) error

	// Dismiss closes the notification whose click is being handled.
	Dismiss(ctx context.Context) error
}

// Window is one open storefront view.
type Window interface {
	// URL returns the window's current location.
	URL() string

	// Focus brings the window to the foreground.
	Focus(ctx context.Context) error

	// Navigate points the window at a new location.
	Navigate(ctx context.Context, url string) error
}

// WindowRegistry enumerates and opens storefront windows.
type WindowRegistry interface {
	// Windows lists the currently open storefront windows.
	Windows(ctx context.Context) ([]Window, error)

	// Open creates a new window at the given URL.
	Open(ctx context.Context, url string) error
}
