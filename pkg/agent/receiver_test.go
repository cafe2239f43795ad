package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationCenter struct {
	shown     []*Notification
	dismissed int
}

func (c *fakeNotificationCenter) Show(ctx context.Context, notification *Notification) error {
	c.shown = append(c.shown, notification)

	return nil
}

func (c *fakeNotificationCenter) Dismiss(ctx context.Context) error {
	c.dismissed++

	return nil
}

type fakeWindow struct {
	url       string
	focused   bool
	navigated string
}

func (w *fakeWindow) URL() string { return w.url }

func (w *fakeWindow) Focus(ctx context.Context) error {
	w.focused = true

	return nil
}

func (w *fakeWindow) Navigate(ctx context.Context, url string) error {
	w.navigated = url

	return nil
}

type fakeWindowRegistry struct {
	windows []Window
	opened  []string
}

func (r *fakeWindowRegistry) Windows(ctx context.Context) ([]Window, error) {
	return r.windows, nil
}

func (r *fakeWindowRegistry) Open(ctx context.Context, url string) error {
	r.opened = append(r.opened, url)

	return nil
}

func TestReceiver_HandlePush_ShowsNotification(t *testing.T) {
	center := &fakeNotificationCenter{}
	receiver := NewReceiver(center, &fakeWindowRegistry{})

	payload := []byte(`{"title":"NomNom 雜貨舖","text":"您關注的商品已補貨","productId":"prod-42"}`)
	err := receiver.HandlePush(context.Background(), payload)

	require.NoError(t, err)
	require.Len(t, center.shown, 1)
	assert.Equal(t, "prod-42", center.shown[0].ProductID)
	assert.Equal(t, "您關注的商品已補貨", center.shown[0].Text)
}

func TestReceiver_HandlePush_EmptyPayloadIsSilent(t *testing.T) {
	center := &fakeNotificationCenter{}
	receiver := NewReceiver(center, &fakeWindowRegistry{})

	err := receiver.HandlePush(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, center.shown)
}

func TestReceiver_HandlePush_MalformedPayload(t *testing.T) {
	receiver := NewReceiver(&fakeNotificationCenter{}, &fakeWindowRegistry{})

	err := receiver.HandlePush(context.Background(), []byte("not-json"))

	require.Error(t, err)
}

func TestReceiver_HandlePush_MissingProductID(t *testing.T) {
	center := &fakeNotificationCenter{}
	receiver := NewReceiver(center, &fakeWindowRegistry{})

	err := receiver.HandlePush(context.Background(), []byte(`{"text":"hello"}`))

	require.Error(t, err)
	assert.Empty(t, center.shown)
}

func TestReceiver_HandleClick_FocusesExistingWindow(t *testing.T) {
	existing := &fakeWindow{url: "https://shop.example.com/products/prod-42?ref=push"}
	other := &fakeWindow{url: "https://shop.example.com/cart"}
	registry := &fakeWindowRegistry{windows: []Window{other, existing}}
	center := &fakeNotificationCenter{}
	receiver := NewReceiver(center, registry)

	err := receiver.HandleClick(context.Background(), "prod-42")

	require.NoError(t, err)
	assert.True(t, existing.focused)
	assert.False(t, other.focused)
	assert.Empty(t, registry.opened, "an existing product window must be focused, not duplicated")
	assert.Equal(t, 1, center.dismissed, "the clicked notification must be dismissed")
}

func TestReceiver_HandleClick_NestedPathIsNotTheProductPage(t *testing.T) {
	// Ends in /products/prod-42 but shows a different page.
	nested := &fakeWindow{url: "https://shop.example.com/collections/summer/products/prod-42"}
	registry := &fakeWindowRegistry{windows: []Window{nested}}
	receiver := NewReceiver(&fakeNotificationCenter{}, registry)

	err := receiver.HandleClick(context.Background(), "prod-42")

	require.NoError(t, err)
	assert.False(t, nested.focused)
	assert.Equal(t, []string{"/products/prod-42"}, registry.opened)
}

func TestReceiver_HandleClick_TrailingSlashAndFragmentStillMatch(t *testing.T) {
	existing := &fakeWindow{url: "https://shop.example.com/products/prod-42/#reviews"}
	registry := &fakeWindowRegistry{windows: []Window{existing}}
	receiver := NewReceiver(&fakeNotificationCenter{}, registry)

	err := receiver.HandleClick(context.Background(), "prod-42")

	require.NoError(t, err)
	assert.True(t, existing.focused)
	assert.Empty(t, registry.opened)
}

func TestReceiver_HandleClick_OpensNewWindow(t *testing.T) {
	registry := &fakeWindowRegistry{windows: []Window{
		&fakeWindow{url: "https://shop.example.com/cart"},
	}}
	receiver := NewReceiver(&fakeNotificationCenter{}, registry)

	err := receiver.HandleClick(context.Background(), "prod-42")

	require.NoError(t, err)
	assert.Equal(t, []string{"/products/prod-42"}, registry.opened)
}

func TestReceiver_HandleClick_NoWindowsAtAll(t *testing.T) {
	registry := &fakeWindowRegistry{}
	receiver := NewReceiver(&fakeNotificationCenter{}, registry)

	err := receiver.HandleClick(context.Background(), "prod-42")

	require.NoError(t, err)
	assert.Equal(t, []string{"/products/prod-42"}, registry.opened)
}

func TestReceiver_HandleClick_EmptyProductID(t *testing.T) {
	receiver := NewReceiver(&fakeNotificationCenter{}, &fakeWindowRegistry{})

	err := receiver.HandleClick(context.Background(), "")

	require.Error(t, err)
}

func TestProductURL(t *testing.T) {
	assert.Equal(t, "/products/prod-42", ProductURL("prod-42"))
}
