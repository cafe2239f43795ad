package agent

import (
	"context"
	"testing"

	"stockwatch/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatform struct {
	supported    bool
	permission   PermissionState
	prompted     bool
	promptResult PermissionState
	subscription *entity.PushSubscription
	subscribeErr error
	unsubscribed bool
}

func (p *fakePlatform) PushSupported() bool         { return p.supported }
func (p *fakePlatform) Permission() PermissionState { return p.permission }

func (p *fakePlatform) RequestPermission(ctx context.Context) (PermissionState, error) {
	p.prompted = true

	return p.promptResult, nil
}

func (p *fakePlatform) Subscribe(ctx context.Context, applicationServerKey string) (*entity.PushSubscription, error) {
	if p.subscribeErr != nil {
		return nil, p.subscribeErr
	}

	return p.subscription, nil
}

func (p *fakePlatform) Unsubscribe(ctx context.Context) error {
	p.unsubscribed = true

	return nil
}

func (p *fakePlatform) DeviceInfo() entity.DeviceInfo {
	return entity.DeviceInfo{UserAgent: "Mozilla/5.0", Platform: "MacIntel", Language: "zh-TW"}
}

type fakeAlertAPI struct {
	publicKey      string
	registered     []string
	unregistered   []string
	registerErr    error
	publicKeyCalls int
}

func (a *fakeAlertAPI) PublicKey(ctx context.Context) (string, error) {
	a.publicKeyCalls++

	return a.publicKey, nil
}

func (a *fakeAlertAPI) RegisterAlert(ctx context.Context, productID string, subscription *entity.PushSubscription, device entity.DeviceInfo) error {
	if a.registerErr != nil {
		return a.registerErr
	}
	a.registered = append(a.registered, productID)

	return nil
}

func (a *fakeAlertAPI) UnregisterAlert(ctx context.Context, endpoint string) error {
	a.unregistered = append(a.unregistered, endpoint)

	return nil
}

func workingSubscription() *entity.PushSubscription {
	return &entity.PushSubscription{
		Endpoint: "https://push.example.net/send/abc123",
		Keys: entity.SubscriptionKeys{
			P256dh: "BPubKey",
			Auth:   "AuthSecret",
		},
	}
}

func TestRegistrar_RegisterForRestock_Success(t *testing.T) {
	platform := &fakePlatform{
		supported:    true,
		permission:   PermissionGranted,
		subscription: workingSubscription(),
	}
	api := &fakeAlertAPI{publicKey: "BServerKey"}

	subscription, err := NewRegistrar(platform, api).RegisterForRestock(context.Background(), "prod-42")

	require.NoError(t, err)
	assert.Equal(t, "https://push.example.net/send/abc123", subscription.Endpoint)
	assert.Equal(t, []string{"prod-42"}, api.registered)
	assert.False(t, platform.prompted, "granted permission must not prompt again")
}

func TestRegistrar_RegisterForRestock_PromptsWhenUndecided(t *testing.T) {
	platform := &fakePlatform{
		supported:    true,
		permission:   PermissionPrompt,
		promptResult: PermissionGranted,
		subscription: workingSubscription(),
	}
	api := &fakeAlertAPI{publicKey: "BServerKey"}

	_, err := NewRegistrar(platform, api).RegisterForRestock(context.Background(), "prod-42")

	require.NoError(t, err)
	assert.True(t, platform.prompted)
}

func TestRegistrar_RegisterForRestock_UnsupportedPlatform(t *testing.T) {
	platform := &fakePlatform{supported: false}

	_, err := NewRegistrar(platform, &fakeAlertAPI{}).RegisterForRestock(context.Background(), "prod-42")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestRegistrar_RegisterForRestock_PermissionDenied(t *testing.T) {
	platform := &fakePlatform{supported: true, permission: PermissionDenied}

	_, err := NewRegistrar(platform, &fakeAlertAPI{}).RegisterForRestock(context.Background(), "prod-42")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.False(t, platform.prompted, "denied permission must not prompt again")
}

func TestRegistrar_RegisterForRestock_PromptDenied(t *testing.T) {
	platform := &fakePlatform{
		supported:    true,
		permission:   PermissionPrompt,
		promptResult: PermissionDenied,
	}

	_, err := NewRegistrar(platform, &fakeAlertAPI{}).RegisterForRestock(context.Background(), "prod-42")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.True(t, platform.prompted)
}

func TestRegistrar_RegisterForRestock_BackendFailure(t *testing.T) {
	platform := &fakePlatform{
		supported:    true,
		permission:   PermissionGranted,
		subscription: workingSubscription(),
	}
	api := &fakeAlertAPI{publicKey: "BServerKey", registerErr: errors.New("backend unavailable")}

	_, err := NewRegistrar(platform, api).RegisterForRestock(context.Background(), "prod-42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register stock alert")
}

func TestRegistrar_Unregister(t *testing.T) {
	platform := &fakePlatform{supported: true, permission: PermissionGranted}
	api := &fakeAlertAPI{}

	err := NewRegistrar(platform, api).Unregister(context.Background(), workingSubscription())

	require.NoError(t, err)
	assert.Equal(t, []string{"https://push.example.net/send/abc123"}, api.unregistered)
	assert.True(t, platform.unsubscribed)
}
