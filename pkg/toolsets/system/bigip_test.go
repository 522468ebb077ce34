package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michelangelodorado/mcp-server-ihealth/pkg/api"
)

type fakeProvider struct {
	api.Provider

	calls []string
	slot  int
}

func (f *fakeProvider) GetBigIPInfo(ctx context.Context, qkviewID string) (*api.Result, error) {
	f.calls = append(f.calls, "bigip")
	return okResult(), nil
}

func (f *fakeProvider) GetHardwareInfo(ctx context.Context, qkviewID string, slot int) (*api.Result, error) {
	f.calls = append(f.calls, "hardware")
	f.slot = slot
	return okResult(), nil
}

func okResult() *api.Result {
	return &api.Result{Status: 200, ContentType: "application/json", Body: []byte(`{}`)}
}

type args map[string]any

func (a args) GetArguments() map[string]any { return a }

func callParams(p api.Provider, a args) api.ToolHandlerParams {
	return api.ToolHandlerParams{
		Context:         context.Background(),
		Provider:        p,
		ToolCallRequest: a,
	}
}

func TestBigIPInfo(t *testing.T) {
	fake := &fakeProvider{}

	result, err := bigipInfo(callParams(fake, args{"qkview_id": "1"}))
	require.NoError(t, err)
	require.NoError(t, result.Error)
	assert.Equal(t, []string{"bigip"}, fake.calls)
}

func TestSlotHandlerDefaultsToSlotZero(t *testing.T) {
	fake := &fakeProvider{slot: -1}
	handler := slotHandler(func(ctx context.Context, p api.Provider, id string, slot int) (*api.Result, error) {
		return p.GetHardwareInfo(ctx, id, slot)
	})

	result, err := handler(callParams(fake, args{"qkview_id": "1"}))
	require.NoError(t, err)
	require.NoError(t, result.Error)
	assert.Equal(t, 0, fake.slot)
}

func TestSlotHandlerPassesSlot(t *testing.T) {
	fake := &fakeProvider{}
	handler := slotHandler(func(ctx context.Context, p api.Provider, id string, slot int) (*api.Result, error) {
		return p.GetHardwareInfo(ctx, id, slot)
	})

	// JSON integers decode as float64.
	result, err := handler(callParams(fake, args{"qkview_id": "1", "slot_number": float64(3)}))
	require.NoError(t, err)
	require.NoError(t, result.Error)
	assert.Equal(t, 3, fake.slot)
}

func TestSlotHandlerRequiresID(t *testing.T) {
	handler := slotHandler(func(ctx context.Context, p api.Provider, id string, slot int) (*api.Result, error) {
		t.Error("provider must not be called without qkview_id")
		return nil, nil
	})

	result, err := handler(callParams(&fakeProvider{}, args{}))
	require.NoError(t, err)
	require.Error(t, result.Error)
}
