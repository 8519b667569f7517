package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossholt/cardforge/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(CardsSold, func(ctx context.Context, event Event) error {
		payload, err := DecodePayload[domain.CardsSoldPayload](event.Payload)
		require.NoError(t, err)
		assert.Equal(t, []string{"i1", "i2"}, payload.InstanceIDs)
		assert.Equal(t, 80, payload.TotalValue)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewCardsSoldEvent([]string{"i1", "i2"}, 80))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(PackOpened, handler)
	bus.Subscribe(PackOpened, handler)

	err := bus.Publish(context.Background(), NewPackOpenedEvent("p1", 50, nil))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewProgressResetEvent())
	assert.NoError(t, err)
}

func TestMemoryBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()
	secondCalled := false

	bus.Subscribe(BattleRecorded, func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(BattleRecorded, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewBattleRecordedEvent(true, 50, false))
	assert.Error(t, err)
	assert.True(t, secondCalled)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{
		"cosmetic_id": "cb_galaxy",
		"price":       500,
	}

	payload, err := DecodePayload[domain.CosmeticPurchasedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, "cb_galaxy", payload.CosmeticID)
	assert.Equal(t, 500, payload.Price)
}
