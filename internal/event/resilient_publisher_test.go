package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	inner := &mockBus{}
	pub := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})

	err := pub.Publish(context.Background(), NewProgressResetEvent())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.CallCount())
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	inner := &mockBus{shouldFail: func(attempt int) bool { return attempt < 3 }}
	pub := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 5, RetryDelay: time.Millisecond})

	err := pub.Publish(context.Background(), NewCardsSoldEvent([]string{"i1"}, 5))
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return inner.CallCount() >= 3 },
		time.Second, 5*time.Millisecond)
}

func TestResilientPublisher_DeadLetterAfterExhaustion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dlw, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dlw.Close()

	inner := &mockBus{shouldFail: func(attempt int) bool { return true }}
	pub := NewResilientPublisher(inner, ResilientConfig{
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
		DeadLetter: dlw,
	})

	err = pub.Publish(context.Background(), NewCosmeticPurchasedEvent("cb_galaxy", 500))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		data, readErr := os.ReadFile(path)
		return readErr == nil && len(data) > 0
	}, time.Second, 5*time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, CosmeticPurchased, entry.Event.Type)
	assert.Equal(t, 2, entry.Attempts)
	assert.NotEmpty(t, entry.LastError)
}

func TestResilientPublisher_SubscribeDelegates(t *testing.T) {
	inner := NewMemoryBus()
	pub := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 1, RetryDelay: time.Millisecond})

	called := false
	pub.Subscribe(PackOpened, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	require.NoError(t, pub.Publish(context.Background(), NewPackOpenedEvent("p1", 50, nil)))
	assert.True(t, called)
}
