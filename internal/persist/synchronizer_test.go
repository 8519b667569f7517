package persist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossholt/cardforge/internal/repository"
)

type savedWrite struct {
	namespace string
	payload   string
}

// fakeStore records writes in arrival order.
type fakeStore struct {
	mu      sync.Mutex
	writes  []savedWrite
	cleared []string
	putErr  error
}

func (f *fakeStore) Put(ctx context.Context, namespace, key string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.writes = append(f.writes, savedWrite{namespace, string(payload)})
	return nil
}

func (f *fakeStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	return nil, nil
}

func (f *fakeStore) Clear(ctx context.Context, namespace string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, namespace)
	return nil
}

func (f *fakeStore) Writes() []savedWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]savedWrite{}, f.writes...)
}

func staticSnapshot(s string) Snapshot {
	return func() ([]byte, error) { return []byte(s), nil }
}

func TestSynchronizer_DebounceCoalesces(t *testing.T) {
	store := &fakeStore{}
	s := NewSynchronizer(store, WithDebounce(repository.NamespaceProgress, 30*time.Millisecond))

	var mu sync.Mutex
	state := "v1"
	snapshot := func() ([]byte, error) {
		mu.Lock()
		defer mu.Unlock()
		return []byte(state), nil
	}

	s.Schedule(repository.NamespaceProgress, snapshot)
	mu.Lock()
	state = "v2"
	mu.Unlock()
	s.Schedule(repository.NamespaceProgress, snapshot)
	mu.Lock()
	state = "v3"
	mu.Unlock()
	s.Schedule(repository.NamespaceProgress, snapshot)

	require.Eventually(t, func() bool { return len(store.Writes()) == 1 },
		time.Second, 5*time.Millisecond)

	// Snapshot is taken when the timer fires, so the single write holds the
	// latest state.
	assert.Equal(t, "v3", store.Writes()[0].payload)

	time.Sleep(60 * time.Millisecond)
	assert.Len(t, store.Writes(), 1)
}

func TestSynchronizer_RescheduleRestartsWindow(t *testing.T) {
	store := &fakeStore{}
	s := NewSynchronizer(store, WithDebounce(repository.NamespaceProgress, 50*time.Millisecond))

	s.Schedule(repository.NamespaceProgress, staticSnapshot("a"))
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, store.Writes())

	s.Schedule(repository.NamespaceProgress, staticSnapshot("b"))
	time.Sleep(30 * time.Millisecond)
	// Still inside the restarted window.
	assert.Empty(t, store.Writes())

	require.Eventually(t, func() bool { return len(store.Writes()) == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, "b", store.Writes()[0].payload)
}

func TestSynchronizer_WritesAreTotallyOrdered(t *testing.T) {
	// The progress window is shorter than the config window, so a config
	// change scheduled first still lands after a later progress change. The
	// single writer queue guarantees completion order equals fire order.
	store := &fakeStore{}
	s := NewSynchronizer(store,
		WithDebounce(repository.NamespaceConfig, 80*time.Millisecond),
		WithDebounce(repository.NamespaceProgress, 10*time.Millisecond))

	s.Schedule(repository.NamespaceConfig, staticSnapshot("catalog"))
	s.Schedule(repository.NamespaceProgress, staticSnapshot("progress"))

	require.Eventually(t, func() bool { return len(store.Writes()) == 2 },
		time.Second, 5*time.Millisecond)

	writes := store.Writes()
	assert.Equal(t, repository.NamespaceProgress, writes[0].namespace)
	assert.Equal(t, repository.NamespaceConfig, writes[1].namespace)
}

func TestSynchronizer_FlushIsSynchronousAndCancelsTimer(t *testing.T) {
	store := &fakeStore{}
	s := NewSynchronizer(store, WithDebounce(repository.NamespaceProgress, 40*time.Millisecond))

	s.Schedule(repository.NamespaceProgress, staticSnapshot("debounced"))

	err := s.Flush(context.Background(), repository.NamespaceProgress, staticSnapshot("flushed"))
	require.NoError(t, err)

	writes := store.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, "flushed", writes[0].payload)

	// The pending debounced write was cancelled, not deferred.
	time.Sleep(80 * time.Millisecond)
	assert.Len(t, store.Writes(), 1)
}

func TestSynchronizer_ClearCancelsTimerAndClearsStore(t *testing.T) {
	store := &fakeStore{}
	s := NewSynchronizer(store, WithDebounce(repository.NamespaceProgress, 40*time.Millisecond))

	s.Schedule(repository.NamespaceProgress, staticSnapshot("doomed"))
	require.NoError(t, s.Clear(context.Background(), repository.NamespaceProgress))

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, store.Writes())
	assert.Equal(t, []string{repository.NamespaceProgress}, store.cleared)
}

func TestSynchronizer_WriteFailureInvokesHookAndKeepsRunning(t *testing.T) {
	store := &fakeStore{putErr: errors.New("connection refused")}

	var mu sync.Mutex
	var failures []string
	s := NewSynchronizer(store,
		WithDebounce(repository.NamespaceProgress, 5*time.Millisecond),
		WithWriteErrorHook(func(namespace string, err error) {
			mu.Lock()
			failures = append(failures, namespace)
			mu.Unlock()
		}))

	s.Schedule(repository.NamespaceProgress, staticSnapshot("doomed"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(failures) == 1
	}, time.Second, 5*time.Millisecond)

	// No retry: memory stays authoritative, the next mutation reschedules.
	store.mu.Lock()
	store.putErr = nil
	store.mu.Unlock()

	s.Schedule(repository.NamespaceProgress, staticSnapshot("recovered"))
	require.Eventually(t, func() bool { return len(store.Writes()) == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, "recovered", store.Writes()[0].payload)
}

func TestSynchronizer_ShutdownFlushesPending(t *testing.T) {
	store := &fakeStore{}
	s := NewSynchronizer(store, WithDebounce(repository.NamespaceConfig, time.Minute))

	s.Schedule(repository.NamespaceConfig, staticSnapshot("stale"))

	err := s.Shutdown(context.Background(), map[string]Snapshot{
		repository.NamespaceConfig: staticSnapshot("final"),
	})
	require.NoError(t, err)

	writes := store.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, "final", writes[0].payload)

	// Scheduling after shutdown is a no-op.
	s.Schedule(repository.NamespaceConfig, staticSnapshot("late"))
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, store.Writes(), 1)
}
