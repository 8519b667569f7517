package persist

import (
	"context"
	"sync"
	"time"

	"github.com/mossholt/cardforge/internal/logger"
	"github.com/mossholt/cardforge/internal/repository"
)

// Snapshot produces the serialized state of a namespace. It is invoked when
// the debounce timer fires, not when the write is scheduled, so rapid
// mutations coalesce into one write of the latest state.
type Snapshot func() ([]byte, error)

// Synchronizer debounces durable writes per namespace and funnels them
// through a single writer goroutine. The queue gives writes a total order:
// completion order equals dispatch order, across namespaces too.
type Synchronizer struct {
	store    repository.Saves
	debounce map[string]time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool

	queue chan writeJob
	wg    sync.WaitGroup

	onWriteError func(namespace string, err error)
}

type writeJob struct {
	namespace string
	payload   []byte
	done      chan error
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithDebounce overrides the debounce window for a namespace.
func WithDebounce(namespace string, d time.Duration) Option {
	return func(s *Synchronizer) {
		s.debounce[namespace] = d
	}
}

// WithWriteErrorHook registers a callback invoked on failed durable writes,
// in addition to logging. Used to bump the failure metric.
func WithWriteErrorHook(hook func(namespace string, err error)) Option {
	return func(s *Synchronizer) {
		s.onWriteError = hook
	}
}

// NewSynchronizer creates a Synchronizer and starts its writer goroutine.
func NewSynchronizer(store repository.Saves, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		store: store,
		debounce: map[string]time.Duration{
			repository.NamespaceConfig:   DebounceConfig,
			repository.NamespaceProgress: DebounceProgress,
		},
		timers: make(map[string]*time.Timer),
		queue:  make(chan writeJob, WriteQueueSize),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wg.Add(1)
	go s.writerLoop()

	return s
}

func (s *Synchronizer) writerLoop() {
	defer s.wg.Done()
	for job := range s.queue {
		err := s.store.Put(context.Background(), job.namespace, repository.SaveKeyMain, job.payload)
		if err != nil {
			logger.Error(LogMsgWriteFailed, "namespace", job.namespace, "error", err)
			if s.onWriteError != nil {
				s.onWriteError(job.namespace, err)
			}
		}
		if job.done != nil {
			job.done <- err
		}
	}
}

// Schedule arms (or re-arms) the namespace's debounce timer. A pending timer
// is cancelled and restarted, so a burst of mutations produces one write.
func (s *Synchronizer) Schedule(namespace string, snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if timer, ok := s.timers[namespace]; ok {
		timer.Stop()
	}

	d, ok := s.debounce[namespace]
	if !ok {
		d = DebounceProgress
	}

	s.timers[namespace] = time.AfterFunc(d, func() {
		s.fire(namespace, snapshot)
	})
}

func (s *Synchronizer) fire(namespace string, snapshot Snapshot) {
	payload, err := snapshot()
	if err != nil {
		logger.Error(LogMsgWriteFailed, "namespace", namespace, "error", err)
		if s.onWriteError != nil {
			s.onWriteError(namespace, err)
		}
		return
	}

	s.enqueue(writeJob{namespace: namespace, payload: payload})
}

// enqueue serializes queue sends against Shutdown closing the queue.
func (s *Synchronizer) enqueue(job writeJob) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	delete(s.timers, job.namespace)
	s.queue <- job
	return true
}

// Flush cancels any pending timer for the namespace and writes the snapshot
// synchronously, behind everything already queued.
func (s *Synchronizer) Flush(ctx context.Context, namespace string, snapshot Snapshot) error {
	s.mu.Lock()
	if timer, ok := s.timers[namespace]; ok {
		timer.Stop()
		delete(s.timers, namespace)
	}
	s.mu.Unlock()

	payload, err := snapshot()
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	if !s.enqueue(writeJob{namespace: namespace, payload: payload, done: done}) {
		return nil
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Clear cancels any pending timer for the namespace and deletes its saved
// rows. Used by factory reset.
func (s *Synchronizer) Clear(ctx context.Context, namespace string) error {
	s.mu.Lock()
	if timer, ok := s.timers[namespace]; ok {
		timer.Stop()
		delete(s.timers, namespace)
	}
	s.mu.Unlock()

	if err := s.store.Clear(ctx, namespace); err != nil {
		logger.Error(LogMsgClearFailed, "namespace", namespace, "error", err)
		return err
	}
	return nil
}

// Shutdown fires every pending timer immediately, drains the write queue and
// stops the writer. Pending snapshots are not lost on graceful shutdown.
func (s *Synchronizer) Shutdown(ctx context.Context, snapshots map[string]Snapshot) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	pending := make([]string, 0, len(s.timers))
	for namespace, timer := range s.timers {
		timer.Stop()
		pending = append(pending, namespace)
	}
	s.timers = make(map[string]*time.Timer)
	s.closed = true
	s.mu.Unlock()

	for _, namespace := range pending {
		snapshot, ok := snapshots[namespace]
		if !ok {
			continue
		}
		payload, err := snapshot()
		if err != nil {
			logger.Error(LogMsgWriteFailed, "namespace", namespace, "error", err)
			continue
		}
		s.queue <- writeJob{namespace: namespace, payload: payload}
	}
	close(s.queue)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
