package game

import (
	"context"
	"encoding/json"

	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/persist"
	"github.com/mossholt/cardforge/internal/repository"
)

// progressSnapshot serializes the current progress. It takes the service
// lock, so it must only run outside an operation, which is exactly when the
// debounce timer fires.
func (s *service) progressSnapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.progressLocked())
}

// configSnapshot serializes the current config the same way.
func (s *service) configSnapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.cfg)
}

// progressLocked builds the persisted progress shape. Callers hold s.mu.
func (s *service) progressLocked() domain.Progress {
	return domain.Progress{
		Gold:       s.gold,
		Inventory:  s.ledger.Cards(),
		Stats:      s.stats,
		BattleDeck: append([]string{}, s.deck...),
	}
}

// scheduleProgress arms the progress debounce timer. Callers may hold s.mu;
// the snapshot itself is deferred to fire time.
func (s *service) scheduleProgress() {
	s.persister.Schedule(repository.NamespaceProgress, s.progressSnapshot)
}

func (s *service) scheduleConfig() {
	s.persister.Schedule(repository.NamespaceConfig, s.configSnapshot)
}

// Snapshots returns the snapshot functions keyed by namespace.
func (s *service) Snapshots() map[string]persist.Snapshot {
	return map[string]persist.Snapshot{
		repository.NamespaceProgress: s.progressSnapshot,
		repository.NamespaceConfig:   s.configSnapshot,
	}
}

// flushProgressLocked writes the given pre-serialized progress synchronously.
// The payload is captured before release of s.mu by the caller; Flush itself
// must run unlocked.
func (s *service) flushProgress(ctx context.Context, payload []byte) error {
	return s.persister.Flush(ctx, repository.NamespaceProgress, func() ([]byte, error) {
		return payload, nil
	})
}

// LoadProgress decodes a saved progress payload, backfilling a fresh start
// for missing fields.
func LoadProgress(payload []byte) (domain.Progress, error) {
	progress := domain.Progress{Gold: StartingGold}
	if len(payload) == 0 {
		return progress, nil
	}
	if err := json.Unmarshal(payload, &progress); err != nil {
		return domain.Progress{Gold: StartingGold}, err
	}
	return progress, nil
}
