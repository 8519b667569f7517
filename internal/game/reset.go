package game

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mossholt/cardforge/internal/catalog"
	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/logger"
	"github.com/mossholt/cardforge/internal/repository"
)

// ResetProgress restores a fresh start and writes it durably before
// returning. Reset is the one mutation that must not sit in a debounce
// window; a crash right after must not resurrect the old save.
func (s *service) ResetProgress(ctx context.Context) error {
	s.mu.Lock()
	s.gold = StartingGold
	s.ledger.Clear()
	s.deck = nil
	s.stats = domain.GameStats{}
	payload, err := json.Marshal(s.progressLocked())
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}

	if err := s.flushProgress(ctx, payload); err != nil {
		return fmt.Errorf("flush progress: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgProgressReset)
	s.publish(ctx, event.NewProgressResetEvent())
	return nil
}

// FactoryReset wipes both durable namespaces and restores in-memory
// defaults. The next launch starts from the built-in catalog.
func (s *service) FactoryReset(ctx context.Context) error {
	if err := s.persister.Clear(ctx, repository.NamespaceProgress); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	if err := s.persister.Clear(ctx, repository.NamespaceConfig); err != nil {
		return fmt.Errorf("clear config: %w", err)
	}

	s.mu.Lock()
	s.gold = StartingGold
	s.ledger.Clear()
	s.deck = nil
	s.stats = domain.GameStats{}
	s.cfg = catalog.DefaultConfig()
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgFactoryReset)
	s.publish(ctx, event.NewProgressResetEvent())
	return nil
}
