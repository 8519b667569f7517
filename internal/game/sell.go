package game

import (
	"context"

	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/inventory"
	"github.com/mossholt/cardforge/internal/logger"
)

// SellCard sells a single card and returns the gold credited. Locked or
// unknown instances credit nothing.
func (s *service) SellCard(ctx context.Context, instanceID string) int {
	return s.SellMultipleCards(ctx, []string{instanceID})
}

// SellMultipleCards sells the given instances, silently skipping locked and
// unknown ids, and returns the total gold credited.
func (s *service) SellMultipleCards(ctx context.Context, instanceIDs []string) int {
	s.mu.Lock()
	res := s.sellLocked(instanceIDs)
	s.mu.Unlock()
	return s.finishSale(ctx, res)
}

// SellAllDuplicates runs the dedup scan and sells the queued duplicates.
func (s *service) SellAllDuplicates(ctx context.Context) int {
	s.mu.Lock()
	res := s.sellLocked(s.ledger.DuplicateIDs())
	s.mu.Unlock()
	return s.finishSale(ctx, res)
}

// SellAllInventory sells every unlocked card.
func (s *service) SellAllInventory(ctx context.Context) int {
	s.mu.Lock()
	res := s.sellLocked(s.ledger.UnlockedIDs())
	s.mu.Unlock()
	return s.finishSale(ctx, res)
}

// sellLocked removes instances, credits gold and updates stats. Callers hold
// s.mu.
func (s *service) sellLocked(instanceIDs []string) inventory.RemoveResult {
	res := s.ledger.Remove(instanceIDs)
	if len(res.RemovedIDs) == 0 {
		return res
	}

	s.evictFromDeck(res.RemovedIDs)
	s.gold += res.TotalValue
	s.stats.TotalGoldEarned += res.TotalValue
	s.scheduleProgress()
	return res
}

// finishSale logs and publishes outside the lock. A sale of zero cards
// publishes nothing.
func (s *service) finishSale(ctx context.Context, res inventory.RemoveResult) int {
	if len(res.RemovedIDs) == 0 {
		return 0
	}
	logger.FromContext(ctx).Info(LogMsgCardsSold, "cards", len(res.RemovedIDs), "value", res.TotalValue)
	s.publish(ctx, event.NewCardsSoldEvent(res.RemovedIDs, res.TotalValue))
	return res.TotalValue
}

// ToggleLock flips the lock on an instance. Unknown ids are a no-op.
func (s *service) ToggleLock(ctx context.Context, instanceID string) (locked, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	locked, ok = s.ledger.ToggleLock(instanceID)
	if ok {
		s.scheduleProgress()
	}
	return locked, ok
}
