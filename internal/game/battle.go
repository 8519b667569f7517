package game

import (
	"context"

	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/logger"
)

// ToggleBattleDeck adds or removes an instance from the battle deck. Adding
// requires the card to exist and the deck to be under its cap; a full deck
// refuses silently.
func (s *service) ToggleBattleDeck(ctx context.Context, instanceID string) (inDeck, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.deck {
		if id == instanceID {
			s.deck = append(s.deck[:i], s.deck[i+1:]...)
			s.scheduleProgress()
			return false, true
		}
	}

	if _, exists := s.ledger.Get(instanceID); !exists {
		return false, false
	}
	if len(s.deck) >= BattleDeckCap {
		return false, false
	}

	s.deck = append(s.deck, instanceID)
	s.scheduleProgress()
	return true, true
}

// RecordBattleResult applies a battle outcome: gold delta (negative deltas
// may push the balance below zero, debt stands), win/loss counters, and an
// optional won card.
func (s *service) RecordBattleResult(ctx context.Context, won bool, goldDelta int, wonCard *domain.CardInstance) {
	s.mu.Lock()

	s.gold += goldDelta
	if goldDelta > 0 {
		s.stats.TotalGoldEarned += goldDelta
	}
	if won {
		s.stats.BattlesWon++
	} else {
		s.stats.BattlesLost++
	}
	if wonCard != nil {
		s.ledger.Add(*wonCard)
		s.stats.CardsObtained++
		s.stats.RaiseHighestRarity(wonCard.Rarity)
	}

	gold := s.gold
	s.scheduleProgress()
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgBattleRecorded,
		"won", won, "gold_delta", goldDelta, "gold", gold, "card_won", wonCard != nil)
	s.publish(ctx, event.NewBattleRecordedEvent(won, goldDelta, wonCard != nil))
}
