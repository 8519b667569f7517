package game

import (
	"context"

	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/logger"
)

// BuyPack debits the pack price, generates its cards and appends them to the
// inventory. Unknown packs and unaffordable purchases return nil and leave
// all state untouched.
func (s *service) BuyPack(ctx context.Context, packID string) []domain.CardInstance {
	log := logger.FromContext(ctx)

	s.mu.Lock()

	pack := s.cfg.FindPack(packID)
	if pack == nil {
		s.mu.Unlock()
		log.Warn(LogMsgPackUnknown, "pack_id", packID)
		return nil
	}
	if pack.Price > s.gold {
		s.mu.Unlock()
		log.Info(LogMsgPackUnaffordable, "pack_id", packID, "price", pack.Price, "gold", s.gold)
		return nil
	}

	cards := s.factory.GenerateMany(*pack, s.cfg.Cards, pack.CardCount)

	s.gold -= pack.Price
	s.ledger.Add(cards...)
	s.stats.PacksOpened++
	s.stats.CardsObtained += len(cards)
	for _, c := range cards {
		s.stats.RaiseHighestRarity(c.Rarity)
	}

	price := pack.Price
	s.scheduleProgress()
	s.mu.Unlock()

	log.Info(LogMsgPackOpened, "pack_id", packID, "price", price, "cards", len(cards))
	s.publish(ctx, event.NewPackOpenedEvent(packID, price, cards))

	return cards
}
