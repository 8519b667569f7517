package game

import (
	"context"
	"fmt"

	"github.com/mossholt/cardforge/internal/catalog"
	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/logger"
)

// UpdateConfig replaces the catalog wholesale after validation. Drop odds,
// prices and card art all live here, so this is the odds-editing surface.
func (s *service) UpdateConfig(ctx context.Context, cfg domain.GameConfig) error {
	if err := catalog.Validate(&cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.scheduleConfig()
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgConfigUpdated,
		"cards", len(cfg.Cards), "packs", len(cfg.Packs))
	return nil
}

// UpdateCardImage sets a definition's art and patches the art reference on
// every live instance of that definition.
func (s *service) UpdateCardImage(ctx context.Context, cardID string, imageID int, imageURI string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := s.cfg.FindCard(cardID)
	if def == nil {
		return fmt.Errorf("%w: %s", domain.ErrCardNotFound, cardID)
	}
	def.ImageID = imageID
	def.ImageURI = imageURI

	s.ledger.PatchArt(cardID, imageID, imageURI)

	s.scheduleConfig()
	s.scheduleProgress()
	return nil
}

// UpdateCustomSFX assigns a sound to one of the customizable slots.
func (s *service) UpdateCustomSFX(ctx context.Context, slot domain.SFXType, dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.CustomSFX == nil {
		s.cfg.CustomSFX = make(map[domain.SFXType]string)
	}
	s.cfg.CustomSFX[slot] = dataURI
	s.scheduleConfig()
}

// UpdateCardBack sets the active card back image directly (admin bypass of
// the cosmetic shop).
func (s *service) UpdateCardBack(ctx context.Context, uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.ActiveCardBackURI = uri
	s.scheduleConfig()
}

// UpdateGameLogo sets the title-screen logo.
func (s *service) UpdateGameLogo(ctx context.Context, uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.GameLogoURI = uri
	s.scheduleConfig()
}

// BuyCosmetic debits gold and marks the cosmetic purchased. Unknown,
// already-owned or unaffordable cosmetics refuse silently.
func (s *service) BuyCosmetic(ctx context.Context, cosmeticID string) bool {
	log := logger.FromContext(ctx)

	s.mu.Lock()

	item := s.cfg.FindCosmetic(cosmeticID)
	if item == nil || item.Purchased || item.Price > s.gold {
		s.mu.Unlock()
		log.Info(LogMsgCosmeticRefused, "cosmetic_id", cosmeticID)
		return false
	}

	s.gold -= item.Price
	item.Purchased = true
	price := item.Price

	s.scheduleConfig()
	s.scheduleProgress()
	s.mu.Unlock()

	log.Info(LogMsgCosmeticBought, "cosmetic_id", cosmeticID, "price", price)
	s.publish(ctx, event.NewCosmeticPurchasedEvent(cosmeticID, price))
	return true
}

// EquipCosmetic activates a purchased cosmetic in its slot.
func (s *service) EquipCosmetic(ctx context.Context, cosmeticID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.cfg.FindCosmetic(cosmeticID)
	if item == nil || !item.Purchased {
		return false
	}

	switch item.Type {
	case domain.CosmeticCardBack:
		s.cfg.ActiveCardBackURI = item.Data
	case domain.CosmeticBorderStyle:
		s.cfg.ActiveBorderStyle = item.Data
	default:
		return false
	}

	s.scheduleConfig()
	return true
}

// AddAudioTrack appends an uploaded music track to the config.
func (s *service) AddAudioTrack(ctx context.Context, track domain.AudioTrack) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.AudioTracks = append(s.cfg.AudioTracks, track)
	s.scheduleConfig()
}

// RemoveAudioTrack deletes a track by id. Unknown ids are a no-op.
func (s *service) RemoveAudioTrack(ctx context.Context, trackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, track := range s.cfg.AudioTracks {
		if track.ID == trackID {
			s.cfg.AudioTracks = append(s.cfg.AudioTracks[:i], s.cfg.AudioTracks[i+1:]...)
			s.scheduleConfig()
			return
		}
	}
}
