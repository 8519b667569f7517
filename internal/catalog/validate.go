package catalog

import (
	"fmt"

	"github.com/mossholt/cardforge/internal/domain"
)

// Validate checks catalog integrity before the config is accepted: unique
// ids, non-negative prices and counts, non-negative rarity weights.
func Validate(cfg *domain.GameConfig) error {
	seen := make(map[string]struct{}, len(cfg.Cards))
	for _, c := range cfg.Cards {
		if c.ID == "" {
			return fmt.Errorf("card %q has an empty id", c.Name)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	packIDs := make(map[string]struct{}, len(cfg.Packs))
	for _, p := range cfg.Packs {
		if p.ID == "" {
			return fmt.Errorf("pack %q has an empty id", p.Name)
		}
		if _, dup := packIDs[p.ID]; dup {
			return fmt.Errorf("duplicate pack id %q", p.ID)
		}
		packIDs[p.ID] = struct{}{}

		if p.Price < 0 {
			return fmt.Errorf("pack %q has negative price %d", p.ID, p.Price)
		}
		if p.CardCount < 0 {
			return fmt.Errorf("pack %q has negative card count %d", p.ID, p.CardCount)
		}
		for rarity, weight := range p.RarityWeights {
			if rarity.Rank() < 0 {
				return fmt.Errorf("pack %q has unknown rarity %q", p.ID, rarity)
			}
			if weight < 0 {
				return fmt.Errorf("pack %q has negative weight for %s", p.ID, rarity)
			}
		}
	}

	for _, cos := range cfg.Cosmetics {
		if cos.Price < 0 {
			return fmt.Errorf("cosmetic %q has negative price %d", cos.ID, cos.Price)
		}
	}

	return nil
}
