package catalog

import "github.com/mossholt/cardforge/internal/domain"

// MergeCards appends any default definition whose id is absent from the
// saved catalog. Saved entries are never overwritten or removed, so
// admin-uploaded art and name edits survive upgrades.
func MergeCards(saved, defaults []domain.CardDefinition) []domain.CardDefinition {
	existing := make(map[string]struct{}, len(saved))
	for _, c := range saved {
		existing[c.ID] = struct{}{}
	}

	merged := make([]domain.CardDefinition, 0, len(saved)+len(defaults))
	merged = append(merged, saved...)
	for _, c := range defaults {
		if _, ok := existing[c.ID]; !ok {
			merged = append(merged, c)
		}
	}
	return merged
}

// Reconcile merges a loaded config with the current build's defaults.
// Cards are unioned by id; optional sections introduced by later schema
// versions are backfilled rather than failing the load. A nil saved config
// yields the defaults unchanged. The changed flag reports whether the
// result differs from the saved config, so the caller knows a write-back
// is due.
func Reconcile(saved *domain.GameConfig) (domain.GameConfig, bool) {
	defaults := DefaultConfig()
	if saved == nil {
		return defaults, true
	}

	changed := false
	cfg := *saved
	cfg.Cards = MergeCards(saved.Cards, defaults.Cards)
	if len(cfg.Cards) != len(saved.Cards) {
		changed = true
	}
	if len(cfg.Packs) == 0 {
		cfg.Packs = defaults.Packs
		changed = true
	}
	if cfg.AudioTracks == nil {
		cfg.AudioTracks = []domain.AudioTrack{}
		changed = true
	}
	if cfg.CustomSFX == nil {
		cfg.CustomSFX = map[domain.SFXType]string{}
		changed = true
	}
	if len(cfg.Cosmetics) == 0 {
		cfg.Cosmetics = defaults.Cosmetics
		changed = true
	}
	return cfg, changed
}
