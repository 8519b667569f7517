package inventory

import (
	"sort"

	"github.com/mossholt/cardforge/internal/domain"
)

// dedupKey identifies "the same card" for duplicate detection.
type dedupKey struct {
	definitionID string
	rarity       domain.Rarity
	variant      domain.Variant
}

// DuplicateIDs returns the ids that a dedup pass would sell. Instances are
// scanned in descending value order (stable, insertion order breaks ties) so
// the most valuable copy of each (definition, rarity, variant) key survives.
// A locked instance always survives and still marks its key as seen; later
// unlocked copies of that key are queued. The returned ids must flow through
// Remove.
func (l *Ledger) DuplicateIDs() []string {
	sorted := make([]domain.CardInstance, len(l.cards))
	copy(sorted, l.cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	seen := make(map[dedupKey]struct{})
	var toSell []string
	for _, c := range sorted {
		key := dedupKey{c.DefinitionID, c.Rarity, c.Variant}
		if c.IsLocked {
			seen[key] = struct{}{}
			continue
		}
		if _, dup := seen[key]; dup {
			toSell = append(toSell, c.InstanceID)
			continue
		}
		seen[key] = struct{}{}
	}
	return toSell
}
