package generator

import "github.com/mossholt/cardforge/internal/domain"

// SampleRarity draws one tier from a rarity weight table using inverse-CDF
// sampling: r is uniform over [0, totalWeight) and the tiers are walked in
// canonical order, subtracting each weight until r falls inside one. The
// canonical order makes a seeded random sequence reproducible.
//
// A table whose weights sum to zero resolves to COMMON.
func SampleRarity(weights map[domain.Rarity]int, rnd func() float64) domain.Rarity {
	total := 0
	for _, tier := range domain.RarityOrder {
		total += weights[tier]
	}
	if total <= 0 {
		return domain.RarityCommon
	}

	r := rnd() * float64(total)
	for _, tier := range domain.RarityOrder {
		w := float64(weights[tier])
		if r < w {
			return tier
		}
		r -= w
	}

	// Unreachable for rnd in [0,1); guards against a misbehaving source.
	return domain.RarityCommon
}
