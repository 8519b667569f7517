package generator

import "github.com/mossholt/cardforge/internal/domain"

// BaseValueScale is the global multiplier applied to every card value.
const BaseValueScale = 5

// rarityBase and variantMultiplier are fixed contract tables; an instance's
// value is floor(BaseValueScale * rarityBase * variantMultiplier), frozen at
// generation time. All factors are integers so the floor is exact.
var rarityBase = map[domain.Rarity]int{
	domain.RarityCommon:    1,
	domain.RarityUncommon:  5,
	domain.RarityRare:      15,
	domain.RarityEpic:      50,
	domain.RarityLegendary: 200,
}

var variantMultiplier = map[domain.Variant]int{
	domain.VariantStandard:    1,
	domain.VariantFoil:        5,
	domain.VariantHolographic: 6,
	domain.VariantHaunted:     8,
	domain.VariantFrozen:      8,
	domain.VariantMagma:       8,
	domain.VariantCosmic:      10,
	domain.VariantGlitch:      15,
	domain.VariantRadiant:     20,
}

// Value computes the coin value for a rarity/variant pair. Pure and total
// over the enum members; there is no error path.
func Value(rarity domain.Rarity, variant domain.Variant) int {
	return BaseValueScale * rarityBase[rarity] * variantMultiplier[variant]
}
