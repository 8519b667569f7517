package generator

import "github.com/mossholt/cardforge/internal/domain"

// The variant roll is an ordered decision table:
//
//	1. special draw (RollSpecial)
//	2. themed pool (ThemedVariant, falls through to the generic pool)
//	3. override pass (RollRadiantOverride)
//
// Each stage consumes its own uniform draws, so the stages are testable in
// isolation and the full sequence is reproducible with a seeded source.

// RollSpecial performs the step-1 draw deciding whether this card gets a
// non-standard variant at all. Diamond packs roll at the boosted chance.
func RollSpecial(packTheme string, rnd func() float64) bool {
	chance := SpecialChanceBase
	if packTheme == domain.ThemeDiamond {
		chance = SpecialChanceDiamond
	}
	return rnd() < chance
}

// ThemedVariant resolves the step-2 pool for a special draw. Cosmic, Horror
// and Elemental card themes get a shot at their themed variants first; on a
// failed themed roll (and for every other theme) a fresh draw governs the
// generic pool.
func ThemedVariant(cardTheme string, rnd func() float64) domain.Variant {
	switch cardTheme {
	case domain.ThemeCosmic:
		if rnd() < CosmicPoolChance {
			return domain.VariantCosmic
		}
	case domain.ThemeHorror:
		if rnd() < HauntedPoolChance {
			return domain.VariantHaunted
		}
	case domain.ThemeElemental:
		if rnd() < ElementalPoolChance {
			r := rnd()
			switch {
			case r < ElementalMagmaBound:
				return domain.VariantMagma
			case r < ElementalFrozenBound:
				return domain.VariantFrozen
			default:
				return domain.VariantRadiant
			}
		}
	}
	return genericVariant(rnd())
}

// genericVariant maps one uniform draw onto the generic pool thresholds.
func genericVariant(r float64) domain.Variant {
	switch {
	case r < GenericFoilBound:
		return domain.VariantFoil
	case r < GenericHolographicBound:
		return domain.VariantHolographic
	case r < GenericMagmaBound:
		return domain.VariantMagma
	case r < GenericFrozenBound:
		return domain.VariantFrozen
	default:
		return domain.VariantGlitch
	}
}

// RollRadiantOverride performs the step-3 independent draw. When it fires
// the variant becomes RADIANT regardless of what steps 1-2 selected.
func RollRadiantOverride(packTheme string, rnd func() float64) bool {
	chance := RadiantChanceBase
	if packTheme == domain.ThemeDiamond {
		chance = RadiantChanceDiamond
	}
	return rnd() < chance
}
