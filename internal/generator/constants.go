package generator

// Variant roll probabilities. These are part of the economy contract; the
// drop-rate tests pin them exactly.
const (
	// SpecialChanceDiamond is the step-1 "special draw" chance for the
	// premium Diamond pack tier; SpecialChanceBase applies to everything else.
	SpecialChanceDiamond = 0.60
	SpecialChanceBase    = 0.10

	// Themed-pool chances, keyed on the drawn card definition's theme.
	CosmicPoolChance    = 0.6
	HauntedPoolChance   = 0.6
	ElementalPoolChance = 0.4

	// Elemental three-way split boundaries over one fresh draw.
	ElementalMagmaBound  = 0.33
	ElementalFrozenBound = 0.66

	// Independent RADIANT override chance. This fires after the themed and
	// generic pools and overwrites their result, even when that downgrades a
	// rarer variant already chosen. The overwrite order is intentional.
	RadiantChanceDiamond = 0.01
	RadiantChanceBase    = 0.001
)

// Generic-pool cumulative thresholds over one uniform draw:
// [0,0.5) FOIL, [0.5,0.7) HOLOGRAPHIC, [0.7,0.8) MAGMA,
// [0.8,0.9) FROZEN, [0.9,1.0) GLITCH.
const (
	GenericFoilBound        = 0.5
	GenericHolographicBound = 0.7
	GenericMagmaBound       = 0.8
	GenericFrozenBound      = 0.9
)
