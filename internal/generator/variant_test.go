package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mossholt/cardforge/internal/domain"
)

func TestRollSpecial(t *testing.T) {
	t.Run("diamond packs use the boosted chance", func(t *testing.T) {
		assert.True(t, RollSpecial(domain.ThemeDiamond, scriptedRand(0.59)))
		assert.False(t, RollSpecial(domain.ThemeDiamond, scriptedRand(0.60)))
	})

	t.Run("other packs use the base chance", func(t *testing.T) {
		assert.True(t, RollSpecial("Basic", scriptedRand(0.09)))
		assert.False(t, RollSpecial("Basic", scriptedRand(0.10)))
	})
}

func TestThemedVariant(t *testing.T) {
	t.Run("cosmic cards hit COSMIC on a successful themed roll", func(t *testing.T) {
		got := ThemedVariant(domain.ThemeCosmic, scriptedRand(0.59))
		assert.Equal(t, domain.VariantCosmic, got)
	})

	t.Run("failed cosmic roll falls through to the generic pool with a fresh draw", func(t *testing.T) {
		got := ThemedVariant(domain.ThemeCosmic, scriptedRand(0.60, 0.0))
		assert.Equal(t, domain.VariantFoil, got)
	})

	t.Run("horror cards hit HAUNTED", func(t *testing.T) {
		got := ThemedVariant(domain.ThemeHorror, scriptedRand(0.2))
		assert.Equal(t, domain.VariantHaunted, got)
	})

	t.Run("elemental three-way split", func(t *testing.T) {
		assert.Equal(t, domain.VariantMagma, ThemedVariant(domain.ThemeElemental, scriptedRand(0.39, 0.32)))
		assert.Equal(t, domain.VariantFrozen, ThemedVariant(domain.ThemeElemental, scriptedRand(0.39, 0.65)))
		assert.Equal(t, domain.VariantRadiant, ThemedVariant(domain.ThemeElemental, scriptedRand(0.39, 0.66)))
	})

	t.Run("failed elemental roll uses the generic pool", func(t *testing.T) {
		got := ThemedVariant(domain.ThemeElemental, scriptedRand(0.40, 0.95))
		assert.Equal(t, domain.VariantGlitch, got)
	})

	t.Run("generic pool thresholds", func(t *testing.T) {
		cases := []struct {
			draw float64
			want domain.Variant
		}{
			{0.0, domain.VariantFoil},
			{0.4999, domain.VariantFoil},
			{0.5, domain.VariantHolographic},
			{0.6999, domain.VariantHolographic},
			{0.7, domain.VariantMagma},
			{0.7999, domain.VariantMagma},
			{0.8, domain.VariantFrozen},
			{0.8999, domain.VariantFrozen},
			{0.9, domain.VariantGlitch},
			{0.9999, domain.VariantGlitch},
		}

		for _, tc := range cases {
			got := ThemedVariant("Fantasy", scriptedRand(tc.draw))
			assert.Equal(t, tc.want, got, "draw %v", tc.draw)
		}
	})
}

func TestRollRadiantOverride(t *testing.T) {
	t.Run("diamond packs roll at one percent", func(t *testing.T) {
		assert.True(t, RollRadiantOverride(domain.ThemeDiamond, scriptedRand(0.009)))
		assert.False(t, RollRadiantOverride(domain.ThemeDiamond, scriptedRand(0.01)))
	})

	t.Run("other packs roll at a tenth of a percent", func(t *testing.T) {
		assert.True(t, RollRadiantOverride("Gold", scriptedRand(0.0009)))
		assert.False(t, RollRadiantOverride("Gold", scriptedRand(0.001)))
	})
}
