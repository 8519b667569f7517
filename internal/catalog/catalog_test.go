package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossholt/cardforge/internal/domain"
)

func TestMergeCards(t *testing.T) {
	t.Run("adds new defaults without touching saved entries", func(t *testing.T) {
		saved := []domain.CardDefinition{
			{ID: "c1", Name: "Renamed Slime", Theme: "Fantasy", ImageID: 10, ImageURI: "data:image/png;base64,custom"},
		}
		defaults := []domain.CardDefinition{
			{ID: "c1", Name: "Slime", Theme: "Fantasy", ImageID: 10},
			{ID: "c2", Name: "Goblin", Theme: "Fantasy", ImageID: 11},
		}

		merged := MergeCards(saved, defaults)

		require.Len(t, merged, 2)
		assert.Equal(t, "Renamed Slime", merged[0].Name, "saved entry must not be overwritten")
		assert.Equal(t, "data:image/png;base64,custom", merged[0].ImageURI, "admin art override must survive")
		assert.Equal(t, "c2", merged[1].ID, "new default must be appended")
	})

	t.Run("produces no duplicate ids", func(t *testing.T) {
		merged := MergeCards(DefaultCards(), DefaultCards())

		ids := make(map[string]int)
		for _, c := range merged {
			ids[c.ID]++
		}
		for id, n := range ids {
			assert.Equal(t, 1, n, "id %s duplicated", id)
		}
	})
}

func TestReconcile(t *testing.T) {
	t.Run("nil save yields defaults and wants a write-back", func(t *testing.T) {
		cfg, changed := Reconcile(nil)
		assert.Len(t, cfg.Cards, len(DefaultCards()))
		assert.Len(t, cfg.Packs, len(DefaultPacks()))
		assert.True(t, changed, "first boot must persist the default catalog")
	})

	t.Run("backfills sections missing from older saves", func(t *testing.T) {
		saved := &domain.GameConfig{
			Cards: []domain.CardDefinition{{ID: "c1", Name: "Slime", Theme: "Fantasy", ImageID: 10}},
		}

		cfg, changed := Reconcile(saved)

		assert.NotNil(t, cfg.CustomSFX)
		assert.NotNil(t, cfg.AudioTracks)
		assert.NotEmpty(t, cfg.Packs)
		assert.NotEmpty(t, cfg.Cosmetics)
		assert.Len(t, cfg.Cards, len(DefaultCards()), "new default cards merged in")
		assert.True(t, changed, "merged additions must be written back")
	})

	t.Run("keeps saved packs and cosmetics", func(t *testing.T) {
		saved := &domain.GameConfig{
			Packs:     []domain.PackDefinition{{ID: "custom", Name: "House Pack", Price: 1, CardCount: 1}},
			Cosmetics: []domain.CosmeticItem{{ID: "cb_red", Purchased: true}},
		}

		cfg, _ := Reconcile(saved)

		require.Len(t, cfg.Packs, 1)
		assert.Equal(t, "custom", cfg.Packs[0].ID)
		require.Len(t, cfg.Cosmetics, 1)
		assert.True(t, cfg.Cosmetics[0].Purchased, "purchase state preserved")
	})

	t.Run("a fully current save needs no write-back", func(t *testing.T) {
		saved := DefaultConfig()

		cfg, changed := Reconcile(&saved)

		assert.Len(t, cfg.Cards, len(DefaultCards()))
		assert.False(t, changed)
	})
}

func TestValidate(t *testing.T) {
	t.Run("default catalog is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.NoError(t, Validate(&cfg))
	})

	t.Run("rejects duplicate card ids", func(t *testing.T) {
		cfg := domain.GameConfig{Cards: []domain.CardDefinition{{ID: "x"}, {ID: "x"}}}
		assert.Error(t, Validate(&cfg))
	})

	t.Run("rejects negative pack price", func(t *testing.T) {
		cfg := domain.GameConfig{Packs: []domain.PackDefinition{{ID: "p", Price: -5}}}
		assert.Error(t, Validate(&cfg))
	})

	t.Run("rejects negative rarity weight", func(t *testing.T) {
		cfg := domain.GameConfig{Packs: []domain.PackDefinition{{
			ID: "p", RarityWeights: map[domain.Rarity]int{domain.RarityCommon: -1},
		}}}
		assert.Error(t, Validate(&cfg))
	})
}
