package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
)

func TestToggleBattleDeck(t *testing.T) {
	ctx := context.Background()

	t.Run("adds then removes", func(t *testing.T) {
		progress := freshProgress()
		progress.Inventory = []domain.CardInstance{
			instance("i1", "c1", domain.RarityCommon, domain.VariantStandard, 5),
		}
		f := newFixture(progress)

		inDeck, ok := f.svc.ToggleBattleDeck(ctx, "i1")
		require.True(t, ok)
		assert.True(t, inDeck)
		assert.Equal(t, []string{"i1"}, f.svc.State().BattleDeck)

		inDeck, ok = f.svc.ToggleBattleDeck(ctx, "i1")
		require.True(t, ok)
		assert.False(t, inDeck)
		assert.Empty(t, f.svc.State().BattleDeck)
	})

	t.Run("unknown instance refused", func(t *testing.T) {
		f := newFixture(freshProgress())
		_, ok := f.svc.ToggleBattleDeck(ctx, "ghost")
		assert.False(t, ok)
	})

	t.Run("full deck refuses silently, removal still works", func(t *testing.T) {
		progress := freshProgress()
		for i := 0; i < BattleDeckCap+1; i++ {
			id := fmt.Sprintf("i%d", i)
			progress.Inventory = append(progress.Inventory,
				instance(id, "c1", domain.RarityCommon, domain.VariantStandard, 5))
			if i < BattleDeckCap {
				progress.BattleDeck = append(progress.BattleDeck, id)
			}
		}
		f := newFixture(progress)

		_, ok := f.svc.ToggleBattleDeck(ctx, fmt.Sprintf("i%d", BattleDeckCap))
		assert.False(t, ok)
		assert.Len(t, f.svc.State().BattleDeck, BattleDeckCap)

		inDeck, ok := f.svc.ToggleBattleDeck(ctx, "i0")
		require.True(t, ok)
		assert.False(t, inDeck)
		assert.Len(t, f.svc.State().BattleDeck, BattleDeckCap-1)
	})
}

func TestRecordBattleResult(t *testing.T) {
	ctx := context.Background()

	t.Run("win credits gold and counts", func(t *testing.T) {
		f := newFixture(freshProgress())

		f.svc.RecordBattleResult(ctx, true, 50, nil)

		state := f.svc.State()
		assert.Equal(t, 150, state.Gold)
		assert.Equal(t, 1, state.Stats.BattlesWon)
		assert.Equal(t, 50, state.Stats.TotalGoldEarned)

		events := f.bus.Events()
		require.Len(t, events, 1)
		assert.Equal(t, event.BattleRecorded, events[0].Type)
	})

	t.Run("loss can push the wallet into debt", func(t *testing.T) {
		progress := freshProgress()
		progress.Gold = 10
		f := newFixture(progress)

		f.svc.RecordBattleResult(ctx, false, -15, nil)

		state := f.svc.State()
		assert.Equal(t, -5, state.Gold)
		assert.Equal(t, 1, state.Stats.BattlesLost)
		// Earnings only track positive deltas.
		assert.Zero(t, state.Stats.TotalGoldEarned)
	})

	t.Run("won card joins the collection", func(t *testing.T) {
		f := newFixture(freshProgress())
		won := instance("prize", "c9", domain.RarityLegendary, domain.VariantStandard, 1000)

		f.svc.RecordBattleResult(ctx, true, 0, &won)

		require.Len(t, f.svc.Collection(), 1)
		state := f.svc.State()
		assert.Equal(t, 1, state.Stats.CardsObtained)
		assert.Equal(t, domain.RarityLegendary, state.Stats.HighestRarityFound)
	})
}
