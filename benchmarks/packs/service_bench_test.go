package packs_bench

import (
	"context"
	"testing"

	"github.com/mossholt/cardforge/internal/catalog"
	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/game"
	"github.com/mossholt/cardforge/internal/generator"
	"github.com/mossholt/cardforge/internal/inventory"
	"github.com/mossholt/cardforge/internal/persist"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubPersister struct{}

func (s *StubPersister) Schedule(namespace string, snapshot persist.Snapshot) {}

func (s *StubPersister) Flush(ctx context.Context, namespace string, snapshot persist.Snapshot) error {
	return nil
}

func (s *StubPersister) Clear(ctx context.Context, namespace string) error { return nil }

// StubBus implements event.Bus
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error       { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

// --- Benchmark Functions ---

// BenchmarkBuyPack measures a full pack purchase: weighted draws, instance
// creation, stat updates and deferred persistence scheduling.
func BenchmarkBuyPack(b *testing.B) {
	svc := game.NewService(catalog.DefaultConfig(), domain.Progress{Gold: 1 << 30},
		generator.NewFactory(), &StubPersister{}, &StubBus{})

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if cards := svc.BuyPack(ctx, "p1"); cards == nil {
			b.Fatal("purchase refused")
		}
	}
}

// BenchmarkGenerateMany isolates the sampler from the service layer.
func BenchmarkGenerateMany(b *testing.B) {
	cfg := catalog.DefaultConfig()
	pack := cfg.Packs[0]
	factory := generator.NewFactory()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		factory.GenerateMany(pack, cfg.Cards, pack.CardCount)
	}
}

// BenchmarkSellAllDuplicates measures dedup over a large collection with a
// high duplicate ratio.
func BenchmarkSellAllDuplicates(b *testing.B) {
	cfg := catalog.DefaultConfig()
	factory := generator.NewFactory()

	seed := factory.GenerateMany(cfg.Packs[0], cfg.Cards, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ledger := inventory.NewLedger(seed)
		b.StartTimer()

		dupes := ledger.DuplicateIDs()
		ledger.Remove(dupes)
	}
}
