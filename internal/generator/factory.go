package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mossholt/cardforge/internal/domain"
)

// Factory composes the rarity sampler, variant selector and valuation into
// fully-formed owned card instances. Randomness, clock and id generation are
// injected so pack openings replay deterministically under test.
type Factory struct {
	rnd   func() float64
	now   func() time.Time
	newID func() string
}

// Option customizes a Factory.
type Option func(*Factory)

// WithRand replaces the uniform [0,1) source.
func WithRand(rnd func() float64) Option {
	return func(f *Factory) { f.rnd = rnd }
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(f *Factory) { f.now = now }
}

// WithIDGenerator replaces the instance id source.
func WithIDGenerator(newID func() string) Option {
	return func(f *Factory) { f.newID = newID }
}

// NewFactory creates a card factory with production defaults.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		rnd:   rand.Float64, //nolint:gosec // Game drop randomness, not security critical
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Generate produces one card instance for the given pack. The catalog must
// be non-empty; that is the caller's precondition. The draw order is fixed:
// rarity, special roll, definition, themed/generic pool, radiant override.
// Changing it would break replayability of seeded sequences.
func (f *Factory) Generate(pack domain.PackDefinition, cards []domain.CardDefinition) domain.CardInstance {
	rarity := SampleRarity(pack.RarityWeights, f.rnd)
	special := RollSpecial(pack.Theme, f.rnd)

	def := cards[int(f.rnd()*float64(len(cards)))]

	variant := domain.VariantStandard
	if special {
		variant = ThemedVariant(def.Theme, f.rnd)
	}
	if RollRadiantOverride(pack.Theme, f.rnd) {
		variant = domain.VariantRadiant
	}

	return domain.CardInstance{
		InstanceID:   f.newID(),
		DefinitionID: def.ID,
		Name:         def.Name,
		Theme:        def.Theme,
		ImageID:      def.ImageID,
		ImageURI:     def.ImageURI,
		Rarity:       rarity,
		Variant:      variant,
		IsFoil:       variant != domain.VariantStandard,
		IsLocked:     false,
		Value:        Value(rarity, variant),
		ObtainedAt:   f.now().UnixMilli(),
	}
}

// GenerateMany produces count instances for one pack purchase.
func (f *Factory) GenerateMany(pack domain.PackDefinition, cards []domain.CardDefinition, count int) []domain.CardInstance {
	out := make([]domain.CardInstance, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, f.Generate(pack, cards))
	}
	return out
}
