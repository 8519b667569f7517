package game

import (
	"context"
	"sync"

	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/inventory"
	"github.com/mossholt/cardforge/internal/persist"
)

// CardFactory generates card instances for opened packs.
type CardFactory interface {
	GenerateMany(pack domain.PackDefinition, cards []domain.CardDefinition, count int) []domain.CardInstance
}

// Persister schedules and performs durable writes of the two namespaces.
type Persister interface {
	Schedule(namespace string, snapshot persist.Snapshot)
	Flush(ctx context.Context, namespace string, snapshot persist.Snapshot) error
	Clear(ctx context.Context, namespace string) error
}

// StateView is a read-only summary of the player state.
type StateView struct {
	Gold       int              `json:"gold"`
	Stats      domain.GameStats `json:"stats"`
	BattleDeck []string         `json:"battleDeck"`
}

// Service defines the interface for game operations. Validation failures on
// gameplay operations (unknown ids, unaffordable purchases, full deck) are
// silent no-ops, not errors; the returned values tell the caller what
// actually happened.
type Service interface {
	State() StateView
	Collection() []domain.CardInstance
	Config() domain.GameConfig

	BuyPack(ctx context.Context, packID string) []domain.CardInstance
	SellCard(ctx context.Context, instanceID string) int
	SellMultipleCards(ctx context.Context, instanceIDs []string) int
	SellAllDuplicates(ctx context.Context) int
	SellAllInventory(ctx context.Context) int
	ToggleLock(ctx context.Context, instanceID string) (locked, ok bool)
	ToggleBattleDeck(ctx context.Context, instanceID string) (inDeck, ok bool)
	RecordBattleResult(ctx context.Context, won bool, goldDelta int, wonCard *domain.CardInstance)
	ResetProgress(ctx context.Context) error
	FactoryReset(ctx context.Context) error

	UpdateConfig(ctx context.Context, cfg domain.GameConfig) error
	UpdateCardImage(ctx context.Context, cardID string, imageID int, imageURI string) error
	UpdateCustomSFX(ctx context.Context, slot domain.SFXType, dataURI string)
	UpdateCardBack(ctx context.Context, uri string)
	UpdateGameLogo(ctx context.Context, uri string)
	BuyCosmetic(ctx context.Context, cosmeticID string) bool
	EquipCosmetic(ctx context.Context, cosmeticID string) bool
	AddAudioTrack(ctx context.Context, track domain.AudioTrack)
	RemoveAudioTrack(ctx context.Context, trackID string)

	// Snapshots exposes the per-namespace snapshot functions, used to flush
	// pending state on graceful shutdown.
	Snapshots() map[string]persist.Snapshot
}

// service owns the whole mutable game state behind one mutex. Operations are
// short and in-memory; durability happens asynchronously through the
// persister.
type service struct {
	mu     sync.Mutex
	cfg    domain.GameConfig
	gold   int
	ledger *inventory.Ledger
	stats  domain.GameStats
	deck   []string

	factory   CardFactory
	persister Persister
	bus       event.Bus
}

// NewService creates a game service from a reconciled config and a loaded
// progress snapshot.
func NewService(cfg domain.GameConfig, progress domain.Progress, factory CardFactory, persister Persister, bus event.Bus) Service {
	return &service{
		cfg:       cfg,
		gold:      progress.Gold,
		ledger:    inventory.NewLedger(progress.Inventory),
		stats:     progress.Stats,
		deck:      append([]string{}, progress.BattleDeck...),
		factory:   factory,
		persister: persister,
		bus:       bus,
	}
}

func (s *service) State() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StateView{
		Gold:       s.gold,
		Stats:      s.stats,
		BattleDeck: append([]string{}, s.deck...),
	}
}

func (s *service) Collection() []domain.CardInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Cards()
}

func (s *service) Config() domain.GameConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	//nolint:errcheck // subscriber failures never abort game operations
	_ = s.bus.Publish(ctx, evt)
}

// evictFromDeck drops the given ids from the battle deck.
func (s *service) evictFromDeck(ids []string) {
	if len(ids) == 0 || len(s.deck) == 0 {
		return
	}
	removed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		removed[id] = struct{}{}
	}
	kept := s.deck[:0]
	for _, id := range s.deck {
		if _, gone := removed[id]; !gone {
			kept = append(kept, id)
		}
	}
	s.deck = kept
}
