package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mossholt/cardforge/internal/domain"
)

// Type represents the type of an event
type Type string

// Event types published by the game engine.
const (
	PackOpened        Type = Type(domain.EventTypePackOpened)
	CardsSold         Type = Type(domain.EventTypeCardsSold)
	BattleRecorded    Type = Type(domain.EventTypeBattleRecorded)
	CosmeticPurchased Type = Type(domain.EventTypeCosmeticPurchased)
	ProgressReset     Type = Type(domain.EventTypeProgressReset)
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Type-safe event constructors

// NewPackOpenedEvent creates a pack.opened event
func NewPackOpenedEvent(packID string, price int, cards []domain.CardInstance) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PackOpened,
		Payload: domain.PackOpenedPayload{
			PackID:    packID,
			Price:     price,
			Cards:     cards,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCardsSoldEvent creates a cards.sold event
func NewCardsSoldEvent(instanceIDs []string, totalValue int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CardsSold,
		Payload: domain.CardsSoldPayload{
			InstanceIDs: instanceIDs,
			TotalValue:  totalValue,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewBattleRecordedEvent creates a battle.recorded event
func NewBattleRecordedEvent(won bool, goldDelta int, cardWon bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleRecorded,
		Payload: domain.BattleRecordedPayload{
			Won:       won,
			GoldDelta: goldDelta,
			CardWon:   cardWon,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCosmeticPurchasedEvent creates a cosmetic.purchased event
func NewCosmeticPurchasedEvent(cosmeticID string, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CosmeticPurchased,
		Payload: domain.CosmeticPurchasedPayload{
			CosmeticID: cosmeticID,
			Price:      price,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewProgressResetEvent creates a progress.reset event
func NewProgressResetEvent() Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressReset,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; a failing handler does not stop the rest.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
