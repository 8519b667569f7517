package metrics

import (
	"context"

	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/event"
	"github.com/mossholt/cardforge/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.PackOpened,
		event.CardsSold,
		event.BattleRecorded,
		event.CosmeticPurchased,
		event.ProgressReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PackOpened:
		payload, err := event.DecodePayload[domain.PackOpenedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}
		PacksOpened.WithLabelValues(payload.PackID).Inc()
		GoldSpent.Add(float64(payload.Price))
		for _, card := range payload.Cards {
			CardsGenerated.WithLabelValues(string(card.Rarity), string(card.Variant)).Inc()
		}

	case event.CardsSold:
		payload, err := event.DecodePayload[domain.CardsSoldPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}
		CardsSold.Add(float64(len(payload.InstanceIDs)))
		GoldEarned.Add(float64(payload.TotalValue))

	case event.BattleRecorded:
		payload, err := event.DecodePayload[domain.BattleRecordedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}
		outcome := OutcomeLost
		if payload.Won {
			outcome = OutcomeWon
		}
		BattlesRecorded.WithLabelValues(outcome).Inc()
		if payload.GoldDelta > 0 {
			GoldEarned.Add(float64(payload.GoldDelta))
		} else {
			GoldSpent.Add(float64(-payload.GoldDelta))
		}

	case event.CosmeticPurchased:
		payload, err := event.DecodePayload[domain.CosmeticPurchasedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}
		CosmeticsPurchased.Inc()
		GoldSpent.Add(float64(payload.Price))
	}

	return nil
}
