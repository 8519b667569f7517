package domain

// Event type names published on the in-process bus. Collaborators (sound,
// particles, overlays) subscribe to these; the engine never calls them
// directly.
const (
	EventTypePackOpened        = "pack.opened"
	EventTypeCardsSold         = "cards.sold"
	EventTypeBattleRecorded    = "battle.recorded"
	EventTypeCosmeticPurchased = "cosmetic.purchased"
	EventTypeProgressReset     = "progress.reset"
)

// PackOpenedPayload describes a completed pack purchase.
type PackOpenedPayload struct {
	PackID    string         `json:"pack_id"`
	Price     int            `json:"price"`
	Cards     []CardInstance `json:"cards"`
	Timestamp int64          `json:"timestamp"`
}

// CardsSoldPayload is the "sale occurred" notification; the coin particle
// and sell-sound collaborators key off it.
type CardsSoldPayload struct {
	InstanceIDs []string `json:"instance_ids"`
	TotalValue  int      `json:"total_value"`
	Timestamp   int64    `json:"timestamp"`
}

// BattleRecordedPayload describes an applied battle outcome.
type BattleRecordedPayload struct {
	Won       bool  `json:"won"`
	GoldDelta int   `json:"gold_delta"`
	CardWon   bool  `json:"card_won"`
	Timestamp int64 `json:"timestamp"`
}

// CosmeticPurchasedPayload describes a cosmetic purchase.
type CosmeticPurchasedPayload struct {
	CosmeticID string `json:"cosmetic_id"`
	Price      int    `json:"price"`
	Timestamp  int64  `json:"timestamp"`
}
