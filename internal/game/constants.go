package game

// StartingGold is the wallet balance for a fresh or reset save.
const StartingGold = 100

// BattleDeckCap is the maximum number of cards in the battle deck.
const BattleDeckCap = 10

// Log message constants
const (
	LogMsgPackUnknown      = "Pack purchase refused, unknown pack"
	LogMsgPackUnaffordable = "Pack purchase refused, insufficient gold"
	LogMsgPackOpened       = "Pack opened"
	LogMsgCardsSold        = "Cards sold"
	LogMsgBattleRecorded   = "Battle result recorded"
	LogMsgProgressReset    = "Progress reset"
	LogMsgFactoryReset     = "Factory reset"
	LogMsgConfigUpdated    = "Game config replaced"
	LogMsgCosmeticRefused  = "Cosmetic purchase refused"
	LogMsgCosmeticBought   = "Cosmetic purchased"
)
