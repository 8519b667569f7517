package domain

// GameStats tracks monotonically non-decreasing session counters.
// HighestRarityFound only ever improves under the canonical rarity order.
type GameStats struct {
	PacksOpened        int    `json:"packsOpened"`
	CardsObtained      int    `json:"cardsObtained"`
	TotalGoldEarned    int    `json:"totalGoldEarned"`
	HighestRarityFound Rarity `json:"highestRarityFound,omitempty"`
	BattlesWon         int    `json:"battlesWon"`
	BattlesLost        int    `json:"battlesLost"`
}

// RaiseHighestRarity updates HighestRarityFound if the candidate beats the
// running maximum.
func (s *GameStats) RaiseHighestRarity(candidate Rarity) {
	if candidate.BetterThan(s.HighestRarityFound) {
		s.HighestRarityFound = candidate
	}
}
