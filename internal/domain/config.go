package domain

// CosmeticType distinguishes the two cosmetic slots.
type CosmeticType string

const (
	CosmeticCardBack    CosmeticType = "CARD_BACK"
	CosmeticBorderStyle CosmeticType = "BORDER_STYLE"
)

// CosmeticItem is a purchasable visual customization. Data holds an image
// URI for card backs or a style class string for borders.
type CosmeticItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CosmeticType `json:"type"`
	Price     int          `json:"price" validate:"min=0"`
	Data      string       `json:"data"`
	Purchased bool         `json:"purchased"`
}

// SFXType keys the customizable sound slots.
type SFXType string

const (
	SFXOpenPack        SFXType = "openPack"
	SFXRevealCommon    SFXType = "revealCommon"
	SFXRevealRare      SFXType = "revealRare"
	SFXRevealEpic      SFXType = "revealEpic"
	SFXRevealLegendary SFXType = "revealLegendary"
	SFXRevealFoil      SFXType = "revealFoil"
	SFXSell            SFXType = "sell"
)

// AudioTrack is an admin-uploaded music track stored in config.
type AudioTrack struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	DataURI string `json:"dataUri"`
}

// GameConfig is the admin-editable catalog plus cosmetics and audio. It is
// persisted under the "config" namespace and reconciled against the built-in
// defaults on load.
type GameConfig struct {
	Cards             []CardDefinition   `json:"cards"`
	Packs             []PackDefinition   `json:"packs"`
	AudioTracks       []AudioTrack       `json:"audioTracks"`
	CustomSFX         map[SFXType]string `json:"customSFX"`
	GameLogoURI       string             `json:"gameLogoUri,omitempty"`
	ActiveCardBackURI string             `json:"activeCardBackUri,omitempty"`
	ActiveBorderStyle string             `json:"activeBorderStyle,omitempty"`
	Cosmetics         []CosmeticItem     `json:"cosmetics"`
}

// FindCard returns the definition with the given id, or nil.
func (c *GameConfig) FindCard(id string) *CardDefinition {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			return &c.Cards[i]
		}
	}
	return nil
}

// FindPack returns the pack with the given id, or nil.
func (c *GameConfig) FindPack(id string) *PackDefinition {
	for i := range c.Packs {
		if c.Packs[i].ID == id {
			return &c.Packs[i]
		}
	}
	return nil
}

// FindCosmetic returns the cosmetic with the given id, or nil.
func (c *GameConfig) FindCosmetic(id string) *CosmeticItem {
	for i := range c.Cosmetics {
		if c.Cosmetics[i].ID == id {
			return &c.Cosmetics[i]
		}
	}
	return nil
}

// Progress is the player-owned state persisted under the "progress"
// namespace.
type Progress struct {
	Gold       int            `json:"gold"`
	Inventory  []CardInstance `json:"inventory"`
	Stats      GameStats      `json:"stats"`
	BattleDeck []string       `json:"battleDeck"`
}
