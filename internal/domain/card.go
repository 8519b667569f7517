package domain

// Rarity represents one of the five fixed card tiers governing base value.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// RarityOrder lists the tiers in canonical draw order. The weighted sampler
// walks this exact order, so a seeded random sequence always resolves to the
// same tier. Do not reorder.
var RarityOrder = [5]Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

// Rank returns the position of the rarity in the canonical order.
// Unknown rarities rank below COMMON.
func (r Rarity) Rank() int {
	for i, tier := range RarityOrder {
		if tier == r {
			return i
		}
	}
	return -1
}

// BetterThan reports whether r is a strictly higher tier than other.
// An empty/unknown other always loses.
func (r Rarity) BetterThan(other Rarity) bool {
	return r.Rank() > other.Rank()
}

// Variant represents the cosmetic/economic modifier applied to a card
// instance, multiplying its value independent of rarity.
type Variant string

const (
	VariantStandard    Variant = "STANDARD"
	VariantFoil        Variant = "FOIL"
	VariantHolographic Variant = "HOLOGRAPHIC"
	VariantCosmic      Variant = "COSMIC"
	VariantHaunted     Variant = "HAUNTED"
	VariantMagma       Variant = "MAGMA"
	VariantFrozen      Variant = "FROZEN"
	VariantGlitch      Variant = "GLITCH"
	VariantRadiant     Variant = "RADIANT"
)

// Card themes with special variant pools.
const (
	ThemeCosmic    = "Cosmic"
	ThemeHorror    = "Horror"
	ThemeElemental = "Elemental"
)

// ThemeDiamond is the premium pack theme with boosted variant chances.
const ThemeDiamond = "Diamond"

// CardDefinition is a catalog entry owned by the config store. The ID is the
// stable identity; name and art may be edited by an admin, the ID never
// changes.
type CardDefinition struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Theme    string `json:"theme"`
	ImageID  int    `json:"imageId"`
	ImageURI string `json:"imageUri,omitempty"` // base64 data URI for admin uploads
}

// PackDefinition describes a purchasable pack: its price, how many cards it
// yields and the rarity weight table used to draw each one.
type PackDefinition struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Theme         string         `json:"theme"`
	Price         int            `json:"price" validate:"min=0"`
	CardCount     int            `json:"cardCount" validate:"min=0"`
	Description   string         `json:"description"`
	RarityWeights map[Rarity]int `json:"rarityWeights"`
}

// CardInstance is a concrete owned card. Value is computed once at
// generation and never recomputed; catalog edits do not retroactively change
// it. JSON tags match the persisted snapshot shape.
type CardInstance struct {
	InstanceID   string  `json:"instanceId"`
	DefinitionID string  `json:"definitionId"`
	Name         string  `json:"name"`
	Theme        string  `json:"theme"`
	ImageID      int     `json:"imageId"`
	ImageURI     string  `json:"imageUri,omitempty"`
	Rarity       Rarity  `json:"rarity"`
	Variant      Variant `json:"variant"`
	IsFoil       bool    `json:"isFoil"` // legacy save field, true for any non-standard variant
	IsLocked     bool    `json:"isLocked"`
	Value        int     `json:"value"`
	ObtainedAt   int64   `json:"obtainedAt"` // unix milliseconds
}
