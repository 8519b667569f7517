package catalog

import "github.com/mossholt/cardforge/internal/domain"

// DefaultCards is the built-in card catalog. New entries added here ship
// with the build and are merged into existing saves on load; ids are stable
// and must never be reused.
func DefaultCards() []domain.CardDefinition {
	return []domain.CardDefinition{
		// Fantasy
		{ID: "c1", Name: "Slime", Theme: "Fantasy", ImageID: 10},
		{ID: "c2", Name: "Goblin", Theme: "Fantasy", ImageID: 11},
		{ID: "c3", Name: "Knight", Theme: "Fantasy", ImageID: 12},
		{ID: "c4", Name: "Dragon", Theme: "Fantasy", ImageID: 13},
		{ID: "c_wiz", Name: "Wizard", Theme: "Fantasy", ImageID: 14},
		{ID: "c_mimic", Name: "Mimic Chest", Theme: "Fantasy", ImageID: 15},
		{ID: "c_skel", Name: "Skeleton King", Theme: "Fantasy", ImageID: 16},
		{ID: "c_phx", Name: "Phoenix", Theme: "Fantasy", ImageID: 17},
		{ID: "c_uni", Name: "Unicorn", Theme: "Fantasy", ImageID: 101},
		{ID: "c_grif", Name: "Griffin", Theme: "Fantasy", ImageID: 102},
		{ID: "c_hydra", Name: "Hydra", Theme: "Fantasy", ImageID: 103},

		// Sci-Fi
		{ID: "c5", Name: "Robot", Theme: "Sci-Fi", ImageID: 20},
		{ID: "c6", Name: "Laser Gun", Theme: "Sci-Fi", ImageID: 21},
		{ID: "c7", Name: "Alien", Theme: "Sci-Fi", ImageID: 22},
		{ID: "c8", Name: "Spaceship", Theme: "Sci-Fi", ImageID: 23},
		{ID: "c_mech", Name: "Mecha Suit", Theme: "Sci-Fi", ImageID: 24},
		{ID: "c_cyborg", Name: "Cyborg", Theme: "Sci-Fi", ImageID: 25},
		{ID: "c_plasma", Name: "Plasma Blade", Theme: "Sci-Fi", ImageID: 26},
		{ID: "c_station", Name: "Space Station", Theme: "Sci-Fi", ImageID: 120},
		{ID: "c_droid", Name: "Battle Droid", Theme: "Sci-Fi", ImageID: 121},

		// Horror
		{ID: "c9", Name: "Zombie", Theme: "Horror", ImageID: 30},
		{ID: "c10", Name: "Vampire", Theme: "Horror", ImageID: 31},
		{ID: "c_ghost", Name: "Poltergeist", Theme: "Horror", ImageID: 32},
		{ID: "c_reaper", Name: "Grim Reaper", Theme: "Horror", ImageID: 33},
		{ID: "c_wolfman", Name: "Werewolf", Theme: "Horror", ImageID: 130},
		{ID: "c_mummy", Name: "Ancient Mummy", Theme: "Horror", ImageID: 131},
		{ID: "c_witch", Name: "Swamp Witch", Theme: "Horror", ImageID: 132},

		// Cyberpunk
		{ID: "c_neon", Name: "Neon Bike", Theme: "Cyberpunk", ImageID: 40},
		{ID: "c_hack", Name: "Hacker", Theme: "Cyberpunk", ImageID: 41},
		{ID: "c_kat", Name: "Nano Katana", Theme: "Cyberpunk", ImageID: 42},
		{ID: "c_chip", Name: "Data Chip", Theme: "Cyberpunk", ImageID: 43},
		{ID: "c_goggles", Name: "VR Goggles", Theme: "Cyberpunk", ImageID: 44},
		{ID: "c_drone", Name: "Spy Drone", Theme: "Cyberpunk", ImageID: 140},
		{ID: "c_synth", Name: "Synth Pop Star", Theme: "Cyberpunk", ImageID: 141},

		// Nature
		{ID: "c_tree", Name: "Ancient Oak", Theme: "Nature", ImageID: 50},
		{ID: "c_wolf", Name: "Spirit Wolf", Theme: "Nature", ImageID: 51},
		{ID: "c_shroom", Name: "Mushroom", Theme: "Nature", ImageID: 52},
		{ID: "c_crys", Name: "Mana Crystal", Theme: "Nature", ImageID: 53},
		{ID: "c_flower", Name: "Lotus", Theme: "Nature", ImageID: 54},
		{ID: "c_ent", Name: "Treant", Theme: "Nature", ImageID: 150},
		{ID: "c_fairy", Name: "Pixie", Theme: "Nature", ImageID: 151},

		// Food
		{ID: "c_burg", Name: "Pixel Burger", Theme: "Food", ImageID: 60},
		{ID: "c_pot", Name: "Health Potion", Theme: "Food", ImageID: 61},
		{ID: "c_ramen", Name: "Ramen Bowl", Theme: "Food", ImageID: 62},
		{ID: "c_sushi", Name: "Sushi Roll", Theme: "Food", ImageID: 63},
		{ID: "c_coffee", Name: "Hot Coffee", Theme: "Food", ImageID: 64},
		{ID: "c_pizza", Name: "Slice of Pizza", Theme: "Food", ImageID: 65},
		{ID: "c_cake", Name: "Birthday Cake", Theme: "Food", ImageID: 160},
		{ID: "c_donut", Name: "Glazed Donut", Theme: "Food", ImageID: 161},

		// Retro Tech
		{ID: "c_flop", Name: "Floppy Disk", Theme: "Retro", ImageID: 80},
		{ID: "c_joy", Name: "Joystick", Theme: "Retro", ImageID: 81},
		{ID: "c_crt", Name: "CRT Monitor", Theme: "Retro", ImageID: 82},
		{ID: "c_cart", Name: "Game Cartridge", Theme: "Retro", ImageID: 83},
		{ID: "c_boy", Name: "Handheld", Theme: "Retro", ImageID: 84},
		{ID: "c_vhs", Name: "VHS Tape", Theme: "Retro", ImageID: 180},
		{ID: "c_walk", Name: "Cassette Player", Theme: "Retro", ImageID: 181},

		// Cosmic
		{ID: "c_bh", Name: "Black Hole", Theme: "Cosmic", ImageID: 70},
		{ID: "c_neb", Name: "Nebula", Theme: "Cosmic", ImageID: 71},
		{ID: "c_star", Name: "Supernova", Theme: "Cosmic", ImageID: 72},
		{ID: "c_comet", Name: "Comet", Theme: "Cosmic", ImageID: 73},
		{ID: "c_planet", Name: "Ringed Planet", Theme: "Cosmic", ImageID: 170},
		{ID: "c_quas", Name: "Quasar", Theme: "Cosmic", ImageID: 171},
		{ID: "c_void", Name: "Void Walker", Theme: "Cosmic", ImageID: 172},

		// Elemental
		{ID: "c_fire", Name: "Fire Elemental", Theme: "Elemental", ImageID: 90},
		{ID: "c_ice", Name: "Ice Golem", Theme: "Elemental", ImageID: 91},
		{ID: "c_thun", Name: "Thunder Bird", Theme: "Elemental", ImageID: 92},
		{ID: "c_earth", Name: "Rock Golem", Theme: "Elemental", ImageID: 93},
	}
}

// DefaultPacks returns the built-in pack definitions and their rarity
// weight tables.
func DefaultPacks() []domain.PackDefinition {
	return []domain.PackDefinition{
		{
			ID:          "p1",
			Name:        "Starter Pack",
			Theme:       "Basic",
			Price:       10,
			CardCount:   3,
			Description: "Cheap and cheerful.",
			RarityWeights: map[domain.Rarity]int{
				domain.RarityCommon:    80,
				domain.RarityUncommon:  15,
				domain.RarityRare:      4,
				domain.RarityEpic:      1,
				domain.RarityLegendary: 0,
			},
		},
		{
			ID:          "p2",
			Name:        "Silver Pack",
			Theme:       "Silver",
			Price:       50,
			CardCount:   5,
			Description: "Better chances.",
			RarityWeights: map[domain.Rarity]int{
				domain.RarityCommon:    50,
				domain.RarityUncommon:  30,
				domain.RarityRare:      15,
				domain.RarityEpic:      4,
				domain.RarityLegendary: 1,
			},
		},
		{
			ID:          "p3",
			Name:        "Gold Pack",
			Theme:       "Gold",
			Price:       250,
			CardCount:   5,
			Description: "High stakes!",
			RarityWeights: map[domain.Rarity]int{
				domain.RarityCommon:    20,
				domain.RarityUncommon:  30,
				domain.RarityRare:      30,
				domain.RarityEpic:      15,
				domain.RarityLegendary: 5,
			},
		},
		{
			ID:          "p_cosmic",
			Name:        "Diamond Pack",
			Theme:       domain.ThemeDiamond,
			Price:       2500,
			CardCount:   10,
			Description: "The ultimate luxury. High variant chance!",
			RarityWeights: map[domain.Rarity]int{
				domain.RarityCommon:    0,
				domain.RarityUncommon:  10,
				domain.RarityRare:      30,
				domain.RarityEpic:      40,
				domain.RarityLegendary: 20,
			},
		},
	}
}

// DefaultCosmetics returns the built-in cosmetic shop items.
func DefaultCosmetics() []domain.CosmeticItem {
	return []domain.CosmeticItem{
		{ID: "cb_default", Name: "Classic Blue", Type: domain.CosmeticCardBack, Price: 0, Purchased: true},
		{ID: "cb_red", Name: "Ruby Red", Type: domain.CosmeticCardBack, Price: 500, Data: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="},
		{ID: "cb_gold", Name: "Midas Touch", Type: domain.CosmeticCardBack, Price: 2000, Data: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8/5+hHgAHggJ/PchI7wAAAABJRU5ErkJggg=="},
		{ID: "bs_default", Name: "Standard Borders", Type: domain.CosmeticBorderStyle, Price: 0, Purchased: true},
		{ID: "bs_double", Name: "Double Frame", Type: domain.CosmeticBorderStyle, Price: 1000, Data: "border-double border-8"},
		{ID: "bs_neon", Name: "Neon Glow", Type: domain.CosmeticBorderStyle, Price: 2500, Data: "shadow-glow border-dashed"},
		{ID: "bs_rounded", Name: "Super Round", Type: domain.CosmeticBorderStyle, Price: 500, Data: "rounded-3xl"},
	}
}

// DefaultConfig assembles the full built-in game config.
func DefaultConfig() domain.GameConfig {
	return domain.GameConfig{
		Cards:       DefaultCards(),
		Packs:       DefaultPacks(),
		AudioTracks: []domain.AudioTrack{},
		CustomSFX:   map[domain.SFXType]string{},
		Cosmetics:   DefaultCosmetics(),
	}
}
