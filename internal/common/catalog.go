package common

import (
	"time"

	"github.com/ronin-planets/backend/internal/entity"
)

const (
	MaxKnowledgeLevel = 100
	CooldownDuration  = 12 * time.Hour
	ClaimDeadline     = 48 * time.Hour
)

var Planets = []entity.Planet{
	{
		ID:          1,
		Name:        "Crystalia",
		Resource:    "Crystallite",
		Description: "A shimmering world of energy crystals",
		Theme:       "crystal",
		Color:       "#00ffff",
	},
	{
		ID:          2,
		Name:        "Volcanus",
		Resource:    "Magmastone",
		Description: "A volcanic planet with molten mineral deposits",
		Theme:       "volcanic",
		Color:       "#ff4500",
	},
	{
		ID:          3,
		Name:        "Aquaris",
		Resource:    "Hydroflux",
		Description: "An oceanic world of liquid energy",
		Theme:       "water",
		Color:       "#1e90ff",
	},
	{
		ID:          4,
		Name:        "Terranova",
		Resource:    "Biomatter",
		Description: "A lush planet teeming with organic compounds",
		Theme:       "nature",
		Color:       "#00ff00",
	},
	{
		ID:          5,
		Name:        "Nebulos",
		Resource:    "Stardust",
		Description: "A cosmic realm of swirling stellar particles",
		Theme:       "space",
		Color:       "#9370db",
	},
	{
		ID:          6,
		Name:        "Glacius",
		Resource:    "Cryonite",
		Description: "A frozen world of crystallized gases",
		Theme:       "ice",
		Color:       "#b0e0e6",
	},
	{
		ID:          7,
		Name:        "Solaria",
		Resource:    "Photonite",
		Description: "A radiant planet bathed in light energy",
		Theme:       "light",
		Color:       "#ffd700",
	},
	{
		ID:          8,
		Name:        "Umbros",
		Resource:    "Darkmatter",
		Description: "A shadowy realm of mysterious essence",
		Theme:       "dark",
		Color:       "#4b0082",
	},
	{
		ID:          9,
		Name:        "Electros",
		Resource:    "Voltium",
		Description: "An electrically charged storm world",
		Theme:       "electric",
		Color:       "#ffff00",
	},
	{
		ID:          10,
		Name:        "Aerion",
		Resource:    "Windforce",
		Description: "A gaseous planet with powerful atmospheric currents",
		Theme:       "wind",
		Color:       "#87ceeb",
	},
}

var Recipes = []entity.Recipe{
	{
		ID:          1,
		Name:        "Basic Energy Cell",
		Description: "A simple power source for basic equipment",
		Requirements: []entity.Requirement{
			{Resource: "Crystallite", Amount: 10},
			{Resource: "Voltium", Amount: 5},
			{Resource: "Photonite", Amount: 3},
			{Resource: "Windforce", Amount: 2},
			{Resource: "Hydroflux", Amount: 1},
		},
		Output: 50,
	},
	{
		ID:          2,
		Name:        "Advanced Power Core",
		Description: "High-capacity energy storage unit",
		Requirements: []entity.Requirement{
			{Resource: "Magmastone", Amount: 20},
			{Resource: "Darkmatter", Amount: 15},
			{Resource: "Cryonite", Amount: 10},
			{Resource: "Stardust", Amount: 8},
			{Resource: "Biomatter", Amount: 5},
		},
		Output: 150,
	},
	{
		ID:          3,
		Name:        "Plasma Conduit",
		Description: "Channels energy at extreme efficiency",
		Requirements: []entity.Requirement{
			{Resource: "Voltium", Amount: 15},
			{Resource: "Photonite", Amount: 12},
			{Resource: "Magmastone", Amount: 10},
			{Resource: "Crystallite", Amount: 8},
			{Resource: "Stardust", Amount: 5},
		},
		Output: 120,
	},
	{
		ID:          4,
		Name:        "Cryogenic Stabilizer",
		Description: "Keeps systems at optimal temperatures",
		Requirements: []entity.Requirement{
			{Resource: "Cryonite", Amount: 25},
			{Resource: "Hydroflux", Amount: 15},
			{Resource: "Windforce", Amount: 10},
			{Resource: "Biomatter", Amount: 8},
			{Resource: "Crystallite", Amount: 5},
		},
		Output: 130,
	},
	{
		ID:          5,
		Name:        "Quantum Processor",
		Description: "Computing power beyond conventional limits",
		Requirements: []entity.Requirement{
			{Resource: "Darkmatter", Amount: 30},
			{Resource: "Stardust", Amount: 20},
			{Resource: "Crystallite", Amount: 15},
			{Resource: "Photonite", Amount: 10},
			{Resource: "Voltium", Amount: 8},
		},
		Output: 200,
	},
	{
		ID:          6,
		Name:        "Bio-Synthesizer",
		Description: "Generates organic compounds from raw materials",
		Requirements: []entity.Requirement{
			{Resource: "Biomatter", Amount: 30},
			{Resource: "Hydroflux", Amount: 20},
			{Resource: "Windforce", Amount: 12},
			{Resource: "Crystallite", Amount: 8},
			{Resource: "Photonite", Amount: 5},
		},
		Output: 140,
	},
	{
		ID:          7,
		Name:        "Stellar Navigator",
		Description: "Guides ships through cosmic anomalies",
		Requirements: []entity.Requirement{
			{Resource: "Stardust", Amount: 25},
			{Resource: "Darkmatter", Amount: 18},
			{Resource: "Photonite", Amount: 15},
			{Resource: "Crystallite", Amount: 10},
			{Resource: "Windforce", Amount: 7},
		},
		Output: 170,
	},
	{
		ID:          8,
		Name:        "Thermal Regulator",
		Description: "Manages extreme heat and cold",
		Requirements: []entity.Requirement{
			{Resource: "Magmastone", Amount: 22},
			{Resource: "Cryonite", Amount: 22},
			{Resource: "Hydroflux", Amount: 10},
			{Resource: "Voltium", Amount: 8},
			{Resource: "Biomatter", Amount: 5},
		},
		Output: 145,
	},
	{
		ID:          9,
		Name:        "Lightning Capacitor",
		Description: "Stores and releases electrical energy",
		Requirements: []entity.Requirement{
			{Resource: "Voltium", Amount: 30},
			{Resource: "Crystallite", Amount: 18},
			{Resource: "Photonite", Amount: 12},
			{Resource: "Magmastone", Amount: 10},
			{Resource: "Windforce", Amount: 8},
		},
		Output: 160,
	},
	{
		ID:          10,
		Name:        "Shadow Cloak",
		Description: "Provides stealth capabilities",
		Requirements: []entity.Requirement{
			{Resource: "Darkmatter", Amount: 35},
			{Resource: "Stardust", Amount: 15},
			{Resource: "Cryonite", Amount: 12},
			{Resource: "Biomatter", Amount: 8},
			{Resource: "Hydroflux", Amount: 5},
		},
		Output: 180,
	},
	{
		ID:          11,
		Name:        "Atmospheric Purifier",
		Description: "Creates breathable environments",
		Requirements: []entity.Requirement{
			{Resource: "Windforce", Amount: 28},
			{Resource: "Biomatter", Amount: 20},
			{Resource: "Hydroflux", Amount: 15},
			{Resource: "Photonite", Amount: 10},
			{Resource: "Crystallite", Amount: 6},
		},
		Output: 155,
	},
	{
		ID:          12,
		Name:        "Graviton Anchor",
		Description: "Manipulates gravitational fields",
		Requirements: []entity.Requirement{
			{Resource: "Darkmatter", Amount: 25},
			{Resource: "Magmastone", Amount: 20},
			{Resource: "Stardust", Amount: 15},
			{Resource: "Voltium", Amount: 12},
			{Resource: "Cryonite", Amount: 10},
		},
		Output: 190,
	},
	{
		ID:          13,
		Name:        "Photonic Array",
		Description: "Amplifies light-based energy",
		Requirements: []entity.Requirement{
			{Resource: "Photonite", Amount: 32},
			{Resource: "Crystallite", Amount: 22},
			{Resource: "Voltium", Amount: 15},
			{Resource: "Stardust", Amount: 10},
			{Resource: "Windforce", Amount: 8},
		},
		Output: 175,
	},
	{
		ID:          14,
		Name:        "Hydro-Generator",
		Description: "Converts liquid energy to power",
		Requirements: []entity.Requirement{
			{Resource: "Hydroflux", Amount: 30},
			{Resource: "Voltium", Amount: 20},
			{Resource: "Crystallite", Amount: 15},
			{Resource: "Windforce", Amount: 12},
			{Resource: "Biomatter", Amount: 10},
		},
		Output: 165,
	},
	{
		ID:          15,
		Name:        "Volcanic Forge",
		Description: "Processes materials at extreme temperatures",
		Requirements: []entity.Requirement{
			{Resource: "Magmastone", Amount: 35},
			{Resource: "Crystallite", Amount: 20},
			{Resource: "Voltium", Amount: 15},
			{Resource: "Photonite", Amount: 12},
			{Resource: "Darkmatter", Amount: 8},
		},
		Output: 185,
	},
	{
		ID:          16,
		Name:        "Cosmic Reactor",
		Description: "Harnesses the power of stars",
		Requirements: []entity.Requirement{
			{Resource: "Stardust", Amount: 40},
			{Resource: "Photonite", Amount: 25},
			{Resource: "Darkmatter", Amount: 20},
			{Resource: "Crystallite", Amount: 15},
			{Resource: "Magmastone", Amount: 12},
		},
		Output: 250,
	},
	{
		ID:          17,
		Name:        "Zero-Point Module",
		Description: "Taps into vacuum energy",
		Requirements: []entity.Requirement{
			{Resource: "Darkmatter", Amount: 45},
			{Resource: "Cryonite", Amount: 30},
			{Resource: "Stardust", Amount: 25},
			{Resource: "Voltium", Amount: 18},
			{Resource: "Crystallite", Amount: 15},
		},
		Output: 300,
	},
	{
		ID:          18,
		Name:        "Life Support System",
		Description: "Sustains biological functions in space",
		Requirements: []entity.Requirement{
			{Resource: "Biomatter", Amount: 35},
			{Resource: "Hydroflux", Amount: 28},
			{Resource: "Windforce", Amount: 20},
			{Resource: "Photonite", Amount: 15},
			{Resource: "Cryonite", Amount: 12},
		},
		Output: 195,
	},
	{
		ID:          19,
		Name:        "Warp Drive Core",
		Description: "Enables faster-than-light travel",
		Requirements: []entity.Requirement{
			{Resource: "Darkmatter", Amount: 50},
			{Resource: "Stardust", Amount: 40},
			{Resource: "Crystallite", Amount: 30},
			{Resource: "Voltium", Amount: 25},
			{Resource: "Photonite", Amount: 20},
		},
		Output: 400,
	},
	{
		ID:          20,
		Name:        "Terraforming Engine",
		Description: "Transforms planetary environments",
		Requirements: []entity.Requirement{
			{Resource: "Biomatter", Amount: 40},
			{Resource: "Hydroflux", Amount: 35},
			{Resource: "Windforce", Amount: 30},
			{Resource: "Magmastone", Amount: 25},
			{Resource: "Cryonite", Amount: 20},
		},
		Output: 350,
	},
}

// Resources lists every resource name in planet order.
var Resources = func() []string {
	names := make([]string, 0, len(Planets))
	for _, p := range Planets {
		names = append(names, p.Resource)
	}
	return names
}()

func PlanetByID(id int) (entity.Planet, bool) {
	for _, p := range Planets {
		if p.ID == id {
			return p, true
		}
	}

	return entity.Planet{}, false
}

func RecipeByID(id int) (entity.Recipe, bool) {
	for _, r := range Recipes {
		if r.ID == id {
			return r, true
		}
	}

	return entity.Recipe{}, false
}

func IsResource(name string) bool {
	for _, r := range Resources {
		if r == name {
			return true
		}
	}

	return false
}
