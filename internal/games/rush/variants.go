package rush

import (
	"fmt"

	"github.com/vovakirdan/carrot-rush/internal/config"
	"github.com/vovakirdan/carrot-rush/internal/registry"
)

// Variant is a registered flavour of the game. Each one tunes the loaded
// config before difficulty presets are applied.
type Variant struct {
	ID      string
	Title   string
	Summary string
	tune    func(*config.RushConfig)
}

// Variants lists every registered variant. The first one is the default.
var Variants = []Variant{
	{
		ID:      "rush",
		Title:   "Carrot Rush",
		Summary: "Dodge the poop, catch carrots, grab cookies for extra lives",
	},
	{
		ID:      "rush_timed",
		Title:   "Carrot Rush: Cookie Timer",
		Summary: "Cookies drop on a 10-25 second timer instead of at random",
		tune: func(cfg *config.RushConfig) {
			cfg.Bonuses.Policy = config.PolicyTimer
			if cfg.Bonuses.MinDelay <= 0 {
				cfg.Bonuses.MinDelay, cfg.Bonuses.MaxDelay = 10, 25
			}
		},
	},
	{
		ID:      "rush_classic",
		Title:   "Carrot Rush Classic",
		Summary: "Six carrots loop forever, at most ten poops on screen",
		tune: func(cfg *config.RushConfig) {
			cfg.Collectibles.Policy = config.PolicyFixed
			cfg.Collectibles.Offscreen = config.OffscreenRecycle
			cfg.Obstacles.Cap = 10
			cfg.Obstacles.Chance = 0.04
		},
	},
}

// NewVariant creates a game for a registered variant ID.
func NewVariant(id string) (*Game, error) {
	for _, v := range Variants {
		if v.ID == id {
			return &Game{variant: v}, nil
		}
	}
	return nil, fmt.Errorf("rush: unknown variant %q", id)
}

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		registry.Register(registry.GameInfo{ID: v.ID, Title: v.Title, Summary: v.Summary}, func() registry.Game {
			return &Game{variant: v}
		})
	}
}
