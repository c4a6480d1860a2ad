package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-rush/internal/platform/tui"
	"github.com/vovakirdan/carrot-rush/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start with the variant picker. Esc in a game or on the scoreboard
returns to the menu.

Controls:
  Up/Down/j/k     - Choose variant
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		res, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return err
		}
		cfg, difficulty = res.Config, res.Difficulty

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			game, err := registry.Create(res.GameID)
			if err != nil {
				return err
			}
			back, err := tui.Run(game, cfg, tui.Options{
				Store:      store,
				Logger:     gameLogger(),
				Difficulty: difficulty,
			})
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
			// Fresh seed for the next game unless one was pinned.
			if flagSeed == 0 {
				cfg.Seed = 0
			}
		}
	}
}
