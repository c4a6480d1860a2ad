package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-rush/internal/platform/tui"
	"github.com/vovakirdan/carrot-rush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, "rush" when omitted.

Controls:
  Left/Right, A/D  - Move (or hold the mouse left/right of the rabbit)
  Enter/Space      - Start
  P                - Pause
  R                - Restart (after game over), or click the button
  Esc              - Leave
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  carrotrush play
  carrotrush play rush_classic --difficulty easy
  carrotrush play --seed 42 --config ./my-rush.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "rush"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'carrotrush list' to see them", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     gameLogger(),
		Difficulty: flagDifficulty,
	})
	return err
}
