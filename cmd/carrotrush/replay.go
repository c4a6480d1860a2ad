package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-rush/internal/games/rush"
	"github.com/vovakirdan/carrot-rush/internal/registry"
	"github.com/vovakirdan/carrot-rush/internal/replay"
	"github.com/vovakirdan/carrot-rush/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a saved run and check its score",
	Long: `Load the replay of a saved run, play its recorded input through a
fresh game with the recorded seed and compare the result with the score
that was saved. A mismatch means the game rules or config changed since
the run, or the run was tampered with.

Use --config with the same file the run was played with.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Run(args[0])
	if err != nil {
		return err
	}
	data, err := store.Replay(run.ID)
	if errors.Is(err, storage.ErrRunNotFound) {
		return fmt.Errorf("run %s has no replay", run.ID)
	}
	if err != nil {
		return err
	}

	rec, err := replay.Decode(data)
	if err != nil {
		return err
	}

	game, err := registry.Create(rec.GameID)
	if err != nil {
		return err
	}
	if g, ok := game.(*rush.Game); ok {
		g.SetDifficulty(rec.Difficulty)
	}

	logger.Debug("Replaying", "run", run.ID, "variant", rec.GameID, "seed", rec.Seed, "ticks", rec.Ticks)
	if err := replay.Verify(game, rec); err != nil {
		return fmt.Errorf("run %s: %w", run.ID, err)
	}

	fmt.Printf("Run %s verified: %s scored %d in %d ticks", run.ID, rec.GameID, rec.Score, rec.Ticks)
	if rec.Victory {
		fmt.Print(" (won)")
	}
	fmt.Println()
	return nil
}
