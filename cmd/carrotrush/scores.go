package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-rush/internal/registry"
	"github.com/vovakirdan/carrot-rush/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best runs of a variant, "rush" when omitted.
Run IDs can be passed to 'carrotrush replay'.

Examples:
  carrotrush scores
  carrotrush scores rush_timed --limit 25
  carrotrush scores rush --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "rush"
	if len(args) == 1 {
		gameID = args[0]
	}
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown variant %q, run 'carrotrush list' to see them", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("Scores cleared", "variant", gameID)
		return nil
	}

	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", info.Title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Printf("\nPlay 'carrotrush play %s' to set the first high score!\n", gameID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Rank\tScore\tResult\tTime\tDate\tRun")
	for i, r := range runs {
		result := ""
		if r.Victory {
			result = "won"
		}
		played := (time.Duration(r.Ticks) * time.Second / 60).Truncate(time.Second)
		fmt.Fprintf(w, "  %d\t%d\t%s\t%s\t%s\t%s\n",
			i+1, r.Score, result, played, r.CreatedAt.Format("2006-01-02 15:04"), r.ID)
	}
	w.Flush()

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("\nBest: %d  Runs: %d  Wins: %d  Average: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.Victories, stats.AvgScore)
	}
	return nil
}
