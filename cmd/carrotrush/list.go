package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carrot-rush/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		games := registry.List()
		if len(games) == 0 {
			fmt.Println("No variants available.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tTitle\tDescription")
		fmt.Fprintln(w, "  --\t-----\t-----------")
		for _, g := range games {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", g.ID, g.Title, g.Summary)
		}
		w.Flush()

		fmt.Println()
		fmt.Println("Run 'carrotrush play <id>' to play a variant.")
	},
}
