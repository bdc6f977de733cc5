package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "azx-solver",
	Short: "A solver for the tile-clearing sum-10 puzzle",
	Long: `azx-solver reads a rectangular grid of digits (0 = empty, 1-9 = tile)
and searches for a move sequence that clears tiles for maximum score.
Each move selects cells summing exactly to the target that form a
contiguous row run, column run, or rectangle.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
