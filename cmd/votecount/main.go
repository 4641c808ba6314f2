// votecount tallies ballots from a CSV file and prints the outcome of
// a winner rule.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	ballotsPath string
	ranked      bool
	countColumn string
)

var rootCmd = &cobra.Command{
	Use:   "votecount",
	Short: "Tally ballots and determine election winners",
	Long: `votecount reads ballots from a CSV file and applies a winner rule.

Single-mark ballots are one candidate mark per line. Ranked ballots are a
header row of candidate names followed by one row of rank positions
(0 = most preferred) per voter.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ballotsPath, "ballots", "", "path to the CSV ballot file")
	rootCmd.PersistentFlags().BoolVar(&ranked, "ranked", false, "treat the ballots as ranked ballots")
	rootCmd.PersistentFlags().StringVar(&countColumn, "count-column", "count", "name of the count column for ranked ballots")
	_ = rootCmd.MarkPersistentFlagRequired("ballots")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
