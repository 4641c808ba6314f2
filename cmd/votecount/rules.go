package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/durandtibo/votingsys/election"
	"github.com/durandtibo/votingsys/vote"
)

var (
	allTied   bool
	threshold float64
	cfgPath   string
)

func init() {
	pluralityCmd.Flags().BoolVar(&allTied, "all", false, "report all tied leaders instead of failing on a tie")
	superMajorityCmd.Flags().Float64Var(&threshold, "threshold", 0, "minimal vote share, must be greater than 0.5")
	_ = superMajorityCmd.MarkFlagRequired("threshold")
	runCmd.Flags().StringVar(&cfgPath, "config", "", "path to the election YAML config")
	_ = runCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(pluralityCmd, majorityCmd, superMajorityCmd, runCmd)
}

var pluralityCmd = &cobra.Command{
	Use:   "plurality",
	Short: "Elect the candidate with the most votes or first preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRule(cmd, election.Config{Rule: election.RulePlurality, CountColumn: countColumn})
	},
}

var majorityCmd = &cobra.Command{
	Use:   "majority",
	Short: "Elect the candidate with strictly more than half the votes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRule(cmd, election.Config{Rule: election.RuleAbsoluteMajority, CountColumn: countColumn})
	},
}

var superMajorityCmd = &cobra.Command{
	Use:   "super-majority",
	Short: "Elect the candidate exceeding a configured vote share",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRule(cmd, election.Config{
			Rule:        election.RuleSuperMajority,
			Threshold:   threshold,
			CountColumn: countColumn,
		})
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply the winner rule from an election YAML config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := election.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		return runRule(cmd, cfg)
	},
}

func runRule(cmd *cobra.Command, cfg election.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ballot, err := loadBallot(cfg.CountColumn)
	if err != nil {
		return err
	}
	res, err := election.Run(cfg, ballot)
	if err != nil {
		if allTied && errors.Is(err, vote.ErrMultipleWinners) {
			printResult(cmd, res)
			return nil
		}
		return err
	}
	printResult(cmd, res)
	return nil
}
