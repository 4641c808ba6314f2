package election

import (
	"errors"
	"fmt"

	"github.com/durandtibo/votingsys/vote"
)

// Ballot is the capability an election needs from a ballot model:
// the shared counting queries plus the three winner rules. Both
// vote.SingleMarkVote and vote.RankedVote satisfy it.
type Ballot interface {
	vote.Vote

	AbsoluteMajorityWinner() (string, error)
	SuperMajorityWinner(threshold float64) (string, error)
	PluralityWinner() (string, error)
	PluralityWinners() ([]string, error)
}

// Result is the outcome of running a winner rule.
type Result struct {
	// Rule is the winner rule that produced this result.
	Rule Rule `json:"rule"`

	// Winners holds the elected candidate, or the full tied set sorted
	// ascending when the rule found a tie.
	Winners []string `json:"winners"`

	// Counts maps each candidate to its total: raw tally counts for
	// single-mark ballots, weighted first-preference totals for ranked
	// ballots.
	Counts map[string]int64 `json:"counts"`

	// NumVoters is the total number of voters.
	NumVoters int64 `json:"num_voters"`
}

// Run applies the configured winner rule to the ballot model.
// On a tie under a single-winner rule the returned error matches
// vote.ErrMultipleWinners and the result still carries the tied set in
// Winners, so callers can fall back without re-querying.
func Run(cfg Config, b Ballot) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Rule: cfg.Rule, NumVoters: b.NumVoters()}
	counts, err := candidateCounts(b)
	if err != nil {
		return Result{}, err
	}
	res.Counts = counts

	var winner string
	switch cfg.Rule {
	case RulePlurality:
		winner, err = b.PluralityWinner()
	case RuleAbsoluteMajority:
		winner, err = b.AbsoluteMajorityWinner()
	case RuleSuperMajority:
		winner, err = b.SuperMajorityWinner(cfg.Threshold)
	default:
		return Result{}, fmt.Errorf("unsupported rule: %q", cfg.Rule)
	}
	if err != nil {
		var tie *vote.MultipleWinnersError
		if errors.As(err, &tie) {
			res.Winners = tie.Winners
		}
		return res, err
	}
	res.Winners = []string{winner}
	return res, nil
}

// candidateCounts returns the per-candidate totals the rules compare:
// the raw tally for single-mark ballots and the weighted
// first-preference totals for ranked ballots.
func candidateCounts(b Ballot) (map[string]int64, error) {
	switch v := b.(type) {
	case *vote.SingleMarkVote:
		return v.Tally(), nil
	case *vote.RankedVote:
		return v.FirstPreferenceCounts()
	default:
		return nil, fmt.Errorf("unsupported ballot model: %T", b)
	}
}
