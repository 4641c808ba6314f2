package vote

import (
	"fmt"
	"maps"

	"github.com/durandtibo/votingsys/table"
)

var _ Vote = (*SingleMarkVote)(nil)

// SingleMarkVote is a ballot model where each voter marks one and only
// one candidate. It wraps a tally from candidate to vote count and is
// immutable once constructed.
type SingleMarkVote struct {
	tally Counter
}

// NewSingleMarkVote creates a SingleMarkVote from a pre-built tally.
// It fails with a ValidationError if any count is negative or the tally
// is empty.
func NewSingleMarkVote(tally Counter) (*SingleMarkVote, error) {
	if err := CheckNonNegativeCount(tally); err != nil {
		return nil, err
	}
	if err := CheckNonEmptyCount(tally); err != nil {
		return nil, err
	}
	return &SingleMarkVote{tally: tally.Clone()}, nil
}

// SingleMarkVoteFromSequence creates a SingleMarkVote by counting the
// occurrences of each mark in the sequence.
func SingleMarkVoteFromSequence(marks []string) (*SingleMarkVote, error) {
	return NewSingleMarkVote(CounterFromSequence(marks))
}

// SingleMarkVoteFromSeries creates a SingleMarkVote from a columnar
// sequence of marks. It fails with a ValidationError if any cell is
// null.
func SingleMarkVoteFromSeries(marks table.StringSeries) (*SingleMarkVote, error) {
	seq := make([]string, 0, marks.Len())
	for i := 0; i < marks.Len(); i++ {
		mark, ok := marks.Value(i)
		if !ok {
			return nil, NewValidationError("marks", fmt.Sprintf("the mark at row %d is null", i))
		}
		seq = append(seq, mark)
	}
	return SingleMarkVoteFromSequence(seq)
}

// Tally returns a copy of the underlying tally.
func (v *SingleMarkVote) Tally() Counter { return v.tally.Clone() }

// Equal reports whether two votes hold equal tallies, independent of
// iteration order.
func (v *SingleMarkVote) Equal(other *SingleMarkVote) bool {
	if other == nil {
		return false
	}
	return maps.Equal(v.tally, other.tally)
}

// NumCandidates returns the number of distinct candidates.
func (v *SingleMarkVote) NumCandidates() int { return len(v.tally) }

// NumVoters returns the total number of votes cast.
func (v *SingleMarkVote) NumVoters() int64 { return v.tally.Total() }

// AbsoluteMajorityWinner computes the winner based on the absolute
// majority rule: the candidate receiving strictly more than 50% of the
// votes. It fails with ErrWinnerNotFound if no candidate clears the
// threshold, which covers the zero-voter and tied-at-50% cases.
func (v *SingleMarkVote) AbsoluteMajorityWinner() (string, error) {
	winners, maxVotes, err := MaxEntries(v.tally)
	if err != nil {
		return "", err
	}
	if total := v.NumVoters(); total > 0 && 2*maxVotes > total {
		return winners[0], nil
	}
	return "", fmt.Errorf("no winner found using absolute majority rule: %w", ErrWinnerNotFound)
}

// SuperMajorityWinner computes the winner based on the super majority
// rule: the candidate receiving strictly more than threshold of the
// votes, where threshold must be greater than 0.5.
func (v *SingleMarkVote) SuperMajorityWinner(threshold float64) (string, error) {
	if threshold <= 0.5 {
		return "", fmt.Errorf("%w (received %v)", ErrInvalidThreshold, threshold)
	}
	winners, maxVotes, err := MaxEntries(v.tally)
	if err != nil {
		return "", err
	}
	if total := v.NumVoters(); total > 0 && float64(maxVotes)/float64(total) > threshold {
		return winners[0], nil
	}
	return "", fmt.Errorf(
		"no winner found using super majority rule with threshold=%v: %w",
		threshold, ErrWinnerNotFound)
}

// PluralityWinner computes the winner based on the plurality rule,
// also known as First-Past-The-Post: the unique candidate with the most
// votes, whether or not they hold a majority. It fails with a
// MultipleWinnersError when the leading candidates are tied, and with
// ErrWinnerNotFound when no votes were cast.
func (v *SingleMarkVote) PluralityWinner() (string, error) {
	if v.NumVoters() == 0 {
		return "", fmt.Errorf("no winner found using plurality rule: no votes cast: %w", ErrWinnerNotFound)
	}
	winners, err := v.PluralityWinners()
	if err != nil {
		return "", err
	}
	if len(winners) > 1 {
		return "", &MultipleWinnersError{Rule: "plurality", Winners: winners}
	}
	return winners[0], nil
}

// PluralityWinners computes the winners based on the plurality rule.
// The leading candidates are all returned, sorted lexicographically
// ascending, so ties never fail.
func (v *SingleMarkVote) PluralityWinners() ([]string, error) {
	winners, _, err := MaxEntries(v.tally)
	if err != nil {
		return nil, err
	}
	return winners, nil
}
