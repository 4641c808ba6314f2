package vote

import (
	"fmt"
	"sort"

	"github.com/durandtibo/votingsys/table"
)

var _ Vote = (*RankedVote)(nil)

// DefaultCountColumn is the conventional name of the column holding the
// number of voters per ranking pattern.
const DefaultCountColumn = "count"

// RankedVote is a ballot model where each voter ranks every candidate
// in order of preference. The rankings are held in a compacted table:
// one row per distinct ranking pattern, one column per candidate with
// that candidate's rank position (0 is most preferred), and one count
// column with the number of voters that cast the pattern.
type RankedVote struct {
	ranking  table.Table
	countCol string
}

// NewRankedVote creates a RankedVote directly from an already-compacted
// table. It fails with a ValidationError if the count column is absent;
// the ranking patterns themselves are trusted and not re-validated.
func NewRankedVote(ranking table.Table, countCol string) (*RankedVote, error) {
	if err := table.CheckColumnExists(ranking, countCol); err != nil {
		return nil, NewValidationError("ranking", err.Error())
	}
	return &RankedVote{ranking: ranking, countCol: countCol}, nil
}

// RankedVoteFromTable creates a RankedVote from a raw table with one
// row per voter and no count column. Every row gets an implicit weight
// of one, identical ranking patterns are collapsed into a single row
// with a summed count, and the result is sorted descending by the count
// column then the candidate columns in sorted name order.
//
// It fails with a ValidationError if countCol collides with a candidate
// column or if any row is not a permutation of 0..n-1.
func RankedVoteFromTable(ranking table.Table, countCol string) (*RankedVote, error) {
	if err := table.CheckColumnMissing(ranking, countCol); err != nil {
		return nil, NewValidationError("ranking", err.Error())
	}
	if err := checkRankingRows(ranking, ranking.Columns()); err != nil {
		return nil, err
	}
	ones := make([]int64, ranking.NumRows())
	for i := range ones {
		ones[i] = 1
	}
	counted, err := ranking.WithColumn(countCol, table.NewSeries(ones))
	if err != nil {
		return nil, err
	}
	compacted, err := compactRanking(counted, countCol)
	if err != nil {
		return nil, err
	}
	return NewRankedVote(compacted, countCol)
}

// RankedVoteFromCountedTable creates a RankedVote from a table that
// already carries a count column but may hold the same ranking pattern
// in several rows. Duplicate patterns are collapsed by summing their
// counts, patterns whose summed count is zero are dropped, and the
// result is sorted descending by the full composite key.
//
// It fails with a ValidationError if the count column is absent, a
// count is negative, or any ranking row is not a permutation of 0..n-1.
func RankedVoteFromCountedTable(ranking table.Table, countCol string) (*RankedVote, error) {
	if err := table.CheckColumnExists(ranking, countCol); err != nil {
		return nil, NewValidationError("ranking", err.Error())
	}
	counts, err := ranking.Column(countCol)
	if err != nil {
		return nil, err
	}
	for i := 0; i < counts.Len(); i++ {
		if c, ok := counts.Value(i); ok && c < 0 {
			return nil, NewValidationError(
				"ranking", fmt.Sprintf("the count at row %d is negative: %d", i, c))
		}
	}
	candidates := make([]string, 0, ranking.NumCols()-1)
	for _, name := range ranking.Columns() {
		if name != countCol {
			candidates = append(candidates, name)
		}
	}
	if err := checkRankingRows(ranking, candidates); err != nil {
		return nil, err
	}
	compacted, err := compactRanking(ranking, countCol)
	if err != nil {
		return nil, err
	}
	return NewRankedVote(compacted, countCol)
}

// compactRanking collapses duplicate ranking patterns by summing the
// count column, drops zero-count patterns, and sorts descending by the
// composite key: count column first, then the candidate columns in
// sorted name order.
func compactRanking(ranking table.Table, countCol string) (table.Table, error) {
	summed, err := table.SumWeightsByGroup(ranking, countCol)
	if err != nil {
		return table.Table{}, err
	}
	trimmed, err := table.RemoveZeroWeightRows(summed, countCol)
	if err != nil {
		return table.Table{}, err
	}
	keys := []string{countCol}
	for _, name := range trimmed.Columns() {
		if name != countCol {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys[1:])
	return trimmed.SortByDesc(keys...)
}

// checkRankingRows validates that every row assigns the candidate
// columns a permutation of 0..n-1.
func checkRankingRows(ranking table.Table, candidates []string) error {
	n := len(candidates)
	cols := make([]table.Series, n)
	for i, name := range candidates {
		s, err := ranking.Column(name)
		if err != nil {
			return err
		}
		cols[i] = s
	}
	seen := make([]bool, n)
	for r := 0; r < ranking.NumRows(); r++ {
		for i := range seen {
			seen[i] = false
		}
		for i, s := range cols {
			rank, ok := s.Value(r)
			if !ok {
				return NewValidationError(
					"ranking", fmt.Sprintf("the rank of %q at row %d is null", candidates[i], r))
			}
			if rank < 0 || rank >= int64(n) || seen[rank] {
				return NewValidationError(
					"ranking",
					fmt.Sprintf(
						"row %d is not a permutation of 0..%d: invalid or duplicate rank %d for %q",
						r, n-1, rank, candidates[i]))
			}
			seen[rank] = true
		}
	}
	return nil
}

// Ranking returns the underlying compacted ranking table.
func (v *RankedVote) Ranking() table.Table { return v.ranking }

// CountColumn returns the name of the count column.
func (v *RankedVote) CountColumn() string { return v.countCol }

// Equal reports whether two votes hold equal ranking tables, including
// the count column name. Equality is structural; callers that want
// order-independent comparison should compact both sides first.
func (v *RankedVote) Equal(other *RankedVote) bool {
	if other == nil {
		return false
	}
	return v.countCol == other.countCol && v.ranking.Equal(other.ranking)
}

// NumCandidates returns the number of candidate columns.
func (v *RankedVote) NumCandidates() int { return v.ranking.NumCols() - 1 }

// NumVoters returns the total number of voters, i.e. the sum of the
// count column.
func (v *RankedVote) NumVoters() int64 {
	counts, err := v.ranking.Column(v.countCol)
	if err != nil {
		// The count column is validated at construction.
		return 0
	}
	return counts.Sum()
}

// FirstPreferenceCounts returns, for every candidate, the count-weighted
// number of ballots that rank the candidate first.
func (v *RankedVote) FirstPreferenceCounts() (map[string]int64, error) {
	return table.WeightedValueCount(v.ranking, 0, v.countCol)
}

// AbsoluteMajorityWinner computes the winner based on the absolute
// majority rule over weighted first-preference totals: the candidate
// ranked first by strictly more than 50% of the voters. It fails with
// ErrWinnerNotFound if no candidate clears the threshold.
func (v *RankedVote) AbsoluteMajorityWinner() (string, error) {
	counts, err := v.FirstPreferenceCounts()
	if err != nil {
		return "", err
	}
	winners, maxVotes, err := MaxEntries(counts)
	if err != nil {
		return "", err
	}
	if total := v.NumVoters(); total > 0 && 2*maxVotes > total {
		return winners[0], nil
	}
	return "", fmt.Errorf("no winner found using absolute majority rule: %w", ErrWinnerNotFound)
}

// SuperMajorityWinner computes the winner based on the super majority
// rule over weighted first-preference totals. The threshold must be
// greater than 0.5.
func (v *RankedVote) SuperMajorityWinner(threshold float64) (string, error) {
	if threshold <= 0.5 {
		return "", fmt.Errorf("%w (received %v)", ErrInvalidThreshold, threshold)
	}
	counts, err := v.FirstPreferenceCounts()
	if err != nil {
		return "", err
	}
	winners, maxVotes, err := MaxEntries(counts)
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

// PluralityWinner computes the winner based on the plurality rule over
// weighted first-preference totals. It fails with a
// MultipleWinnersError when the leading candidates are tied, and with
// ErrWinnerNotFound when there are no voters.
func (v *RankedVote) PluralityWinner() (string, error) {
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

// PluralityWinners computes the winners based on the plurality rule
// over weighted first-preference totals, sorted lexicographically
// ascending.
func (v *RankedVote) PluralityWinners() ([]string, error) {
	counts, err := v.FirstPreferenceCounts()
	if err != nil {
		return nil, err
	}
	winners, _, err := MaxEntries(counts)
	if err != nil {
		return nil, err
	}
	return winners, nil
}
