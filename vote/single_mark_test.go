package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durandtibo/votingsys/table"
)

func mustSingleMark(t *testing.T, tally Counter) *SingleMarkVote {
	t.Helper()
	v, err := NewSingleMarkVote(tally)
	require.NoError(t, err)
	return v
}

func TestNewSingleMarkVote(t *testing.T) {
	t.Run("builds an immutable vote", func(t *testing.T) {
		tally := Counter{"a": 10, "b": 2}
		v := mustSingleMark(t, tally)
		tally["a"] = 0
		assert.Equal(t, int64(12), v.NumVoters())
	})

	t.Run("rejects a negative count citing candidate and value", func(t *testing.T) {
		_, err := NewSingleMarkVote(Counter{"a": 0, "b": -2, "c": 5, "d": 3})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, err.Error(), `"b"`)
		assert.Contains(t, err.Error(), "-2")
	})

	t.Run("rejects an empty tally", func(t *testing.T) {
		_, err := NewSingleMarkVote(Counter{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestSingleMarkVoteFromSequence(t *testing.T) {
	t.Run("counts marks", func(t *testing.T) {
		v, err := SingleMarkVoteFromSequence([]string{"a", "b", "a", "c", "a", "a", "b"})
		require.NoError(t, err)
		assert.Equal(t, Counter{"a": 4, "b": 2, "c": 1}, v.Tally())
	})

	t.Run("rejects an empty sequence", func(t *testing.T) {
		_, err := SingleMarkVoteFromSequence(nil)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestSingleMarkVoteFromSeries(t *testing.T) {
	t.Run("counts columnar marks", func(t *testing.T) {
		v, err := SingleMarkVoteFromSeries(table.NewStringSeries([]string{"a", "b", "a"}))
		require.NoError(t, err)
		assert.Equal(t, Counter{"a": 2, "b": 1}, v.Tally())
	})

	t.Run("rejects null marks", func(t *testing.T) {
		marks, err := table.NewStringSeriesWithNulls([]string{"a", ""}, []bool{true, false})
		require.NoError(t, err)
		_, err = SingleMarkVoteFromSeries(marks)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, err.Error(), "row 1")
	})
}

func TestSingleMarkVote_Counts(t *testing.T) {
	v := mustSingleMark(t, Counter{"a": 10, "b": 2, "c": 5, "d": 3})
	assert.Equal(t, 4, v.NumCandidates())
	assert.Equal(t, int64(20), v.NumVoters())
}

func TestSingleMarkVote_Equal(t *testing.T) {
	v := mustSingleMark(t, Counter{"a": 10, "b": 2})
	assert.True(t, v.Equal(mustSingleMark(t, Counter{"b": 2, "a": 10})))
	assert.False(t, v.Equal(mustSingleMark(t, Counter{"a": 10, "b": 3})))
	assert.False(t, v.Equal(mustSingleMark(t, Counter{"a": 10})))
	assert.False(t, v.Equal(nil))
}

func TestSingleMarkVote_AbsoluteMajorityWinner(t *testing.T) {
	tests := []struct {
		name   string
		tally  Counter
		winner string
		err    error
	}{
		{
			name:   "majority winner",
			tally:  Counter{"a": 10, "b": 20, "c": 5, "d": 3},
			winner: "b",
		},
		{
			name:  "no majority",
			tally: Counter{"a": 10, "b": 2, "c": 5, "d": 3},
			err:   ErrWinnerNotFound,
		},
		{
			name:  "exactly 50% fails",
			tally: Counter{"a": 10, "b": 10},
			err:   ErrWinnerNotFound,
		},
		{
			name:  "zero voters",
			tally: Counter{"a": 0, "b": 0},
			err:   ErrWinnerNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner, err := mustSingleMark(t, tt.tally).AbsoluteMajorityWinner()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.winner, winner)
		})
	}
}

func TestSingleMarkVote_SuperMajorityWinner(t *testing.T) {
	tests := []struct {
		name      string
		tally     Counter
		threshold float64
		winner    string
		err       error
	}{
		{
			name:      "winner above threshold",
			tally:     Counter{"a": 10, "b": 30, "c": 5, "d": 3},
			threshold: 0.6,
			winner:    "b",
		},
		{
			name:      "share equal to threshold fails",
			tally:     Counter{"a": 3, "b": 1},
			threshold: 0.75,
			err:       ErrWinnerNotFound,
		},
		{
			name:      "threshold at 0.5 is invalid",
			tally:     Counter{"a": 10},
			threshold: 0.5,
			err:       ErrInvalidThreshold,
		},
		{
			name:      "threshold below 0.5 is invalid",
			tally:     Counter{"a": 10},
			threshold: 0.4,
			err:       ErrInvalidThreshold,
		},
		{
			name:      "zero voters",
			tally:     Counter{"a": 0},
			threshold: 0.6,
			err:       ErrWinnerNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner, err := mustSingleMark(t, tt.tally).SuperMajorityWinner(tt.threshold)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.winner, winner)
		})
	}
}

func TestSingleMarkVote_PluralityWinner(t *testing.T) {
	t.Run("unique leader wins", func(t *testing.T) {
		winner, err := mustSingleMark(t, Counter{"a": 10, "b": 2, "c": 5, "d": 3}).PluralityWinner()
		require.NoError(t, err)
		assert.Equal(t, "a", winner)
	})

	t.Run("tied leaders fail carrying the tied set", func(t *testing.T) {
		_, err := mustSingleMark(t, Counter{"a": 10, "b": 2, "c": 5, "d": 3, "e": 10}).PluralityWinner()
		require.ErrorIs(t, err, ErrMultipleWinners)
		var tie *MultipleWinnersError
		require.ErrorAs(t, err, &tie)
		assert.Equal(t, []string{"a", "e"}, tie.Winners)
	})

	t.Run("zero voters fail", func(t *testing.T) {
		_, err := mustSingleMark(t, Counter{"a": 0, "b": 0}).PluralityWinner()
		require.ErrorIs(t, err, ErrWinnerNotFound)
	})
}

func TestSingleMarkVote_PluralityWinners(t *testing.T) {
	t.Run("single leader", func(t *testing.T) {
		winners, err := mustSingleMark(t, Counter{"a": 10, "b": 2}).PluralityWinners()
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, winners)
	})

	t.Run("tied leaders sorted ascending", func(t *testing.T) {
		winners, err := mustSingleMark(t, Counter{"e": 10, "a": 10, "b": 2}).PluralityWinners()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "e"}, winners)
	})

	t.Run("zero voters return every candidate", func(t *testing.T) {
		winners, err := mustSingleMark(t, Counter{"b": 0, "a": 0}).PluralityWinners()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, winners)
	})
}
