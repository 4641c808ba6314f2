package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterFromSequence(t *testing.T) {
	tests := []struct {
		name     string
		marks    []string
		expected Counter
	}{
		{
			name:     "counts occurrences",
			marks:    []string{"a", "b", "a", "c", "a", "a", "b"},
			expected: Counter{"a": 4, "b": 2, "c": 1},
		},
		{
			name:     "empty sequence",
			marks:    nil,
			expected: Counter{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CounterFromSequence(tt.marks))
		})
	}
}

func TestCounter_Total(t *testing.T) {
	assert.Equal(t, int64(20), Counter{"a": 10, "b": 2, "c": 5, "d": 3}.Total())
	assert.Zero(t, Counter{}.Total())
	assert.Zero(t, Counter{"a": 0, "b": 0}.Total())
}

func TestCounter_MostCommon(t *testing.T) {
	t.Run("orders by count descending", func(t *testing.T) {
		entries := Counter{"a": 10, "b": 2, "c": 5, "d": 3}.MostCommon()
		assert.Equal(t, []Entry{{"a", 10}, {"c", 5}, {"d", 3}, {"b", 2}}, entries)
	})

	t.Run("breaks ties by candidate ascending", func(t *testing.T) {
		entries := Counter{"b": 5, "a": 5, "c": 1}.MostCommon()
		assert.Equal(t, []Entry{{"a", 5}, {"b", 5}, {"c", 1}}, entries)
	})
}

func TestCounter_Clone(t *testing.T) {
	original := Counter{"a": 1}
	clone := original.Clone()
	clone["a"] = 9
	assert.Equal(t, int64(1), original["a"])
}

func TestCheckNonNegativeCount(t *testing.T) {
	t.Run("passes on non-negative counts", func(t *testing.T) {
		require.NoError(t, CheckNonNegativeCount(Counter{"a": 10, "b": 0}))
	})

	t.Run("fails citing the offending candidate and value", func(t *testing.T) {
		err := CheckNonNegativeCount(Counter{"a": 0, "b": -2, "c": 5, "d": 3})
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, err.Error(), `"b"`)
		assert.Contains(t, err.Error(), "-2")
	})
}

func TestCheckNonEmptyCount(t *testing.T) {
	t.Run("passes on non-empty counter", func(t *testing.T) {
		require.NoError(t, CheckNonEmptyCount(Counter{"a": 0}))
	})

	t.Run("fails on empty counter", func(t *testing.T) {
		err := CheckNonEmptyCount(Counter{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestMaxEntries(t *testing.T) {
	tests := []struct {
		name     string
		mapping  map[string]int64
		keys     []string
		maxValue int64
	}{
		{
			name:     "single maximum",
			mapping:  map[string]int64{"a": 10, "b": 2, "c": 5},
			keys:     []string{"a"},
			maxValue: 10,
		},
		{
			name:     "tied maximum sorted ascending",
			mapping:  map[string]int64{"e": 10, "a": 10, "b": 2},
			keys:     []string{"a", "e"},
			maxValue: 10,
		},
		{
			name:     "all zero",
			mapping:  map[string]int64{"b": 0, "a": 0},
			keys:     []string{"a", "b"},
			maxValue: 0,
		},
		{
			name:     "negative values",
			mapping:  map[string]int64{"a": -3, "b": -1},
			keys:     []string{"b"},
			maxValue: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, maxValue, err := MaxEntries(tt.mapping)
			require.NoError(t, err)
			assert.Equal(t, tt.keys, keys)
			assert.Equal(t, tt.maxValue, maxValue)
		})
	}

	t.Run("fails on empty mapping", func(t *testing.T) {
		_, _, err := MaxEntries(map[string]int64{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
