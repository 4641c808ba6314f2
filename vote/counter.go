package vote

import (
	"fmt"
	"maps"
	"sort"
)

// Counter is a counted mapping from candidate to number of votes.
// Iteration order is irrelevant; all derived queries are deterministic.
type Counter map[string]int64

// CounterFromSequence builds a Counter by counting the occurrences of
// each mark in the sequence.
func CounterFromSequence(marks []string) Counter {
	c := make(Counter, len(marks))
	for _, mark := range marks {
		c[mark]++
	}
	return c
}

// Total returns the sum of all counts.
func (c Counter) Total() int64 {
	var total int64
	for _, count := range c {
		total += count
	}
	return total
}

// Entry is a single candidate and its count.
type Entry struct {
	Candidate string
	Count     int64
}

// MostCommon returns the entries sorted by count descending, ties
// broken by candidate ascending.
func (c Counter) MostCommon() []Entry {
	entries := make([]Entry, 0, len(c))
	for candidate, count := range c {
		entries = append(entries, Entry{Candidate: candidate, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Candidate < entries[j].Candidate
	})
	return entries
}

// Clone returns a copy of the counter.
func (c Counter) Clone() Counter { return maps.Clone(c) }

// CheckNonNegativeCount fails when any count is negative, citing the
// offending candidate and value.
func CheckNonNegativeCount(c Counter) error {
	for _, candidate := range sortedKeys(c) {
		if count := c[candidate]; count < 0 {
			return NewValidationError(
				"counter", fmt.Sprintf("the count for %q is negative: %d", candidate, count))
		}
	}
	return nil
}

// CheckNonEmptyCount fails when the counter has no entries.
func CheckNonEmptyCount(c Counter) error {
	if len(c) == 0 {
		return NewValidationError("counter", "the counter is empty")
	}
	return nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
