// Package table provides a small immutable columnar table used to hold
// ballot data. A table is an ordered collection of named int64 columns
// with per-cell validity, supporting the bulk transforms (select, filter,
// group-by-sum, multi-key sort) that the vote models are built on.
package table

import "fmt"

// Series is an immutable column of int64 cells. A cell may be null, in
// which case its value is undefined and it never matches any target value.
type Series struct {
	values []int64
	valid  []bool // nil means every cell is valid
}

// NewSeries creates a Series where every cell is valid.
func NewSeries(values []int64) Series {
	return Series{values: cloneInt64s(values)}
}

// NewSeriesWithNulls creates a Series with an explicit validity mask.
// valid[i] == false marks cell i as null. The mask must have the same
// length as values.
func NewSeriesWithNulls(values []int64, valid []bool) (Series, error) {
	if len(values) != len(valid) {
		return Series{}, fmt.Errorf(
			"%w: series has %d values but %d validity flags",
			ErrLengthMismatch, len(values), len(valid))
	}
	return Series{values: cloneInt64s(values), valid: cloneBools(valid)}, nil
}

// Len returns the number of cells in the series.
func (s Series) Len() int { return len(s.values) }

// Value returns the cell at index i and whether it is valid.
// A null cell reports ok == false and a zero value.
func (s Series) Value(i int) (int64, bool) {
	if s.valid != nil && !s.valid[i] {
		return 0, false
	}
	return s.values[i], true
}

// Sum returns the sum of all valid cells.
func (s Series) Sum() int64 {
	var total int64
	for i := range s.values {
		if v, ok := s.Value(i); ok {
			total += v
		}
	}
	return total
}

// Values returns a copy of the raw cell values. Null cells are included
// with undefined content; use Value to observe validity.
func (s Series) Values() []int64 { return cloneInt64s(s.values) }

// Equal reports whether two series hold the same cells, null cells
// compared as equal to null cells only.
func (s Series) Equal(other Series) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := range s.values {
		a, aok := s.Value(i)
		b, bok := other.Value(i)
		if aok != bok || (aok && a != b) {
			return false
		}
	}
	return true
}

// take builds a new series from the cells at the given row indices.
func (s Series) take(indices []int) Series {
	values := make([]int64, 0, len(indices))
	var valid []bool
	if s.valid != nil {
		valid = make([]bool, 0, len(indices))
	}
	for _, i := range indices {
		values = append(values, s.values[i])
		if s.valid != nil {
			valid = append(valid, s.valid[i])
		}
	}
	return Series{values: values, valid: valid}
}

// StringSeries is an immutable column of string cells with per-cell
// validity, used for columnar sequences of ballot marks.
type StringSeries struct {
	values []string
	valid  []bool
}

// NewStringSeries creates a StringSeries where every cell is valid.
func NewStringSeries(values []string) StringSeries {
	out := make([]string, len(values))
	copy(out, values)
	return StringSeries{values: out}
}

// NewStringSeriesWithNulls creates a StringSeries with an explicit
// validity mask of the same length as values.
func NewStringSeriesWithNulls(values []string, valid []bool) (StringSeries, error) {
	if len(values) != len(valid) {
		return StringSeries{}, fmt.Errorf(
			"%w: series has %d values but %d validity flags",
			ErrLengthMismatch, len(values), len(valid))
	}
	out := make([]string, len(values))
	copy(out, values)
	return StringSeries{values: out, valid: cloneBools(valid)}, nil
}

// Len returns the number of cells in the series.
func (s StringSeries) Len() int { return len(s.values) }

// Value returns the cell at index i and whether it is valid.
func (s StringSeries) Value(i int) (string, bool) {
	if s.valid != nil && !s.valid[i] {
		return "", false
	}
	return s.values[i], true
}

func cloneInt64s(in []int64) []int64 {
	if in == nil {
		return nil
	}
	out := make([]int64, len(in))
	copy(out, in)
	return out
}

func cloneBools(in []bool) []bool {
	if in == nil {
		return nil
	}
	out := make([]bool, len(in))
	copy(out, in)
	return out
}
