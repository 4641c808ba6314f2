package table

import "fmt"

// CheckColumnExists fails when the named column is absent from the
// table. The message lists the sorted column names for diagnostics.
func CheckColumnExists(t Table, name string) error {
	if !t.HasColumn(name) {
		return fmt.Errorf(
			"%w: %q is not in the table columns: %v", ErrColumnNotFound, name, t.SortedColumns())
	}
	return nil
}

// CheckColumnMissing fails when the named column is present in the
// table.
func CheckColumnMissing(t Table, name string) error {
	if t.HasColumn(name) {
		return fmt.Errorf(
			"%w: %q is already in the table columns: %v", ErrColumnExists, name, t.SortedColumns())
	}
	return nil
}

// WeightedValueCount sums, for each column other than weightCol, the
// weights of the rows where the column's cell equals value. Null cells
// never match. Columns with no matching row map to 0, and an empty
// table yields an all-zero mapping.
func WeightedValueCount(t Table, value int64, weightCol string) (map[string]int64, error) {
	weights, err := t.Column(weightCol)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for _, name := range t.Columns() {
		if name == weightCol {
			continue
		}
		s := t.cols[name]
		var total int64
		for i := 0; i < s.Len(); i++ {
			v, ok := s.Value(i)
			if !ok || v != value {
				continue
			}
			if w, wok := weights.Value(i); wok {
				total += w
			}
		}
		counts[name] = total
	}
	return counts, nil
}

// CountValue counts, for each column, the rows whose cell equals value.
// Null cells never match.
func CountValue(t Table, value int64) map[string]int64 {
	counts := make(map[string]int64)
	for _, name := range t.Columns() {
		s := t.cols[name]
		var total int64
		for i := 0; i < s.Len(); i++ {
			if v, ok := s.Value(i); ok && v == value {
				total++
			}
		}
		counts[name] = total
	}
	return counts
}

// SumWeightsByGroup groups the table by every column except weightCol
// and sums weightCol per group. This is the compaction primitive for
// collapsing duplicate ranking patterns.
func SumWeightsByGroup(t Table, weightCol string) (Table, error) {
	if err := CheckColumnExists(t, weightCol); err != nil {
		return Table{}, err
	}
	groupCols := make([]string, 0, t.NumCols()-1)
	for _, name := range t.Columns() {
		if name != weightCol {
			groupCols = append(groupCols, name)
		}
	}
	return t.GroupBySum(groupCols, weightCol)
}

// RemoveZeroWeightRows filters out the rows whose weight cell equals
// exactly zero. Null weights are kept.
func RemoveZeroWeightRows(t Table, weightCol string) (Table, error) {
	weights, err := t.Column(weightCol)
	if err != nil {
		return Table{}, err
	}
	mask := make([]bool, t.NumRows())
	for i := range mask {
		w, ok := weights.Value(i)
		mask[i] = !ok || w != 0
	}
	return t.Filter(mask)
}
