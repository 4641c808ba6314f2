package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Column pairs a name with its series for table construction.
type Column struct {
	Name string
	Data Series
}

// Table is an immutable collection of named columns of equal length.
// All transforms return a new table; the receiver is never modified.
type Table struct {
	names []string
	cols  map[string]Series
}

// New creates a table from the given columns. It fails if two columns
// share a name or if the columns have different lengths.
func New(cols []Column) (Table, error) {
	t := Table{names: make([]string, 0, len(cols)), cols: make(map[string]Series, len(cols))}
	rows := -1
	for _, c := range cols {
		if _, ok := t.cols[c.Name]; ok {
			return Table{}, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if rows >= 0 && c.Data.Len() != rows {
			return Table{}, fmt.Errorf(
				"%w: column %q has %d rows, expected %d",
				ErrLengthMismatch, c.Name, c.Data.Len(), rows)
		}
		rows = c.Data.Len()
		t.names = append(t.names, c.Name)
		t.cols[c.Name] = c.Data
	}
	return t, nil
}

// FromRows creates a table from a slice of rows, each row holding one
// value per named column.
func FromRows(names []string, rows [][]int64) (Table, error) {
	columns := make([][]int64, len(names))
	for i := range columns {
		columns[i] = make([]int64, 0, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(names) {
			return Table{}, fmt.Errorf(
				"%w: row %d has %d values, expected %d",
				ErrLengthMismatch, r, len(row), len(names))
		}
		for i, v := range row {
			columns[i] = append(columns[i], v)
		}
	}
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Data: NewSeries(columns[i])}
	}
	return New(cols)
}

// NumRows returns the number of rows. An empty table has zero rows.
func (t Table) NumRows() int {
	if len(t.names) == 0 {
		return 0
	}
	return t.cols[t.names[0]].Len()
}

// NumCols returns the number of columns.
func (t Table) NumCols() int { return len(t.names) }

// Columns returns the column names in table order.
func (t Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// SortedColumns returns the column names sorted ascending, for
// diagnostics and deterministic iteration.
func (t Table) SortedColumns() []string {
	out := t.Columns()
	sort.Strings(out)
	return out
}

// HasColumn reports whether the named column exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the named column's series.
func (t Table) Column(name string) (Series, error) {
	s, ok := t.cols[name]
	if !ok {
		return Series{}, fmt.Errorf(
			"%w: %q is not in the table columns: %v", ErrColumnNotFound, name, t.SortedColumns())
	}
	return s, nil
}

// Select returns a new table with only the named columns, in the given
// order.
func (t Table) Select(names ...string) (Table, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		s, err := t.Column(name)
		if err != nil {
			return Table{}, err
		}
		cols = append(cols, Column{Name: name, Data: s})
	}
	return New(cols)
}

// Filter returns a new table keeping only the rows where mask is true.
// The mask must have one entry per row.
func (t Table) Filter(mask []bool) (Table, error) {
	if len(mask) != t.NumRows() {
		return Table{}, fmt.Errorf(
			"%w: mask has %d entries but the table has %d rows",
			ErrLengthMismatch, len(mask), t.NumRows())
	}
	indices := make([]int, 0, len(mask))
	for i, keep := range mask {
		if keep {
			indices = append(indices, i)
		}
	}
	return t.takeRows(indices), nil
}

// WithColumn returns a new table with the given column appended. It
// fails if the name collides with an existing column or the length does
// not match the existing rows.
func (t Table) WithColumn(name string, data Series) (Table, error) {
	if t.HasColumn(name) {
		return Table{}, fmt.Errorf(
			"%w: %q is already in the table columns: %v", ErrColumnExists, name, t.SortedColumns())
	}
	if t.NumCols() > 0 && data.Len() != t.NumRows() {
		return Table{}, fmt.Errorf(
			"%w: column %q has %d rows, expected %d",
			ErrLengthMismatch, name, data.Len(), t.NumRows())
	}
	cols := t.columns()
	cols = append(cols, Column{Name: name, Data: data})
	return New(cols)
}

// Drop returns a new table without the named column.
func (t Table) Drop(name string) (Table, error) {
	if !t.HasColumn(name) {
		return Table{}, fmt.Errorf(
			"%w: %q is not in the table columns: %v", ErrColumnNotFound, name, t.SortedColumns())
	}
	cols := make([]Column, 0, t.NumCols()-1)
	for _, c := range t.columns() {
		if c.Name != name {
			cols = append(cols, c)
		}
	}
	return New(cols)
}

// GroupBySum groups rows by the tuple of values in groupCols, summing
// sumCol per group. Null cells group together. Groups appear in first-seen
// row order; callers that need a canonical order should sort afterwards.
func (t Table) GroupBySum(groupCols []string, sumCol string) (Table, error) {
	group := make([]Series, len(groupCols))
	for i, name := range groupCols {
		s, err := t.Column(name)
		if err != nil {
			return Table{}, err
		}
		group[i] = s
	}
	weights, err := t.Column(sumCol)
	if err != nil {
		return Table{}, err
	}

	firstRow := make(map[string]int)  // group key -> representative row
	sums := make(map[string]int64)    // group key -> summed weight
	order := make([]string, 0)        // group keys in first-seen order
	var key strings.Builder
	for r := 0; r < t.NumRows(); r++ {
		key.Reset()
		for _, s := range group {
			if v, ok := s.Value(r); ok {
				key.WriteString(strconv.FormatInt(v, 10))
			} else {
				key.WriteString("null")
			}
			key.WriteByte('\x1f')
		}
		k := key.String()
		if _, seen := firstRow[k]; !seen {
			firstRow[k] = r
			order = append(order, k)
		}
		if w, ok := weights.Value(r); ok {
			sums[k] += w
		}
	}

	indices := make([]int, 0, len(order))
	summed := make([]int64, 0, len(order))
	for _, k := range order {
		indices = append(indices, firstRow[k])
		summed = append(summed, sums[k])
	}
	cols := make([]Column, 0, len(groupCols)+1)
	for i, name := range groupCols {
		cols = append(cols, Column{Name: name, Data: group[i].take(indices)})
	}
	cols = append(cols, Column{Name: sumCol, Data: NewSeries(summed)})
	return New(cols)
}

// SortByDesc returns a new table with rows sorted descending by the
// given columns, compared in order. The sort is stable and null cells
// sort after valid ones.
func (t Table) SortByDesc(cols ...string) (Table, error) {
	keys := make([]Series, len(cols))
	for i, name := range cols {
		s, err := t.Column(name)
		if err != nil {
			return Table{}, err
		}
		keys[i] = s
	}
	indices := make([]int, t.NumRows())
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(x, y int) bool {
		for _, s := range keys {
			a, aok := s.Value(indices[x])
			b, bok := s.Value(indices[y])
			switch {
			case aok && !bok:
				return true
			case !aok && bok:
				return false
			case a != b:
				return a > b
			}
		}
		return false
	})
	return t.takeRows(indices), nil
}

// Equal reports whether two tables hold the same columns in the same
// order with the same cells.
func (t Table) Equal(other Table) bool {
	if t.NumCols() != other.NumCols() {
		return false
	}
	for i, name := range t.names {
		if other.names[i] != name {
			return false
		}
		if !t.cols[name].Equal(other.cols[name]) {
			return false
		}
	}
	return true
}

func (t Table) columns() []Column {
	cols := make([]Column, 0, len(t.names))
	for _, name := range t.names {
		cols = append(cols, Column{Name: name, Data: t.cols[name]})
	}
	return cols
}

func (t Table) takeRows(indices []int) Table {
	out := Table{names: make([]string, 0, len(t.names)), cols: make(map[string]Series, len(t.names))}
	for _, name := range t.names {
		out.names = append(out.names, name)
		out.cols[name] = t.cols[name].take(indices)
	}
	return out
}
