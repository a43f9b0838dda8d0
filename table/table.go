// Package table provides a column-oriented table with typed columns,
// per-cell missing markers and preserved row labels.
package table

import (
	"github.com/sartorproj/godataprep/dataerr"
)

// Table is an ordered collection of named, equal-length columns plus a row
// index of integer labels. Tables are never mutated after construction;
// every operation returns a new table.
type Table struct {
	columns []*Column
	byName  map[string]int
	index   []int
}

// New creates a table from columns. Row labels are 0..n-1.
func New(columns ...*Column) (*Table, error) {
	n := 0
	if len(columns) > 0 {
		n = columns[0].Len()
	}
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return NewWithIndex(index, columns...)
}

// NewWithIndex creates a table with explicit row labels.
func NewWithIndex(index []int, columns ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, len(columns)),
		byName:  make(map[string]int, len(columns)),
		index:   make([]int, len(index)),
	}
	copy(t.index, index)

	for i, c := range columns {
		if c == nil {
			return nil, dataerr.InvalidParameter("column %d is nil", i)
		}
		if c.Name() == "" {
			return nil, dataerr.InvalidParameter("column %d has no name", i)
		}
		if _, dup := t.byName[c.Name()]; dup {
			return nil, dataerr.InvalidParameter("duplicate column %q", c.Name())
		}
		if c.Len() != len(index) {
			return nil, dataerr.InvalidParameter("column %q has %d rows, want %d", c.Name(), c.Len(), len(index))
		}
		t.columns[i] = c
		t.byName[c.Name()] = i
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.index) }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name()
	}
	return names
}

// Has reports whether a column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Column returns the named column or an error wrapping
// dataerr.ErrColumnNotFound.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, dataerr.ColumnNotFound(name)
	}
	return t.columns[i], nil
}

// ColumnAt returns the i-th column.
func (t *Table) ColumnAt(i int) *Column { return t.columns[i] }

// Index returns a copy of the row labels.
func (t *Table) Index() []int {
	out := make([]int, len(t.index))
	copy(out, t.index)
	return out
}

// Label returns the label of row i.
func (t *Table) Label(i int) int { return t.index[i] }

// Take returns a new table holding the rows at the given positions, in the
// given order. Row labels travel with their rows.
func (t *Table) Take(rows []int) (*Table, error) {
	for _, r := range rows {
		if r < 0 || r >= t.Len() {
			return nil, dataerr.InvalidParameter("row %d out of range [0, %d)", r, t.Len())
		}
	}
	index := make([]int, len(rows))
	for j, r := range rows {
		index[j] = t.index[r]
	}
	columns := make([]*Column, len(t.columns))
	for i, c := range t.columns {
		columns[i] = c.take(rows)
	}
	return NewWithIndex(index, columns...)
}

// Replace returns a new table where each given column replaces the existing
// column of the same name. Unreplaced columns are shared with t.
func (t *Table) Replace(columns ...*Column) (*Table, error) {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	for _, c := range columns {
		i, ok := t.byName[c.Name()]
		if !ok {
			return nil, dataerr.ColumnNotFound(c.Name())
		}
		out[i] = c
	}
	return NewWithIndex(t.index, out...)
}

// Equal reports whether two tables have the same row labels and equal
// columns in the same order.
func (t *Table) Equal(o *Table) bool {
	if t.Len() != o.Len() || t.NumColumns() != o.NumColumns() {
		return false
	}
	for i := range t.index {
		if t.index[i] != o.index[i] {
			return false
		}
	}
	for i, c := range t.columns {
		if !c.Equal(o.columns[i]) {
			return false
		}
	}
	return true
}

// Concat stacks tables with identical column names and kinds.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return New()
	}
	first := tables[0]
	var index []int
	for _, t := range tables {
		if t.NumColumns() != first.NumColumns() {
			return nil, dataerr.InvalidParameter("cannot concat tables with %d and %d columns", first.NumColumns(), t.NumColumns())
		}
		index = append(index, t.index...)
	}

	columns := make([]*Column, first.NumColumns())
	for i, c := range first.columns {
		out := &Column{name: c.name, kind: c.kind}
		for _, t := range tables {
			o := t.columns[i]
			if o.name != c.name || o.kind != c.kind {
				return nil, dataerr.TypeMismatch("column %d: %q (%s) does not match %q (%s)", i, o.name, o.kind, c.name, c.kind)
			}
			out.nums = append(out.nums, o.nums...)
			out.strs = append(out.strs, o.strs...)
			out.missing = append(out.missing, o.missing...)
		}
		columns[i] = out
	}
	return NewWithIndex(index, columns...)
}
