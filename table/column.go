package table

import (
	"math"

	"github.com/sartorproj/godataprep/dataerr"
)

// Kind is the logical type of a column.
type Kind int

const (
	// Numeric columns hold float64 values; NaN marks a missing cell.
	Numeric Kind = iota
	// Text columns hold strings with an explicit missing mask.
	Text
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Column is an immutable, named sequence of cells of a single kind.
// Accessors return copies, so a column may be shared by several tables.
type Column struct {
	name    string
	kind    Kind
	nums    []float64
	strs    []string
	missing []bool
}

// NewNumeric creates a numeric column. NaN values are missing cells.
func NewNumeric(name string, values []float64) *Column {
	nums := make([]float64, len(values))
	missing := make([]bool, len(values))
	for i, v := range values {
		nums[i] = v
		missing[i] = math.IsNaN(v)
	}
	return &Column{name: name, kind: Numeric, nums: nums, missing: missing}
}

// NewText creates a text column. missing may be nil when every cell is
// present; otherwise it must have the same length as values.
func NewText(name string, values []string, missing []bool) (*Column, error) {
	if missing != nil && len(missing) != len(values) {
		return nil, dataerr.InvalidParameter("column %q: %d values but %d missing flags", name, len(values), len(missing))
	}
	strs := make([]string, len(values))
	mask := make([]bool, len(values))
	for i, v := range values {
		if missing != nil && missing[i] {
			mask[i] = true
			continue
		}
		strs[i] = v
	}
	return &Column{name: name, kind: Text, strs: strs, missing: mask}, nil
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the logical type of the column.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.missing) }

// IsMissing reports whether cell i is missing.
func (c *Column) IsMissing(i int) bool { return c.missing[i] }

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.missing {
		if m {
			n++
		}
	}
	return n
}

// Float returns cell i of a numeric column. ok is false when the cell is
// missing or the column is not numeric.
func (c *Column) Float(i int) (v float64, ok bool) {
	if c.kind != Numeric || c.missing[i] {
		return math.NaN(), false
	}
	return c.nums[i], true
}

// Str returns cell i of a text column. ok is false when the cell is missing
// or the column is not text.
func (c *Column) Str(i int) (v string, ok bool) {
	if c.kind != Text || c.missing[i] {
		return "", false
	}
	return c.strs[i], true
}

// Floats returns a copy of a numeric column's values with NaN in missing
// cells. It returns nil for text columns.
func (c *Column) Floats() []float64 {
	if c.kind != Numeric {
		return nil
	}
	out := make([]float64, len(c.nums))
	copy(out, c.nums)
	return out
}

// Strings returns a copy of a text column's values with "" in missing cells.
// It returns nil for numeric columns.
func (c *Column) Strings() []string {
	if c.kind != Text {
		return nil
	}
	out := make([]string, len(c.strs))
	copy(out, c.strs)
	return out
}

// Missing returns a copy of the missing mask.
func (c *Column) Missing() []bool {
	out := make([]bool, len(c.missing))
	copy(out, c.missing)
	return out
}

// MapText returns a new text column with f applied to every present cell.
// Missing cells stay missing.
func (c *Column) MapText(f func(string) string) (*Column, error) {
	if c.kind != Text {
		return nil, dataerr.TypeMismatch("column %q is %s, want %s", c.name, c.kind, Text)
	}
	strs := make([]string, len(c.strs))
	for i, v := range c.strs {
		if !c.missing[i] {
			strs[i] = f(v)
		}
	}
	return &Column{name: c.name, kind: Text, strs: strs, missing: c.Missing()}, nil
}

// take returns a new column holding the given positions in order.
func (c *Column) take(rows []int) *Column {
	out := &Column{name: c.name, kind: c.kind, missing: make([]bool, len(rows))}
	switch c.kind {
	case Numeric:
		out.nums = make([]float64, len(rows))
		for j, i := range rows {
			out.nums[j] = c.nums[i]
			out.missing[j] = c.missing[i]
		}
	case Text:
		out.strs = make([]string, len(rows))
		for j, i := range rows {
			out.strs[j] = c.strs[i]
			out.missing[j] = c.missing[i]
		}
	}
	return out
}

// Equal reports whether two columns have the same name, kind, missing mask
// and present values.
func (c *Column) Equal(o *Column) bool {
	if c.name != o.name || c.kind != o.kind || c.Len() != o.Len() {
		return false
	}
	for i := range c.missing {
		if c.missing[i] != o.missing[i] {
			return false
		}
		if c.missing[i] {
			continue
		}
		switch c.kind {
		case Numeric:
			if c.nums[i] != o.nums[i] {
				return false
			}
		case Text:
			if c.strs[i] != o.strs[i] {
				return false
			}
		}
	}
	return true
}
