// Package clean provides non-mutating cleaning operations on tables.
package clean

import (
	"math"
	"strings"

	"github.com/sartorproj/godataprep/dataerr"
	"github.com/sartorproj/godataprep/series"
	"github.com/sartorproj/godataprep/table"
)

// DefaultIQRFactor is the conventional multiplier for the IQR outlier rule.
const DefaultIQRFactor = 1.5

// anyKind disables the kind check in lookup.
const anyKind table.Kind = -1

// TrimStrings returns a copy of t with leading and trailing whitespace
// removed from every cell of the named text columns. Missing cells stay
// missing. Every name is checked before any column is rewritten.
func TrimStrings(t *table.Table, columns []string) (*table.Table, error) {
	cols, err := lookup(t, columns, table.Text)
	if err != nil {
		return nil, err
	}

	trimmed := make([]*table.Column, len(cols))
	for i, c := range cols {
		if trimmed[i], err = c.MapText(strings.TrimSpace); err != nil {
			return nil, err
		}
	}
	return t.Replace(trimmed...)
}

// DropInvalidRows returns the rows of t where none of the named columns is
// missing. Row order and row labels are preserved.
func DropInvalidRows(t *table.Table, columns []string) (*table.Table, error) {
	cols, err := lookup(t, columns, anyKind)
	if err != nil {
		return nil, err
	}

	keep := make([]int, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		valid := true
		for _, c := range cols {
			if c.IsMissing(row) {
				valid = false
				break
			}
		}
		if valid {
			keep = append(keep, row)
		}
	}
	return t.Take(keep)
}

// RemoveOutliersIQR keeps the rows whose value in column lies in the closed
// interval [Q1 - factor*IQR, Q3 + factor*IQR]. Quartiles are computed over
// the non-missing values; rows missing the value are dropped.
func RemoveOutliersIQR(t *table.Table, column string, factor float64) (*table.Table, error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	cols, err := lookup(t, []string{column}, table.Numeric)
	if err != nil {
		return nil, err
	}
	c := cols[0]

	values := series.Named(column, c.Floats()).DropNaN()
	if values.Len() == 0 {
		return t.Take(nil)
	}
	lo, hi, err := IQRBounds(values, factor)
	if err != nil {
		return nil, err
	}

	keep := make([]int, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		v, ok := c.Float(row)
		if ok && v >= lo && v <= hi {
			keep = append(keep, row)
		}
	}
	return t.Take(keep)
}

// IQRBounds returns the acceptance interval of the IQR rule for the non-NaN
// values of s. An IQR of zero collapses the interval to [Q1, Q3].
func IQRBounds(s *series.Series, factor float64) (lo, hi float64, err error) {
	if err := checkFactor(factor); err != nil {
		return 0, 0, err
	}
	q1 := s.Quantile(0.25)
	q3 := s.Quantile(0.75)
	if math.IsNaN(q1) || math.IsNaN(q3) {
		return 0, 0, dataerr.InvalidParameter("no values to compute quartiles")
	}
	iqr := q3 - q1
	return q1 - factor*iqr, q3 + factor*iqr, nil
}

func checkFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return dataerr.InvalidParameter("iqr factor must be positive and finite, got %v", factor)
	}
	return nil
}

// lookup resolves every name before returning, so no work starts on a
// partially valid request.
func lookup(t *table.Table, names []string, want table.Kind) ([]*table.Column, error) {
	cols := make([]*table.Column, len(names))
	for i, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	if want == anyKind {
		return cols, nil
	}
	for _, c := range cols {
		if c.Kind() != want {
			return nil, dataerr.TypeMismatch("column %q is %s, want %s", c.Name(), c.Kind(), want)
		}
	}
	return cols, nil
}
