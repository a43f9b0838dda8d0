// Package series provides the numeric sequence type used by the stats and
// clean packages.
package series

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series represents an ordered, one-dimensional sequence of real numbers.
type Series struct {
	Values []float64
	Name   string
}

// New creates a new series holding a copy of values.
func New(values []float64) *Series {
	return Named("", values)
}

// Named creates a named series holding a copy of values.
func Named(name string, values []float64) *Series {
	cp := make([]float64, len(values))
	copy(cp, values)
	return &Series{
		Values: cp,
		Name:   name,
	}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

// Sum returns the sum of all values.
func (s *Series) Sum() float64 {
	if s.Len() == 0 {
		return 0
	}
	return floats.Sum(s.Values)
}

// Mean calculates the arithmetic mean of the series.
// It returns NaN for an empty series.
func (s *Series) Mean() float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return stat.Mean(s.Values, nil)
}

// PopStd calculates the population standard deviation (divisor N).
// It returns NaN for an empty series.
func (s *Series) PopStd() float64 {
	_, std := s.PopMeanStd()
	return std
}

// PopMeanStd returns the mean and the population standard deviation in one pass
// over the data.
func (s *Series) PopMeanStd() (mean, std float64) {
	if s.Len() == 0 {
		return math.NaN(), math.NaN()
	}
	return stat.PopMeanStdDev(s.Values, nil)
}

// HasNaN reports whether any value is NaN.
func (s *Series) HasNaN() bool {
	if s.Len() == 0 {
		return false
	}
	return floats.HasNaN(s.Values)
}

// Min returns the minimum value in the series.
// NaN is returned for an empty series or one containing NaN.
func (s *Series) Min() float64 {
	if s.Len() == 0 || s.HasNaN() {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
// NaN is returned for an empty series or one containing NaN.
func (s *Series) Max() float64 {
	if s.Len() == 0 || s.HasNaN() {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Quantile returns the p-th quantile (0 <= p <= 1) of the non-NaN values,
// using linear interpolation between the closest ranks: the value at rank
// p*(n-1) of the sorted data. NaN is returned when p is out of range or no
// values remain.
func (s *Series) Quantile(p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}
	sorted := s.DropNaN().Values
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	rank := p * float64(n-1)
	lower := int(math.Floor(rank))
	if lower >= n-1 {
		return sorted[n-1]
	}
	weight := rank - float64(lower)
	return sorted[lower] + weight*(sorted[lower+1]-sorted[lower])
}

// DropNaN returns a new series without NaN values.
func (s *Series) DropNaN() *Series {
	values := make([]float64, 0, s.Len())
	if s != nil {
		for _, v := range s.Values {
			if !math.IsNaN(v) {
				values = append(values, v)
			}
		}
	}
	return &Series{
		Values: values,
		Name:   s.name(),
	}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > s.Len() {
		end = s.Len()
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.name()}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{
		Values: values,
		Name:   s.name(),
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	if s == nil {
		return New(nil)
	}
	return Named(s.Name, s.Values)
}

// Derive returns a new series of the given values named after s with suffix
// appended.
func (s *Series) Derive(suffix string, values []float64) *Series {
	name := s.name()
	if name != "" {
		name += suffix
	}
	return &Series{
		Values: values,
		Name:   name,
	}
}

func (s *Series) name() string {
	if s == nil {
		return ""
	}
	return s.Name
}
