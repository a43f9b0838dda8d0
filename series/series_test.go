package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	require.Equal(t, 5, s.Len())
	values[0] = 100
	assert.Equal(t, 1.0, s.Values[0], "series must not alias its input")
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, New(tt.values).Mean(), 1e-10)
		})
	}

	t.Run("empty", func(t *testing.T) {
		assert.True(t, math.IsNaN(New(nil).Mean()))
	})
}

func TestPopStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	mean, std := s.PopMeanStd()
	assert.InDelta(t, 5.0, mean, 1e-10)
	assert.InDelta(t, 2.0, std, 1e-10)
	assert.InDelta(t, 2.0, s.PopStd(), 1e-10)

	assert.InDelta(t, 0.0, New([]float64{3, 3, 3}).PopStd(), 1e-12)
	assert.True(t, math.IsNaN(New(nil).PopStd()))
}

func TestMinMax(t *testing.T) {
	s := New([]float64{5, 2, 8, 1, 9, 3})

	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
	assert.Equal(t, 28.0, s.Sum())

	withNaN := New([]float64{1, math.NaN(), 3})
	assert.True(t, withNaN.HasNaN())
	assert.True(t, math.IsNaN(withNaN.Min()))
	assert.True(t, math.IsNaN(withNaN.Max()))

	assert.True(t, math.IsNaN(New(nil).Min()))
	assert.True(t, math.IsNaN(New(nil).Max()))
}

func TestQuantile(t *testing.T) {
	s := New([]float64{20, 21, 19, 20, 22, 1000})

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{"min", 0, 19},
		{"q1", 0.25, 20},
		{"median", 0.5, 20.5},
		{"q3", 0.75, 21.75},
		{"max", 1, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, s.Quantile(tt.p), 1e-10)
		})
	}

	// Input order must survive the internal sort.
	assert.Equal(t, []float64{20, 21, 19, 20, 22, 1000}, s.Values)
}

func TestQuantileIgnoresNaN(t *testing.T) {
	s := New([]float64{25, math.NaN(), 35, 120})

	assert.InDelta(t, 30.0, s.Quantile(0.25), 1e-10)
	assert.InDelta(t, 77.5, s.Quantile(0.75), 1e-10)
}

func TestQuantileEdgeCases(t *testing.T) {
	assert.True(t, math.IsNaN(New(nil).Quantile(0.5)))
	assert.True(t, math.IsNaN(New([]float64{math.NaN()}).Quantile(0.5)))
	assert.True(t, math.IsNaN(New([]float64{1, 2}).Quantile(-0.1)))
	assert.True(t, math.IsNaN(New([]float64{1, 2}).Quantile(1.1)))
	assert.Equal(t, 7.0, New([]float64{7}).Quantile(0.25))
}

func TestSlice(t *testing.T) {
	s := Named("x", []float64{1, 2, 3, 4, 5})
	sliced := s.Slice(1, 4)

	assert.Equal(t, []float64{2, 3, 4}, sliced.Values)
	assert.Equal(t, "x", sliced.Name)

	sliced.Values[0] = 100
	assert.Equal(t, 2.0, s.Values[1])

	assert.Empty(t, s.Slice(4, 2).Values)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Slice(-3, 99).Values)
}

func TestDropNaN(t *testing.T) {
	s := New([]float64{1, math.NaN(), 3})
	dropped := s.DropNaN()

	assert.Equal(t, []float64{1, 3}, dropped.Values)
	assert.Equal(t, 3, s.Len())
}

func TestCopy(t *testing.T) {
	s := Named("x", []float64{1, 2, 3})
	copied := s.Copy()

	s.Values[0] = 100

	assert.Equal(t, 1.0, copied.Values[0], "copy was modified when original changed")
	assert.Equal(t, "x", copied.Name)
}

func TestDerive(t *testing.T) {
	assert.Equal(t, "price_ma", Named("price", nil).Derive("_ma", nil).Name)
	assert.Equal(t, "", New(nil).Derive("_ma", nil).Name)
}
