package stats

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/godataprep/dataerr"
	"github.com/sartorproj/godataprep/series"
)

// ErrShape is returned when a sequence is not one-dimensional.
// It wraps dataerr.ErrTypeMismatch.
var ErrShape = errors.Wrap(dataerr.ErrTypeMismatch, "sequence must be one-dimensional")

// AsSequence converts dynamically typed input into a series. It accepts a
// *series.Series or any slice or array of numeric scalars, including []any
// holding numbers; nil elements become NaN. Nested sequences return ErrShape
// and non-numeric elements return dataerr.ErrTypeMismatch.
func AsSequence(v any) (*series.Series, error) {
	switch x := v.(type) {
	case *series.Series:
		return x.Copy(), nil
	case []float64:
		return series.New(x), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, dataerr.TypeMismatch("%T is not a sequence", v)
	}

	values := make([]float64, rv.Len())
	for i := range values {
		f, err := scalar(rv.Index(i))
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		values[i] = f
	}
	return series.New(values), nil
}

func scalar(e reflect.Value) (float64, error) {
	for e.Kind() == reflect.Interface || e.Kind() == reflect.Pointer {
		if e.IsNil() {
			return math.NaN(), nil
		}
		e = e.Elem()
	}

	switch e.Kind() {
	case reflect.Float32, reflect.Float64:
		return e.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(e.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(e.Uint()), nil
	case reflect.Slice, reflect.Array:
		return 0, ErrShape
	default:
		return 0, dataerr.TypeMismatch("%s is not numeric", e.Type())
	}
}

// MovingAverage calculates the simple moving average of s: the mean of every
// window-sized slice s[i:i+window], for i from 0 to Len-window. The result
// has Len-window+1 values; there is no padding.
func MovingAverage(s *series.Series, window int) (*series.Series, error) {
	n := s.Len()
	if window < 1 || window > n {
		return nil, dataerr.InvalidParameter("window %d outside [1, %d]", window, n)
	}

	result := make([]float64, n-window+1)
	for i := range result {
		result[i] = floats.Sum(s.Values[i:i+window]) / float64(window)
	}
	return s.Derive("_ma", result), nil
}

// ZScore standardizes s with the population mean and standard deviation
// (divisor N). A sequence with zero spread has no z-score.
func ZScore(s *series.Series) (*series.Series, error) {
	if err := checkSpread(s); err != nil {
		return nil, err
	}

	mean, std := s.PopMeanStd()
	if !(std > 0) {
		return nil, dataerr.InvalidParameter("standard deviation is %v", std)
	}

	result := make([]float64, s.Len())
	for i, v := range s.Values {
		result[i] = (v - mean) / std
	}
	return s.Derive("_zscore", result), nil
}

// MinMaxScale maps s linearly onto [0, 1]. The minimum maps to exactly 0
// and the maximum to exactly 1.
func MinMaxScale(s *series.Series) (*series.Series, error) {
	if err := checkSpread(s); err != nil {
		return nil, err
	}

	lo, hi := s.Min(), s.Max()
	span := hi - lo
	if math.IsInf(span, 0) {
		return nil, dataerr.InvalidParameter("range %v..%v overflows", lo, hi)
	}

	result := make([]float64, s.Len())
	for i, v := range s.Values {
		result[i] = (v - lo) / span
	}
	return s.Derive("_scaled", result), nil
}

// checkSpread rejects sequences that are empty, contain NaN or hold a single
// distinct value.
func checkSpread(s *series.Series) error {
	if s.Len() == 0 {
		return dataerr.InvalidParameter("empty sequence")
	}
	if s.HasNaN() {
		return dataerr.InvalidParameter("sequence contains NaN")
	}
	if lo, hi := s.Min(), s.Max(); !(hi > lo) {
		return dataerr.InvalidParameter("constant sequence (all values %v)", lo)
	}
	return nil
}
