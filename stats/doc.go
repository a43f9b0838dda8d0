// Package stats provides derived-array statistics for numeric sequences.
//
// Every function validates its input, leaves it untouched and returns a
// freshly allocated series. Failures wrap the kinds in package dataerr.
//
// # Accepting Untyped Input
//
// AsSequence checks that dynamically typed input is a flat numeric
// sequence:
//
//	s, err := stats.AsSequence([]any{1, 2.5, 3})
//	_, err = stats.AsSequence([][]float64{{1, 2}, {3, 4}}) // ErrShape
//
// # Moving Average
//
// The mean of every full window, without padding:
//
//	ma, err := stats.MovingAverage(series.New([]float64{1, 2, 3, 4}), 2)
//	// ma.Values == [1.5 2.5 3.5]
//
// # Normalization
//
//	// Z-score with population standard deviation (divisor N)
//	z, err := stats.ZScore(s)
//
//	// Linear rescaling onto [0, 1]
//	scaled, err := stats.MinMaxScale(s)
//
// Both reject empty sequences, sequences containing NaN and constant
// sequences with dataerr.ErrInvalidParameter.
package stats
