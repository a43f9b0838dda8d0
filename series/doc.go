// Package series provides the numeric sequence type and its reductions.
//
// # Creating a Series
//
// New and Named copy their input, so later changes to the caller's slice
// never reach the series:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	s := series.Named("price", values)
//
// # Reductions
//
//	mean := s.Mean()
//	std := s.PopStd()        // divisor N
//	min, max := s.Min(), s.Max()
//	q1 := s.Quantile(0.25)   // linear interpolation, NaN ignored
//
// Min and Max return NaN when the series contains NaN. Quantile skips NaN
// values instead.
//
// # Slicing and Copying
//
//	subset := s.Slice(1, 4)
//	clean := s.DropNaN()
//	cp := s.Copy()
package series
