// Package godataprep provides table cleaning and sequence statistics for
// data preparation.
//
// # Features
//
//   - Typed tables with missing-value markers and preserved row labels
//   - Whitespace trimming, incomplete-row removal and IQR outlier filtering
//   - Moving average, z-score normalization and min-max scaling
//   - CSV and Apache Arrow interchange
//
// # Quick Start
//
// Clean a table:
//
//	opts := table.DefaultCSVOptions()
//	opts.NumericColumns = []string{"age"}
//	t, _ := table.LoadCSV("people.csv", opts)
//
//	t, _ = clean.TrimStrings(t, []string{"name"})
//	t, _ = clean.DropInvalidRows(t, []string{"name", "age"})
//	t, _ = clean.RemoveOutliersIQR(t, "age", clean.DefaultIQRFactor)
//
// Compute statistics on a sequence:
//
//	s := series.New([]float64{1, 2, 3, 4})
//	ma, _ := stats.MovingAverage(s, 2)
//	z, _ := stats.ZScore(s)
//
// # Packages
//
//   - table: Table and Column types, CSV and Arrow interchange
//   - clean: Non-mutating table cleaning
//   - series: Numeric sequence type and reductions
//   - stats: Moving average and normalization
//   - dataerr: Error kinds shared by all packages
//
// The dataprep command in cmd/dataprep runs every operation over CSV files.
package godataprep
