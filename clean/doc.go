// Package clean provides row and column cleaning for tables.
//
// Every operation validates the column names it receives before doing any
// work and returns a new table, leaving the input untouched.
//
// # Trimming Text
//
//	out, err := clean.TrimStrings(t, []string{"name", "city"})
//
// Only Text columns can be trimmed; a Numeric column yields
// dataerr.ErrTypeMismatch.
//
// # Dropping Incomplete Rows
//
//	out, err := clean.DropInvalidRows(t, []string{"name", "age"})
//	out.Index() // labels of the surviving rows
//
// # Removing Outliers
//
// The IQR rule keeps values inside [Q1 - k*IQR, Q3 + k*IQR]:
//
//	out, err := clean.RemoveOutliersIQR(t, "age", clean.DefaultIQRFactor)
//
// Quartiles ignore missing values, and rows missing the value are dropped.
package clean
