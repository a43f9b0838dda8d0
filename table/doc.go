// Package table provides the tabular container used by the clean package.
//
// A Table is an ordered set of named columns of equal length. Each column
// is either Numeric (float64, NaN marks a missing cell) or Text (string with
// an explicit missing mask). Every row carries an integer label that
// survives row selection, so a filtered table still tells which original
// rows it holds.
//
// # Creating a Table
//
//	name, _ := table.NewText("name", []string{" Alice ", "Bob", ""}, []bool{false, false, true})
//	age := table.NewNumeric("age", []float64{25, math.NaN(), 35})
//	t, err := table.New(name, age)
//
// # Immutability
//
// Tables and columns are never modified after construction. Take, Replace
// and Concat return new tables; columns that are not rewritten are shared.
//
//	kept, _ := t.Take([]int{0, 2})
//	kept.Index() // [0 2]
//
// # Loading from CSV
//
// Column kinds are declared, never guessed:
//
//	opts := table.DefaultCSVOptions()
//	opts.NumericColumns = []string{"age"}
//	t, err := table.LoadCSV("people.csv", opts)
//
// # Apache Arrow
//
// Tables convert to and from Arrow records. Row labels travel in the
// IndexField column.
//
//	rec := t.ToRecord(memory.NewGoAllocator())
//	defer rec.Release()
//	back, err := table.FromRecord(rec)
package table
