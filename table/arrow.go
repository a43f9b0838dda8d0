package table

import (
	"io"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pkg/errors"

	"github.com/sartorproj/godataprep/dataerr"
)

// IndexField is the Arrow column that carries row labels.
const IndexField = "__index_level_0__"

// FromRecord converts an Arrow record into a table. Floating point and
// integer columns become Numeric, string columns become Text and nulls become
// missing cells. An int64 IndexField column, when present, supplies the row
// labels.
func FromRecord(rec arrow.Record) (*Table, error) {
	n := int(rec.NumRows())
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}

	var columns []*Column
	for i := 0; i < int(rec.NumCols()); i++ {
		name := rec.ColumnName(i)
		arr := rec.Column(i)

		if name == IndexField {
			labels, ok := arr.(*array.Int64)
			if !ok {
				return nil, dataerr.TypeMismatch("index column is %s, want int64", arr.DataType())
			}
			for j := 0; j < n; j++ {
				index[j] = int(labels.Value(j))
			}
			continue
		}

		c, err := columnFromArray(name, arr)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}

	return NewWithIndex(index, columns...)
}

func columnFromArray(name string, arr arrow.Array) (*Column, error) {
	n := arr.Len()

	if a, ok := arr.(*array.String); ok {
		values := make([]string, n)
		missing := make([]bool, n)
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				missing[i] = true
				continue
			}
			values[i] = a.Value(i)
		}
		return NewText(name, values, missing)
	}

	var value func(i int) float64
	switch a := arr.(type) {
	case *array.Float64:
		value = a.Value
	case *array.Float32:
		value = func(i int) float64 { return float64(a.Value(i)) }
	case *array.Int64:
		value = func(i int) float64 { return float64(a.Value(i)) }
	case *array.Int32:
		value = func(i int) float64 { return float64(a.Value(i)) }
	default:
		return nil, dataerr.TypeMismatch("column %q has unsupported arrow type %s", name, arr.DataType())
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		if arr.IsNull(i) {
			values[i] = math.NaN()
			continue
		}
		values[i] = value(i)
	}
	return NewNumeric(name, values), nil
}

// Schema returns the Arrow schema of t, with the row labels as the first
// field.
func (t *Table) Schema() *arrow.Schema {
	fields := make([]arrow.Field, 0, len(t.columns)+1)
	fields = append(fields, arrow.Field{Name: IndexField, Type: arrow.PrimitiveTypes.Int64})
	for _, c := range t.columns {
		f := arrow.Field{Name: c.Name(), Type: arrow.PrimitiveTypes.Float64, Nullable: true}
		if c.Kind() == Text {
			f.Type = arrow.BinaryTypes.String
		}
		fields = append(fields, f)
	}
	return arrow.NewSchema(fields, nil)
}

// ToRecord converts t into an Arrow record. The caller must Release it.
func (t *Table) ToRecord(mem memory.Allocator) arrow.Record {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	cols := make([]arrow.Array, 0, len(t.columns)+1)
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	ib := array.NewInt64Builder(mem)
	defer ib.Release()
	for _, label := range t.index {
		ib.Append(int64(label))
	}
	cols = append(cols, ib.NewArray())

	for _, c := range t.columns {
		cols = append(cols, arrayFromColumn(mem, c))
	}

	return array.NewRecord(t.Schema(), cols, int64(t.Len()))
}

func arrayFromColumn(mem memory.Allocator, c *Column) arrow.Array {
	switch c.Kind() {
	case Text:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Str(i); ok {
				b.Append(v)
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	default:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Float(i); ok {
				b.Append(v)
			} else {
				b.AppendNull()
			}
		}
		return b.NewArray()
	}
}

// WriteArrowStream writes t to w as an Arrow IPC stream holding one record
// batch.
func WriteArrowStream(w io.Writer, t *Table, mem memory.Allocator) error {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	rec := t.ToRecord(mem)
	defer rec.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return errors.Wrap(err, "writing arrow record")
	}
	return writer.Close()
}

// ReadArrowStream reads every record batch of an Arrow IPC stream and
// concatenates them into one table.
func ReadArrowStream(r io.Reader, mem memory.Allocator) (*Table, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	reader, err := ipc.NewReader(r, ipc.WithAllocator(mem))
	if err != nil {
		return nil, errors.Wrap(err, "opening arrow stream")
	}
	defer reader.Release()

	var parts []*Table
	for reader.Next() {
		part, err := FromRecord(reader.Record())
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	if err := reader.Err(); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading arrow stream")
	}
	if len(parts) == 0 {
		return emptyFromSchema(reader.Schema())
	}
	return Concat(parts...)
}

func emptyFromSchema(schema *arrow.Schema) (*Table, error) {
	var columns []*Column
	for _, f := range schema.Fields() {
		if f.Name == IndexField {
			continue
		}
		switch f.Type.ID() {
		case arrow.STRING:
			c, err := NewText(f.Name, nil, nil)
			if err != nil {
				return nil, err
			}
			columns = append(columns, c)
		case arrow.FLOAT64, arrow.FLOAT32, arrow.INT64, arrow.INT32:
			columns = append(columns, NewNumeric(f.Name, nil))
		default:
			return nil, dataerr.TypeMismatch("column %q has unsupported arrow type %s", f.Name, f.Type)
		}
	}
	return New(columns...)
}
