package table

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sartorproj/godataprep/dataerr"
)

// CSVOptions holds options for CSV loading and writing.
type CSVOptions struct {
	Delimiter      rune     // Field delimiter (default: ',')
	HasHeader      bool     // Whether CSV has header row (default: true)
	SkipRows       int      // Number of rows to skip at start
	NumericColumns []string // Columns parsed as numbers; all others are text
	NATokens       []string // Cell values read as missing
	IndexColumn    string   // Column holding row labels (optional)
	MissingValue   string   // Written for missing cells (default: "")
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ',',
		HasHeader: true,
		NATokens:  []string{"", "NA", "NaN", "null"},
	}
}

func (o *CSVOptions) isNA(v string) bool { return slices.Contains(o.NATokens, v) }

func (o *CSVOptions) isNumeric(name string) bool { return slices.Contains(o.NumericColumns, name) }

// LoadCSV loads a table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a table from an io.Reader. Column kinds come from
// opts.NumericColumns; they are never guessed from the data.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrapf(err, "skipping row %d", i)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}

	var headers []string
	if opts.HasHeader {
		if len(records) == 0 {
			return nil, errors.New("csv has no header row")
		}
		headers = records[0]
		records = records[1:]
	} else if len(records) > 0 {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = "col" + strconv.Itoa(i)
		}
	}

	for row, rec := range records {
		if len(rec) != len(headers) {
			return nil, dataerr.InvalidParameter("row %d has %d fields, want %d", row+1, len(rec), len(headers))
		}
	}

	for _, name := range opts.NumericColumns {
		if !slices.Contains(headers, name) {
			return nil, dataerr.ColumnNotFound(name)
		}
	}

	indexIdx := -1
	if opts.IndexColumn != "" {
		indexIdx = slices.Index(headers, opts.IndexColumn)
		if indexIdx == -1 {
			return nil, dataerr.ColumnNotFound(opts.IndexColumn)
		}
	}

	index := make([]int, len(records))
	for row := range records {
		index[row] = row
		if indexIdx >= 0 {
			label, err := strconv.Atoi(strings.TrimSpace(records[row][indexIdx]))
			if err != nil {
				return nil, dataerr.TypeMismatch("row %d: index %q is not an integer", row+1, records[row][indexIdx])
			}
			index[row] = label
		}
	}

	var columns []*Column
	for col, name := range headers {
		if col == indexIdx {
			continue
		}
		c, err := parseColumn(name, col, records, opts)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}

	return NewWithIndex(index, columns...)
}

func parseColumn(name string, col int, records [][]string, opts *CSVOptions) (*Column, error) {
	if opts.isNumeric(name) {
		values := make([]float64, len(records))
		for row, rec := range records {
			cell := rec[col]
			if opts.isNA(strings.TrimSpace(cell)) {
				values[row] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, dataerr.TypeMismatch("row %d: column %q value %q is not numeric", row+1, name, cell)
			}
			values[row] = v
		}
		return NewNumeric(name, values), nil
	}

	values := make([]string, len(records))
	missing := make([]bool, len(records))
	for row, rec := range records {
		values[row] = rec[col]
		missing[row] = opts.isNA(rec[col])
	}
	return NewText(name, values, missing)
}

// WriteCSV writes t to w. When opts.IndexColumn is set, row labels are
// written as the first column under that name.
func WriteCSV(w io.Writer, t *Table, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	writer := csv.NewWriter(w)
	writer.Comma = opts.Delimiter

	if opts.HasHeader {
		header := t.Names()
		if opts.IndexColumn != "" {
			header = append([]string{opts.IndexColumn}, header...)
		}
		if err := writer.Write(header); err != nil {
			return err
		}
	}

	record := make([]string, 0, t.NumColumns()+1)
	for row := 0; row < t.Len(); row++ {
		record = record[:0]
		if opts.IndexColumn != "" {
			record = append(record, strconv.Itoa(t.Label(row)))
		}
		for _, c := range t.columns {
			record = append(record, formatCell(c, row, opts))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV saves a table to a CSV file.
func SaveCSV(t *Table, filename string, opts *CSVOptions) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, t, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func formatCell(c *Column, row int, opts *CSVOptions) string {
	if c.IsMissing(row) {
		return opts.MissingValue
	}
	if v, ok := c.Float(row); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	v, _ := c.Str(row)
	return v
}
