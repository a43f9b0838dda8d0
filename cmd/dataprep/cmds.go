package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godataprep/clean"
	"github.com/sartorproj/godataprep/dataerr"
	"github.com/sartorproj/godataprep/series"
	"github.com/sartorproj/godataprep/stats"
	"github.com/sartorproj/godataprep/table"
)

const (
	formatCSV   = "csv"
	formatArrow = "arrow"
)

func addCommands(root *cobra.Command) {
	// Cleaning
	cmd := &cobra.Command{
		Use:   "trim file",
		Short: "Trim leading and trailing whitespace in text columns",
		Args:  cobra.ExactArgs(1),
		RunE:  trimStrings}
	cmd.Flags().StringSlice("columns", nil, "text columns to trim")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "dropna file",
		Short: "Drop rows with missing values in the given columns",
		Args:  cobra.ExactArgs(1),
		RunE:  dropInvalidRows}
	cmd.Flags().StringSlice("columns", nil, "columns that must be present")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "outliers file",
		Short: "Remove rows outside the IQR fences of a numeric column",
		Args:  cobra.ExactArgs(1),
		RunE:  removeOutliers}
	cmd.Flags().String("column", "", "numeric column to filter on")
	cmd.Flags().Float64("factor", clean.DefaultIQRFactor, "IQR multiplier")
	root.AddCommand(cmd)

	// Statistics
	cmd = &cobra.Command{
		Use:   "movavg file",
		Short: "Moving average of a numeric column",
		Args:  cobra.ExactArgs(1),
		RunE:  movingAverage}
	cmd.Flags().String("column", "", "numeric column")
	cmd.Flags().Int("window", 3, "window size")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "zscore file",
		Short: "Z-score normalization of a numeric column",
		Args:  cobra.ExactArgs(1),
		RunE:  zscore}
	cmd.Flags().String("column", "", "numeric column")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "minmax file",
		Short: "Min-max scaling of a numeric column onto [0, 1]",
		Args:  cobra.ExactArgs(1),
		RunE:  minMaxScale}
	cmd.Flags().String("column", "", "numeric column")
	root.AddCommand(cmd)
}

// Represents the state used when processing a command.
type Action struct {
	cmd   *cobra.Command
	log   zerolog.Logger
	start time.Time
}

func newAction(cmd *cobra.Command) *Action {
	return &Action{
		cmd:   cmd,
		log:   log.With().Str("command", cmd.Name()).Logger(),
		start: time.Now(),
	}
}

func (a *Action) getString(name string) string {
	v, _ := a.cmd.Flags().GetString(name)
	return v
}

func (a *Action) getStringSlice(name string) []string {
	v, _ := a.cmd.Flags().GetStringSlice(name)
	return v
}

func (a *Action) getFloat(name string) float64 {
	v, _ := a.cmd.Flags().GetFloat64(name)
	return v
}

func (a *Action) csvOptions() (*table.CSVOptions, error) {
	opts := table.DefaultCSVOptions()
	delim := []rune(a.getString("delimiter"))
	if len(delim) != 1 {
		return nil, errors.Errorf("--delimiter must be a single character, got %q", string(delim))
	}
	opts.Delimiter = delim[0]
	opts.NumericColumns = a.getStringSlice("numeric")
	opts.IndexColumn = a.getString("index")
	return opts, nil
}

func (a *Action) loadTable(filename string) (*table.Table, error) {
	opts, err := a.csvOptions()
	if err != nil {
		return nil, err
	}
	t, err := table.LoadCSV(filename, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", filename)
	}
	a.log.Debug().
		Str("file", filename).
		Int("rows", t.Len()).
		Strs("columns", t.Names()).
		Msg("loaded table")
	return t, nil
}

func (a *Action) writeTable(t *table.Table) error {
	opts, err := a.csvOptions()
	if err != nil {
		return err
	}

	var w io.Writer = a.cmd.OutOrStdout()
	if path := a.getString("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	switch format := a.getString("format"); format {
	case formatCSV:
		err = table.WriteCSV(w, t, opts)
	case formatArrow:
		err = table.WriteArrowStream(w, t, nil)
	default:
		return errors.Errorf("unknown --format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "writing output")
	}

	a.log.Info().
		Int("rows", t.Len()).
		Dur("elapsed", time.Since(a.start)).
		Msg("done")
	return nil
}

func (a *Action) requireFlag(name string) (string, error) {
	v := a.getString(name)
	if v == "" {
		return "", errors.Errorf("--%s is required", name)
	}
	return v, nil
}

func trimStrings(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)
	t, err := action.loadTable(args[0])
	if err != nil {
		return err
	}
	out, err := clean.TrimStrings(t, action.getStringSlice("columns"))
	if err != nil {
		return err
	}
	return action.writeTable(out)
}

func dropInvalidRows(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)
	t, err := action.loadTable(args[0])
	if err != nil {
		return err
	}
	out, err := clean.DropInvalidRows(t, action.getStringSlice("columns"))
	if err != nil {
		return err
	}
	action.log.Info().Int("dropped", t.Len()-out.Len()).Msg("dropped incomplete rows")
	return action.writeTable(out)
}

func removeOutliers(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)
	column, err := action.requireFlag("column")
	if err != nil {
		return err
	}
	t, err := action.loadTable(args[0])
	if err != nil {
		return err
	}
	out, err := clean.RemoveOutliersIQR(t, column, action.getFloat("factor"))
	if err != nil {
		return err
	}
	action.log.Info().Int("removed", t.Len()-out.Len()).Str("column", column).Msg("removed outliers")
	return action.writeTable(out)
}

// statFunc computes a derived series. offset is the position, within the
// input, of the row the first output value belongs to.
type statFunc func(s *series.Series) (result *series.Series, offset int, err error)

func runStat(cmd *cobra.Command, filename string, f statFunc) error {
	action := newAction(cmd)
	column, err := action.requireFlag("column")
	if err != nil {
		return err
	}
	t, err := action.loadTable(filename)
	if err != nil {
		return err
	}

	present, err := clean.DropInvalidRows(t, []string{column})
	if err != nil {
		return err
	}
	c, err := present.Column(column)
	if err != nil {
		return err
	}
	if c.Kind() != table.Numeric {
		return dataerr.TypeMismatch("column %q is %s, want %s; list it in --numeric", column, c.Kind(), table.Numeric)
	}
	if skipped := t.Len() - present.Len(); skipped > 0 {
		action.log.Warn().Int("rows", skipped).Str("column", column).Msg("skipping rows with missing values")
	}

	result, offset, err := f(series.Named(column, c.Floats()))
	if err != nil {
		return err
	}

	labels := present.Index()[offset : offset+result.Len()]
	out, err := table.NewWithIndex(labels, table.NewNumeric(result.Name, result.Values))
	if err != nil {
		return err
	}
	return action.writeTable(out)
}

func movingAverage(cmd *cobra.Command, args []string) error {
	window, _ := cmd.Flags().GetInt("window")
	return runStat(cmd, args[0], func(s *series.Series) (*series.Series, int, error) {
		ma, err := stats.MovingAverage(s, window)
		return ma, window - 1, err
	})
}

func zscore(cmd *cobra.Command, args []string) error {
	return runStat(cmd, args[0], func(s *series.Series) (*series.Series, int, error) {
		z, err := stats.ZScore(s)
		return z, 0, err
	})
}

func minMaxScale(cmd *cobra.Command, args []string) error {
	return runStat(cmd, args[0], func(s *series.Series) (*series.Series, int, error) {
		scaled, err := stats.MinMaxScale(s)
		return scaled, 0, err
	})
}
