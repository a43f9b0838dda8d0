// Command dataprep cleans CSV tables and computes sequence statistics.
package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("dataprep failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "dataprep",
		Short:             "Clean tables and compute sequence statistics",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.StringSlice("numeric", nil, "columns parsed as numbers; all others are text")
	flags.String("delimiter", ",", "field delimiter")
	flags.String("index", "", "column holding row labels, read on input and written on output")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", formatCSV, "output format (csv, arrow)")

	addCommands(root)
	return root
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", levelName)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
	return nil
}
