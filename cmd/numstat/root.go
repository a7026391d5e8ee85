// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "numstat",
		Short: "Compute statistics of numbers",
		Long: `numstat reads white-space separated numbers from files or standard
input and prints statistics of them.

Integers and rationals (3/4) are summed exactly. Floats, complex numbers
(1+2i) and the not-available markers NA and NaN are also accepted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringP("output", "o", "text", "output format: text, json, yaml or table")
	pf.String("config", "", "config file (default ./numstat.yaml or $HOME/.config/numstat/numstat.yaml)")
	pf.BoolP("verbose", "v", false, "log progress to standard error")

	root.AddCommand(
		sumCommand(),
		sumRangeCommand(),
		momentCommand("mean", "Print the mean"),
		momentCommand("variance", "Print the variance"),
		momentCommand("stdev", "Print the standard deviation"),
		percentileCommand(),
		medianCommand(),
		extremeCommand("argmax", "Print the first largest value and its index"),
		extremeCommand("argmin", "Print the first smallest value and its index"),
		countsCommand(),
		histogramCommand(),
		describeCommand(),
	)
	return root
}

// A session is the state of one command invocation.
type session struct {
	cmd      *cobra.Command
	settings *settings
	log      *zap.Logger
}

// inputs reads the files named by args.
func (s *session) inputs(args []string) ([]input, error) {
	return readInputs(s.cmd.InOrStdin(), args, s.log)
}

// run adapts fn to a cobra RunE: it loads settings, sets up logging and
// renders the report fn returns.
func run(fn func(s *session, args []string) (report, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		st, err := loadSettings(cmd.Flags())
		if err != nil {
			return err
		}
		f, err := parseFormat(st.Output)
		if err != nil {
			return err
		}
		log := newLogger(st.Verbose, cmd.ErrOrStderr())
		defer log.Sync()
		log.Debug("settings",
			zap.String("command", cmd.Name()),
			zap.Bool("population", st.Population),
			zap.String("closed", st.Closed),
			zap.Int("bins", st.Bins),
			zap.Bool("normalize", st.Normalize),
			zap.Bool("sort", st.Sort),
			zap.Bool("ascending", st.Ascending),
			zap.Bool("dropna", st.DropNA),
			zap.String("output", st.Output))

		r, err := fn(&session{cmd: cmd, settings: st, log: log}, args)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), f, r)
	}
}

// newLogger returns a development logger writing to w, or a no-op
// logger unless verbose.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}
