// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"iter"
	"slices"
	"strconv"

	"github.com/numstat/numstat/number"
	"github.com/numstat/numstat/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

func sumCommand() *cobra.Command {
	var initial string
	cmd := &cobra.Command{
		Use:   "sum [file ...]",
		Short: "Print the sum, exact for integers and rationals",
		RunE: run(func(s *session, args []string) (report, error) {
			start, err := number.Parse(initial)
			if err != nil {
				return nil, xerrors.Errorf("-initial: %w", err)
			}
			ins, err := s.inputs(args)
			if err != nil {
				return nil, err
			}
			v, err := stats.Sum(slices.Values(all(ins)), stats.Initial(start))
			if err != nil {
				return nil, err
			}
			return &valueReport{Stat: "sum", Value: v}, nil
		}),
	}
	cmd.Flags().StringVar(&initial, "initial", "0", "value the sum starts from")
	return cmd
}

func sumRangeCommand() *cobra.Command {
	var (
		initial   string
		exclusive bool
	)
	cmd := &cobra.Command{
		Use:   "sum-range begin end",
		Short: "Print the sum of the integers from begin to end",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(s *session, args []string) (report, error) {
			start, err := number.Parse(initial)
			if err != nil {
				return nil, xerrors.Errorf("-initial: %w", err)
			}
			begin, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return nil, xerrors.Errorf("begin: %w", err)
			}
			end, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return nil, xerrors.Errorf("end: %w", err)
			}
			v, err := stats.SumRange(begin, end, exclusive, stats.Initial(start))
			if err != nil {
				return nil, err
			}
			return &valueReport{Stat: "sum", Value: v}, nil
		}),
	}
	cmd.Flags().StringVar(&initial, "initial", "0", "value the sum starts from")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "leave out end")
	return cmd
}

// momentCommand returns the mean, variance or stdev command.
func momentCommand(name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [file ...]",
		Short: short,
		RunE: run(func(s *session, args []string) (report, error) {
			ins, err := s.inputs(args)
			if err != nil {
				return nil, err
			}
			seq, opts := slices.Values(all(ins)), s.settings.options()
			var v number.Value
			switch name {
			case "mean":
				v, err = stats.Mean(seq, opts...)
			case "variance":
				v, err = stats.Variance(seq, opts...)
			case "stdev":
				v, err = stats.Stdev(seq, opts...)
			}
			if err != nil {
				return nil, err
			}
			return &valueReport{Stat: name, Value: v}, nil
		}),
	}
	if name != "mean" {
		cmd.Flags().Bool("population", false, "population rather than sample variance")
	}
	return cmd
}

func percentileCommand() *cobra.Command {
	var percents []float64
	cmd := &cobra.Command{
		Use:   "percentile [file ...]",
		Short: "Print percentiles, interpolating between order statistics",
		RunE: run(func(s *session, args []string) (report, error) {
			ins, err := s.inputs(args)
			if err != nil {
				return nil, err
			}
			sample := stats.SampleOf(all(ins))
			vs, err := sample.Percentiles(percents...)
			if err != nil {
				return nil, err
			}
			r := &percentileReport{}
			for i, v := range vs {
				r.Percentiles = append(r.Percentiles, percentileRow{Percent: percents[i], Value: v})
			}
			return r, nil
		}),
	}
	cmd.Flags().Float64SliceVarP(&percents, "percent", "p", []float64{50}, "percentiles to print, between 0 and 100")
	return cmd
}

func medianCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "median [file ...]",
		Short: "Print the median",
		RunE: run(func(s *session, args []string) (report, error) {
			ins, err := s.inputs(args)
			if err != nil {
				return nil, err
			}
			v, err := stats.Median(slices.Values(all(ins)))
			if err != nil {
				return nil, err
			}
			return &valueReport{Stat: "median", Value: v}, nil
		}),
	}
}

// extremeCommand returns the argmax or argmin command.
func extremeCommand(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [file ...]",
		Short: short,
		RunE: run(func(s *session, args []string) (report, error) {
			ins, err := s.inputs(args)
			if err != nil {
				return nil, err
			}
			find := stats.ArgMax
			if name == "argmin" {
				find = stats.ArgMin
			}
			v, i, err := find(slices.Values(all(ins)))
			if err != nil {
				return nil, err
			}
			return &extremeReport{Stat: name, Value: v, Index: i}, nil
		}),
	}
}

func countsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counts [file ...]",
		Short: "Print how often each value occurs",
		RunE: run(func(s *session, args []string) (report, error) {
			ins, err := s.inputs(args)
			if err != nil {
				return nil, err
			}
			c, err := stats.ValueCounts(slices.Values(all(ins)), s.settings.options()...)
			if err != nil {
				return nil, err
			}
			s.log.Debug("counted values", zap.Int("distinct", c.Len()), zap.Int("na", c.NACount()))
			return newCountsReport(c), nil
		}),
	}
	fs := cmd.Flags()
	fs.Bool("normalize", false, "print relative frequencies too")
	fs.Bool("sort", true, "sort by count")
	fs.Bool("ascending", false, "sort from least to most frequent")
	fs.Bool("dropna", true, "leave out not-available values")
	return cmd
}

func histogramCommand() *cobra.Command {
	var shared bool
	cmd := &cobra.Command{
		Use:   "histogram [file ...]",
		Short: "Print a histogram",
		Long: `Print a histogram of the values in all files together.

With -shared, print one histogram per file, all with the same bins.`,
		RunE: run(func(s *session, args []string) (report, error) {
			ins, err := s.inputs(args)
			if err != nil {
				return nil, err
			}
			if !shared {
				ins = []input{{name: "all", values: all(ins)}}
			}
			seqs := make([]iter.Seq[number.Value], len(ins))
			for i, in := range ins {
				seqs[i] = slices.Values(in.values)
			}
			hs, err := stats.SharedHistograms(seqs, s.settings.options()...)
			if err != nil {
				return nil, err
			}
			r := &histogramReport{}
			for i, h := range hs {
				r.Histograms = append(r.Histograms, namedHistogram{Source: ins[i].name, Histogram: *h})
			}
			s.log.Debug("histogram", zap.Int("bins", len(hs[0].Weights)), zap.Float64s("edges", hs[0].Edges))
			return r, nil
		}),
	}
	fs := cmd.Flags()
	fs.Int("bins", 0, "target number of bins (default by Sturges' rule)")
	fs.String("closed", "left", "closed side of bins: left or right")
	fs.BoolVar(&shared, "shared", false, "one histogram per file, with shared bins")
	return cmd
}

func describeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [file ...]",
		Short: "Print summary statistics",
		RunE: run(func(s *session, args []string) (report, error) {
			ins, err := s.inputs(args)
			if err != nil {
				return nil, err
			}
			vs := all(ins)
			return describe(vs, s.settings.options())
		}),
	}
	cmd.Flags().Bool("population", false, "population rather than sample variance")
	return cmd
}

func describe(vs []number.Value, opts []stats.Option) (*describeReport, error) {
	r := &describeReport{Count: len(vs)}
	for _, v := range vs {
		if v.IsNA() {
			r.NA++
		}
	}
	var err error
	if r.Sum, err = stats.Sum(slices.Values(vs)); err != nil {
		return nil, err
	}
	if r.Mean, r.Variance, err = stats.MeanVariance(slices.Values(vs), opts...); err != nil {
		return nil, err
	}
	r.Stdev = number.Sqrt(r.Variance)

	sample := stats.SampleOf(vs)
	if r.Median, err = sample.Median(); err != nil {
		return nil, err
	}
	if sample.Len() == 0 {
		r.Min, r.Max = number.Missing(), number.Missing()
		return r, nil
	}
	if r.Min, err = sample.Min(); err != nil {
		return nil, err
	}
	if r.Max, err = sample.Max(); err != nil {
		return nil, err
	}
	return r, nil
}
