// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/numstat/numstat/number"
	"github.com/numstat/numstat/stats"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

type format int

const (
	textFormat format = iota
	jsonFormat
	yamlFormat
	tableFormat
)

func parseFormat(s string) (format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return textFormat, nil
	case "json":
		return jsonFormat, nil
	case "yaml":
		return yamlFormat, nil
	case "table":
		return tableFormat, nil
	}
	return 0, xerrors.Errorf("unknown output format %q (want text, json, yaml or table)", s)
}

// A report is the result of a command. JSON and YAML output encode the
// report itself; text and table output are up to the report.
type report interface {
	writeText(w io.Writer) error
	table() table.Writer
}

func render(w io.Writer, f format, r report) error {
	switch f {
	case jsonFormat:
		return json.NewEncoder(w).Encode(r)
	case yamlFormat:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case tableFormat:
		_, err := fmt.Fprintln(w, r.table().Render())
		return err
	}
	return r.writeText(w)
}

func newTable(header ...any) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

// count formats n with thousands separators.
func count(n int) string {
	return humanize.Comma(int64(n))
}

// valueReport is a single statistic.
type valueReport struct {
	Stat  string       `json:"stat" yaml:"stat"`
	Value number.Value `json:"value" yaml:"value"`
}

func (r *valueReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Value)
	return err
}

func (r *valueReport) table() table.Writer {
	t := newTable("stat", "value")
	t.AppendRow(table.Row{r.Stat, r.Value})
	return t
}

// extremeReport is the result of argmax and argmin. Index is -1 when
// there was no available value.
type extremeReport struct {
	Stat  string       `json:"stat" yaml:"stat"`
	Value number.Value `json:"value" yaml:"value"`
	Index int          `json:"index" yaml:"index"`
}

func (r *extremeReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%v\t%d\n", r.Value, r.Index)
	return err
}

func (r *extremeReport) table() table.Writer {
	t := newTable("stat", "value", "index")
	t.AppendRow(table.Row{r.Stat, r.Value, r.Index})
	return t
}

type percentileRow struct {
	Percent float64      `json:"percent" yaml:"percent"`
	Value   number.Value `json:"value" yaml:"value"`
}

type percentileReport struct {
	Percentiles []percentileRow `json:"percentiles" yaml:"percentiles"`
}

func (r *percentileReport) writeText(w io.Writer) error {
	for _, p := range r.Percentiles {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", formatFloat(p.Percent), p.Value); err != nil {
			return err
		}
	}
	return nil
}

func (r *percentileReport) table() table.Writer {
	t := newTable("percent", "value")
	for _, p := range r.Percentiles {
		t.AppendRow(table.Row{formatFloat(p.Percent), p.Value})
	}
	return t
}

type countRow struct {
	Value     string   `json:"value" yaml:"value"`
	NA        bool     `json:"na,omitempty" yaml:"na,omitempty"`
	Count     int      `json:"count" yaml:"count"`
	Frequency *float64 `json:"frequency,omitempty" yaml:"frequency,omitempty"`
}

type countsReport struct {
	Total  int        `json:"total" yaml:"total"`
	NA     int        `json:"na" yaml:"na"`
	Counts []countRow `json:"counts" yaml:"counts"`
}

func newCountsReport(c *stats.Counts) *countsReport {
	r := &countsReport{Total: c.Total(), NA: c.NACount()}
	for e := range c.All() {
		row := countRow{Value: e.Value.String(), NA: e.NA, Count: e.Count}
		if c.Normalized() {
			row.Frequency = &e.Frequency
		}
		r.Counts = append(r.Counts, row)
	}
	return r
}

func (r *countsReport) writeText(w io.Writer) error {
	for _, row := range r.Counts {
		var err error
		if row.Frequency != nil {
			_, err = fmt.Fprintf(w, "%s\t%d\t%s\n", row.Value, row.Count, formatFloat(*row.Frequency))
		} else {
			_, err = fmt.Fprintf(w, "%s\t%d\n", row.Value, row.Count)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *countsReport) table() table.Writer {
	t := newTable("value", "count", "frequency")
	for _, row := range r.Counts {
		freq := ""
		if row.Frequency != nil {
			freq = strconv.FormatFloat(*row.Frequency, 'f', 4, 64)
		}
		t.AppendRow(table.Row{row.Value, count(row.Count), freq})
	}
	t.AppendFooter(table.Row{"total", count(r.Total), ""})
	return t
}

type histogramReport struct {
	Histograms []namedHistogram `json:"histograms" yaml:"histograms"`
}

type namedHistogram struct {
	Source          string `json:"source" yaml:"source"`
	stats.Histogram `yaml:",inline"`
}

func (r *histogramReport) writeText(w io.Writer) error {
	for i, h := range r.Histograms {
		if len(r.Histograms) > 1 {
			sep := "\n"
			if i == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%s%s:\n", sep, h.Source); err != nil {
				return err
			}
		}
		for b, weight := range h.Weights {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", binLabel(&h.Histogram, b), weight); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *histogramReport) table() table.Writer {
	header := table.Row{"bin"}
	for _, h := range r.Histograms {
		header = append(header, h.Source)
	}
	t := newTable(header...)
	if len(r.Histograms) == 0 {
		return t
	}
	first := &r.Histograms[0].Histogram
	for b := range first.Weights {
		row := table.Row{binLabel(first, b)}
		for _, h := range r.Histograms {
			row = append(row, count(h.Weights[b]))
		}
		t.AppendRow(row)
	}
	return t
}

// binLabel returns bin b of h in interval notation.
func binLabel(h *stats.Histogram, b int) string {
	lo, hi := formatFloat(h.Edges[b]), formatFloat(h.Edges[b+1])
	if h.Closed == stats.Right {
		return "(" + lo + ", " + hi + "]"
	}
	return "[" + lo + ", " + hi + ")"
}

type describeReport struct {
	Count    int          `json:"count" yaml:"count"`
	NA       int          `json:"na" yaml:"na"`
	Sum      number.Value `json:"sum" yaml:"sum"`
	Mean     number.Value `json:"mean" yaml:"mean"`
	Variance number.Value `json:"variance" yaml:"variance"`
	Stdev    number.Value `json:"stdev" yaml:"stdev"`
	Min      number.Value `json:"min" yaml:"min"`
	Median   number.Value `json:"median" yaml:"median"`
	Max      number.Value `json:"max" yaml:"max"`
}

func (r *describeReport) rows(countf func(int) string) [][2]any {
	return [][2]any{
		{"count", countf(r.Count)},
		{"na", countf(r.NA)},
		{"sum", r.Sum},
		{"mean", r.Mean},
		{"variance", r.Variance},
		{"stdev", r.Stdev},
		{"min", r.Min},
		{"median", r.Median},
		{"max", r.Max},
	}
}

func (r *describeReport) writeText(w io.Writer) error {
	for _, row := range r.rows(strconv.Itoa) {
		if _, err := fmt.Fprintf(w, "%s\t%v\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}

func (r *describeReport) table() table.Writer {
	t := newTable("stat", "value")
	for _, row := range r.rows(count) {
		t.AppendRow(table.Row{row[0], row[1]})
	}
	return t
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
