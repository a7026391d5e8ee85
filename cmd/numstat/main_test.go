// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/numstat/numstat/number"
	"github.com/numstat/numstat/stats"
)

// numstat runs the command line args with stdin as standard input and
// returns what it printed.
func numstat(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"sum", "1 2 3\n4\n", []string{"sum"}, "10\n"},
		{"sum rationals", "1/3 1/6", []string{"sum"}, "1/2\n"},
		{"sum mixed", "1 0.5", []string{"sum"}, "1.5\n"},
		{"sum nothing", "", []string{"sum", "--initial", "5"}, "5\n"},
		{"sum big", "9223372036854775807 9223372036854775807", []string{"sum"}, "18446744073709551614\n"},
		{"sum range", "", []string{"sum-range", "1", "100"}, "5050\n"},
		{"sum range exclusive", "", []string{"sum-range", "--exclusive", "1", "10"}, "45\n"},
		{"mean", "1 2 3 4", []string{"mean"}, "2.5\n"},
		{"variance", "1 2 3 4", []string{"variance"}, "1.6666666666666667\n"},
		{"population variance", "1 2 3 4", []string{"variance", "--population"}, "1.25\n"},
		{"stdev", "1 2 3 4", []string{"stdev"}, "1.2909944487358056\n"},
		{"percentile", "1 2 3", []string{"percentile", "-p", "25,50,75"}, "25\t1.5\n50\t2\n75\t2.5\n"},
		{"percentile with na", "1 NA 3", []string{"percentile"}, "50\tNaN\n"},
		{"median", "3 1 2 4", []string{"median"}, "2.5\n"},
		{"argmax", "3 6 2 4 9 1 2 9", []string{"argmax"}, "9\t4\n"},
		{"argmin", "3 6 2 4 9 1 2 9", []string{"argmin"}, "1\t5\n"},
		{"argmin of na", "NA NaN", []string{"argmin"}, "NA\t-1\n"},
		{"counts", "1 2 2 3 3 3 NA", []string{"counts"}, "3\t3\n2\t2\n1\t1\n"},
		{"counts keep na", "1 2 2 3 3 3 NA", []string{"counts", "--dropna=false"}, "3\t3\n2\t2\n1\t1\nNA\t1\n"},
		{"counts ascending", "1 2 2 3 3 3", []string{"counts", "--ascending"}, "1\t1\n2\t2\n3\t3\n"},
		{"counts unsorted", "2 3 3 1", []string{"counts", "--sort=false"}, "2\t1\n3\t2\n1\t1\n"},
		{"counts normalized", "1 1 2 NA", []string{"counts", "--normalize"}, "1\t2\t0.6666666666666666\n2\t1\t0.3333333333333333\n"},
		{"histogram", "1 2 2 3 3 3", []string{"histogram", "--bins", "3"}, "[1, 2)\t1\n[2, 3)\t2\n[3, 4)\t3\n"},
		{"histogram right", "1 2 3 4 5 6 7 8 9", []string{"histogram", "--closed", "right"},
			"(0, 2]\t2\n(2, 4]\t2\n(4, 6]\t2\n(6, 8]\t2\n(8, 10]\t1\n"},
		{"describe", "1 2 3 4", []string{"describe"},
			"count\t4\nna\t0\nsum\t10\nmean\t2.5\nvariance\t1.6666666666666667\nstdev\t1.2909944487358056\nmin\t1\nmedian\t2.5\nmax\t4\n"},
		{"describe nothing", "", []string{"describe"},
			"count\t0\nna\t0\nsum\t0\nmean\t0\nvariance\tNaN\nstdev\tNaN\nmin\tNA\nmedian\tNaN\nmax\tNA\n"},
		{"json", "1 2 3 4", []string{"mean", "-o", "json"}, `{"stat":"mean","value":"2.5"}` + "\n"},
		{"json counts", "1 1 2", []string{"counts", "-o", "json"},
			`{"total":3,"na":0,"counts":[{"value":"1","count":2},{"value":"2","count":1}]}` + "\n"},
		{"yaml", "5", []string{"argmax", "-o", "yaml"}, "stat: argmax\nvalue: \"5\"\nindex: 0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := numstat(t, tc.stdin, tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("numstat %s mismatch (-want +got):\n%s", strings.Join(tc.args, " "), diff)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"bad number", "1 x 3", []string{"sum"}, number.ErrSyntax},
		{"zero denominator", "1/0", []string{"sum"}, number.ErrZeroDenominator},
		{"percent out of range", "1 2", []string{"percentile", "-p", "150"}, stats.ErrInvalidArgument},
		{"percentile of nothing", "", []string{"percentile"}, stats.ErrEmptyInput},
		{"bad side", "1 2", []string{"histogram", "--closed", "middle"}, stats.ErrInvalidArgument},
		{"infinite histogram", "1 Inf", []string{"histogram"}, stats.ErrInvalidArgument},
		{"complex variance", "1 2i", []string{"variance"}, stats.ErrInvalidArgument},
		{"missing file", "", []string{"sum", filepath.Join(t.TempDir(), "nope")}, fs.ErrNotExist},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := numstat(t, tc.stdin, tc.args...)
			if !errors.Is(err, tc.want) {
				t.Errorf("numstat %s error = %v, want %v", strings.Join(tc.args, " "), err, tc.want)
			}
		})
	}

	_, _, err := numstat(t, "1\n2\n3 4 oops", "sum")
	if err == nil || !strings.Contains(err.Error(), "<stdin>:3") {
		t.Errorf("error %v does not name the line", err)
	}
	if _, _, err := numstat(t, "1", "sum", "-o", "xml"); err == nil {
		t.Error("unknown output format accepted")
	}
	if _, _, err := numstat(t, "", "sum-range", "1"); err == nil {
		t.Error("sum-range with one argument accepted")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	writeFile(t, a, "1 2\n3\n")
	writeFile(t, b, "2.5 8 9\n")

	got, _, err := numstat(t, "", "sum", a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got != "25.5\n" {
		t.Errorf("sum of files = %q, want 25.5", got)
	}

	got, _, err = numstat(t, "100", "sum", a, "-")
	if err != nil {
		t.Fatal(err)
	}
	if got != "106\n" {
		t.Errorf("sum of file and stdin = %q, want 106", got)
	}

	got, _, err = numstat(t, "", "histogram", "--shared", a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := a + ":\n[0, 2)\t1\n[2, 4)\t2\n[4, 6)\t0\n[6, 8)\t0\n[8, 10)\t0\n\n" +
		b + ":\n[0, 2)\t0\n[2, 4)\t1\n[4, 6)\t0\n[6, 8)\t0\n[8, 10)\t2\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shared histogram mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "numstat.yaml")
	writeFile(t, config, "population: true\nbins: 3\noutput: json\n")

	got, _, err := numstat(t, "1 2 3 4", "variance", "--config", config)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"stat":"variance","value":"1.25"}` + "\n"; got != want {
		t.Errorf("variance with config = %q, want %q", got, want)
	}

	got, _, err = numstat(t, "1 2 3 4", "variance", "--config", config, "--population=false", "-o", "text")
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.6666666666666667\n" {
		t.Errorf("flags do not override config: got %q", got)
	}

	if _, _, err := numstat(t, "1", "sum", "--config", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing config file named by -config accepted")
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("NUMSTAT_POPULATION", "true")
	t.Setenv("NUMSTAT_BINS", "3")

	got, _, err := numstat(t, "1 2 3 4", "variance")
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.25\n" {
		t.Errorf("variance with NUMSTAT_POPULATION = %q, want 1.25", got)
	}

	got, _, err = numstat(t, "1 2 3 4 5 6 7 8 9", "histogram")
	if err != nil {
		t.Fatal(err)
	}
	if want := "[0, 5)\t4\n[5, 10)\t5\n"; got != want {
		t.Errorf("histogram with NUMSTAT_BINS = %q, want %q", got, want)
	}
}

func TestTableOutput(t *testing.T) {
	got, _, err := numstat(t, strings.Repeat("7\n", 1234), "describe", "-o", "table")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"1,234", "median", "8638"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output does not contain %q:\n%s", want, got)
		}
	}

	got, _, err = numstat(t, "1 1 2 NA", "counts", "-o", "table", "--normalize", "--dropna=false")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"0.5000", "0.2500", "NA"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output does not contain %q:\n%s", want, got)
		}
	}
}

func TestYAMLHistogram(t *testing.T) {
	got, _, err := numstat(t, "1 2", "histogram", "-o", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"source: all", "closed: left", "density: false", "- 2.5"} {
		if !strings.Contains(got, want) {
			t.Errorf("yaml output does not contain %q:\n%s", want, got)
		}
	}
}

func TestVerbose(t *testing.T) {
	_, stderr, err := numstat(t, "1 2 NA", "sum", "-v")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"settings", "read values", "<stdin>"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("log does not contain %q:\n%s", want, stderr)
		}
	}
	if _, stderr, _ := numstat(t, "1", "sum"); stderr != "" {
		t.Errorf("quiet run logged:\n%s", stderr)
	}
}

func writeFile(t *testing.T, name, data string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(data), 0o666); err != nil {
		t.Fatal(err)
	}
}
