// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/numstat/numstat/number"
)

func TestPercentiles(t *testing.T) {
	tests := []struct {
		name string
		data []number.Value
		qs   []float64
		want []float64
	}{
		{"integers", values(1, 2, 3), []float64{0, 25, 50, 75, 100}, []float64{1, 1.5, 2, 2.5, 3}},
		{"unsorted", values(3, 1, 2), []float64{25, 50, 75}, []float64{1.5, 2, 2.5}},
		{"floats", values(1.0, 2.0, 4.0, 8.0), []float64{50}, []float64{3}},
		{"nan", values(1, math.NaN(), 3), []float64{0, 50, 100}, []float64{math.NaN(), math.NaN(), math.NaN()}},
		{"missing", values(1, nil, 3), []float64{0, 50, 100}, []float64{math.NaN(), math.NaN(), math.NaN()}},
		{"rationals", []number.Value{mustRat(t, 1, 2), mustRat(t, 3, 2)}, []float64{50}, []float64{1}},
		{"mixed kinds", values(2, 0.5, number.Generic(money(150))), []float64{0, 50, 100}, []float64{0.5, 1.5, 2}},
	}
	opts := cmp.Options{cmpopts.EquateApprox(1e-15, 0), cmpopts.EquateNaNs()}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Percentiles(slices.Values(tc.data), tc.qs)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, floats(got), opts); diff != "" {
				t.Errorf("Percentiles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPercentileOrderStatisticKeepsKind(t *testing.T) {
	got, err := Percentile(number.Seq([]int{5, 1, 9}), 50)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(number.Int64(5)) {
		t.Errorf("Percentile(50) = %v (%s), want integer 5", got, got.Kind())
	}
	got, err = Percentile(number.Seq([]int{5, 1, 9}), 25)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(number.Float(3)) {
		t.Errorf("Percentile(25) = %v (%s), want float 3", got, got.Kind())
	}
}

func TestPercentileErrors(t *testing.T) {
	tests := []struct {
		name string
		data []number.Value
		q    float64
		want error
	}{
		{"empty", nil, 50, ErrEmptyInput},
		{"negative", values(1, 2), -1, ErrInvalidArgument},
		{"above 100", values(1, 2), 100.5, ErrInvalidArgument},
		{"nan", values(1, 2), math.NaN(), ErrInvalidArgument},
		{"single value out of range", values(1), 101, ErrInvalidArgument},
		{"complex", values(1, 2i), 50, ErrInvalidArgument},
		{"opaque generic", values(1, number.Generic(opaque{})), 50, ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Percentile(slices.Values(tc.data), tc.q)
			if !errors.Is(err, tc.want) {
				t.Errorf("Percentile error = %v, want %v", err, tc.want)
			}
		})
	}
	if _, err := Percentiles(number.Seq([]int{}), []float64{50}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Percentiles(empty) error = %v, want ErrEmptyInput", err)
	}
}

func TestPercentileSingleValue(t *testing.T) {
	for _, v := range values(42, 2.5, 1+1i, nil) {
		got, err := Percentile(slices.Values([]number.Value{v}), 30)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(v) {
			t.Errorf("Percentile([%v]) = %v, want the value itself", v, got)
		}
	}
}

func TestMedianValues(t *testing.T) {
	tests := []struct {
		name string
		data []number.Value
		want number.Value
	}{
		{"empty", nil, number.Float(math.NaN())},
		{"one", values(1), number.Int64(1)},
		{"one missing", values(nil), number.Missing()},
		{"two", values(0, 1), number.Float(0.5)},
		{"two rationals", []number.Value{mustRat(t, 1, 3), mustRat(t, 2, 3)}, number.Float(0.5)},
		{"two complex", values(1+1i, 3+3i), number.Complex128(2 + 2i)},
		{"two generic", values(number.Generic(money(100)), number.Generic(money(300))), number.Generic(money(200))},
		{"odd", values(3, 1, 2), number.Int64(2)},
		{"even", values(4, 1, 3, 2), number.Float(2.5)},
		{"missing", values(4, 1, nil, 2), number.Float(math.NaN())},
		{"nan generic", values(4, 1, number.Generic(money(-1))), number.Float(math.NaN())},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Median(slices.Values(tc.data))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Median mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if _, err := Median(slices.Values(values(1, 2i, 3))); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Median(complex) error = %v, want ErrInvalidArgument", err)
	}
}

func TestMedianIsPercentile50(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		data := make([]float64, 1+r.Intn(40))
		for i := range data {
			data[i] = math.Round(r.NormFloat64()*1000) / 8
		}
		s := SampleOf(number.Of(data...))
		median, err := s.Median()
		if err != nil {
			t.Fatal(err)
		}
		p50, err := s.Percentile(50)
		if err != nil {
			t.Fatal(err)
		}
		if median.Float64() != p50.Float64() {
			t.Errorf("%v: Median = %v, Percentile(50) = %v", data, median, p50)
		}
		lo, err := s.Min()
		if err != nil {
			t.Fatal(err)
		}
		hi, err := s.Max()
		if err != nil {
			t.Fatal(err)
		}
		if want := slices.Min(data); lo.Float64() != want {
			t.Errorf("%v: Min = %v, want %v", data, lo, want)
		}
		if want := slices.Max(data); hi.Float64() != want {
			t.Errorf("%v: Max = %v, want %v", data, hi, want)
		}
	}
}

func TestSampleSortsOnce(t *testing.T) {
	s := SampleOf(values(5, 3, 8, 1))
	a, err := s.sorted()
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.sorted()
	if err != nil {
		t.Fatal(err)
	}
	if &a[0] != &b[0] {
		t.Error("sorted copy rebuilt on second query")
	}
	if diff := cmp.Diff(values(1, 3, 5, 8), a); diff != "" {
		t.Errorf("sorted mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareNAIsStable(t *testing.T) {
	s := SampleOf(values(2, nil, 1, math.NaN(), 2.0))
	got, err := s.sorted()
	if err != nil {
		t.Fatal(err)
	}
	want := values(nil, math.NaN(), 1, 2, 2.0)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted mismatch (-want +got):\n%s", diff)
	}
}

func TestArgMaxArgMin(t *testing.T) {
	tests := []struct {
		data      []int
		max, imax int
		min, imin int
	}{
		{[]int{3, 6, 2, 4, 9, 1, 2, 9}, 9, 4, 1, 5},
		{[]int{3, 6, 2, 4, 3, 1, 2, 8}, 8, 7, 1, 5},
		{[]int{7, 6, 2, 4, 3, 1, 2, 6}, 7, 0, 1, 5},
		{[]int{3, 6, 1, 4, 9, 1, 2, 9}, 9, 4, 1, 2},
		{[]int{3, 6, 3, 4, 4, 8, 3, 2}, 8, 5, 2, 7},
		{[]int{3, 6, 5, 4, 3, 6, 8, 6}, 8, 6, 3, 0},
	}
	for _, tc := range tests {
		v, i, err := ArgMax(number.Seq(tc.data))
		if err != nil {
			t.Fatal(err)
		}
		if !v.Equal(number.Int64(int64(tc.max))) || i != tc.imax {
			t.Errorf("ArgMax(%v) = %v, %d; want %d, %d", tc.data, v, i, tc.max, tc.imax)
		}
		v, i, err = ArgMin(number.Seq(tc.data))
		if err != nil {
			t.Fatal(err)
		}
		if !v.Equal(number.Int64(int64(tc.min))) || i != tc.imin {
			t.Errorf("ArgMin(%v) = %v, %d; want %d, %d", tc.data, v, i, tc.min, tc.imin)
		}
	}

	v, i, err := ArgMax(slices.Values(values(nil, 1.5, math.NaN(), 2, 0.5)))
	if err != nil || !v.Equal(number.Int64(2)) || i != 3 {
		t.Errorf("ArgMax with NAs = %v, %d, %v; want 2, 3, nil", v, i, err)
	}
	v, i, err = ArgMin(slices.Values(values(nil, nil)))
	if err != nil || v.Kind() != number.MissingKind || i != -1 {
		t.Errorf("ArgMin(all NA) = %v, %d, %v; want NA, -1, nil", v, i, err)
	}
	if _, _, err := ArgMax(slices.Values(values(1, 2i))); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ArgMax(complex) error = %v, want ErrInvalidArgument", err)
	}
}

// opaque supports nothing beyond addition.
type opaque struct{}

func (opaque) Add(number.Value) number.Value { return number.Generic(opaque{}) }
