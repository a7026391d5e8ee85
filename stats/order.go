// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"iter"
	"math"
	"slices"
	"sync"

	"github.com/numstat/numstat/number"
	"golang.org/x/xerrors"
)

// A Sample is a materialized sequence of values for order statistics.
// It is sorted at most once, on the first query that needs it, and
// the sorted copy is shared by later queries. A Sample is safe for
// concurrent use.
type Sample struct {
	values []number.Value
	sorted func() ([]number.Value, error)
}

// NewSample reads seq, applying the Transform option, and returns a
// Sample of the result.
func NewSample(seq iter.Seq[number.Value], opts ...Option) (*Sample, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	vs, err := c.collect(seq)
	if err != nil {
		return nil, err
	}
	return SampleOf(vs), nil
}

// SampleOf returns a Sample of vs. The Sample does not modify vs.
func SampleOf(vs []number.Value) *Sample {
	s := &Sample{values: vs}
	s.sorted = sync.OnceValues(s.sort)
	return s
}

// Len returns the number of values in s.
func (s *Sample) Len() int { return len(s.values) }

func (s *Sample) sort() ([]number.Value, error) {
	sorted := slices.Clone(s.values)
	var err error
	slices.SortStableFunc(sorted, func(a, b number.Value) int {
		c, cerr := compareNA(a, b)
		if cerr != nil && err == nil {
			err = cerr
		}
		return c
	})
	if err != nil {
		return nil, xerrors.Errorf("stats: sort: %w", err)
	}
	return sorted, nil
}

// compareNA orders not-available values before all others and the
// rest by value.
func compareNA(a, b number.Value) (int, error) {
	switch na, nb := a.IsNA(), b.IsNA(); {
	case na && nb:
		return 0, nil
	case na:
		return -1, nil
	case nb:
		return 1, nil
	}
	c, err := a.Compare(b)
	if err != nil {
		return 0, xerrors.Errorf("%v: %w", err, ErrInvalidArgument)
	}
	return c, nil
}

// Percentile returns the q-th percentile of s, for q in [0, 100].
//
// The value is interpolated linearly between the two closest order
// statistics, Hyndman and Fan's R7 rule, and is a float unless it falls
// exactly on an order statistic. If s holds a not-available value the
// result is NaN.
func (s *Sample) Percentile(q float64) (number.Value, error) {
	if err := checkPercentile(q); err != nil {
		return number.Value{}, err
	}
	switch len(s.values) {
	case 0:
		return number.Value{}, xerrors.Errorf("stats: percentile: %w", ErrEmptyInput)
	case 1:
		return s.values[0], nil
	}
	sorted, err := s.sorted()
	if err != nil {
		return number.Value{}, err
	}
	return percentile(sorted, q), nil
}

// Percentiles returns the percentiles of s for each of qs, sorting s
// at most once.
func (s *Sample) Percentiles(qs ...float64) ([]number.Value, error) {
	out := make([]number.Value, len(qs))
	for i, q := range qs {
		v, err := s.Percentile(q)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func checkPercentile(q float64) error {
	if !(0 <= q && q <= 100) {
		return xerrors.Errorf("stats: percentile %v out of bounds [0, 100]: %w", q, ErrInvalidArgument)
	}
	return nil
}

// percentile interpolates in sorted, which holds at least two values.
func percentile(sorted []number.Value, q float64) number.Value {
	if sorted[0].IsNA() {
		return number.Float(math.NaN())
	}
	n := len(sorted)
	i, f := math.Modf(float64(n-1) * q / 100)
	lo := int(i)
	x0 := sorted[lo]
	if f == 0 || lo == n-1 {
		return x0
	}
	return x0.MulFloat(1 - f).Add(sorted[lo+1].MulFloat(f))
}

// Median returns the median of s: the middle order statistic, or the
// mean of the two middle ones. The median of an empty Sample, or of one
// holding a not-available value, is NaN.
func (s *Sample) Median() (number.Value, error) {
	switch n := len(s.values); n {
	case 0:
		return number.Float(math.NaN()), nil
	case 1:
		return s.values[0], nil
	case 2:
		return meanTwo(s.values[0], s.values[1]), nil
	}
	sorted, err := s.sorted()
	if err != nil {
		return number.Value{}, err
	}
	if sorted[0].IsNA() {
		return number.Float(math.NaN()), nil
	}
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return meanTwo(sorted[n/2-1], sorted[n/2]), nil
}

func meanTwo(a, b number.Value) number.Value {
	sum := a.Add(b)
	switch sum.Kind() {
	case number.IntKind, number.RatKind, number.FloatKind:
		return number.Float(sum.Float64() / 2)
	}
	return sum.QuoFloat(2)
}

// Min returns the smallest value in s.
func (s *Sample) Min() (number.Value, error) { return s.Percentile(0) }

// Max returns the largest value in s.
func (s *Sample) Max() (number.Value, error) { return s.Percentile(100) }

// Percentile returns the q-th percentile of the values in seq.
// See [Sample.Percentile].
func Percentile(seq iter.Seq[number.Value], q float64, opts ...Option) (number.Value, error) {
	s, err := NewSample(seq, opts...)
	if err != nil {
		return number.Value{}, err
	}
	return s.Percentile(q)
}

// Percentiles returns the percentiles of the values in seq for each of
// qs. The values are read and sorted once.
func Percentiles(seq iter.Seq[number.Value], qs []float64, opts ...Option) ([]number.Value, error) {
	s, err := NewSample(seq, opts...)
	if err != nil {
		return nil, err
	}
	if len(s.values) == 0 {
		return nil, xerrors.Errorf("stats: percentile: %w", ErrEmptyInput)
	}
	return s.Percentiles(qs...)
}

// Median returns the median of the values in seq. See [Sample.Median].
func Median(seq iter.Seq[number.Value], opts ...Option) (number.Value, error) {
	s, err := NewSample(seq, opts...)
	if err != nil {
		return number.Value{}, err
	}
	return s.Median()
}

// ArgMax returns the largest value in seq and its position. Ties go to
// the first occurrence. Not-available values are skipped but still
// counted in positions. If seq holds no available value, ArgMax returns
// a missing value and position -1.
func ArgMax(seq iter.Seq[number.Value], opts ...Option) (number.Value, int, error) {
	return argExtreme(seq, 1, opts)
}

// ArgMin is like ArgMax but returns the smallest value.
func ArgMin(seq iter.Seq[number.Value], opts ...Option) (number.Value, int, error) {
	return argExtreme(seq, -1, opts)
}

func argExtreme(seq iter.Seq[number.Value], want int, opts []Option) (number.Value, int, error) {
	c, err := newConfig(opts)
	if err != nil {
		return number.Value{}, -1, err
	}
	var (
		best number.Value
		at   = -1
		i    = -1
	)
	err = c.each(seq, func(v number.Value) error {
		i++
		if v.IsNA() {
			return nil
		}
		if at < 0 {
			if _, err := v.Compare(v); err != nil {
				return xerrors.Errorf("stats: element %d: %v: %w", i, err, ErrInvalidArgument)
			}
			best, at = v, i
			return nil
		}
		cmp, err := v.Compare(best)
		if err != nil {
			return xerrors.Errorf("stats: element %d: %v: %w", i, err, ErrInvalidArgument)
		}
		if cmp == want {
			best, at = v, i
		}
		return nil
	})
	if err != nil {
		return number.Value{}, -1, err
	}
	return best, at, nil
}
