// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"iter"
	"math"
	"slices"

	"github.com/numstat/numstat/number"
	"golang.org/x/xerrors"
)

// A Histogram counts values into bins between consecutive Edges.
//
// Edges is strictly increasing and has one more element than Weights,
// except for the histogram of no values, which has the single edge 0
// and no bins. Bin i holds the values between Edges[i] and Edges[i+1];
// Closed says which of the two belongs to it.
type Histogram struct {
	Edges   []float64 `json:"edges" yaml:"edges"`
	Weights []int     `json:"weights" yaml:"weights"`
	Closed  Side      `json:"closed" yaml:"closed"`
	// Density reports whether Weights are densities rather than counts.
	// Histograms built by this package always hold counts.
	Density bool `json:"density" yaml:"density"`
}

// Total returns the number of values counted by h.
func (h *Histogram) Total() int {
	n := 0
	for _, w := range h.Weights {
		n += w
	}
	return n
}

// Bin returns the index of the bin holding x, or -1 if x is outside
// every bin.
func (h *Histogram) Bin(x float64) int {
	if len(h.Edges) < 2 || math.IsNaN(x) {
		return -1
	}
	i := binIndex(h.Edges, x, h.Closed)
	if i < 0 || i >= len(h.Weights) {
		return -1
	}
	return i
}

// NewHistogram builds a histogram of the values in seq.
//
// The number of bins defaults to Sturges' rule and can be set with
// Bins; it is a target, since edges are rounded to 1, 2 or 5 times a
// power of ten. Bins are closed on the Left unless Closed(Right) is
// given. Not-available values are left out. Infinite, complex and
// unordered values are an error, as is a bin count below 1 (below 0
// when there are no values).
func NewHistogram(seq iter.Seq[number.Value], opts ...Option) (*Histogram, error) {
	hs, err := SharedHistograms([]iter.Seq[number.Value]{seq}, opts...)
	if err != nil {
		return nil, err
	}
	return hs[0], nil
}

// SharedHistograms builds one histogram for each of seqs, all with the
// same edges. The edges are chosen as NewHistogram would choose them for
// all the values together, so the histograms can be compared bin by bin.
func SharedHistograms(seqs []iter.Seq[number.Value], opts ...Option) ([]*Histogram, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	data := make([][]float64, len(seqs))
	n := 0
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, seq := range seqs {
		j := 0
		err := c.each(seq, func(v number.Value) error {
			j++
			x, ok, err := histogramValue(v)
			if err != nil {
				return xerrors.Errorf("stats: histogram element %d: %w", j-1, err)
			}
			if ok {
				data[i] = append(data[i], x)
				lo, hi = min(lo, x), max(hi, x)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		n += len(data[i])
	}

	nbins := sturges(n)
	if c.binsSet {
		nbins = c.bins
	}
	edges, err := histogramEdges(n, lo, hi, nbins, c.closed)
	if err != nil {
		return nil, err
	}

	hs := make([]*Histogram, len(seqs))
	for i, xs := range data {
		h := &Histogram{
			Edges:   slices.Clone(edges),
			Weights: make([]int, len(edges)-1),
			Closed:  c.closed,
		}
		for _, x := range xs {
			h.Weights[binIndex(edges, x, c.closed)]++
		}
		hs[i] = h
	}
	return hs, nil
}

// histogramValue converts v for binning. It reports false for
// not-available values.
func histogramValue(v number.Value) (float64, bool, error) {
	if v.IsNA() {
		return 0, false, nil
	}
	switch v.Kind() {
	case number.ComplexKind:
		return 0, false, xerrors.Errorf("complex value %v: %w", v, ErrInvalidArgument)
	case number.GenericKind:
		if _, ok := v.Addable().(number.Floater); !ok {
			return 0, false, xerrors.Errorf("unordered value %v: %w", v, ErrInvalidArgument)
		}
	}
	x := v.Float64()
	if math.IsNaN(x) {
		return 0, false, nil
	}
	if math.IsInf(x, 0) {
		return 0, false, xerrors.Errorf("infinite value %v: %w", v, ErrInvalidArgument)
	}
	return x, true, nil
}

// sturges returns the number of bins Sturges' rule gives for n values.
func sturges(n int) int {
	if n == 0 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// histogramEdges returns the edges for n values ranging over [lo, hi].
func histogramEdges(n int, lo, hi float64, nbins int, closed Side) ([]float64, error) {
	switch {
	case n == 0 && nbins < 0:
		return nil, xerrors.Errorf("stats: nbins must be >= 0 for no values, got %d: %w", nbins, ErrInvalidArgument)
	case n > 0 && nbins < 1:
		return nil, xerrors.Errorf("stats: nbins must be >= 1 for %d values, got %d: %w", n, nbins, ErrInvalidArgument)
	case n == 0:
		return []float64{0}, nil
	}

	// Edges are start/divisor, (start+step)/divisor, ... For steps below
	// one, the divisor keeps start and step integral.
	var (
		start, step, divisor float64
		count                int
	)
	if hi == lo {
		// One unit bin, or one ulp where a unit is below the precision of hi.
		step = max(1, math.Nextafter(hi, math.Inf(1))-hi)
		start, divisor, count = hi, 1, 1
	} else {
		bw := (hi - lo) / float64(nbins)
		lbw := math.Log10(bw)
		if lbw >= 0 {
			step = math.Pow(10, math.Floor(lbw)) * niceFactor(bw/math.Pow(10, math.Floor(lbw)))
			divisor = 1
			start = step * math.Floor(lo/step)
			count = int(math.Ceil((hi - start) / step))
		} else {
			divisor = math.Pow(10, -math.Floor(lbw))
			divisor /= niceFactor(bw * divisor)
			step = 1
			start = math.Floor(lo * divisor)
			count = int(math.Ceil(hi*divisor - start))
		}
	}

	finite := func(xs ...float64) bool {
		for _, x := range xs {
			if math.IsInf(x, 0) || math.IsNaN(x) {
				return false
			}
		}
		return true
	}
	if !finite(hi-lo, start, step, divisor) {
		return nil, xerrors.Errorf("stats: no finite histogram edges for [%v, %v]: %w", lo, hi, ErrInvalidArgument)
	}

	last := func() float64 { return (start + float64(count-1)*step) / divisor }
	covers := func(x, edge float64) bool { return x < edge }
	if closed == Right {
		covers = func(x, edge float64) bool { return x <= edge }
	}
	for covers(lo, start/divisor) {
		prev := start
		if start -= step; !(start < prev) {
			return nil, xerrors.Errorf("stats: no histogram edges for [%v, %v]: %w", lo, hi, ErrInvalidArgument)
		}
	}
	for !covers(hi, last()) {
		prev := last()
		if count++; !(last() > prev) {
			return nil, xerrors.Errorf("stats: no histogram edges for [%v, %v]: %w", lo, hi, ErrInvalidArgument)
		}
	}

	if !finite(start/divisor, last()) {
		return nil, xerrors.Errorf("stats: no finite histogram edges for [%v, %v]: %w", lo, hi, ErrInvalidArgument)
	}

	edges := make([]float64, count)
	for i := range edges {
		edges[i] = start / divisor
		start += step
	}
	return edges, nil
}

// niceFactor rounds r, a bin width in units of its power of ten, up to
// 1, 2, 5 or 10.
func niceFactor(r float64) float64 {
	switch {
	case r <= 1.1:
		return 1
	case r <= 2.2:
		return 2
	case r <= 5.5:
		return 5
	}
	return 10
}

// binIndex returns the bin of x: for left-closed bins the last edge at
// or below x, for right-closed bins the last edge below x.
func binIndex(edges []float64, x float64, closed Side) int {
	i, found := slices.BinarySearch(edges, x)
	if closed == Left && found {
		return i
	}
	return i - 1
}
