// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides basic descriptive statistics over sequences of
// [number.Value]: sums, means, variances, standard deviations,
// percentiles, medians, value counts and histograms.
//
// This is intended not as a comprehensive statistics package, but
// to provide common, everyday statistical functions.
//
// Sums of exact integers and rationals are exact. As soon as a
// floating-point value is seen, the exact part is converted once and
// the remainder is summed with Kahan's compensated algorithm. Means and
// variances are computed in a single pass with Welford's algorithm.
// Every function reads its input sequence exactly once and keeps no
// state between calls, so concurrent calls need no locking.
//
// Not-available values (missing values, NaNs, and generic values whose
// IsNaN reports true) are first class: order statistics sort them first
// and report NaN, value counts tally them separately, and histograms
// leave them out.
package stats

// References:
//
// Hyndman, Rob J.; Fan, Yanan (November 1996).
// "Sample Quantiles in Statistical Packages".
// American Statistician. 50 (4).
// American Statistical Association: 361–365.
// doi:10.2307/2684934. JSTOR 2684934.
//
// Welford, B. P. (1962).
// "Note on a method for calculating corrected sums of squares and products".
// Technometrics. 4 (3): 419–420.
//
// Sturges, H. A. (1926).
// "The choice of a class interval".
// Journal of the American Statistical Association. 21 (153): 65–66.

import (
	"iter"

	"github.com/numstat/numstat/number"
	"golang.org/x/xerrors"
)

var (
	// ErrInvalidArgument is reported for a percentile outside [0, 100],
	// a bin count below the minimum for the input, an unknown Side, or
	// values that an operation cannot order.
	ErrInvalidArgument = xerrors.New("stats: invalid argument")

	// ErrEmptyInput is reported by percentiles of an empty sequence.
	ErrEmptyInput = xerrors.New("stats: empty input")
)

// each calls fn on every element of seq after applying the configured
// transform. It stops at the first error.
func (c *config) each(seq iter.Seq[number.Value], fn func(number.Value) error) error {
	for v := range seq {
		if c.transform != nil {
			var err error
			if v, err = c.transform(v); err != nil {
				return xerrors.Errorf("stats: transform: %w", err)
			}
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// collect materializes seq after applying the configured transform.
func (c *config) collect(seq iter.Seq[number.Value]) ([]number.Value, error) {
	var vs []number.Value
	err := c.each(seq, func(v number.Value) error {
		vs = append(vs, v)
		return nil
	})
	return vs, err
}
