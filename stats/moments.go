// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"iter"
	"math"

	"github.com/numstat/numstat/number"
	"golang.org/x/xerrors"
)

// Mean returns the arithmetic mean of the values in seq.
//
// The mean of an empty seq is Float(0). The mean of a single value is
// that value converted to float64, except that a complex value is
// returned as is. The mean of complex values is taken part by part.
func Mean(seq iter.Seq[number.Value], opts ...Option) (number.Value, error) {
	c, err := newConfig(opts)
	if err != nil {
		return number.Value{}, err
	}
	var first number.Value
	s := newSummer(number.Int64(0))
	err = c.each(seq, func(v number.Value) error {
		if s.count == 0 {
			first = v
		}
		s.add(v)
		return nil
	})
	if err != nil {
		return number.Value{}, err
	}
	switch s.count {
	case 0:
		return number.Float(0), nil
	case 1:
		return single(first), nil
	}
	return meanOf(s.result(), s.count), nil
}

// single converts the only element of a sequence to its mean.
func single(v number.Value) number.Value {
	if v.Kind() == number.ComplexKind {
		return v
	}
	return number.Float(v.Float64())
}

func meanOf(sum number.Value, n int) number.Value {
	if sum.Kind() == number.ComplexKind {
		re, im := sum.Parts()
		return number.Complex(meanOf(re, n), meanOf(im, n))
	}
	return sum.QuoFloat(float64(n))
}

// moments is the running state of Welford's algorithm. The mean it
// reports comes from a separate compensated sum.
type moments struct {
	n     int
	m, m2 float64
	sum   kahan
}

func (s *moments) add(x float64) {
	s.n++
	s.sum.add(x)

	delta := x - s.m
	s.m += delta / float64(s.n)
	s.m2 += delta * (x - s.m)
}

func (s *moments) mean() float64 {
	return s.sum.f / float64(s.n)
}

func (s *moments) variance(ddof int) float64 {
	if s.n <= ddof || s.n < 2 {
		return math.NaN()
	}
	return s.m2 / float64(s.n-ddof)
}

// MeanVariance returns the mean and the variance of the values in seq
// in a single pass. The variance is the sample variance unless the
// Population option is set.
//
// An empty seq yields Float(0) and NaN. A single value yields the value
// converted as by Mean, and NaN. Complex values are an error unless seq
// holds exactly one value.
func MeanVariance(seq iter.Seq[number.Value], opts ...Option) (mean, variance number.Value, err error) {
	c, err := newConfig(opts)
	if err != nil {
		return number.Value{}, number.Value{}, err
	}
	var (
		s          moments
		first      number.Value
		sawComplex bool
	)
	err = c.each(seq, func(v number.Value) error {
		if s.n == 0 {
			first = v
		}
		if v.Kind() == number.ComplexKind {
			sawComplex = true
		}
		if sawComplex && s.n > 0 {
			return xerrors.Errorf("stats: variance of complex values: %w", ErrInvalidArgument)
		}
		s.add(v.Float64())
		return nil
	})
	if err != nil {
		return number.Value{}, number.Value{}, err
	}
	switch s.n {
	case 0:
		return number.Float(0), number.Float(math.NaN()), nil
	case 1:
		return single(first), number.Float(math.NaN()), nil
	}
	return number.Float(s.mean()), number.Float(s.variance(c.ddof())), nil
}

// Variance returns the variance of the values in seq, as MeanVariance does.
func Variance(seq iter.Seq[number.Value], opts ...Option) (number.Value, error) {
	_, v, err := MeanVariance(seq, opts...)
	return v, err
}

// MeanStdev returns the mean and the standard deviation of the values
// in seq. The standard deviation is the square root of the variance
// computed by MeanVariance.
func MeanStdev(seq iter.Seq[number.Value], opts ...Option) (mean, stdev number.Value, err error) {
	m, v, err := MeanVariance(seq, opts...)
	if err != nil {
		return number.Value{}, number.Value{}, err
	}
	return m, number.Sqrt(v), nil
}

// Stdev returns the standard deviation of the values in seq.
func Stdev(seq iter.Seq[number.Value], opts ...Option) (number.Value, error) {
	_, sd, err := MeanStdev(seq, opts...)
	return sd, err
}
