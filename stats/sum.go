// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"iter"
	"math"
	"math/big"

	"github.com/numstat/numstat/number"
)

// sumMode is the accumulation strategy of a summer.
// A summer only ever moves forward through the modes.
type sumMode int

const (
	exactMode   sumMode = iota // integers and rationals, no rounding
	floatMode                  // Kahan compensated float64
	genericMode                // repeated Value.Add
)

// A summer accumulates a sum one element at a time.
type summer struct {
	mode  sumMode
	count int

	// exactMode
	n    int64        // running total of small integers
	v    number.Value // running total outside n and r
	r    number.Value // pending rational total
	hasR bool

	// floatMode
	k kahan
}

// kahan is a compensated float64 sum.
type kahan struct {
	f, c float64
}

func (k *kahan) add(x float64) {
	// Compensation is meaningless once the total is not finite.
	if math.IsInf(x, 0) || math.IsInf(k.f, 0) || math.IsNaN(x) || math.IsNaN(k.f) {
		k.f += x
		k.c = 0
		return
	}
	y := x - k.c
	t := k.f + y
	k.c = (t - k.f) - y
	k.f = t
}

func newSummer(initial number.Value) *summer {
	s := &summer{v: initial}
	switch initial.Kind() {
	case number.IntKind, number.RatKind:
		s.mode = exactMode
	case number.FloatKind:
		s.mode = floatMode
		s.k.f = initial.Float64()
	default:
		s.mode = genericMode
	}
	return s
}

func (s *summer) add(e number.Value) {
	s.count++
	switch s.mode {
	case exactMode:
		s.addExact(e)
	case floatMode:
		s.addFloat(e)
	default:
		s.v = s.v.Add(e)
	}
}

func (s *summer) addExact(e number.Value) {
	switch e.Kind() {
	case number.IntKind:
		i, small := e.Int64()
		if !small {
			s.v = e.Add(s.v)
			return
		}
		if n, ok := number.AddInt64(s.n, i); ok {
			s.n = n
			return
		}
		s.v = number.Int64(s.n).Add(s.v)
		s.n = i
	case number.RatKind:
		if !s.hasR {
			s.r, s.hasR = e, true
			return
		}
		s.r = s.r.Add(e)
	default:
		s.flush()
		switch e.Kind() {
		case number.FloatKind, number.MissingKind:
			s.mode = floatMode
			s.k = kahan{f: s.v.Float64()}
			s.addFloat(e)
		default:
			s.mode = genericMode
			s.v = s.v.Add(e)
		}
	}
}

// flush folds the exact partial totals into v.
func (s *summer) flush() {
	if s.n != 0 {
		s.v = number.Int64(s.n).Add(s.v)
		s.n = 0
	}
	if s.hasR {
		s.v = s.r.Add(s.v)
		s.r, s.hasR = number.Value{}, false
	}
}

func (s *summer) addFloat(e number.Value) {
	var x float64
	switch e.Kind() {
	case number.IntKind, number.RatKind, number.FloatKind:
		x = e.Float64()
	case number.MissingKind:
		x = math.NaN()
	default:
		s.mode = genericMode
		s.v = number.Float(s.k.f).Add(e)
		return
	}
	s.k.add(x)
}

// result returns the sum so far.
func (s *summer) result() number.Value {
	switch s.mode {
	case exactMode:
		s.flush()
		return s.v
	case floatMode:
		return number.Float(s.k.f)
	default:
		return s.v
	}
}

// Sum returns the sum of the values in seq, starting from the Initial
// option (exact 0 by default).
//
// As long as only integers and rationals are seen the sum is exact.
// The first float or missing value converts the exact total to float64
// once; the remainder is summed with Kahan's compensated algorithm.
// Complex and generic values are added with [number.Value.Add].
// An empty seq yields the initial value unchanged.
func Sum(seq iter.Seq[number.Value], opts ...Option) (number.Value, error) {
	c, err := newConfig(opts)
	if err != nil {
		return number.Value{}, err
	}
	s, err := c.sum(seq)
	if err != nil {
		return number.Value{}, err
	}
	return s.result(), nil
}

func (c *config) sum(seq iter.Seq[number.Value]) (*summer, error) {
	s := newSummer(c.initial)
	err := c.each(seq, func(v number.Value) error {
		s.add(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SumRange returns the sum of the integers from begin to end, excluding
// end if exclusive is set. Without a Transform and with an exact initial
// value the result comes from the closed form without iterating.
func SumRange(begin, end int64, exclusive bool, opts ...Option) (number.Value, error) {
	c, err := newConfig(opts)
	if err != nil {
		return number.Value{}, err
	}
	if c.transform != nil || !c.initial.IsExact() {
		s, err := c.sum(rangeSeq(begin, end, exclusive))
		if err != nil {
			return number.Value{}, err
		}
		return s.result(), nil
	}
	b, e := big.NewInt(begin), big.NewInt(end)
	if exclusive {
		e.Sub(e, big.NewInt(1))
	}
	if e.Cmp(b) < 0 {
		return c.initial, nil
	}
	// (end-begin+1)*(end+begin)/2
	a := new(big.Int).Sub(e, b)
	a.Add(a, big.NewInt(1))
	a.Mul(a, new(big.Int).Add(e, b))
	a.Rsh(a, 1)
	return c.initial.Add(number.BigInt(a)), nil
}

func rangeSeq(begin, end int64, exclusive bool) iter.Seq[number.Value] {
	return func(yield func(number.Value) bool) {
		last := end
		if exclusive {
			if end == math.MinInt64 {
				return
			}
			last--
		}
		for i := begin; i <= last; i++ {
			if !yield(number.Int64(i)) || i == math.MaxInt64 {
				return
			}
		}
	}
}
