// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math"
	"math/big"
	"sync"

	"golang.org/x/xerrors"
)

// ErrUnordered is reported when comparing values that have no order:
// missing values, NaNs, complex numbers and generic values without Floater.
var ErrUnordered = xerrors.New("number: values are not ordered")

// Half returns the exact rational 1/2.
var Half = sync.OnceValue(func() Value {
	return Value{any: &ratio{num: big.NewInt(1), den: big.NewInt(2)}}
})

// Add returns v+w.
//
// Integers add to integers and any rational operand makes the result a
// rational, without rounding. A float operand makes the result a float,
// and a complex operand makes it complex, adding part by part. If either
// operand is generic, its Add method is called with the other operand;
// generic addition is assumed to commute. A missing operand yields NaN.
func (v Value) Add(w Value) Value {
	kv, kw := v.Kind(), w.Kind()
	switch {
	case kv == GenericKind:
		return v.Addable().Add(w)
	case kw == GenericKind:
		return w.Addable().Add(v)
	case kv == MissingKind || kw == MissingKind:
		return Float(math.NaN())
	case kv == ComplexKind || kw == ComplexKind:
		re1, im1 := v.Parts()
		re2, im2 := w.Parts()
		return Complex(re1.Add(re2), im1.Add(im2))
	case kv == FloatKind || kw == FloatKind:
		return Float(v.Float64() + w.Float64())
	case kv == RatKind || kw == RatKind:
		return Value{any: addRatio(v.toRatio(), w.toRatio())}
	default:
		return addInts(v, w)
	}
}

// MulFloat returns v*f. Real results are floats; complex values are
// scaled part by part.
func (v Value) MulFloat(f float64) Value {
	if v.Kind() == ComplexKind {
		re, im := v.Parts()
		return Complex(re.MulFloat(f), im.MulFloat(f))
	}
	return Float(v.Float64() * f)
}

// QuoFloat returns v/f. Real results are floats; complex values are
// divided part by part. Generic values implementing Divider divide
// themselves.
func (v Value) QuoFloat(f float64) Value {
	switch v.Kind() {
	case ComplexKind:
		re, im := v.Parts()
		return Complex(re.QuoFloat(f), im.QuoFloat(f))
	case GenericKind:
		if d, ok := v.Addable().(Divider); ok {
			return d.Quo(f)
		}
	}
	return Float(v.Float64() / f)
}

// Compare returns -1, 0 or +1 depending on whether v is less than, equal
// to, or greater than w. Exact and floating-point values are compared
// exactly, so Int64(1<<53+1) is greater than Float(1<<53).
// Generic values are compared through Float64.
// Compare reports ErrUnordered if either value is not ordered.
func (v Value) Compare(w Value) (int, error) {
	a, err := v.orderable()
	if err != nil {
		return 0, err
	}
	b, err := w.orderable()
	if err != nil {
		return 0, err
	}
	return compareReal(a, b), nil
}

// orderable returns v as an Int, Rat or non-NaN Float.
func (v Value) orderable() (Value, error) {
	switch v.Kind() {
	case IntKind, RatKind:
		return v, nil
	case FloatKind:
		if !math.IsNaN(v.float()) {
			return v, nil
		}
	case GenericKind:
		if f, ok := v.Addable().(Floater); ok && !math.IsNaN(f.Float64()) {
			return Float(f.Float64()), nil
		}
	}
	return Value{}, xerrors.Errorf("number: compare %s: %w", v.Kind(), ErrUnordered)
}

func compareReal(a, b Value) int {
	if x, ok := a.Int64(); ok {
		if y, ok := b.Int64(); ok {
			return cmpInt64(x, y)
		}
	}
	if a.Kind() == FloatKind && b.Kind() == FloatKind {
		return cmpFloat(a.float(), b.float())
	}
	// An infinite float orders against any exact value by its sign alone.
	if a.Kind() == FloatKind && math.IsInf(a.float(), 0) {
		return cmpInt64(int64(sign(a.float())), 0)
	}
	if b.Kind() == FloatKind && math.IsInf(b.float(), 0) {
		return cmpInt64(0, int64(sign(b.float())))
	}
	return a.exactRat().Cmp(b.exactRat())
}

// exactRat returns v's exact value; v must be real and finite.
func (v Value) exactRat() *big.Rat {
	if v.Kind() == FloatKind {
		return new(big.Rat).SetFloat64(v.float())
	}
	return v.Rat()
}

func cmpInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func cmpFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
