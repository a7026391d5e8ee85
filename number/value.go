// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number defines Value, a small closed numeric tower of exact
// integers, exact rationals, floating-point numbers, complex numbers and
// missing values, together with the exact arithmetic needed to add them
// without rounding.
//
// Values are immutable. A zero Value is a missing value.
package number

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
)

// Kind is the kind of a Value.
type Kind int

// Unexported version of Kind, just so we can store Kinds in Values.
type kind Kind

// MissingKind is 0 so that a zero Value represents an absent number.
const (
	MissingKind Kind = iota
	IntKind
	RatKind
	FloatKind
	ComplexKind
	GenericKind
)

var kindStrings = []string{
	"Missing",
	"Int",
	"Rat",
	"Float",
	"Complex",
	"Generic",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "<unknown number.Kind>"
}

// A Value is a number of one of the kinds above.
//
// Small integers and floats live in num; everything else hangs off any:
// a kind marker, a *big.Int, a *ratio, a *parts or a generic.
type Value struct {
	num uint64
	any any
}

// parts holds the components of a complex Value. Neither part is
// complex, generic or missing.
type parts struct {
	re, im Value
}

// generic wraps a caller-provided Addable.
type generic struct {
	a Addable
}

// Addable is implemented by caller-defined numeric types that want to flow
// through the summation kernel. Add must return the sum of the receiver and
// other; it is called with the running total on the left.
type Addable interface {
	Add(other Value) Value
}

// The following optional interfaces may be implemented by an Addable to
// take part in operations beyond addition. Without them, the generic value
// behaves as NaN in floating-point contexts.
type (
	// Floater converts a generic value to a float64.
	Floater interface {
		Float64() float64
	}

	// Divider divides a generic value by a float64 without leaving the
	// caller's numeric type.
	Divider interface {
		Quo(float64) Value
	}

	// Powerer raises a generic value to an exponent.
	// Sqrt calls Pow(Half()).
	Powerer interface {
		Pow(exp Value) Value
	}

	// NaNer reports whether a generic value is not a number.
	NaNer interface {
		IsNaN() bool
	}
)

//////////////// Constructors

// Missing returns a missing Value. It is the same as the zero Value.
func Missing() Value {
	return Value{}
}

// Int64 returns an exact integer Value.
func Int64(i int64) Value {
	return Value{num: uint64(i), any: kind(IntKind)}
}

// BigInt returns an exact integer Value for x.
// The Value does not retain x.
func BigInt(x *big.Int) Value {
	if x.IsInt64() {
		return Int64(x.Int64())
	}
	return Value{any: new(big.Int).Set(x)}
}

// bigValue is BigInt without the defensive copy, for freshly
// computed results.
func bigValue(x *big.Int) Value {
	if x.IsInt64() {
		return Int64(x.Int64())
	}
	return Value{any: x}
}

// Rational returns the exact rational num/den in lowest terms.
// It reports ErrZeroDenominator if den is zero.
func Rational(num, den int64) (Value, error) {
	return BigRational(big.NewInt(num), big.NewInt(den))
}

// BigRational returns the exact rational num/den in lowest terms.
// It reports ErrZeroDenominator if den is zero.
// The Value does not retain num or den.
func BigRational(num, den *big.Int) (Value, error) {
	r, err := newRatio(new(big.Int).Set(num), new(big.Int).Set(den))
	if err != nil {
		return Value{}, err
	}
	return Value{any: r}, nil
}

// FromRat returns an exact rational Value for x.
func FromRat(x *big.Rat) Value {
	// big.Rat is always normalized, so no reduction is needed.
	return Value{any: &ratio{
		num: new(big.Int).Set(x.Num()),
		den: new(big.Int).Set(x.Denom()),
	}}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{num: math.Float64bits(f), any: kind(FloatKind)}
}

// Complex returns a complex Value with the given real and imaginary parts.
// It panics if either part is not an Int, Rat or Float.
func Complex(re, im Value) Value {
	if !re.isReal() || !im.isReal() {
		panic(fmt.Sprintf("number: complex parts must be real, got %s and %s", re.Kind(), im.Kind()))
	}
	return Value{any: &parts{re: re, im: im}}
}

// Real returns a complex Value whose imaginary part is omitted,
// which is to say exactly zero.
func Real(re Value) Value {
	return Complex(re, Int64(0))
}

// Complex128 returns a complex Value with floating-point parts.
func Complex128(c complex128) Value {
	return Complex(Float(real(c)), Float(imag(c)))
}

// Generic returns a Value wrapping a caller-defined numeric type.
// A nil Addable yields a missing Value.
func Generic(a Addable) Value {
	if a == nil {
		return Value{}
	}
	return Value{any: generic{a}}
}

//////////////// Accessors

// Kind returns v's Kind.
func (v Value) Kind() Kind {
	switch x := v.any.(type) {
	case nil:
		return MissingKind
	case kind:
		return Kind(x)
	case *big.Int:
		return IntKind
	case *ratio:
		return RatKind
	case *parts:
		return ComplexKind
	case generic:
		return GenericKind
	default:
		panic(fmt.Sprintf("bad value: %T", x))
	}
}

// Int64 returns v as an int64 and true if v is an integer that fits.
func (v Value) Int64() (int64, bool) {
	if k, ok := v.any.(kind); ok && Kind(k) == IntKind {
		return int64(v.num), true
	}
	return 0, false
}

// BigInt returns a copy of v's integer value.
// It panics if v is not an integer.
func (v Value) BigInt() *big.Int {
	if g, w := v.Kind(), IntKind; g != w {
		panic(fmt.Sprintf("Value kind is %s, not %s", g, w))
	}
	return new(big.Int).Set(v.bigInt())
}

// bigInt returns v's integer value, which the caller must not modify.
func (v Value) bigInt() *big.Int {
	if b, ok := v.any.(*big.Int); ok {
		return b
	}
	return big.NewInt(int64(v.num))
}

// Rat returns v's exact value as a *big.Rat.
// It panics if v is neither an integer nor a rational.
func (v Value) Rat() *big.Rat {
	switch v.Kind() {
	case IntKind:
		return new(big.Rat).SetInt(v.bigInt())
	case RatKind:
		r := v.any.(*ratio)
		return new(big.Rat).SetFrac(r.num, r.den)
	default:
		panic(fmt.Sprintf("Value kind is %s, not %s or %s", v.Kind(), IntKind, RatKind))
	}
}

// Parts returns the real and imaginary parts of v.
// A real v has an exact zero imaginary part.
// It panics if v is missing or generic.
func (v Value) Parts() (re, im Value) {
	switch v.Kind() {
	case ComplexKind:
		p := v.any.(*parts)
		return p.re, p.im
	case IntKind, RatKind, FloatKind:
		return v, Int64(0)
	default:
		panic(fmt.Sprintf("Value kind is %s, which has no parts", v.Kind()))
	}
}

// Addable returns the caller-defined value wrapped by v.
// It panics if v is not generic.
func (v Value) Addable() Addable {
	if g, w := v.Kind(), GenericKind; g != w {
		panic(fmt.Sprintf("Value kind is %s, not %s", g, w))
	}
	return v.any.(generic).a
}

func (v Value) float() float64 {
	return math.Float64frombits(v.num)
}

func (v Value) isReal() bool {
	switch v.Kind() {
	case IntKind, RatKind, FloatKind:
		return true
	}
	return false
}

// IsExact reports whether v is an exact integer or rational.
func (v Value) IsExact() bool {
	k := v.Kind()
	return k == IntKind || k == RatKind
}

// Float64 returns v converted to the nearest float64.
// Missing values, complex values with a nonzero imaginary part and generic
// values that do not implement Floater convert to NaN.
func (v Value) Float64() float64 {
	switch v.Kind() {
	case IntKind:
		if i, ok := v.Int64(); ok {
			return float64(i)
		}
		f, _ := new(big.Float).SetInt(v.bigInt()).Float64()
		return f
	case RatKind:
		r := v.any.(*ratio)
		f, _ := new(big.Rat).SetFrac(r.num, r.den).Float64()
		return f
	case FloatKind:
		return v.float()
	case ComplexKind:
		p := v.any.(*parts)
		if p.im.isZero() {
			return p.re.Float64()
		}
	case GenericKind:
		if f, ok := v.Addable().(Floater); ok {
			return f.Float64()
		}
	}
	return math.NaN()
}

func (v Value) complex128() complex128 {
	re, im := v.Parts()
	return complex(re.Float64(), im.Float64())
}

func (v Value) isZero() bool {
	switch v.Kind() {
	case IntKind:
		if i, ok := v.Int64(); ok {
			return i == 0
		}
		return false
	case RatKind:
		return v.any.(*ratio).num.Sign() == 0
	case FloatKind:
		return v.float() == 0
	}
	return false
}

// IsNA reports whether v is not available: a missing value, a NaN float,
// or a generic value whose IsNaN method reports true.
func (v Value) IsNA() bool {
	switch v.Kind() {
	case MissingKind:
		return true
	case FloatKind:
		return math.IsNaN(v.float())
	case GenericKind:
		if n, ok := v.Addable().(NaNer); ok {
			return n.IsNaN()
		}
	}
	return false
}

//////////////// Other

// Equal reports whether v and w are the same kind and hold the same value.
// Unlike ==, two NaN floats are Equal.
func (v Value) Equal(w Value) bool {
	k1 := v.Kind()
	k2 := w.Kind()
	if k1 != k2 {
		return false
	}
	switch k1 {
	case MissingKind:
		return true
	case IntKind:
		return v.bigInt().Cmp(w.bigInt()) == 0
	case RatKind:
		a, b := v.any.(*ratio), w.any.(*ratio)
		return a.num.Cmp(b.num) == 0 && a.den.Cmp(b.den) == 0
	case FloatKind:
		f, g := v.float(), w.float()
		return f == g || math.IsNaN(f) && math.IsNaN(g)
	case ComplexKind:
		a, b := v.any.(*parts), w.any.(*parts)
		return a.re.Equal(b.re) && a.im.Equal(b.im)
	case GenericKind:
		return v.any == w.any // may panic if non-comparable
	default:
		panic(fmt.Sprintf("bad kind: %s", k1))
	}
}

// String formats v: integers in decimal, rationals as "num/den",
// floats as with strconv.FormatFloat(f, 'g', -1, 64), complex numbers as
// "(re+imi)", missing values as "NA".
func (v Value) String() string {
	return string(v.append(nil))
}

func (v Value) append(dst []byte) []byte {
	switch v.Kind() {
	case MissingKind:
		return append(dst, "NA"...)
	case IntKind:
		if i, ok := v.Int64(); ok {
			return strconv.AppendInt(dst, i, 10)
		}
		return v.bigInt().Append(dst, 10)
	case RatKind:
		r := v.any.(*ratio)
		dst = r.num.Append(dst, 10)
		dst = append(dst, '/')
		return r.den.Append(dst, 10)
	case FloatKind:
		return strconv.AppendFloat(dst, v.float(), 'g', -1, 64)
	case ComplexKind:
		p := v.any.(*parts)
		dst = append(dst, '(')
		dst = p.re.append(dst)
		if !p.im.signbit() {
			dst = append(dst, '+')
		}
		dst = p.im.append(dst)
		return append(dst, "i)"...)
	case GenericKind:
		return append(dst, fmt.Sprint(v.Addable())...)
	default:
		panic(fmt.Sprintf("bad kind: %s", v.Kind()))
	}
}

func (v Value) signbit() bool {
	switch v.Kind() {
	case IntKind:
		return v.bigInt().Sign() < 0
	case RatKind:
		return v.any.(*ratio).num.Sign() < 0
	case FloatKind:
		return math.Signbit(v.float()) && !math.IsNaN(v.float())
	}
	return false
}

// Key returns a comparable identity for v, suitable as a map key.
// Values of different kinds have different keys, so Int64(1) and Float(1)
// are distinct; -0.0 and 0.0 share a key. NaN keys never compare equal.
func (v Value) Key() any {
	switch v.Kind() {
	case MissingKind:
		return missingKey{}
	case IntKind:
		if i, ok := v.Int64(); ok {
			return i
		}
		return bigKey(v.bigInt().String())
	case RatKind:
		r := v.any.(*ratio)
		return ratKey{r.num.String(), r.den.String()}
	case FloatKind:
		f := v.float()
		if f == 0 {
			f = 0
		}
		return f
	case ComplexKind:
		p := v.any.(*parts)
		return complexKey{p.re.Key(), p.im.Key()}
	case GenericKind:
		a := v.Addable()
		return genericKey{fmt.Sprintf("%T", a), fmt.Sprint(a)}
	default:
		panic(fmt.Sprintf("bad kind: %s", v.Kind()))
	}
}

type (
	missingKey struct{}
	bigKey     string
	ratKey     struct{ num, den string }
	complexKey struct{ re, im any }
	genericKey struct{ typ, str string }
)

// Sqrt returns the square root of v.
//
// Integers, rationals and floats are converted to float64 and passed to
// math.Sqrt, so a negative argument yields NaN. Complex values use
// cmplx.Sqrt. Generic values implementing Powerer are raised to Half();
// other generic values go through Float64.
func Sqrt(v Value) Value {
	switch v.Kind() {
	case IntKind, RatKind, FloatKind:
		return Float(math.Sqrt(v.Float64()))
	case ComplexKind:
		return Complex128(cmplx.Sqrt(v.complex128()))
	case GenericKind:
		if p, ok := v.Addable().(Powerer); ok {
			return p.Pow(Half())
		}
		return Float(math.Sqrt(v.Float64()))
	default:
		return Float(math.NaN())
	}
}
