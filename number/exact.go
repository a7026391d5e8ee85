// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"

	"golang.org/x/xerrors"
)

// ErrZeroDenominator is reported when a rational is constructed with a
// zero denominator.
var ErrZeroDenominator = xerrors.New("number: zero denominator")

// ratio is an exact rational in lowest terms with a positive denominator.
// Neither field is modified after construction.
type ratio struct {
	num, den *big.Int
}

var bigOne = big.NewInt(1)

// newRatio reduces num/den and moves the sign to the numerator.
// It takes ownership of num and den.
func newRatio(num, den *big.Int) (*ratio, error) {
	switch den.Sign() {
	case 0:
		return nil, ErrZeroDenominator
	case -1:
		num.Neg(num)
		den.Neg(den)
	}
	if g := gcd(num, den); g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return &ratio{num: num, den: den}, nil
}

// canonical checks the denominator and fixes its sign without reducing;
// addRatio already produces coprime terms.
func canonical(num, den *big.Int) *ratio {
	if den.Sign() == 0 {
		// addRatio never produces a zero denominator from valid operands.
		panic(ErrZeroDenominator)
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return &ratio{num: num, den: den}
}

func intRatio(x *big.Int) *ratio {
	return &ratio{num: x, den: bigOne}
}

// The int64 fast paths only run on operands in this range, so that
// negation and the intermediate sums of two operands cannot overflow.
const (
	maxFixable = 1<<62 - 1
	minFixable = -(1 << 62)
)

func fixable(x int64) bool {
	return minFixable <= x && x <= maxFixable
}

// AddInt64 returns a+b and whether the sum fits in an int64.
func AddInt64(a, b int64) (int64, bool) {
	c := a + b
	if (a^c)&(b^c) < 0 {
		return 0, false
	}
	return c, true
}

// MulInt64 returns a*b and whether the product fits in an int64.
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}
	return c, true
}

// gcd64 returns the non-negative greatest common divisor of x and y,
// both of which must be fixable.
func gcd64(x, y int64) int64 {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for x > 0 {
		x, y = y%x, x
	}
	return y
}

// gcd returns the non-negative greatest common divisor of x and y.
// gcd(0, y) is |y|.
func gcd(x, y *big.Int) *big.Int {
	if x.IsInt64() && y.IsInt64() && fixable(x.Int64()) && fixable(y.Int64()) {
		return big.NewInt(gcd64(x.Int64(), y.Int64()))
	}
	a := new(big.Int).Abs(x)
	b := new(big.Int).Abs(y)
	if a.Sign() == 0 {
		return b
	}
	if b.Sign() == 0 {
		return a
	}
	return a.GCD(nil, nil, a, b)
}

// addRatio returns a+b using Knuth's gcd-reduced addition, which keeps
// intermediate products no larger than needed: with g = gcd(ad, bd),
//
//	c   = an*(bd/g) + bn*(ad/g)
//	g'  = gcd(c, g)
//	sum = (c/g') / ((ad/g) * (bd/g'))
func addRatio(a, b *ratio) *ratio {
	if r, ok := addRatioSmall(a, b); ok {
		return r
	}
	g := gcd(a.den, b.den)
	adg := new(big.Int).Quo(a.den, g)
	c := new(big.Int).Mul(a.num, new(big.Int).Quo(b.den, g))
	c.Add(c, new(big.Int).Mul(b.num, adg))
	g2 := gcd(c, g)
	num := c.Quo(c, g2)
	den := new(big.Int).Quo(b.den, g2)
	den.Mul(den, adg)
	return canonical(num, den)
}

// addRatioSmall is addRatio on int64 operands. It reports false if any
// operand is out of range or an intermediate result overflows.
func addRatioSmall(a, b *ratio) (*ratio, bool) {
	an, ad, ok1 := small(a.num, a.den)
	bn, bd, ok2 := small(b.num, b.den)
	if !ok1 || !ok2 {
		return nil, false
	}
	g := gcd64(ad, bd)
	x, ok1 := MulInt64(an, bd/g)
	y, ok2 := MulInt64(bn, ad/g)
	if !ok1 || !ok2 {
		return nil, false
	}
	c, ok := AddInt64(x, y)
	if !ok || !fixable(c) {
		return nil, false
	}
	g2 := gcd64(c, g)
	den, ok := MulInt64(bd/g2, ad/g)
	if !ok {
		return nil, false
	}
	return canonical(big.NewInt(c/g2), big.NewInt(den)), true
}

func small(num, den *big.Int) (int64, int64, bool) {
	if !num.IsInt64() || !den.IsInt64() {
		return 0, 0, false
	}
	n, d := num.Int64(), den.Int64()
	return n, d, fixable(n) && fixable(d)
}

// addInts returns the exact sum of two integer Values.
func addInts(v, w Value) Value {
	if a, ok := v.Int64(); ok {
		if b, ok := w.Int64(); ok {
			if c, ok := AddInt64(a, b); ok {
				return Int64(c)
			}
		}
	}
	return bigValue(new(big.Int).Add(v.bigInt(), w.bigInt()))
}

// toRatio returns v's exact value as a ratio. v must be exact.
func (v Value) toRatio() *ratio {
	if r, ok := v.any.(*ratio); ok {
		return r
	}
	return intRatio(v.bigInt())
}
