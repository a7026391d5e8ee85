// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"testing"
)

func TestAddInt64(t *testing.T) {
	tests := []struct {
		a, b int64
		want int64
		ok   bool
	}{
		{1, 2, 3, true},
		{math.MaxInt64, 0, math.MaxInt64, true},
		{math.MaxInt64, 1, 0, false},
		{math.MinInt64, -1, 0, false},
		{math.MinInt64, math.MaxInt64, -1, true},
	}
	for _, tc := range tests {
		got, ok := AddInt64(tc.a, tc.b)
		if got != tc.want || ok != tc.ok {
			t.Errorf("AddInt64(%d, %d) = %d, %t; want %d, %t", tc.a, tc.b, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMulInt64(t *testing.T) {
	tests := []struct {
		a, b int64
		want int64
		ok   bool
	}{
		{0, math.MinInt64, 0, true},
		{-3, 7, -21, true},
		{1 << 31, 1 << 31, 1 << 62, true},
		{1 << 32, 1 << 31, 0, false},
		{math.MinInt64, -1, 0, false},
		{-1, math.MinInt64, 0, false},
		{math.MaxInt64, -1, -math.MaxInt64, true},
	}
	for _, tc := range tests {
		got, ok := MulInt64(tc.a, tc.b)
		if got != tc.want || ok != tc.ok {
			t.Errorf("MulInt64(%d, %d) = %d, %t; want %d, %t", tc.a, tc.b, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{-12, 18, 6},
		{17, 5, 1},
	}
	for _, tc := range tests {
		if got := gcd64(tc.x, tc.y); got != tc.want {
			t.Errorf("gcd64(%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
		if got := gcd(big.NewInt(tc.x), big.NewInt(tc.y)); got.Int64() != tc.want {
			t.Errorf("gcd(%d, %d) = %v, want %d", tc.x, tc.y, got, tc.want)
		}
	}
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	x := new(big.Int).Mul(huge, big.NewInt(6))
	y := new(big.Int).Mul(huge, big.NewInt(-4))
	want := new(big.Int).Mul(huge, big.NewInt(2))
	if got := gcd(x, y); got.Cmp(want) != 0 {
		t.Errorf("gcd(big) = %v, want %v", got, want)
	}
}

func TestRationalZeroDenominator(t *testing.T) {
	if _, err := Rational(1, 0); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("Rational(1, 0) error = %v, want ErrZeroDenominator", err)
	}
	if _, err := Parse("3/0"); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("Parse(3/0) error = %v, want ErrZeroDenominator", err)
	}
}

func TestRationalNormalized(t *testing.T) {
	v, err := Rational(6, -4)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.String(), "-3/2"; got != want {
		t.Errorf("Rational(6, -4) = %s, want %s", got, want)
	}
}

// TestAddRatioMatchesBigRat checks both the int64 and big.Int paths of
// addRatio against math/big's reference rational addition.
func TestAddRatioMatchesBigRat(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	bound := []int64{10, 1 << 20, 1 << 40, math.MaxInt64}
	for i := 0; i < 2000; i++ {
		b := bound[i%len(bound)]
		an, ad := r.Int63n(b)-b/2, r.Int63n(b-1)+1
		bn, bd := r.Int63n(b)-b/2, r.Int63n(b-1)+1
		x, err := Rational(an, ad)
		if err != nil {
			t.Fatal(err)
		}
		y, err := Rational(bn, bd)
		if err != nil {
			t.Fatal(err)
		}
		got := x.Add(y)
		want := new(big.Rat).Add(big.NewRat(an, ad), big.NewRat(bn, bd))
		if got.Kind() != RatKind {
			t.Fatalf("%v + %v: kind %s, want Rat", x, y, got.Kind())
		}
		if got.Rat().Cmp(want) != 0 {
			t.Fatalf("%v + %v = %v, want %v", x, y, got, want.RatString())
		}
		// Results must stay in lowest terms.
		rr := got.any.(*ratio)
		if g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(rr.num), rr.den); rr.num.Sign() != 0 && g.Cmp(bigOne) != 0 {
			t.Fatalf("%v + %v = %v is not reduced", x, y, got)
		}
		if rr.den.Sign() <= 0 {
			t.Fatalf("%v + %v = %v has non-positive denominator", x, y, got)
		}
	}
}

func TestAddIntsWidens(t *testing.T) {
	got := Int64(math.MaxInt64).Add(Int64(1))
	want := new(big.Int).Add(big.NewInt(math.MaxInt64), big.NewInt(1))
	if got.Kind() != IntKind || got.BigInt().Cmp(want) != 0 {
		t.Errorf("MaxInt64+1 = %v (%s), want %v", got, got.Kind(), want)
	}
	back := got.Add(Int64(-1))
	if i, ok := back.Int64(); !ok || i != math.MaxInt64 {
		t.Errorf("(MaxInt64+1)-1 = %v, want small MaxInt64", back)
	}
}
