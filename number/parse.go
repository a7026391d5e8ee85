// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// ErrSyntax is reported by Parse for text that is not a number.
var ErrSyntax = xerrors.New("number: invalid syntax")

// Parse parses s as a Value.
//
// Recognized forms, after trimming space:
//
//	""  NA  nil  null     missing
//	NaN                   floating-point NaN
//	-12                   exact integer of any size
//	3/4                   exact rational (a zero denominator is ErrZeroDenominator)
//	1.5  1e-3  -Inf       float
//	1+2i  (1.5-2i)        complex with float parts
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "na", "nil", "null":
		return Missing(), nil
	case "nan":
		return Float(math.NaN()), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int64(i), nil
	}
	if b, ok := new(big.Int).SetString(s, 10); ok {
		return bigValue(b), nil
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, ok1 := new(big.Int).SetString(strings.TrimSpace(num), 10)
		d, ok2 := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !ok1 || !ok2 {
			return Value{}, xerrors.Errorf("number: parse %q: %w", s, ErrSyntax)
		}
		r, err := newRatio(n, d)
		if err != nil {
			return Value{}, xerrors.Errorf("number: parse %q: %w", s, err)
		}
		return Value{any: r}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), nil
	}
	if strings.HasSuffix(s, "i") || strings.HasSuffix(s, "i)") {
		if c, err := strconv.ParseComplex(s, 128); err == nil {
			return Complex128(c), nil
		}
	}
	return Value{}, xerrors.Errorf("number: parse %q: %w", s, ErrSyntax)
}

// MarshalText implements encoding.TextMarshaler using String.
// Generic values cannot be marshaled.
func (v Value) MarshalText() ([]byte, error) {
	if v.Kind() == GenericKind {
		return nil, xerrors.Errorf("number: cannot marshal %T", v.Addable())
	}
	return v.append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (v *Value) UnmarshalText(text []byte) error {
	w, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = w
	return nil
}
