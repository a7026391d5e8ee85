// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"iter"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Real is the set of Go types that From converts.
type Real interface {
	constraints.Integer | constraints.Float
}

// From converts a Go integer or float to a Value: integers become exact
// integers and floats become floats. Named types are converted according
// to their underlying type.
func From[T Real](x T) Value {
	one := T(1)
	switch {
	case one/2 != 0:
		return Float(float64(x))
	case T(0)-one < 0:
		return Int64(int64(x))
	case uint64(x) > math.MaxInt64:
		return Value{any: new(big.Int).SetUint64(uint64(x))}
	default:
		return Int64(int64(x))
	}
}

// Of converts xs to a slice of Values.
func Of[T Real](xs ...T) []Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = From(x)
	}
	return vs
}

// Seq returns an iterator over xs converted to Values.
// Conversion happens lazily, one element per step.
func Seq[T Real](xs []T) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, x := range xs {
			if !yield(From(x)) {
				return
			}
		}
	}
}
