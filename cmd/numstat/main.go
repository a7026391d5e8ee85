// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The numstat command computes statistics of numbers read from files or
// from standard input.
//
// Numbers are separated by white space. Integers and rationals such as
// 3/4 are summed exactly; floats, complex numbers like 1+2i and the
// not-available markers NA and NaN are also accepted.
//
// Usage:
//
//	numstat sum [-initial x] [file ...]
//	numstat sum-range [-exclusive] begin end
//	numstat mean|variance|stdev [-population] [file ...]
//	numstat percentile [-p 25,50,75] [file ...]
//	numstat median|argmax|argmin [file ...]
//	numstat counts [-normalize] [-sort] [-ascending] [-dropna] [file ...]
//	numstat histogram [-bins n] [-closed left|right] [-shared] [file ...]
//	numstat describe [-population] [file ...]
//
// Every command takes -output text|json|yaml|table, -config file and
// -verbose. Option defaults can be set in a config file or in NUMSTAT_*
// environment variables, such as NUMSTAT_POPULATION=true.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "numstat: %v\n", err)
		os.Exit(1)
	}
}
