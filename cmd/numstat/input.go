// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/numstat/numstat/number"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// An input is the numbers read from one source.
type input struct {
	name   string
	values []number.Value
}

// readInputs reads the named files, or stdin when there are none.
// "-" names stdin too.
func readInputs(stdin io.Reader, names []string, log *zap.Logger) ([]input, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var ins []input
	for _, name := range names {
		in, err := readInput(stdin, name)
		if err != nil {
			return nil, err
		}
		na := 0
		for _, v := range in.values {
			if v.IsNA() {
				na++
			}
		}
		log.Debug("read values", zap.String("source", in.name), zap.Int("count", len(in.values)), zap.Int("na", na))
		ins = append(ins, in)
	}
	return ins, nil
}

func readInput(stdin io.Reader, name string) (input, error) {
	if name == "-" {
		vs, err := parseValues(stdin, "<stdin>")
		return input{"<stdin>", vs}, err
	}
	f, err := os.Open(name)
	if err != nil {
		return input{}, err
	}
	defer f.Close()
	vs, err := parseValues(f, name)
	return input{name, vs}, err
}

// parseValues parses the white-space separated numbers in r.
func parseValues(r io.Reader, name string) ([]number.Value, error) {
	var vs []number.Value
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		for _, field := range strings.Fields(s.Text()) {
			v, err := number.Parse(field)
			if err != nil {
				return nil, xerrors.Errorf("%s:%d: %w", name, line, err)
			}
			vs = append(vs, v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, xerrors.Errorf("%s: %w", name, err)
	}
	return vs, nil
}

// all returns the values of every input, in order.
func all(ins []input) []number.Value {
	var vs []number.Value
	for _, in := range ins {
		vs = append(vs, in.values...)
	}
	return vs
}
