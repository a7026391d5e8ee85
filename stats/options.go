// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strings"

	"github.com/numstat/numstat/number"
	"golang.org/x/xerrors"
)

// Side says which end of a histogram bin is closed.
type Side int

const (
	// Left bins are [lo, hi).
	Left Side = iota
	// Right bins are (lo, hi].
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if s != Left && s != Right {
		return nil, xerrors.Errorf("stats: closed side %v: %w", s, ErrInvalidArgument)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSide parses "left" or "right", ignoring case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, xerrors.Errorf("stats: invalid closed side %q (want left or right): %w", s, ErrInvalidArgument)
}

// An Option configures a statistics call. Options that do not apply to
// a call are ignored.
type Option func(*config)

type config struct {
	population bool
	closed     Side
	normalize  bool
	sort       bool
	ascending  bool
	dropNA     bool
	bins       int
	binsSet    bool
	initial    number.Value
	transform  func(number.Value) (number.Value, error)
}

func newConfig(opts []Option) (*config, error) {
	c := &config{
		sort:    true,
		dropNA:  true,
		initial: number.Int64(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.closed != Left && c.closed != Right {
		return nil, xerrors.Errorf("stats: closed side %v: %w", c.closed, ErrInvalidArgument)
	}
	return c, nil
}

// ddof returns the delta degrees of freedom for variances.
func (c *config) ddof() int {
	if c.population {
		return 0
	}
	return 1
}

// Population selects the population variance (divide by n) instead of
// the default sample variance (divide by n-1).
func Population(on bool) Option {
	return func(c *config) { c.population = on }
}

// Closed selects which side of histogram bins is closed. The default is Left.
func Closed(s Side) Option {
	return func(c *config) { c.closed = s }
}

// Normalize makes value counts report relative frequencies.
func Normalize(on bool) Option {
	return func(c *config) { c.normalize = on }
}

// Sort orders value counts by count. It is on by default.
func Sort(on bool) Option {
	return func(c *config) { c.sort = on }
}

// Ascending sorts value counts from least to most frequent.
// The default is descending.
func Ascending(on bool) Option {
	return func(c *config) { c.ascending = on }
}

// DropNA leaves not-available values out of value counts.
// It is on by default.
func DropNA(on bool) Option {
	return func(c *config) { c.dropNA = on }
}

// Bins sets the number of histogram bins. By default it is chosen by
// Sturges' rule.
func Bins(n int) Option {
	return func(c *config) {
		c.bins = n
		c.binsSet = true
	}
}

// Initial sets the value a sum starts from. The default is the exact
// integer 0; a float makes the whole sum a compensated float sum.
func Initial(v number.Value) Option {
	return func(c *config) { c.initial = v }
}

// Transform applies fn to every element before it is used. fn is called
// synchronously, in sequence order, exactly once per element; an error
// from fn aborts the call.
func Transform(fn func(number.Value) (number.Value, error)) Option {
	return func(c *config) { c.transform = fn }
}
