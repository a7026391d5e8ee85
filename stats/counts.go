// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cmp"
	"iter"
	"slices"

	"github.com/numstat/numstat/number"
)

// An Entry is one row of a Counts table.
type Entry struct {
	// Value is the counted value. It is the missing Value for the
	// not-available entry.
	Value number.Value
	// NA marks the entry counting all not-available values.
	NA bool
	// Count is the number of occurrences.
	Count int
	// Frequency is Count divided by the number of counted values when
	// the table is normalized, and zero otherwise.
	Frequency float64
}

// Counts is an ordered frequency table built by ValueCounts.
type Counts struct {
	entries    []Entry
	index      map[any]int
	total      int
	na         int
	normalized bool
}

// naKey stands in for every not-available value in Counts.index.
type naKey struct{}

// ValueCounts tallies the distinct values in seq.
//
// Values are distinct when their [number.Value.Key]s differ, so the
// integer 1 and the float 1 are counted separately. Not-available values
// are counted together; their entry is left out unless DropNA(false) is
// given, and then only if there is at least one.
//
// By default the entries are sorted by descending count, with ties in
// order of first appearance. Sort(false) keeps first-appearance order,
// with the not-available entry first. Ascending(true) reverses the sort;
// the not-available entry then comes first instead of last.
// Normalize(true) fills in the Frequency of each entry.
func ValueCounts(seq iter.Seq[number.Value], opts ...Option) (*Counts, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	t := &Counts{index: make(map[any]int)}
	err = c.each(seq, func(v number.Value) error {
		t.add(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var na *Entry
	if !c.dropNA && t.na > 0 {
		na = &Entry{NA: true, Count: t.na}
	}
	if c.sort {
		slices.SortStableFunc(t.entries, func(a, b Entry) int {
			if c.ascending {
				return cmp.Compare(a.Count, b.Count)
			}
			return cmp.Compare(b.Count, a.Count)
		})
		if na != nil {
			if c.ascending {
				t.entries = slices.Insert(t.entries, 0, *na)
			} else {
				t.entries = append(t.entries, *na)
			}
		}
	} else if na != nil {
		t.entries = slices.Insert(t.entries, 0, *na)
	}
	for i, e := range t.entries {
		if e.NA {
			t.index[naKey{}] = i
		} else {
			t.index[e.Value.Key()] = i
		}
	}

	if c.normalize {
		t.normalized = true
		n := t.total
		if c.dropNA {
			n -= t.na
		}
		for i := range t.entries {
			t.entries[i].Frequency = float64(t.entries[i].Count) / float64(n)
		}
	}
	return t, nil
}

func (t *Counts) add(v number.Value) {
	t.total++
	if v.IsNA() {
		t.na++
		return
	}
	k := v.Key()
	if i, ok := t.index[k]; ok {
		t.entries[i].Count++
		return
	}
	t.index[k] = len(t.entries)
	t.entries = append(t.entries, Entry{Value: v, Count: 1})
}

// Entries returns the rows of t in order.
func (t *Counts) Entries() []Entry {
	return slices.Clone(t.entries)
}

// All returns an iterator over the rows of t in order.
func (t *Counts) All() iter.Seq[Entry] {
	return slices.Values(t.entries)
}

// Len returns the number of rows in t.
func (t *Counts) Len() int { return len(t.entries) }

// Lookup returns the row counting v. Any not-available v finds the
// not-available row.
func (t *Counts) Lookup(v number.Value) (Entry, bool) {
	var k any = naKey{}
	if !v.IsNA() {
		k = v.Key()
	}
	i, ok := t.index[k]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Total returns the number of values read, including not-available ones.
func (t *Counts) Total() int { return t.total }

// NACount returns the number of not-available values read, whether or
// not they have a row.
func (t *Counts) NACount() int { return t.na }

// Normalized reports whether the rows carry frequencies.
func (t *Counts) Normalized() bool { return t.normalized }
