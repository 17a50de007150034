// Package nlenum holds the named constant tables used by netlink and rtnetlink
// messages: protocol families, message types, attribute kinds and flag bits.
//
// The constants keep the kernel's names.  Each table maps wire values to names
// and back.  Lookups from wire values are partial, since the kernel adds new
// values over time and unknown values are routine in captures.
package nlenum

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// Value is the set of underlying types used for netlink enumerations.
type Value interface {
	~uint8 | ~uint16 | ~uint32
}

// Table is a closed set of named values.
type Table[T Value] struct {
	prefix string
	names  map[T]string
	byName map[string]T
	values []T
}

// NewTable builds a table from short names.  The prefix is prepended to form
// the full kernel name, e.g. "IFLA_" + "MTU".
func NewTable[T Value](prefix string, names map[T]string) *Table[T] {
	t := &Table[T]{
		prefix: prefix,
		names:  make(map[T]string, len(names)),
		byName: make(map[string]T, 2*len(names)),
		values: make([]T, 0, len(names)),
	}
	for v, n := range names {
		t.names[v] = n
		t.byName[n] = v
		t.byName[prefix+n] = v
		t.values = append(t.values, v)
	}
	sort.Slice(t.values, func(i, j int) bool { return t.values[i] < t.values[j] })
	return t
}

// Dense builds a table whose values are 0..len(names)-1.
func Dense[T Value](prefix string, names ...string) *Table[T] {
	m := make(map[T]string, len(names))
	for i, n := range names {
		m[T(i)] = n
	}
	return NewTable(prefix, m)
}

// Prefix returns the common name prefix.
func (t *Table[T]) Prefix() string {
	return t.prefix
}

// Known reports whether v has a name.
func (t *Table[T]) Known(v T) bool {
	_, ok := t.names[v]
	return ok
}

// Name returns the full name of v, or PREFIX_UNKNOWN_<v> when v is not in the
// table.
func (t *Table[T]) Name(v T) string {
	if n, ok := t.names[v]; ok {
		return t.prefix + n
	}
	return fmt.Sprintf("%sUNKNOWN_%d", t.prefix, uint64(v))
}

// Lookup converts a wire value to a table member.  It returns false when n
// does not fit in T or has no name.
func (t *Table[T]) Lookup(n uint64) (T, bool) {
	v := T(n)
	if uint64(v) != n {
		return 0, false
	}
	if !t.Known(v) {
		return 0, false
	}
	return v, true
}

// Parse converts a full or short name, in any case, to its value.
func (t *Table[T]) Parse(name string) (T, bool) {
	v, ok := t.byName[strings.ToUpper(name)]
	return v, ok
}

// Values returns all known values in ascending order.
func (t *Table[T]) Values() []T {
	out := make([]T, len(t.values))
	copy(out, t.values)
	return out
}

// Max returns the largest known value.
func (t *Table[T]) Max() T {
	if len(t.values) == 0 {
		return 0
	}
	return t.values[len(t.values)-1]
}

// Flags renders a bitmask as the names of its set bits joined with "|".  Bits
// without a name are rendered in hex.
func (t *Table[T]) Flags(mask T) string {
	if mask == 0 {
		return "0"
	}
	m := uint64(mask)
	parts := make([]string, 0, bits.OnesCount64(m))
	for m != 0 {
		bit := m & -m
		m &^= bit
		if n, ok := t.names[T(bit)]; ok {
			parts = append(parts, t.prefix+n)
		} else {
			parts = append(parts, fmt.Sprintf("0x%x", bit))
		}
	}
	return strings.Join(parts, "|")
}
