// Package ranges answers containment questions about closed integer intervals.
package ranges

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned when a textual range is not of the form "lo-hi".
var ErrParse = errors.New("malformed range")

// Range is the closed interval [Lo, Hi]. A range with Lo > Hi contains nothing.
type Range struct {
	Lo int
	Hi int
}

// Contains reports whether v lies within r, bounds included.
func (r Range) Contains(v int) bool {
	return r.Lo <= v && v <= r.Hi
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

// ContainsAll reports whether both endpoints of inner lie within outer.
func ContainsAll(outer, inner Range) bool {
	return outer.Contains(inner.Lo) && outer.Contains(inner.Hi)
}

// ContainsAny reports whether a contains either endpoint of b.
//
// The check is one-directional: ContainsAny(1-10, 0-20) is false even though
// the ranges overlap. Callers after a symmetric overlap test call it both ways.
func ContainsAny(a, b Range) bool {
	return a.Contains(b.Lo) || a.Contains(b.Hi)
}

// Parse decodes the "lo-hi" form, e.g. "2-4".
func Parse(raw string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(raw), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrParse, raw)
	}
	loVal, err := strconv.Atoi(lo)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: invalid lower bound", ErrParse, raw)
	}
	hiVal, err := strconv.Atoi(hi)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: invalid upper bound", ErrParse, raw)
	}
	return Range{Lo: loVal, Hi: hiVal}, nil
}
