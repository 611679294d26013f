// Package strutil holds the string helpers shared by the puzzle solvers.
package strutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no character is common to every searched string.
var ErrNotFound = errors.New("no common character")

// Halves splits s at its midpoint. For odd lengths the middle character goes
// to the second half. Lengths are counted in runes.
func Halves(s string) (string, string) {
	runes := []rune(s)
	mid := len(runes) / 2
	return string(runes[:mid]), string(runes[mid:])
}

// FirstCommonChar scans s from the left and returns the first character that
// also occurs in every one of others.
func FirstCommonChar(s string, others ...string) (string, error) {
	for _, r := range s {
		if containedInAll(r, others) {
			return string(r), nil
		}
	}
	return "", fmt.Errorf("%w: %q against %d other string(s)", ErrNotFound, s, len(others))
}

func containedInAll(r rune, others []string) bool {
	for _, other := range others {
		if !strings.ContainsRune(other, r) {
			return false
		}
	}
	return true
}
