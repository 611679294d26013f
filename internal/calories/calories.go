// Package calories groups calorie counts separated by blank lines and ranks
// the resulting group totals.
package calories

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Calories is a non-negative amount of food energy.
type Calories int

// Groups folds lines into per-group totals. Blank lines close the current
// group and open a new one, so leading, trailing or repeated blank lines yield
// groups totalling zero. Totals are returned in input order.
func Groups(lines []string) ([]Calories, error) {
	groups := []Calories{0}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			groups = append(groups, 0)
			continue
		}
		value, err := strconv.Atoi(trimmed)
		if err != nil || value < 0 {
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrParse, line)
		}
		current := &groups[len(groups)-1]
		if value > math.MaxInt-int(*current) {
			return nil, fmt.Errorf("line %d: %w: %q overflows group total", i+1, ErrParse, line)
		}
		*current += Calories(value)
	}
	return groups, nil
}

// Max returns the largest group total.
func Max(groups []Calories) (Calories, error) {
	if len(groups) == 0 {
		return 0, ErrEmptyInput
	}
	return slices.Max(groups), nil
}

// TopSum returns the sum of the k largest group totals. Fewer than k groups
// are summed in full.
func TopSum(groups []Calories, k int) Calories {
	if k <= 0 {
		return 0
	}
	sorted := slices.Clone(groups)
	slices.SortFunc(sorted, func(a, b Calories) int {
		return cmp.Compare(b, a)
	})
	var total Calories
	for _, c := range sorted[:min(k, len(sorted))] {
		total += c
	}
	return total
}
