package puzzles

import "github.com/eugenenazirov/puzzles/internal/rps"

// rockPaperScissors scores an encrypted strategy guide, first reading the
// second column as a shape and then as the outcome the round must have.
func rockPaperScissors() Puzzle {
	return Puzzle{
		Day:    2,
		Name:   "Rock Paper Scissors",
		Part1:  rps.TotalScoreByShape,
		Part2:  rps.TotalScoreByOutcome,
		Sample: []string{"A Y", "B X", "C Z"},
		Want:   Answer{Part1: 15, Part2: 12},
	}
}
