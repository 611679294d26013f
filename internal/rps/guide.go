package rps

import (
	"fmt"
	"strings"
)

// ParseOpponent decodes the first column: A, B, C.
func ParseOpponent(token string) (Shape, error) {
	switch token {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: opponent %q", ErrUnknownToken, token)
}

// ParseResponseShape decodes the second column as a shape: X, Y, Z.
func ParseResponseShape(token string) (Shape, error) {
	switch token {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: response %q", ErrUnknownToken, token)
}

// ParseResponseOutcome decodes the second column as a desired outcome: X, Y, Z.
func ParseResponseOutcome(token string) (Outcome, error) {
	switch token {
	case "X":
		return Loss, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("%w: outcome %q", ErrUnknownToken, token)
}

// TotalScoreByShape reads the second column as the shape to play and sums the
// round scores.
func TotalScoreByShape(lines []string) (int, error) {
	return totalScore(lines, func(opponent Shape, response string) (Shape, error) {
		return ParseResponseShape(response)
	})
}

// TotalScoreByOutcome reads the second column as the outcome each round must
// have, picks the matching shape and sums the round scores.
func TotalScoreByOutcome(lines []string) (int, error) {
	return totalScore(lines, func(opponent Shape, response string) (Shape, error) {
		want, err := ParseResponseOutcome(response)
		if err != nil {
			return 0, err
		}
		return ShapeFor(opponent, want), nil
	})
}

type responseDecoder func(opponent Shape, response string) (Shape, error)

func totalScore(lines []string, decode responseDecoder) (int, error) {
	total := 0
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return 0, fmt.Errorf("line %d: %w: %q", i+1, ErrMalformedLine, line)
		}
		opponent, err := ParseOpponent(fields[0])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		player, err := decode(opponent, fields[1])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += ScoreRound(opponent, player)
	}
	return total, nil
}
