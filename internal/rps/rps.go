// Package rps scores Rock Paper Scissors strategy guides.
//
// A guide holds one round per line: the opponent's shape (A, B, C) followed by
// a response token (X, Y, Z). The response is read either as the shape to play
// or as the outcome the round has to end with.
package rps

// Shape is a hand shape. Its value is the points it scores when played.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

// Points returns the score for playing s.
func (s Shape) Points() int {
	return int(s)
}

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// Beats returns the shape s defeats.
func (s Shape) Beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// BeatenBy returns the shape that defeats s.
func (s Shape) BeatenBy() Shape {
	return s.Beats().Beats()
}

// Outcome is the result of a round from the player's point of view. Its value
// is the points it scores.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Points returns the score for the outcome.
func (o Outcome) Points() int {
	return int(o)
}

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// OutcomeOf returns how a round ends for player against opponent.
func OutcomeOf(player, opponent Shape) Outcome {
	switch {
	case player == opponent:
		return Draw
	case player.Beats() == opponent:
		return Win
	default:
		return Loss
	}
}

// ScoreRound returns the player's score for one round.
func ScoreRound(opponent, player Shape) int {
	return player.Points() + OutcomeOf(player, opponent).Points()
}

// ShapeFor returns the shape that makes a round against opponent end with want.
func ShapeFor(opponent Shape, want Outcome) Shape {
	switch want {
	case Win:
		return opponent.BeatenBy()
	case Loss:
		return opponent.Beats()
	default:
		return opponent
	}
}
