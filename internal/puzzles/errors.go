package puzzles

import "errors"

var (
	// ErrUnknownDay is returned when no puzzle is registered for the requested day.
	ErrUnknownDay = errors.New("no puzzle registered for day")
	// ErrSampleMismatch is returned when a solver disagrees with its sample answer.
	ErrSampleMismatch = errors.New("sample answer mismatch")
	// ErrDuplicateDay is returned when two puzzles claim the same day.
	ErrDuplicateDay = errors.New("puzzle already registered for day")
)
