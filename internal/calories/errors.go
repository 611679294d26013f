package calories

import "errors"

var (
	// ErrParse is returned when a non-blank line is not a non-negative integer.
	ErrParse = errors.New("calorie line is not a non-negative integer")
	// ErrEmptyInput is returned when an aggregate is requested over no groups.
	ErrEmptyInput = errors.New("no calorie groups")
)
