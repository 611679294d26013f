package rps

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the common cause of every strategy guide decoding failure.
	ErrParse = errors.New("invalid strategy guide")
	// ErrUnknownToken is returned for a column value outside the known sets.
	ErrUnknownToken = fmt.Errorf("%w: unknown shape/outcome token", ErrParse)
	// ErrMalformedLine is returned when a line does not hold exactly two tokens.
	ErrMalformedLine = fmt.Errorf("%w: expected two tokens", ErrParse)
)
