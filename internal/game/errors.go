package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInputClosed means the input stream ended before a correct guess.
	ErrInputClosed  = errors.New("input closed before a correct guess")
	ErrInvalidRange = errors.New("invalid range")
	ErrFinished     = errors.New("session already finished")
)

// ParseError is returned when a line is not a non-negative integer.
type ParseError struct {
	Input string
	Err   error
}

// maxEcho caps how much of the rejected input is quoted back.
const maxEcho = 40

func (e *ParseError) Error() string {
	input := e.Input
	if r := []rune(input); len(r) > maxEcho {
		input = string(r[:maxEcho]) + "..."
	}
	return fmt.Sprintf("%q is not a valid number: %v", input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
