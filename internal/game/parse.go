package game

import (
	"errors"
	"strconv"
	"strings"
)

// ParseGuess trims the line and parses it as a base-10 unsigned integer.
func ParseGuess(line string) (uint64, error) {
	text := strings.TrimSpace(line)
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Input: text, Err: err}
	}
	return n, nil
}
