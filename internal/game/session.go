package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Session is one play-through: a secret drawn once and a guess loop over
// a line-oriented input.
type Session struct {
	lo, hi   uint64
	secret   uint64
	reader   *bufio.Reader
	out      io.Writer
	state    State
	attempts int
	invalid  int
}

// Result summarises a session, finished or not.
type Result struct {
	Min           uint64
	Max           uint64
	Secret        uint64
	Attempts      int
	InvalidInputs int
	Finished      bool
}

// NewSession draws the secret from src and prepares a session reading
// guesses from in and writing messages to out.
func NewSession(lo, hi uint64, src Source, in io.Reader, out io.Writer) (*Session, error) {
	secret, err := Draw(src, lo, hi)
	if err != nil {
		return nil, err
	}
	return &Session{
		lo:     lo,
		hi:     hi,
		secret: secret,
		reader: bufio.NewReader(in),
		out:    out,
		state:  AwaitingGuess,
	}, nil
}

// Run loops until a correct guess. If the input ends first, the returned
// error wraps ErrInputClosed and the partial result is still returned.
func (s *Session) Run() (Result, error) {
	fmt.Fprintf(s.out, "Guess the number! (%d-%d)\n", s.lo, s.hi)

	for s.state == AwaitingGuess {
		fmt.Fprint(s.out, "Please input your guess.\n> ")

		line, err := s.reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(s.out)
			if errors.Is(err, io.EOF) {
				return s.Result(), ErrInputClosed
			}
			return s.Result(), fmt.Errorf("%w: %v", ErrInputClosed, err)
		}

		// A final line without a trailing newline still counts; the next
		// read reports EOF.
		if _, err := s.Step(line); err != nil {
			fmt.Fprintf(s.out, "⚠️  %v, please try again\n", err)
		}
	}

	return s.Result(), nil
}

// Step handles a single input line. The Outcome is only meaningful when
// err is nil. A *ParseError leaves the session untouched apart from the
// invalid-input counter.
func (s *Session) Step(line string) (Outcome, error) {
	if s.state == Finished {
		return 0, ErrFinished
	}

	guess, err := ParseGuess(line)
	if err != nil {
		s.invalid++
		return 0, err
	}

	s.attempts++
	fmt.Fprintf(s.out, "You guessed: %d\n", guess)

	outcome := Compare(guess, s.secret)
	switch outcome {
	case TooSmall:
		fmt.Fprintln(s.out, "📉 Your guess is too small!")
	case TooBig:
		fmt.Fprintln(s.out, "📈 Your guess is too big!")
	case Correct:
		s.state = Finished
		fmt.Fprintf(s.out, "🎉 That's correct! You got it in %d %s.\n", s.attempts, plural(s.attempts, "guess", "guesses"))
	}
	return outcome, nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Result() Result {
	return Result{
		Min:           s.lo,
		Max:           s.hi,
		Secret:        s.secret,
		Attempts:      s.attempts,
		InvalidInputs: s.invalid,
		Finished:      s.state == Finished,
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
