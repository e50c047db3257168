package game

// Outcome is the result of comparing a guess to the secret number.
type Outcome int

const (
	TooSmall Outcome = iota
	TooBig
	Correct
)

func (o Outcome) String() string {
	switch o {
	case TooSmall:
		return "too_small"
	case TooBig:
		return "too_big"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Compare reports how guess relates to secret.
func Compare(guess, secret uint64) Outcome {
	switch {
	case guess < secret:
		return TooSmall
	case guess > secret:
		return TooBig
	default:
		return Correct
	}
}

// State is the session lifecycle state.
type State int

const (
	AwaitingGuess State = iota
	Finished
)

func (s State) String() string {
	if s == Finished {
		return "finished"
	}
	return "awaiting_guess"
}
