package game

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestSession(t *testing.T, input string) (*Session, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	// min 1 + offset 41 = secret 42
	s, err := NewSession(1, 100, fixedSource(41), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s, &out
}

func TestSession_Run(t *testing.T) {
	t.Parallel()

	s, out := newTestSession(t, "7\nabc\n99\n42\n")
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	text := out.String()
	for _, want := range []string{"too small", "not a valid number", `"abc"`, "too big", "correct"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if order := []string{"too small", "not a valid number", "too big", "correct"}; !inOrder(text, order) {
		t.Errorf("messages out of order, want %v:\n%s", order, text)
	}

	if !res.Finished {
		t.Error("Finished = false, want true")
	}
	if res.Secret != 42 {
		t.Errorf("Secret = %d, want 42", res.Secret)
	}
	if res.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", res.Attempts)
	}
	if res.InvalidInputs != 1 {
		t.Errorf("InvalidInputs = %d, want 1", res.InvalidInputs)
	}
	if s.State() != Finished {
		t.Errorf("State() = %v, want finished", s.State())
	}
}

func TestSession_RunStopsAtCorrect(t *testing.T) {
	t.Parallel()

	s, out := newTestSession(t, "42\n7\n")
	if _, err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), "too small") {
		t.Fatalf("input after the correct guess was consumed:\n%s", out.String())
	}
}

func TestSession_RunOversizedLine(t *testing.T) {
	t.Parallel()

	s, out := newTestSession(t, strings.Repeat("x", 70000)+"\n42\n")
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Finished {
		t.Fatal("Finished = false, want true")
	}
	if res.InvalidInputs != 1 {
		t.Fatalf("InvalidInputs = %d, want 1", res.InvalidInputs)
	}
	if res.Attempts != 1 {
		t.Fatalf("Attempts = %d, want 1", res.Attempts)
	}
	if !strings.Contains(out.String(), "not a valid number") {
		t.Fatalf("output missing parse error:\n%s", out.String())
	}
	if out.Len() > 2000 {
		t.Fatalf("rejected input echoed in full (%d bytes of output)", out.Len())
	}
}

func TestSession_RunLastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, "7\n42")
	res, err := s.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Finished || res.Attempts != 2 {
		t.Fatalf("result = %+v, want finished after 2 attempts", res)
	}
}

func TestSession_RunInputClosed(t *testing.T) {
	t.Parallel()

	t.Run("immediately", func(t *testing.T) {
		s, out := newTestSession(t, "")
		res, err := s.Run()
		if !errors.Is(err, ErrInputClosed) {
			t.Fatalf("Run() error = %v, want ErrInputClosed", err)
		}
		if res.Finished || res.Attempts != 0 {
			t.Fatalf("result = %+v, want no outcome", res)
		}
		for _, msg := range []string{"too small", "too big", "correct"} {
			if strings.Contains(out.String(), msg) {
				t.Fatalf("unexpected %q in output:\n%s", msg, out.String())
			}
		}
	})

	t.Run("after wrong guesses", func(t *testing.T) {
		s, _ := newTestSession(t, "1\nfoo\n")
		res, err := s.Run()
		if !errors.Is(err, ErrInputClosed) {
			t.Fatalf("Run() error = %v, want ErrInputClosed", err)
		}
		if res.Attempts != 1 || res.InvalidInputs != 1 {
			t.Fatalf("result = %+v, want 1 attempt and 1 invalid input", res)
		}
	})

	t.Run("read error", func(t *testing.T) {
		boom := errors.New("boom")
		s, err := NewSession(1, 100, fixedSource(41), io.MultiReader(strings.NewReader("5\n"), errReader{boom}), io.Discard)
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		_, err = s.Run()
		if !errors.Is(err, ErrInputClosed) {
			t.Fatalf("Run() error = %v, want ErrInputClosed", err)
		}
		if !strings.Contains(err.Error(), "boom") {
			t.Fatalf("Run() error = %v, want cause included", err)
		}
	})
}

func TestSession_Step(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, "")

	for _, line := range []string{"abc", "-1", "", "  "} {
		if _, err := s.Step(line); err == nil {
			t.Fatalf("Step(%q) error = nil, want parse error", line)
		}
		if s.State() != AwaitingGuess {
			t.Fatalf("Step(%q) changed state to %v", line, s.State())
		}
	}
	if got := s.Result().Attempts; got != 0 {
		t.Fatalf("parse failures counted as attempts: %d", got)
	}

	for _, tc := range []struct {
		line string
		want Outcome
	}{
		{"1", TooSmall},
		{"41", TooSmall},
		{"43", TooBig},
		{"1000", TooBig},
		{" 42 ", Correct},
	} {
		got, err := s.Step(tc.line)
		if err != nil {
			t.Fatalf("Step(%q) error = %v", tc.line, err)
		}
		if got != tc.want {
			t.Fatalf("Step(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}

	if s.State() != Finished {
		t.Fatalf("State() = %v, want finished", s.State())
	}
	outcome, err := s.Step("42")
	if !errors.Is(err, ErrFinished) {
		t.Fatalf("Step() after finish error = %v, want ErrFinished", err)
	}
	if outcome == Correct {
		t.Fatalf("Step() after finish reported %v, want no outcome", outcome)
	}
	if got := s.Result().Attempts; got != 5 {
		t.Fatalf("Attempts = %d after finish, want 5", got)
	}
}

func TestSession_SecretFixed(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s, err := NewSession(1, 5, NewSource(99), strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	secret := s.Result().Secret
	for _, line := range []string{"1", "2", "3", "4", "5"} {
		if s.State() == Finished {
			break
		}
		_, _ = s.Step(line)
		if s.Result().Secret != secret {
			t.Fatalf("secret changed from %d to %d", secret, s.Result().Secret)
		}
	}
	if s.State() != Finished {
		t.Fatalf("exhausting [1, 5] did not finish the session")
	}
}

func TestNewSession_InvalidRange(t *testing.T) {
	t.Parallel()

	if _, err := NewSession(10, 1, NewSource(1), strings.NewReader(""), io.Discard); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("NewSession(10, 1) error = %v, want ErrInvalidRange", err)
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func inOrder(text string, parts []string) bool {
	idx := 0
	for _, p := range parts {
		i := strings.Index(text[idx:], p)
		if i < 0 {
			return false
		}
		idx += i + len(p)
	}
	return true
}
