package history

import (
	"bufio"
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/soli0222/guessing-game/internal/game"
)

const dateLayout = "2006-01-02"

// Record is one finished or abandoned game.
type Record struct {
	Date          string `json:"date"`
	RecordedAt    string `json:"recorded_at"`
	Min           uint64 `json:"min"`
	Max           uint64 `json:"max"`
	Secret        uint64 `json:"secret"`
	Attempts      int    `json:"attempts"`
	InvalidInputs int    `json:"invalid_inputs"`
	Completed     bool   `json:"completed"`
}

// Store is an append-only JSON Lines file of game records.
type Store struct {
	path string
}

// Open returns a store backed by path, or by
// ~/.config/guessing-game/history.jsonl when path is empty. The file is
// created lazily on the first write.
func Open(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve history path: %w", err)
		}
		path = filepath.Join(home, ".config", "guessing-game", "history.jsonl")
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Record stores the outcome of a session played at the given time.
func (s *Store) Record(at time.Time, res game.Result) error {
	return s.Append(Record{
		Date:          at.Format(dateLayout),
		RecordedAt:    at.Format(time.RFC3339),
		Min:           res.Min,
		Max:           res.Max,
		Secret:        res.Secret,
		Attempts:      res.Attempts,
		InvalidInputs: res.InvalidInputs,
		Completed:     res.Finished,
	})
}

func (s *Store) Append(rec Record) error {
	if rec.Date == "" || rec.RecordedAt == "" {
		now := time.Now()
		if rec.Date == "" {
			rec.Date = now.Format(dateLayout)
		}
		if rec.RecordedAt == "" {
			rec.RecordedAt = now.Format(time.RFC3339)
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	// Encode writes the trailing newline that delimits records.
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write history record: %w", err)
	}
	return f.Close()
}

// Since returns the games played on or after the calendar day of since,
// oldest first. Lines that do not decode are ignored and a store that was
// never written to is empty.
func (s *Store) Since(since time.Time) ([]Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer func() { _ = f.Close() }()

	cutoff := since.Format(dateLayout)
	var games []Record

	lines := bufio.NewScanner(f)
	for lines.Scan() {
		var rec Record
		if json.Unmarshal(lines.Bytes(), &rec) != nil {
			continue
		}
		// Dates share one fixed-width layout, so string order is day order.
		if rec.Date != "" && rec.Date < cutoff {
			continue
		}
		games = append(games, rec)
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	slices.SortStableFunc(games, func(a, b Record) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.RecordedAt, b.RecordedAt))
	})
	return games, nil
}
