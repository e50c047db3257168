package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/soli0222/guessing-game/internal/config"
	"github.com/soli0222/guessing-game/internal/history"
)

func newStatsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for recent games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			return runStats(cmd.OutOrStdout(), store, days, time.Now())
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "number of days to include")
	return cmd
}

func runStats(out io.Writer, store *history.Store, days int, now time.Time) error {
	if days <= 0 {
		days = 7
	}

	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -days+1)
	items, err := store.Since(since)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(out, "📊 No games in the last %d days\n", days)
		return nil
	}

	total := aggregate(items)

	fmt.Fprintf(out, "📊 Last %d days (%s to %s)\n", days, since.Format("2006-01-02"), now.Format("2006-01-02"))
	fmt.Fprintf(out, "Games: %d\n", total.runs)
	fmt.Fprintf(out, "Won: %d (%.1f%%)\n", total.won, safeRate(total.won, total.runs)*100)
	fmt.Fprintf(out, "Average guesses per win: %.2f\n", safeRate(total.wonAttempts, total.won))
	fmt.Fprintf(out, "Invalid inputs per game: %.2f\n", safeRate(total.invalid, total.runs))
	if total.won > 0 {
		fmt.Fprintf(out, "Best game: %d %s\n", total.best, pluralize(total.best, "guess", "guesses"))
	}

	fmt.Fprintln(out, "\nBy day:")
	daily := groupByDate(items)
	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		agg := daily[d]
		fmt.Fprintf(out, "- %s: games=%d, won=%d, guesses/win=%.1f, invalid=%.1f\n",
			d,
			agg.runs,
			agg.won,
			safeRate(agg.wonAttempts, agg.won),
			safeRate(agg.invalid, agg.runs),
		)
	}

	return nil
}

type statsAgg struct {
	runs        int
	won         int
	wonAttempts int
	invalid     int
	best        int
}

func (a *statsAgg) add(item history.Record) {
	a.runs++
	a.invalid += item.InvalidInputs
	if !item.Completed {
		return
	}
	a.won++
	a.wonAttempts += item.Attempts
	if a.best == 0 || item.Attempts < a.best {
		a.best = item.Attempts
	}
}

func aggregate(items []history.Record) statsAgg {
	var agg statsAgg
	for _, item := range items {
		agg.add(item)
	}
	return agg
}

func groupByDate(items []history.Record) map[string]statsAgg {
	m := make(map[string]statsAgg)
	for _, item := range items {
		agg := m[item.Date]
		agg.add(item)
		m[item.Date] = agg
	}
	return m
}

func safeRate(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
