package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/soli0222/guessing-game/internal/config"
	"github.com/soli0222/guessing-game/internal/game"
	"github.com/soli0222/guessing-game/internal/history"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	lo, hi, err := resolveRange(cfg.Game, flagMin, flagMax, cmd.Flags().Changed("min"), cmd.Flags().Changed("max"))
	if err != nil {
		return err
	}

	session, err := game.NewSession(lo, hi, game.NewSource(flagSeed), cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	res, runErr := session.Run()

	if cfg.History.Enabled && !flagNoHistory {
		if err := recordGame(cfg.History.Path, res); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  failed to save history: %v\n", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("game aborted: %w", runErr)
	}
	return nil
}

func recordGame(path string, res game.Result) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	return store.Record(time.Now(), res)
}
