package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soli0222/guessing-game/internal/config"
)

var (
	flagConfig    string
	flagMin       uint64
	flagMax       uint64
	flagSeed      uint64
	flagNoHistory bool
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "guessing-game",
		Short:         "Guess the secret number from the command line",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlay,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/guessing-game/config.yaml)")
	cmd.Flags().Uint64Var(&flagMin, "min", config.DefaultMin, "smallest possible secret number")
	cmd.Flags().Uint64Var(&flagMax, "max", config.DefaultMax, "largest possible secret number")
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed (0 = seed from the OS)")
	cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "do not record this game")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// resolveRange lets explicitly set flags win over the config file.
func resolveRange(cfg config.GameConfig, flagLo, flagHi uint64, loSet, hiSet bool) (uint64, uint64, error) {
	lo, hi := cfg.Min, cfg.Max
	if loSet {
		lo = flagLo
	}
	if hiSet {
		hi = flagHi
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("invalid range: min %d is greater than max %d", lo, hi)
	}
	return lo, hi, nil
}
