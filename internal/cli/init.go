package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soli0222/guessing-game/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a config file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagConfig
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			return runInit(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		},
	}
}

func runInit(in io.Reader, out io.Writer, configPath string) error {
	scanner := bufio.NewScanner(in)

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(out, "⚠️  Config file already exists: %s\n", configPath)
		fmt.Fprint(out, "Overwrite? (y/N) ")
		answer := ""
		if scanner.Scan() {
			answer = strings.TrimSpace(strings.ToLower(scanner.Text()))
		}
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted")
			return nil
		}
	}

	fmt.Fprintln(out, "📝 Setting up guessing-game")

	fmt.Fprintln(out, "--- Game ---")
	minStr := prompt(scanner, out, "Smallest secret number", strconv.FormatUint(config.DefaultMin, 10))
	maxStr := prompt(scanner, out, "Largest secret number", strconv.FormatUint(config.DefaultMax, 10))

	fmt.Fprintln(out, "\n--- History ---")
	enabledStr := prompt(scanner, out, "Record games (y/n)", "y")
	historyPath := prompt(scanner, out, "History file (empty for default)", "")

	lo, err := strconv.ParseUint(minStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid min %q: %w", minStr, err)
	}
	hi, err := strconv.ParseUint(maxStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid max %q: %w", maxStr, err)
	}
	cfg := config.Config{Game: config.GameConfig{Min: lo, Max: hi}}
	if err := cfg.Validate(); err != nil {
		return err
	}
	enabled := strings.HasPrefix(strings.ToLower(enabledStr), "y")

	content := fmt.Sprintf(`# Game settings
game:
  min: %d
  max: %d

# History settings
history:
  enabled: %t
  path: %q
`, lo, hi, enabled, historyPath)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "\n✅ Config file written: %s\n", configPath)
	return nil
}

func prompt(scanner *bufio.Scanner, out io.Writer, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, defaultVal)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}

	if scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input != "" {
			return input
		}
	}
	return defaultVal
}
