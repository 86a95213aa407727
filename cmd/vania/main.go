// vania is a procedurally generated side-scrolling platformer for the terminal.
//
// Usage:
//
//	vania play [game]     - Play (default: vania)
//	vania list            - List available games
//	vania gen             - Print a generated level as ASCII
//	vania config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--log-file <path>     - Write logs to a file (the game owns the terminal)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/vania/internal/games/vania"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vania",
	Short: "Vania - a procedural platformer in your terminal",
	Long: `Vania is a side-scrolling platformer played in the terminal. The level
is generated chunk by chunk as you run to the right; enemies patrol the
platforms and you fight them with a pistol.

Available commands:
  play     - Play the game
  list     - Show all available games
  gen      - Print a generated level without playing
  config   - Print the default configuration

Examples:
  vania play
  vania play --difficulty hard
  vania gen --seed 42 --chunks 2
  vania config > ~/.vania/configs/vania.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger selected by the global flags. Without a log
// file, logs are discarded. The returned close function is never nil.
func newLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "vania",
		Level:           level,
	})
	return logger, closeFn, nil
}
