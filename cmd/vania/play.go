package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vania/internal/config"
	"github.com/vovakirdan/vania/internal/core"
	"github.com/vovakirdan/vania/internal/games/vania"
	"github.com/vovakirdan/vania/internal/platform/tui"
	"github.com/vovakirdan/vania/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to vania.

Controls:
  A/D, Left/Right        - Walk
  Shift+A/D, Shift+arrow - Run
  Space/W/Up             - Jump
  F or left click        - Fire (click aims at the cell)
  R                      - Reload, or restart after game over
  Enter                  - Restart after game over
  P/Esc                  - Pause
  ?                      - Toggle help
  Q/Ctrl+C               - Quit

Difficulty options:
  easy   - More health and a bigger magazine, enemies ramp up slowly
  normal - Start at 30% difficulty, progresses to max
  hard   - Less health, small magazine, start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  vania play
  vania play --difficulty hard
  vania play --seed 42 --log-file vania.log --log-level debug
  vania play --config ./my-vania.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "vania"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'vania list' to see available games.")
		os.Exit(1)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagConfig != "" {
		// Fail before taking over the terminal
		if _, err := config.LoadVania(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	vania.SetConfigPath(flagConfig)
	vania.SetDifficultyPreset(flagDifficulty)
	vania.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID, "width", width, "height", height, "fps", flagFPS, "seed", flagSeed)
	runErr := tui.Run(game, cfg, logger)
	if runErr != nil {
		logger.Error("game exited with error", "err", runErr)
	}
	_ = closeLog()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
