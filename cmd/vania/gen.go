package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vania/internal/config"
	"github.com/vovakirdan/vania/internal/world"
)

// Glyphs used by the level dump
const (
	genSolid  = '█'
	genEmpty  = '·'
	genEnemy  = 'E'
	genPlayer = '@'
)

var (
	flagGenChunks int
	flagGenConfig string
	flagGenFull   bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a generated level as ASCII",
	Long: `Generates a level with the current config and seed and prints it.

Legend:
  █  solid tile
  E  enemy spawn
  @  player spawn

The output is cropped to the terminal width unless --full is given.

Examples:
  vania gen --seed 42
  vania gen --seed 42 --chunks 3 --full > level.txt`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenChunks, "chunks", 1, "Number of chunks to generate")
	genCmd.Flags().StringVar(&flagGenConfig, "config", "", "Path to custom game config YAML")
	genCmd.Flags().BoolVar(&flagGenFull, "full", false, "Do not crop to the terminal width")
}

func runGen(cmd *cobra.Command, args []string) error {
	if flagGenChunks < 1 {
		return fmt.Errorf("--chunks must be at least 1, got %d", flagGenChunks)
	}

	cfg, err := config.LoadVania(flagGenConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- level generation
	lvl, spawns := generateLevel(cfg, rng, flagGenChunks, world.WithLogger(logger))

	cols := lvl.Width()
	if !flagGenFull {
		if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && w < cols {
			cols = w
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d, %d chunk(s), %dx%d tiles, %d enemy spawn(s)\n",
		seed, lvl.Chunks(), lvl.Width(), lvl.Height(), len(spawns))
	return renderLevel(out, lvl, spawns, cols)
}

// generateLevel builds a level with the given number of chunks and collects
// every chunk's enemy spawns.
func generateLevel(cfg config.VaniaConfig, rng *rand.Rand, chunks int, opts ...world.Option) (*world.Level, []world.Spawn) {
	lvl := world.NewLevel(cfg.Level, rng, opts...)
	spawns := lvl.TakeSpawns()
	for lvl.Chunks() < chunks {
		spawns = append(spawns, lvl.EnsureGenerated(lvl.Width()+1)...)
	}
	return lvl, spawns
}

// renderLevel writes the first cols columns of lvl, one text row per tile row.
func renderLevel(w io.Writer, lvl *world.Level, spawns []world.Spawn, cols int) error {
	type point struct{ x, y int }
	marks := make(map[point]rune, len(spawns)+1)
	for _, s := range spawns {
		marks[point{s.X, s.Y}] = genEnemy
	}
	if sp := lvl.Spawn(); sp.Found {
		marks[point{sp.X, sp.Y - 1}] = genPlayer
	}

	bw := bufio.NewWriter(w)
	for y, h := 0, lvl.Height(); y < h; y++ {
		for x, n := 0, min(cols, lvl.Width()); x < n; x++ {
			r := genEmpty
			if lvl.IsSolid(x, y) {
				r = genSolid
			} else if m, ok := marks[point{x, y}]; ok {
				r = m
			}
			bw.WriteRune(r) //nolint:errcheck // Checked by Flush
		}
		bw.WriteByte('\n') //nolint:errcheck // Checked by Flush
	}
	return bw.Flush()
}
