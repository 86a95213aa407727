package world

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vania/internal/config"
)

// SpawnPoint is the platform surface tile the player starts on.
type SpawnPoint struct {
	X, Y  int
	Found bool // false when the first chunk had no qualifying surface
}

// Level owns the tile grid and grows it on demand.
type Level struct {
	grid       *Grid
	gen        *Generator
	params     GenParams
	margin     int
	spawnMinX  int
	spawnMaxX  int
	difficulty *config.DifficultyManager
	chunks     int
	pending    []Spawn
	spawn      SpawnPoint
	logger     *log.Logger
}

// Option configures a Level.
type Option func(*Level)

// WithLogger sets the logger used for generation events.
func WithLogger(l *log.Logger) Option {
	return func(lv *Level) {
		if l != nil {
			lv.logger = l
		}
	}
}

// WithDifficulty scales platform density and enemy chance per chunk.
func WithDifficulty(d *config.DifficultyManager) Option {
	return func(lv *Level) {
		lv.difficulty = d
	}
}

// NewLevel creates a level, generates its first chunk and records the spawn point.
// The first chunk's enemies are available through TakeSpawns.
func NewLevel(cfg config.LevelConfig, rng *rand.Rand, opts ...Option) *Level {
	l := &Level{
		grid:      NewGrid(cfg.Height, cfg.ChunkWidth),
		gen:       NewGenerator(rng),
		params:    ParamsFromConfig(cfg),
		margin:    cfg.Margin,
		spawnMinX: cfg.SpawnMinX,
		spawnMaxX: cfg.SpawnMaxX,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.generate()
	l.spawn = l.findSpawn()
	l.logger.Debug("level created",
		"height", cfg.Height,
		"chunk_width", cfg.ChunkWidth,
		"spawn_x", l.spawn.X,
		"spawn_y", l.spawn.Y,
		"spawn_found", l.spawn.Found,
	)
	return l
}

// IsSolid reports whether the tile at (x, y) is solid.
// Anything outside the generated area is not solid.
func (l *Level) IsSolid(x, y int) bool {
	return l.grid.IsSolid(x, y)
}

// Width returns the generated width in tiles.
func (l *Level) Width() int {
	return l.grid.Width()
}

// Height returns the level height in tiles.
func (l *Level) Height() int {
	return l.grid.Height()
}

// Chunks returns how many chunks have been generated.
func (l *Level) Chunks() int {
	return l.chunks
}

// Spawn returns the player's spawn surface.
func (l *Level) Spawn() SpawnPoint {
	return l.spawn
}

// EnsureGenerated generates one more chunk when tileX is within the lookahead
// margin of the generated edge and returns that chunk's enemy spawns.
// It never generates more than one chunk per call.
func (l *Level) EnsureGenerated(tileX int) []Spawn {
	if tileX <= l.grid.Width()-l.margin {
		return nil
	}
	l.generate()
	return l.TakeSpawns()
}

// TakeSpawns returns the spawns of the most recent chunk and forgets them.
// A second call returns nil.
func (l *Level) TakeSpawns() []Spawn {
	spawns := l.pending
	l.pending = nil
	return spawns
}

func (l *Level) generate() {
	p := l.params
	if l.difficulty != nil {
		p.PlatformDensity = l.difficulty.PlatformDensity(p.PlatformDensity, l.chunks)
		p.EnemyChance = l.difficulty.EnemyChance(p.EnemyChance, l.chunks)
	}

	chunk := l.gen.Generate(l.grid.Width(), p)
	l.grid.Extend(chunk.Columns)
	l.chunks++
	l.pending = chunk.Spawns

	l.logger.Debug("chunk generated",
		"start", chunk.Start,
		"width", l.grid.Width(),
		"platforms", len(chunk.Platforms),
		"spawns", len(chunk.Spawns),
		"enemy_chance", p.EnemyChance,
	)
}

// findSpawn scans the platform band row by row for the first surface tile
// inside the spawn column window.
func (l *Level) findSpawn() SpawnPoint {
	maxX := min(l.spawnMaxX, l.grid.Width())
	for y := l.params.BandTop; y <= l.params.BandLow(); y++ {
		for x := l.spawnMinX; x < maxX; x++ {
			if l.grid.IsSolid(x, y) && !l.grid.IsSolid(x, y-1) {
				return SpawnPoint{X: x, Y: y, Found: true}
			}
		}
	}
	return SpawnPoint{}
}
