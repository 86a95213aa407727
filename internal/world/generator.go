package world

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/vania/internal/config"
)

// GenParams configures one chunk generation.
type GenParams struct {
	Height          int
	ChunkWidth      int
	PlatformDensity float64
	EnemyChance     float64
	MinPlatform     int
	MaxPlatform     int
	BandTop         int // Highest row a platform may use
	BandBottom      int // Rows kept free at the bottom; lowest platform row is Height-BandBottom
}

// ParamsFromConfig builds generator parameters from the level config.
func ParamsFromConfig(cfg config.LevelConfig) GenParams {
	return GenParams{
		Height:          cfg.Height,
		ChunkWidth:      cfg.ChunkWidth,
		PlatformDensity: cfg.PlatformDensity,
		EnemyChance:     cfg.EnemyChance,
		MinPlatform:     cfg.MinPlatform,
		MaxPlatform:     cfg.MaxPlatform,
		BandTop:         cfg.BandTop,
		BandBottom:      cfg.BandBottom,
	}
}

// PlatformCount returns how many platforms a chunk receives.
func (p GenParams) PlatformCount() int {
	return int(math.Floor(float64(p.ChunkWidth) * p.PlatformDensity))
}

// BandLow returns the lowest row a platform may occupy.
func (p GenParams) BandLow() int {
	return p.Height - p.BandBottom
}

// Generator produces chunks from an injected random source.
// The same seed and parameters always produce the same chunks.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds the chunk whose first column is start.
func (g *Generator) Generate(start int, p GenParams) Chunk {
	chunk := Chunk{
		Start:   start,
		Columns: make([][]Cell, p.ChunkWidth),
	}
	for i := range chunk.Columns {
		chunk.Columns[i] = make([]Cell, p.Height)
	}

	g.placePlatforms(&chunk, p)
	g.placeSpawns(&chunk, p)
	return chunk
}

// placePlatforms writes random horizontal runs. Runs may overlap; an
// overlapping write is simply Solid again.
func (g *Generator) placePlatforms(chunk *Chunk, p GenParams) {
	count := p.PlatformCount()
	chunk.Platforms = make([]Platform, 0, count)

	for n := 0; n < count; n++ {
		length := p.MinPlatform + g.rng.Intn(p.MaxPlatform-p.MinPlatform+1)
		// offset in [1, ChunkWidth-length-1] keeps the run off both chunk edges
		offset := 1 + g.rng.Intn(p.ChunkWidth-length-1)
		row := p.BandTop + g.rng.Intn(p.BandLow()-p.BandTop+1)

		for i := 0; i < length; i++ {
			chunk.Columns[offset+i][row] = Solid
		}
		chunk.Platforms = append(chunk.Platforms, Platform{
			X:   chunk.Start + offset,
			Y:   row,
			Len: length,
		})
	}
}

// placeSpawns rolls for one enemy per column, on the topmost platform surface.
func (g *Generator) placeSpawns(chunk *Chunk, p GenParams) {
	for i, col := range chunk.Columns {
		y := surfaceRow(col)
		if y < 0 {
			continue
		}
		if g.rng.Float64() < p.EnemyChance {
			facing := 1
			if g.rng.Intn(2) == 0 {
				facing = -1
			}
			chunk.Spawns = append(chunk.Spawns, Spawn{
				X:      chunk.Start + i,
				Y:      y - 1,
				Facing: facing,
			})
		}
	}
}

// surfaceRow returns the first row from the top that is solid with empty
// space above it, or -1. The row above row 0 counts as empty.
func surfaceRow(col []Cell) int {
	for y, c := range col {
		if c == Solid && (y == 0 || col[y-1] == Empty) {
			return y
		}
	}
	return -1
}
