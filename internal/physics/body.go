// Package physics moves rectangles through a tile map: gravity, axis-separated
// collision against solid tiles, and the enemy edge-detecting patrol.
package physics

import (
	"math"

	"github.com/vovakirdan/vania/internal/core"
)

// TileMap answers whether a tile is solid. Out-of-range tiles must report false.
type TileMap interface {
	IsSolid(x, y int) bool
}

// Body is anything that moves through the level. The returned pointers are
// owned by the body; physics functions mutate them in place and keep nothing.
type Body interface {
	Bounds() *core.RectF
	Velocity() *core.Vec
}

// TileSpan returns the inclusive range of tile indices covered by [lo, hi).
func TileSpan(lo, hi, tile float64) (first, last int) {
	first = int(math.Floor(lo / tile))
	last = int(math.Ceil(hi/tile)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// TileRect returns the world rectangle of tile (x, y).
func TileRect(x, y int, tile float64) core.RectF {
	return core.NewRectF(float64(x)*tile, float64(y)*tile, tile, tile)
}
