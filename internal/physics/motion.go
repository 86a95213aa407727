package physics

import "github.com/vovakirdan/vania/internal/core"

// ApplyGravity accelerates b downward. It is applied every tick, grounded or
// not; the resolver cancels it when the body rests on a tile.
func ApplyGravity(b Body, gravity float64) {
	b.Velocity().Y += gravity
}

// Patrol sets a walking body's horizontal velocity. It probes the tile one
// tile-width ahead of the body's centre, in the row just below its feet; when
// that tile is not solid the direction is reversed before moving.
// It returns the direction to keep for the next tick.
func Patrol(b Body, dir int, speed float64, tiles TileMap, tile float64) int {
	r := b.Bounds()
	cx, _ := r.Center()

	aheadX := core.FloorDiv(cx+float64(dir)*tile, tile)
	belowY := core.FloorDiv(r.Bottom()+1, tile)
	if !tiles.IsSolid(aheadX, belowY) {
		dir = -dir
	}

	b.Velocity().X = float64(dir) * speed
	return dir
}

// Step runs one tick of the motion model for a body whose horizontal velocity
// has already been set: gravity, then collision. It returns the grounded flag.
func Step(b Body, tiles TileMap, tile, gravity float64) bool {
	ApplyGravity(b, gravity)
	return Resolve(b, tiles, tile)
}
