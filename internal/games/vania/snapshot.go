package vania

import "math"

// Snapshot captures the simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick    uint64
	Phase   int
	Kills   int
	Health  int
	Ammo    int
	Chunks  int
	LevelW  int
	Facing  int
	Player  [4]float64 // X, Y, VX, VY
	Enemies []float64  // X, Y, Dir per enemy
	Bullets []float64  // X, Y, VX, VY per bullet
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	enemies := make([]float64, 0, len(g.enemies)*3)
	for _, e := range g.enemies {
		enemies = append(enemies, e.rect.X, e.rect.Y, float64(e.dir))
	}
	bullets := make([]float64, 0, len(g.bullets)*4)
	for _, b := range g.bullets {
		bullets = append(bullets, b.rect.X, b.rect.Y, b.vel.X, b.vel.Y)
	}

	return Snapshot{
		Tick:    uint64(g.tick), //#nosec G115 -- tick count is always positive
		Phase:   int(g.phase),
		Kills:   g.kills,
		Health:  p.health,
		Ammo:    p.ammo,
		Chunks:  g.level.Chunks(),
		LevelW:  g.level.Width(),
		Facing:  p.facing,
		Player:  [4]float64{p.rect.X, p.rect.Y, p.vel.X, p.vel.Y},
		Enemies: enemies,
		Bullets: bullets,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ammo)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Chunks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelW) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Facing) //#nosec G115 -- hash computation

	for _, v := range snap.Player {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Enemies {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.Bullets {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
