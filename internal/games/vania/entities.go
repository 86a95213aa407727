package vania

import (
	"github.com/vovakirdan/vania/internal/core"
	"github.com/vovakirdan/vania/internal/physics"
)

// Player body size relative to the tile.
const (
	playerWidthTiles  = 0.75
	playerHeightTiles = 1.5
)

// Player is the controlled character.
type Player struct {
	rect core.RectF
	vel  core.Vec

	facing   int // -1 left, +1 right
	grounded bool
	running  bool

	health      int
	ammo        int
	reloadLeft  int // Ticks until the magazine refills, 0 when not reloading
	reloadTotal int
}

func newPlayer(x, y, tile float64, health, mag int) *Player {
	return &Player{
		rect:   core.NewRectF(x, y, tile*playerWidthTiles, tile*playerHeightTiles),
		facing: 1,
		health: health,
		ammo:   mag,
	}
}

func (p *Player) Bounds() *core.RectF { return &p.rect }
func (p *Player) Velocity() *core.Vec { return &p.vel }

// Reloading reports whether a reload is in progress.
func (p *Player) Reloading() bool {
	return p.reloadLeft > 0
}

// ReloadProgress returns how far the current reload has got, in [0, 1].
func (p *Player) ReloadProgress() float64 {
	if p.reloadTotal == 0 || p.reloadLeft == 0 {
		return 0
	}
	return 1 - float64(p.reloadLeft)/float64(p.reloadTotal)
}

func (p *Player) startReload(ticks int) {
	if p.Reloading() {
		return
	}
	p.reloadLeft = ticks
	p.reloadTotal = ticks
}

// tickReload advances the reload timer and refills the magazine when it ends.
func (p *Player) tickReload(mag int) {
	if p.reloadLeft == 0 {
		return
	}
	p.reloadLeft--
	if p.reloadLeft == 0 {
		p.ammo = mag
	}
}

// Enemy walks back and forth along a platform.
type Enemy struct {
	rect     core.RectF
	vel      core.Vec
	dir      int
	grounded bool
}

func (e *Enemy) Bounds() *core.RectF { return &e.rect }
func (e *Enemy) Velocity() *core.Vec { return &e.vel }

// Bullet flies in a straight line until it hits a tile or an enemy.
type Bullet struct {
	rect core.RectF
	vel  core.Vec
}

func (b *Bullet) Bounds() *core.RectF { return &b.rect }
func (b *Bullet) Velocity() *core.Vec { return &b.vel }

var (
	_ physics.Body = (*Player)(nil)
	_ physics.Body = (*Enemy)(nil)
	_ physics.Body = (*Bullet)(nil)
)
