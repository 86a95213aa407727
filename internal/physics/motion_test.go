package physics_test

import (
	"testing"

	"github.com/vovakirdan/vania/internal/core"
	"github.com/vovakirdan/vania/internal/physics"
	"github.com/vovakirdan/vania/internal/world"
)

const (
	tile    = 32.0
	gravity = 0.35
)

type body struct {
	r core.RectF
	v core.Vec
}

func (b *body) Bounds() *core.RectF { return &b.r }
func (b *body) Velocity() *core.Vec { return &b.v }

// platformGrid builds a grid of the given height holding a single platform.
func platformGrid(height, width, row, startX, length int) *world.Grid {
	cols := make([][]world.Cell, width)
	for x := range cols {
		cols[x] = make([]world.Cell, height)
		if x >= startX && x < startX+length {
			cols[x][row] = world.Solid
		}
	}
	g := world.NewGrid(height, width)
	g.Extend(cols)
	return g
}

func TestFallingBodyComesToRest(t *testing.T) {
	grid := platformGrid(30, 40, 10, 20, 6)
	b := &body{r: core.NewRectF(20*tile, 8*tile, tile, tile)}

	landed := -1
	for tick := 0; tick < 200; tick++ {
		if physics.Step(b, grid, tile, gravity) {
			landed = tick
			break
		}
	}
	if landed < 0 {
		t.Fatal("body never landed on the platform")
	}
	if b.r.Bottom() != 10*tile {
		t.Fatalf("bottom = %v, expected %v", b.r.Bottom(), 10*tile)
	}

	// Stationary on the platform: grounded on every following tick
	for tick := 0; tick < 30; tick++ {
		if !physics.Step(b, grid, tile, gravity) {
			t.Fatalf("tick %d after landing: not grounded", tick)
		}
		if b.r.Bottom() != 10*tile {
			t.Fatalf("tick %d after landing: bottom drifted to %v", tick, b.r.Bottom())
		}
	}
}

func TestPatrolReversesAtEdge(t *testing.T) {
	// Platform covers columns 20..25 at row 10, i.e. x in [640, 832).
	grid := platformGrid(30, 40, 10, 20, 6)
	e := &body{r: core.NewRectF(784, 10*tile-tile, tile, tile)}

	dir := physics.Patrol(e, 1, 2, grid, tile)
	if dir != -1 {
		t.Fatalf("enemy at the right edge should turn around, dir = %d", dir)
	}
	if e.v.X != -2 {
		t.Fatalf("vx = %v, expected -2 after reversing", e.v.X)
	}

	// The next probe looks back over the platform: no second reversal
	if dir = physics.Patrol(e, dir, 2, grid, tile); dir != -1 {
		t.Errorf("enemy reversed twice in a row, dir = %d", dir)
	}
}

func TestPatrolNeverWalksOff(t *testing.T) {
	grid := platformGrid(30, 40, 10, 20, 6)
	e := &body{r: core.NewRectF(700, 10*tile-tile, tile, tile)}
	dir := 1

	reversals := 0
	for tick := 0; tick < 1000; tick++ {
		next := physics.Patrol(e, dir, 2, grid, tile)
		if next != dir {
			reversals++
		}
		dir = next

		if !physics.Step(e, grid, tile, gravity) {
			t.Fatalf("tick %d: enemy lost its footing at x=%v", tick, e.r.X)
		}
		cx, _ := e.r.Center()
		if cx < 20*tile || cx >= 26*tile {
			t.Fatalf("tick %d: enemy centre %v left the platform", tick, cx)
		}
	}
	if reversals == 0 {
		t.Error("enemy should bounce between the platform edges")
	}
}

func TestPatrolKeepsDirectionOnSolidGround(t *testing.T) {
	grid := platformGrid(30, 40, 10, 0, 40)
	e := &body{r: core.NewRectF(300, 10*tile-tile, tile, tile)}

	for _, dir := range []int{-1, 1} {
		if got := physics.Patrol(e, dir, 2, grid, tile); got != dir {
			t.Errorf("Patrol(dir=%d) on open ground = %d", dir, got)
		}
		if e.v.X != float64(dir)*2 {
			t.Errorf("vx = %v, expected %v", e.v.X, float64(dir)*2)
		}
	}
}
