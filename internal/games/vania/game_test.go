package vania

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/vania/internal/config"
	"github.com/vovakirdan/vania/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newPlayingGame returns a game past the loading screen with the player
// standing on the spawn surface. Random enemies are disabled.
func newPlayingGame(t *testing.T, seed int64) *Game {
	t.Helper()

	cfg := config.DefaultVaniaConfig()
	cfg.Level.EnemyChance = 0
	cfg.Timing.LoadMS = 0

	g := NewWithConfig(cfg)
	g.Reset(testRuntime(seed))
	g.Step(core.NewInputFrame())
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v after loading, expected playing", g.Phase())
	}
	if !g.level.Spawn().Found {
		t.Skipf("seed %d produced no spawn surface", seed)
	}

	g.Step(core.NewInputFrame())
	if !g.player.grounded {
		t.Fatal("player should be standing on the spawn surface")
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 25:
			inputs[i].Set(core.ActionRight)
		case i%40 < 30:
			inputs[i].Set(core.ActionLeft)
		}
		if i%50 == 10 {
			inputs[i].Set(core.ActionJump)
		}
		if i%17 == 0 {
			inputs[i].Set(core.ActionFire)
		}
		if i%120 > 90 {
			inputs[i].Set(core.ActionRun)
		}
	}

	run := func() Snapshot {
		g := NewWithConfig(config.DefaultVaniaConfig())
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Player != snap2.Player {
		t.Errorf("Determinism failed: player differs. Run1=%v, Run2=%v", snap1.Player, snap2.Player)
	}
	if snap1.LevelW != snap2.LevelW || snap1.Kills != snap2.Kills {
		t.Errorf("Determinism failed: level width %d/%d kills %d/%d", snap1.LevelW, snap2.LevelW, snap1.Kills, snap2.Kills)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := NewWithConfig(config.DefaultVaniaConfig())
	g1.Reset(testRuntime(1))
	g2 := NewWithConfig(config.DefaultVaniaConfig())
	g2.Reset(testRuntime(2))

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() == s2.Hash() {
		t.Error("different seeds should produce different starting states")
	}
}

func TestLoadingPhase(t *testing.T) {
	g := NewWithConfig(config.DefaultVaniaConfig())
	g.Reset(testRuntime(7))

	if g.Phase() != PhaseLoading {
		t.Fatalf("phase after Reset = %v, expected loading", g.Phase())
	}

	total := testRuntime(7).TicksFor(config.DefaultVaniaConfig().Timing.LoadMS)
	for i, n := 0, total-1; i < n; i++ {
		g.Step(core.NewInputFrame())
		p, loading := g.LoadProgress()
		if !loading {
			t.Fatalf("tick %d: left loading early", i)
		}
		if p <= 0 || p >= 1 {
			t.Fatalf("tick %d: progress %v outside (0, 1)", i, p)
		}
	}

	g.Step(core.NewInputFrame())
	if g.Phase() != PhasePlaying {
		t.Errorf("phase after %d ticks = %v, expected playing", total, g.Phase())
	}
	if _, loading := g.LoadProgress(); loading {
		t.Error("LoadProgress should report not loading once playing")
	}
}

func TestPlayerSpawnsOnSurface(t *testing.T) {
	g := newPlayingGame(t, 42)
	sp := g.level.Spawn()
	tile := g.cfg.Physics.Tile

	if got, want := g.player.rect.Bottom(), float64(sp.Y)*tile; got != want {
		t.Errorf("player bottom = %v, expected spawn surface %v", got, want)
	}
	if g.player.rect.X != float64(sp.X)*tile {
		t.Errorf("player x = %v, expected %v", g.player.rect.X, float64(sp.X)*tile)
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		speed   float64
	}{
		{"walk jump", []core.Action{core.ActionJump}, 11},
		{"run jump", []core.Action{core.ActionJump, core.ActionRun}, 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPlayingGame(t, 42)
			y := g.player.rect.Y

			g.Step(frame(tc.actions...))

			want := -tc.speed + g.cfg.Physics.Gravity
			if math.Abs(g.player.vel.Y-want) > 1e-9 {
				t.Errorf("vy = %v, expected %v", g.player.vel.Y, want)
			}
			if g.player.rect.Y >= y {
				t.Errorf("player did not rise: y %v -> %v", y, g.player.rect.Y)
			}
			if g.player.grounded {
				t.Error("player should be airborne after jumping")
			}
		})
	}
}

func TestNoJumpInAir(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.Step(frame(core.ActionJump))
	vy := g.player.vel.Y

	g.Step(frame(core.ActionJump))
	if want := vy + g.cfg.Physics.Gravity; math.Abs(g.player.vel.Y-want) > 1e-9 {
		t.Errorf("second jump in the air changed vy to %v, expected %v", g.player.vel.Y, want)
	}
}

func TestFireStraightAhead(t *testing.T) {
	g := newPlayingGame(t, 42)
	mag := g.cfg.Player.MagCapacity

	g.Step(frame(core.ActionFire))

	if g.player.ammo != mag-1 {
		t.Errorf("ammo = %d, expected %d", g.player.ammo, mag-1)
	}
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	b := g.bullets[0]
	if b.vel.X != g.cfg.Bullet.Speed || b.vel.Y != 0 {
		t.Errorf("bullet velocity = %+v, expected (%v, 0)", b.vel, g.cfg.Bullet.Speed)
	}
}

func TestFireAtAimPoint(t *testing.T) {
	g := newPlayingGame(t, 42)

	in := frame(core.ActionFire)
	in.SetAim(0, hudRows) // top-left corner of the view
	g.Step(in)

	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	v := g.bullets[0].vel
	if math.Abs(v.Len()-g.cfg.Bullet.Speed) > 1e-9 {
		t.Errorf("bullet speed = %v, expected %v", v.Len(), g.cfg.Bullet.Speed)
	}
	if v.X >= 0 || v.Y >= 0 {
		t.Errorf("bullet should fly up and left, velocity %+v", v)
	}
	if g.player.facing != -1 {
		t.Errorf("player should face the aim point, facing = %d", g.player.facing)
	}
}

func TestReload(t *testing.T) {
	g := newPlayingGame(t, 42)
	mag := g.cfg.Player.MagCapacity

	for k := 0; k < 3; k++ {
		g.Step(frame(core.ActionFire))
	}
	if g.player.ammo != mag-3 {
		t.Fatalf("ammo = %d, expected %d", g.player.ammo, mag-3)
	}

	g.Step(frame(core.ActionReload))
	if !g.player.Reloading() {
		t.Fatal("reload should have started")
	}

	// No shooting while reloading
	g.Step(frame(core.ActionFire))
	if g.player.ammo != mag-3 {
		t.Errorf("fired while reloading, ammo = %d", g.player.ammo)
	}

	for k, n := 0, g.reloadTicks(); k < n; k++ {
		g.Step(core.NewInputFrame())
	}
	if g.player.Reloading() {
		t.Error("reload should have finished")
	}
	if g.player.ammo != mag {
		t.Errorf("ammo after reload = %d, expected %d", g.player.ammo, mag)
	}
}

func TestEmptyMagazineStartsReload(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.player.ammo = 0

	g.Step(frame(core.ActionFire))
	if len(g.bullets) != 0 {
		t.Error("empty magazine should not fire")
	}
	if !g.player.Reloading() {
		t.Error("firing an empty magazine should start a reload")
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	g := newPlayingGame(t, 42)
	p := g.player.rect
	tile := g.cfg.Physics.Tile
	g.cfg.Enemy.Speed = 0

	target := &Enemy{rect: core.NewRectF(p.Right()+2, p.Y+tile/2, tile, tile), dir: 1}
	g.enemies = append(g.enemies, target)

	for k := 0; k < 5; k++ {
		g.Step(frame(core.ActionFire))
		if g.kills > 0 {
			break
		}
	}

	if g.kills != 1 {
		t.Fatalf("kills = %d, expected 1", g.kills)
	}
	if slices.Contains(g.enemies, target) {
		t.Error("killed enemy should be removed")
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, expected kills to be reported", g.State().Score)
	}
}

func TestEnemyContactKnockback(t *testing.T) {
	g := newPlayingGame(t, 42)
	p := g.player.rect
	tile := g.cfg.Physics.Tile
	health := g.player.health

	// Enemy overlapping the player from the left
	g.enemies = append(g.enemies, &Enemy{rect: core.NewRectF(p.X-10, p.Bottom()-tile, tile, tile), dir: 1})
	g.Step(core.NewInputFrame())

	if g.player.health != health-1 {
		t.Errorf("health = %d, expected %d", g.player.health, health-1)
	}
	if g.player.rect.X <= p.X {
		t.Errorf("player should be pushed right: x %v -> %v", p.X, g.player.rect.X)
	}
}

func TestDeathByContact(t *testing.T) {
	g := newPlayingGame(t, 42)
	p := g.player.rect
	tile := g.cfg.Physics.Tile
	g.player.health = 1

	g.enemies = append(g.enemies, &Enemy{rect: core.NewRectF(p.X-10, p.Bottom()-tile, tile, tile), dir: 1})
	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver || g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected game over", g.Phase())
	}
}

func TestDeathByFalling(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.player.rect.Y = g.levelBottom() + 1

	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected game over after falling out", g.Phase())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.kills = 3
	g.player.rect.Y = g.levelBottom() + 1
	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected game over", g.Phase())
	}

	// Other input is ignored on the game over screen
	g.Step(frame(core.ActionFire, core.ActionRight))
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected to stay on game over", g.Phase())
	}

	oldLevel := g.level
	g.Step(frame(core.ActionConfirm))
	if g.Phase() != PhaseLoading {
		t.Fatalf("phase = %v, expected loading after restart", g.Phase())
	}
	if g.level == oldLevel {
		t.Error("restart should generate a new level")
	}
	if g.kills != 0 || g.player.health != g.cfg.Player.Health {
		t.Errorf("restart should reset kills and health, got %d and %d", g.kills, g.player.health)
	}
	if g.runs != 2 {
		t.Errorf("runs = %d, expected 2", g.runs)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	for k := 0; k < 10; k++ {
		g.Step(frame(core.ActionRight, core.ActionFire))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused game should not change")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestLevelGrowsAheadOfPlayer(t *testing.T) {
	g := newPlayingGame(t, 42)
	tile := g.cfg.Physics.Tile

	for k := 0; k < 2000; k++ {
		g.Step(frame(core.ActionRight, core.ActionRun, core.ActionJump))
		if g.Phase() != PhasePlaying {
			break
		}
		right := core.FloorDiv(g.player.rect.Right(), tile)
		if need := right + g.cfg.Level.ViewAhead; g.level.Width() < need {
			t.Fatalf("level width %d behind player column %d", g.level.Width(), right)
		}
	}
}

func TestCameraClamped(t *testing.T) {
	g := newPlayingGame(t, 42)
	tile := g.cfg.Physics.Tile

	g.player.rect.X = 0
	g.player.rect.Y = 0
	g.updateCamera()
	if g.camX != 0 || g.camY != 0 {
		t.Errorf("camera = (%v, %v), expected clamped to origin", g.camX, g.camY)
	}

	g.player.rect.Y = g.levelBottom()
	g.updateCamera()
	viewH := float64(g.runtime.ScreenH-hudRows) * tile
	if g.camY+viewH != g.levelBottom() {
		t.Errorf("camera bottom = %v, expected level bottom %v", g.camY+viewH, g.levelBottom())
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultVaniaConfig())
	g.Reset(testRuntime(42))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "generating level") {
		t.Error("loading screen should be shown after Reset")
	}

	g = newPlayingGame(t, 42)
	screen.Clear()
	g.Render(screen)
	if hud := screen.Row(0); !strings.Contains(hud, "ammo 12/12") || !strings.Contains(hud, "kills 0") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("player should be visible")
	}
	if !strings.ContainsRune(screen.String(), TileChar) {
		t.Error("platform tiles should be visible")
	}

	g.player.rect.Y = g.levelBottom() + 1
	g.Step(core.NewInputFrame())
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over screen should be shown")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultVaniaConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	g.Step(core.NewInputFrame())
	if g.loadTick != 0 {
		t.Errorf("simulation advanced on a too-small screen, load tick = %d", g.loadTick)
	}

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if g.loadTick != 1 {
		t.Errorf("load tick after resize = %d, expected 1", g.loadTick)
	}
	if _, loading := g.LoadProgress(); !loading {
		t.Error("game should still be loading")
	}
}
