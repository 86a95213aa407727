// Package vania implements the side-scrolling platformer: a player running
// through a procedurally generated level, fighting patrolling enemies.
package vania

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vania/internal/config"
	"github.com/vovakirdan/vania/internal/core"
	"github.com/vovakirdan/vania/internal/physics"
	"github.com/vovakirdan/vania/internal/registry"
	"github.com/vovakirdan/vania/internal/world"
)

// Layout of the terminal view.
const (
	hudRows      = 1 // Rows reserved at the top for the HUD
	cellsPerTile = 2 // Terminal columns per tile; rows map one to one
	minScreenW   = 24
	minScreenH   = 8
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the platformer logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.VaniaConfig
	fixed      *config.VaniaConfig // Used instead of loading when set
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	log        *log.Logger

	phase     Phase
	paused    bool
	tick      int
	loadTick  int
	loadTotal int
	runs      int

	level   *world.Level
	player  *Player
	enemies []*Enemy
	bullets []*Bullet
	kills   int

	camX, camY     float64
	screenTooSmall bool
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.VaniaConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "vania"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Vania"
}

// Reset seeds the RNG from runtime and starts a fresh run at the loading phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("game", g.ID())

	if g.fixed != nil {
		g.cfg = *g.fixed
	} else {
		cfg, err := config.LoadVania(configPath)
		if err != nil {
			g.log.Warn("falling back to default config", "err", err)
			cfg = config.DefaultVaniaConfig()
		}
		if difficultyPreset != "" {
			config.ApplyVaniaPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.phase = PhaseLoading
	g.paused = false
	g.tick = 0
	g.runs = 0
	g.startLoading()
}

// Resize adapts the view to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < minScreenW || h < minScreenH
	if g.player != nil {
		g.updateCamera()
	}
}

// startLoading generates a new level and places the player and its first enemies.
func (g *Game) startLoading() {
	g.level = world.NewLevel(g.cfg.Level, g.rng,
		world.WithLogger(g.log),
		world.WithDifficulty(g.difficulty),
	)
	g.enemies = nil
	g.bullets = nil
	g.kills = 0
	g.player = g.spawnPlayer()
	g.spawnEnemies(g.level.TakeSpawns())

	g.loadTick = 0
	g.loadTotal = g.runtime.TicksFor(g.cfg.Timing.LoadMS)
	g.runs++
	g.updateCamera()
}

func (g *Game) spawnPlayer() *Player {
	t := g.cfg.Physics.Tile
	x, y := t, 5*t
	if sp := g.level.Spawn(); sp.Found {
		x = float64(sp.X) * t
		y = float64(sp.Y)*t - playerHeightTiles*t
	} else {
		g.log.Warn("no spawn surface in first chunk, dropping player from default position")
	}
	return newPlayer(x, y, t, g.cfg.Player.Health, g.cfg.Player.MagCapacity)
}

func (g *Game) spawnEnemies(spawns []world.Spawn) {
	t := g.cfg.Physics.Tile
	for _, s := range spawns {
		g.enemies = append(g.enemies, &Enemy{
			rect: core.NewRectF(float64(s.X)*t+t/4, float64(s.Y)*t, t, t),
			dir:  s.Facing,
		})
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseLoading:
		g.loadTick++
		if g.loadTick >= g.loadTotal {
			g.transition(EventLoaded)
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.tick++
			g.update(in)
		}

	case PhaseGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionReload) {
			g.transition(EventRestart)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) transition(e Event) {
	next := g.phase.Next(e)
	if next == g.phase {
		return
	}
	g.log.Debug("phase change", "from", g.phase, "to", next, "event", e)
	g.phase = next

	switch next {
	case PhaseLoading:
		g.startLoading()
	case PhaseGameOver:
		g.paused = false
		g.log.Info("game over",
			"kills", g.kills,
			"chunks", g.level.Chunks(),
			"ticks", g.tick,
			"run", g.runs,
		)
	}
}

// update runs one simulation tick of the playing phase.
func (g *Game) update(in core.InputFrame) {
	p := g.player
	pc := g.cfg.Player
	t := g.cfg.Physics.Tile

	p.running = in.Has(core.ActionRun)
	speed := pc.WalkSpeed
	if p.running {
		speed *= pc.RunMult
	}
	p.vel.X = 0
	if in.Has(core.ActionLeft) {
		p.vel.X -= speed
		p.facing = -1
	}
	if in.Has(core.ActionRight) {
		p.vel.X += speed
		p.facing = 1
	}
	if in.Has(core.ActionJump) && p.grounded {
		jump := pc.JumpSpeed
		if p.running {
			jump += pc.RunJumpBonus
		}
		p.vel.Y = -jump
	}

	if in.Has(core.ActionReload) && p.ammo < pc.MagCapacity {
		p.startReload(g.reloadTicks())
	}
	if in.Has(core.ActionFire) {
		g.fire(in)
	}
	p.tickReload(pc.MagCapacity)

	p.grounded = physics.Step(p, g.level, t, g.cfg.Physics.Gravity)
	if p.rect.X < 0 {
		p.rect.X = 0
	}

	right := core.FloorDiv(p.rect.Right(), t)
	g.spawnEnemies(g.level.EnsureGenerated(right + g.cfg.Level.ViewAhead))

	g.updateEnemies()
	g.updateBullets()

	if p.health <= 0 || p.rect.Y > g.levelBottom() {
		g.transition(EventDied)
		return
	}
	g.updateCamera()
}

func (g *Game) reloadTicks() int {
	return g.runtime.TicksFor(g.cfg.Player.ReloadMS)
}

func (g *Game) levelBottom() float64 {
	return float64(g.level.Height()) * g.cfg.Physics.Tile
}

// fire shoots toward the aim point, or straight ahead without one.
// An empty magazine starts a reload instead.
func (g *Game) fire(in core.InputFrame) {
	p := g.player
	if p.Reloading() {
		return
	}
	if p.ammo == 0 {
		p.startReload(g.reloadTicks())
		return
	}

	cx, cy := p.rect.Center()
	dir := core.Vec{X: float64(p.facing)}
	if in.HasAim {
		wx, wy := g.screenToWorld(in.AimX, in.AimY)
		if aim := (core.Vec{X: wx - cx, Y: wy - cy}).Normalize(); aim.Len() > 0 {
			dir = aim
		}
	}
	switch {
	case dir.X < 0:
		p.facing = -1
	case dir.X > 0:
		p.facing = 1
	}

	bc := g.cfg.Bullet
	b := &Bullet{
		rect: core.NewRectF(0, 0, bc.Width, bc.Height),
		vel:  dir.Scale(bc.Speed),
	}
	b.rect.SetCenter(cx, cy)
	g.bullets = append(g.bullets, b)
	p.ammo--
}

func (g *Game) updateEnemies() {
	t := g.cfg.Physics.Tile
	bottom := g.levelBottom()

	for _, e := range g.enemies {
		e.dir = physics.Patrol(e, e.dir, g.cfg.Enemy.Speed, g.level, t)
		e.grounded = physics.Step(e, g.level, t, g.cfg.Physics.Gravity)
		if e.rect.Intersects(g.player.rect) {
			g.hurtPlayer(e)
		}
	}

	g.enemies = slices.DeleteFunc(g.enemies, func(e *Enemy) bool {
		return e.rect.Y > bottom
	})
}

// hurtPlayer applies contact damage and pushes the player one knockback
// distance away from e, stopping at walls.
func (g *Game) hurtPlayer(e *Enemy) {
	p := g.player
	p.health--

	pcx, _ := p.rect.Center()
	ecx, _ := e.rect.Center()
	away := float64(-p.facing)
	switch {
	case pcx > ecx:
		away = 1
	case pcx < ecx:
		away = -1
	}

	vy := p.vel.Y
	p.vel = core.Vec{X: away * g.cfg.Player.Knockback}
	physics.Resolve(p, g.level, g.cfg.Physics.Tile)
	p.vel = core.Vec{Y: vy}

	g.log.Debug("player hit", "health", p.health, "tick", g.tick)
}

// updateBullets moves bullets and removes those that hit a tile, left the
// generated level, or killed an enemy.
func (g *Game) updateBullets() {
	t := g.cfg.Physics.Tile
	width, height := g.level.Width(), g.level.Height()

	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.rect.X += b.vel.X
		b.rect.Y += b.vel.Y

		cx, cy := b.rect.Center()
		tx, ty := core.FloorDiv(cx, t), core.FloorDiv(cy, t)
		if tx < 0 || tx >= width || ty < 0 || ty >= height || g.level.IsSolid(tx, ty) {
			continue
		}
		if g.hitEnemy(b) {
			continue
		}
		kept = append(kept, b)
	}
	clear(g.bullets[len(kept):])
	g.bullets = kept
}

// hitEnemy removes the first enemy overlapping b and counts the kill.
func (g *Game) hitEnemy(b *Bullet) bool {
	i := slices.IndexFunc(g.enemies, func(e *Enemy) bool {
		return e.rect.Intersects(b.rect)
	})
	if i < 0 {
		return false
	}
	g.enemies = slices.Delete(g.enemies, i, i+1)
	g.kills++
	return true
}

// updateCamera centres the view on the player, clamped to the generated level.
func (g *Game) updateCamera() {
	t := g.cfg.Physics.Tile
	viewW := float64(g.runtime.ScreenW) / cellsPerTile * t
	viewH := float64(g.runtime.ScreenH-hudRows) * t
	cx, cy := g.player.rect.Center()

	g.camX = core.ClampF(cx-viewW/2, 0, max(0, float64(g.level.Width())*t-viewW))
	g.camY = core.ClampF(cy-viewH/2, 0, max(0, g.levelBottom()-viewH))
}

// screenToWorld maps a terminal cell to the world point at its centre.
func (g *Game) screenToWorld(sx, sy int) (float64, float64) {
	t := g.cfg.Physics.Tile
	wx := g.camX + (float64(sx)+0.5)*t/cellsPerTile
	wy := g.camY + (float64(sy-hudRows)+0.5)*t
	return wx, wy
}

// State returns the current game state. Kills are reported as the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.kills,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// LoadProgress reports the loading screen's progress in [0, 1] and whether
// the game is loading at all.
func (g *Game) LoadProgress() (float64, bool) {
	if g.phase != PhaseLoading || g.loadTotal == 0 {
		return 0, false
	}
	return float64(g.loadTick) / float64(g.loadTotal), true
}

func init() {
	registry.Register("vania", func() registry.Game {
		return New()
	})
}
