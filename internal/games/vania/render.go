package vania

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/vania/internal/core"
	"github.com/vovakirdan/vania/internal/physics"
)

// Glyphs
const (
	TileChar   = '█'
	PlayerChar = '@'
	EnemyChar  = '▓'
	BulletChar = '•'
	HeartChar  = '♥'
)

const reloadBarWidth = 6

// Render draws the current phase into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", minScreenW, minScreenH))
		return
	}

	switch g.phase {
	case PhaseLoading:
		g.renderLoading(dst)
	case PhasePlaying:
		g.renderWorld(dst)
		g.renderHUD(dst)
		if g.paused {
			g.renderBanner(dst, "PAUSED", "P to resume")
		}
	case PhaseGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderLoading(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "V A N I A")
	dst.DrawTextCentered(mid, "generating level...")

	// Plain bar; the terminal front end may draw its own on top.
	p, _ := g.LoadProgress()
	w := min(30, dst.Width()-4)
	filled := int(p * float64(w))
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", w-filled)
	dst.DrawTextCentered(mid+2, "["+bar+"]")
}

func (g *Game) renderGameOver(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "GAME OVER")
	dst.DrawTextCentered(mid, fmt.Sprintf("kills: %d", g.kills))
	dst.DrawTextCentered(mid+2, "Enter or R to play again, Q to quit")
}

func (g *Game) renderBanner(dst *core.Screen, title, hint string) {
	w := max(len(title), len(hint)) + 4
	x := (dst.Width() - w) / 2
	y := dst.Height()/2 - 2
	box := core.NewRect(x, y, w, 4)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+2, hint)
}

// renderWorld draws tiles and entities below the HUD, offset by the camera.
func (g *Game) renderWorld(dst *core.Screen) {
	t := g.cfg.Physics.Tile
	cell := t / cellsPerTile

	for sy := hudRows; sy < dst.Height(); sy++ {
		ty := core.FloorDiv(g.camY+float64(sy-hudRows)*t, t)
		for sx, w := 0, dst.Width(); sx < w; sx++ {
			tx := core.FloorDiv(g.camX+float64(sx)*cell, t)
			if g.level.IsSolid(tx, ty) {
				dst.SetColored(sx, sy, TileChar, core.ColorPlatform)
			}
		}
	}

	for _, e := range g.enemies {
		g.drawBody(dst, e.rect, EnemyChar, core.ColorEnemy)
	}
	for _, b := range g.bullets {
		g.drawBody(dst, b.rect, BulletChar, core.ColorBullet)
	}
	g.drawBody(dst, g.player.rect, PlayerChar, core.ColorPlayer)

	if g.player.Reloading() {
		g.renderReloadBar(dst)
	}
}

// drawBody fills the screen cells covered by r.
func (g *Game) drawBody(dst *core.Screen, r core.RectF, ch rune, c core.Color) {
	t := g.cfg.Physics.Tile
	x0, x1 := physics.TileSpan(r.X-g.camX, r.Right()-g.camX, t/cellsPerTile)
	y0, y1 := physics.TileSpan(r.Y-g.camY, r.Bottom()-g.camY, t)
	for y := y0; y <= y1; y++ {
		if y < 0 {
			continue
		}
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y+hudRows, ch, c)
		}
	}
}

func (g *Game) renderReloadBar(dst *core.Screen) {
	t := g.cfg.Physics.Tile
	r := g.player.rect
	cx, _ := r.Center()
	sx := core.FloorDiv(cx-g.camX, t/cellsPerTile) - reloadBarWidth/2
	sy := core.FloorDiv(r.Y-g.camY, t) + hudRows - 1
	if sy < hudRows {
		return
	}

	filled := int(g.player.ReloadProgress() * reloadBarWidth)
	for i := 0; i < reloadBarWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		dst.SetColored(sx+i, sy, ch, core.ColorReload)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	p := g.player
	x := 1
	for i := 0; i < g.cfg.Player.Health; i++ {
		c := core.ColorHeart
		if i >= p.health {
			c = core.ColorDim
		}
		dst.SetColored(x, 0, HeartChar, c)
		x += 2
	}

	ammo := fmt.Sprintf("ammo %d/%d", p.ammo, g.cfg.Player.MagCapacity)
	if p.Reloading() {
		ammo = "reloading..."
	}
	x++
	dst.DrawTextColored(x, 0, ammo, core.ColorUI)
	x += len(ammo) + 2

	kills := fmt.Sprintf("kills %d", g.kills)
	dst.DrawTextColored(x, 0, kills, core.ColorUI)
	x += len(kills) + 2

	if p.running {
		dst.DrawTextColored(x, 0, "RUN", core.ColorReload)
	}
}
