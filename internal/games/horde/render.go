package horde

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/entity"
	"github.com/vovakirdan/horde/internal/level"
	"github.com/vovakirdan/horde/internal/spawn"
	"github.com/vovakirdan/horde/internal/world"
)

// Visual characters for rendering
const (
	GrassChar  = '▀'
	DirtChar   = '█'
	BushChar   = '♣'
	FlagChar   = '⚑'
	PlayerChar = '█'
	ZombieChar = '▓'
	HealthChar = '+'
	AmmoChar   = '≡'
	BulletChar = '-'
)

const healthBarWidth = 10

// viewport maps world units onto terminal cells.
type viewport struct {
	worldW, worldH int
	cols, rows     int
}

func (v viewport) col(x int) int { return floorDiv(x*v.cols, v.worldW) }
func (v viewport) row(y int) int { return floorDiv(y*v.rows, v.worldH) }

// cells returns the screen rectangle covering r. Every non-empty world
// rectangle covers at least one cell.
func (v viewport) cells(r core.Rect) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()-1), v.row(r.Bottom()-1)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.driver == nil {
		g.renderError(dst)
		return
	}

	w := g.driver.World()
	ww, wh := w.ScreenSize()
	vp := viewport{worldW: ww, worldH: wh, cols: dst.Width(), rows: dst.Height()}

	for _, b := range w.Blocks {
		drawTile(dst, vp, b.Tile, b.Box)
	}
	w.Entities.Each(func(e world.Entity) { drawEntity(dst, vp, e) })
	w.Hostiles.Each(func(e world.Entity) { drawEntity(dst, vp, e) })
	w.Players.Each(func(e world.Entity) { drawEntity(dst, vp, e) })

	g.renderHUD(dst)

	switch {
	case g.state.GameOver:
		g.renderGameOver(dst)
	case g.state.Paused:
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
}

func drawTile(dst *core.Screen, vp viewport, kind level.BlockKind, box core.Rect) {
	cells := vp.cells(box)
	switch kind {
	case level.KindGrassMiddle:
		dst.FillRect(cells, GrassChar, core.ColorBrightGreen)
	case level.KindDirtMiddle:
		dst.FillRect(cells, DirtChar, core.ColorBrown)
	case level.KindBush:
		// Bushes sit in the bottom row of their tile.
		dst.FillRect(core.NewRect(cells.X, cells.Bottom()-1, cells.W, 1), BushChar, core.ColorGreen)
	case level.KindFlag:
		dst.SetColor(cells.X, cells.Bottom()-1, FlagChar, core.ColorRed)
	}
}

func drawEntity(dst *core.Screen, vp viewport, e world.Entity) {
	switch v := e.(type) {
	case *world.Prop:
		drawTile(dst, vp, v.Tile, v.Box)
	case *entity.Player:
		c := core.ColorCyan
		if v.Dead() {
			c = core.ColorGray
		}
		dst.FillRect(vp.cells(*v.Rect()), PlayerChar, c)
	case *entity.Zombie:
		dst.FillRect(vp.cells(*v.Rect()), ZombieChar, core.ColorMagenta)
	case *entity.Pickup:
		if v.PickupKind() == spawn.PickupHealth {
			dst.FillRect(vp.cells(*v.Rect()), HealthChar, core.ColorBrightRed)
		} else {
			dst.FillRect(vp.cells(*v.Rect()), AmmoChar, core.ColorBrightYellow)
		}
	case *entity.Bullet:
		r := vp.cells(*v.Rect())
		dst.SetColor(r.X, r.Y, BulletChar, core.ColorYellow)
	}
}

// renderHUD draws the health bar, score, high score and ammo on the top
// row and the current message below it.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.driver.Player()

	filled := 0
	if p.MaxHealth() > 0 {
		filled = p.Health() * healthBarWidth / p.MaxHealth()
	}
	dst.DrawTextColor(1, 0, "HP ", core.ColorWhite)
	dst.DrawTextColor(4, 0, strings.Repeat("█", filled), core.ColorGreen)
	dst.DrawTextColor(4+filled, 0, strings.Repeat("█", healthBarWidth-filled), core.ColorRed)

	scoreText := fmt.Sprintf("%d", g.state.Score)
	dst.DrawTextCentered(0, scoreText, core.ColorBrightWhite)

	right := fmt.Sprintf("HI %d  AMMO %d/%d ", g.state.HighScore, p.Clip(), p.Ammo())
	hiColor := core.ColorWhite
	if g.state.NewHigh {
		hiColor = core.ColorBrightYellow
	}
	dst.DrawTextColor(dst.Width()-len(right), 0, right, hiColor)

	if msg := g.driver.Message(); msg != "" {
		dst.DrawTextCentered(1, msg, core.ColorBrightYellow)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	cy := dst.Height() / 2
	box := core.NewRect(dst.Width()/2-16, cy-3, 32, 7)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)
	dst.DrawTextCentered(cy-1, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(cy, fmt.Sprintf("Score: %d", g.state.Score), core.ColorWhite)
	if g.state.NewHigh {
		dst.DrawTextCentered(cy+1, "New high score!", core.ColorBrightYellow)
	}
	dst.DrawTextCentered(cy+2, "R restart  Q quit", core.ColorGray)
}

func (g *Game) renderError(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, "Level could not start", core.ColorBrightRed)
	if g.err != nil {
		dst.DrawTextCentered(cy, g.err.Error(), core.ColorWhite)
	}
	dst.DrawTextCentered(cy+2, "Q quit", core.ColorGray)
}
