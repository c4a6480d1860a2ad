package rush

import (
	"fmt"
	"math"

	"github.com/vovakirdan/carrot-rush/internal/core"
)

// Visual characters for rendering
const (
	PlayerSprite    = "(•)"
	ObstacleChar    = '●'
	CollectibleChar = '▼'
	BonusChar       = '◎'
	BackgroundChar  = '·'
	RestartLabel    = "[ Restart ]"
)

// Render draws the current game state to the screen.
// The field is scaled to every row but the last, which holds the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	if g.mode == ModeIntro {
		g.drawIntro(dst)
		return
	}

	g.drawBackground(dst)

	for _, e := range g.pools[KindCollectible].Active() {
		g.drawEntity(dst, e, CollectibleChar, core.ColorOrange)
	}
	for _, e := range g.pools[KindBonus].Active() {
		g.drawEntity(dst, e, BonusChar, core.ColorBrightMagenta)
	}
	for _, e := range g.pools[KindObstacle].Active() {
		g.drawEntity(dst, e, ObstacleChar, core.ColorBrown)
	}

	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case g.mode == ModeGameOver:
		g.drawGameOver(dst)
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// toCell maps field coordinates to a screen cell.
func (g *Game) toCell(dst *core.Screen, x, y float64) (int, int) {
	col := int(math.Floor(x * float64(dst.Width()) / g.cfg.Field.Width))
	row := int(math.Floor(y * float64(dst.Height()-1) / g.cfg.Field.Height))
	return col, row
}

func (g *Game) drawBackground(dst *core.Screen) {
	rows := dst.Height() - 1
	cellH := g.cfg.Field.Height / float64(rows)
	shift := int(g.scroll / cellH)

	for y := range rows {
		for x := range dst.Width() {
			if backgroundDot(x, y-shift) {
				dst.SetCell(x, y, BackgroundChar, core.ColorDarkGreen)
			}
		}
	}
}

// backgroundDot is a fixed sparse pattern that tiles the field.
func backgroundDot(x, y int) bool {
	return (x*7+y*13)%23 == 0
}

func (g *Game) drawEntity(dst *core.Screen, e Entity, r rune, c core.Color) {
	col, row := g.toCell(dst, e.X, e.Y)
	if row >= dst.Height()-1 {
		return
	}
	dst.SetCell(col, row, r, c)
}

func (g *Game) drawPlayer(dst *core.Screen) {
	col, row := g.toCell(dst, g.player.X, g.player.Y)
	color := core.ColorBrightWhite
	if g.run.tinted {
		color = core.ColorRed
	}
	dst.DrawText(col-1, min(row, dst.Height()-2), PlayerSprite, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	y := dst.Height() - 1
	dst.DrawText(1, y, fmt.Sprintf("Score: %d", g.run.score), core.ColorWhite)

	lives := fmt.Sprintf("Lives: %d", g.run.lives)
	dst.DrawText(dst.Width()-len(lives)-1, y, lives, core.ColorWhite)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	f := g.cfg.Field
	cx, cy := restartButton(f).Center()
	_, row := g.toCell(dst, cx, cy)

	dst.DrawTextCentered(row-2, " GAME OVER ", core.ColorBrightRed)
	if g.run.victory {
		dst.DrawTextCentered(row-1, " You won! ", core.ColorBrightYellow)
	}
	dst.DrawTextCentered(row, RestartLabel, core.ColorBrightWhite)
	dst.DrawTextCentered(row+1, fmt.Sprintf(" Score: %d  |  R or click to restart ", g.run.score), core.ColorGray)
}

func (g *Game) drawIntro(dst *core.Screen) {
	lines := []string{
		g.variant.Title,
		"",
		"Left/Right or hold the mouse to move",
		"Catch ▼ carrots, grab ◎ cookies, dodge ●",
		"",
		"Press Enter or click to start",
	}

	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightGreen
		}
		dst.DrawTextCentered(top+i, line, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
