package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // status line + separator
	cellWidth = 2 // terminal cells are roughly twice as tall as wide
)

// glyph is how one board cell is drawn: two runes and a color.
type glyph struct {
	left, right rune
	color       core.Color
}

var glyphs = map[CellKind]glyph{
	CellEmpty:   {'·', ' ', core.ColorGray},
	CellHead:    {'█', '█', core.ColorBrightGreen},
	CellBody:    {'▓', '▓', core.ColorGreen},
	CellFood:    {'●', ' ', core.ColorRed},
	CellPowerUp: {'★', ' ', core.ColorBrightYellow},
}

// MinScreenSize returns the smallest screen that fits a board of the given size.
func MinScreenSize(boardSize int) (w, h int) {
	return boardSize*cellWidth + 2, boardSize + 2 + hudHeight
}

// Render draws snap onto dst: HUD, bordered board and any status banner.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	renderHUD(dst, snap)

	minW, minH := MinScreenSize(snap.BoardSize)
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	frame := core.NewRect((dst.Width()-minW)/2, hudHeight, minW, snap.BoardSize+2)
	renderBoard(dst, frame, snap)

	switch {
	case snap.Over():
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d  -  press R to restart", snap.Score))
	case snap.Paused():
		renderOverlay(dst, "Paused", "Press Space to continue")
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake  Score: %d  Level: %d  High: %d  Speed: %dms",
		snap.Score, snap.Level, snap.HighScore, snap.TickInterval.Milliseconds())
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)

	if snap.EffectActive() {
		power := fmt.Sprintf(" ★ %.1fs", snap.EffectLeft.Seconds())
		dst.DrawText(len(hud), 0, power, core.ColorBrightYellow)
	}

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the border and every board cell inside frame.
func renderBoard(dst *core.Screen, frame core.Rect, snap Snapshot) {
	border := core.ColorDefault
	if snap.EffectActive() {
		border = core.ColorBrightYellow
	}
	dst.DrawBox(frame, border)

	for y, row := range snap.Grid() {
		for x, kind := range row {
			g := glyphs[kind]
			sx := frame.X + 1 + x*cellWidth
			sy := frame.Y + 1 + y
			dst.SetColor(sx, sy, g.left, g.color)
			dst.SetColor(sx+1, sy, g.right, g.color)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(width, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
