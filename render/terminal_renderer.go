// Package render draws the game world, HUD and menu overlay to a tcell screen.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/engine"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen   tcell.Screen
	palette  Palette
	buffer   *RenderBuffer
	viewport Viewport
}

// NewTerminalRenderer creates a renderer for a width x height screen
func NewTerminalRenderer(screen tcell.Screen, palette Palette, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		palette:  palette,
		buffer:   NewRenderBuffer(width, height),
		viewport: Viewport{Cols: width, Rows: height},
	}
}

// Resize adapts the renderer to new terminal dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.buffer.Resize(width, height)
	r.viewport = Viewport{Cols: width, Rows: height}
}

// Buffer exposes the last composed frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buffer
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	now := ctx.Clock.Now()
	r.Compose(ctx, now)
	r.buffer.Flush(r.screen, r.palette)
	r.screen.Show()
}

// Compose draws the frame for game time now into the buffer without touching the screen
func (r *TerminalRenderer) Compose(ctx *engine.GameContext, now time.Time) {
	r.buffer.Clear(RgbBackground)

	r.drawBricks(ctx)
	r.drawGems(ctx)
	r.drawSkater(ctx)
	r.drawSparks(ctx, now)
	r.drawHUD(ctx)

	switch {
	case ctx.IsPaused.Load():
		r.buffer.Dim(constants.MenuDimFactor)
		r.drawCentered(r.viewport.Rows/2, constants.MenuMessagePaused, RgbPaused)
	case ctx.State.Menu.Visible:
		r.drawMenu(ctx.State.Menu, now)
	}
}

// drawBricks fills each section's cells with a top edge and a seam on its left side
func (r *TerminalRenderer) drawBricks(ctx *engine.GameContext) {
	q := ctx.World.BrickFilter.Query()
	for q.Next() {
		pos, size, _, _ := q.Get()
		x0, y0, x1, y1 := r.viewport.CellRect(*pos, *size)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				switch {
				case y == y0:
					r.buffer.Set(x, y, '▀', RgbBrickTop, RgbBrickFace)
				case x == x0:
					r.buffer.Set(x, y, '│', RgbBrickSeam, RgbBrickFace)
				default:
					r.buffer.Set(x, y, ' ', RgbBrickFace, RgbBrickFace)
				}
			}
		}
	}
}

// drawGems draws one glyph per gem cell
func (r *TerminalRenderer) drawGems(ctx *engine.GameContext) {
	q := ctx.World.GemFilter.Query()
	for q.Next() {
		pos, size, _, _ := q.Get()
		x0, y0, x1, y1 := r.viewport.CellRect(*pos, *size)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				glyph, fg := '◆', RgbGem
				if x == x0 {
					glyph, fg = '◇', RgbGemShine
				}
				r.buffer.SetFgOnly(x, y, glyph, fg)
			}
		}
	}
}

// drawSkater draws the 3x3 sprite with its feet on the skater's bottom edge
func (r *TerminalRenderer) drawSkater(ctx *engine.GameContext) {
	e, ok := ctx.World.Skater()
	if !ok {
		return
	}
	pos, size, body, _, _ := ctx.World.Skaters.Get(e)

	col, feetRow := r.viewport.ToCell(pos.X, size.Bottom(*pos)+constants.UnitsPerRow/2)
	sprite := skaterSprites[PoseFor(*body)]
	top := feetRow - len(sprite) + 1

	for dy, line := range sprite {
		dx := -1
		for _, ch := range line {
			if ch != ' ' {
				r.buffer.SetFgOnly(col+dx, top+dy, ch, skaterColor(ch))
			}
			dx++
		}
	}
}

// drawSparks draws particles fading from hot to cool over their lifetime
func (r *TerminalRenderer) drawSparks(ctx *engine.GameContext, now time.Time) {
	q := ctx.World.SparkFilter.Query()
	for q.Next() {
		pos, spark := q.Get()
		x, y := r.viewport.ToCell(pos.X, pos.Y)
		fg := RgbSparkHot.Blend(RgbSparkCool, spark.Progress(now))
		r.buffer.SetFgOnly(x, y, spark.Rune, fg)
	}
}

// drawHUD draws the score at the top left and the high score at the top right
func (r *TerminalRenderer) drawHUD(ctx *engine.GameContext) {
	score := formatScore(ctx.State.Score)
	high := formatScore(ctx.State.HighScore)

	x := constants.HUDMarginX
	r.buffer.Text(x, 0, constants.ScoreTitle, RgbHUDTitle)
	r.buffer.Text(x, 1, score, RgbHUDValue)

	titleX := r.viewport.Cols - constants.HUDMarginX - len(constants.HighScoreTitle)
	valueX := r.viewport.Cols - constants.HUDMarginX - len(high)
	r.buffer.Text(titleX, 0, constants.HighScoreTitle, RgbHUDTitle)
	r.buffer.Text(valueX, 1, high, RgbHUDValue)
}

// drawMenu dims the scene, then slides the message in from the left and the score from the right
func (r *TerminalRenderer) drawMenu(menu engine.MenuState, now time.Time) {
	r.buffer.Dim(constants.MenuDimFactor)

	progress := SlideProgress(now.Sub(menu.ShownAt), constants.MenuSlideDuration)
	row := r.viewport.Rows/2 - 1

	msgLen := len([]rune(menu.Message))
	target := (r.viewport.Cols - msgLen) / 2
	r.buffer.Text(slide(-msgLen, target, progress), row, menu.Message, RgbMenuMessage)

	if menu.HasScore {
		line := "score: " + formatScore(menu.Score)
		target := (r.viewport.Cols - len(line)) / 2
		r.buffer.Text(slide(r.viewport.Cols, target, progress), row+1, line, RgbMenuScore)
	}

	if progress >= 1 {
		r.drawCentered(row+3, constants.MenuHint, RgbMenuHint)
	}
}

// drawCentered writes s horizontally centered on row
func (r *TerminalRenderer) drawCentered(row int, s string, fg RGB) {
	x := (r.viewport.Cols - len([]rune(s))) / 2
	r.buffer.Text(max(x, 0), row, s, fg)
}

// SlideProgress returns the eased completion in [0,1] of a slide elapsed into duration
func SlideProgress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(duration)
	// Ease out
	return 1 - (1-t)*(1-t)
}

// slide interpolates a column from start to target
func slide(start, target int, progress float64) int {
	return start + int(float64(target-start)*progress)
}

// formatScore zero-pads a score to the HUD width
func formatScore(score int) string {
	return fmt.Sprintf("%0*d", constants.ScoreDigits, score)
}
