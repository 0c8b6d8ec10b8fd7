// Package raylib shows render passes in a native window.
package raylib

import (
	"context"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/grindlemire/matchgeo"
)

// Config describes the window.
type Config struct {
	Title string
	// Cols and Rows are the window size in cells.
	Cols, Rows int
	// CellWidth and CellHeight are the cell size in pixels.
	CellWidth, CellHeight int
	FPS                   int
	Background            color.RGBA
	Foreground            color.RGBA
}

// DefaultConfig returns an 80x24 window with 10x20 pixel cells.
func DefaultConfig() Config {
	return Config{
		Title:      "matchgeo",
		Cols:       80,
		Rows:       24,
		CellWidth:  10,
		CellHeight: 20,
		FPS:        60,
		Background: color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff},
		Foreground: color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff},
	}
}

// Window is a matchgeo.Surface drawing with raylib. All methods must be
// called from the goroutine that called Open.
type Window struct {
	cfg Config
}

var _ matchgeo.Surface = (*Window)(nil)

// Open creates the native window.
func Open(cfg Config) *Window {
	rl.InitWindow(int32(cfg.Cols*cfg.CellWidth), int32(cfg.Rows*cfg.CellHeight), cfg.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
	return &Window{cfg: cfg}
}

// Close destroys the window.
func (w *Window) Close() {
	rl.CloseWindow()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Bounds returns the window size in cells.
func (w *Window) Bounds() matchgeo.Rect {
	return matchgeo.NewRect(0, 0, w.cfg.Cols, w.cfg.Rows)
}

func (w *Window) color(c matchgeo.Color, fallback color.RGBA) color.RGBA {
	v := c.RGBA(fallback)
	return rl.NewColor(v.R, v.G, v.B, v.A)
}

func (w *Window) rect(r matchgeo.Rect) (x, y, width, height int32) {
	cw, ch := w.cfg.CellWidth, w.cfg.CellHeight
	return int32(r.X * cw), int32(r.Y * ch), int32(r.Width * cw), int32(r.Height * ch)
}

// FillRect paints r with the style's background.
func (w *Window) FillRect(r matchgeo.Rect, style matchgeo.Style) {
	x, y, width, height := w.rect(r)
	rl.DrawRectangle(x, y, width, height, w.color(style.Bg, w.cfg.Background))
}

// StrokeRect draws a border through the middle of r's edge cells.
func (w *Window) StrokeRect(r matchgeo.Rect, border matchgeo.BorderStyle, style matchgeo.Style) {
	if border == matchgeo.BorderNone || r.IsEmpty() {
		return
	}
	if !style.Bg.IsDefault() {
		w.FillRect(r, style)
	}
	x, y, width, height := w.rect(r)
	hx, hy := int32(w.cfg.CellWidth/2), int32(w.cfg.CellHeight/2)
	t := int32(1)
	if border == matchgeo.BorderThick || border == matchgeo.BorderDouble {
		t = 3
	}
	col := w.color(style.Fg, w.cfg.Foreground)
	left, top := x+hx, y+hy
	right, bottom := x+width-hx, y+height-hy
	rl.DrawRectangle(left, top, right-left, t, col)
	rl.DrawRectangle(left, bottom-t, right-left, t, col)
	rl.DrawRectangle(left, top, t, bottom-top, col)
	rl.DrawRectangle(right-t, top, t, bottom-top, col)
}

// DrawText draws one rune per cell starting at (x, y), clipped to clip.
func (w *Window) DrawText(x, y int, text string, style matchgeo.Style, clip matchgeo.Rect) {
	cx, cy, cwidth, cheight := w.rect(clip.Intersect(w.Bounds()))
	if cwidth <= 0 || cheight <= 0 {
		return
	}
	if !style.Bg.IsDefault() {
		w.FillRect(matchgeo.NewRect(x, y, matchgeo.StringWidth(text), 1).Intersect(clip), style)
	}
	rl.BeginScissorMode(cx, cy, cwidth, cheight)
	defer rl.EndScissorMode()

	fontSize := int32(w.cfg.CellHeight * 3 / 4)
	col := w.color(style.Fg, w.cfg.Foreground)
	px, py, _, _ := w.rect(matchgeo.NewRect(x, y, 0, 0))
	py += (int32(w.cfg.CellHeight) - fontSize) / 2
	for _, r := range text {
		rl.DrawText(string(r), px, py, fontSize, col)
		px += int32(matchgeo.RuneWidth(r) * w.cfg.CellWidth)
	}
}

// Present draws one frame showing report.
func (w *Window) Present(report matchgeo.PassReport) {
	rl.BeginDrawing()
	rl.ClearBackground(w.cfg.Background)
	report.Display.Replay(w)
	rl.EndDrawing()
}

// Run drives app from the window's frame loop: queued updates run, a pass
// renders whenever the app is dirty, and the latest pass is presented. It
// returns when the window closes or ctx is done.
func (w *Window) Run(ctx context.Context, app *matchgeo.App) error {
	app.Render()
	for !w.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		app.DrainUpdates()
		if app.Dirty() {
			app.Render()
		}
		w.Present(app.LastReport())
	}
	return nil
}
