package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/mveld/canvasforge/internal/engine"
	"github.com/mveld/canvasforge/internal/log"
)

// cellScale maps one terminal cell to this many world units at zoom 1.
// Terminal cells are tall, so the vertical scale is doubled to keep
// squares roughly square on screen.
const (
	cellScaleX = 10.0
	cellScaleY = 20.0
)

// ui renders the engine's visible set into a tcell screen and feeds
// key events back into engine operations.
type ui struct {
	screen tcell.Screen
	eng    *engine.Engine
	logger *log.Logger
	quit   chan struct{}
}

func newUI(eng *engine.Engine, logger *log.Logger) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &ui{
		screen: screen,
		eng:    eng,
		logger: logger.WithComponent("ui"),
		quit:   make(chan struct{}),
	}, nil
}

// Quit asks the event loop to exit. Safe to call from any goroutine.
func (u *ui) Quit() {
	select {
	case <-u.quit:
	default:
		close(u.quit)
	}
	// Wake up PollEvent.
	u.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (u *ui) Shutdown() {
	u.screen.Fini()
}

// Run drives the event loop until quit.
func (u *ui) Run() error {
	u.syncCanvasSize()
	u.draw()

	for {
		select {
		case <-u.quit:
			return nil
		default:
		}

		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			u.syncCanvasSize()
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return nil
			}
		case *tcell.EventInterrupt:
			continue
		}
		u.draw()
	}
}

// syncCanvasSize tells the engine the world-unit size of the viewport
// so culling matches what the terminal can show.
func (u *ui) syncCanvasSize() {
	cols, rows := u.screen.Size()
	if rows > 1 {
		rows-- // status bar
	}
	u.eng.UpdateCanvasSize(float64(cols)*cellScaleX, float64(rows)*cellScaleY)
}

// handleKey applies one key event. Returns true to exit.
func (u *ui) handleKey(ev *tcell.EventKey) bool {
	const panStep = 40.0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		u.eng.Pan(-panStep, 0)
	case tcell.KeyRight:
		u.eng.Pan(panStep, 0)
	case tcell.KeyUp:
		u.eng.Pan(0, -panStep)
	case tcell.KeyDown:
		u.eng.Pan(0, panStep)
	case tcell.KeyRune:
		return u.handleRune(ev.Rune())
	}
	return false
}

func (u *ui) handleRune(r rune) bool {
	cx := u.eng.CanvasWidth() / 2
	cy := u.eng.CanvasHeight() / 2

	switch r {
	case 'q':
		return true
	case '+', '=':
		u.eng.ZoomAt(cx, cy, 0.25)
	case '-', '_':
		u.eng.ZoomAt(cx, cy, -0.25)
	case 'a':
		wx := u.eng.CameraX() + cx/u.eng.CameraZoom()
		wy := u.eng.CameraY() + cy/u.eng.CameraZoom()
		id, err := u.eng.AddObject(wx, wy, 60, 60, 0, 0)
		if err != nil {
			u.logger.Warn("add object failed: %v", err)
			return false
		}
		u.logger.Debug("added object %d", id)
	case 'd':
		if n := u.eng.ObjectCount(); n > 0 {
			id := u.eng.ObjectIDAt(n - 1)
			if err := u.eng.DeleteObject(id); err != nil {
				u.logger.Warn("delete failed: %v", err)
			}
		}
	case 'u':
		u.eng.Undo()
	case 'r':
		u.eng.Redo()
	case 'g':
		u.eng.SetGridSnap(!u.eng.GridSnap())
	}
	return false
}

// draw refreshes the viewport cache and repaints the whole screen.
func (u *ui) draw() {
	u.screen.Clear()

	n := u.eng.UpdateViewport()
	cols, rows := u.screen.Size()
	boxRows := rows - 1

	style := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	for i := 0; i < n; i++ {
		x0 := int(u.eng.TransformX(i) / cellScaleX)
		y0 := int(u.eng.TransformY(i) / cellScaleY)
		x1 := x0 + int(u.eng.TransformWidth(i)/cellScaleX)
		y1 := y0 + int(u.eng.TransformHeight(i)/cellScaleY)

		for y := y0; y <= y1 && y < boxRows; y++ {
			for x := x0; x <= x1 && x < cols; x++ {
				if x < 0 || y < 0 {
					continue
				}
				ch := '·'
				if x == x0 || x == x1 || y == y0 || y == y1 {
					ch = '█'
				}
				u.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}

	u.drawStatus(cols, rows-1, n)
	u.screen.Show()
}

// drawStatus paints the bottom status bar.
func (u *ui) drawStatus(cols, row, visible int) {
	if row < 0 {
		return
	}

	snap := "off"
	if u.eng.GridSnap() {
		snap = "on"
	}
	status := fmt.Sprintf(" objects %d  visible %d  zoom %.2f  cam (%.0f, %.0f)  grid %g/%s  undo %d  redo %d  v%d ",
		u.eng.ObjectCount(), visible,
		u.eng.CameraZoom(), u.eng.CameraX(), u.eng.CameraY(),
		u.eng.GridSize(), snap,
		u.eng.UndoCount(), u.eng.RedoCount(),
		u.eng.StateVersion())

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		w := runewidth.RuneWidth(r)
		if x+w > cols {
			break
		}
		u.screen.SetContent(x, row, r, nil, style)
		x += w
	}
	for ; x < cols; x++ {
		u.screen.SetContent(x, row, ' ', nil, style)
	}
}
