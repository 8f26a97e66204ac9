// Package tui renders a running simulation in the terminal. The field
// is drawn inside a box border; alive cells are solid blocks, decaying
// cells fade through lighter shades, and q, Escape or Ctrl-C quits.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifelike/internal/core"
)

const (
	horzBoundary      = '─'
	vertBoundary      = '│'
	topLeftCorner     = '┌'
	topRightCorner    = '┐'
	bottomLeftCorner  = '└'
	bottomRightCorner = '┘'
)

// shades orders the cell glyphs from faintest decay to fully alive.
var shades = []rune{'░', '▒', '▓', '█'}

// UI owns the terminal screen and the engine it displays.
type UI struct {
	engine core.Engine
	screen tcell.Screen
	style  tcell.Style
}

// New initializes the terminal for full-screen drawing.
func New(engine core.Engine) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	screen.HideCursor()
	return &UI{
		engine: engine,
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}, nil
}

// Run advances and draws the simulation at the given generations per
// second until the generation cap is reached (0 means unlimited) or the
// user quits. It restores the terminal before returning.
func (u *UI) Run(generations, gps int) error {
	defer u.screen.Fini()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go u.screen.ChannelEvents(events, quit)
	defer close(quit)

	pacer := core.NewFixedStep(gps)
	u.drawFrame(0)

	gen := 0
	for generations <= 0 || gen < generations {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				u.screen.Sync()
			}
		default:
			time.Sleep(time.Millisecond)
		}

		if !pacer.ShouldStep() {
			continue
		}
		u.engine.Step()
		gen++
		u.drawFrame(gen)
	}
	return nil
}

// drawFrame paints the border, the field and the status line.
func (u *UI) drawFrame(gen int) {
	w, h := u.engine.NumX(), u.engine.NumY()

	u.screen.SetContent(0, 0, topLeftCorner, nil, u.style)
	u.screen.SetContent(w+1, 0, topRightCorner, nil, u.style)
	u.screen.SetContent(0, h+1, bottomLeftCorner, nil, u.style)
	u.screen.SetContent(w+1, h+1, bottomRightCorner, nil, u.style)
	for x := 1; x <= w; x++ {
		u.screen.SetContent(x, 0, horzBoundary, nil, u.style)
		u.screen.SetContent(x, h+1, horzBoundary, nil, u.style)
	}
	for y := 1; y <= h; y++ {
		u.screen.SetContent(0, y, vertBoundary, nil, u.style)
		u.screen.SetContent(w+1, y, vertBoundary, nil, u.style)
	}

	cells := u.engine.Cells()
	maxState := u.engine.MaxState()
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			u.screen.SetContent(x+1, y+1, glyph(cells[row+x], maxState), nil, u.style)
		}
	}

	status := fmt.Sprintf(" %s  gen %d  q quits ", u.engine.Name(), gen)
	for i, r := range status {
		u.screen.SetContent(i, h+2, r, nil, u.style)
	}

	u.screen.Show()
}

// glyph maps a cell state onto a shading rune, brightest when alive.
func glyph(state, maxState uint8) rune {
	if state == 0 {
		return ' '
	}
	if state == maxState {
		return shades[len(shades)-1]
	}
	idx := int(state) * (len(shades) - 1) / int(maxState)
	return shades[idx]
}
