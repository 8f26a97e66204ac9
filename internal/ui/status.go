//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status draws a one-line overlay with the engine name and generation
// counter in the top-left corner of the view.
type Status struct {
	face   *basicfont.Face
	shadow color.Color
	ink    color.Color
}

// NewStatus constructs the overlay.
func NewStatus() *Status {
	return &Status{
		face:   basicfont.Face7x13,
		shadow: color.RGBA{A: 0xff},
		ink:    color.RGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff},
	}
}

// Draw renders the status line onto the screen.
func (s *Status) Draw(screen *ebiten.Image, engine string, generation int, paused bool) {
	line := fmt.Sprintf("%s  gen %d", engine, generation)
	if paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, s.face, 5, 14, s.shadow)
	text.Draw(screen, line, s.face, 4, 13, s.ink)
}
