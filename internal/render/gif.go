package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"time"

	"lifelike/internal/core"
)

// WriteGIF renders frames generations of the engine into an animated
// GIF, advancing the engine once per frame after drawing it. The delay
// applies per frame; scale is the pixel size of one cell. onFrame, when
// non-nil, is called after each frame is captured.
func WriteGIF(w io.Writer, e core.Engine, frames int, delay time.Duration, scale int, onFrame func(frame int)) error {
	if frames < 1 {
		return fmt.Errorf("gif: need at least one frame, got %d", frames)
	}
	if scale < 1 {
		scale = 1
	}

	rgba := Palette(e.MaxState())
	palette := make(color.Palette, len(rgba))
	for i, c := range rgba {
		palette[i] = c
	}

	// GIF delays are in hundredths of a second.
	delayCS := int(delay / (10 * time.Millisecond))
	if delayCS < 1 {
		delayCS = 1
	}

	bounds := image.Rect(0, 0, e.NumX()*scale, e.NumY()*scale)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}

	for frame := 0; frame < frames; frame++ {
		img := image.NewPaletted(bounds, palette)
		drawCells(img, e.Cells(), e.NumX(), scale)
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delayCS)
		if onFrame != nil {
			onFrame(frame)
		}
		e.Step()
	}

	return gif.EncodeAll(w, anim)
}

// drawCells writes cell states as palette indices; states map one to one
// onto the grayscale palette built from MaxState.
func drawCells(img *image.Paletted, cells []uint8, w, scale int) {
	last := uint8(len(img.Palette) - 1)
	for i, c := range cells {
		if c > last {
			c = last
		}
		x := (i % w) * scale
		y := (i / w) * scale
		for dy := 0; dy < scale; dy++ {
			row := img.PixOffset(x, y+dy)
			for dx := 0; dx < scale; dx++ {
				img.Pix[row+dx] = c
			}
		}
	}
}
