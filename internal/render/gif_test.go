package render

import (
	"bytes"
	"image/gif"
	"testing"
	"time"

	"lifelike/internal/core"
	"lifelike/internal/engines/direct"
)

func TestPaletteNormalizesByMaxState(t *testing.T) {
	p := Palette(4)
	if len(p) != 5 {
		t.Fatalf("palette size = %d, want 5", len(p))
	}
	if p[0].R != 0 || p[4].R != 255 {
		t.Fatalf("palette ends = %d..%d, want 0..255", p[0].R, p[4].R)
	}
	for i := 1; i < len(p); i++ {
		if p[i].R <= p[i-1].R {
			t.Fatalf("palette not monotonic at %d: %d <= %d", i, p[i].R, p[i-1].R)
		}
	}

	two := Palette(1)
	if len(two) != 2 || two[1].R != 255 {
		t.Fatalf("two-state palette = %v", two)
	}
}

func TestWriteGIFFrames(t *testing.T) {
	g, err := core.GridFromCells(4, 4, []uint8{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	e, err := direct.New(g, core.ConwayRule(), 0.3)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	frames := 0
	err = WriteGIF(&buf, e, 5, 100*time.Millisecond, 2, func(int) { frames++ })
	if err != nil {
		t.Fatal(err)
	}
	if frames != 5 {
		t.Fatalf("onFrame called %d times, want 5", frames)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Image) != 5 {
		t.Fatalf("decoded %d frames, want 5", len(decoded.Image))
	}
	bounds := decoded.Image[0].Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Fatalf("frame size = %dx%d, want 8x8 (4x4 cells at scale 2)", bounds.Dx(), bounds.Dy())
	}
	// 100ms per frame is 10 hundredths of a second.
	if decoded.Delay[0] != 10 {
		t.Fatalf("frame delay = %d, want 10", decoded.Delay[0])
	}

	// The block is a still life, so the first frame's alive pixel must
	// stay alive in the last frame too.
	first, last := decoded.Image[0], decoded.Image[4]
	if first.ColorIndexAt(2, 2) != 1 || last.ColorIndexAt(2, 2) != 1 {
		t.Fatal("still-life block not present in rendered frames")
	}
}

func TestWriteGIFRejectsZeroFrames(t *testing.T) {
	g, err := core.NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	e, err := direct.New(g, core.ConwayRule(), 0.3)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteGIF(&buf, e, 0, time.Second, 1, nil); err == nil {
		t.Fatal("WriteGIF accepted zero frames")
	}
}
