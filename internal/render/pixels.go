package render

import "image/color"

// Palette returns maxState+1 grayscale colors indexed by cell state:
// dead is black, alive is white, decaying states fade proportionally.
// Renderers use it to normalize brightness by the rule's alive value.
func Palette(maxState uint8) []color.RGBA {
	p := make([]color.RGBA, int(maxState)+1)
	for i := range p {
		v := uint8(uint16(i) * 255 / uint16(maxState))
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return p
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values beyond the palette clamp to the last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
