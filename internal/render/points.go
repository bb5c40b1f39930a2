package render

import (
	"image/color"

	"pengine/internal/sim"
)

// fillPoints clears buf to the background colour and plots one pixel per
// live particle. Positions outside the w×h viewport are skipped.
func fillPoints(buf []byte, w, h int, batches []*sim.Batch, on, off color.Color) {
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = uint8(rOff >> 8)
		buf[i+1] = uint8(gOff >> 8)
		buf[i+2] = uint8(bOff >> 8)
		buf[i+3] = uint8(aOff >> 8)
	}

	rOn, gOn, bOn, aOn := on.RGBA()
	for _, b := range batches {
		for _, p := range b.Positions() {
			x, y := int(p.X), int(p.Y)
			if x < 0 || x >= w || y < 0 || y >= h {
				continue
			}
			base := (y*w + x) * 4
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
		}
	}
}
