//go:build ebiten

package render

import (
	"image/color"

	"pengine/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointPainter uploads live particle positions into a single RGBA image and
// draws it as a point cloud.
type PointPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPointPainter allocates a painter for a w×h viewport.
func NewPointPainter(w, h int) *PointPainter {
	pp := &PointPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	pp.img = ebiten.NewImage(w, h)
	return pp
}

// Blit plots every live particle over the background colour and draws the
// resulting image. It must only be called between engine passes.
func (pp *PointPainter) Blit(dst *ebiten.Image, batches []*sim.Batch, on, off color.Color) {
	fillPoints(pp.buf, pp.w, pp.h, batches, on, off)
	pp.img.ReplacePixels(pp.buf)
	dst.DrawImage(pp.img, nil)
}

// Size returns the viewport dimensions.
func (pp *PointPainter) Size() (int, int) { return pp.w, pp.h }
