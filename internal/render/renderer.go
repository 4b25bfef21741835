//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image from cell data and scales it to the layout.
type GridPainter struct {
	layout core.Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for the grid described by layout.
func NewGridPainter(layout core.Layout) *GridPainter {
	w, h := layout.Cells.W, layout.Cells.H
	gp := &GridPainter{layout: layout, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads g into the painter image and draws it stretched to cell size.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color) {
	if g.Size() != gp.layout.Cells {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	cw, ch := gp.layout.CellSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cw), float64(ch))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines outlines every cell.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, clr color.Color) {
	area := gp.layout.GridRect()
	cw, ch := gp.layout.CellSize()
	for x := 0; x <= area.W; x += cw {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(area.H), 1, clr, false)
	}
	for y := 0; y <= area.H; y += ch {
		vector.StrokeLine(dst, 0, float32(y), float32(area.W), float32(y), 1, clr, false)
	}
}
