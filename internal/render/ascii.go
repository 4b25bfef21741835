package render

import (
	"bufio"
	"io"

	"lifegrid/internal/core"
)

// ASCII glyphs used by WriteASCII.
const (
	GlyphAlive = '#'
	GlyphDead  = '.'
)

// WriteASCII prints g one row per line.
func WriteASCII(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			glyph := byte(GlyphDead)
			if cells[g.Index(x, y)].IsAlive() {
				glyph = GlyphAlive
			}
			bw.WriteByte(glyph)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
