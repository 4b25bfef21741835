package life

import (
	"fmt"
	"strconv"

	"lifegrid/internal/core"
)

// DefaultDensity is the probability that a cell starts alive after Reset.
const DefaultDensity = 0.2

// Life implements Conway's Game of Life (B3/S23) on a toroidal grid.
type Life struct {
	w, h    int
	density float64
	cur     *core.Grid
	nxt     *core.Grid
	gen     int
}

// New returns an all-dead Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cur := core.NewGrid(w, h)
	return &Life{
		w:       cur.W,
		h:       cur.H,
		density: DefaultDensity,
		cur:     cur,
		nxt:     core.NewGrid(cur.W, cur.H),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Generation returns the number of generations since the last reset or load.
func (l *Life) Generation() int { return l.gen }

// SetDensity changes the alive probability used by Reset.
func (l *Life) SetDensity(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	l.density = p
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	core.FillRandom(core.NewRNG(seed), l.cur.Cells(), l.density)
	l.gen = 0
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.gen = 0
}

// Toggle flips the cell at (x, y).
func (l *Life) Toggle(x, y int) error {
	if !l.cur.InBounds(x, y) {
		return fmt.Errorf("toggle (%d,%d) on %s grid: %w", x, y, l.Size(), core.ErrOutOfRange)
	}
	idx := l.cur.Index(x, y)
	cells := l.cur.Cells()
	cells[idx] = cells[idx].Flip()
	return nil
}

// Snapshot returns a copy of the current generation.
func (l *Life) Snapshot() *core.Grid { return l.cur.Clone() }

// ReplaceAll installs g as the current generation. The grid is copied.
func (l *Life) ReplaceAll(g *core.Grid) error {
	if g == nil {
		return fmt.Errorf("replace with nil grid: %w", core.ErrShapeMismatch)
	}
	if g.W != l.w || g.H != l.h {
		return &core.ShapeMismatchError{Want: l.Size(), Got: g.Size()}
	}
	copy(l.cur.Cells(), g.Cells())
	l.gen = 0
	return nil
}

// Neighbors counts alive cells among the 8 toroidal neighbours of (x, y).
func (l *Life) Neighbors(x, y int) int {
	return neighbors(l.cur.Cells(), l.w, l.h, x, y)
}

func neighbors(cells []core.Cell, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if cells[ny*w+nx].IsAlive() {
				n++
			}
		}
	}
	return n
}

// Next applies the B3/S23 rule to a single cell.
func Next(c core.Cell, n int) core.Cell {
	if c == core.Alive && (n < 2 || n > 3) {
		return core.Dead
	}
	if c == core.Dead && n == 3 {
		return core.Alive
	}
	return c
}

// Step advances the simulation by one generation. The next generation is
// written to the back buffer; the current one is only read.
func (l *Life) Step() {
	w, h := l.w, l.h
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = Next(cur[idx], neighbors(cur, w, h, x, y))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Parameters reports the values shown in status displays.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.w),
				intParam("h", "Height", l.h),
				floatParam("density", "Density", l.density),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.gen),
				intParam("alive", "Alive", l.cur.Alive()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
