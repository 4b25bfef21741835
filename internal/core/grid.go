package core

import "fmt"

// Grid stores a 2D toroidal grid of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, Size{W: w, H: h}.Area())}
}

// GridFromCells copies cells into a new grid, validating the length.
func GridFromCells(w, h int, cells []Cell) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", w, h)
	}
	if want := (Size{W: w, H: h}).Area(); len(cells) != want {
		return nil, fmt.Errorf("expected %d cells for %dx%d grid, got %d", want, w, h, len(cells))
	}
	g := NewGrid(w, h)
	copy(g.data, cells)
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for in-bounds coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// InBounds reports whether (x, y) lies inside [0,W) x [0,H).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y) after wrapping.
func (g *Grid) At(x, y int) Cell {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores c at (x, y) after wrapping.
func (g *Grid) Set(x, y int, c Cell) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = c
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Alive counts populated cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c.IsAlive() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
