package core

import "strconv"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

func (s Size) String() string {
	return strconv.Itoa(s.W) + "x" + strconv.Itoa(s.H)
}

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

// IsAlive reports whether the cell is populated.
func (c Cell) IsAlive() bool { return c == Alive }

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// Sim defines the contract the interaction layer drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Clear()
	Step()
	Toggle(x, y int) error
	Snapshot() *Grid
	ReplaceAll(g *Grid) error
	Generation() int
}
