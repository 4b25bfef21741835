package core

// Rect is an axis-aligned pixel rectangle. Contains treats it as half-open.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (px, py) lies inside the rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Layout maps between screen pixels and cell indices.
type Layout struct {
	ScreenW, ScreenH int
	Cells            Size
}

// CellSize returns the pixel size of one cell. Both values are at least 1.
func (l Layout) CellSize() (int, int) {
	cw, ch := 1, 1
	if l.Cells.W > 0 && l.ScreenW/l.Cells.W > 0 {
		cw = l.ScreenW / l.Cells.W
	}
	if l.Cells.H > 0 && l.ScreenH/l.Cells.H > 0 {
		ch = l.ScreenH / l.Cells.H
	}
	return cw, ch
}

// PixelToCell converts a pixel position into cell indices. No clamping is
// applied; callers filter positions outside GridRect.
func (l Layout) PixelToCell(px, py int) (int, int) {
	cw, ch := l.CellSize()
	return px / cw, py / ch
}

// CellRect returns the pixel rectangle covered by cell (cx, cy).
func (l Layout) CellRect(cx, cy int) Rect {
	cw, ch := l.CellSize()
	return Rect{X: cx * cw, Y: cy * ch, W: cw, H: ch}
}

// GridRect returns the drawing area covered by the cells.
func (l Layout) GridRect() Rect {
	cw, ch := l.CellSize()
	return Rect{W: cw * l.Cells.W, H: ch * l.Cells.H}
}
