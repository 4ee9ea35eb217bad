package slotgrid

// Rect is the bounding rectangle of the grid body in client pixels.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Position addresses one cell: a day column and a slot row.
type Position struct {
	Column int
	Slot   int
}

// CoordinatesToSlot projects a pointer position onto the grid. Rows are rowHeight
// pixels tall; columns split the width evenly. It reports false when the pointer is
// outside rect or the geometry is degenerate. Callers bound Slot against the grid.
func CoordinatesToSlot(rect Rect, x, y float64, columnCount int, rowHeight float64) (Position, bool) {
	if columnCount <= 0 || rowHeight <= 0 || rect.Width <= 0 {
		return Position{}, false
	}

	dx := x - rect.Left
	dy := y - rect.Top
	if dx < 0 || dy < 0 || dx >= rect.Width || (rect.Height > 0 && dy >= rect.Height) {
		return Position{}, false
	}

	columnWidth := rect.Width / float64(columnCount)
	column := int(dx / columnWidth)
	row := int(dy / rowHeight)

	if column >= columnCount {
		return Position{}, false
	}
	return Position{Column: column, Slot: row}, true
}
