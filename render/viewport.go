package render

import (
	"math"

	"github.com/lixenwraith/skater/components"
	"github.com/lixenwraith/skater/constants"
)

// Viewport maps world coordinates (y up, origin bottom-left) to terminal cells (row 0 at top)
type Viewport struct {
	Cols, Rows int
}

// ToCell returns the cell containing world point (x, y); may lie outside the screen
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / constants.UnitsPerColumn))
	row = v.Rows - 1 - int(math.Floor(y/constants.UnitsPerRow))
	return col, row
}

// CellRect returns the inclusive cell span touched by a body centered at pos
// x0 <= x1 and y0 <= y1 with y0 the top row; the span may extend past the screen
func (v Viewport) CellRect(pos components.Transform, size components.Size) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(size.Left(pos) / constants.UnitsPerColumn))
	x1 = int(math.Ceil(size.Right(pos)/constants.UnitsPerColumn)) - 1
	bottom := int(math.Floor(size.Bottom(pos) / constants.UnitsPerRow))
	top := int(math.Ceil(size.Top(pos)/constants.UnitsPerRow)) - 1

	if x1 < x0 {
		x1 = x0
	}
	if top < bottom {
		top = bottom
	}
	return x0, v.Rows - 1 - top, x1, v.Rows - 1 - bottom
}

// Visible reports whether cell (col, row) is on screen
func (v Viewport) Visible(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
