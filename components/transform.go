package components

// Transform is an entity's center position in world units (y grows upwards)
type Transform struct {
	X, Y float64
}

// Size is an entity's extent in world units
type Size struct {
	W, H float64
}

// Left returns the x of the left edge for a body centered at t
func (s Size) Left(t Transform) float64 { return t.X - s.W/2 }

// Right returns the x of the right edge for a body centered at t
func (s Size) Right(t Transform) float64 { return t.X + s.W/2 }

// Bottom returns the y of the bottom edge for a body centered at t
func (s Size) Bottom(t Transform) float64 { return t.Y - s.H/2 }

// Top returns the y of the top edge for a body centered at t
func (s Size) Top(t Transform) float64 { return t.Y + s.H/2 }
