package physics

import (
	"github.com/solarlune/resolv"

	"github.com/lixenwraith/skater/constants"
)

// Landing is the result of a downward sweep against bricks
type Landing struct {
	Top      float64          // World y of the highest supporting top
	Supports []*resolv.Object // Bricks whose top equals Top
}

// Fall sweeps obj by dy against bricks and returns the landing, if any
// A brick supports the body only when the body's bottom was at or above the brick's top
// (within StepTolerance) before the move; deeper overlaps are side contacts
func (s *Space) Fall(obj *resolv.Object, dy float64) (Landing, bool) {
	if dy > 0 {
		return Landing{}, false
	}

	bottom := obj.Position.Y - constants.SpaceMargin
	var landing Landing
	found := false

	for _, brick := range s.Contacts(obj, 0, dy, TagBrick) {
		top := Top(brick)
		if bottom < top-constants.StepTolerance {
			continue
		}
		switch {
		case !found || top > landing.Top:
			landing = Landing{Top: top, Supports: []*resolv.Object{brick}}
			found = true
		case top == landing.Top:
			landing.Supports = append(landing.Supports, brick)
		}
	}

	return landing, found
}

// SidePush returns the x the body's left edge must be pushed back to when a brick's
// side has moved into it, and whether any push is needed
// reach is how far bricks scrolled this frame; a brick that crossed the body entirely still pushes
func (s *Space) SidePush(obj *resolv.Object, reach float64) (float64, bool) {
	bottom := obj.Position.Y - constants.SpaceMargin
	left := obj.Position.X - constants.SpaceMargin
	pushed := false
	newLeft := left

	for _, brick := range s.Sweep(obj, reach, TagBrick) {
		if bottom >= Top(brick)-constants.StepTolerance {
			continue // Standing on it, not against it
		}
		if edge := Left(brick) - obj.Size.X; edge < newLeft {
			newLeft = edge
			pushed = true
		}
	}

	return newLeft, pushed
}

// CenterSupported reports whether the body's horizontal center lies over a support
// and, when it does not, the lean direction (-1 forward over the right edge, +1 backward)
func CenterSupported(obj *resolv.Object, supports []*resolv.Object) (bool, float64) {
	center := obj.Position.X + obj.Size.X/2
	seam := constants.BrickSpacing
	nearest := 0.0
	for _, brick := range supports {
		left, right := brick.Position.X, brick.Position.X+brick.Size.X
		if center >= left-seam && center <= right+seam {
			return true, 0
		}
		if center > right+seam {
			nearest = -1
		} else if nearest == 0 {
			nearest = 1
		}
	}
	if nearest == 0 {
		nearest = -1
	}
	return false, nearest
}
