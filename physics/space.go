package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/skater/components"
	"github.com/lixenwraith/skater/constants"
)

// Collision tags
const (
	TagSkater = "skater"
	TagBrick  = "brick"
	TagGem    = "gem"
)

// Space is the collision space shared by bricks, gems and the skater
// World coordinates are shifted by SpaceMargin so bodies slightly off-screen keep
// their broad-phase cells; bodies farther out are simply not collidable until they scroll in
type Space struct {
	space         *resolv.Space
	objects       map[*resolv.Object]struct{} // resolv only lists bodies inside its cells
	width, height float64
}

// NewSpace creates a collision space covering a world of the given size
func NewSpace(worldWidth, worldHeight float64) *Space {
	s := &Space{objects: make(map[*resolv.Object]struct{})}
	s.space = newResolvSpace(worldWidth, worldHeight)
	s.width, s.height = worldWidth, worldHeight
	return s
}

func newResolvSpace(worldWidth, worldHeight float64) *resolv.Space {
	w := int(math.Ceil(worldWidth + 2*constants.SpaceMargin))
	h := int(math.Ceil(worldHeight + 2*constants.SpaceMargin))
	return resolv.NewSpace(w, h, constants.SpaceCellSize, constants.SpaceCellSize)
}

// Resize rebuilds the broad-phase grid for a new world size, keeping every body
func (s *Space) Resize(worldWidth, worldHeight float64) {
	if worldWidth == s.width && worldHeight == s.height {
		return
	}

	objects := make([]*resolv.Object, 0, len(s.objects))
	for obj := range s.objects {
		objects = append(objects, obj)
	}
	s.space.Remove(objects...)

	s.space = newResolvSpace(worldWidth, worldHeight)
	s.width, s.height = worldWidth, worldHeight

	s.space.Add(objects...)
}

// Add creates a tagged body for an entity centered at pos
func (s *Space) Add(tag string, pos components.Transform, size components.Size, data any) *resolv.Object {
	obj := resolv.NewObject(
		pos.X-size.W/2+constants.SpaceMargin,
		pos.Y-size.H/2+constants.SpaceMargin,
		size.W, size.H,
		tag,
	)
	obj.Data = data
	s.space.Add(obj)
	s.objects[obj] = struct{}{}
	return obj
}

// Remove detaches a body; nil is ignored
func (s *Space) Remove(obj *resolv.Object) {
	if obj == nil {
		return
	}
	if _, ok := s.objects[obj]; !ok {
		return
	}
	delete(s.objects, obj)
	s.space.Remove(obj)
}

// Sync moves a body to its entity's current transform
func (s *Space) Sync(obj *resolv.Object, pos components.Transform, size components.Size) {
	if obj == nil {
		return
	}
	obj.Position.X = pos.X - size.W/2 + constants.SpaceMargin
	obj.Position.Y = pos.Y - size.H/2 + constants.SpaceMargin
	obj.Size.X, obj.Size.Y = size.W, size.H
	obj.Update()
}

// Count returns the number of bodies in the space
func (s *Space) Count() int {
	return len(s.objects)
}

// Contacts returns bodies carrying tag that overlap obj once it is offset by (dx, dy)
// resolv's check is cell based, so candidates are narrowed with an exact AABB test
func (s *Space) Contacts(obj *resolv.Object, dx, dy float64, tag string) []*resolv.Object {
	if obj == nil {
		return nil
	}
	check := obj.Check(dx, dy, tag)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, other := range check.Objects {
		if other == obj {
			continue
		}
		if Overlap(obj, other, dx, dy) {
			hits = append(hits, other)
		}
	}
	return hits
}

// Sweep returns bodies carrying tag that overlap obj's box stretched left by reach
// Scrolling moves everything else left, so the stretched box covers every position the
// body held relative to them during the frame and fast frames cannot skip a contact
func (s *Space) Sweep(obj *resolv.Object, reach float64, tag string) []*resolv.Object {
	if obj == nil {
		return nil
	}
	if reach <= 0 {
		return s.Contacts(obj, 0, 0, tag)
	}

	x, y := obj.Position.X-reach, obj.Position.Y
	w, h := obj.Size.X+reach, obj.Size.Y
	cx, cy := s.space.WorldToSpace(x, y)
	ex, ey := s.space.WorldToSpace(x+w-1, y+h-1)

	var hits []*resolv.Object
	seen := make(map[*resolv.Object]struct{})
	for _, other := range s.space.CheckCells(cx, cy, ex-cx+1, ey-cy+1, tag) {
		if other == obj {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		if overlapBox(x, y, w, h, other) {
			hits = append(hits, other)
		}
	}
	return hits
}

// Overlap reports whether a, offset by (dx, dy), intersects b; touching edges do not count
func Overlap(a, b *resolv.Object, dx, dy float64) bool {
	return overlapBox(a.Position.X+dx, a.Position.Y+dy, a.Size.X, a.Size.Y, b)
}

func overlapBox(x, y, w, h float64, b *resolv.Object) bool {
	return x < b.Position.X+b.Size.X && x+w > b.Position.X &&
		y < b.Position.Y+b.Size.Y && y+h > b.Position.Y
}

// Top returns the world-space y of a body's top edge
func Top(obj *resolv.Object) float64 {
	return obj.Position.Y + obj.Size.Y - constants.SpaceMargin
}

// Left returns the world-space x of a body's left edge
func Left(obj *resolv.Object) float64 {
	return obj.Position.X - constants.SpaceMargin
}

// Right returns the world-space x of a body's right edge
func Right(obj *resolv.Object) float64 {
	return obj.Position.X + obj.Size.X - constants.SpaceMargin
}
