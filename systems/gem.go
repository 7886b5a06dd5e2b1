package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/engine"
)

// GemSystem scrolls collectibles with the terrain and drops those that left the screen
type GemSystem struct {
	ctx  *engine.GameContext
	dead []ecs.Entity
}

// NewGemSystem creates a new gem system
func NewGemSystem(ctx *engine.GameContext) *GemSystem {
	return &GemSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *GemSystem) Priority() int {
	return constants.PriorityGems
}

// Update moves gems left by the frame's scroll amount
func (s *GemSystem) Update(world *engine.World, dt time.Duration) {
	if !s.ctx.State.IsRunning() {
		return
	}

	amount := s.ctx.State.ScrollAmount
	s.dead = s.dead[:0]

	q := world.GemFilter.Query()
	for q.Next() {
		pos, size, _, col := q.Get()
		pos.X -= amount
		if pos.X < 0 {
			s.dead = append(s.dead, q.Entity())
			continue
		}
		world.Space.Sync(col.Object, *pos, *size)
	}

	world.DestroyAll(s.dead)
}
