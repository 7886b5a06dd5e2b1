package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/engine"
	"github.com/lixenwraith/skater/physics"
)

// SkaterSystem derives the on-ground flag from velocity and ends the run on a fall or tip-over
type SkaterSystem struct {
	ctx *engine.GameContext
}

// NewSkaterSystem creates a new skater system
func NewSkaterSystem(ctx *engine.GameContext) *SkaterSystem {
	return &SkaterSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SkaterSystem) Priority() int {
	return constants.PrioritySkater
}

// Update checks the skater after the terrain moved
func (s *SkaterSystem) Update(world *engine.World, dt time.Duration) {
	if !s.ctx.State.IsRunning() {
		return
	}
	e, ok := world.Skater()
	if !ok {
		return
	}
	pos, _, body, _, _ := world.Skaters.Get(e)

	if math.Abs(body.VY) > constants.AirborneVelocity {
		body.OnGround = false
	}

	offScreen := pos.Y < 0 || pos.X < 0
	tipped := physics.TippedOver(body, s.ctx.Config.Gameplay.MaxRotationDegrees)
	if offScreen || tipped {
		s.ctx.GameOver()
	}
}
