package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/skater/components"
	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/engine"
	"github.com/lixenwraith/skater/events"
	"github.com/lixenwraith/skater/physics"
)

// PhysicsSystem integrates the skater body against the collision space and reacts to contacts
//
// Per frame:
//  1. Bricks that scrolled into the skater's side push it back (bricks never move)
//  2. Gravity, then a downward sweep lands the skater on the highest brick top
//  3. Lean builds while the skater's center overhangs its support, relaxes otherwise
//  4. Gems overlapped at any point of the frame's scroll are consumed
type PhysicsSystem struct {
	ctx  *engine.GameContext
	gems []ecs.Entity
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(ctx *engine.GameContext) *PhysicsSystem {
	return &PhysicsSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

// Update steps the skater by dt
func (s *PhysicsSystem) Update(world *engine.World, dt time.Duration) {
	if !s.ctx.State.IsRunning() || dt <= 0 {
		return
	}
	e, ok := world.Skater()
	if !ok {
		return
	}
	pos, size, body, col, _ := world.Skaters.Get(e)
	sec := dt.Seconds()
	reach := s.ctx.State.ScrollAmount

	if left, pushed := world.Space.SidePush(col.Object, reach); pushed {
		pos.X = left + size.W/2
		world.Space.Sync(col.Object, *pos, *size)
	}

	s.move(world, pos, size, body, col, sec)
	s.collectGems(world, col, reach)
}

func (s *PhysicsSystem) move(world *engine.World, pos *components.Transform, size *components.Size,
	body *components.Body, col *components.Collider, sec float64) {
	vyBefore := body.VY
	dy := physics.ApplyGravity(body, s.ctx.Config.Physics.Gravity, sec)

	landing, landed := world.Space.Fall(col.Object, dy)
	if !landed {
		pos.Y += dy
		body.Touching = false
		body.Rotation += body.AngularVelocity * sec
		world.Space.Sync(col.Object, *pos, *size)
		return
	}

	pos.Y = landing.Top + size.H/2
	body.VY = 0
	world.Space.Sync(col.Object, *pos, *size)

	// Begin-contact: an airborne skater touching down slowly enough grinds sparks
	if !body.Touching && !body.OnGround && vyBefore < constants.SparkLandingVelocity {
		s.ctx.PushEvent(events.EventLanded, &events.LandingPayload{
			X:  pos.X,
			Y:  pos.Y - size.H/2,
			VY: vyBefore,
		})
	}
	body.Touching = true
	body.OnGround = true

	supported, dir := physics.CenterSupported(col.Object, landing.Supports)
	physics.Tip(body, supported, dir, constants.TipAcceleration, constants.RotationRecovery, sec)
}

func (s *PhysicsSystem) collectGems(world *engine.World, col *components.Collider, reach float64) {
	s.gems = s.gems[:0]
	for _, obj := range world.Space.Sweep(col.Object, reach, physics.TagGem) {
		if e, ok := obj.Data.(ecs.Entity); ok {
			s.gems = append(s.gems, e)
		}
	}

	for _, e := range s.gems {
		if !world.ECS.Alive(e) || !world.Gems.HasAll(e) {
			continue
		}
		pos, _, gem, _ := world.Gems.Get(e)
		payload := &events.GemPayload{X: pos.X, Y: pos.Y, Bonus: gem.Bonus}

		world.DestroyEntity(e)
		s.ctx.State.AddScore(payload.Bonus)
		s.ctx.PushEvent(events.EventGemCollected, payload)
	}
}
