package systems

import (
	"math"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/skater/components"
	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/engine"
	"github.com/lixenwraith/skater/events"
)

var sparkGlyphs = []rune{'*', '\'', '.', '`', '+', ','}

// SparkSystem throws particles from landings and expires them after their lifetime
// Runs in every phase so a burst finishes under the game-over menu
type SparkSystem struct {
	ctx      *engine.GameContext
	lastTick time.Time
	dead     []ecs.Entity
}

// NewSparkSystem creates a new spark system
func NewSparkSystem(ctx *engine.GameContext) *SparkSystem {
	return &SparkSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SparkSystem) Priority() int {
	return constants.PrioritySparks
}

// EventTypes returns the event types SparkSystem handles
func (s *SparkSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventLanded}
}

// HandleEvent spawns a burst at the landing point
func (s *SparkSystem) HandleEvent(world *engine.World, event events.GameEvent) {
	payload, ok := event.Payload.(*events.LandingPayload)
	if !ok {
		return
	}
	s.Burst(world, payload.X, payload.Y, event.Timestamp)
}

// Burst spawns SparkCount particles fanning up and back from (x, y)
func (s *SparkSystem) Burst(world *engine.World, x, y float64, now time.Time) {
	for i := 0; i < constants.SparkCount; i++ {
		// Spread across the upper-left quadrant, opposite the direction of travel
		angle := math.Pi/2 + (float64(i)+0.5)/constants.SparkCount*math.Pi/2
		speed := constants.SparkMinSpeed + float64(s.ctx.Roller.Intn(constants.SparkSpeedRange))
		world.SpawnSpark(components.Transform{X: x, Y: y}, components.Spark{
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Born:     now,
			Lifetime: constants.SparkLifetime,
			Rune:     sparkGlyphs[i%len(sparkGlyphs)],
		})
	}
}

// Update moves particles on game time and removes expired ones
func (s *SparkSystem) Update(world *engine.World, dt time.Duration) {
	now := s.ctx.Time.GameTime
	step := time.Duration(0)
	if !s.lastTick.IsZero() {
		step = min(max(now.Sub(s.lastTick), 0), constants.MaxFrameElapsed)
	}
	s.lastTick = now
	sec := step.Seconds()

	s.dead = s.dead[:0]
	q := world.SparkFilter.Query()
	for q.Next() {
		pos, spark := q.Get()
		if spark.Expired(now) {
			s.dead = append(s.dead, q.Entity())
			continue
		}
		spark.VY -= constants.SparkGravity * sec
		pos.X += spark.VX * sec
		pos.Y += spark.VY * sec
	}

	world.DestroyAll(s.dead)
}
