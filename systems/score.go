package systems

import (
	"time"

	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/engine"
)

// ScoreSystem grows the score by the integer scroll speed about once per second
type ScoreSystem struct {
	ctx *engine.GameContext
}

// NewScoreSystem creates a new score system
func NewScoreSystem(ctx *engine.GameContext) *ScoreSystem {
	return &ScoreSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int {
	return constants.PriorityScore
}

// Update runs the score system
func (s *ScoreSystem) Update(world *engine.World, dt time.Duration) {
	state := s.ctx.State
	if !state.IsRunning() {
		return
	}

	now := s.ctx.Time.GameTime
	if now.Sub(state.LastScoreUpdateTime) > constants.ScoreUpdateInterval {
		state.AddScore(int(state.ScrollSpeed))
		state.LastScoreUpdateTime = now
	}
}
