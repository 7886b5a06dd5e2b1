package engine

import (
	"time"

	"github.com/lixenwraith/skater/config"
)

// TimeResource wraps time data for systems
// Updated by GameContext at the start of every frame; registered as an ark resource
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// DeltaTime is the clamped duration since the previous running frame, zero on the first
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(gameTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// Seconds returns DeltaTime in seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// ConfigResource holds world dimensions and tuning for systems
type ConfigResource struct {
	ScreenWidth  int // Terminal columns
	ScreenHeight int // Terminal rows

	WorldWidth  float64 // World units
	WorldHeight float64

	Gameplay config.GameplayConfig
	Physics  config.PhysicsConfig
}
