package systems

import (
	"time"

	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/core"
	"github.com/lixenwraith/skater/engine"
	"github.com/lixenwraith/skater/events"
)

// AudioSystem turns game events into sounds
// Decouples game systems from direct audio access; a nil player disables sound
type AudioSystem struct {
	ctx *engine.GameContext
}

// NewAudioSystem creates an audio system reading the context's player
func NewAudioSystem(ctx *engine.GameContext) *AudioSystem {
	return &AudioSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return constants.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventJump,
		events.EventLanded,
		events.EventGemCollected,
		events.EventGameOver,
	}
}

// HandleEvent plays the sound mapped to the event
func (s *AudioSystem) HandleEvent(world *engine.World, event events.GameEvent) {
	player := s.ctx.Audio
	if player == nil {
		return
	}
	if sound, ok := soundFor(event.Type); ok {
		player.Play(sound)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update(world *engine.World, dt time.Duration) {}

func soundFor(t events.EventType) (core.SoundType, bool) {
	switch t {
	case events.EventJump:
		return core.SoundJump, true
	case events.EventLanded:
		return core.SoundLand, true
	case events.EventGemCollected:
		return core.SoundGem, true
	case events.EventGameOver:
		return core.SoundGameOver, true
	default:
		return 0, false
	}
}
