package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventGameStart marks the beginning of a run
	// Trigger: GameContext.StartGame | Payload: *RunPayload
	EventGameStart EventType = iota

	// EventJump signals the skater left the ground by a tap
	// Trigger: GameContext.Tap | Consumer: AudioSystem | Payload: nil
	EventJump

	// EventLanded signals an airborne skater touched a brick slowly enough to grind
	// Trigger: PhysicsSystem | Consumer: SparkSystem, AudioSystem | Payload: *LandingPayload
	EventLanded

	// EventGemCollected signals a consumed gem
	// Trigger: PhysicsSystem | Consumer: AudioSystem | Payload: *GemPayload
	EventGemCollected

	// EventGameOver marks the end of a run
	// Trigger: GameContext.GameOver | Consumer: AudioSystem | Payload: *RunPayload
	EventGameOver
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventGameStart:
		return "GameStart"
	case EventJump:
		return "Jump"
	case EventLanded:
		return "Landed"
	case EventGemCollected:
		return "GemCollected"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with associated metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64     // Frame number when event was created
	Timestamp time.Time // Game time of creation
}
