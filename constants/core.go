package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the tick interval of the main loop (~60 FPS)
	FrameUpdateInterval = time.Second / 60

	// ExpectedFrameElapsed is the frame duration scroll amounts are normalized against
	ExpectedFrameElapsed = time.Second / 60

	// MaxFrameElapsed caps a single frame's elapsed time after a stall (resize, suspend)
	// so bricks cannot jump past the skater in one step
	MaxFrameElapsed = 100 * time.Millisecond

	// EventQueueSize is the ring buffer capacity of the event queue; oldest events are overwritten
	EventQueueSize = 256

	// EventBufferMask indexes the ring buffer; EventQueueSize must be a power of two
	EventBufferMask = EventQueueSize - 1

	// InputChannelSize is the buffer between the input poller and the main loop
	InputChannelSize = 256
)

// System Execution Priorities (lower runs first)
// Mirrors the scene update order: bricks, skater, gems, score, then contacts
const (
	PriorityTerrain = 10
	PrioritySkater  = 20
	PriorityGems    = 30
	PriorityScore   = 40
	PriorityPhysics = 50
	PrioritySparks  = 60
	PriorityAudio   = 900 // Last: consumes events emitted by the frame
)
