package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same sound
	MinSoundGap = 50 * time.Millisecond
)

// Jump Sound Timing
const (
	JumpSoundDuration = 180 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 60 * time.Millisecond
	JumpSweepStartHz  = 220.0
	JumpSweepEndHz    = 660.0
)

// Gem Sound Timing
const (
	GemSoundDuration = 350 * time.Millisecond
	GemSoundAttack   = 3 * time.Millisecond
	GemSoundRelease  = 250 * time.Millisecond
	GemFirstNoteHz   = 988.0  // B5
	GemSecondNoteHz  = 1319.0 // E6
	GemNoteSplit     = 80 * time.Millisecond
)

// Landing Sound Timing
const (
	LandSoundDuration = 120 * time.Millisecond
	LandSoundAttack   = 2 * time.Millisecond
	LandSoundRelease  = 100 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 500 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
	GameOverStartHz       = 330.0
	GameOverEndHz         = 110.0
)
