// Package audio synthesizes the game's sound effects and plays them through the beep speaker.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/core"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager manages all game audio
// Every operation is a safe no-op until Initialize succeeds, so the game runs without a sound device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       atomic.Bool

	lastPlayed [core.SoundTypeCount]time.Time
	now        func() time.Time

	// Speaker hooks, replaced in tests
	lock   func()
	unlock func()
}

// NewSoundManager creates a sound manager with volume in [0,1]
func NewSoundManager(volume float64, muted bool) *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		now:    time.Now,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
	sm.muted.Store(muted)
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Clear()
	sm.unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues sound on the mixer
// Returns false when uninitialized, muted, or the same sound played within MinSoundGap
func (sm *SoundManager) Play(sound core.SoundType) bool {
	if sm.muted.Load() || sound < 0 || sound >= core.SoundTypeCount {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	now := sm.now()
	if last := sm.lastPlayed[sound]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(sound, sampleRate, sm.volume)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[sound] = now

	sm.lock()
	sm.mixer.Add(streamer)
	sm.unlock()
	return true
}

// SetMuted silences or restores sound; muting drops anything still playing
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if !muted {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		sm.lock()
		sm.mixer.Clear()
		sm.unlock()
	}
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Active returns the number of sounds still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}
