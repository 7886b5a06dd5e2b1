package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/core"
)

// drain streams s to exhaustion, returning the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

// newAttachedManager returns a manager that mixes without a speaker
func newAttachedManager(now *time.Time) *SoundManager {
	sm := NewSoundManager(1.0, false)
	sm.initialized = true
	sm.lock = func() {}
	sm.unlock = func() {}
	sm.now = func() time.Time { return *now }
	return sm
}

func TestSoundEffectsAreFiniteAndAudible(t *testing.T) {
	tests := []struct {
		sound    core.SoundType
		duration time.Duration
	}{
		{core.SoundJump, constants.JumpSoundDuration},
		{core.SoundGem, constants.GemSoundDuration},
		{core.SoundLand, constants.LandSoundDuration},
		{core.SoundGameOver, constants.GameOverSoundDuration},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.sound, sampleRate, 1.0)
			if s == nil {
				t.Fatal("nil streamer")
			}
			n, peak := drain(t, s)

			want := sampleRate.N(tt.duration)
			if n < want-2 || n > want+2 {
				t.Errorf("samples = %d, want about %d", n, want)
			}
			if peak <= 0.01 {
				t.Errorf("peak %v: sound is silent", peak)
			}
			if peak > 1.0 {
				t.Errorf("peak %v clips", peak)
			}
		})
	}

	if GetSoundEffect(core.SoundTypeCount, sampleRate, 1.0) != nil {
		t.Error("unknown sound should have no streamer")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, CreateJumpSound(sampleRate, 0))
	if peak != 0 {
		t.Errorf("peak = %v, want silence", peak)
	}
}

func TestSweepChangesPitch(t *testing.T) {
	// Count zero crossings in the first and last tenth of a rising sweep
	d := 100 * time.Millisecond
	s := NewSweep(200, 2000, d, WaveSine, sampleRate)
	buf := make([][2]float64, sampleRate.N(d))
	n, _ := s.Stream(buf)

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (buf[i-1][0] < 0) != (buf[i][0] < 0) {
				c++
			}
		}
		return c
	}
	tenth := n / 10
	if early, late := crossings(0, tenth), crossings(n-tenth, n); late <= early*2 {
		t.Errorf("crossings early=%d late=%d, expected pitch to rise", early, late)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 50 * time.Millisecond
	s := NewEnvelope(NewOscillator(0, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate)
	buf := make([][2]float64, sampleRate.N(d))
	n, _ := s.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("attack should start at 0, got %v", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain = %v, want 1", mid)
	}
	if last := buf[n-1][0]; last > 0.01 {
		t.Errorf("release should end near 0, got %v", last)
	}
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(1.0, false)
	sm.lock = func() {}
	sm.unlock = func() {}

	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		if sm.Play(s) {
			t.Errorf("Play(%s) before Initialize should report false", s)
		}
	}
	sm.SetMuted(true)
	sm.SetMuted(false)
	sm.Cleanup()
	if sm.Active() != 0 {
		t.Error("nothing should be queued")
	}
}

func TestSoundManagerPlayAndGap(t *testing.T) {
	now := time.Unix(1000, 0)
	sm := newAttachedManager(&now)

	if !sm.Play(core.SoundJump) {
		t.Fatal("first play rejected")
	}
	if sm.Play(core.SoundJump) {
		t.Error("repeat within MinSoundGap should be rejected")
	}
	if !sm.Play(core.SoundGem) {
		t.Error("a different sound is not rate limited")
	}

	now = now.Add(constants.MinSoundGap)
	if !sm.Play(core.SoundJump) {
		t.Error("play after the gap rejected")
	}
	if got := sm.Active(); got != 3 {
		t.Errorf("Active() = %d, want 3", got)
	}
	if sm.Play(core.SoundType(-1)) || sm.Play(core.SoundTypeCount) {
		t.Error("invalid sound types must be rejected")
	}
}

func TestSoundManagerMute(t *testing.T) {
	now := time.Unix(1000, 0)
	sm := newAttachedManager(&now)
	sm.Play(core.SoundGameOver)

	sm.SetMuted(true)
	if !sm.IsMuted() {
		t.Fatal("IsMuted false after SetMuted(true)")
	}
	if sm.Active() != 0 {
		t.Error("muting should drop playing sounds")
	}
	if sm.Play(core.SoundLand) {
		t.Error("Play while muted should report false")
	}

	sm.SetMuted(false)
	if !sm.Play(core.SoundLand) {
		t.Error("Play after unmute rejected")
	}
}

func TestNewSoundManagerStartsMuted(t *testing.T) {
	now := time.Unix(1000, 0)
	sm := newAttachedManager(&now)
	sm.muted.Store(true)
	if sm.Play(core.SoundJump) {
		t.Error("muted manager played")
	}
	if !NewSoundManager(1, true).IsMuted() {
		t.Error("muted flag not applied")
	}
}
