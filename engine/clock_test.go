package engine

import (
	"testing"
	"time"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	if !mock.Now().Equal(testEpoch) {
		t.Fatalf("initial time = %v", mock.Now())
	}

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	if want := testEpoch.Add(90 * time.Minute); !mock.Now().Equal(want) {
		t.Errorf("after Advance = %v, want %v", mock.Now(), want)
	}

	later := testEpoch.Add(24 * time.Hour)
	mock.SetTime(later)
	if !mock.Now().Equal(later) {
		t.Errorf("after SetTime = %v, want %v", mock.Now(), later)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	done := make(chan struct{})

	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				_ = mock.Now()
				mock.Advance(time.Millisecond)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 5; i++ {
		<-done
	}

	if want := testEpoch.Add(250 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("time = %v, want %v", mock.Now(), want)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewPausableClockWith(mock)

	mock.Advance(time.Second)
	if got := clock.Now().Sub(testEpoch); got != time.Second {
		t.Fatalf("game elapsed = %v, want 1s", got)
	}

	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("expected paused")
	}
	mock.Advance(5 * time.Second)
	if got := clock.Now().Sub(testEpoch); got != time.Second {
		t.Errorf("paused game elapsed = %v, want 1s", got)
	}
	if got := clock.GetTotalPauseDuration(); got != 5*time.Second {
		t.Errorf("pause duration while paused = %v, want 5s", got)
	}

	clock.Resume()
	mock.Advance(2 * time.Second)
	if got := clock.Now().Sub(testEpoch); got != 3*time.Second {
		t.Errorf("resumed game elapsed = %v, want 3s", got)
	}
	if got := clock.RealTime().Sub(testEpoch); got != 8*time.Second {
		t.Errorf("real elapsed = %v, want 8s", got)
	}
}

func TestPausableClockDoublePauseResume(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewPausableClockWith(mock)

	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause() // no-op, must not restart the pause window
	mock.Advance(time.Second)
	clock.Resume()
	clock.Resume()

	if got := clock.GetTotalPauseDuration(); got != 2*time.Second {
		t.Errorf("total pause = %v, want 2s", got)
	}
	if got := clock.Now(); !got.Equal(testEpoch) {
		t.Errorf("game time = %v, want epoch", got)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
