package engine

import (
	"time"

	"github.com/lixenwraith/skater/components"
	"github.com/lixenwraith/skater/constants"
)

// GamePhase is the run lifecycle state
type GamePhase int

const (
	PhaseNotRunning GamePhase = iota
	PhaseRunning
)

// String returns the phase name for logs and status
func (p GamePhase) String() string {
	switch p {
	case PhaseNotRunning:
		return "not_running"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// MenuState describes the overlay shown while not running
type MenuState struct {
	Visible  bool
	Message  string
	Score    int
	HasScore bool      // Score is only shown after a run
	ShownAt  time.Time // Game time the overlay appeared, drives the slide-in
}

// GameState holds per-run and session state
// Main-loop exclusive; cross-goroutine readers use the status registry instead
type GameState struct {
	// ===== Session =====
	Phase     GamePhase
	HighScore int
	Menu      MenuState

	// ===== Run =====
	RunID       string
	Score       int
	ScrollSpeed float64
	BrickLevel  components.BrickLevel

	// ScrollAmount is how far the world moves during the current frame
	ScrollAmount float64

	// Timing
	lastUpdateTime      time.Time
	hasLastUpdate       bool
	LastScoreUpdateTime time.Time
}

// NewGameState creates the initial state: not running, menu prompting a tap
func NewGameState(now time.Time, startingSpeed float64) *GameState {
	gs := &GameState{
		ScrollSpeed: startingSpeed,
		BrickLevel:  constants.BrickLevelLow,
	}
	gs.ShowMenu(constants.MenuMessageStart, 0, false, now)
	return gs
}

// IsRunning reports whether a run is in progress
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}

// ResetRun prepares the state for a new run
func (gs *GameState) ResetRun(runID string, now time.Time, startingSpeed float64) {
	gs.Phase = PhaseRunning
	gs.RunID = runID
	gs.Score = 0
	gs.ScrollSpeed = startingSpeed
	gs.ScrollAmount = 0
	gs.BrickLevel = constants.BrickLevelLow
	gs.lastUpdateTime = time.Time{}
	gs.hasLastUpdate = false
	gs.LastScoreUpdateTime = now
	gs.HideMenu()
}

// EndRun stops the run and records the high score; returns true on a new record
func (gs *GameState) EndRun() bool {
	gs.Phase = PhaseNotRunning
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		return true
	}
	return false
}

// Advance computes the frame's elapsed time since the previous running frame, clamped to
// maxElapsed, and records now as the new reference; the first frame of a run yields zero
func (gs *GameState) Advance(now time.Time, maxElapsed time.Duration) time.Duration {
	var elapsed time.Duration
	if gs.hasLastUpdate {
		elapsed = now.Sub(gs.lastUpdateTime)
	}
	gs.lastUpdateTime = now
	gs.hasLastUpdate = true

	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxElapsed {
		elapsed = maxElapsed
	}
	return elapsed
}

// LastUpdateTime returns the reference time of the previous running frame, if any
func (gs *GameState) LastUpdateTime() (time.Time, bool) {
	return gs.lastUpdateTime, gs.hasLastUpdate
}

// AddScore adds delta to the running score
func (gs *GameState) AddScore(delta int) {
	gs.Score += delta
}

// ToggleBrickLevel flips the spawn level between low and high
func (gs *GameState) ToggleBrickLevel() {
	if gs.BrickLevel == constants.BrickLevelLow {
		gs.BrickLevel = constants.BrickLevelHigh
	} else {
		gs.BrickLevel = constants.BrickLevelLow
	}
}

// ShowMenu displays the overlay with message and, when hasScore, the score line
func (gs *GameState) ShowMenu(message string, score int, hasScore bool, now time.Time) {
	gs.Menu = MenuState{
		Visible:  true,
		Message:  message,
		Score:    score,
		HasScore: hasScore,
		ShownAt:  now,
	}
}

// HideMenu removes the overlay; no-op when hidden
func (gs *GameState) HideMenu() {
	gs.Menu.Visible = false
}
