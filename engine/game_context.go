package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/skater/components"
	"github.com/lixenwraith/skater/config"
	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/core"
	"github.com/lixenwraith/skater/events"
	"github.com/lixenwraith/skater/physics"
	"github.com/lixenwraith/skater/status"
)

// Roller draws the random numbers of the spawn policy; *rand.Rand satisfies it
type Roller interface {
	Intn(n int) int
}

// AudioPlayer is the sound sink used by the game; nil disables sound
type AudioPlayer interface {
	Play(sound core.SoundType) bool
	SetMuted(muted bool)
}

// GameContext holds all game state including the ECS world
type GameContext struct {
	// ===== Immutable After Init =====

	World  *World
	State  *GameState
	Config *config.Config
	Clock  *PausableClock
	Roller Roller
	Events *events.EventQueue
	Router *events.Router[*World]
	Status *status.Registry

	// Ark resources, updated in place
	Time *TimeResource
	Dims *ConfigResource

	// Audio is optional; set before the first frame
	Audio AudioPlayer

	// ===== Atomic (Self-Synchronized) =====

	FrameNumber atomic.Int64
	IsPaused    atomic.Bool
	IsMuted     atomic.Bool

	// ===== Main-Loop Exclusive =====

	Width, Height int // Terminal dimensions in cells

	newRunID func() string
	metrics  contextMetrics
}

// contextMetrics caches registry pointers written every frame
type contextMetrics struct {
	phase     *status.AtomicString
	runID     *status.AtomicString
	score     *atomic.Int64
	highScore *atomic.Int64
	frame     *atomic.Int64
	runs      *atomic.Int64
	bricks    *atomic.Int64
	gems      *atomic.Int64
	sparks    *atomic.Int64
	events    *atomic.Int64
	speed     *status.AtomicFloat
	paused    *atomic.Bool
	muted     *atomic.Bool
}

// NewGameContext creates the world and initial state for a width x height terminal
// The initial state is not running with the "Tap to play" menu over an idle skater
func NewGameContext(cfg *config.Config, width, height int, clock *PausableClock, roller Roller) *GameContext {
	ctx := &GameContext{
		Config:   cfg,
		Clock:    clock,
		Roller:   roller,
		Width:    width,
		Height:   height,
		Events:   events.NewEventQueue(),
		Status:   status.NewRegistry(),
		newRunID: uuid.NewString,
	}
	ctx.Router = events.NewRouter[*World](ctx.Events)

	worldW, worldH := ctx.WorldSize()
	ctx.World = NewWorld(worldW, worldH)

	// -- Resources --
	ctx.Time = &TimeResource{GameTime: clock.Now()}
	ctx.Dims = &ConfigResource{
		ScreenWidth:  width,
		ScreenHeight: height,
		WorldWidth:   worldW,
		WorldHeight:  worldH,
		Gameplay:     cfg.Gameplay,
		Physics:      cfg.Physics,
	}
	ecs.AddResource(&ctx.World.ECS, ctx.Time)
	ecs.AddResource(&ctx.World.ECS, ctx.Dims)

	ctx.State = NewGameState(clock.Now(), cfg.Gameplay.StartingScrollSpeed)
	ctx.IsMuted.Store(cfg.Audio.Muted)

	ctx.initMetrics()
	ctx.World.SpawnSkater(ctx.SkaterStart())
	ctx.publishStatus()

	return ctx
}

func (ctx *GameContext) initMetrics() {
	r := ctx.Status
	ctx.metrics = contextMetrics{
		phase:     r.Strings.Get("game.phase"),
		runID:     r.Strings.Get("game.run_id"),
		score:     r.Ints.Get("game.score"),
		highScore: r.Ints.Get("game.high_score"),
		frame:     r.Ints.Get("game.frame"),
		runs:      r.Ints.Get("game.runs"),
		bricks:    r.Ints.Get("world.bricks"),
		gems:      r.Ints.Get("world.gems"),
		sparks:    r.Ints.Get("world.sparks"),
		events:    r.Ints.Get("events.dispatched"),
		speed:     r.Floats.Get("game.scroll_speed"),
		paused:    r.Bools.Get("game.paused"),
		muted:     r.Bools.Get("audio.muted"),
	}
}

// WorldSize returns the world extent in world units for the current terminal size
func (ctx *GameContext) WorldSize() (float64, float64) {
	return float64(ctx.Width) * constants.UnitsPerColumn, float64(ctx.Height) * constants.UnitsPerRow
}

// SkaterStart returns the skater's reset position: a quarter of the width in, feet on a low brick
func (ctx *GameContext) SkaterStart() components.Transform {
	worldW, _ := ctx.WorldSize()
	return components.Transform{
		X: worldW / 4,
		Y: constants.SkaterHeight/2 + constants.SkaterGroundClearance,
	}
}

// PushEvent emits a game event stamped with the current frame and game time
func (ctx *GameContext) PushEvent(eventType events.EventType, payload any) {
	ctx.Events.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Frame:     ctx.FrameNumber.Load(),
		Timestamp: ctx.Clock.Now(),
	})
}

// ResetSkater puts the skater back at its start position, upright and at rest
func (ctx *GameContext) ResetSkater() {
	e, ok := ctx.World.Skater()
	if !ok {
		e = ctx.World.SpawnSkater(ctx.SkaterStart())
	}
	pos, size, body, col, _ := ctx.World.Skaters.Get(e)
	*pos = ctx.SkaterStart()
	*body = components.Body{OnGround: true}
	ctx.World.Space.Sync(col.Object, *pos, *size)
}

// StartGame begins a new run
func (ctx *GameContext) StartGame() {
	now := ctx.Clock.Now()
	runID := ctx.newRunID()

	ctx.State.ResetRun(runID, now, ctx.Config.Gameplay.StartingScrollSpeed)
	ctx.ResetSkater()
	ctx.World.ClearBricks()
	ctx.World.ClearGems()
	ctx.World.ClearSparks()

	ctx.metrics.runs.Add(1)
	ctx.PushEvent(events.EventGameStart, &events.RunPayload{RunID: runID, HighScore: ctx.State.HighScore})
	log.Printf("run %s started", runID)
}

// GameOver ends the current run and shows the game-over menu with the final score
// No-op when not running
func (ctx *GameContext) GameOver() {
	if !ctx.State.IsRunning() {
		return
	}
	newRecord := ctx.State.EndRun()
	ctx.State.ShowMenu(constants.MenuMessageGameOver, ctx.State.Score, true, ctx.Clock.Now())

	ctx.PushEvent(events.EventGameOver, &events.RunPayload{
		RunID:     ctx.State.RunID,
		Score:     ctx.State.Score,
		HighScore: ctx.State.HighScore,
		NewRecord: newRecord,
	})
	log.Printf("run %s over: score=%d high=%d record=%t", ctx.State.RunID, ctx.State.Score, ctx.State.HighScore, newRecord)
}

// Tap is the single player action: jump while running on the ground, otherwise start a run
// Ignored while paused
func (ctx *GameContext) Tap() {
	if ctx.IsPaused.Load() {
		return
	}

	if !ctx.State.IsRunning() {
		ctx.State.HideMenu()
		ctx.StartGame()
		return
	}

	e, ok := ctx.World.Skater()
	if !ok {
		return
	}
	_, _, body, _, _ := ctx.World.Skaters.Get(e)
	if !body.OnGround {
		return
	}
	physics.Jump(body, ctx.Config.Physics.JumpVelocity)
	ctx.PushEvent(events.EventJump, nil)
}

// TogglePause freezes or resumes game time
func (ctx *GameContext) TogglePause() {
	if ctx.IsPaused.Load() {
		ctx.Clock.Resume()
		ctx.IsPaused.Store(false)
	} else {
		ctx.Clock.Pause()
		ctx.IsPaused.Store(true)
	}
	ctx.metrics.paused.Store(ctx.IsPaused.Load())
}

// ToggleMute flips the mute flag and forwards it to the audio player
func (ctx *GameContext) ToggleMute() {
	muted := !ctx.IsMuted.Load()
	ctx.IsMuted.Store(muted)
	if ctx.Audio != nil {
		ctx.Audio.SetMuted(muted)
	}
	ctx.metrics.muted.Store(muted)
}

// Resize re-derives the world extent from new terminal dimensions
// Entities keep their world positions; the skater start follows the new width on the next run
func (ctx *GameContext) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == ctx.Width && height == ctx.Height) {
		return
	}
	ctx.Width, ctx.Height = width, height
	worldW, worldH := ctx.WorldSize()
	ctx.World.Resize(worldW, worldH)

	ctx.Dims.ScreenWidth, ctx.Dims.ScreenHeight = width, height
	ctx.Dims.WorldWidth, ctx.Dims.WorldHeight = worldW, worldH
}

// Update runs one frame: advances time and scroll, dispatches events, then runs all systems
func (ctx *GameContext) Update() {
	frame := ctx.FrameNumber.Add(1)
	if ctx.IsPaused.Load() {
		ctx.publishStatus()
		return
	}

	now := ctx.Clock.Now()
	var dt time.Duration
	if ctx.State.IsRunning() {
		ctx.State.ScrollSpeed += ctx.Config.Gameplay.ScrollSpeedIncrement
		dt = ctx.State.Advance(now, constants.MaxFrameElapsed)
		ctx.State.ScrollAmount = ctx.State.ScrollSpeed * float64(dt) / float64(constants.ExpectedFrameElapsed)
	} else {
		ctx.State.ScrollAmount = 0
	}
	ctx.Time.Update(now, dt, frame)

	ctx.metrics.events.Add(int64(ctx.Router.DispatchAll(ctx.World)))
	ctx.World.Update(dt)
	ctx.publishStatus()
}

// publishStatus mirrors state into the registry for off-loop readers
func (ctx *GameContext) publishStatus() {
	m := ctx.metrics
	m.phase.Store(ctx.State.Phase.String())
	m.runID.Store(ctx.State.RunID)
	m.score.Store(int64(ctx.State.Score))
	m.highScore.Store(int64(ctx.State.HighScore))
	m.frame.Store(ctx.FrameNumber.Load())
	m.speed.Store(ctx.State.ScrollSpeed)
	m.paused.Store(ctx.IsPaused.Load())
	m.muted.Store(ctx.IsMuted.Load())
	m.bricks.Store(int64(ctx.World.BrickCount()))
	m.gems.Store(int64(ctx.World.GemCount()))
	m.sparks.Store(int64(ctx.World.SparkCount()))
}
