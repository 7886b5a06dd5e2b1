package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/skater/components"
	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/engine"
)

// TerrainSystem scrolls sidewalk sections and keeps the world filled to its right edge
type TerrainSystem struct {
	ctx  *engine.GameContext
	dead []ecs.Entity
}

// NewTerrainSystem creates a new terrain system
func NewTerrainSystem(ctx *engine.GameContext) *TerrainSystem {
	return &TerrainSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *TerrainSystem) Priority() int {
	return constants.PriorityTerrain
}

// Update scrolls, prunes and spawns bricks
func (s *TerrainSystem) Update(world *engine.World, dt time.Duration) {
	if !s.ctx.State.IsRunning() {
		return
	}
	farthest := s.scroll(world, s.ctx.State.ScrollAmount)
	s.fill(world, farthest)
}

// scroll moves every brick left, removes those fully past the left edge and
// returns the largest surviving center x (0 without bricks)
func (s *TerrainSystem) scroll(world *engine.World, amount float64) float64 {
	farthest := 0.0
	s.dead = s.dead[:0]

	q := world.BrickFilter.Query()
	for q.Next() {
		pos, size, _, col := q.Get()
		pos.X -= amount
		if pos.X < -constants.BrickWidth {
			s.dead = append(s.dead, q.Entity())
			continue
		}
		world.Space.Sync(col.Object, *pos, *size)
		if pos.X > farthest {
			farthest = pos.X
		}
	}

	world.DestroyAll(s.dead)
	return farthest
}

// fill spawns bricks until the rightmost one reaches the world width
// Each new brick rolls for a gap (with a gem over it) or a level change
func (s *TerrainSystem) fill(world *engine.World, farthest float64) {
	state := s.ctx.State
	g := s.ctx.Config.Gameplay
	worldWidth := s.ctx.Dims.WorldWidth

	for farthest < worldWidth {
		brickX := farthest + constants.BrickWidth + constants.BrickSpacing
		level := state.BrickLevel
		brickY := constants.BrickHeight/2 + float64(level)

		roll := s.ctx.Roller.Intn(constants.SpawnRollRange)
		switch {
		case roll < g.GapChance && state.Score > g.GapScoreThreshold:
			gap := g.GapSpeedFactor * state.ScrollSpeed
			brickX += gap

			gemY := brickY + constants.SkaterHeight + float64(s.ctx.Roller.Intn(g.GemHeightRange))
			world.SpawnGem(components.Transform{X: brickX - gap/2, Y: gemY}, g.GemBonus)

		case roll < g.LevelChance && state.Score > g.LevelScoreThreshold:
			// Applies from the next brick on
			state.ToggleBrickLevel()
		}

		world.SpawnBrick(components.Transform{X: brickX, Y: brickY}, level)
		farthest = brickX
	}
}
