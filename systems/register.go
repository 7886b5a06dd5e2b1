package systems

import (
	"github.com/lixenwraith/skater/engine"
)

// RegisterAll adds every game system to the context's world and wires event handlers
func RegisterAll(ctx *engine.GameContext) {
	sparks := NewSparkSystem(ctx)
	audio := NewAudioSystem(ctx)

	ctx.World.AddSystem(NewTerrainSystem(ctx))
	ctx.World.AddSystem(NewSkaterSystem(ctx))
	ctx.World.AddSystem(NewGemSystem(ctx))
	ctx.World.AddSystem(NewScoreSystem(ctx))
	ctx.World.AddSystem(NewPhysicsSystem(ctx))
	ctx.World.AddSystem(sparks)
	ctx.World.AddSystem(audio)

	ctx.Router.Register(sparks)
	ctx.Router.Register(audio)
}
