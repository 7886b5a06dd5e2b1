package engine

import (
	"sort"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/skater/components"
	"github.com/lixenwraith/skater/constants"
	"github.com/lixenwraith/skater/physics"
)

// System is one stage of the frame update
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int
}

// World contains all entities in an ark ECS world plus their collision bodies
// Main-loop exclusive: entities are only created and destroyed during the frame tick
type World struct {
	ECS   ecs.World
	Space *physics.Space

	// Archetype mappers
	Skaters *ecs.Map5[components.Transform, components.Size, components.Body, components.Collider, components.Skater]
	Bricks  *ecs.Map4[components.Transform, components.Size, components.Brick, components.Collider]
	Gems    *ecs.Map4[components.Transform, components.Size, components.Gem, components.Collider]
	Sparks  *ecs.Map2[components.Transform, components.Spark]

	// Filters, one per entity kind
	BrickFilter  *ecs.Filter4[components.Transform, components.Size, components.Brick, components.Collider]
	GemFilter    *ecs.Filter4[components.Transform, components.Size, components.Gem, components.Collider]
	SparkFilter  *ecs.Filter2[components.Transform, components.Spark]
	SkaterFilter *ecs.Filter5[components.Transform, components.Size, components.Body, components.Collider, components.Skater]

	// Single-component access for mixed entity kinds
	Colliders *ecs.Map[components.Collider]

	skater  ecs.Entity
	systems []System
}

// NewWorld creates an empty world whose collision space covers worldWidth x worldHeight
func NewWorld(worldWidth, worldHeight float64) *World {
	w := &World{
		ECS:   ecs.NewWorld(),
		Space: physics.NewSpace(worldWidth, worldHeight),
	}

	w.Skaters = ecs.NewMap5[components.Transform, components.Size, components.Body, components.Collider, components.Skater](&w.ECS)
	w.Bricks = ecs.NewMap4[components.Transform, components.Size, components.Brick, components.Collider](&w.ECS)
	w.Gems = ecs.NewMap4[components.Transform, components.Size, components.Gem, components.Collider](&w.ECS)
	w.Sparks = ecs.NewMap2[components.Transform, components.Spark](&w.ECS)

	w.BrickFilter = ecs.NewFilter4[components.Transform, components.Size, components.Brick, components.Collider](&w.ECS)
	w.GemFilter = ecs.NewFilter4[components.Transform, components.Size, components.Gem, components.Collider](&w.ECS)
	w.SparkFilter = ecs.NewFilter2[components.Transform, components.Spark](&w.ECS)
	w.SkaterFilter = ecs.NewFilter5[components.Transform, components.Size, components.Body, components.Collider, components.Skater](&w.ECS)

	w.Colliders = ecs.NewMap[components.Collider](&w.ECS)

	return w
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// Resize rebuilds the collision space for new world dimensions
func (w *World) Resize(worldWidth, worldHeight float64) {
	w.Space.Resize(worldWidth, worldHeight)
}

// SpawnSkater creates the skater at pos, replacing any previous one
func (w *World) SpawnSkater(pos components.Transform) ecs.Entity {
	if e, ok := w.Skater(); ok {
		w.DestroyEntity(e)
	}

	size := components.Size{W: constants.SkaterWidth, H: constants.SkaterHeight}
	body := components.Body{OnGround: true}
	e := w.Skaters.NewEntity(&pos, &size, &body, &components.Collider{}, &components.Skater{})

	_, _, _, col, _ := w.Skaters.Get(e)
	col.Object = w.Space.Add(physics.TagSkater, pos, size, e)
	w.skater = e
	return e
}

// Skater returns the skater entity and whether it exists
func (w *World) Skater() (ecs.Entity, bool) {
	if w.skater.IsZero() || !w.ECS.Alive(w.skater) {
		return ecs.Entity{}, false
	}
	return w.skater, true
}

// SpawnBrick creates a sidewalk section centered at pos
func (w *World) SpawnBrick(pos components.Transform, level components.BrickLevel) ecs.Entity {
	size := components.Size{W: constants.BrickWidth, H: constants.BrickHeight}
	brick := components.Brick{Level: level}
	e := w.Bricks.NewEntity(&pos, &size, &brick, &components.Collider{})

	_, _, _, col := w.Bricks.Get(e)
	col.Object = w.Space.Add(physics.TagBrick, pos, size, e)
	return e
}

// SpawnGem creates a collectible centered at pos
func (w *World) SpawnGem(pos components.Transform, bonus int) ecs.Entity {
	size := components.Size{W: constants.GemWidth, H: constants.GemHeight}
	gem := components.Gem{Bonus: bonus}
	e := w.Gems.NewEntity(&pos, &size, &gem, &components.Collider{})

	_, _, _, col := w.Gems.Get(e)
	col.Object = w.Space.Add(physics.TagGem, pos, size, e)
	return e
}

// SpawnSpark creates a particle; sparks have no collision body
func (w *World) SpawnSpark(pos components.Transform, spark components.Spark) ecs.Entity {
	return w.Sparks.NewEntity(&pos, &spark)
}

// DestroyEntity removes an entity and its collision body; dead entities are ignored
func (w *World) DestroyEntity(e ecs.Entity) {
	if e.IsZero() || !w.ECS.Alive(e) {
		return
	}
	if w.Colliders.Has(e) {
		w.Space.Remove(w.Colliders.Get(e).Object)
	}
	w.ECS.RemoveEntity(e)
}

// DestroyAll removes every entity in es
// Use after a query has been fully iterated; the world is locked while a query runs
func (w *World) DestroyAll(es []ecs.Entity) {
	for _, e := range es {
		w.DestroyEntity(e)
	}
}

// ClearBricks removes all sidewalk sections
func (w *World) ClearBricks() {
	var dead []ecs.Entity
	q := w.BrickFilter.Query()
	for q.Next() {
		dead = append(dead, q.Entity())
	}
	w.DestroyAll(dead)
}

// ClearGems removes all collectibles
func (w *World) ClearGems() {
	var dead []ecs.Entity
	q := w.GemFilter.Query()
	for q.Next() {
		dead = append(dead, q.Entity())
	}
	w.DestroyAll(dead)
}

// ClearSparks removes all particles
func (w *World) ClearSparks() {
	var dead []ecs.Entity
	q := w.SparkFilter.Query()
	for q.Next() {
		dead = append(dead, q.Entity())
	}
	w.DestroyAll(dead)
}

// BrickCount returns the number of live sidewalk sections
func (w *World) BrickCount() int {
	n := 0
	q := w.BrickFilter.Query()
	for q.Next() {
		n++
	}
	return n
}

// GemCount returns the number of live collectibles
func (w *World) GemCount() int {
	n := 0
	q := w.GemFilter.Query()
	for q.Next() {
		n++
	}
	return n
}

// SparkCount returns the number of live particles
func (w *World) SparkCount() int {
	n := 0
	q := w.SparkFilter.Query()
	for q.Next() {
		n++
	}
	return n
}
