package factory

import (
	"github.com/automoto/outbreak/archetypes"
	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner adds a spawner at pos. The initial delay starts counting
// when the spawner is active.
func CreateSpawner(ecs *ecs.ECS, pos gamemath.Vec2, data components.SpawnerData) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)

	data.Wait = data.InitialDelay
	if data.PathDir == 0 {
		data.PathDir = 1
	}
	if data.Facing.IsZero() {
		data.Facing = gamemath.Vec2{X: 1}
	}
	components.Spawner.SetValue(spawner, data)
	components.Transform.SetValue(spawner, components.TransformData{
		Position: pos,
		Forward:  data.Facing,
	})

	return spawner
}
