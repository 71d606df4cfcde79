package factory

import (
	"github.com/automoto/outbreak/archetypes"
	"github.com/automoto/outbreak/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace adds the resolv space singleton. Sizes are in world units.
func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	if cellSize <= 0 {
		cellSize = 1
	}
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the space singleton if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
