package factory

import (
	"github.com/automoto/outbreak/archetypes"
	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrigger adds a trigger zone. x and y are the top-left corner.
func CreateTrigger(ecs *ecs.ECS, x, y, w, h float64, data components.TriggerData) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvTrigger)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = trigger

	if data.Inside == nil {
		data.Inside = make(map[donburi.Entity]bool)
	}
	components.Trigger.SetValue(trigger, data)
	components.Object.SetValue(trigger, components.ObjectData{Object: obj})
	components.Transform.SetValue(trigger, components.TransformData{
		Position: gamemath.Vec2{X: x + w/2, Y: y + h/2},
		Forward:  gamemath.Vec2{X: 1},
	})
	addToSpace(ecs, obj)

	return trigger
}
