package systems

import (
	"github.com/automoto/outbreak/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShields recharges the shields of living units.
func UpdateShields(ecs *ecs.ECS) {
	dt := simOf(ecs.World).Dt

	components.Shield.Each(ecs.World, func(e *donburi.Entry) {
		if IsDead(e) {
			return
		}
		components.Shield.Get(e).Recharge(dt)
	})
}
