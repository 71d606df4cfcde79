package systems

import (
	"github.com/automoto/outbreak/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes corpses of units destroyed on death once their linger
// time is over. Other corpses stay in the world.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := simOf(ecs.World).Dt

	var toRemove []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Health) || !components.Health.Get(e).DestroyOnDeath {
			return
		}
		// Corpses waiting to rise are removed by the infection instead
		if e.HasComponent(components.Infection) && components.Infection.Get(e).State != components.InfectionRisen {
			return
		}

		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroyUnit(ecs.World, e)
	}
}
