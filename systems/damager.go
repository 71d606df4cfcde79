package systems

import (
	"github.com/automoto/outbreak/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamagers applies continuous damage to each damager's host. A damager
// whose host died is removed when DestroyOnDeath is set.
func UpdateDamagers(ecs *ecs.ECS) {
	dt := simOf(ecs.World).Dt

	var hosts []*donburi.Entry
	components.Damager.Each(ecs.World, func(e *donburi.Entry) {
		hosts = append(hosts, e)
	})

	for _, e := range hosts {
		if !e.Valid() {
			continue
		}
		d := components.Damager.Get(e)
		if IsDead(e) {
			if d.DestroyOnDeath {
				donburi.Remove[components.DamagerData](e, components.Damager)
			}
			continue
		}
		Damage(e, d.DamagePerSecond*dt, positionOf(e), forwardOf(e), donburi.Null, d.DoHitEffects)
	}
}
