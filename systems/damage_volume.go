package systems

import (
	"github.com/automoto/outbreak/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamageVolumes deals radial damage to units inside each volume once its
// delay has elapsed. One-shot volumes are removed after their first pulse.
func UpdateDamageVolumes(ecs *ecs.ECS) {
	dt := simOf(ecs.World).Dt

	var volumes []*donburi.Entry
	components.DamageVolume.Each(ecs.World, func(e *donburi.Entry) {
		volumes = append(volumes, e)
	})

	for _, e := range volumes {
		v := components.DamageVolume.Get(e)
		v.Wait -= dt
		if v.Wait > 0 {
			continue
		}

		center := components.Transform.Get(e).Position
		for _, victim := range overlapUnits(ecs.World, center, v.Range, v.Mask) {
			if IsDead(victim) {
				continue
			}
			pos := positionOf(victim)
			amount := v.Damage
			if v.ScaleOverRange && v.Range > 0 {
				amount *= 1 - pos.Distance(center)/v.Range
			}
			if amount <= 0 {
				continue
			}
			Damage(victim, amount, pos, pos.Sub(center).Normalized(), v.Attacker, v.DoEffects)
		}

		if v.OneShot {
			destroyEntity(ecs.World, e)
			continue
		}
		v.Wait = v.Delay
	}
}
