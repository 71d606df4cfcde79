package systems

import (
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat drains the queued hits of every victim. Igniting hits set
// living units on fire unless they already burn.
func UpdateCombat(ecs *ecs.ECS) {
	sim := simOf(ecs.World)

	var victims []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		victims = append(victims, e)
	}

	for _, e := range victims {
		hits := components.DamageEvent.Get(e).Hits
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		for _, hit := range hits {
			if hit.Amount != 0 {
				Damage(e, hit.Amount, hit.Position, hit.Normal, hit.Attacker, hit.DoEffects)
			}
			if hit.Ignite && !IsDead(e) && e.HasComponent(components.Unit) && !e.HasComponent(components.Damager) {
				donburi.Add(e, components.Damager, &components.DamagerData{
					DamagePerSecond: cfg.Burn.DamagePerSecond,
					DestroyOnDeath:  true,
				})
				sim.Effects.Emit(components.EffectIgnite, hit.Position, hit.Normal)
			}
		}
	}
}
