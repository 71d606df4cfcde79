package systems

import (
	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles sweeps particles forward. A particle that touches a unit
// queues a hit on it and is spent; walls absorb particles silently.
func UpdateParticles(ecs *ecs.ECS) {
	dt := simOf(ecs.World).Dt

	type pendingHit struct {
		victim *donburi.Entry
		hit    components.Hit
	}

	var toRemove []*donburi.Entry
	var hits []pendingHit
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		tr := components.Transform.Get(e)

		remaining := p.Range - p.Traveled
		step := min(p.Speed*dt, remaining)
		if step <= 0 {
			toRemove = append(toRemove, e)
			return
		}

		q := rayQuery{walls: true, units: p.HitMask, exclude: p.Attacker}
		if hit, ok := raycast(ecs.World, tr.Position, p.Direction, step, q); ok {
			if hit.Entry != nil {
				hits = append(hits, pendingHit{hit.Entry, components.Hit{
					Amount:   p.Damage,
					Position: hit.Point,
					Normal:   hit.Normal,
					Attacker: p.Attacker,
					Ignite:   p.Ignites,
				}})
			}
			toRemove = append(toRemove, e)
			return
		}

		tr.Position = tr.Position.Add(p.Direction.MulScalar(step))
		p.Traveled += step
		if p.Traveled >= p.Range {
			toRemove = append(toRemove, e)
		}
	})

	for _, h := range hits {
		queueHit(h.victim, h.hit)
	}
	for _, e := range toRemove {
		destroyEntity(ecs.World, e)
	}
}

// queueHit appends a hit to the victim's damage queue.
func queueHit(victim *donburi.Entry, hit components.Hit) {
	if !victim.Valid() {
		return
	}
	if victim.HasComponent(components.DamageEvent) {
		ev := components.DamageEvent.Get(victim)
		ev.Hits = append(ev.Hits, hit)
		return
	}
	donburi.Add(victim, components.DamageEvent, &components.DamageEventData{
		Hits: []components.Hit{hit},
	})
}
