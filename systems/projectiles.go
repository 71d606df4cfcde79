package systems

import (
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// allLiving is every layer a blast can hurt.
const allLiving = components.LayerCivilian | components.LayerCop | components.LayerSoldier |
	components.LayerZombie | components.LayerPlayer

// UpdateProjectiles moves projectiles. Flat shots sweep a ray of this tick's
// travel to avoid tunnelling through thin walls; lobbed shots fly over
// obstacles and detonate where they land.
func UpdateProjectiles(ecs *ecs.ECS) {
	sim := simOf(ecs.World)
	dt := sim.Dt

	var toRemove []*donburi.Entry
	var impacts []func()
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		tr := components.Transform.Get(e)

		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			toRemove = append(toRemove, e)
			return
		}

		step := p.Speed * dt
		remaining := p.MaxDistance - p.Traveled

		if p.Ballistic {
			if step >= remaining {
				landing := tr.Position.Add(p.Direction.MulScalar(remaining))
				shot := *p
				impacts = append(impacts, func() { detonate(ecs, &shot, landing) })
				toRemove = append(toRemove, e)
				return
			}
			advance(e, tr, p.Direction.MulScalar(step))
			p.Traveled += step
			return
		}

		q := rayQuery{walls: true, units: p.HitMask, exclude: p.Attacker}
		if hit, ok := raycast(ecs.World, tr.Position, p.Direction, min(step, remaining), q); ok {
			shot := *p
			impacts = append(impacts, func() {
				if hit.Entry != nil {
					Damage(hit.Entry, shot.Damage, hit.Point, hit.Normal, shot.Attacker, true)
				} else {
					sim.Effects.Emit(components.EffectWorldHit, hit.Point, hit.Normal)
				}
				detonate(ecs, &shot, hit.Point)
			})
			toRemove = append(toRemove, e)
			return
		}

		if step >= remaining {
			toRemove = append(toRemove, e)
			return
		}
		advance(e, tr, p.Direction.MulScalar(step))
		p.Traveled += step
	})

	for _, impact := range impacts {
		impact()
	}
	for _, e := range toRemove {
		destroyEntity(ecs.World, e)
	}
}

func advance(e *donburi.Entry, tr *components.TransformData, delta gamemath.Vec2) {
	tr.Position = tr.Position.Add(delta)
	if e.HasComponent(components.Object) {
		components.Object.Get(e).MoveCenter(tr.Position)
	}
}

// detonate spawns the projectile's blast volume, if it has one.
func detonate(ecs *ecs.ECS, p *components.ProjectileData, pos gamemath.Vec2) {
	if p.BlastRadius <= 0 {
		return
	}
	factory.CreateDamageVolume(ecs, pos, components.DamageVolumeData{
		Range:          p.BlastRadius,
		Damage:         cfg.Blast.Damage,
		ScaleOverRange: cfg.Blast.ScaleOverRange,
		OneShot:        cfg.Blast.OneShot,
		Delay:          cfg.Blast.Delay,
		DoEffects:      true,
		Mask:           allLiving,
		Attacker:       p.Attacker,
	})
	simOf(ecs.World).Effects.Emit(components.EffectExplosion, pos, gamemath.Vec2{})
}
