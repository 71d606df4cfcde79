package systems

import (
	"math"

	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// rayFirer resolves shots instantly with a raycast against walls and the
// owner's enemies.
type rayFirer struct{}

func (rayFirer) Fire(ecs *ecs.ECS, e, owner *donburi.Entry) error {
	sim := simOf(ecs.World)
	weapon := components.Weapon.Get(e)
	unit := components.Unit.Get(owner)

	origin := positionOf(owner)
	dir := jitter(sim, weapon.Direction, weapon.AccuracyError)

	q := rayQuery{walls: true, units: unit.Enemies, exclude: owner.Entity()}
	hit, ok := raycast(ecs.World, origin, dir, weapon.Range, q)
	end := origin.Add(dir.MulScalar(weapon.Range))

	switch {
	case ok && hit.Entry != nil:
		end = hit.Point
		Damage(hit.Entry, weapon.Damage, hit.Point, hit.Normal, owner.Entity(), true)
		if weapon.Infects && !IsDead(hit.Entry) {
			Infect(hit.Entry)
		}
	case ok:
		end = hit.Point
		sim.Effects.Emit(components.EffectWorldHit, hit.Point, hit.Normal)
	}

	sim.Effects.Emit(components.EffectTracer, origin, end.Sub(origin))
	return nil
}

// projectileFirer launches a projectile body. Ballistic weapons solve for the
// launch angle that lands on the aim point and refuse the shot when it is out
// of reach.
type projectileFirer struct{}

func (projectileFirer) Fire(ecs *ecs.ECS, e, owner *donburi.Entry) error {
	sim := simOf(ecs.World)
	weapon := components.Weapon.Get(e)
	unit := components.Unit.Get(owner)

	if weapon.ProjectileSpeed <= 0 {
		return ErrZeroSpeed
	}

	origin := positionOf(owner)
	dir := jitter(sim, weapon.Direction, weapon.AccuracyError)

	data := components.ProjectileData{
		Damage:      weapon.Damage,
		Speed:       weapon.ProjectileSpeed,
		Direction:   dir,
		Attacker:    owner.Entity(),
		HitMask:     unit.Enemies,
		MaxDistance: weapon.Range,
		BlastRadius: weapon.BlastRadius,
	}

	if weapon.Ballistic {
		pitch, err := gamemath.BallisticLaunchAngle(gamemath.Lift(origin, 0), gamemath.Lift(weapon.Aim, 0), weapon.ProjectileSpeed, sim.Gravity)
		if err != nil {
			return err
		}
		data.Ballistic = true
		data.Pitch = pitch
		data.MaxDistance = origin.Distance(weapon.Aim)
		// Ground speed of the lob
		data.Speed = weapon.ProjectileSpeed * math.Cos(pitch*math.Pi/180)
	}

	factory.CreateProjectile(ecs, origin, data)
	return nil
}

// particleFirer emits a stream of short-lived particles while the trigger is
// held.
type particleFirer struct{}

func (particleFirer) Fire(ecs *ecs.ECS, e, owner *donburi.Entry) error {
	sim := simOf(ecs.World)
	weapon := components.Weapon.Get(e)
	unit := components.Unit.Get(owner)

	speed := weapon.ParticleSpeed
	if speed <= 0 {
		return ErrZeroSpeed
	}

	factory.CreateParticle(ecs, positionOf(owner), components.ParticleData{
		Weapon:    e.Entity(),
		Attacker:  owner.Entity(),
		Damage:    weapon.Damage,
		Direction: jitter(sim, weapon.Direction, weapon.AccuracyError),
		Speed:     speed,
		Range:     weapon.Range,
		HitMask:   unit.Enemies,
		Ignites:   weapon.Ignites,
	})
	return nil
}

// Emit spawns EmissionRate particles per second while firing. The cooldown
// gates ammo use rather than each particle.
func (f particleFirer) Emit(ecs *ecs.ECS, e, owner *donburi.Entry, dt float64) {
	weapon := components.Weapon.Get(e)
	if !weapon.Input || weapon.Reloading() || !weapon.HasAmmo() {
		weapon.EmitBudget = 0
		return
	}

	if weapon.NextFire <= 0 {
		consumeShot(ecs.World, e, weapon, owner)
	}

	weapon.EmitBudget += weapon.EmissionRate * dt
	for weapon.EmitBudget >= 1 {
		weapon.EmitBudget--
		if err := f.Fire(ecs, e, owner); err != nil {
			weapon.EmitBudget = 0
			return
		}
	}
}
