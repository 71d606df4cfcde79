package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrWeaponReloading = errors.New("weapon is reloading")
	ErrNoAmmo          = errors.New("weapon is out of ammo")
	ErrZeroSpeed       = errors.New("projectile speed must be positive")
)

// Firer resolves a single shot for one weapon kind.
type Firer interface {
	Fire(ecs *ecs.ECS, weapon, owner *donburi.Entry) error
}

// emitter is implemented by firers that produce output continuously while
// the trigger is held.
type emitter interface {
	Emit(ecs *ecs.ECS, weapon, owner *donburi.Entry, dt float64)
}

var firers = map[components.WeaponKind]Firer{
	components.WeaponRay:        rayFirer{},
	components.WeaponProjectile: projectileFirer{},
	components.WeaponParticle:   particleFirer{},
}

// UpdateWeapons advances cooldowns and reloads and fires every weapon whose
// trigger is held.
func UpdateWeapons(ecs *ecs.ECS) {
	sim := simOf(ecs.World)
	dt := sim.Dt

	var weapons []*donburi.Entry
	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		weapons = append(weapons, e)
	})

	for _, e := range weapons {
		if !e.Valid() {
			continue
		}
		weapon := components.Weapon.Get(e)
		if !weapon.Enabled {
			continue
		}

		owner, ok := entryOf(ecs.World, weapon.Owner)
		if !ok {
			weapon.Input = false
			continue
		}
		tr := components.Transform.Get(e)
		tr.Position = positionOf(owner)
		tr.Forward = forwardOf(owner)

		if weapon.Reloading() {
			weapon.ReloadWait -= dt
			if weapon.ReloadWait <= 0 {
				weapon.ReloadWait = 0
				weapon.Ammo = weapon.MaxAmmo
			}
		}

		weapon.NextFire -= dt

		if em, ok := firers[weapon.Kind].(emitter); ok {
			em.Emit(ecs, e, owner, dt)
			continue
		}

		if weapon.Input && weapon.NextFire <= 0 && weapon.HasAmmo() {
			if err := fireWeapon(ecs, e, owner); err != nil {
				sim.Logger.Debug().
					Err(err).
					Str("weapon", weapon.Name).
					Uint64("entity", uint64(e.Entity())).
					Msg("shot refused")
			}
		}
	}
}

// fireWeapon charges ammo and cooldown, then hands the shot to the
// kind-specific firer. A shot the firer refuses stays charged.
func fireWeapon(ecs *ecs.ECS, e, owner *donburi.Entry) error {
	weapon := components.Weapon.Get(e)
	if weapon.Reloading() {
		return ErrWeaponReloading
	}
	if !weapon.HasAmmo() {
		return ErrNoAmmo
	}

	firer, ok := firers[weapon.Kind]
	if !ok {
		return fmt.Errorf("no firer for %s", weapon.Kind)
	}

	consumeShot(ecs.World, e, weapon, owner)
	return firer.Fire(ecs, e, owner)
}

func consumeShot(w donburi.World, e *donburi.Entry, weapon *components.WeaponData, owner *donburi.Entry) {
	sim := simOf(w)

	if weapon.Ammo > 0 {
		weapon.Ammo--
	}
	weapon.NextFire = weapon.RateOfFire
	if weapon.RateOfFireVariance > 0 {
		weapon.NextFire += sim.Range(-weapon.RateOfFireVariance, weapon.RateOfFireVariance)
	}

	sim.Effects.Emit(components.EffectMuzzle, positionOf(owner), weapon.Direction)

	messages.ShotFired.Publish(w, messages.ShotFiredEvent{
		Weapon:     e.Entity(),
		Owner:      owner.Entity(),
		WeaponName: weapon.Name,
		Kind:       weapon.Kind.String(),
		Time:       sim.Time,
	})

	if weapon.Ammo == 0 {
		Reload(e)
	}
}

// AimAt points the weapon at pos. Aiming at the owner's own position keeps
// the owner's forward as the direction.
func AimAt(e *donburi.Entry, pos gamemath.Vec2) {
	weapon := components.Weapon.Get(e)
	weapon.Aim = pos

	origin := components.Transform.Get(e).Position
	if owner, ok := entryOf(e.World, weapon.Owner); ok {
		origin = positionOf(owner)
	}
	dir := pos.Sub(origin).Normalized()
	if dir.IsZero() {
		dir = forwardOf(e)
		if owner, ok := entryOf(e.World, weapon.Owner); ok {
			dir = forwardOf(owner)
		}
	}
	weapon.Direction = dir
}

// RequestFire holds or releases the trigger.
func RequestFire(e *donburi.Entry, active bool) {
	components.Weapon.Get(e).Input = active
}

// Reload starts a reload. Weapons with infinite ammo never reload and a
// weapon without a reload time refills at once.
func Reload(e *donburi.Entry) {
	weapon := components.Weapon.Get(e)
	if weapon.MaxAmmo < 0 || weapon.Reloading() {
		return
	}
	if weapon.ReloadTime <= 0 {
		weapon.Ammo = weapon.MaxAmmo
		return
	}
	weapon.ReloadWait = weapon.ReloadTime
	simOf(e.World).Effects.Emit(components.EffectReload, components.Transform.Get(e).Position, weapon.Direction)
}

// Ammo returns the rounds left, -1 for infinite.
func Ammo(e *donburi.Entry) int {
	return components.Weapon.Get(e).Ammo
}

func Reloading(e *donburi.Entry) bool {
	return components.Weapon.Get(e).Reloading()
}

// jitter rotates dir by a random angle within +/- spread degrees.
func jitter(sim *components.SimData, dir gamemath.Vec2, spread float64) gamemath.Vec2 {
	if spread <= 0 {
		return dir
	}
	return gamemath.Rotate(dir, sim.Range(-spread, spread))
}
