package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/outbreak/archetypes"
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrUnknownWeapon = errors.New("unknown weapon")

// CreateWeapon builds an unowned, enabled weapon from its config entry.
func CreateWeapon(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	wt, ok := cfg.Weapons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
	}
	kind, err := components.ParseWeaponKind(wt.Kind)
	if err != nil {
		return nil, fmt.Errorf("weapon %q: %w", name, err)
	}
	class, err := components.ParseWeaponClass(wt.Class)
	if err != nil {
		return nil, fmt.Errorf("weapon %q: %w", name, err)
	}

	weapon := archetypes.Weapon.Spawn(ecs)
	components.Weapon.SetValue(weapon, components.WeaponData{
		Name:               name,
		Kind:               kind,
		Class:              class,
		Enabled:            true,
		Owner:              donburi.Null,
		Damage:             wt.Damage,
		RateOfFire:         wt.RateOfFire,
		RateOfFireVariance: wt.RateOfFireVariance,
		Ammo:               wt.MaxAmmo,
		MaxAmmo:            wt.MaxAmmo,
		ReloadTime:         wt.ReloadTime,
		Range:              wt.Range,
		MinRange:           wt.MinRange,
		MaxRange:           wt.MaxRange,
		AccuracyError:      wt.AccuracyError,
		ProjectileSpeed:    wt.ProjectileSpeed,
		Ballistic:          wt.Ballistic,
		BlastRadius:        wt.BlastRadius,
		EmissionRate:       wt.EmissionRate,
		ParticleSpeed:      wt.ParticleSpeed,
		Infects:            wt.Infects,
		Ignites:            wt.Ignites,
	})
	components.Transform.SetValue(weapon, components.TransformData{
		Forward: gamemath.Vec2{X: 1},
	})

	return weapon, nil
}

// AttachWeapon hands weapon to unit. A weapon lying on the ground loses its
// item body.
func AttachWeapon(unit, weapon *donburi.Entry) {
	u := components.Unit.Get(unit)
	w := components.Weapon.Get(weapon)

	if weapon.HasComponent(components.Object) {
		obj := components.Object.Get(weapon)
		if spaceEntry, ok := components.Space.First(weapon.World); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		weapon.RemoveComponent(components.Object)
	}
	if weapon.HasComponent(tags.Item) {
		weapon.RemoveComponent(tags.Item)
	}

	w.Owner = unit.Entity()
	w.Enabled = true
	w.Input = false

	ut := components.Transform.Get(unit)
	components.Transform.SetValue(weapon, components.TransformData{
		Position: ut.Position,
		Forward:  ut.Forward,
	})
	w.Direction = ut.Forward
	w.Aim = ut.Position.Add(ut.Forward)

	u.Weapons = append(u.Weapons, weapon.Entity())
}
