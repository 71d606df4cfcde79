package systems

import (
	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/messages"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/automoto/outbreak/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups lets living units without weapons pick up the first dropped
// weapon they touch.
func UpdatePickups(ecs *ecs.ECS) {
	sim := simOf(ecs.World)

	type pickup struct {
		unit, weapon *donburi.Entry
	}
	var pickups []pickup
	claimed := map[donburi.Entity]bool{}

	tags.Unit.Each(ecs.World, func(e *donburi.Entry) {
		if IsDead(e) || len(components.Unit.Get(e).Weapons) > 0 {
			return
		}
		obj := components.Object.Get(e)
		check := obj.Check(0, 0, tags.ResolvItem)
		if check == nil {
			return
		}
		for _, item := range check.ObjectsByTags(tags.ResolvItem) {
			we, ok := item.Data.(*donburi.Entry)
			if !ok || !we.Valid() || claimed[we.Entity()] || !overlaps(obj.Object, item) {
				continue
			}
			claimed[we.Entity()] = true
			pickups = append(pickups, pickup{unit: e, weapon: we})
			return
		}
	})

	for _, p := range pickups {
		factory.AttachWeapon(p.unit, p.weapon)

		name := components.Weapon.Get(p.weapon).Name
		messages.WeaponPickedUp.Publish(ecs.World, messages.WeaponPickedUpEvent{
			Weapon:     p.weapon.Entity(),
			Unit:       p.unit.Entity(),
			WeaponName: name,
			Time:       sim.Time,
		})
		sim.Logger.Debug().
			Str("unit", components.Unit.Get(p.unit).Type).
			Str("weapon", name).
			Msg("weapon picked up")
	}
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
