package systems

import (
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/shared/messages"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
)

// Damage applies amount to e. Positive amounts go through the shield first;
// negative amounts heal. Dead entities ignore damage. attacker may be
// donburi.Null.
func Damage(e *donburi.Entry, amount float64, hitPos, hitNormal gamemath.Vec2, attacker donburi.Entity, doEffects bool) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(e)
	if hp.Dead() {
		return
	}

	applyDamage(e, hp, amount, hitPos, hitNormal, attacker, doEffects)

	if e.HasComponent(components.AI) {
		onAttacked(e, attacker)
	}
}

func applyDamage(e *donburi.Entry, hp *components.HealthData, amount float64, hitPos, hitNormal gamemath.Vec2, attacker donburi.Entity, doEffects bool) {
	if amount > 0 && e.HasComponent(components.Shield) {
		amount = components.Shield.Get(e).Absorb(amount)
		if amount <= 0 {
			return
		}
	}

	hp.Current = gamemath.Clamp(hp.Current-amount, 0, hp.Max)

	if doEffects {
		simOf(e.World).Effects.Emit(components.EffectHit, hitPos, hitNormal)
	}

	if hp.Current <= 0 {
		Die(e, attacker)
	}
}

// Die kills e. It runs once per entity: health is forced to 0, the unit moves
// to the dead layer, drops item weapons and a UnitDied event is published.
func Die(e *donburi.Entry, killer donburi.Entity) {
	if e == nil || !e.Valid() || e.HasComponent(components.Death) {
		return
	}

	sim := simOf(e.World)
	pos := positionOf(e)

	linger := 0.0
	if e.HasComponent(components.Health) {
		hp := components.Health.Get(e)
		hp.Current = 0
		if hp.DestroyOnDeath {
			linger = cfg.Sim.CorpseLinger
		}
	}

	ev := messages.UnitDiedEvent{
		Unit:     e.Entity(),
		Killer:   killer,
		Infected: e.HasComponent(components.Infection),
		Position: pos,
		Time:     sim.Time,
	}
	if k, ok := entryOf(e.World, killer); ok && k.HasComponent(components.Unit) {
		ev.KillerType = components.Unit.Get(k).Type
	}

	if e.HasComponent(components.Unit) {
		unit := components.Unit.Get(e)
		ev.Type = unit.Type
		unit.Layer = components.LayerDead
		unit.Move = gamemath.Vec2{}
		unit.Running = false
		dropWeapons(e, unit)
	}

	donburi.Add(e, components.Death, &components.DeathData{
		Killer: killer,
		Timer:  linger,
	})

	sim.Effects.Emit(components.EffectDie, pos, forwardOf(e))
	messages.UnitDied.Publish(e.World, ev)

	sim.Logger.Debug().
		Str("unit", ev.Type).
		Uint64("entity", uint64(e.Entity())).
		Str("killer", ev.KillerType).
		Msg("unit died")
}

// dropWeapons disables every weapon and drops the item class ones where the
// unit stands.
func dropWeapons(e *donburi.Entry, unit *components.UnitData) {
	pos := positionOf(e)
	kept := unit.Weapons[:0]
	for _, handle := range unit.Weapons {
		we, ok := entryOf(e.World, handle)
		if !ok {
			continue
		}
		weapon := components.Weapon.Get(we)
		weapon.Enabled = false
		weapon.Input = false

		if weapon.Class == components.ClassUnarmed {
			kept = append(kept, handle)
			continue
		}
		weapon.Owner = donburi.Null
		components.Transform.Get(we).Position = pos
		placeItem(we, pos)
	}
	unit.Weapons = kept
}

// placeItem makes a dropped weapon touchable by adding an item body to the space.
func placeItem(we *donburi.Entry, pos gamemath.Vec2) {
	obj := factory.NewBody(pos, cfg.Pickup.ItemSize, tags.ResolvItem)
	obj.Data = we

	if !we.HasComponent(tags.Item) {
		we.AddComponent(tags.Item)
	}
	donburi.Add(we, components.Object, &components.ObjectData{Object: obj})

	if space := spaceOf(we.World); space != nil {
		space.Add(obj)
	}
}
