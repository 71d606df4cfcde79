package systems

import (
	"slices"

	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers runs every active trigger zone against the living units
// overlapping it. Enter actions fire once per visit; damage applies every
// tick a unit stays inside.
func UpdateTriggers(ecs *ecs.ECS) {
	var zones []*donburi.Entry
	components.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		zones = append(zones, e)
	})

	for _, z := range zones {
		if components.Trigger.Get(z).Active {
			updateTrigger(ecs.World, z)
		}
	}
}

func updateTrigger(w donburi.World, z *donburi.Entry) {
	sim := simOf(w)
	t := components.Trigger.Get(z)
	inside := unitsInZone(z, t.Mask)

	seen := make(map[donburi.Entity]bool, len(inside))
	for _, u := range inside {
		id := u.Entity()
		seen[id] = true

		if t.DamagePerSecond != 0 {
			center := components.Object.Get(z).Center()
			Damage(u, t.DamagePerSecond*sim.Dt, positionOf(u), center.Sub(positionOf(u)).Normalized(), donburi.Null, t.DoHitEffects)
		}
		if t.Inside[id] || IsDead(u) {
			continue
		}

		activateTargets(w, t.Activate)
		if t.PathNode != donburi.Null && u.HasComponent(components.AI) {
			dir := components.AI.Get(u).PathDir
			if dir == 0 {
				dir = 1
			}
			SetPath(u, t.PathNode, t.PathMode, dir, t.StickyPath)
		}

		if t.DestroyOnEnter {
			t.DestroyCount++
			delete(seen, id)
			sim.Logger.Debug().
				Str("trigger", t.Name).
				Str("unit", components.Unit.Get(u).Type).
				Int("count", t.DestroyCount).
				Msg("unit left the map")
			destroyUnit(w, u)
		}

		if t.DeactivateOnTrigger {
			t.Active = false
			break
		}
	}
	t.Inside = seen
}

// unitsInZone returns the living units in mask whose bodies overlap the zone.
func unitsInZone(z *donburi.Entry, mask components.Layer) []*donburi.Entry {
	obj := components.Object.Get(z)
	check := obj.Check(0, 0, tags.ResolvUnit)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvUnit) {
		u, ok := o.Data.(*donburi.Entry)
		if !ok || !u.Valid() || IsDead(u) || !overlaps(obj.Object, o) {
			continue
		}
		if !components.Unit.Get(u).Layer.Has(mask) || slices.Contains(out, u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// activateTargets switches on the spawners and triggers with the given names.
func activateTargets(w donburi.World, names []string) {
	if len(names) == 0 {
		return
	}
	components.Spawner.Each(w, func(e *donburi.Entry) {
		s := components.Spawner.Get(e)
		if !s.Active && slices.Contains(names, s.Name) {
			s.Active = true
			s.Wait = s.InitialDelay
		}
	})
	components.Trigger.Each(w, func(e *donburi.Entry) {
		t := components.Trigger.Get(e)
		if !t.Active && slices.Contains(names, t.Name) {
			t.Active = true
		}
	})
}

// EscapedCount sums the units removed by escape triggers.
func EscapedCount(w donburi.World) int {
	n := 0
	components.Trigger.Each(w, func(e *donburi.Entry) {
		if t := components.Trigger.Get(e); t.Escape {
			n += t.DestroyCount
		}
	})
	return n
}
