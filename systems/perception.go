package systems

import (
	"github.com/automoto/outbreak/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePerception re-evaluates each AI unit's target on its scan interval.
func UpdatePerception(ecs *ecs.ECS) {
	dt := simOf(ecs.World).Dt

	components.AI.Each(ecs.World, func(e *donburi.Entry) {
		if IsDead(e) {
			return
		}
		ai := components.AI.Get(e)
		ai.ScanTimer -= dt
		if ai.ScanTimer > 0 {
			return
		}
		checkClosestEnemy(e, ai)
		ai.ScanTimer = ai.ScanInterval
	})
}

// checkClosestEnemy drops a dead or hidden target, then adopts the nearest
// visible enemy that is strictly closer than the current one. Equal
// distances keep the first one found.
func checkClosestEnemy(e *donburi.Entry, ai *components.AIData) {
	w := e.World
	pos := positionOf(e)

	closest := -1.0
	if target, ok := entryOf(w, ai.Target); ok && !IsDead(target) && canSee(e, ai, target) {
		closest = positionOf(target).Distance(pos)
	} else {
		ai.Target = donburi.Null
	}

	var newEnemy *donburi.Entry
	for _, c := range overlapUnits(w, pos, ai.AwareRange, components.Unit.Get(e).Enemies) {
		if c.Entity() == e.Entity() || IsDead(c) {
			continue
		}
		d := positionOf(c).Distance(pos)
		if (closest == -1 || closest > d) && canSee(e, ai, c) {
			closest = d
			newEnemy = c
		}
	}

	if newEnemy != nil && newEnemy.Entity() != ai.Target {
		ai.Target = newEnemy.Entity()
		simOf(w).Logger.Debug().
			Str("unit", components.Unit.Get(e).Type).
			Str("target", components.Unit.Get(newEnemy).Type).
			Float64("distance", closest).
			Msg("target acquired")
		broadcastNewEnemy(e, ai, newEnemy)
	}
}

// canSee reports whether target is within the aware range with no wall between.
func canSee(e *donburi.Entry, ai *components.AIData, target *donburi.Entry) bool {
	if target == nil || !target.Valid() {
		return false
	}
	from, to := positionOf(e), positionOf(target)
	if from.Distance(to) > ai.AwareRange {
		return false
	}
	return lineOfSight(e.World, from, to)
}

// addEnemy adopts enemy when it is visible and there is no target yet, or it
// is strictly closer than the current one. The enemy's layer joins the
// enemy mask.
func addEnemy(e *donburi.Entry, enemy *donburi.Entry) {
	if enemy == nil || !enemy.Valid() || enemy.Entity() == e.Entity() {
		return
	}
	ai := components.AI.Get(e)
	if !canSee(e, ai, enemy) {
		return
	}

	pos := positionOf(e)
	current, ok := entryOf(e.World, ai.Target)
	if !ok || (current.Entity() != enemy.Entity() && positionOf(enemy).Distance(pos) < positionOf(current).Distance(pos)) {
		ai.Target = enemy.Entity()
	}

	if enemy.HasComponent(components.Unit) {
		unit := components.Unit.Get(e)
		layer := components.Unit.Get(enemy).Layer
		if layer != unit.Layer && layer != components.LayerDead {
			unit.Enemies |= layer
		}
	}
}

// broadcastNewEnemy tells friendly AI units in range about enemy. Receivers
// do not pass it on.
func broadcastNewEnemy(e *donburi.Entry, ai *components.AIData, enemy *donburi.Entry) {
	if enemy == nil || ai.BroadcastRange == 0 {
		return
	}
	unit := components.Unit.Get(e)
	for _, f := range overlapUnits(e.World, positionOf(e), ai.BroadcastRange, unit.Friendlies) {
		if f.Entity() == e.Entity() || !f.HasComponent(components.AI) || IsDead(f) {
			continue
		}
		addEnemy(f, enemy)
	}
}

// onAttacked is the AI reaction to taking damage.
func onAttacked(e *donburi.Entry, attacker donburi.Entity) {
	ai := components.AI.Get(e)
	if !ai.StickyPath {
		ai.PathNode = donburi.Null
	}

	a, ok := entryOf(e.World, attacker)
	if !ok {
		return
	}
	if !IsDead(e) && ai.AddEnemyOnAttack {
		addEnemy(e, a)
	}
	broadcastNewEnemy(e, ai, a)
}

// Target returns the unit's current target, if it is still valid.
func Target(e *donburi.Entry) (*donburi.Entry, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(components.AI) {
		return nil, false
	}
	return entryOf(e.World, components.AI.Get(e).Target)
}
