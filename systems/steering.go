package systems

import (
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSteering turns each AI unit's target, path and wander state into a
// look direction, a move direction and weapon intent.
func UpdateSteering(ecs *ecs.ECS) {
	sim := simOf(ecs.World)

	components.AI.Each(ecs.World, func(e *donburi.Entry) {
		if IsDead(e) || !e.HasComponent(components.Unit) {
			return
		}
		steer(e, sim)
	})
}

func steer(e *donburi.Entry, sim *components.SimData) {
	w := e.World
	ai := components.AI.Get(e)
	unit := components.Unit.Get(e)
	tr := components.Transform.Get(e)
	pos := tr.Position

	ai.WanderTimer -= sim.Dt

	target, hasTarget := entryOf(w, ai.Target)
	if hasTarget && IsDead(target) {
		ai.Target = donburi.Null
		hasTarget = false
	}

	look := tr.Forward
	targetDist := 0.0

	if hasTarget {
		targetPos := positionOf(target)
		delta := targetPos.Sub(pos)
		dir := delta.Normalized()
		targetDist = delta.Magnitude()

		if len(unit.Weapons) == 0 {
			// Unarmed, run away
			look = dir.MulScalar(-1)
			unit.Move = dir.MulScalar(-1)
			unit.Running = true
		} else {
			look = dir
			for _, handle := range unit.Weapons {
				we, ok := entryOf(w, handle)
				if !ok {
					continue
				}
				weapon := components.Weapon.Get(we)

				switch {
				case weapon.MinRange > 0 && targetDist < weapon.MinRange:
					unit.Move = dir.MulScalar(-1)
					unit.Running = false
				case weapon.MaxRange > 0 && targetDist < weapon.MaxRange:
					unit.Move = gamemath.Vec2{}
					unit.Running = false
				default:
					unit.Move = dir
					unit.Running = true
				}

				if targetDist <= weapon.Range && gamemath.AngleBetween(tr.Forward, dir) <= cfg.Steering.FireAngle {
					AimAt(we, targetPos)
					weapon.Input = true
				} else {
					AimAt(we, pos.Add(tr.Forward))
					weapon.Input = false
				}
			}
		}
	} else {
		unit.Running = false
		checkNextPathNode(e, ai, unit)

		switch {
		case unit.HasMoveTo:
			delta := unit.MoveTo.Sub(pos)
			arrive := cfg.Steering.ArriveDistance
			if gamemath.LenSq(delta) > arrive*arrive {
				unit.Move = delta.Normalized()
				look = unit.Move
			} else {
				unit.Move = gamemath.Vec2{}
				if ai.PathNode == donburi.Null {
					unit.HasMoveTo = false
				}
			}
		case ai.WanderPercent > 0 || ai.HasTether:
			if ai.WanderTimer <= 0 {
				look = rollWander(ai, unit, pos, look, sim)
				ai.WanderTimer = sim.Range(ai.MinWanderTime, ai.MaxWanderTime)
			} else {
				unit.Move = ai.WanderDir
				if !unit.Move.IsZero() {
					look = unit.Move
				}
			}
		default:
			unit.Move = gamemath.Vec2{}
		}

		ceaseFire(w, unit, pos, tr.Forward)
	}

	turn(tr, unit, look, sim.Dt)

	if gamemath.AngleBetween(tr.Forward, look) > cfg.Steering.TurnInPlaceAngle {
		unit.Move = gamemath.Vec2{}
		return
	}
	avoidObstacles(e, unit, tr, hasTarget, targetDist)
}

// rollWander picks the next wander leg: back to the tether when too far from
// it, otherwise a random direction with WanderPercent chance, else standing.
func rollWander(ai *components.AIData, unit *components.UnitData, pos, look gamemath.Vec2, sim *components.SimData) gamemath.Vec2 {
	if ai.HasTether && pos.Distance(ai.Tether) > ai.TetherDistance {
		ai.WanderDir = ai.Tether.Sub(pos).Normalized()
		unit.Move = ai.WanderDir
		return ai.WanderDir
	}

	if ai.WanderPercent > 0 && (ai.WanderPercent >= 100 || sim.Range(0, 100) <= ai.WanderPercent) {
		dir := gamemath.Vec2{X: sim.Range(-1, 1), Y: sim.Range(-1, 1)}.Normalized()
		ai.WanderDir = dir
		unit.Move = dir
		if !dir.IsZero() {
			return dir
		}
		return look
	}

	ai.WanderDir = gamemath.Vec2{}
	unit.Move = gamemath.Vec2{}
	return look
}

// ceaseFire points every weapon forward and clears fire intent.
func ceaseFire(w donburi.World, unit *components.UnitData, pos, forward gamemath.Vec2) {
	for _, handle := range unit.Weapons {
		we, ok := entryOf(w, handle)
		if !ok {
			continue
		}
		weapon := components.Weapon.Get(we)
		weapon.Input = false
		weapon.Direction = forward
		weapon.Aim = pos.Add(forward)
	}
}

// turn rotates forward towards look by at most the unit's turn speed.
func turn(tr *components.TransformData, unit *components.UnitData, look gamemath.Vec2, dt float64) {
	if look.IsZero() {
		return
	}
	if gamemath.AngleBetween(tr.Forward, look) > 0 {
		tr.Forward = gamemath.RotateTowards(tr.Forward, look, unit.TurnSpeed*dt)
		return
	}
	tr.Forward = look.Normalized()
}

// avoidObstacles casts three feelers against walls and friendly units and
// overrides the move direction to slide around the nearest blockage.
func avoidObstacles(e *donburi.Entry, unit *components.UnitData, tr *components.TransformData, hasTarget bool, targetDist float64) {
	fwd := tr.Forward
	right := gamemath.Right(fwd)
	q := rayQuery{walls: true, units: unit.Friendlies, exclude: e.Entity()}

	fwdLen := cfg.Avoidance.ForwardLength
	sideLen := cfg.Avoidance.SideLength
	fwdHit, fwdBlocked := raycast(e.World, tr.Position, fwd, fwdLen, q)
	rightHit, rightBlocked := raycast(e.World, tr.Position, gamemath.Rotate(fwd, cfg.Avoidance.SideAngle), sideLen, q)
	leftHit, leftBlocked := raycast(e.World, tr.Position, gamemath.Rotate(fwd, -cfg.Avoidance.SideAngle), sideLen, q)

	if !fwdBlocked && !rightBlocked && !leftBlocked {
		return
	}

	closest := fwdLen
	if fwdBlocked {
		closest = fwdHit.Distance
	}
	rightDist, leftDist := sideLen, sideLen
	if rightBlocked {
		rightDist = rightHit.Distance
	}
	if leftBlocked {
		leftDist = leftHit.Distance
	}
	closest = min(closest, rightDist, leftDist)

	if hasTarget && closest >= targetDist {
		return
	}

	leftCloser := leftBlocked && (!rightBlocked || rightDist >= leftDist)
	rightCloser := rightBlocked && (!leftBlocked || leftDist >= rightDist)

	switch {
	case fwdBlocked && leftCloser:
		unit.Move = right
	case fwdBlocked:
		unit.Move = right.MulScalar(-1)
	case leftCloser:
		unit.Move = fwd.Add(right).Normalized()
	case rightCloser:
		unit.Move = fwd.Sub(right).Normalized()
	}
}
