package systems

import (
	"math"

	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates each living unit's move intent and blocks it
// against solid walls one axis at a time.
func UpdateMovement(ecs *ecs.ECS) {
	dt := simOf(ecs.World).Dt

	tags.Unit.Each(ecs.World, func(e *donburi.Entry) {
		if IsDead(e) {
			return
		}
		unit := components.Unit.Get(e)
		if unit.Move.IsZero() {
			return
		}
		tr := components.Transform.Get(e)

		// Moving away from where the unit looks is slower
		look := gamemath.AngleBetween(tr.Forward, unit.Move)
		step := unit.Move.Normalized().MulScalar(unit.Speed() * gamemath.FacingSpeedScale(look) * dt)

		obj := components.Object.Get(e)
		if dx := step.X; dx != 0 {
			if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
				dx = clampX(obj.Object, dx, check.ObjectsByTags(tags.ResolvSolid))
			}
			obj.X += dx
		}
		if dy := step.Y; dy != 0 {
			if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
				dy = clampY(obj.Object, dy, check.ObjectsByTags(tags.ResolvSolid))
			}
			obj.Y += dy
		}
		obj.Update()

		tr.Position = obj.Center()
	})
}

// clampX shortens a horizontal move so obj stops flush against the first
// solid in its way.
func clampX(obj *resolv.Object, dx float64, solids []*resolv.Object) float64 {
	for _, s := range solids {
		if obj.Y+obj.H <= s.Y || obj.Y >= s.Y+s.H {
			continue
		}
		if dx > 0 && s.X >= obj.X+obj.W {
			dx = math.Min(dx, s.X-(obj.X+obj.W))
		} else if dx < 0 && s.X+s.W <= obj.X {
			dx = math.Max(dx, s.X+s.W-obj.X)
		}
	}
	return dx
}

func clampY(obj *resolv.Object, dy float64, solids []*resolv.Object) float64 {
	for _, s := range solids {
		if obj.X+obj.W <= s.X || obj.X >= s.X+s.W {
			continue
		}
		if dy > 0 && s.Y >= obj.Y+obj.H {
			dy = math.Min(dy, s.Y-(obj.Y+obj.H))
		} else if dy < 0 && s.Y+s.H <= obj.Y {
			dy = math.Max(dy, s.Y+s.H-obj.Y)
		}
	}
	return dy
}
