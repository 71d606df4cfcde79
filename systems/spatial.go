package systems

import (
	"math"

	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// RayHit describes the closest thing a ray ran into.
type RayHit struct {
	Distance float64
	Point    gamemath.Vec2
	Normal   gamemath.Vec2
	Entry    *donburi.Entry // The unit hit, nil for walls
}

// rayQuery selects what a ray can hit.
type rayQuery struct {
	walls   bool
	units   components.Layer
	exclude donburi.Entity
}

// raycast walks every object in the space and returns the nearest hit along
// dir within length. dir must be unit length.
func raycast(w donburi.World, origin, dir gamemath.Vec2, length float64, q rayQuery) (RayHit, bool) {
	space := spaceOf(w)
	if space == nil || length <= 0 {
		return RayHit{}, false
	}

	best := RayHit{Distance: math.Inf(1)}
	found := false
	for _, obj := range space.Objects() {
		var unit *donburi.Entry
		switch {
		case q.walls && obj.HasTags(tags.ResolvSolid):
		case q.units != 0 && obj.HasTags(tags.ResolvUnit):
			e, ok := obj.Data.(*donburi.Entry)
			if !ok || !e.Valid() || e.Entity() == q.exclude {
				continue
			}
			if !components.Unit.Get(e).Layer.Has(q.units) {
				continue
			}
			unit = e
		default:
			continue
		}

		dist, normal, ok := segmentRect(origin, dir, length, obj)
		if !ok || dist >= best.Distance {
			continue
		}
		best = RayHit{
			Distance: dist,
			Point:    origin.Add(dir.MulScalar(dist)),
			Normal:   normal,
			Entry:    unit,
		}
		found = true
	}

	return best, found
}

// segmentRect clips the ray against the object's bounding box using the slab
// method. It returns the entry distance and the face normal.
func segmentRect(origin, dir gamemath.Vec2, length float64, obj *resolv.Object) (float64, gamemath.Vec2, bool) {
	tMin, tMax := 0.0, length
	var normal gamemath.Vec2

	axes := [2]struct {
		o, d, lo, hi float64
		n            gamemath.Vec2
	}{
		{origin.X, dir.X, obj.X, obj.X + obj.W, gamemath.Vec2{X: 1}},
		{origin.Y, dir.Y, obj.Y, obj.Y + obj.H, gamemath.Vec2{Y: 1}},
	}

	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return 0, gamemath.Vec2{}, false
			}
			continue
		}
		t1 := (a.lo - a.o) / a.d
		t2 := (a.hi - a.o) / a.d
		n := a.n.MulScalar(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = a.n
		}
		if t1 > tMin {
			tMin = t1
			normal = n
		}
		tMax = min(tMax, t2)
		if tMin > tMax {
			return 0, gamemath.Vec2{}, false
		}
	}

	if normal.IsZero() {
		normal = dir.MulScalar(-1)
	}
	return tMin, normal, true
}

// lineOfSight reports whether no wall lies between a and b.
func lineOfSight(w donburi.World, a, b gamemath.Vec2) bool {
	delta := b.Sub(a)
	dist := delta.Magnitude()
	if dist == 0 {
		return true
	}
	_, blocked := raycast(w, a, delta.MulScalar(1/dist), dist, rayQuery{walls: true})
	return !blocked
}

// overlapUnits returns living or dead units whose layer is in mask and whose
// position lies within radius of center, in space order.
func overlapUnits(w donburi.World, center gamemath.Vec2, radius float64, mask components.Layer) []*donburi.Entry {
	space := spaceOf(w)
	if space == nil {
		return nil
	}

	var out []*donburi.Entry
	r2 := radius * radius
	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvUnit) {
			continue
		}
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		if !components.Unit.Get(e).Layer.Has(mask) {
			continue
		}
		if gamemath.DistSq(positionOf(e), center) <= r2 {
			out = append(out, e)
		}
	}
	return out
}
