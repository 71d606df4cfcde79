package systems

import (
	"math/rand/v2"

	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var fallbackSim = components.SimData{
	Rng:     rand.New(rand.NewPCG(1, 2)),
	Logger:  zerolog.Nop(),
	Effects: components.NopEffects{},
}

// simOf returns the simulation context, or an inert one for worlds without it.
func simOf(w donburi.World) *components.SimData {
	if e, ok := components.Sim.First(w); ok {
		return components.Sim.Get(e)
	}
	return &fallbackSim
}

func spaceOf(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e)
	}
	return nil
}

// entryOf resolves a handle, reporting false for null or stale handles.
func entryOf(w donburi.World, entity donburi.Entity) (*donburi.Entry, bool) {
	if entity == donburi.Null || !w.Valid(entity) {
		return nil, false
	}
	return w.Entry(entity), true
}

func positionOf(e *donburi.Entry) gamemath.Vec2 {
	if e.HasComponent(components.Transform) {
		return components.Transform.Get(e).Position
	}
	if e.HasComponent(components.Object) {
		return components.Object.Get(e).Center()
	}
	return gamemath.Vec2{}
}

func forwardOf(e *donburi.Entry) gamemath.Vec2 {
	if e.HasComponent(components.Transform) {
		return components.Transform.Get(e).Forward
	}
	return gamemath.Vec2{X: 1}
}

// destroyEntity removes e from the resolv space and the world.
func destroyEntity(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			if space := spaceOf(w); space != nil {
				space.Remove(obj.Object)
			}
		}
	}
	w.Remove(e.Entity())
}

// IsDead reports whether the entity is dead. Entities without health never die.
func IsDead(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return false
	}
	return components.Health.Get(e).Dead()
}

// Health returns the entity's current health.
func Health(e *donburi.Entry) float64 {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return 0
	}
	return components.Health.Get(e).Current
}
