package systems

import (
	"testing"

	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSim(e, factory.SimOptions{Seed: 42})
	factory.CreateStats(e)
	factory.CreateSpace(e, 64, 64, 2)
	return e
}

// tick advances the clock by dt, runs the given systems in order and
// delivers queued events.
func tick(e *ecs.ECS, dt float64, systems ...func(*ecs.ECS)) {
	sim := simOf(e.World)
	sim.Dt = dt
	sim.Tick++
	sim.Time += dt
	for _, s := range systems {
		s(e)
	}
	events.ProcessAllEvents(e.World)
}

func spawnUnit(t *testing.T, e *ecs.ECS, typeName string, x, y float64) *donburi.Entry {
	t.Helper()
	unit, err := factory.CreateUnit(e, typeName, gamemath.Vec2{X: x, Y: y}, gamemath.Vec2{X: 1})
	require.NoError(t, err)
	return unit
}

func weaponOf(t *testing.T, unit *donburi.Entry, i int) *donburi.Entry {
	t.Helper()
	u := components.Unit.Get(unit)
	require.Greater(t, len(u.Weapons), i)
	return unit.World.Entry(u.Weapons[i])
}

// defineUnit registers a bare test unit type with no AI and no weapons.
func defineUnit(name, layer string, health float64) {
	cfg.Units[name] = cfg.UnitTypeConfig{
		Name:       name,
		Layer:      layer,
		Enemies:    []string{"zombie"},
		Friendlies: []string{layer},
		Health:     health,
		WalkSpeed:  1,
		RunSpeed:   2,
		TurnSpeed:  360,
		Size:       0.6,
	}
}

func countTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}
