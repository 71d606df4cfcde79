package telemetry

import (
	"testing"

	"github.com/automoto/outbreak/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestMetrics_CountsEvents(t *testing.T) {
	mt, err := New(noop.Meter{})
	require.NoError(t, err)

	w := donburi.NewWorld()
	mt.Attach(w)

	messages.ShotFired.Publish(w, messages.ShotFiredEvent{WeaponName: "Rifle", Kind: "ray"})
	messages.ShotFired.Publish(w, messages.ShotFiredEvent{WeaponName: "Rifle", Kind: "ray"})
	messages.UnitDied.Publish(w, messages.UnitDiedEvent{Type: "Cop"})
	messages.UnitRisen.Publish(w, messages.UnitRisenEvent{Type: "Zombie"})
	messages.UnitSpawned.Publish(w, messages.UnitSpawnedEvent{Type: "Soldier", Spawner: "army"})
	messages.WeaponPickedUp.Publish(w, messages.WeaponPickedUpEvent{WeaponName: "Pistol"})
	events.ProcessAllEvents(w)

	assert.Equal(t, Totals{Shots: 2, Deaths: 1, Risen: 1, Spawned: 1, Pickups: 1}, mt.Totals())
}

func TestMeter_DefaultsToGlobal(t *testing.T) {
	mt, err := New(Meter())
	require.NoError(t, err)
	assert.Equal(t, Totals{}, mt.Totals())
}
