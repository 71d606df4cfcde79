// Package telemetry exports simulation counters through OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/automoto/outbreak/shared/messages"
	"github.com/yohamta/donburi"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/automoto/outbreak/server/telemetry"

// Meter returns the global meter. It is a no-op until a provider is installed.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Totals are the counters as plain numbers, for run summaries and tests
type Totals struct {
	Shots   int64
	Deaths  int64
	Risen   int64
	Spawned int64
	Pickups int64
}

// Metrics counts simulation events
type Metrics struct {
	shots   metric.Int64Counter
	deaths  metric.Int64Counter
	risen   metric.Int64Counter
	spawned metric.Int64Counter
	pickups metric.Int64Counter

	totals struct {
		shots, deaths, risen, spawned, pickups atomic.Int64
	}
}

// New creates the counters on m
func New(m metric.Meter) (*Metrics, error) {
	mt := &Metrics{}

	var err error
	mt.shots, err = m.Int64Counter(
		"outbreak.shots",
		metric.WithDescription("Shots fired by weapon"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	mt.deaths, err = m.Int64Counter(
		"outbreak.deaths",
		metric.WithDescription("Units killed by unit type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}

	mt.risen, err = m.Int64Counter(
		"outbreak.risen",
		metric.WithDescription("Corpses risen as new units"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating risen counter: %w", err)
	}

	mt.spawned, err = m.Int64Counter(
		"outbreak.spawned",
		metric.WithDescription("Units created by spawners"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	mt.pickups, err = m.Int64Counter(
		"outbreak.pickups",
		metric.WithDescription("Dropped weapons picked up"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pickups counter: %w", err)
	}

	return mt, nil
}

// Attach subscribes the counters to the world's simulation events
func (mt *Metrics) Attach(w donburi.World) {
	ctx := context.Background()

	messages.ShotFired.Subscribe(w, func(_ donburi.World, ev messages.ShotFiredEvent) {
		mt.totals.shots.Add(1)
		mt.shots.Add(ctx, 1, metric.WithAttributes(
			attribute.String("weapon", ev.WeaponName),
			attribute.String("kind", ev.Kind),
		))
	})
	messages.UnitDied.Subscribe(w, func(_ donburi.World, ev messages.UnitDiedEvent) {
		mt.totals.deaths.Add(1)
		mt.deaths.Add(ctx, 1, metric.WithAttributes(
			attribute.String("unit", ev.Type),
			attribute.Bool("infected", ev.Infected),
		))
	})
	messages.UnitRisen.Subscribe(w, func(_ donburi.World, ev messages.UnitRisenEvent) {
		mt.totals.risen.Add(1)
		mt.risen.Add(ctx, 1, metric.WithAttributes(attribute.String("unit", ev.Type)))
	})
	messages.UnitSpawned.Subscribe(w, func(_ donburi.World, ev messages.UnitSpawnedEvent) {
		mt.totals.spawned.Add(1)
		mt.spawned.Add(ctx, 1, metric.WithAttributes(
			attribute.String("unit", ev.Type),
			attribute.String("spawner", ev.Spawner),
		))
	})
	messages.WeaponPickedUp.Subscribe(w, func(_ donburi.World, ev messages.WeaponPickedUpEvent) {
		mt.totals.pickups.Add(1)
		mt.pickups.Add(ctx, 1, metric.WithAttributes(attribute.String("weapon", ev.WeaponName)))
	})
}

// Totals returns the counts so far
func (mt *Metrics) Totals() Totals {
	return Totals{
		Shots:   mt.totals.shots.Load(),
		Deaths:  mt.totals.deaths.Load(),
		Risen:   mt.totals.risen.Load(),
		Spawned: mt.totals.spawned.Load(),
		Pickups: mt.totals.pickups.Load(),
	}
}
