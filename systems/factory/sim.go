package factory

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/outbreak/archetypes"
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimOptions configures the simulation context singleton.
type SimOptions struct {
	Seed    uint64          // 0 seeds from the clock
	Logger  *zerolog.Logger // nil disables logging
	Effects components.EffectSink
}

// CreateSim adds the simulation context singleton.
func CreateSim(ecs *ecs.ECS, opts SimOptions) *donburi.Entry {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	effects := opts.Effects
	if effects == nil {
		effects = components.NopEffects{}
	}

	sim := archetypes.Sim.Spawn(ecs)
	components.Sim.SetValue(sim, components.SimData{
		Gravity: cfg.Sim.Gravity,
		Rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		Logger:  logger,
		Effects: effects,
	})
	return sim
}

// CreateStats adds the outbreak census singleton.
func CreateStats(ecs *ecs.ECS) *donburi.Entry {
	stats := archetypes.Stats.Spawn(ecs)
	components.Stats.SetValue(stats, components.StatsData{
		Timer:            0,
		PercentCivilians: 100,
	})
	return stats
}

func simOf(ecs *ecs.ECS) *components.SimData {
	if e, ok := components.Sim.First(ecs.World); ok {
		return components.Sim.Get(e)
	}
	return nil
}

// randRange draws from the simulation RNG, or returns the midpoint when the
// world has no simulation context.
func randRange(ecs *ecs.ECS, lo, hi float64) float64 {
	if sim := simOf(ecs); sim != nil {
		return sim.Range(lo, hi)
	}
	return (lo + hi) / 2
}
