package systems

import (
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/messages"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Infect starts the infection of a living unit. Already infected units and
// non-units are left alone.
func Infect(e *donburi.Entry) {
	if e == nil || !e.Valid() || IsDead(e) || e.HasComponent(components.Infection) {
		return
	}
	sim := simOf(e.World)
	if !e.HasComponent(components.Unit) {
		sim.Logger.Warn().
			Uint64("entity", uint64(e.Entity())).
			Msg("infection needs a unit, ignoring")
		return
	}

	donburi.Add(e, components.Infection, &components.InfectionData{
		Speed:     cfg.Infection.Speed,
		RiseTimer: sim.Range(cfg.Infection.MinRiseTime, cfg.Infection.MaxRiseTime),
		State:     components.InfectionAlive,
		RisenType: cfg.Infection.RisenType,
	})
}

// UpdateInfection advances every infection. The living host dies once the
// infection outgrows its health; the corpse rises as a new unit when the rise
// timer runs out.
func UpdateInfection(ecs *ecs.ECS) {
	sim := simOf(ecs.World)
	dt := sim.Dt

	var infected []*donburi.Entry
	components.Infection.Each(ecs.World, func(e *donburi.Entry) {
		infected = append(infected, e)
	})

	for _, e := range infected {
		if !e.Valid() {
			continue
		}
		inf := components.Infection.Get(e)

		switch inf.State {
		case components.InfectionAlive:
			if IsDead(e) {
				inf.State = components.InfectionDead
				continue
			}
			inf.Accumulated += inf.Speed * dt
			if inf.Accumulated > Health(e) {
				Die(e, donburi.Null)
				inf.State = components.InfectionDead
			}
		case components.InfectionDead:
			inf.RiseTimer -= dt
			if inf.RiseTimer <= 0 {
				inf.State = components.InfectionRisen
				rise(ecs, e, inf.RisenType)
			}
		}
	}
}

// rise replaces the corpse with a fresh unit of risenType facing the same way.
func rise(ecs *ecs.ECS, corpse *donburi.Entry, risenType string) {
	sim := simOf(ecs.World)
	pos := positionOf(corpse)
	forward := forwardOf(corpse)
	corpseEntity := corpse.Entity()

	corpseType := ""
	if corpse.HasComponent(components.Unit) {
		corpseType = components.Unit.Get(corpse).Type
	}
	destroyUnit(ecs.World, corpse)

	risen, err := factory.CreateUnit(ecs, risenType, pos, forward)
	if err != nil {
		sim.Logger.Warn().
			Err(err).
			Str("unit", corpseType).
			Msg("corpse could not rise")
		if risen != nil {
			destroyUnit(ecs.World, risen)
		}
		return
	}

	sim.Effects.Emit(components.EffectRise, pos, forward)
	messages.UnitRisen.Publish(ecs.World, messages.UnitRisenEvent{
		Corpse:   corpseEntity,
		Risen:    risen.Entity(),
		Type:     risenType,
		Position: pos,
		Time:     sim.Time,
	})

	sim.Logger.Debug().
		Str("unit", corpseType).
		Str("risen", risenType).
		Uint64("entity", uint64(risen.Entity())).
		Msg("corpse rose")
}

// destroyUnit removes a unit together with the weapons it still owns.
func destroyUnit(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Unit) {
		for _, handle := range components.Unit.Get(e).Weapons {
			if we, ok := entryOf(w, handle); ok {
				destroyEntity(w, we)
			}
		}
	}
	destroyEntity(w, e)
}
