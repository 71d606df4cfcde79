package systems

import (
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/messages"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawners runs every active spawner: it keeps the live list pruned and
// spawns a random template each time the delay elapses until the count runs
// out.
func UpdateSpawners(ecs *ecs.ECS) {
	sim := simOf(ecs.World)
	dt := sim.Dt

	var spawners []*donburi.Entry
	components.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		spawners = append(spawners, e)
	})

	for _, e := range spawners {
		s := components.Spawner.Get(e)
		pruneLive(ecs.World, s, dt)

		if !s.Active {
			continue
		}
		if s.Count == 0 {
			s.Active = false
			continue
		}
		if len(s.Templates) == 0 {
			sim.Logger.Warn().Str("spawner", s.Name).Msg("spawner has no templates, disabling")
			s.Active = false
			continue
		}

		s.Wait -= dt
		if s.Wait > 0 {
			continue
		}
		s.Wait = s.Delay

		spawnOne(ecs, e, s)
	}
}

func spawnOne(ecs *ecs.ECS, e *donburi.Entry, s *components.SpawnerData) {
	sim := simOf(ecs.World)
	pos := components.Transform.Get(e).Position

	template := s.Templates[sim.Rng.IntN(len(s.Templates))]
	unit, err := factory.CreateUnit(ecs, template, pos, s.Facing)
	if err != nil {
		sim.Logger.Warn().
			Err(err).
			Str("spawner", s.Name).
			Msg("spawn failed, disabling spawner")
		s.Active = false
		if unit != nil {
			destroyUnit(ecs.World, unit)
		}
		return
	}

	if s.PathNode != donburi.Null {
		SetPath(unit, s.PathNode, s.PathMode, s.PathDir, s.StickyPath)
	}
	if unit.HasComponent(components.AI) {
		ai := components.AI.Get(unit)
		if s.HasTether {
			ai.Tether = s.Tether
			ai.HasTether = true
			if s.TetherDistance > 0 {
				ai.TetherDistance = s.TetherDistance
			}
		}
	}

	s.Live = append(s.Live, unit.Entity())
	if s.Count > 0 {
		s.Count--
	}

	messages.UnitSpawned.Publish(ecs.World, messages.UnitSpawnedEvent{
		Unit:     unit.Entity(),
		Type:     template,
		Spawner:  s.Name,
		Position: pos,
		Time:     sim.Time,
	})
	sim.Logger.Debug().
		Str("spawner", s.Name).
		Str("unit", template).
		Int("remaining", s.Count).
		Msg("unit spawned")
}

// pruneLive drops removed units every tick and dead ones on the dead check
// interval.
func pruneLive(w donburi.World, s *components.SpawnerData, dt float64) {
	s.DeadCheckTimer -= dt
	checkDead := s.DeadCheckTimer <= 0
	if checkDead {
		s.DeadCheckTimer = cfg.Spawner.DeadCheckInterval
	}

	live := s.Live[:0]
	for _, handle := range s.Live {
		e, ok := entryOf(w, handle)
		if !ok || (checkDead && IsDead(e)) {
			continue
		}
		live = append(live, handle)
	}
	s.Live = live
}

// LiveCount returns how many units the spawner still tracks.
func LiveCount(e *donburi.Entry) int {
	return len(components.Spawner.Get(e).Live)
}
