package systems

import (
	"strings"

	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/messages"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStats takes the outbreak census once per interval and escalates the
// army response as the civilian share falls.
func UpdateStats(ecs *ecs.ECS) {
	entry, ok := components.Stats.First(ecs.World)
	if !ok {
		return
	}
	sim := simOf(ecs.World)
	stats := components.Stats.Get(entry)

	stats.Timer -= sim.Dt
	if stats.Timer > 0 {
		return
	}
	stats.Timer = cfg.Stats.Interval

	prev := stats.PercentCivilians
	if !census(ecs.World, stats) {
		return
	}

	switch {
	case crossed(prev, stats.PercentCivilians, cfg.Stats.DispatchThreshold) && !stats.Dispatched:
		stats.Dispatched = true
		dispatchArmy(ecs.World)
		publishPhase(ecs.World, messages.PhaseDispatch, stats.PercentCivilians)
	case crossed(prev, stats.PercentCivilians, cfg.Stats.PatrolThreshold) && !stats.Patrolling:
		stats.Patrolling = true
		patrolArmy(ecs.World)
		publishPhase(ecs.World, messages.PhasePatrol, stats.PercentCivilians)
	}
}

func crossed(prev, cur, threshold int) bool {
	return prev > threshold && cur <= threshold
}

// census counts living units by type prefix, corpses, infected and escaped
// units. Percentages are only refreshed while someone is alive to count; it
// reports whether they were.
func census(w donburi.World, stats *components.StatsData) bool {
	stats.Civilians, stats.Cops, stats.Soldiers, stats.Zombies = 0, 0, 0, 0
	stats.Infected, stats.Dead = 0, 0

	tags.Unit.Each(w, func(e *donburi.Entry) {
		// Corpses that have not risen yet still count as infected
		if e.HasComponent(components.Infection) {
			stats.Infected++
		}
		if IsDead(e) {
			stats.Dead++
			return
		}

		t := components.Unit.Get(e).Type
		switch {
		case strings.HasPrefix(t, "Civilian"):
			stats.Civilians++
		case strings.HasPrefix(t, "Cop"):
			stats.Cops++
		case strings.HasPrefix(t, "Soldier"):
			stats.Soldiers++
		case strings.HasPrefix(t, "Zombie"):
			stats.Zombies++
		}
	})
	stats.Escaped = EscapedCount(w)

	living := stats.Civilians + stats.Cops
	population := living + stats.Zombies
	if living == 0 {
		return false
	}

	stats.PercentCivilians = stats.Civilians * 100 / population
	stats.PercentCops = stats.Cops * 100 / population
	stats.PercentZombies = stats.Zombies * 100 / population
	stats.PercentInfected = stats.Infected * 100 / living
	stats.PercentDead = stats.Dead * 100 / (population + stats.Dead)
	stats.PercentEscaped = stats.Escaped * 100 / (population + stats.Escaped)
	return true
}

// dispatchArmy activates every dispatch spawner.
func dispatchArmy(w donburi.World) {
	components.Spawner.Each(w, func(e *donburi.Entry) {
		s := components.Spawner.Get(e)
		if s.Dispatch && !s.Active {
			s.Active = true
			s.Wait = s.InitialDelay
		}
	})
}

// patrolArmy puts the first living soldiers on the patrol loop, walking it
// backwards.
func patrolArmy(w donburi.World) {
	root := patrolRoot(w)
	if root == donburi.Null {
		simOf(w).Logger.Warn().Str("path", cfg.Stats.PatrolPath).Msg("no patrol path")
		return
	}

	n := 0
	tags.Unit.Each(w, func(e *donburi.Entry) {
		if n >= cfg.Stats.PatrolCount || IsDead(e) {
			return
		}
		if !strings.HasPrefix(components.Unit.Get(e).Type, "Soldier") || !e.HasComponent(components.AI) {
			return
		}
		SetPath(e, root, components.PathLoop, -1, true)
		n++
	})
}

func patrolRoot(w donburi.World) donburi.Entity {
	root := donburi.Null
	tags.PathNode.Each(w, func(e *donburi.Entry) {
		if root != donburi.Null {
			return
		}
		node := components.PathNode.Get(e)
		if node.Name == cfg.Stats.PatrolPath && node.Parent == donburi.Null {
			root = e.Entity()
		}
	})
	return root
}

func publishPhase(w donburi.World, phase string, percent int) {
	sim := simOf(w)
	messages.OutbreakPhase.Publish(w, messages.OutbreakPhaseEvent{
		Phase:            phase,
		PercentCivilians: percent,
		Time:             sim.Time,
	})
	sim.Logger.Info().
		Str("phase", phase).
		Int("civilians", percent).
		Msg("outbreak phase")
}

// Outcomes reported by OutbreakOver
const (
	OutcomeOverrun   = "overrun"
	OutcomeContained = "contained"
)

// OutbreakOver reports whether one side has been wiped out. The outbreak is
// contained only when no zombie is alive, nobody is infected and no active
// spawner can bring more in.
func OutbreakOver(w donburi.World) (bool, string) {
	humans, zombies, infected := 0, 0, 0
	tags.Unit.Each(w, func(e *donburi.Entry) {
		if IsDead(e) {
			if e.HasComponent(components.Infection) && components.Infection.Get(e).State != components.InfectionRisen {
				infected++
			}
			return
		}
		if e.HasComponent(components.Infection) {
			infected++
		}
		if components.Unit.Get(e).Layer.Has(components.LayerZombie) {
			zombies++
		} else {
			humans++
		}
	})

	if humans == 0 && infected == 0 {
		return true, OutcomeOverrun
	}
	if humans == 0 && zombies > 0 {
		return true, OutcomeOverrun
	}
	if zombies > 0 || infected > 0 {
		return false, ""
	}

	pending := false
	components.Spawner.Each(w, func(e *donburi.Entry) {
		s := components.Spawner.Get(e)
		if s.Active && s.Count != 0 {
			pending = true
		}
	})
	if pending {
		return false, ""
	}
	return true, OutcomeContained
}
