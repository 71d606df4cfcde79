package systems

import (
	"testing"

	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/shared/messages"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func statsOf(e *ecs.ECS) *components.StatsData {
	entry, _ := components.Stats.First(e.World)
	return components.Stats.Get(entry)
}

func spawnCrowd(t *testing.T, e *ecs.ECS, typeName string, n int, y float64) []*donburi.Entry {
	t.Helper()
	out := make([]*donburi.Entry, n)
	for i := range out {
		out[i] = spawnUnit(t, e, typeName, 2+float64(i)*2, y)
	}
	return out
}

func TestCensusCountsByType(t *testing.T) {
	e := newTestECS(t)
	civs := spawnCrowd(t, e, "Civilian", 6, 5)
	spawnCrowd(t, e, "Cop", 2, 10)
	spawnCrowd(t, e, "Zombie", 2, 15)
	spawnCrowd(t, e, "Soldier", 1, 20)
	Die(civs[0], donburi.Null)
	Infect(civs[1])

	tick(e, 0.1, UpdateStats)

	s := statsOf(e)
	assert.Equal(t, 5, s.Civilians)
	assert.Equal(t, 2, s.Cops)
	assert.Equal(t, 2, s.Zombies)
	assert.Equal(t, 1, s.Soldiers)
	assert.Equal(t, 1, s.Dead)
	assert.Equal(t, 1, s.Infected)
	assert.Equal(t, 55, s.PercentCivilians)
	assert.Equal(t, 10, s.PercentDead)
	assert.Equal(t, 14, s.PercentInfected)
}

func TestDispatchHappensOnce(t *testing.T) {
	e := newTestECS(t)
	civs := spawnCrowd(t, e, "Civilian", 8, 5)
	spawnCrowd(t, e, "Zombie", 2, 15)
	army := factory.CreateSpawner(e, gamemath.Vec2{X: 30, Y: 30}, components.SpawnerData{
		Templates:    []string{"Soldier"},
		Count:        2,
		Dispatch:     true,
		InitialDelay: 3,
	})

	var phases []string
	messages.OutbreakPhase.Subscribe(e.World, func(_ donburi.World, ev messages.OutbreakPhaseEvent) {
		phases = append(phases, ev.Phase)
	})

	tick(e, 1, UpdateStats)
	assert.Equal(t, 80, statsOf(e).PercentCivilians)
	assert.False(t, components.Spawner.Get(army).Active)

	for _, c := range civs[:4] {
		Die(c, donburi.Null)
	}
	tick(e, 1, UpdateStats)
	assert.Equal(t, 66, statsOf(e).PercentCivilians)
	assert.True(t, statsOf(e).Dispatched)
	assert.True(t, components.Spawner.Get(army).Active)
	assert.Equal(t, 3.0, components.Spawner.Get(army).Wait)

	Die(civs[4], donburi.Null)
	tick(e, 1, UpdateStats)
	assert.Equal(t, []string{messages.PhaseDispatch}, phases)
}

func TestCensusWaitsForInterval(t *testing.T) {
	e := newTestECS(t)
	cfg.Stats.Interval = 2
	spawnCrowd(t, e, "Civilian", 1, 5)
	zombies := spawnCrowd(t, e, "Zombie", 1, 15)

	tick(e, 0.5, UpdateStats)
	assert.Equal(t, 50, statsOf(e).PercentCivilians)

	Die(zombies[0], donburi.Null)
	tick(e, 1, UpdateStats)
	assert.Equal(t, 50, statsOf(e).PercentCivilians)

	tick(e, 1, UpdateStats)
	assert.Equal(t, 100, statsOf(e).PercentCivilians)
}

func TestDispatchAndPatrolNeverShareACensus(t *testing.T) {
	e := newTestECS(t)
	spawnCrowd(t, e, "Civilian", 1, 5)
	spawnCrowd(t, e, "Cop", 4, 10)

	var phases []string
	messages.OutbreakPhase.Subscribe(e.World, func(_ donburi.World, ev messages.OutbreakPhaseEvent) {
		phases = append(phases, ev.Phase)
	})

	tick(e, 1, UpdateStats)
	assert.Equal(t, 20, statsOf(e).PercentCivilians)
	assert.Equal(t, []string{messages.PhaseDispatch}, phases)
	assert.False(t, statsOf(e).Patrolling)

	tick(e, 1, UpdateStats)
	assert.Equal(t, []string{messages.PhaseDispatch}, phases, "patrol threshold was passed in the dispatch census")
}

func TestPatrolFollowsDispatch(t *testing.T) {
	e := newTestECS(t)
	civs := spawnCrowd(t, e, "Civilian", 4, 5)
	spawnCrowd(t, e, "Cop", 1, 10)
	spawnCrowd(t, e, "Zombie", 1, 15)
	soldiers := spawnCrowd(t, e, "Soldier", 3, 25)
	nodes := factory.CreatePathChain(e, cfg.Stats.PatrolPath, []gamemath.Vec2{{X: 1, Y: 1}, {X: 9, Y: 1}})

	var phases []string
	messages.OutbreakPhase.Subscribe(e.World, func(_ donburi.World, ev messages.OutbreakPhaseEvent) {
		phases = append(phases, ev.Phase)
	})

	tick(e, 1, UpdateStats)
	assert.Equal(t, 66, statsOf(e).PercentCivilians)
	for _, c := range civs {
		Die(c, donburi.Null)
	}
	tick(e, 1, UpdateStats)
	assert.Equal(t, 0, statsOf(e).PercentCivilians)

	assert.Equal(t, []string{messages.PhaseDispatch, messages.PhasePatrol}, phases)
	patrolling := 0
	for _, s := range soldiers {
		ai := components.AI.Get(s)
		if ai.PathNode == nodes[0].Entity() {
			patrolling++
			assert.Equal(t, components.PathLoop, ai.PathMode)
			assert.Equal(t, -1, ai.PathDir)
			assert.True(t, ai.StickyPath)
		}
	}
	assert.Equal(t, cfg.Stats.PatrolCount, patrolling)
}

func TestCensusWithoutLivingHumansKeepsPercentages(t *testing.T) {
	e := newTestECS(t)
	spawnCrowd(t, e, "Zombie", 1, 15)
	army := factory.CreateSpawner(e, gamemath.Vec2{X: 30, Y: 30}, components.SpawnerData{
		Templates: []string{"Soldier"},
		Count:     2,
		Dispatch:  true,
	})

	tick(e, 1, UpdateStats)

	s := statsOf(e)
	assert.Equal(t, 1, s.Zombies)
	assert.Equal(t, 100, s.PercentCivilians)
	assert.False(t, s.Dispatched)
	assert.False(t, s.Patrolling)
	assert.False(t, components.Spawner.Get(army).Active)
}

func TestCensusCountsInfectedCorpses(t *testing.T) {
	e := newTestECS(t)
	civs := spawnCrowd(t, e, "Civilian", 3, 5)
	Infect(civs[0])
	Die(civs[0], donburi.Null)
	Infect(civs[1])

	tick(e, 1, UpdateStats)

	s := statsOf(e)
	assert.Equal(t, 2, s.Civilians)
	assert.Equal(t, 1, s.Dead)
	assert.Equal(t, 2, s.Infected)
	assert.Equal(t, 100, s.PercentInfected)
}

func TestOutbreakOver(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, e *ecs.ECS)
		over    bool
		outcome string
	}{
		{
			name: "only zombies",
			setup: func(t *testing.T, e *ecs.ECS) {
				spawnCrowd(t, e, "Zombie", 2, 5)
			},
			over:    true,
			outcome: OutcomeOverrun,
		},
		{
			name: "empty world",
			setup: func(t *testing.T, e *ecs.ECS) {
				civs := spawnCrowd(t, e, "Civilian", 1, 5)
				Die(civs[0], donburi.Null)
			},
			over:    true,
			outcome: OutcomeOverrun,
		},
		{
			name: "humans and zombies",
			setup: func(t *testing.T, e *ecs.ECS) {
				spawnCrowd(t, e, "Civilian", 2, 5)
				spawnCrowd(t, e, "Zombie", 1, 15)
			},
		},
		{
			name: "humans with an infected survivor",
			setup: func(t *testing.T, e *ecs.ECS) {
				civs := spawnCrowd(t, e, "Civilian", 2, 5)
				Infect(civs[0])
			},
		},
		{
			name: "humans with a corpse about to rise",
			setup: func(t *testing.T, e *ecs.ECS) {
				civs := spawnCrowd(t, e, "Civilian", 2, 5)
				Infect(civs[0])
				Die(civs[0], donburi.Null)
			},
		},
		{
			name: "humans with a pending spawner",
			setup: func(t *testing.T, e *ecs.ECS) {
				spawnCrowd(t, e, "Civilian", 2, 5)
				factory.CreateSpawner(e, gamemath.Vec2{X: 30, Y: 30}, components.SpawnerData{
					Templates: []string{"Zombie"},
					Count:     2,
					Active:    true,
				})
			},
		},
		{
			name: "humans only",
			setup: func(t *testing.T, e *ecs.ECS) {
				spawnCrowd(t, e, "Civilian", 2, 5)
				factory.CreateSpawner(e, gamemath.Vec2{X: 30, Y: 30}, components.SpawnerData{
					Templates: []string{"Zombie"},
					Count:     2,
				})
			},
			over:    true,
			outcome: OutcomeContained,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			tt.setup(t, e)
			over, outcome := OutbreakOver(e.World)
			require.Equal(t, tt.over, over)
			assert.Equal(t, tt.outcome, outcome)
		})
	}
}
