package scenes

import (
	"fmt"
	"math"

	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/shared/leveldata"
	"github.com/automoto/outbreak/systems"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Options configures a simulation scene
type Options struct {
	Seed      uint64
	Logger    *zerolog.Logger
	Effects   components.EffectSink
	Spectator bool // Mirror state into necs network components
}

// SimulationScene is a headless outbreak simulation of one scenario.
type SimulationScene struct {
	ecs      *ecs.ECS
	scenario *leveldata.Scenario
	paths    map[string]donburi.Entity // Root node by path name
	logger   zerolog.Logger
}

// NewSimulationScene builds the world for sc and registers the systems in
// tick order.
func NewSimulationScene(sc *leveldata.Scenario, opts Options) (*SimulationScene, error) {
	world := donburi.NewWorld()
	if opts.Spectator {
		srvsync.UseEsync(world)
	}
	ecs := ecs.NewECS(world)

	ecs.AddSystem(systems.UpdatePerception)
	ecs.AddSystem(systems.UpdateSteering)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateTriggers)
	ecs.AddSystem(systems.UpdateWeapons)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateParticles)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateDamagers)
	ecs.AddSystem(systems.UpdateDamageVolumes)
	ecs.AddSystem(systems.UpdateShields)
	ecs.AddSystem(systems.UpdateInfection)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdatePickups)
	ecs.AddSystem(systems.UpdateSpawners)
	ecs.AddSystem(systems.UpdateStats)
	if opts.Spectator {
		ecs.AddSystem(systems.NewSpectatorSyncSystem())
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	s := &SimulationScene{
		ecs:      ecs,
		scenario: sc,
		paths:    make(map[string]donburi.Entity),
		logger:   logger,
	}

	factory.CreateSim(ecs, factory.SimOptions{
		Seed:    opts.Seed,
		Logger:  &logger,
		Effects: opts.Effects,
	})
	factory.CreateStats(ecs)
	factory.CreateSpace(ecs, int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height)), cfg.Sim.CellSize)

	if err := s.populate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SimulationScene) populate() error {
	sc := s.scenario

	for _, r := range sc.Walls {
		factory.CreateWall(s.ecs, r.X, r.Y, r.W, r.H)
	}

	for _, p := range sc.Paths {
		points := make([]gamemath.Vec2, len(p.Points))
		for i, pt := range p.Points {
			points[i] = gamemath.Vec2{X: pt.X, Y: pt.Y}
		}
		nodes := factory.CreatePathChain(s.ecs, p.Name, points)
		s.paths[p.Name] = nodes[0].Entity()
	}

	for _, u := range sc.Units {
		pos := gamemath.Vec2{X: u.Pos.X, Y: u.Pos.Y}
		unit, err := factory.CreateUnit(s.ecs, u.Type, pos, gamemath.FromHeading(u.Facing))
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		if err := s.assignPath(unit, u.Path, u.PathMode, u.PathDir, u.Sticky); err != nil {
			return fmt.Errorf("scenario %s: unit %s: %w", sc.Name, u.Type, err)
		}
		if u.Tether && unit.HasComponent(components.AI) {
			ai := components.AI.Get(unit)
			ai.Tether = pos
			ai.HasTether = true
			if u.TetherDistance > 0 {
				ai.TetherDistance = u.TetherDistance
			}
		}
	}

	for _, sp := range sc.Spawners {
		if err := s.createSpawner(sp); err != nil {
			return fmt.Errorf("scenario %s: spawner %s: %w", sc.Name, sp.Name, err)
		}
	}

	for _, tp := range sc.Triggers {
		if err := s.createTrigger(tp); err != nil {
			return fmt.Errorf("scenario %s: trigger %s: %w", sc.Name, tp.Name, err)
		}
	}

	s.logger.Info().
		Str("scenario", sc.Name).
		Int("walls", len(sc.Walls)).
		Int("paths", len(sc.Paths)).
		Int("units", len(sc.Units)).
		Int("spawners", len(sc.Spawners)).
		Int("triggers", len(sc.Triggers)).
		Msg("scenario loaded")
	return nil
}

func (s *SimulationScene) assignPath(unit *donburi.Entry, name, mode string, dir int, sticky bool) error {
	if name == "" {
		return nil
	}
	pm, err := components.ParsePathMode(mode)
	if err != nil {
		return err
	}
	systems.SetPath(unit, s.paths[name], pm, dir, sticky)
	return nil
}

func (s *SimulationScene) createSpawner(sp leveldata.SpawnerPlacement) error {
	pm, err := components.ParsePathMode(sp.PathMode)
	if err != nil {
		return err
	}

	data := components.SpawnerData{
		Name:         sp.Name,
		Templates:    sp.Templates,
		Count:        sp.Count,
		Active:       sp.Active,
		Dispatch:     sp.Dispatch,
		InitialDelay: sp.InitialDelay,
		Delay:        sp.Delay,
		Facing:       gamemath.FromHeading(sp.Facing),
		PathNode:     donburi.Null,
		PathMode:     pm,
		PathDir:      sp.PathDir,
		StickyPath:   sp.Sticky,
	}
	if data.InitialDelay <= 0 {
		data.InitialDelay = cfg.Spawner.InitialDelay
	}
	if data.Delay <= 0 {
		data.Delay = cfg.Spawner.Delay
	}
	if sp.Path != "" {
		data.PathNode = s.paths[sp.Path]
	}

	pos := gamemath.Vec2{X: sp.Pos.X, Y: sp.Pos.Y}
	if sp.Tether {
		data.Tether = pos
		data.HasTether = true
		data.TetherDistance = sp.TetherDistance
		if data.TetherDistance <= 0 {
			data.TetherDistance = cfg.Spawner.TetherDistance
		}
	}

	factory.CreateSpawner(s.ecs, pos, data)
	return nil
}

func (s *SimulationScene) createTrigger(tp leveldata.TriggerPlacement) error {
	pm, err := components.ParsePathMode(tp.PathMode)
	if err != nil {
		return err
	}

	mask := components.LayerMask(tp.Mask...)
	if len(tp.Mask) == 0 {
		mask = ^components.Layer(0)
	}
	data := components.TriggerData{
		Name:                tp.Name,
		Mask:                mask,
		Active:              tp.Active,
		DamagePerSecond:     tp.DamagePerSecond,
		DoHitEffects:        true,
		Activate:            tp.Activate,
		PathNode:            donburi.Null,
		PathMode:            pm,
		StickyPath:          tp.Sticky,
		DestroyOnEnter:      tp.DestroyOnEnter,
		Escape:              tp.Escape,
		DeactivateOnTrigger: tp.Deactivate,
	}
	if tp.Path != "" {
		data.PathNode = s.paths[tp.Path]
	}

	b := tp.Bounds
	factory.CreateTrigger(s.ecs, b.X, b.Y, b.W, b.H, data)
	return nil
}

// Update advances the simulation by one fixed tick.
func (s *SimulationScene) Update() {
	s.Step(1 / float64(cfg.Sim.TickRate))
}

// Step advances the simulation by dt seconds and delivers the events the
// systems published during the tick.
func (s *SimulationScene) Step(dt float64) {
	if e, ok := components.Sim.First(s.ecs.World); ok {
		sim := components.Sim.Get(e)
		sim.Dt = dt
		sim.Tick++
		sim.Time += dt
	}
	s.ecs.Update()
	events.ProcessAllEvents(s.ecs.World)
}

// Over reports whether the outbreak has been decided and who won.
func (s *SimulationScene) Over() (bool, string) {
	return systems.OutbreakOver(s.ecs.World)
}

func (s *SimulationScene) ECS() *ecs.ECS {
	return s.ecs
}

func (s *SimulationScene) World() donburi.World {
	return s.ecs.World
}

func (s *SimulationScene) Scenario() *leveldata.Scenario {
	return s.scenario
}
