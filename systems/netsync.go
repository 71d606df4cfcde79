package systems

import (
	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/netcomponents"
	"github.com/automoto/outbreak/shared/netconfig"
	"github.com/automoto/outbreak/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSpectatorSyncSystem mirrors units and the outbreak census into network
// components so spectators receive them on the next sync. The world must have
// been prepared with srvsync.UseEsync.
func NewSpectatorSyncSystem() func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		sim := simOf(ecs.World)

		var fresh []*donburi.Entry
		tags.Unit.Each(ecs.World, func(e *donburi.Entry) {
			if !e.HasComponent(netcomponents.NetUnit) {
				fresh = append(fresh, e)
			}
		})
		for _, e := range fresh {
			donburi.Add(e, netcomponents.NetUnit, &netcomponents.NetUnitData{})
			entity := e.Entity()
			if err := srvsync.NetworkSync(ecs.World, &entity, srvsync.WithInterp(netcomponents.NetUnit)); err != nil {
				sim.Logger.Warn().Err(err).Uint64("entity", uint64(entity)).Msg("spectator sync failed")
			}
		}

		netcomponents.NetUnit.Each(ecs.World, func(e *donburi.Entry) {
			mirrorUnit(e, components.Unit.Get(e), netcomponents.NetUnit.Get(e))
		})

		mirrorOutbreak(ecs, sim)
	}
}

func mirrorUnit(e *donburi.Entry, unit *components.UnitData, net *netcomponents.NetUnitData) {
	tr := components.Transform.Get(e)
	net.X, net.Y = tr.Position.X, tr.Position.Y
	net.FX, net.FY = tr.Forward.X, tr.Forward.Y
	net.TypeName = unit.Type
	net.Health = int(Health(e))

	net.Shield = 0
	if e.HasComponent(components.Shield) {
		net.Shield = int(components.Shield.Get(e).Current)
	}

	switch {
	case IsDead(e):
		net.State = netconfig.UnitDead
	case e.HasComponent(components.Infection):
		net.State = netconfig.UnitInfected
	default:
		net.State = netconfig.UnitAlive
	}

	net.Target = 0
	if target, ok := Target(e); ok {
		if id := esync.GetNetworkId(target); id != nil {
			net.Target = uint(*id)
		}
	}
}

func mirrorOutbreak(ecs *ecs.ECS, sim *components.SimData) {
	entry, ok := components.Stats.First(ecs.World)
	if !ok {
		return
	}
	if !entry.HasComponent(netcomponents.NetOutbreak) {
		donburi.Add(entry, netcomponents.NetOutbreak, &netcomponents.NetOutbreakData{})
		entity := entry.Entity()
		if err := srvsync.NetworkSync(ecs.World, &entity, netcomponents.NetOutbreak); err != nil {
			sim.Logger.Warn().Err(err).Msg("spectator sync failed for census")
		}
	}

	stats := components.Stats.Get(entry)
	net := netcomponents.NetOutbreak.Get(entry)
	*net = netcomponents.NetOutbreakData{
		Tick:             sim.Tick,
		Time:             sim.Time,
		Civilians:        stats.Civilians,
		Cops:             stats.Cops,
		Soldiers:         stats.Soldiers,
		Zombies:          stats.Zombies,
		Dead:             stats.Dead,
		PercentCivilians: stats.PercentCivilians,
		Phase:            netconfig.PhaseOutbreak,
	}
	switch {
	case stats.Patrolling:
		net.Phase = netconfig.PhasePatrol
	case stats.Dispatched:
		net.Phase = netconfig.PhaseDispatch
	}
}
