package archetypes

import (
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Sim = newArchetype(
		components.Sim,
	)
	Space = newArchetype(
		components.Space,
	)
	Stats = newArchetype(
		components.Stats,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Unit = newArchetype(
		tags.Unit,
		components.Unit,
		components.Transform,
		components.Object,
		components.Health,
	)
	Weapon = newArchetype(
		components.Weapon,
		components.Transform,
	)
	PathNode = newArchetype(
		tags.PathNode,
		components.PathNode,
		components.Transform,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Transform,
	)
	DamageVolume = newArchetype(
		components.DamageVolume,
		components.Transform,
	)
	Spawner = newArchetype(
		components.Spawner,
		components.Transform,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Trigger,
		components.Transform,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
