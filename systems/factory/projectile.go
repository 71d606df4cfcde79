package factory

import (
	"github.com/automoto/outbreak/archetypes"
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateProjectile(ecs *ecs.ECS, pos gamemath.Vec2, data components.ProjectileData) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	obj := NewBody(pos, cfg.Projectile.Size, tags.ResolvProjectile)
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	if data.Lifetime <= 0 {
		data.Lifetime = cfg.Projectile.Lifetime
	}
	components.Projectile.SetValue(projectile, data)
	components.Transform.SetValue(projectile, components.TransformData{
		Position: pos,
		Forward:  data.Direction,
	})

	return projectile
}

// CreateParticle spawns a particle. Particles have no resolv body; they are
// swept against the space each tick.
func CreateParticle(ecs *ecs.ECS, pos gamemath.Vec2, data components.ParticleData) *donburi.Entry {
	particle := archetypes.Particle.Spawn(ecs)
	components.Particle.SetValue(particle, data)
	components.Transform.SetValue(particle, components.TransformData{
		Position: pos,
		Forward:  data.Direction,
	})
	return particle
}

func CreateDamageVolume(ecs *ecs.ECS, pos gamemath.Vec2, data components.DamageVolumeData) *donburi.Entry {
	volume := archetypes.DamageVolume.Spawn(ecs)
	data.Wait = data.Delay
	components.DamageVolume.SetValue(volume, data)
	components.Transform.SetValue(volume, components.TransformData{
		Position: pos,
		Forward:  gamemath.Vec2{X: 1},
	})
	return volume
}
