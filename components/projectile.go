package components

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Damage    float64
	Speed     float64
	Direction gamemath.Vec2
	Attacker  donburi.Entity
	HitMask   Layer // Unit layers the projectile can hit, walls always count

	// Ballistic projectiles arc over obstacles and land after MaxDistance.
	Ballistic   bool
	Pitch       float64 // Launch angle in degrees
	MaxDistance float64
	Traveled    float64

	BlastRadius float64 // Spawns a damage volume on impact when > 0
	Lifetime    float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
