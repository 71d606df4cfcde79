package components

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ParticleData struct {
	Weapon    donburi.Entity
	Attacker  donburi.Entity
	Damage    float64
	Direction gamemath.Vec2
	Speed     float64
	Range     float64
	Traveled  float64
	HitMask   Layer
	Ignites   bool
}

var Particle = donburi.NewComponentType[ParticleData]()
