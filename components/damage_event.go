package components

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Hit is one queued damage application.
type Hit struct {
	Amount    float64
	Position  gamemath.Vec2
	Normal    gamemath.Vec2
	Attacker  donburi.Entity
	DoEffects bool
	Ignite    bool
}

// DamageEventData queues hits on the victim until the damage queue is drained.
type DamageEventData struct {
	Hits []Hit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
