package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has died. Timer counts down in seconds when
// the entity is destroyed on death; when it reaches 0 the entity is removed.
type DeathData struct {
	Killer donburi.Entity
	Timer  float64
}

var Death = donburi.NewComponentType[DeathData]()
