package messages

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UnitDiedEvent is published once per unit death
type UnitDiedEvent struct {
	Unit       donburi.Entity
	Type       string
	Killer     donburi.Entity // donburi.Null when unknown
	KillerType string
	Infected   bool
	Position   gamemath.Vec2
	Time       float64
}

// UnitRisenEvent is published when an infected corpse is replaced
type UnitRisenEvent struct {
	Corpse   donburi.Entity
	Risen    donburi.Entity
	Type     string
	Position gamemath.Vec2
	Time     float64
}

// UnitSpawnedEvent is published for every spawner spawn
type UnitSpawnedEvent struct {
	Unit     donburi.Entity
	Type     string
	Spawner  string
	Position gamemath.Vec2
	Time     float64
}

// ShotFiredEvent is published for every successful weapon fire
type ShotFiredEvent struct {
	Weapon     donburi.Entity
	Owner      donburi.Entity
	WeaponName string
	Kind       string
	Time       float64
}

// WeaponPickedUpEvent is published when a unit picks up a dropped weapon
type WeaponPickedUpEvent struct {
	Weapon     donburi.Entity
	Unit       donburi.Entity
	WeaponName string
	Time       float64
}

// OutbreakPhaseEvent is published when the civilian share crosses a threshold
type OutbreakPhaseEvent struct {
	Phase            string // "dispatch" or "patrol"
	PercentCivilians int
	Time             float64
}

const (
	PhaseDispatch = "dispatch"
	PhasePatrol   = "patrol"
)

var (
	UnitDied       = events.NewEventType[UnitDiedEvent]()
	UnitRisen      = events.NewEventType[UnitRisenEvent]()
	UnitSpawned    = events.NewEventType[UnitSpawnedEvent]()
	ShotFired      = events.NewEventType[ShotFiredEvent]()
	WeaponPickedUp = events.NewEventType[WeaponPickedUpEvent]()
	OutbreakPhase  = events.NewEventType[OutbreakPhaseEvent]()
)
