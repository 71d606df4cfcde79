package components

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

type UnitData struct {
	Type string // Unit type name from config, e.g. "Civilian"

	Layer      Layer
	Enemies    Layer
	Friendlies Layer

	WalkSpeed float64
	RunSpeed  float64
	TurnSpeed float64 // Degrees per second

	// Move is the steering output for this tick, zero to stand still.
	Move    gamemath.Vec2
	Running bool

	// Weapons are ordered handles to weapon entities owned by this unit.
	Weapons []donburi.Entity

	MoveTo    gamemath.Vec2
	HasMoveTo bool
}

// Speed returns the current movement speed.
func (u *UnitData) Speed() float64 {
	if u.Running {
		return u.RunSpeed
	}
	return u.WalkSpeed
}

var Unit = donburi.NewComponentType[UnitData]()
