package netcomponents

import (
	"github.com/automoto/outbreak/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetUnitData mirrors a unit for spectators
type NetUnitData struct {
	X, Y     float64
	FX, FY   float64 // Forward
	TypeName string  // "Civilian", "Zombie", etc.
	State    netconfig.UnitState
	Health   int
	Shield   int
	Target   uint // NetworkId of the current target, 0 for none
}

var NetUnit = donburi.NewComponentType[NetUnitData]()

// LerpNetUnit interpolates between two unit states
func LerpNetUnit(from, to NetUnitData, t float64) *NetUnitData {
	return &NetUnitData{
		X:        from.X + (to.X-from.X)*t,
		Y:        from.Y + (to.Y-from.Y)*t,
		FX:       from.FX + (to.FX-from.FX)*t,
		FY:       from.FY + (to.FY-from.FY)*t,
		TypeName: to.TypeName,
		State:    to.State,
		Health:   to.Health,
		Shield:   to.Shield,
		Target:   to.Target,
	}
}
