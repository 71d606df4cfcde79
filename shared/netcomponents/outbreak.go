package netcomponents

import (
	"github.com/automoto/outbreak/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetOutbreakData is the census snapshot sent to spectators
type NetOutbreakData struct {
	Tick      int64
	Time      float64 // Elapsed simulated seconds
	Civilians int
	Cops      int
	Soldiers  int
	Zombies   int
	Dead      int

	PercentCivilians int
	Phase            netconfig.PhaseID
}

var NetOutbreak = donburi.NewComponentType[NetOutbreakData]()
