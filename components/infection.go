package components

import "github.com/yohamta/donburi"

type InfectionState int

const (
	InfectionAlive InfectionState = iota
	InfectionDead
	InfectionRisen
)

func (s InfectionState) String() string {
	switch s {
	case InfectionAlive:
		return "alive"
	case InfectionDead:
		return "dead"
	case InfectionRisen:
		return "risen"
	}
	return "unknown"
}

type InfectionData struct {
	Speed       float64 // Gained per second while alive
	Accumulated float64
	RiseTimer   float64 // Seconds left once dead
	State       InfectionState
	RisenType   string
}

var Infection = donburi.NewComponentType[InfectionData]()
