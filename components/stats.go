package components

import "github.com/yohamta/donburi"

// StatsData is the singleton outbreak census.
type StatsData struct {
	Timer float64

	Civilians int
	Cops      int
	Soldiers  int
	Zombies   int
	Infected  int
	Dead      int
	Escaped   int

	PercentCivilians int
	PercentCops      int
	PercentZombies   int
	PercentInfected  int
	PercentDead      int
	PercentEscaped   int

	Dispatched bool
	Patrolling bool
}

var Stats = donburi.NewComponentType[StatsData]()
