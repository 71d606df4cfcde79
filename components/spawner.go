package components

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

type SpawnerData struct {
	Name      string
	Templates []string // Unit types, one picked at random per spawn
	Count     int      // Remaining spawns, -1 for infinite
	Active    bool
	Dispatch  bool // Activated by the army dispatch threshold

	InitialDelay float64
	Delay        float64
	Wait         float64

	Facing gamemath.Vec2

	PathNode   donburi.Entity
	PathMode   PathMode
	PathDir    int
	StickyPath bool

	Tether         gamemath.Vec2
	HasTether      bool
	TetherDistance float64

	Live           []donburi.Entity
	DeadCheckTimer float64
}

var Spawner = donburi.NewComponentType[SpawnerData]()
