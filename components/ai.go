package components

import (
	"fmt"
	"strings"

	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PathMode is how a unit walks a path node chain.
type PathMode int

const (
	PathOnce PathMode = iota
	PathLoop
	PathPingPong
)

func (m PathMode) String() string {
	switch m {
	case PathOnce:
		return "once"
	case PathLoop:
		return "loop"
	case PathPingPong:
		return "pingpong"
	}
	return fmt.Sprintf("PathMode(%d)", int(m))
}

func ParsePathMode(s string) (PathMode, error) {
	switch strings.ToLower(s) {
	case "once", "":
		return PathOnce, nil
	case "loop":
		return PathLoop, nil
	case "pingpong", "ping_pong", "ping-pong":
		return PathPingPong, nil
	}
	return 0, fmt.Errorf("unknown path mode %q", s)
}

type AIData struct {
	// Perception
	AwareRange   float64
	ScanInterval float64
	ScanTimer    float64
	Target       donburi.Entity

	AddEnemyOnAttack bool
	BroadcastRange   float64 // 0 disables squad alerts

	// Path following
	PathNode   donburi.Entity
	PathMode   PathMode
	PathDir    int // +1 towards children, -1 towards the root
	StickyPath bool

	// Wandering
	WanderPercent float64
	MinWanderTime float64
	MaxWanderTime float64
	WanderTimer   float64
	WanderDir     gamemath.Vec2

	Tether         gamemath.Vec2
	HasTether      bool
	TetherDistance float64
}

var AI = donburi.NewComponentType[AIData]()
