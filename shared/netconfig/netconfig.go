// Package netconfig defines lightweight enums shared between the simulation
// and spectator clients. It has no dependencies so spectators can decode
// snapshots without pulling in the simulation.
package netconfig

// UnitState is the coarse life state of a unit as seen by spectators.
type UnitState int

const (
	UnitAlive UnitState = iota
	UnitInfected
	UnitDead
)

func (s UnitState) String() string {
	switch s {
	case UnitAlive:
		return "alive"
	case UnitInfected:
		return "infected"
	case UnitDead:
		return "dead"
	}
	return "unknown"
}

// PhaseID is the army response phase of the outbreak.
type PhaseID int

const (
	PhaseOutbreak PhaseID = iota // Civilians above the dispatch threshold
	PhaseDispatch                // Army dispatched
	PhasePatrol                  // Army patrolling
)
