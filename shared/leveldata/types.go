// Package leveldata parses scenario maps into plain data. It has no
// dependencies on donburi or resolv. Coordinates are converted from map
// pixels to world units while loading.
package leveldata

// Scenario holds everything a scenario map places in the world.
type Scenario struct {
	Name   string
	Width  float64
	Height float64

	Walls    []Rect
	Paths    []Path
	Units    []UnitPlacement
	Spawners []SpawnerPlacement
	Triggers []TriggerPlacement
}

// Rect is a solid axis-aligned wall. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// Path is a named chain of nodes. The first point is the root.
type Path struct {
	Name   string
	Points []Point
}

// UnitPlacement is a unit present when the scenario starts.
type UnitPlacement struct {
	Type   string
	Pos    Point
	Facing float64 // Degrees, 0 faces +X

	Path     string // Name of a path to follow, empty for none
	PathMode string // "once", "loop" or "pingpong"
	PathDir  int
	Sticky   bool

	Tether         bool // Tether the unit to its start position
	TetherDistance float64
}

// SpawnerPlacement is a spawner and its settings.
type SpawnerPlacement struct {
	Name      string
	Pos       Point
	Facing    float64
	Templates []string
	Count     int // -1 for infinite
	Active    bool
	Dispatch  bool

	InitialDelay float64
	Delay        float64

	Path     string
	PathMode string
	PathDir  int
	Sticky   bool

	Tether         bool
	TetherDistance float64
}

// TriggerPlacement is a rectangular zone that reacts to units entering it.
type TriggerPlacement struct {
	Name   string
	Bounds Rect
	Mask   []string // Layer names, empty for every unit
	Active bool

	DamagePerSecond float64
	Activate        []string // Spawner and trigger names

	Path     string
	PathMode string
	Sticky   bool

	DestroyOnEnter bool
	Escape         bool
	Deactivate     bool
}
