package components

import "github.com/yohamta/donburi"

// TriggerData is a rectangular zone that reacts to units entering it. The
// zone's bounds are its Object.
type TriggerData struct {
	Name   string
	Mask   Layer // Unit layers the zone reacts to
	Active bool

	DamagePerSecond float64 // Applied every tick a unit is inside, negative heals
	DoHitEffects    bool

	Activate []string // Spawners and triggers switched on when a unit enters

	PathNode   donburi.Entity // Assigned to AI units that enter, Null for none
	PathMode   PathMode
	StickyPath bool

	DestroyOnEnter bool
	DestroyCount   int
	Escape         bool // Destroyed units count as escaped in the census

	DeactivateOnTrigger bool

	Inside map[donburi.Entity]bool
}

var Trigger = donburi.NewComponentType[TriggerData]()
