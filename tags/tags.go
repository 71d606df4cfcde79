package tags

import "github.com/yohamta/donburi"

var (
	Unit       = donburi.NewTag().SetName("Unit")
	Wall       = donburi.NewTag().SetName("Wall")
	Item       = donburi.NewTag().SetName("Item")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
	PathNode   = donburi.NewTag().SetName("PathNode")
	Trigger    = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for spatial queries
const (
	ResolvSolid      = "solid"
	ResolvUnit       = "unit"
	ResolvItem       = "item"
	ResolvProjectile = "projectile"
	ResolvParticle   = "particle"
	ResolvTrigger    = "trigger"
)
