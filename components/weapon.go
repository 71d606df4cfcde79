package components

import (
	"fmt"
	"strings"

	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

// WeaponKind selects how a shot is resolved.
type WeaponKind int

const (
	WeaponRay WeaponKind = iota
	WeaponProjectile
	WeaponParticle
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponRay:
		return "ray"
	case WeaponProjectile:
		return "projectile"
	case WeaponParticle:
		return "particle"
	}
	return fmt.Sprintf("WeaponKind(%d)", int(k))
}

// ParseWeaponKind accepts "ray", "projectile" or "particle".
func ParseWeaponKind(s string) (WeaponKind, error) {
	switch strings.ToLower(s) {
	case "ray", "":
		return WeaponRay, nil
	case "projectile":
		return WeaponProjectile, nil
	case "particle", "particles":
		return WeaponParticle, nil
	}
	return 0, fmt.Errorf("unknown weapon kind %q", s)
}

// WeaponClass decides what happens to a weapon when its owner dies.
type WeaponClass int

const (
	// ClassUnarmed weapons are part of the unit and are never dropped.
	ClassUnarmed WeaponClass = iota
	// ClassItem weapons are dropped on death and can be picked up.
	ClassItem
)

func ParseWeaponClass(s string) (WeaponClass, error) {
	switch strings.ToLower(s) {
	case "unarmed", "":
		return ClassUnarmed, nil
	case "item":
		return ClassItem, nil
	}
	return 0, fmt.Errorf("unknown weapon class %q", s)
}

type WeaponData struct {
	Name    string
	Kind    WeaponKind
	Class   WeaponClass
	Enabled bool

	// Owner is donburi.Null while the weapon lies on the ground.
	Owner donburi.Entity
	Input bool

	Damage             float64
	RateOfFire         float64
	RateOfFireVariance float64
	NextFire           float64

	Ammo       int // -1 is infinite
	MaxAmmo    int
	ReloadTime float64
	ReloadWait float64

	Range         float64
	MinRange      float64
	MaxRange      float64
	AccuracyError float64 // Degrees

	// Aim is the point the weapon points at. Direction is the resulting unit
	// vector, or the owner's forward when the aim point is the owner itself.
	Aim       gamemath.Vec2
	Direction gamemath.Vec2

	ProjectileSpeed float64
	Ballistic       bool
	BlastRadius     float64

	EmissionRate  float64
	ParticleSpeed float64
	EmitBudget    float64 // Fractional particles carried between ticks

	Infects bool
	Ignites bool
}

func (w *WeaponData) Reloading() bool {
	return w.ReloadWait > 0
}

func (w *WeaponData) HasAmmo() bool {
	return w.Ammo == -1 || w.Ammo > 0
}

var Weapon = donburi.NewComponentType[WeaponData]()
