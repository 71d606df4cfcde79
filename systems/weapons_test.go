package systems

import (
	"testing"

	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/shared/messages"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/automoto/outbreak/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// armUnit defines a weaponless gunner type and a zombie-layer target type,
// then places the gunner at (5,5) facing +X with weapon.
func armUnit(t *testing.T, e *ecs.ECS, weapon cfg.WeaponTypeConfig) (*donburi.Entry, *donburi.Entry) {
	t.Helper()
	cfg.Weapons[weapon.Name] = weapon
	defineUnit("Gunner", "soldier", 100)
	defineUnit("Target", "zombie", 100)

	gunner := spawnUnit(t, e, "Gunner", 5, 5)
	w, err := factory.CreateWeapon(e, weapon.Name)
	require.NoError(t, err)
	factory.AttachWeapon(gunner, w)
	return gunner, w
}

func testGun() cfg.WeaponTypeConfig {
	return cfg.WeaponTypeConfig{
		Name:       "TestGun",
		Kind:       "ray",
		Class:      "item",
		Damage:     10,
		RateOfFire: 1,
		Range:      10,
		MaxAmmo:    2,
		ReloadTime: 1,
	}
}

func TestRayWeaponFiresReloadsAndFiresAgain(t *testing.T) {
	e := newTestECS(t)
	_, gun := armUnit(t, e, testGun())
	target := spawnUnit(t, e, "Target", 10, 5)

	shots := 0
	messages.ShotFired.Subscribe(e.World, func(_ donburi.World, ev messages.ShotFiredEvent) {
		shots++
		assert.Equal(t, "ray", ev.Kind)
	})

	AimAt(gun, gamemath.Vec2{X: 10, Y: 5})
	RequestFire(gun, true)

	tick(e, 0.5, UpdateWeapons)
	assert.Equal(t, 90.0, Health(target))
	assert.Equal(t, 1, Ammo(gun))

	tick(e, 0.5, UpdateWeapons)
	assert.Equal(t, 90.0, Health(target), "rate of fire limits shots")

	tick(e, 0.5, UpdateWeapons)
	assert.Equal(t, 80.0, Health(target))
	assert.Equal(t, 0, Ammo(gun))
	assert.True(t, Reloading(gun))

	tick(e, 0.5, UpdateWeapons)
	assert.Equal(t, 80.0, Health(target))

	tick(e, 0.5, UpdateWeapons)
	assert.False(t, Reloading(gun))
	assert.Equal(t, 70.0, Health(target))
	assert.Equal(t, 1, Ammo(gun))
	assert.Equal(t, 3, shots)
}

func TestRayWeaponStopsAtWalls(t *testing.T) {
	e := newTestECS(t)
	_, gun := armUnit(t, e, testGun())
	target := spawnUnit(t, e, "Target", 10, 5)
	factory.CreateWall(e, 7, 3, 1, 4)

	AimAt(gun, gamemath.Vec2{X: 10, Y: 5})
	RequestFire(gun, true)
	tick(e, 0.5, UpdateWeapons)

	assert.Equal(t, 100.0, Health(target))
	assert.Equal(t, 1, Ammo(gun), "a blocked shot still uses ammo")
}

func TestRayWeaponIgnoresFriendlies(t *testing.T) {
	e := newTestECS(t)
	_, gun := armUnit(t, e, testGun())
	friend := spawnUnit(t, e, "Gunner", 8, 5)
	target := spawnUnit(t, e, "Target", 10, 5)

	AimAt(gun, gamemath.Vec2{X: 10, Y: 5})
	RequestFire(gun, true)
	tick(e, 0.5, UpdateWeapons)

	assert.Equal(t, 100.0, Health(friend))
	assert.Equal(t, 90.0, Health(target))
}

func TestReleasedTriggerDoesNotFire(t *testing.T) {
	e := newTestECS(t)
	_, gun := armUnit(t, e, testGun())
	target := spawnUnit(t, e, "Target", 10, 5)

	AimAt(gun, gamemath.Vec2{X: 10, Y: 5})
	RequestFire(gun, false)
	tick(e, 0.5, UpdateWeapons)

	assert.Equal(t, 100.0, Health(target))
	assert.Equal(t, 2, Ammo(gun))
}

func TestReloadRules(t *testing.T) {
	e := newTestECS(t)
	_, gun := armUnit(t, e, testGun())

	components.Weapon.Get(gun).Ammo = 1
	Reload(gun)
	assert.True(t, Reloading(gun))
	Reload(gun)
	assert.Equal(t, 1.0, components.Weapon.Get(gun).ReloadWait)

	instant := testGun()
	instant.Name = "Instant"
	instant.ReloadTime = 0
	cfg.Weapons[instant.Name] = instant
	w, err := factory.CreateWeapon(e, instant.Name)
	require.NoError(t, err)
	components.Weapon.Get(w).Ammo = 0
	Reload(w)
	assert.False(t, Reloading(w))
	assert.Equal(t, 2, Ammo(w))

	infinite := testGun()
	infinite.Name = "Infinite"
	infinite.MaxAmmo = -1
	cfg.Weapons[infinite.Name] = infinite
	w, err = factory.CreateWeapon(e, infinite.Name)
	require.NoError(t, err)
	Reload(w)
	assert.False(t, Reloading(w))
	assert.Equal(t, -1, Ammo(w))
}

func TestAimAtSelfKeepsForward(t *testing.T) {
	e := newTestECS(t)
	_, gun := armUnit(t, e, testGun())

	AimAt(gun, gamemath.Vec2{X: 5, Y: 5})
	assert.Equal(t, gamemath.Vec2{X: 1}, components.Weapon.Get(gun).Direction)

	AimAt(gun, gamemath.Vec2{X: 5, Y: 9})
	assert.Equal(t, gamemath.Vec2{Y: 1}, components.Weapon.Get(gun).Direction)
}

func TestProjectileTravelsAndHits(t *testing.T) {
	e := newTestECS(t)
	_, launcher := armUnit(t, e, cfg.WeaponTypeConfig{
		Name:            "Launcher",
		Kind:            "projectile",
		Damage:          30,
		RateOfFire:      10,
		Range:           20,
		MaxAmmo:         -1,
		ProjectileSpeed: 10,
	})
	target := spawnUnit(t, e, "Target", 10, 5)

	AimAt(launcher, gamemath.Vec2{X: 10, Y: 5})
	RequestFire(launcher, true)
	tick(e, 0.1, UpdateWeapons)
	RequestFire(launcher, false)

	assert.Equal(t, 1, countTagged(e.World, tags.Projectile))
	assert.Equal(t, 100.0, Health(target), "projectiles resolve later")

	for i := 0; i < 10; i++ {
		tick(e, 0.1, UpdateProjectiles)
	}
	assert.Equal(t, 70.0, Health(target))
	assert.Equal(t, 0, countTagged(e.World, tags.Projectile))
}

func TestBallisticOutOfReachRefusesShot(t *testing.T) {
	e := newTestECS(t)
	gunner, mortar := armUnit(t, e, cfg.WeaponTypeConfig{
		Name:            "Mortar",
		Kind:            "projectile",
		RateOfFire:      1,
		Range:           100,
		MaxAmmo:         3,
		ProjectileSpeed: 5,
		Ballistic:       true,
		BlastRadius:     2,
	})

	AimAt(mortar, gamemath.Vec2{X: 55, Y: 5})
	err := fireWeapon(e, mortar, gunner)

	assert.ErrorIs(t, err, gamemath.ErrNoBallisticSolution)
	assert.Equal(t, 0, countTagged(e.World, tags.Projectile))
	assert.Equal(t, 2, Ammo(mortar))
}

func TestBallisticLobDetonatesAtAimPoint(t *testing.T) {
	e := newTestECS(t)
	cfg.Blast.Damage = 50
	cfg.Blast.ScaleOverRange = false
	gunner, mortar := armUnit(t, e, cfg.WeaponTypeConfig{
		Name:            "Mortar",
		Kind:            "projectile",
		RateOfFire:      1,
		Range:           30,
		MaxAmmo:         3,
		ProjectileSpeed: 15,
		Ballistic:       true,
		BlastRadius:     2,
	})
	target := spawnUnit(t, e, "Target", 15, 5)
	// The lob flies over this wall
	factory.CreateWall(e, 10, 3, 1, 4)

	AimAt(mortar, gamemath.Vec2{X: 15, Y: 5})
	require.NoError(t, fireWeapon(e, mortar, gunner))

	for i := 0; i < 30 && countTagged(e.World, tags.Projectile) > 0; i++ {
		tick(e, 0.1, UpdateProjectiles)
	}
	require.Equal(t, 0, countTagged(e.World, tags.Projectile))

	tick(e, 0.1, UpdateDamageVolumes)
	assert.Equal(t, 50.0, Health(target))
	assert.Equal(t, 100.0, Health(gunner), "shooter is outside the blast")
}

func TestZeroSpeedProjectileRefused(t *testing.T) {
	e := newTestECS(t)
	gunner, w := armUnit(t, e, cfg.WeaponTypeConfig{
		Name:       "Dud",
		Kind:       "projectile",
		RateOfFire: 1,
		Range:      10,
		MaxAmmo:    -1,
	})

	assert.ErrorIs(t, fireWeapon(e, w, gunner), ErrZeroSpeed)
	assert.Equal(t, 0, countTagged(e.World, tags.Projectile))
}

func TestParticleWeaponEmitsAtRateAndIgnites(t *testing.T) {
	e := newTestECS(t)
	cfg.Burn.DamagePerSecond = 10
	_, flamer := armUnit(t, e, cfg.WeaponTypeConfig{
		Name:          "Torch",
		Kind:          "particle",
		Damage:        1,
		RateOfFire:    0.1,
		Range:         6,
		MaxAmmo:       -1,
		EmissionRate:  10,
		ParticleSpeed: 20,
		Ignites:       true,
	})
	target := spawnUnit(t, e, "Target", 8, 5)

	AimAt(flamer, gamemath.Vec2{X: 8, Y: 5})
	RequestFire(flamer, true)
	tick(e, 0.25, UpdateWeapons)
	assert.Equal(t, 2, countTagged(e.World, tags.Particle))
	assert.InDelta(t, 0.5, components.Weapon.Get(flamer).EmitBudget, 1e-9)

	RequestFire(flamer, false)
	tick(e, 0.25, UpdateWeapons)
	assert.Equal(t, 0.0, components.Weapon.Get(flamer).EmitBudget)

	tick(e, 0.25, UpdateParticles, UpdateCombat)
	assert.Equal(t, 98.0, Health(target))
	assert.True(t, target.HasComponent(components.Damager))

	tick(e, 0.5, UpdateDamagers)
	assert.InDelta(t, 93, Health(target), 1e-9)
}

func TestDeadOwnerWeaponsStopFiring(t *testing.T) {
	e := newTestECS(t)
	gunner, gun := armUnit(t, e, testGun())
	target := spawnUnit(t, e, "Target", 10, 5)

	AimAt(gun, gamemath.Vec2{X: 10, Y: 5})
	RequestFire(gun, true)
	Die(gunner, donburi.Null)
	tick(e, 0.5, UpdateWeapons)

	assert.Equal(t, 100.0, Health(target))
}
