package config

// SimConfig contains the fixed-tick simulation settings
type SimConfig struct {
	TickRate int     // Ticks per second
	Gravity  float64 // Magnitude, used for ballistic aiming
	Seed     uint64  // 0 picks a seed from the clock

	// Spatial index
	CellSize int // resolv cell size in world units

	// Scenario maps are authored in pixels
	PixelsPerUnit float64

	CorpseLinger float64 // Seconds a corpse stays when the unit is destroyed on death
}

// PerceptionConfig tunes enemy acquisition
type PerceptionConfig struct {
	ScanInterval float64 // Seconds between nearest-enemy scans
}

// SteeringConfig tunes the AI movement policy
type SteeringConfig struct {
	FireAngle        float64 // Max degrees off forward before a weapon may fire
	TurnInPlaceAngle float64 // Movement is suppressed while turning more than this
	ArriveDistance   float64 // Move-to targets closer than this are reached
}

// AvoidanceConfig controls the three feeler rays
type AvoidanceConfig struct {
	ForwardLength float64
	SideLength    float64
	SideAngle     float64 // Degrees either side of forward
}

// ShieldConfig holds the defaults for units that carry a shield
type ShieldConfig struct {
	RechargeRate  float64 // Points per second
	RechargeDelay float64 // Seconds without a hit before recharging
}

// InfectionConfig controls the infected to risen transition
type InfectionConfig struct {
	Speed       float64 // Infection gained per second
	MinRiseTime float64
	MaxRiseTime float64
	RisenType   string // Unit type spawned when a corpse rises
}

// ProjectileConfig contains projectile body settings
type ProjectileConfig struct {
	Size     float64
	Lifetime float64 // Seconds before an unspent projectile is removed
}

// ParticleConfig contains particle body settings
type ParticleConfig struct {
	Size float64
}

// BurnConfig is the Damager attached by igniting weapons
type BurnConfig struct {
	DamagePerSecond float64
}

// BlastConfig is the default DamageVolume spawned by explosive projectiles
type BlastConfig struct {
	Damage         float64
	ScaleOverRange bool
	OneShot        bool
	Delay          float64
}

// PickupConfig controls weapon pickup
type PickupConfig struct {
	ItemSize float64
}

// SpawnerConfig holds spawner defaults used when a map omits them
type SpawnerConfig struct {
	InitialDelay      float64
	Delay             float64
	DeadCheckInterval float64
	TetherDistance    float64
}

// StatsConfig controls the outbreak census
type StatsConfig struct {
	Interval          float64
	DispatchThreshold int // Civilian percentage that triggers army dispatch
	PatrolThreshold   int // Civilian percentage that triggers army patrols
	PatrolPath        string
	PatrolCount       int
}

// SpectatorConfig configures the websocket spectator server
type SpectatorConfig struct {
	Enabled bool
	Port    int
}

// RecorderConfig configures the sqlite event recorder and run summaries
type RecorderConfig struct {
	Enabled bool
	Path    string
	AppName string // gdata application name for run summaries
}

// LogConfig configures zerolog output
type LogConfig struct {
	Level   string
	Console bool
}

// UnitTypeConfig contains configuration for a unit type
type UnitTypeConfig struct {
	Name       string
	Layer      string
	Enemies    []string
	Friendlies []string

	// Damageable
	Health         float64
	Shield         float64 // Max shield health, 0 for none
	DestroyOnDeath bool

	// Movement
	WalkSpeed         float64
	RunSpeed          float64
	TurnSpeed         float64 // Degrees per second
	RandomSpeedScalar float64
	Size              float64

	Weapons []string

	// AI
	AwareRange       float64
	BroadcastRange   float64
	AddEnemyOnAttack bool
	WanderPercent    float64
	MinWanderTime    float64
	MaxWanderTime    float64
	TetherDistance   float64
}

// WeaponTypeConfig contains configuration for a weapon type
type WeaponTypeConfig struct {
	Name  string
	Kind  string // "ray", "projectile" or "particle"
	Class string // "unarmed" stays with its owner, "item" is dropped on death

	Damage             float64
	RateOfFire         float64 // Seconds between shots
	RateOfFireVariance float64
	Range              float64
	MinRange           float64
	MaxRange           float64
	MaxAmmo            int // -1 for infinite
	ReloadTime         float64
	AccuracyError      float64 // Degrees

	// Projectile
	ProjectileSpeed float64
	Ballistic       bool
	BlastRadius     float64

	// Particle
	EmissionRate  float64 // Particles per second while firing
	ParticleSpeed float64

	Infects bool
	Ignites bool
}

// Global configuration instances
var Sim SimConfig
var Perception PerceptionConfig
var Steering SteeringConfig
var Avoidance AvoidanceConfig
var Shield ShieldConfig
var Infection InfectionConfig
var Projectile ProjectileConfig
var Particle ParticleConfig
var Burn BurnConfig
var Blast BlastConfig
var Pickup PickupConfig
var Spawner SpawnerConfig
var Stats StatsConfig
var Spectator SpectatorConfig
var Recorder RecorderConfig
var Log LogConfig
var Units map[string]UnitTypeConfig
var Weapons map[string]WeaponTypeConfig

func init() {
	setDefaults()
}

// Reset restores every setting to its default. Tests call it from t.Cleanup.
func Reset() {
	setDefaults()
}

func setDefaults() {
	Sim = SimConfig{
		TickRate:      30,
		Gravity:       9.81,
		CellSize:      2,
		PixelsPerUnit: 16,
		CorpseLinger:  5,
	}

	Perception = PerceptionConfig{
		ScanInterval: 1,
	}

	Steering = SteeringConfig{
		FireAngle:        30,
		TurnInPlaceAngle: 45,
		ArriveDistance:   1,
	}

	Avoidance = AvoidanceConfig{
		ForwardLength: 1,
		SideLength:    2,
		SideAngle:     15,
	}

	Shield = ShieldConfig{
		RechargeRate:  10,
		RechargeDelay: 5,
	}

	Infection = InfectionConfig{
		Speed:       4,
		MinRiseTime: 5,
		MaxRiseTime: 10,
		RisenType:   "Zombie",
	}

	Projectile = ProjectileConfig{
		Size:     0.2,
		Lifetime: 5,
	}

	Particle = ParticleConfig{
		Size: 0.3,
	}

	Burn = BurnConfig{
		DamagePerSecond: 10,
	}

	Blast = BlastConfig{
		Damage:         100,
		ScaleOverRange: true,
		OneShot:        true,
	}

	Pickup = PickupConfig{
		ItemSize: 0.5,
	}

	Spawner = SpawnerConfig{
		InitialDelay:      1,
		Delay:             1,
		DeadCheckInterval: 1,
		TetherDistance:    5,
	}

	Stats = StatsConfig{
		Interval:          1,
		DispatchThreshold: 70,
		PatrolThreshold:   30,
		PatrolPath:        "patrol",
		PatrolCount:       2,
	}

	Spectator = SpectatorConfig{
		Enabled: false,
		Port:    7373,
	}

	Recorder = RecorderConfig{
		Enabled: false,
		Path:    "outbreak.db",
		AppName: "outbreak",
	}

	Log = LogConfig{
		Level:   "info",
		Console: true,
	}

	Weapons = map[string]WeaponTypeConfig{
		"Pistol": {
			Name:          "Pistol",
			Kind:          "ray",
			Class:         "item",
			Damage:        25,
			RateOfFire:    0.5,
			Range:         20,
			MinRange:      3,
			MaxRange:      12,
			MaxAmmo:       12,
			ReloadTime:    2,
			AccuracyError: 3,
		},
		"Rifle": {
			Name:               "Rifle",
			Kind:               "ray",
			Class:              "item",
			Damage:             20,
			RateOfFire:         0.15,
			RateOfFireVariance: 0.05,
			Range:              35,
			MinRange:           5,
			MaxRange:           20,
			MaxAmmo:            30,
			ReloadTime:         3,
			AccuracyError:      2.5,
		},
		"GrenadeLauncher": {
			Name:            "GrenadeLauncher",
			Kind:            "projectile",
			Class:           "unarmed",
			Damage:          0,
			RateOfFire:      3,
			Range:           20,
			MinRange:        8,
			MaxRange:        18,
			MaxAmmo:         4,
			ReloadTime:      6,
			AccuracyError:   1,
			ProjectileSpeed: 15,
			Ballistic:       true,
			BlastRadius:     4,
		},
		"Flamer": {
			Name:          "Flamer",
			Kind:          "particle",
			Class:         "item",
			Damage:        2,
			RateOfFire:    0.1,
			Range:         6,
			MinRange:      1,
			MaxRange:      4,
			MaxAmmo:       -1,
			AccuracyError: 10,
			EmissionRate:  20,
			ParticleSpeed: 8,
			Ignites:       true,
		},
		"Claws": {
			Name:       "Claws",
			Kind:       "ray",
			Class:      "unarmed",
			Damage:     15,
			RateOfFire: 1,
			Range:      1.5,
			MaxRange:   1,
			MaxAmmo:    -1,
			Infects:    true,
		},
	}

	Units = map[string]UnitTypeConfig{
		"Civilian": {
			Name:              "Civilian",
			Layer:             "civilian",
			Enemies:           []string{"zombie"},
			Friendlies:        []string{"civilian", "cop", "soldier"},
			Health:            100,
			WalkSpeed:         1.5,
			RunSpeed:          4,
			TurnSpeed:         360,
			RandomSpeedScalar: 0.2,
			Size:              0.6,
			AwareRange:        15,
			BroadcastRange:    10,
			AddEnemyOnAttack:  true,
			WanderPercent:     50,
			MinWanderTime:     5,
			MaxWanderTime:     10,
			TetherDistance:    5,
		},
		"Cop": {
			Name:              "Cop",
			Layer:             "cop",
			Enemies:           []string{"zombie"},
			Friendlies:        []string{"civilian", "cop", "soldier"},
			Health:            100,
			WalkSpeed:         1.5,
			RunSpeed:          4.5,
			TurnSpeed:         360,
			RandomSpeedScalar: 0.1,
			Size:              0.6,
			Weapons:           []string{"Pistol"},
			AwareRange:        20,
			BroadcastRange:    15,
			AddEnemyOnAttack:  true,
			WanderPercent:     30,
			MinWanderTime:     5,
			MaxWanderTime:     10,
			TetherDistance:    5,
		},
		"Soldier": {
			Name:              "Soldier",
			Layer:             "soldier",
			Enemies:           []string{"zombie"},
			Friendlies:        []string{"civilian", "cop", "soldier"},
			Health:            150,
			Shield:            50,
			WalkSpeed:         1.5,
			RunSpeed:          5,
			TurnSpeed:         270,
			RandomSpeedScalar: 0.05,
			Size:              0.6,
			Weapons:           []string{"Rifle", "GrenadeLauncher"},
			AwareRange:        30,
			BroadcastRange:    20,
			AddEnemyOnAttack:  true,
			TetherDistance:    5,
		},
		"Zombie": {
			Name:              "Zombie",
			Layer:             "zombie",
			Enemies:           []string{"civilian", "cop", "soldier", "player"},
			Friendlies:        []string{"zombie"},
			Health:            80,
			WalkSpeed:         0.8,
			RunSpeed:          2.5,
			TurnSpeed:         180,
			RandomSpeedScalar: 0.3,
			Size:              0.6,
			Weapons:           []string{"Claws"},
			AwareRange:        12,
			AddEnemyOnAttack:  true,
			WanderPercent:     80,
			MinWanderTime:     3,
			MaxWanderTime:     8,
			TetherDistance:    10,
		},
	}
}
