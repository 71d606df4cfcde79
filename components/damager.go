package components

import "github.com/yohamta/donburi"

// DamagerData deals continuous damage to its host, e.g. burning.
type DamagerData struct {
	DamagePerSecond float64
	DoHitEffects    bool
	DestroyOnDeath  bool
}

var Damager = donburi.NewComponentType[DamagerData]()

type DamageVolumeData struct {
	Range          float64
	Damage         float64
	ScaleOverRange bool
	OneShot        bool
	Delay          float64
	Wait           float64
	DoEffects      bool
	Mask           Layer // Unit layers affected
	Attacker       donburi.Entity
}

var DamageVolume = donburi.NewComponentType[DamageVolumeData]()
