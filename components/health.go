package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64

	// DestroyOnDeath removes the entity once its corpse timer runs out.
	DestroyOnDeath bool
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
