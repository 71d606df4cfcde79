package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ShieldData is an absorption buffer in front of Health.
type ShieldData struct {
	Current       float64
	Max           float64
	RechargeRate  float64 // Points per second
	RechargeDelay float64 // Seconds without a hit before recharging
	Wait          float64 // Remaining delay

	ramp *gween.Tween
}

// Absorb soaks up amount and returns what is left for Health. Every call
// restarts the recharge delay, even when the shield is already empty.
func (s *ShieldData) Absorb(amount float64) float64 {
	residual := 0.0
	if s.Current > amount {
		s.Current -= amount
	} else {
		residual = amount - s.Current
		s.Current = 0
	}

	s.Wait = s.RechargeDelay
	s.ramp = nil
	return residual
}

// Recharge advances the delay and the linear recharge ramp by dt seconds.
func (s *ShieldData) Recharge(dt float64) {
	s.Wait -= dt
	if s.Wait > 0 || s.Current >= s.Max || s.RechargeRate <= 0 {
		return
	}

	if s.ramp == nil {
		duration := (s.Max - s.Current) / s.RechargeRate
		s.ramp = gween.New(float32(s.Current), float32(s.Max), float32(duration), ease.Linear)
	}

	v, done := s.ramp.Update(float32(dt))
	s.Current = min(float64(v), s.Max)
	if done {
		s.Current = s.Max
		s.ramp = nil
	}
}

var Shield = donburi.NewComponentType[ShieldData]()
