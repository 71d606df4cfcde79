package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShieldAbsorb(t *testing.T) {
	s := &ShieldData{Current: 50, Max: 50, RechargeDelay: 5}

	assert.Equal(t, 0.0, s.Absorb(20))
	assert.Equal(t, 30.0, s.Current)

	assert.Equal(t, 40.0, s.Absorb(70))
	assert.Equal(t, 0.0, s.Current)
	assert.Equal(t, 5.0, s.Wait)
}

func TestShieldAbsorbExactAmountPassesNothing(t *testing.T) {
	s := &ShieldData{Current: 50, Max: 50}
	assert.Equal(t, 0.0, s.Absorb(50))
	assert.Equal(t, 0.0, s.Current)
}

func TestShieldRecharge(t *testing.T) {
	s := &ShieldData{Max: 50, RechargeRate: 10, RechargeDelay: 5}
	s.Absorb(10)

	s.Recharge(4)
	assert.Equal(t, 0.0, s.Current, "still waiting out the delay")

	s.Recharge(1)
	assert.InDelta(t, 10, s.Current, 1e-3)

	s.Recharge(10)
	assert.Equal(t, 50.0, s.Current)
}

func TestShieldHitRestartsDelay(t *testing.T) {
	s := &ShieldData{Max: 50, RechargeRate: 10, RechargeDelay: 5}
	s.Absorb(10)
	s.Recharge(6)
	assert.Greater(t, s.Current, 0.0)

	s.Absorb(100)
	s.Recharge(2)
	assert.Equal(t, 0.0, s.Current)
}

func TestLayerMask(t *testing.T) {
	mask := LayerMask("Civilian", "cop", "nonsense")
	assert.True(t, mask.Has(LayerCivilian))
	assert.True(t, mask.Has(LayerCop))
	assert.False(t, mask.Has(LayerZombie))
	assert.Equal(t, "civilian|cop", mask.String())
	assert.Equal(t, "none", Layer(0).String())
}

func TestHealthDead(t *testing.T) {
	assert.False(t, (&HealthData{Current: 1}).Dead())
	assert.True(t, (&HealthData{Current: 0}).Dead())
}
