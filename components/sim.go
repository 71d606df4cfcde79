package components

import (
	"math/rand/v2"

	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

// EffectKind names a presentation effect. The simulation never waits on one.
type EffectKind string

const (
	EffectMuzzle    EffectKind = "muzzle"
	EffectTracer    EffectKind = "tracer"
	EffectHit       EffectKind = "hit"
	EffectWorldHit  EffectKind = "world_hit"
	EffectDie       EffectKind = "die"
	EffectExplosion EffectKind = "explosion"
	EffectIgnite    EffectKind = "ignite"
	EffectRise      EffectKind = "rise"
	EffectReload    EffectKind = "reload"
)

// EffectSink receives fire-and-forget effect requests.
type EffectSink interface {
	Emit(kind EffectKind, pos, dir gamemath.Vec2)
}

// NopEffects drops every effect.
type NopEffects struct{}

func (NopEffects) Emit(EffectKind, gamemath.Vec2, gamemath.Vec2) {}

// SimData is the singleton simulation context.
type SimData struct {
	Tick    int64
	Time    float64
	Dt      float64
	Gravity float64

	Rng     *rand.Rand
	Logger  zerolog.Logger
	Effects EffectSink
}

// Range returns a uniform value in [lo, hi].
func (s *SimData) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.Rng.Float64()*(hi-lo)
}

var Sim = donburi.NewComponentType[SimData]()
