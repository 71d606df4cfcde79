package systems

import (
	"bytes"
	"testing"

	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestEffectLogCountsAndTraces(t *testing.T) {
	var buf bytes.Buffer
	log := NewEffectLog(zerolog.New(&buf).Level(zerolog.TraceLevel))

	log.Emit(components.EffectHit, gamemath.Vec2{X: 1, Y: 2}, gamemath.Vec2{})
	log.Emit(components.EffectHit, gamemath.Vec2{}, gamemath.Vec2{})
	log.Emit(components.EffectDie, gamemath.Vec2{}, gamemath.Vec2{})

	assert.Equal(t, 2, log.Count(components.EffectHit))
	assert.Equal(t, map[string]int{"hit": 2, "die": 1}, log.Counts())
	assert.Contains(t, buf.String(), `"effect":"hit"`)
}

func TestDamageEmitsEffects(t *testing.T) {
	log := NewEffectLog(zerolog.Nop())
	e := ecs.NewECS(donburi.NewWorld())
	t.Cleanup(cfg.Reset)
	factory.CreateSim(e, factory.SimOptions{Seed: 1, Effects: log})
	factory.CreateSpace(e, 32, 32, 2)
	defineUnit("Dummy", "civilian", 10)

	unit := spawnUnit(t, e, "Dummy", 5, 5)
	Damage(unit, 4, gamemath.Vec2{}, gamemath.Vec2{}, donburi.Null, true)
	Damage(unit, 4, gamemath.Vec2{}, gamemath.Vec2{}, donburi.Null, false)
	Damage(unit, 4, gamemath.Vec2{}, gamemath.Vec2{}, donburi.Null, true)

	assert.Equal(t, 2, log.Count(components.EffectHit))
	assert.Equal(t, 1, log.Count(components.EffectDie))
}
