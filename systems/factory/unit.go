package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/outbreak/archetypes"
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrUnknownUnitType = errors.New("unknown unit type")
	ErrUnknownLayer    = errors.New("unknown layer")
)

const defaultUnitSize = 0.6

// CreateUnit spawns a unit of the configured type at pos, facing forward,
// with its weapons equipped.
func CreateUnit(ecs *ecs.ECS, typeName string, pos, forward gamemath.Vec2) (*donburi.Entry, error) {
	ut, ok := cfg.Units[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnitType, typeName)
	}
	layer, ok := components.ParseLayer(ut.Layer)
	if !ok {
		return nil, fmt.Errorf("unit %q: %w: %q", typeName, ErrUnknownLayer, ut.Layer)
	}

	unit := archetypes.Unit.Spawn(ecs)

	size := ut.Size
	if size <= 0 {
		size = defaultUnitSize
	}
	obj := NewBody(pos, size, tags.ResolvUnit)
	obj.Data = unit
	components.Object.SetValue(unit, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	forward = forward.Normalized()
	if forward.IsZero() {
		forward = gamemath.Vec2{X: 1}
	}
	components.Transform.SetValue(unit, components.TransformData{
		Position: pos,
		Forward:  forward,
	})

	// Speed variation of 1 +/- RandomSpeedScalar
	scalar := 1.0
	if ut.RandomSpeedScalar != 0 {
		scalar += randRange(ecs, -ut.RandomSpeedScalar, ut.RandomSpeedScalar)
	}

	components.Unit.SetValue(unit, components.UnitData{
		Type:       typeName,
		Layer:      layer,
		Enemies:    components.LayerMask(ut.Enemies...),
		Friendlies: components.LayerMask(ut.Friendlies...),
		WalkSpeed:  ut.WalkSpeed * scalar,
		RunSpeed:   ut.RunSpeed * scalar,
		TurnSpeed:  ut.TurnSpeed * scalar,
	})

	components.Health.SetValue(unit, components.HealthData{
		Current:        ut.Health,
		Max:            ut.Health,
		DestroyOnDeath: ut.DestroyOnDeath,
	})

	if ut.Shield > 0 {
		donburi.Add(unit, components.Shield, &components.ShieldData{
			Current:       ut.Shield,
			Max:           ut.Shield,
			RechargeRate:  cfg.Shield.RechargeRate,
			RechargeDelay: cfg.Shield.RechargeDelay,
		})
	}

	if ut.AwareRange > 0 {
		donburi.Add(unit, components.AI, &components.AIData{
			AwareRange:       ut.AwareRange,
			ScanInterval:     cfg.Perception.ScanInterval,
			AddEnemyOnAttack: ut.AddEnemyOnAttack,
			BroadcastRange:   ut.BroadcastRange,
			PathDir:          1,
			WanderPercent:    ut.WanderPercent,
			MinWanderTime:    ut.MinWanderTime,
			MaxWanderTime:    ut.MaxWanderTime,
			TetherDistance:   ut.TetherDistance,
		})
	}

	for _, name := range ut.Weapons {
		weapon, err := CreateWeapon(ecs, name)
		if err != nil {
			return unit, fmt.Errorf("unit %q: %w", typeName, err)
		}
		AttachWeapon(unit, weapon)
	}

	return unit, nil
}
