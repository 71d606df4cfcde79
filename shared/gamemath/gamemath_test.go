package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBallisticLaunchAngle(t *testing.T) {
	angle, err := BallisticLaunchAngle(Vec3{}, Vec3{X: 10, Z: 10}, 15, 9.81)
	require.NoError(t, err)
	assert.InDelta(t, 19.03, angle, 0.05)

	// Flight check: the low arc lands at the target range.
	rad := angle * degToRad
	flight := 2 * 15 * math.Sin(rad) / 9.81
	assert.InDelta(t, math.Hypot(10, 10), 15*math.Cos(rad)*flight, 1e-6)
}

func TestBallisticLaunchAngleFailures(t *testing.T) {
	tests := []struct {
		name    string
		target  Vec3
		speed   float64
		gravity float64
	}{
		{"out of reach", Vec3{X: 1000, Z: 1000}, 15, 9.81},
		{"zero speed", Vec3{X: 10, Z: 10}, 0, 9.81},
		{"same position", Vec3{}, 15, 9.81},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BallisticLaunchAngle(Vec3{}, tt.target, tt.speed, tt.gravity)
			assert.ErrorIs(t, err, ErrNoBallisticSolution)
		})
	}
}

func TestBallisticLaunchAngleNoGravity(t *testing.T) {
	angle, err := BallisticLaunchAngle(Vec3{}, Vec3{X: 10, Y: 10}, 15, 0)
	require.NoError(t, err)
	assert.InDelta(t, 45, angle, 1e-9)
}

func TestBallisticLaunchAngleIgnoresGravitySign(t *testing.T) {
	a, err := BallisticLaunchAngle(Vec3{}, Vec3{X: 10, Z: 10}, 15, 9.81)
	require.NoError(t, err)
	b, err := BallisticLaunchAngle(Vec3{}, Vec3{X: 10, Z: 10}, 15, -9.81)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 90, AngleBetween(Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: 1}), 1e-9)
	assert.InDelta(t, 180, AngleBetween(Vec2{X: 1, Y: 0}, Vec2{X: -2, Y: 0}), 1e-9)
	assert.Equal(t, 0.0, AngleBetween(Vec2{}, Vec2{X: 0, Y: 1}))
}

func TestSignedAngleIsClockwise(t *testing.T) {
	assert.InDelta(t, 90, SignedAngle(Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: 1}), 1e-9)
	assert.InDelta(t, -90, SignedAngle(Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: -1}), 1e-9)
}

func TestRotateTowards(t *testing.T) {
	got := RotateTowards(Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: 5}, 30)
	assert.InDelta(t, 30, Heading(got), 1e-9)
	assert.InDelta(t, 1, got.Magnitude(), 1e-9)

	got = RotateTowards(Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: -1}, 180)
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, -1, got.Y, 1e-9)

	assert.Equal(t, Vec2{X: 1, Y: 0}, RotateTowards(Vec2{X: 1, Y: 0}, Vec2{}, 10))
}

func TestRightIsClockwise(t *testing.T) {
	r := Right(Vec2{X: 1, Y: 0})
	assert.Equal(t, Vec2{X: 0, Y: 1}, r)
	rot := Rotate(Vec2{X: 1, Y: 0}, 90)
	assert.InDelta(t, r.X, rot.X, 1e-9)
	assert.InDelta(t, r.Y, rot.Y, 1e-9)
}

func TestFacingSpeedScale(t *testing.T) {
	assert.Equal(t, 1.0, FacingSpeedScale(0))
	assert.Equal(t, 1.0, FacingSpeedScale(90))
	assert.InDelta(t, 0.75, FacingSpeedScale(135), 1e-9)
	assert.Equal(t, 0.5, FacingSpeedScale(180))
}

func TestNormalizedZero(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalized())
	assert.InDelta(t, 1, Vec2{X: 3, Y: 4}.Normalized().Magnitude(), 1e-9)
}
