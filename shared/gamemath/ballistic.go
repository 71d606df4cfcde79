package gamemath

import (
	"errors"
	"math"
)

// ErrNoBallisticSolution is returned when no launch angle can reach the target.
var ErrNoBallisticSolution = errors.New("gamemath: target unreachable at launch speed")

// BallisticLaunchAngle returns the low-arc launch angle, in degrees above the
// horizon, that lands a projectile fired from origin at speed on target under
// gravity (magnitude, sign is ignored).
func BallisticLaunchAngle(origin, target Vec3, speed, gravity float64) (float64, error) {
	g := math.Abs(gravity)
	r := origin.Ground().Distance(target.Ground())
	h := target.Y - origin.Y
	if speed <= 0 || r == 0 {
		return 0, ErrNoBallisticSolution
	}
	if g == 0 {
		return math.Atan2(h, r) * radToDeg, nil
	}

	v2 := speed * speed
	disc := v2*v2 - g*(g*r*r+2*h*v2)
	if disc < 0 {
		return 0, ErrNoBallisticSolution
	}

	return math.Atan2(v2-math.Sqrt(disc), g*r) * radToDeg, nil
}
