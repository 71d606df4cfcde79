package gamemath

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AngleBetween returns the unsigned angle in degrees between a and b, in [0, 180].
// A zero vector yields 0.
func AngleBetween(a, b Vec2) float64 {
	la, lb := a.Magnitude(), b.Magnitude()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := Clamp(Dot(a, b)/(la*lb), -1, 1)
	return math.Acos(cos) * radToDeg
}

// SignedAngle returns the angle in degrees that rotates a onto b, in (-180, 180].
// Positive is clockwise on the map.
func SignedAngle(a, b Vec2) float64 {
	cross := a.X*b.Y - a.Y*b.X
	return math.Atan2(cross, Dot(a, b)) * radToDeg
}

// Heading returns the direction of v in degrees, measured clockwise from +X.
func Heading(v Vec2) float64 {
	return math.Atan2(v.Y, v.X) * radToDeg
}

// FromHeading returns the unit vector for a heading in degrees.
func FromHeading(deg float64) Vec2 {
	s, c := math.Sincos(deg * degToRad)
	return Vec2{X: c, Y: s}
}

// RotateTowards turns the unit direction current toward target by at most
// maxDeg degrees. The result is normalized. A zero target leaves current as is.
func RotateTowards(current, target Vec2, maxDeg float64) Vec2 {
	if target.IsZero() {
		return current
	}
	target = target.Normalized()
	if current.IsZero() {
		return target
	}
	delta := SignedAngle(current, target)
	if math.Abs(delta) <= maxDeg {
		return target
	}
	if delta < 0 {
		maxDeg = -maxDeg
	}
	return Rotate(current.Normalized(), maxDeg)
}

// FacingSpeedScale slows movement that is not aligned with the facing
// direction: full speed up to 90 degrees off, half speed when moving backwards.
func FacingSpeedScale(lookAngle float64) float64 {
	return Clamp(1.5-lookAngle/180, 0.5, 1)
}
