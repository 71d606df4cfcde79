// Package gamemath holds the pure math shared by the simulation systems.
package gamemath

import (
	math2 "github.com/yohamta/donburi/features/math"
)

// Vec2 is a point or direction on the ground plane. Y grows "down" the map,
// so positive rotations turn clockwise when viewed from above.
type Vec2 = math2.Vec2

// Dot is the dot product of a and b.
func Dot(a, b Vec2) float64 { return a.Dot(&b) }

func LenSq(v Vec2) float64 { return v.X*v.X + v.Y*v.Y }

func DistSq(a, b Vec2) float64 { return LenSq(a.Sub(b)) }

// Rotate turns v by deg degrees (clockwise on the map).
func Rotate(v Vec2, deg float64) Vec2 { return v.Rotate(math2.ToRadians(deg)) }

// Right is the direction 90 degrees clockwise from v.
func Right(v Vec2) Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Lift places a ground point at the given height.
func Lift(v Vec2, height float64) Vec3 { return Vec3{X: v.X, Y: height, Z: v.Y} }

// Vec3 is a point in space with Y as the up axis. Only ballistic aiming needs it.
type Vec3 struct {
	X, Y, Z float64
}

// Ground drops the height component.
func (v Vec3) Ground() Vec2 { return Vec2{X: v.X, Y: v.Z} }
