package components

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the object's bounding box.
func (o ObjectData) Center() gamemath.Vec2 {
	return gamemath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// MoveCenter places the bounding box around p and updates the space.
func (o ObjectData) MoveCenter(p gamemath.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space holding walls, units, items and shots.
var Space = donburi.NewComponentType[resolv.Space]()
