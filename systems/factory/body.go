package factory

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/solarlune/resolv"
)

// NewBody creates a square resolv object of the given size centred on pos.
// The caller links Data and adds it to the space.
func NewBody(pos gamemath.Vec2, size float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	return obj
}
