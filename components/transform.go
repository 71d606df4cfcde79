package components

import (
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the ground-plane pose of an entity. Forward is unit length.
type TransformData struct {
	Position gamemath.Vec2
	Forward  gamemath.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
