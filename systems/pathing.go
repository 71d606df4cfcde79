package systems

import (
	"github.com/automoto/outbreak/components"
	cfg "github.com/automoto/outbreak/config"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NextPathNode returns the node that follows current when walking in dir
// with the given mode, plus the direction to keep walking in. A null node
// means the walk is over.
func NextPathNode(w donburi.World, current donburi.Entity, mode components.PathMode, dir int) (donburi.Entity, int) {
	if _, ok := entryOf(w, current); !ok {
		return donburi.Null, dir
	}

	switch mode {
	case components.PathLoop:
		if dir >= 0 {
			if next := firstChild(w, current); next != donburi.Null {
				return next, dir
			}
			return rootNode(w, current), dir
		}
		if next := parentNode(w, current); next != donburi.Null {
			return next, dir
		}
		return tailNode(w, current), dir

	case components.PathPingPong:
		if dir >= 0 {
			if next := firstChild(w, current); next != donburi.Null {
				return next, dir
			}
			return parentNode(w, current), -1
		}
		if next := parentNode(w, current); next != donburi.Null {
			return next, dir
		}
		return firstChild(w, current), 1

	default:
		if dir >= 0 {
			return firstChild(w, current), dir
		}
		return parentNode(w, current), dir
	}
}

func firstChild(w donburi.World, node donburi.Entity) donburi.Entity {
	e, ok := entryOf(w, node)
	if !ok {
		return donburi.Null
	}
	children := components.PathNode.Get(e).Children
	if len(children) == 0 {
		return donburi.Null
	}
	if _, ok := entryOf(w, children[0]); !ok {
		return donburi.Null
	}
	return children[0]
}

func parentNode(w donburi.World, node donburi.Entity) donburi.Entity {
	e, ok := entryOf(w, node)
	if !ok {
		return donburi.Null
	}
	parent := components.PathNode.Get(e).Parent
	if _, ok := entryOf(w, parent); !ok {
		return donburi.Null
	}
	return parent
}

// maxPathDepth bounds root and tail walks on malformed, cyclic graphs.
const maxPathDepth = 4096

func rootNode(w donburi.World, node donburi.Entity) donburi.Entity {
	root := node
	for i := 0; i < maxPathDepth; i++ {
		p := parentNode(w, root)
		if p == donburi.Null {
			break
		}
		root = p
	}
	return root
}

func tailNode(w donburi.World, node donburi.Entity) donburi.Entity {
	tail := node
	for i := 0; i < maxPathDepth; i++ {
		c := firstChild(w, tail)
		if c == donburi.Null {
			break
		}
		tail = c
	}
	return tail
}

// checkNextPathNode advances the unit's path once it has reached the current
// node and points its move-to target at the node.
func checkNextPathNode(e *donburi.Entry, ai *components.AIData, unit *components.UnitData) {
	if ai.PathNode == donburi.Null {
		return
	}
	w := e.World
	node, ok := entryOf(w, ai.PathNode)
	if !ok {
		ai.PathNode = donburi.Null
		unit.HasMoveTo = false
		return
	}

	arrive := cfg.Steering.ArriveDistance
	if gamemath.DistSq(components.Transform.Get(node).Position, positionOf(e)) < arrive*arrive {
		ai.PathNode, ai.PathDir = NextPathNode(w, ai.PathNode, ai.PathMode, ai.PathDir)
		node, ok = entryOf(w, ai.PathNode)
	}

	if !ok {
		ai.PathNode = donburi.Null
		unit.HasMoveTo = false
		return
	}
	unit.MoveTo = components.Transform.Get(node).Position
	unit.HasMoveTo = true
}

// SetPath puts an AI unit on a path starting at node.
func SetPath(e *donburi.Entry, node donburi.Entity, mode components.PathMode, dir int, sticky bool) {
	if !e.HasComponent(components.AI) {
		return
	}
	ai := components.AI.Get(e)
	ai.PathNode = node
	ai.PathMode = mode
	ai.PathDir = dir
	ai.StickyPath = sticky
}

// MoveTo sets the unit's move-to target. An active path overrides it on the
// next steering update.
func MoveTo(e *donburi.Entry, pos gamemath.Vec2) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Unit) {
		return
	}
	unit := components.Unit.Get(e)
	unit.MoveTo = pos
	unit.HasMoveTo = true
}
