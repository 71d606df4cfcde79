package factory

import (
	"github.com/automoto/outbreak/archetypes"
	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePathNode(ecs *ecs.ECS, name string, pos gamemath.Vec2) *donburi.Entry {
	node := archetypes.PathNode.Spawn(ecs)
	components.PathNode.SetValue(node, components.PathNodeData{
		Name:   name,
		Parent: donburi.Null,
	})
	components.Transform.SetValue(node, components.TransformData{
		Position: pos,
		Forward:  gamemath.Vec2{X: 1},
	})
	return node
}

// LinkPathNodes appends child to parent's children.
func LinkPathNodes(parent, child *donburi.Entry) {
	p := components.PathNode.Get(parent)
	p.Children = append(p.Children, child.Entity())
	components.PathNode.Get(child).Parent = parent.Entity()
}

// CreatePathChain creates one node per point, each the first child of the
// previous. It returns the nodes in order; the first is the root.
func CreatePathChain(ecs *ecs.ECS, name string, points []gamemath.Vec2) []*donburi.Entry {
	nodes := make([]*donburi.Entry, 0, len(points))
	for i, p := range points {
		node := CreatePathNode(ecs, name, p)
		if i > 0 {
			LinkPathNodes(nodes[i-1], node)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
