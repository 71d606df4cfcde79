package systems

import (
	"testing"

	"github.com/automoto/outbreak/components"
	"github.com/automoto/outbreak/shared/gamemath"
	"github.com/automoto/outbreak/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestNextPathNode(t *testing.T) {
	e := newTestECS(t)
	nodes := factory.CreatePathChain(e, "route", []gamemath.Vec2{{X: 0}, {X: 5}, {X: 10}})
	a, b, c := nodes[0].Entity(), nodes[1].Entity(), nodes[2].Entity()

	tests := []struct {
		name     string
		current  donburi.Entity
		mode     components.PathMode
		dir      int
		wantNode donburi.Entity
		wantDir  int
	}{
		{"once forward", a, components.PathOnce, 1, b, 1},
		{"once forward at end", c, components.PathOnce, 1, donburi.Null, 1},
		{"once backward", c, components.PathOnce, -1, b, -1},
		{"once backward at root", a, components.PathOnce, -1, donburi.Null, -1},
		{"loop forward wraps to root", c, components.PathLoop, 1, a, 1},
		{"loop backward wraps to tail", a, components.PathLoop, -1, c, -1},
		{"loop backward", b, components.PathLoop, -1, a, -1},
		{"pingpong turns at end", c, components.PathPingPong, 1, b, -1},
		{"pingpong turns at root", a, components.PathPingPong, -1, b, 1},
		{"pingpong forward", a, components.PathPingPong, 1, b, 1},
		{"null current", donburi.Null, components.PathLoop, 1, donburi.Null, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, dir := NextPathNode(e.World, tt.current, tt.mode, tt.dir)
			assert.Equal(t, tt.wantNode, node)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestLoopReturnsToTailAfterFullLap(t *testing.T) {
	e := newTestECS(t)
	nodes := factory.CreatePathChain(e, "lap", []gamemath.Vec2{{X: 0}, {X: 5}, {X: 10}, {X: 15}})
	tail := nodes[len(nodes)-1].Entity()

	for _, dir := range []int{1, -1} {
		node, d := tail, dir
		visited := map[donburi.Entity]bool{}
		for i := 0; i < len(nodes); i++ {
			node, d = NextPathNode(e.World, node, components.PathLoop, d)
			visited[node] = true
		}
		assert.Equal(t, tail, node, "dir %d", dir)
		assert.Equal(t, dir, d)
		assert.Len(t, visited, len(nodes), "every node is visited once per lap")
	}
}

func TestNextPathNodeSingleNode(t *testing.T) {
	e := newTestECS(t)
	only := factory.CreatePathNode(e, "post", gamemath.Vec2{X: 3, Y: 3}).Entity()

	node, _ := NextPathNode(e.World, only, components.PathLoop, 1)
	assert.Equal(t, only, node)

	node, _ = NextPathNode(e.World, only, components.PathPingPong, 1)
	assert.Equal(t, donburi.Null, node)

	node, _ = NextPathNode(e.World, only, components.PathOnce, 1)
	assert.Equal(t, donburi.Null, node)
}

func TestPathWalkSkipsRemovedNode(t *testing.T) {
	e := newTestECS(t)
	nodes := factory.CreatePathChain(e, "route", []gamemath.Vec2{{X: 0}, {X: 5}, {X: 10}})
	e.World.Remove(nodes[1].Entity())

	node, _ := NextPathNode(e.World, nodes[0].Entity(), components.PathOnce, 1)
	assert.Equal(t, donburi.Null, node)
}

func TestCheckNextPathNodeAdvancesOnArrival(t *testing.T) {
	e := newTestECS(t)
	nodes := factory.CreatePathChain(e, "route", []gamemath.Vec2{{X: 5, Y: 5}, {X: 10, Y: 5}})
	unit := spawnUnit(t, e, "Cop", 5, 5)
	SetPath(unit, nodes[0].Entity(), components.PathOnce, 1, false)

	ai := components.AI.Get(unit)
	u := components.Unit.Get(unit)
	checkNextPathNode(unit, ai, u)
	assert.Equal(t, nodes[1].Entity(), ai.PathNode)
	assert.True(t, u.HasMoveTo)
	assert.Equal(t, gamemath.Vec2{X: 10, Y: 5}, u.MoveTo)

	components.Transform.Get(unit).Position = gamemath.Vec2{X: 10, Y: 5}
	checkNextPathNode(unit, ai, u)
	assert.Equal(t, donburi.Null, ai.PathNode)
	assert.False(t, u.HasMoveTo)
}

func TestAttackClearsPathUnlessSticky(t *testing.T) {
	e := newTestECS(t)
	nodes := factory.CreatePathChain(e, "route", []gamemath.Vec2{{X: 5, Y: 5}, {X: 10, Y: 5}})

	loose := spawnUnit(t, e, "Cop", 5, 5)
	SetPath(loose, nodes[0].Entity(), components.PathLoop, 1, false)
	sticky := spawnUnit(t, e, "Cop", 30, 30)
	SetPath(sticky, nodes[0].Entity(), components.PathLoop, 1, true)

	Damage(loose, 1, gamemath.Vec2{}, gamemath.Vec2{}, donburi.Null, false)
	Damage(sticky, 1, gamemath.Vec2{}, gamemath.Vec2{}, donburi.Null, false)

	assert.Equal(t, donburi.Null, components.AI.Get(loose).PathNode)
	assert.Equal(t, nodes[0].Entity(), components.AI.Get(sticky).PathNode)
}
