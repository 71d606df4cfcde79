package components

import "github.com/yohamta/donburi"

// PathNodeData links a node into a path forest. Only the first child is
// followed when walking.
type PathNodeData struct {
	Name     string
	Parent   donburi.Entity
	Children []donburi.Entity
}

var PathNode = donburi.NewComponentType[PathNodeData]()
