package config

import "github.com/yohamta/donburi/ecs"

// Default is the ecs layer every simulation entity is created on.
const Default ecs.LayerID = 0
