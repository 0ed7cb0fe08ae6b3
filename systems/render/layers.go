package render

import "github.com/yohamta/donburi/ecs"

// Draw layers, bottom to top.
const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
)
