package tags

import "github.com/yohamta/donburi"

var (
	Dynamic   = donburi.NewTag().SetName("Dynamic")
	Static    = donburi.NewTag().SetName("Static")
	Kinematic = donburi.NewTag().SetName("Kinematic")
)

// Resolv tags for the grid broad phase
const (
	ResolvBody = "body"
)
