package components

import (
	"github.com/automoto/bsp2d/collision"
	"github.com/yohamta/donburi"
)

// Body is the rigid body of every simulated entity. Static and kinematic
// bodies carry an infinite mass.
var Body = donburi.NewComponentType[collision.Body]()
