package systems

import (
	"github.com/automoto/bsp2d/components"
	"github.com/yohamta/donburi"
)

// UpdateIntegration advances every body by the tick's dt.
func UpdateIntegration(world donburi.World) {
	step, _, ok := stepState(world)
	if !ok {
		return
	}

	components.Body.Each(world, func(entry *donburi.Entry) {
		components.Body.Get(entry).Integrate(step.Dt)
	})
}

// ClearForces resets accumulated forces at the end of a tick.
func ClearForces(world donburi.World) {
	components.Body.Each(world, func(entry *donburi.Entry) {
		components.Body.Get(entry).ClearForce()
	})
}
