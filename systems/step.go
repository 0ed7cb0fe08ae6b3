// Package systems holds the physics pipeline. Each system reads and writes a
// plain donburi.World, so headless hosts step it without a renderer.
package systems

import (
	"github.com/automoto/bsp2d/components"
	"github.com/yohamta/donburi"
)

// System updates one concern of the world for the current tick.
type System func(world donburi.World)

// Pipeline lists the physics systems in the order a tick runs them.
// Forces accumulate first and are only cleared once collisions and
// effects have seen the tick.
var Pipeline = []System{
	UpdateForces,
	UpdateIntegration,
	UpdateKinematics,
	UpdateCollisions,
	UpdateContactEffects,
	ClearForces,
}

// Run executes every system of the pipeline once, in order.
func Run(world donburi.World) {
	for _, system := range Pipeline {
		system(world)
	}
}

// stepState returns the singleton step and solver data. Systems do nothing
// until the step entity exists.
func stepState(world donburi.World) (*components.StepData, *components.SolverData, bool) {
	entry, ok := components.Step.First(world)
	if !ok {
		return nil, nil, false
	}
	return components.Step.Get(entry), components.Solver.Get(entry), true
}
