package factory

import (
	"github.com/automoto/bsp2d/archetypes"
	"github.com/automoto/bsp2d/components"
	"github.com/yohamta/donburi"
)

// CreateStep spawns the singleton that carries per-tick state and the
// solver settings read by every physics system.
func CreateStep(world donburi.World, solver components.SolverData) *donburi.Entry {
	step := archetypes.Step.Spawn(world)
	components.Solver.SetValue(step, solver)
	return step
}
