package components

import (
	"github.com/automoto/bsp2d/broadphase"
	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SolverData holds the per-world physics settings next to StepData on the
// singleton step entity.
type SolverData struct {
	Finder      broadphase.Finder
	Gravity     gamemath.Vec2
	Restitution float64
	Correction  collision.CorrectionMode
	DedupePairs bool
	EffectTTL   float64 // seconds, 0 disables contact effects
	LogTiming   bool
}

var Solver = donburi.NewComponentType[SolverData]()
