package components

import (
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// KinematicData moves an infinite mass body back and forth between From
// and To. Each leg is a linear tween over LegSeconds.
type KinematicData struct {
	From, To   gamemath.Vec2
	LegSeconds float32
	Forward    bool
	Tween      *gween.Tween
}

var Kinematic = donburi.NewComponentType[KinematicData]()
