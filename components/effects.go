package components

import (
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ContactEffectData is a short lived marker left at a contact point for
// display. Alpha fades from 1 to 0 and the entity is removed once the fade
// finishes.
type ContactEffectData struct {
	Point  gamemath.Vec2
	Normal gamemath.Vec2
	Depth  float64
	Alpha  float64
	Fade   *gween.Tween
}

var ContactEffect = donburi.NewComponentType[ContactEffectData]()
