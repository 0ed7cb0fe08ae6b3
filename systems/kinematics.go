package systems

import (
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateKinematics moves kinematic bodies along their tweens. Position is
// set directly; velocity is set to the leg's constant speed so contacts
// see the platform moving.
func UpdateKinematics(world donburi.World) {
	step, _, ok := stepState(world)
	if !ok {
		return
	}

	components.Kinematic.Each(world, func(entry *donburi.Entry) {
		k := components.Kinematic.Get(entry)
		body := components.Body.Get(entry)
		if k.LegSeconds <= 0 {
			return
		}
		if k.Tween == nil {
			k.Tween = newLeg(k.LegSeconds)
		}

		t, finished := k.Tween.Update(float32(step.Dt))
		from, to := k.From, k.To
		if !k.Forward {
			from, to = to, from
		}

		travel := to.Sub(from)
		body.Position = gamemath.V(
			gamemath.Lerp(from.X, to.X, float64(t)),
			gamemath.Lerp(from.Y, to.Y, float64(t)),
		)
		body.Velocity = travel.Scale(1 / float64(k.LegSeconds))

		if finished {
			k.Forward = !k.Forward
			k.Tween = newLeg(k.LegSeconds)
		}
	})
}

func newLeg(seconds float32) *gween.Tween {
	return gween.New(0, 1, seconds, ease.Linear)
}
