package systems

import (
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateContactEffects fades out existing contact markers and spawns one
// for every contact of the current tick.
func UpdateContactEffects(world donburi.World) {
	step, solver, ok := stepState(world)
	if !ok {
		return
	}

	var expired []*donburi.Entry
	components.ContactEffect.Each(world, func(entry *donburi.Entry) {
		fx := components.ContactEffect.Get(entry)
		alpha, finished := fx.Fade.Update(float32(step.Dt))
		fx.Alpha = float64(alpha)
		if finished {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		entry.Remove()
	}

	if solver.EffectTTL <= 0 {
		return
	}
	for _, c := range step.Contacts {
		factory.CreateContactEffect(world, c.Event, solver.EffectTTL)
	}
}
