package factory

import (
	"github.com/automoto/bsp2d/archetypes"
	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateContactEffect spawns a marker at the contact of ev that fades out
// over ttl seconds.
func CreateContactEffect(world donburi.World, ev collision.Event, ttl float64) *donburi.Entry {
	fx := archetypes.ContactEffect.Spawn(world)
	components.ContactEffect.SetValue(fx, components.ContactEffectData{
		Point:  ev.Contact,
		Normal: ev.Normal,
		Depth:  ev.PenetrationDepth,
		Alpha:  1,
		Fade:   gween.New(1, 0, float32(ttl), ease.Linear),
	})
	return fx
}
