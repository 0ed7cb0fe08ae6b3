package factory

import (
	"github.com/automoto/bsp2d/archetypes"
	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/yohamta/donburi"
)

// CreateBody spawns body as a dynamic entity, or a static one when its
// mass is infinite.
func CreateBody(world donburi.World, body collision.Body) *donburi.Entry {
	var entry *donburi.Entry
	if body.Mass.IsInfinite() {
		entry = archetypes.Static.Spawn(world)
	} else {
		entry = archetypes.Dynamic.Spawn(world)
	}
	components.Body.SetValue(entry, body)
	return entry
}
