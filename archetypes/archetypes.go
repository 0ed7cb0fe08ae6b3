package archetypes

import (
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/tags"
	"github.com/yohamta/donburi"
)

var (
	Dynamic = newArchetype(
		tags.Dynamic,
		components.Body,
	)
	Static = newArchetype(
		tags.Static,
		components.Body,
	)
	Kinematic = newArchetype(
		tags.Kinematic,
		components.Body,
		components.Kinematic,
	)
	Spring = newArchetype(
		components.Spring,
	)
	ContactEffect = newArchetype(
		components.ContactEffect,
	)
	Step = newArchetype(
		components.Step,
		components.Solver,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	types := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	types = append(types, a.components...)
	types = append(types, cs...)
	return world.Entry(world.Create(types...))
}
