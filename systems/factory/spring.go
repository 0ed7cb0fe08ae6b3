package factory

import (
	"fmt"

	"github.com/automoto/bsp2d/archetypes"
	"github.com/automoto/bsp2d/components"
	"github.com/yohamta/donburi"
)

// CreateSpring links a to b. The spring only pushes a.
func CreateSpring(world donburi.World, spring components.SpringData) (*donburi.Entry, error) {
	if !world.Valid(spring.A) || !world.Valid(spring.B) {
		return nil, fmt.Errorf("spring endpoints %v and %v must both exist", spring.A, spring.B)
	}
	if spring.A == spring.B {
		return nil, fmt.Errorf("spring endpoints must differ, got %v twice", spring.A)
	}
	if spring.Length < 0 {
		return nil, fmt.Errorf("spring length must not be negative, got %g", spring.Length)
	}
	if spring.Constant == 0 {
		spring.Constant = components.DefaultSpringConstant
	}

	entry := archetypes.Spring.Spawn(world)
	components.Spring.SetValue(entry, spring)
	return entry, nil
}
