package factory

import (
	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateWall spawns an immovable square centered on pos.
func CreateWall(world donburi.World, pos gamemath.Vec2, edge float64) *donburi.Entry {
	return CreateBody(world, collision.NewBody(collision.Square(edge), pos, collision.InfiniteMass()))
}
