package factory

import (
	"github.com/automoto/bsp2d/archetypes"
	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreatePlatform spawns an immovable square that travels from one point to
// another and back, taking legSeconds for each direction.
func CreatePlatform(world donburi.World, from, to gamemath.Vec2, edge float64, legSeconds float32) *donburi.Entry {
	platform := archetypes.Kinematic.Spawn(world)

	body := collision.NewBody(collision.Square(edge), from, collision.InfiniteMass())
	// Platforms keep their speed; friction only applies to free bodies.
	body.Friction = 1
	components.Body.SetValue(platform, body)

	components.Kinematic.SetValue(platform, components.KinematicData{
		From:       from,
		To:         to,
		LegSeconds: legSeconds,
		Forward:    true,
		Tween:      gween.New(0, 1, legSeconds, ease.Linear),
	})

	return platform
}
