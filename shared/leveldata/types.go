// Package leveldata parses TMX maps into physics scene descriptions.
// It has no dependencies on ebitengine, donburi, or resolv.
// Coordinates are converted to world space with Y pointing up.
package leveldata

// SceneData holds everything a TMX map contributes to a world.
type SceneData struct {
	Walls     []Wall
	Bodies    []BodySpawn
	Platforms []PlatformSpawn
	MapWidth  int
	MapHeight int
}

// Wall is an immovable square built from one solid tile.
type Wall struct {
	X, Y float64 // center
	Edge float64
}

// BodySpawn is a body placed in the Bodies object group.
type BodySpawn struct {
	Shape  string  // "circle" or "square"
	X, Y   float64 // center
	Size   float64 // radius for circles, edge length for squares
	Mass   float64 // 0 means derive from area
	Static bool
	VX, VY float64
}

// PlatformSpawn is a kinematic square from the Platforms object group.
type PlatformSpawn struct {
	FromX, FromY float64
	ToX, ToY     float64
	Edge         float64
	Seconds      float64
}
