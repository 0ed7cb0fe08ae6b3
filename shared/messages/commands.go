package messages

import "github.com/leap-fish/necs/esync"

// SpawnBody asks the server to add a body. Shape is "circle" or "square";
// Size is the radius or edge length. Mass <= 0 derives mass from area.
type SpawnBody struct {
	Shape  string
	X, Y   float64
	Size   float64
	Mass   float64
	Static bool
	VX, VY float64
}

// PushBody applies a force to a body for the next tick.
type PushBody struct {
	NetworkID esync.NetworkId
	FX, FY    float64
}

// RemoveBody deletes a body.
type RemoveBody struct {
	NetworkID esync.NetworkId
}

// SaveSnapshot stores the current world under Slot, or the server default
// when empty.
type SaveSnapshot struct {
	Slot string
}

// LoadSnapshot replaces the world with a stored snapshot.
type LoadSnapshot struct {
	Slot string
}

// ResetWorld rebuilds the world from the server's starting scene.
type ResetWorld struct{}
