package bsp

// Entry is the broad phase's view of a body: an id and its bounding box.
// The id is opaque to the tree; the simulation uses the body's arena index.
type Entry struct {
	ID   int
	AABB AABB
}
