package components

import (
	"time"

	"github.com/automoto/bsp2d/collision"
	"github.com/yohamta/donburi"
)

// ContactData is one resolved collision: the event as detected, before
// any correction moved the bodies.
type ContactData struct {
	A, B  donburi.Entity
	Event collision.Event
}

// StepData is the singleton holding per-tick simulation state. Systems read
// Dt from it and the collision system fills in the results.
type StepData struct {
	Dt   float64
	Tick uint64

	Contacts   []ContactData
	Candidates int // broad phase pairs handed to the narrow phase
	Nudged     int // coincident pairs pushed apart
	TreeDepth  int
	TreeNodes  int
	Collide    time.Duration // broad phase, narrow phase and resolution
}

var Step = donburi.NewComponentType[StepData]()
