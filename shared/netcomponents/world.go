package netcomponents

import "github.com/yohamta/donburi"

// NetContactData is one resolved contact, in world space.
type NetContactData struct {
	X, Y   float64
	NX, NY float64
	Depth  float64
}

// NetWorldData is the per tick summary carried by the world entity.
type NetWorldData struct {
	Tick       uint64
	Bodies     int
	Candidates int
	Contacts   []NetContactData
}

var NetWorld = donburi.NewComponentType[NetWorldData]()
