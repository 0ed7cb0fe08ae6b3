package components

import "github.com/yohamta/donburi"

// SpringKind selects the force law of a spring.
type SpringKind int

const (
	// SpringDamped drives A toward B along an underdamped harmonic
	// oscillator curve.
	SpringDamped SpringKind = iota
	// SpringBungee pulls A toward B only when stretched past Length.
	SpringBungee
)

func (k SpringKind) String() string {
	if k == SpringBungee {
		return "bungee"
	}
	return "damped"
}

// DefaultSpringConstant is the stiffness used when none is given.
const DefaultSpringConstant = 100.0

// SpringData injects force into A each tick based on its offset from B.
// B is never pushed; add a second spring for a two-way link.
type SpringData struct {
	Kind     SpringKind
	A, B     donburi.Entity
	Constant float64
	Damping  float64 // damped springs only
	Length   float64 // bungee slack length
}

var Spring = donburi.NewComponentType[SpringData]()
