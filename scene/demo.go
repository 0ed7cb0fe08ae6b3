package scene

import (
	"math"
	"math/rand"

	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/sim"
)

// Demo layout: a band of static squares below the origin and a column of
// circles falling onto it.
const (
	squareMinX, squareMaxX = -700.0, 700.0
	squareMinY, squareMaxY = -400.0, -200.0
	squareMinEdge          = 20.0
	squareMaxEdge          = 45.0

	circleMinX, circleMaxX = -1000.0, 1000.0
	circleMinY, circleMaxY = 500.0, 4500.0
	circleMaxSpeed         = 50.0
)

type DemoOptions struct {
	Squares   int
	Circles   int
	MinRadius float64
	MaxRadius float64
	Seed      int64
}

func DefaultDemoOptions() DemoOptions {
	return DemoOptions{
		Squares:   config.Sim.DemoSquares,
		Circles:   config.Sim.DemoCircles,
		MinRadius: config.Sim.DemoMinRadius,
		MaxRadius: config.Sim.DemoMaxRadius,
		Seed:      config.Sim.DemoSeed,
	}
}

// Demo adds the demo scene to w. The same seed always yields the same
// bodies in the same insertion order.
func Demo(w *sim.World, opts DemoOptions) {
	rng := rand.New(rand.NewSource(opts.Seed))
	between := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}

	for i := 0; i < opts.Squares; i++ {
		pos := gamemath.V(between(squareMinX, squareMaxX), between(squareMinY, squareMaxY))
		edge := between(squareMinEdge, squareMaxEdge)
		w.Add(collision.NewBody(collision.Square(edge), pos, collision.InfiniteMass()))
	}

	minR, maxR := opts.MinRadius, opts.MaxRadius
	if maxR < minR {
		minR, maxR = maxR, minR
	}
	for i := 0; i < opts.Circles; i++ {
		pos := gamemath.V(between(circleMinX, circleMaxX), between(circleMinY, circleMaxY))
		vel := gamemath.V(between(-circleMaxSpeed, circleMaxSpeed), between(-circleMaxSpeed, circleMaxSpeed))
		radius := between(minR, maxR)

		body := collision.NewBody(collision.Circle(radius), pos, collision.FiniteMass(math.Pi*radius*radius))
		body.Velocity = vel
		w.Add(body)
	}
}
