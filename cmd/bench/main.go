// Command bench steps the demo scene headless and reports how the
// collision pass scales.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/scene"
	"github.com/automoto/bsp2d/sim"
)

func main() {
	ticks := flag.Int("ticks", 600, "Steps to run")
	circles := flag.Int("bodies", 2000, "Falling circles in the demo scene")
	seed := flag.Int64("seed", config.Sim.DemoSeed, "Demo scene seed")
	broad := flag.String("broadphase", config.Physics.BroadPhase, "Broad phase: bsp, grid or brute")
	every := flag.Int("report", 60, "Log a summary every N ticks (0 disables)")
	flag.Parse()

	config.Physics.BroadPhase = *broad

	world, err := sim.New(sim.DefaultOptions())
	if err != nil {
		log.Fatalf("[bench] %v", err)
	}
	opts := scene.DefaultDemoOptions()
	opts.Circles = *circles
	opts.Seed = *seed
	scene.Demo(world, opts)

	var (
		total, collide       time.Duration
		candidates, contacts int
		maxDepth             int
	)
	for i := 1; i <= *ticks; i++ {
		start := time.Now()
		world.Step(config.Sim.Dt)
		total += time.Since(start)

		st := world.Stats()
		collide += st.Collide
		candidates += st.Candidates
		contacts += st.Contacts
		maxDepth = max(maxDepth, st.TreeDepth)

		if *every > 0 && i%*every == 0 {
			log.Printf("[bench] tick %d: step %s, collide %s, pairs %d, contacts %d, depth %d",
				i, total/time.Duration(i), collide/time.Duration(i), st.Candidates, st.Contacts, st.TreeDepth)
		}
	}

	n := max(*ticks, 1)
	log.Printf("[bench] %s, %d bodies, %d ticks: avg step %s, avg collide %s, avg pairs %d, avg contacts %d, max depth %d",
		*broad, world.Len(), *ticks, total/time.Duration(n), collide/time.Duration(n),
		candidates/n, contacts/n, maxDepth)
}
