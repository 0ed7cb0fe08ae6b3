package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/bsp2d/broadphase"
	"github.com/automoto/bsp2d/bsp"
	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/yohamta/donburi"
)

// bodyArena is a dense snapshot of every body in the world for one tick.
// Entry IDs handed to the broad phase are indexes into it.
type bodyArena struct {
	entities []donburi.Entity
	bodies   []*collision.Body
}

func collectBodies(world donburi.World) *bodyArena {
	a := &bodyArena{}
	components.Body.Each(world, func(entry *donburi.Entry) {
		a.entities = append(a.entities, entry.Entity())
		a.bodies = append(a.bodies, components.Body.Get(entry))
	})
	return a
}

func (a *bodyArena) entries() []bsp.Entry {
	entries := make([]bsp.Entry, len(a.bodies))
	for i, body := range a.bodies {
		entries[i] = bsp.Entry{ID: i, AABB: body.AABB()}
	}
	return entries
}

// bodyPair returns exclusive access to two distinct bodies. Asking for the
// same body twice is a programming error.
func (a *bodyArena) bodyPair(i, j int) (*collision.Body, *collision.Body) {
	if i == j {
		panic(fmt.Sprintf("systems: body %d requested as both sides of a pair", i))
	}
	return a.bodies[i], a.bodies[j]
}

type detected struct {
	lhs, rhs int
	event    collision.Event
}

// UpdateCollisions runs the broad phase over fresh bounding boxes, detects
// contacts for every candidate pair, then resolves all penetrations before
// applying all velocity impulses.
func UpdateCollisions(world donburi.World) {
	step, solver, ok := stepState(world)
	if !ok {
		return
	}
	start := time.Now()

	arena := collectBodies(world)
	candidates := solver.Finder.Pairs(arena.entries())
	if solver.DedupePairs {
		candidates = dedupePairs(candidates)
	}

	nudged := 0
	var found []detected
	for _, pair := range candidates {
		lhs, rhs := arena.bodyPair(pair[0], pair[1])
		if collision.SeparateCoincident(lhs, rhs) {
			nudged++
		}
		if ev, ok := collision.Detect(lhs, rhs); ok {
			found = append(found, detected{lhs: pair[0], rhs: pair[1], event: ev})
		}
	}

	for _, d := range found {
		lhs, rhs := arena.bodyPair(d.lhs, d.rhs)
		collision.Resolve(lhs, rhs, d.event, solver.Correction)
	}
	for _, d := range found {
		lhs, rhs := arena.bodyPair(d.lhs, d.rhs)
		collision.ResolveContactVelocity(lhs, rhs, d.event.Normal, solver.Restitution)
	}

	contacts := make([]components.ContactData, len(found))
	for i, d := range found {
		contacts[i] = components.ContactData{
			A:     arena.entities[d.lhs],
			B:     arena.entities[d.rhs],
			Event: d.event,
		}
	}

	step.Contacts = contacts
	step.Candidates = len(candidates)
	step.Nudged = nudged
	step.TreeDepth, step.TreeNodes = 0, 0
	if b, ok := solver.Finder.(*broadphase.BSP); ok && b.Tree() != nil {
		step.TreeDepth = b.Tree().Depth()
		step.TreeNodes = b.Tree().NodeCount()
	}
	step.Collide = time.Since(start)

	if solver.LogTiming {
		log.Printf("[collision] tick %d: %d bodies, %d candidates, %d contacts in %dus",
			step.Tick, len(arena.bodies), len(candidates), len(contacts), step.Collide.Microseconds())
	}
}

// dedupePairs keeps the first occurrence of each unordered pair, in its
// reported order.
func dedupePairs(pairs [][2]int) [][2]int {
	seen := make(map[[2]int]struct{}, len(pairs)/2)
	out := make([][2]int, 0, len(pairs)/2+1)
	for _, p := range pairs {
		key := p
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
