// Package sim is the host facing API of the physics world: it owns the
// donburi registry and runs the physics pipeline once per tick. It has no
// rendering dependencies.
package sim

import (
	"fmt"
	"time"

	"github.com/automoto/bsp2d/broadphase"
	"github.com/automoto/bsp2d/bsp"
	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/systems"
	"github.com/automoto/bsp2d/systems/factory"
	"github.com/yohamta/donburi"
)

// Contact is a collision resolved during a step. Entities are in the order
// the narrow phase saw them; Event.Normal points from the second toward the
// first.
type Contact struct {
	Entities [2]donburi.Entity
	Event    collision.Event
}

// Options configures a World.
type Options struct {
	Gravity     float64 // downward, world units per second squared
	Restitution float64
	Correction  collision.CorrectionMode
	DedupePairs bool
	BroadPhase  string
	Broad       broadphase.Options
	EffectTTL   float64
	LogTiming   bool
}

// DefaultOptions reads the package config.
func DefaultOptions() Options {
	p := config.Physics
	return Options{
		Gravity:     p.Gravity,
		Restitution: p.Restitution,
		Correction:  collision.ParseCorrectionMode(p.Correction),
		DedupePairs: p.DedupePairs,
		BroadPhase:  p.BroadPhase,
		Broad: broadphase.Options{
			ParallelThreshold: p.ParallelBuildThreshold,
			CellSize:          p.GridCellSize,
			MinX:              p.GridMinX,
			MinY:              p.GridMinY,
			Width:             p.GridWidth,
			Height:            p.GridHeight,
		},
		EffectTTL: p.ContactEffectTTL,
		LogTiming: config.Debug.LogStepTiming,
	}
}

// Stats describes the most recent step.
type Stats struct {
	Tick       uint64
	Bodies     int
	Candidates int
	Contacts   int
	Nudged     int
	TreeDepth  int
	TreeNodes  int
	Collide    time.Duration
}

// World is a set of bodies stepped together. It is not safe for concurrent
// use.
type World struct {
	registry donburi.World
	step     donburi.Entity
}

// New builds an empty world.
func New(opts Options) (*World, error) {
	finder, err := broadphase.New(opts.BroadPhase, opts.Broad)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}

	registry := donburi.NewWorld()
	step := factory.CreateStep(registry, components.SolverData{
		Finder:      finder,
		Gravity:     gamemath.V(0, -opts.Gravity),
		Restitution: opts.Restitution,
		Correction:  opts.Correction,
		DedupePairs: opts.DedupePairs,
		EffectTTL:   opts.EffectTTL,
		LogTiming:   opts.LogTiming,
	})

	return &World{registry: registry, step: step.Entity()}, nil
}

// Add inserts body and returns its handle. Infinite mass bodies are static.
func (w *World) Add(body collision.Body) donburi.Entity {
	return factory.CreateBody(w.registry, body).Entity()
}

// AddWall inserts an immovable square centered on pos.
func (w *World) AddWall(pos gamemath.Vec2, edge float64) donburi.Entity {
	return factory.CreateWall(w.registry, pos, edge).Entity()
}

// AddPlatform inserts a kinematic square moving between from and to.
func (w *World) AddPlatform(from, to gamemath.Vec2, edge float64, legSeconds float32) donburi.Entity {
	return factory.CreatePlatform(w.registry, from, to, edge, legSeconds).Entity()
}

// AddSpring links two bodies. Springs whose endpoints are removed are
// dropped on the next step.
func (w *World) AddSpring(spring components.SpringData) (donburi.Entity, error) {
	entry, err := factory.CreateSpring(w.registry, spring)
	if err != nil {
		var none donburi.Entity
		return none, fmt.Errorf("add spring: %w", err)
	}
	return entry.Entity(), nil
}

// Remove deletes a body. Unknown handles are ignored.
func (w *World) Remove(entity donburi.Entity) {
	if w.has(entity) {
		w.registry.Remove(entity)
	}
}

// Clear removes every body and spring.
func (w *World) Clear() {
	var doomed []*donburi.Entry
	collect := func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	}
	components.Body.Each(w.registry, collect)
	components.Spring.Each(w.registry, collect)
	for _, entry := range doomed {
		entry.Remove()
	}
}

// ApplyForce adds f to the body's accumulated force for the next step and
// reports whether the body exists.
func (w *World) ApplyForce(entity donburi.Entity, f gamemath.Vec2) bool {
	body, ok := w.Body(entity)
	if !ok {
		return false
	}
	body.ApplyForce(f)
	return true
}

// Body returns the live body of entity. The pointer is invalidated by the
// next Add, Remove or Step.
func (w *World) Body(entity donburi.Entity) (*collision.Body, bool) {
	if !w.has(entity) {
		return nil, false
	}
	return components.Body.Get(w.registry.Entry(entity)), true
}

func (w *World) has(entity donburi.Entity) bool {
	return w.registry.Valid(entity) && w.registry.Entry(entity).HasComponent(components.Body)
}

// Entities returns every body handle.
func (w *World) Entities() []donburi.Entity {
	var out []donburi.Entity
	components.Body.Each(w.registry, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}

// Len returns the number of bodies.
func (w *World) Len() int {
	n := 0
	components.Body.Each(w.registry, func(*donburi.Entry) {
		n++
	})
	return n
}

// BodiesAt returns the bodies whose shapes contain p.
func (w *World) BodiesAt(p gamemath.Vec2) []donburi.Entity {
	var (
		entities []donburi.Entity
		bodies   []*collision.Body
		entries  []bsp.Entry
	)
	components.Body.Each(w.registry, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		entries = append(entries, bsp.Entry{ID: len(bodies), AABB: body.AABB()})
		entities = append(entities, entry.Entity())
		bodies = append(bodies, body)
	})

	var hits []donburi.Entity
	for _, id := range bsp.Build(entries).Query(bsp.AroundPoint(p, 0)) {
		if bodies[id].ContainsPoint(p) {
			hits = append(hits, entities[id])
		}
	}
	return hits
}

// Step advances the world by dt seconds and returns the contacts resolved
// during the tick.
func (w *World) Step(dt float64) []Contact {
	step := w.stepData()
	step.Dt = dt
	step.Tick++

	systems.Run(w.registry)

	step = w.stepData()
	contacts := make([]Contact, len(step.Contacts))
	for i, c := range step.Contacts {
		contacts[i] = Contact{Entities: [2]donburi.Entity{c.A, c.B}, Event: c.Event}
	}
	return contacts
}

// Stats reports on the most recent step.
func (w *World) Stats() Stats {
	step := w.stepData()
	return Stats{
		Tick:       step.Tick,
		Bodies:     w.Len(),
		Candidates: step.Candidates,
		Contacts:   len(step.Contacts),
		Nudged:     step.Nudged,
		TreeDepth:  step.TreeDepth,
		TreeNodes:  step.TreeNodes,
		Collide:    step.Collide,
	}
}

// SetTick sets the tick counter, so a restored world continues counting
// from where it was saved.
func (w *World) SetTick(tick uint64) {
	w.stepData().Tick = tick
}

func (w *World) stepData() *components.StepData {
	return components.Step.Get(w.registry.Entry(w.step))
}

// Registry exposes the underlying donburi world for renderers and network
// sync.
func (w *World) Registry() donburi.World {
	return w.registry
}
