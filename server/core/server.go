package core

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/bsp2d/collision"
	"github.com/automoto/bsp2d/components"
	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/persistence"
	"github.com/automoto/bsp2d/scene"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/shared/leveldata"
	"github.com/automoto/bsp2d/shared/messages"
	"github.com/automoto/bsp2d/shared/netcomponents"
	"github.com/automoto/bsp2d/sim"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

var errTooManyBodies = errors.New("body limit reached")

// Options configures a Server.
type Options struct {
	Name      string
	TickRate  int
	MaxBodies int
	Slot      string
	// Store backs the save and load commands; nil disables them.
	Store persistence.Store
	// Scene populates an empty world, at startup and on reset.
	Scene func(*sim.World) error
}

// Server steps a sim.World and streams its bodies to connected clients.
type Server struct {
	opts      Options
	sim       *sim.World
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	// track marks an entity for network sync.
	track       func(entity *donburi.Entity) error
	tracked     map[donburi.Entity]struct{}
	worldEntity donburi.Entity

	pending  []func() error
	clients  map[*router.NetworkClient]string
	lastStep time.Duration
	mu       sync.Mutex
}

// NewServer wraps w, builds the starting scene and registers the network
// callbacks.
func NewServer(w *sim.World, opts Options) (*Server, error) {
	s := newServer(w, opts, func(entity *donburi.Entity) error {
		return srvsync.NetworkSync(w.Registry(), entity, srvsync.WithInterp(netcomponents.NetBody))
	})

	// Set up the world for esync
	srvsync.UseEsync(s.world)

	if err := s.populate(); err != nil {
		return nil, err
	}
	if err := srvsync.NetworkSync(s.world, &s.worldEntity, netcomponents.NetWorld); err != nil {
		return nil, fmt.Errorf("sync world entity: %w", err)
	}

	s.setupRouterCallbacks()
	return s, nil
}

func newServer(w *sim.World, opts Options, track func(*donburi.Entity) error) *Server {
	if opts.TickRate <= 0 {
		opts.TickRate = config.Server.TickRate
	}
	if opts.MaxBodies <= 0 {
		opts.MaxBodies = config.Server.MaxBodies
	}
	if opts.Slot == "" {
		opts.Slot = config.Server.SaveSlot
	}

	s := &Server{
		opts:    opts,
		sim:     w,
		world:   w.Registry(),
		track:   track,
		tracked: make(map[donburi.Entity]struct{}),
		clients: make(map[*router.NetworkClient]string),
	}
	s.worldEntity = s.world.Create(netcomponents.NetWorld)
	s.loop = NewGameLoop(s, opts.TickRate)
	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, msg messages.Hello) {
		log.Printf("[server] client %s is %q (version %q)", client.Id(), msg.Name, msg.Version)
		s.mu.Lock()
		s.clients[client] = msg.Name
		s.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.SpawnBody) {
		s.Enqueue(func() error { return s.spawn(msg) })
	})

	router.On(func(_ *router.NetworkClient, msg messages.PushBody) {
		s.Enqueue(func() error { return s.push(msg) })
	})

	router.On(func(_ *router.NetworkClient, msg messages.RemoveBody) {
		s.Enqueue(func() error { return s.remove(msg.NetworkID) })
	})

	router.On(func(_ *router.NetworkClient, msg messages.SaveSnapshot) {
		s.Enqueue(func() error { return s.save(msg.Slot) })
	})

	router.On(func(_ *router.NetworkClient, msg messages.LoadSnapshot) {
		s.Enqueue(func() error { return s.load(msg.Slot) })
	})

	router.On(func(_ *router.NetworkClient, _ messages.ResetWorld) {
		s.Enqueue(s.reset)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	log.Printf("[server] client connected: %s", client.Id())
	s.mu.Lock()
	s.clients[client] = ""
	s.mu.Unlock()
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}
	s.mu.Lock()
	delete(s.clients, client)
	s.mu.Unlock()
}

// Enqueue schedules cmd to run on the loop goroutine before the next step.
func (s *Server) Enqueue(cmd func() error) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

// ProcessCommands runs every queued command in arrival order.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cmd := range s.pending {
		if err := cmd(); err != nil {
			log.Printf("[server] command failed: %v", err)
		}
	}
	s.pending = s.pending[:0]
}

// Step advances the world one tick and refreshes the replicated state.
func (s *Server) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	contacts := s.sim.Step(1 / float64(s.opts.TickRate))
	s.syncBodies()
	s.syncWorld(contacts)
	s.lastStep = time.Since(start)
}

// syncBodies marks new bodies for replication and copies every body into
// its NetBody.
func (s *Server) syncBodies() {
	for e := range s.tracked {
		if !s.world.Valid(e) {
			delete(s.tracked, e)
		}
	}

	var fresh []donburi.Entity
	components.Body.Each(s.world, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetBody) {
			fresh = append(fresh, entry.Entity())
		}
	})
	for _, e := range fresh {
		s.world.Entry(e).AddComponent(netcomponents.NetBody)
		entity := e
		if err := s.track(&entity); err != nil {
			log.Printf("[server] failed to sync body %v: %v", e, err)
			continue
		}
		s.tracked[entity] = struct{}{}
	}

	components.Body.Each(s.world, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		net := netcomponents.NetBody.Get(entry)
		*net = netBody(body, entry.HasComponent(components.Kinematic))
	})
}

func (s *Server) syncWorld(contacts []sim.Contact) {
	stats := s.sim.Stats()
	data := netcomponents.NetWorldData{
		Tick:       stats.Tick,
		Bodies:     stats.Bodies,
		Candidates: stats.Candidates,
		Contacts:   make([]netcomponents.NetContactData, len(contacts)),
	}
	for i, c := range contacts {
		data.Contacts[i] = netcomponents.NetContactData{
			X:     c.Event.Contact.X,
			Y:     c.Event.Contact.Y,
			NX:    c.Event.Normal.X,
			NY:    c.Event.Normal.Y,
			Depth: c.Event.PenetrationDepth,
		}
	}
	netcomponents.NetWorld.SetValue(s.world.Entry(s.worldEntity), data)
}

func netBody(b *collision.Body, kinematic bool) netcomponents.NetBodyData {
	out := netcomponents.NetBodyData{
		X:         b.Position.X,
		Y:         b.Position.Y,
		VX:        b.Velocity.X,
		VY:        b.Velocity.Y,
		Static:    b.Mass.IsInfinite(),
		Kinematic: kinematic,
	}
	if b.Shape.Kind() == collision.ShapeCircle {
		out.Shape = netcomponents.ShapeCircle
		out.Size = b.Shape.Radius()
	} else {
		out.Shape = netcomponents.ShapeSquare
		out.Size = b.Shape.EdgeLength()
	}
	return out
}

func (s *Server) populate() error {
	if s.opts.Scene == nil {
		return nil
	}
	if err := s.opts.Scene(s.sim); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	log.Printf("[server] scene ready with %d bodies", s.sim.Len())
	return nil
}

func (s *Server) spawn(msg messages.SpawnBody) error {
	if s.sim.Len() >= s.opts.MaxBodies {
		return fmt.Errorf("spawn: %w (%d)", errTooManyBodies, s.opts.MaxBodies)
	}
	_, err := scene.Spawn(s.sim, leveldata.BodySpawn{
		Shape:  msg.Shape,
		X:      msg.X,
		Y:      msg.Y,
		Size:   msg.Size,
		Mass:   msg.Mass,
		Static: msg.Static,
		VX:     msg.VX,
		VY:     msg.VY,
	})
	return err
}

func (s *Server) push(msg messages.PushBody) error {
	force := gamemath.V(msg.FX, msg.FY)
	if !force.IsFinite() {
		return fmt.Errorf("push: force %v is not finite", force)
	}
	entity := esync.FindByNetworkId(s.world, msg.NetworkID)
	if !s.sim.ApplyForce(entity, force) {
		return fmt.Errorf("push: no body with network id %d", msg.NetworkID)
	}
	return nil
}

func (s *Server) remove(id esync.NetworkId) error {
	entity := esync.FindByNetworkId(s.world, id)
	if _, ok := s.sim.Body(entity); !ok {
		return fmt.Errorf("remove: no body with network id %d", id)
	}
	s.sim.Remove(entity)
	return nil
}

func (s *Server) save(slot string) error {
	if s.opts.Store == nil {
		return errors.New("save: no snapshot store")
	}
	if slot == "" {
		slot = s.opts.Slot
	}
	return persistence.Save(s.opts.Store, slot, s.sim)
}

func (s *Server) load(slot string) error {
	if s.opts.Store == nil {
		return errors.New("load: no snapshot store")
	}
	if slot == "" {
		slot = s.opts.Slot
	}
	return persistence.Load(s.opts.Store, slot, s.sim)
}

func (s *Server) reset() error {
	s.sim.Clear()
	return s.populate()
}

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
