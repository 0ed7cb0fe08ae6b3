package main

import (
	"flag"
	"log"

	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/network"
	"github.com/automoto/bsp2d/persistence"
	"github.com/automoto/bsp2d/scene"
	"github.com/automoto/bsp2d/scenes"
	"github.com/automoto/bsp2d/shared/protocol"
	"github.com/automoto/bsp2d/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

const version = "0.1.0"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Viewer.Width, config.Viewer.Height
}

func main() {
	connect := flag.String("connect", "", "Server address (host:port); empty runs the world locally")
	level := flag.String("level", config.Server.Level, "TMX level to load instead of the demo scene")
	seed := flag.Int64("seed", config.Sim.DemoSeed, "Demo scene seed")
	circles := flag.Int("bodies", config.Sim.DemoCircles, "Falling circles in the demo scene")
	broad := flag.String("broadphase", config.Physics.BroadPhase, "Broad phase: bsp, grid or brute")
	flag.Parse()

	config.Sim.DemoSeed = *seed
	config.Sim.DemoCircles = *circles
	config.Physics.BroadPhase = *broad

	ebiten.SetWindowSize(config.Viewer.Width, config.Viewer.Height)
	ebiten.SetWindowTitle("bsp2d")

	var s Scene
	if *connect != "" {
		// Register network components for client-side deserialization
		if err := protocol.RegisterComponents(); err != nil {
			log.Fatalf("Failed to register network components: %v", err)
		}
		client := network.NewClient()
		client.Connect(*connect, version, "viewer")
		defer client.Disconnect()
		s = scenes.NewNetworkedScene(client)
	} else {
		world, err := sim.New(sim.DefaultOptions())
		if err != nil {
			log.Fatalf("Failed to create world: %v", err)
		}

		var store persistence.Store
		if m, err := persistence.OpenStore(config.Server.AppName); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		} else {
			store = m
		}
		s = scenes.NewLocalScene(world, scene.Builder(*level, scene.DefaultDemoOptions()), store)
	}

	if err := ebiten.RunGame(&Game{scene: s}); err != nil {
		log.Fatal(err)
	}
}
