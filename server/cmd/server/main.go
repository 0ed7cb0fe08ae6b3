package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/persistence"
	"github.com/automoto/bsp2d/scene"
	"github.com/automoto/bsp2d/server/core"
	"github.com/automoto/bsp2d/shared/protocol"
	"github.com/automoto/bsp2d/sim"
)

func main() {
	port := flag.Uint("port", config.Server.Port, "Server port")
	statusPort := flag.Int("status", config.Server.StatusPort, "HTTP status port (0 disables)")
	tickRate := flag.Int("tickrate", config.Server.TickRate, "Server tick rate (steps per second)")
	name := flag.String("name", "bsp2d", "Server display name")
	level := flag.String("level", config.Server.Level, "TMX level to load instead of the demo scene")
	seed := flag.Int64("seed", config.Sim.DemoSeed, "Demo scene seed")
	circles := flag.Int("bodies", config.Sim.DemoCircles, "Falling circles in the demo scene")
	broad := flag.String("broadphase", config.Physics.BroadPhase, "Broad phase: bsp, grid or brute")
	flag.Parse()

	config.Sim.DemoSeed = *seed
	config.Sim.DemoCircles = *circles
	config.Physics.BroadPhase = *broad

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

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

	server, err := core.NewServer(world, core.Options{
		Name:     *name,
		TickRate: *tickRate,
		Store:    store,
		Scene:    scene.Builder(*level, scene.DefaultDemoOptions()),
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if *statusPort > 0 {
		addr := fmt.Sprintf(":%d", *statusPort)
		go func() {
			log.Printf("[status] listening on %s", addr)
			if err := http.ListenAndServe(addr, core.NewStatusMux(server)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[status] fatal: %v", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting bsp2d server %q on port %d (tick rate: %d/s, broad phase: %s)",
		*name, *port, *tickRate, *broad)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
