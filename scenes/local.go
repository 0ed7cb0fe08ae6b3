package scenes

import (
	"errors"
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/persistence"
	"github.com/automoto/bsp2d/scene"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/shared/leveldata"
	"github.com/automoto/bsp2d/sim"
	"github.com/automoto/bsp2d/systems/factory"
	"github.com/automoto/bsp2d/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Sizes of bodies spawned with the mouse.
const (
	clickRadius = 8.0
	clickEdge   = 24.0
)

// LocalScene steps a sim.World in process and draws it.
type LocalScene struct {
	world  *sim.World
	ecs    *ecs.ECS
	build  func(*sim.World) error
	store  persistence.Store
	paused bool
	status string
	once   sync.Once
}

// NewLocalScene shows w. build populates the world at startup and on reset;
// store may be nil, which disables saving.
func NewLocalScene(w *sim.World, build func(*sim.World) error, store persistence.Store) *LocalScene {
	return &LocalScene{world: w, build: build, store: store}
}

func (ls *LocalScene) Update() {
	ls.once.Do(ls.configure)

	render.UpdateCamera(ls.ecs)
	ls.handleInput()

	if !ls.paused {
		ls.world.Step(cfg.Sim.Dt)
	}
}

func (ls *LocalScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Viewer.BackgroundColor)
	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)

	line := "[click] circle [right click] square [middle click] remove [S]ave [L]oad [R]eset [space] pause [N] step [T] tree"
	if ls.status != "" {
		line = ls.status
	}
	ebitenutil.DebugPrintAt(screen, line, 4, cfg.Viewer.Height-18)
}

func (ls *LocalScene) configure() {
	// The physics pipeline runs in ls.world.Step; the ECS wrapper only draws.
	ls.ecs = ecs.NewECS(ls.world.Registry())
	factory.CreateCamera(ls.ecs.World, gamemath.Vec2{})

	ls.ecs.AddRenderer(render.LayerWorld, render.DrawTree)
	ls.ecs.AddRenderer(render.LayerWorld, render.DrawBodies)
	ls.ecs.AddRenderer(render.LayerWorld, render.DrawSprings)
	ls.ecs.AddRenderer(render.LayerWorld, render.DrawContactEffects)
	ls.ecs.AddRenderer(render.LayerOverlay, render.DrawHUD)

	if err := ls.rebuild(); err != nil {
		ls.report(err)
	}
}

func (ls *LocalScene) rebuild() error {
	ls.world.Clear()
	if ls.build == nil {
		return nil
	}
	if err := ls.build(ls.world); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	ls.status = fmt.Sprintf("scene ready: %d bodies", ls.world.Len())
	return nil
}

func (ls *LocalScene) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		ls.paused = !ls.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyN) && ls.paused:
		ls.world.Step(cfg.Sim.Dt)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		cfg.Debug.DrawTree = !cfg.Debug.DrawTree
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		ls.report(ls.save())
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		ls.report(ls.load())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ls.report(ls.rebuild())
	}

	if pos, ok := render.CursorWorld(ls.ecs); ok {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
			ls.removeAt(pos)
			return
		}

		var spawn *leveldata.BodySpawn
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			spawn = &leveldata.BodySpawn{Shape: "circle", Size: clickRadius}
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			spawn = &leveldata.BodySpawn{Shape: "square", Size: clickEdge}
		}
		if spawn != nil {
			spawn.X, spawn.Y = pos.X, pos.Y
			_, err := scene.Spawn(ls.world, *spawn)
			ls.report(err)
		}
	}
}

// removeAt deletes every body under pos.
func (ls *LocalScene) removeAt(pos gamemath.Vec2) {
	hits := ls.world.BodiesAt(pos)
	for _, e := range hits {
		ls.world.Remove(e)
	}
	if len(hits) > 0 {
		ls.status = fmt.Sprintf("removed %d bodies", len(hits))
	}
}

func (ls *LocalScene) save() error {
	if ls.store == nil {
		return errors.New("no snapshot store")
	}
	if err := persistence.Save(ls.store, cfg.Server.SaveSlot, ls.world); err != nil {
		return err
	}
	ls.status = fmt.Sprintf("saved %d bodies", ls.world.Len())
	return nil
}

func (ls *LocalScene) load() error {
	if ls.store == nil {
		return errors.New("no snapshot store")
	}
	if err := persistence.Load(ls.store, cfg.Server.SaveSlot, ls.world); err != nil {
		return err
	}
	ls.status = fmt.Sprintf("loaded %d bodies", ls.world.Len())
	return nil
}

func (ls *LocalScene) report(err error) {
	if err == nil {
		return
	}
	log.Printf("[viewer] %v", err)
	ls.status = err.Error()
}
