package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/network"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/shared/messages"
	"github.com/automoto/bsp2d/systems/factory"
	"github.com/automoto/bsp2d/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetworkedScene mirrors a remote server's world and forwards commands to
// it.
type NetworkedScene struct {
	ecsWorld  *ecs.ECS
	netClient *network.Client
	once      sync.Once
}

func NewNetworkedScene(client *network.Client) *NetworkedScene {
	return &NetworkedScene{netClient: client}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		network.Apply(ns.ecsWorld.World, network.Decode(*snap))
	}

	render.UpdateCamera(ns.ecsWorld)
	ns.handleInput()
	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Viewer.BackgroundColor)

	if ns.ecsWorld == nil {
		return
	}

	ns.ecsWorld.Draw(screen)

	line := "[click] circle [right click] square [middle click] remove [S]ave [L]oad [R]eset"
	if err := ns.netClient.LastError(); err != nil {
		line = err.Error()
	} else if state := ns.netClient.State(); state != network.StateConnected {
		line = state.String()
	}
	ebitenutil.DebugPrintAt(screen, line, 4, cfg.Viewer.Height-18)
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(ns.ecsWorld.World, gamemath.Vec2{})

	ns.ecsWorld.AddRenderer(render.LayerWorld, render.DrawNetworkedBodies)
	ns.ecsWorld.AddRenderer(render.LayerWorld, render.DrawNetworkedContacts)
	ns.ecsWorld.AddRenderer(render.LayerOverlay, render.DrawNetworkHUD)
}

func (ns *NetworkedScene) handleInput() {
	var msg any
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		msg = messages.SaveSnapshot{}
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		msg = messages.LoadSnapshot{}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		msg = messages.ResetWorld{}
	}

	if pos, ok := render.CursorWorld(ns.ecsWorld); ok {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			msg = messages.SpawnBody{Shape: "circle", X: pos.X, Y: pos.Y, Size: clickRadius}
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			msg = messages.SpawnBody{Shape: "square", X: pos.X, Y: pos.Y, Size: clickEdge}
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
			if id, ok := network.FindBodyAt(ns.ecsWorld.World, pos.X, pos.Y); ok {
				msg = messages.RemoveBody{NetworkID: id}
			}
		}
	}

	if msg == nil || ns.netClient.State() != network.StateConnected {
		return
	}
	if err := ns.netClient.SendMessage(msg); err != nil {
		log.Printf("[networked] send failed: %v", err)
	}
}
