package render

import (
	"fmt"

	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/automoto/bsp2d/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawNetworkedBodies draws the bodies mirrored from the server.
func DrawNetworkedBodies(e *ecs.ECS, screen *ebiten.Image) {
	cam, ok := camera(e.World)
	if !ok {
		return
	}
	netcomponents.NetBody.Each(e.World, func(entry *donburi.Entry) {
		b := netcomponents.NetBody.Get(entry)
		drawShape(screen, cam, b.Shape == netcomponents.ShapeCircle, gamemath.V(b.X, b.Y), b.Size,
			b.Static, bodyColor(b.Static, b.Kinematic))
	})
}

// DrawNetworkedContacts draws the contacts of the latest server tick.
func DrawNetworkedContacts(e *ecs.ECS, screen *ebiten.Image) {
	cam, ok := camera(e.World)
	if !ok {
		return
	}
	entry, ok := netcomponents.NetWorld.First(e.World)
	if !ok {
		return
	}
	for _, c := range netcomponents.NetWorld.Get(entry).Contacts {
		drawContact(screen, cam, gamemath.V(c.X, c.Y), gamemath.V(c.NX, c.NY), c.Depth, config.Viewer.ContactColor)
	}
}

func DrawNetworkHUD(e *ecs.ECS, screen *ebiten.Image) {
	entityCount := 0
	esync.NetworkEntityQuery.Each(e.World, func(_ *donburi.Entry) {
		entityCount++
	})

	info := fmt.Sprintf("online  entities %d", entityCount)
	if entry, ok := netcomponents.NetWorld.First(e.World); ok {
		w := netcomponents.NetWorld.Get(entry)
		info = fmt.Sprintf("online  tick %d  bodies %d  pairs %d  contacts %d",
			w.Tick, w.Bodies, w.Candidates, len(w.Contacts))
	}
	ebitenutil.DebugPrintAt(screen, info, 4, 4)
}
