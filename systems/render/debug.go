package render

import (
	"log"

	"github.com/automoto/bsp2d/broadphase"
	"github.com/automoto/bsp2d/bsp"
	"github.com/automoto/bsp2d/config"
	"github.com/automoto/bsp2d/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawTree draws the partition lines of the last BSP tree, clipped to the
// region each node covers. It does nothing unless config.Debug.DrawTree is
// set and the world uses the BSP broad phase.
func DrawTree(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.DrawTree {
		return
	}
	cam, ok := camera(e.World)
	if !ok {
		return
	}
	_, solver, ok := stepState(e.World)
	if !ok {
		return
	}
	finder, ok := solver.Finder.(*broadphase.BSP)
	if !ok || finder.Tree() == nil {
		return
	}

	clr := config.Viewer.TreeColor
	err := finder.Tree().Walk(func(n bsp.NodeInfo) {
		if !n.HasPartition {
			return
		}
		var from, to gamemath.Vec2
		if n.Partition.Dimension == bsp.DimensionX {
			from = gamemath.V(n.Partition.Value, n.Region.Bottom())
			to = gamemath.V(n.Partition.Value, n.Region.Top())
		} else {
			from = gamemath.V(n.Region.Left(), n.Partition.Value)
			to = gamemath.V(n.Region.Right(), n.Partition.Value)
		}
		x0, y0 := cam.ToScreen(from)
		x1, y1 := cam.ToScreen(to)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	})
	if err != nil {
		log.Printf("[debug] tree overlay: %v", err)
	}
}
