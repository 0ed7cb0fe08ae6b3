package render

import (
	"fmt"

	"github.com/automoto/bsp2d/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the statistics of the last step in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	step, _, ok := stepState(e.World)
	if !ok {
		return
	}
	bodies := 0
	components.Body.Each(e.World, func(*donburi.Entry) {
		bodies++
	})

	info := fmt.Sprintf("tick %d  bodies %d  pairs %d  contacts %d  nudged %d\ntree depth %d  nodes %d  collide %s  fps %.0f",
		step.Tick, bodies, step.Candidates, len(step.Contacts), step.Nudged,
		step.TreeDepth, step.TreeNodes, step.Collide, ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, info, 4, 4)
}
