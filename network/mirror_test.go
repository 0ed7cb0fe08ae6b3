package network

import (
	"testing"

	"github.com/automoto/bsp2d/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

func bodyAt(id esync.NetworkId, x float64) MirroredEntity {
	return MirroredEntity{
		ID:         id,
		Components: []any{netcomponents.NetBodyData{X: x, Size: 2}},
	}
}

func mirroredX(t *testing.T, world donburi.World, id esync.NetworkId) float64 {
	t.Helper()
	entity := esync.FindByNetworkId(world, id)
	if !world.Valid(entity) {
		t.Fatalf("entity %d not mirrored", id)
	}
	return netcomponents.NetBody.Get(world.Entry(entity)).X
}

func TestApplyCreatesAndUpdates(t *testing.T) {
	world := donburi.NewWorld()

	Apply(world, []MirroredEntity{bodyAt(1, 10), bodyAt(2, 20)})
	if got := mirroredX(t, world, 1); got != 10 {
		t.Errorf("entity 1 x = %g, want 10", got)
	}

	Apply(world, []MirroredEntity{bodyAt(1, 15), bodyAt(2, 25)})
	if got := mirroredX(t, world, 1); got != 15 {
		t.Errorf("entity 1 x = %g after update, want 15", got)
	}
	if n := world.Len(); n != 2 {
		t.Errorf("world has %d entities, want 2", n)
	}
}

func TestApplyRemovesMissing(t *testing.T) {
	world := donburi.NewWorld()
	Apply(world, []MirroredEntity{bodyAt(1, 10), bodyAt(2, 20), bodyAt(3, 30)})
	Apply(world, []MirroredEntity{bodyAt(2, 20)})

	if world.Valid(esync.FindByNetworkId(world, 1)) || world.Valid(esync.FindByNetworkId(world, 3)) {
		t.Error("entities missing from the snapshot were kept")
	}
	if got := mirroredX(t, world, 2); got != 20 {
		t.Errorf("entity 2 x = %g, want 20", got)
	}
}

func TestApplyWorldSummary(t *testing.T) {
	world := donburi.NewWorld()
	Apply(world, []MirroredEntity{{
		ID:         7,
		Components: []any{netcomponents.NetWorldData{Tick: 3, Bodies: 2}},
	}})

	entry, ok := netcomponents.NetWorld.First(world)
	if !ok {
		t.Fatal("world summary not mirrored")
	}
	if got := netcomponents.NetWorld.Get(entry); got.Tick != 3 || got.Bodies != 2 {
		t.Errorf("summary = %+v", *got)
	}
}

func TestFindBodyAt(t *testing.T) {
	world := donburi.NewWorld()
	Apply(world, []MirroredEntity{bodyAt(1, 0), bodyAt(2, 10)})

	if id, ok := FindBodyAt(world, 10.5, 0); !ok || id != 2 {
		t.Errorf("FindBodyAt(10.5, 0) = %d, %v, want 2, true", id, ok)
	}
	if _, ok := FindBodyAt(world, 5, 0); ok {
		t.Error("FindBodyAt(5, 0) found a body in empty space")
	}
}

func TestClientStartsDisconnected(t *testing.T) {
	c := NewClient()
	if c.State() != StateDisconnected {
		t.Errorf("state = %v", c.State())
	}
	if c.LatestSnapshot() != nil {
		t.Error("new client has a snapshot")
	}
	if err := c.SendMessage("x"); err == nil {
		t.Error("SendMessage without a connection should fail")
	}
}
