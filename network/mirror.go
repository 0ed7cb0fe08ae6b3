package network

import (
	"log"

	"github.com/automoto/bsp2d/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// MirroredEntity is one decoded snapshot entry.
type MirroredEntity struct {
	ID         esync.NetworkId
	Components []any
}

// Decode deserializes every component of snapshot. Components that fail to
// decode are skipped.
func Decode(snapshot esync.WorldSnapshot) []MirroredEntity {
	out := make([]MirroredEntity, 0, len(snapshot))
	for _, ent := range snapshot {
		m := MirroredEntity{ID: ent.Id}
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				log.Printf("[client] skipping component of entity %d: %v", ent.Id, err)
				continue
			}
			m.Components = append(m.Components, instance)
		}
		out = append(out, m)
	}
	return out
}

// Apply makes world mirror entities: unknown ids are created, known ids
// updated, and mirrored entities missing from the list removed.
func Apply(world donburi.World, entities []MirroredEntity) {
	present := make(map[esync.NetworkId]struct{}, len(entities))

	for _, ent := range entities {
		present[ent.ID] = struct{}{}

		entity := esync.FindByNetworkId(world, ent.ID)
		if !world.Valid(entity) {
			entity = world.Create(componentTypes(ent.Components)...)
			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.ID)
		}

		entry := world.Entry(entity)
		for _, data := range ent.Components {
			applyComponent(entry, data)
		}
	}

	var stale []*donburi.Entry
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if _, ok := present[*id]; !ok {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		entry.Remove()
	}
}

// FindBodyAt returns the network id of a mirrored body containing (x, y).
func FindBodyAt(world donburi.World, x, y float64) (esync.NetworkId, bool) {
	var (
		found esync.NetworkId
		ok    bool
	)
	netcomponents.NetBody.Each(world, func(entry *donburi.Entry) {
		if ok || !netcomponents.NetBody.Get(entry).Contains(x, y) {
			return
		}
		if id := esync.GetNetworkId(entry); id != nil {
			found, ok = *id, true
		}
	})
	return found, ok
}

func componentTypes(components []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range components {
		switch data.(type) {
		case netcomponents.NetBodyData:
			ctypes = append(ctypes, netcomponents.NetBody)
		case netcomponents.NetWorldData:
			ctypes = append(ctypes, netcomponents.NetWorld)
		}
	}
	return ctypes
}

func applyComponent(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetBodyData:
		if !entry.HasComponent(netcomponents.NetBody) {
			entry.AddComponent(netcomponents.NetBody)
		}
		netcomponents.NetBody.SetValue(entry, v)
	case netcomponents.NetWorldData:
		if !entry.HasComponent(netcomponents.NetWorld) {
			entry.AddComponent(netcomponents.NetWorld)
		}
		netcomponents.NetWorld.SetValue(entry, v)
	}
}
