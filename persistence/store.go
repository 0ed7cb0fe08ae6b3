package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/automoto/bsp2d/sim"
	"github.com/quasilyte/gdata"
)

// ErrNoSnapshot is returned by Load when the slot is empty.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Store is the subset of *gdata.Manager used for snapshots.
type Store interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

// OpenStore opens the gdata store of appName.
func OpenStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return m, nil
}

// Save captures w into slot.
func Save(store Store, slot string, w *sim.World) error {
	snap := Capture(w)
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := store.SaveItem(slot, data); err != nil {
		return fmt.Errorf("save snapshot %q: %w", slot, err)
	}
	log.Printf("[persistence] saved %d bodies to %q at tick %d", len(snap.Bodies), slot, snap.Tick)
	return nil
}

// Load replaces w with the snapshot in slot.
func Load(store Store, slot string, w *sim.World) error {
	data, err := store.LoadItem(slot)
	if err != nil {
		return fmt.Errorf("load snapshot %q: %w", slot, err)
	}
	if data == nil {
		return fmt.Errorf("load snapshot %q: %w", slot, ErrNoSnapshot)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot %q: %w", slot, err)
	}
	if err := Restore(w, snap); err != nil {
		return err
	}
	log.Printf("[persistence] loaded %d bodies from %q", len(snap.Bodies), slot)
	return nil
}
