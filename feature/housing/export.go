package housing

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"

	"github.com/klauspost/compress/zstd"
)

// SnapshotVersion is bumped on incompatible snapshot layout changes.
const SnapshotVersion = 1

// EstateSnapshot is the exported state of one land.
type EstateSnapshot struct {
	Land       land.Entry           `json:"land"`
	House      *House               `json:"house,omitempty"`
	Containers []inventory.Snapshot `json:"containers"`
}

// Snapshot is the exported state of a world.
type Snapshot struct {
	Version int              `json:"version"`
	WorldID uint16           `json:"world_id"`
	TakenAt time.Time        `json:"taken_at"`
	Estates []EstateSnapshot `json:"estates"`
}

// Snapshot captures every land with its house and non-empty containers.
func (m *Manager) Snapshot() Snapshot {
	snap := Snapshot{
		Version: SnapshotVersion,
		WorldID: m.worldID,
		TakenAt: m.now().UTC(),
	}
	m.lands.Each(func(e *land.Entry) {
		ident := e.Identity(m.worldID)
		es := EstateSnapshot{Land: *e}
		if h, ok := m.houses[ident.Pack()]; ok {
			es.House = &h
		}
		containers := m.registry.ContainersFor(ident)
		for _, kind := range inventory.Kinds() {
			if c, ok := containers[kind]; ok && !c.Empty() {
				es.Containers = append(es.Containers, c.Snapshot())
			}
		}
		snap.Estates = append(snap.Estates, es)
	})
	return snap
}

// WriteSnapshot writes snap as zstd compressed JSON.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(&snap); err != nil {
		enc.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// ReadSnapshot reads a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	dec, err := zstd.NewReader(r)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	if err := json.NewDecoder(dec).Decode(&snap); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return snap, fmt.Errorf("snapshot version %d, want %d", snap.Version, SnapshotVersion)
	}
	return snap, nil
}
