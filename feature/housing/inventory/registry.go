package inventory

import (
	"fmt"
	"sort"

	"housing-manager/feature/housing/land"

	"go.uber.org/zap"
)

// Containers maps the kinds of one estate to their containers.
type Containers map[Kind]*Container

// Registry holds every estate's containers, keyed by packed land identity.
// It performs no locking.
type Registry struct {
	estates map[uint64]Containers
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{estates: make(map[uint64]Containers)}
}

// ContainersFor returns the container map of an estate, creating the map (but
// no containers) on first access.
func (r *Registry) ContainersFor(ident land.Identity) Containers {
	key := ident.Pack()
	cs, ok := r.estates[key]
	if !ok {
		cs = make(Containers)
		r.estates[key] = cs
	}
	return cs
}

// Container looks up one container without creating anything.
func (r *Registry) Container(ident land.Identity, kind Kind) (*Container, bool) {
	cs, ok := r.estates[ident.Pack()]
	if !ok {
		return nil, false
	}
	c, ok := cs[kind]
	return c, ok
}

// Provision creates a container if absent. Provisioning an existing container
// with identical parameters is a no-op.
func (r *Registry) Provision(ident land.Identity, kind Kind, capacity uint16, multiStorage bool) (*Container, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("provision %d: %w", uint16(kind), ErrUnknownKind)
	}
	cs := r.ContainersFor(ident)
	if c, ok := cs[kind]; ok {
		if c.capacity != capacity || c.multiStorage != multiStorage {
			return nil, fmt.Errorf("%s on %s (capacity %d, requested %d): %w",
				kind, ident, c.capacity, capacity, ErrProvisionConflict)
		}
		return c, nil
	}
	c := NewContainer(kind, capacity, Table, multiStorage)
	cs[kind] = c
	return c, nil
}

// Replace swaps an appearance container for a fresh, empty one.
func (r *Registry) Replace(ident land.Identity, kind Kind, capacity uint16, multiStorage bool) (*Container, error) {
	if !kind.IsAppearance() {
		return nil, fmt.Errorf("replace %s: %w", kind, ErrProvisionConflict)
	}
	c := NewContainer(kind, capacity, Table, multiStorage)
	r.ContainersFor(ident)[kind] = c
	return c, nil
}

// Install puts a prepared appearance container into an estate, replacing the
// current one of the same kind.
func (r *Registry) Install(ident land.Identity, c *Container) error {
	if !c.kind.IsAppearance() {
		return fmt.Errorf("install %s: %w", c.kind, ErrProvisionConflict)
	}
	r.ContainersFor(ident)[c.kind] = c
	return nil
}

// ProvisionLand applies the boot policy for one land: interior room/storeroom
// pairs of 50 slots while the running total is below the land's interior
// limit, one exterior placed/storeroom pair sized by the exterior limit, and
// appearance placeholders.
func (r *Registry) ProvisionLand(ident land.Identity, entry *land.Entry) error {
	total := 0
	for pair := 0; pair < InteriorPairs && total < int(entry.MaxPlacedInternalItems); pair++ {
		if _, err := r.Provision(ident, InteriorPlaced[pair], PairSlots, false); err != nil {
			return err
		}
		if _, err := r.Provision(ident, InteriorStorerooms[pair], PairSlots, false); err != nil {
			return err
		}
		total += PairSlots
	}

	ext := entry.MaxPlacedExternalItems
	if _, err := r.Provision(ident, KindExteriorPlacedItems, ext, false); err != nil {
		return err
	}
	if _, err := r.Provision(ident, KindExteriorStoreroom, ext, false); err != nil {
		return err
	}
	if _, err := r.Provision(ident, KindInteriorAppearance, InteriorAppearanceSlots, false); err != nil {
		return err
	}
	if _, err := r.Provision(ident, KindExteriorAppearance, ExteriorAppearanceSlots, false); err != nil {
		return err
	}
	return nil
}

// Record is one persisted inventory row.
type Record struct {
	LandIdent uint64
	Container uint16
	Slot      uint16
	Item      Item
}

// Hydrate links persisted rows into provisioned containers. Rows that do not
// fit (unknown kind, missing container, bad or occupied slot) are logged and
// skipped.
func (r *Registry) Hydrate(records []Record, logger *zap.Logger) (linked, skipped int) {
	for _, rec := range records {
		ident := land.Unpack(rec.LandIdent)
		kind, err := ParseKind(rec.Container)
		if err == nil {
			c, ok := r.Container(ident, kind)
			if !ok {
				err = fmt.Errorf("container %s not provisioned", kind)
			} else {
				item := rec.Item
				err = c.Set(rec.Slot, &item)
			}
		}
		if err != nil {
			logger.Error("Inconsistent inventory row skipped",
				zap.Stringer("land", ident),
				zap.Uint16("container", rec.Container),
				zap.Uint16("slot", rec.Slot),
				zap.Uint64("item", rec.Item.UID),
				zap.Error(err))
			skipped++
			continue
		}
		linked++
	}
	return linked, skipped
}

// Estates returns the identities of every estate with containers, ascending by packed key.
func (r *Registry) Estates() []land.Identity {
	keys := make([]uint64, 0, len(r.estates))
	for k := range r.estates {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]land.Identity, len(keys))
	for i, k := range keys {
		out[i] = land.Unpack(k)
	}
	return out
}

// Locate finds the container and slot holding the item with uid.
func (r *Registry) Locate(ident land.Identity, uid uint64) (*Container, uint16, bool) {
	cs, ok := r.estates[ident.Pack()]
	if !ok {
		return nil, 0, false
	}
	for _, c := range cs {
		for slot, it := range c.items {
			if it.UID == uid {
				return c, slot, true
			}
		}
	}
	return nil, 0, false
}

// Holder finds the estate and container kind holding the item with uid, across every estate.
func (r *Registry) Holder(uid uint64) (land.Identity, Kind, bool) {
	for key, cs := range r.estates {
		for kind, c := range cs {
			for _, it := range c.items {
				if it.UID == uid {
					return land.Unpack(key), kind, true
				}
			}
		}
	}
	return land.Identity{}, 0, false
}
