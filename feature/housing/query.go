package housing

import (
	"fmt"

	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/zone"
)

// WardFlags describe a plot in a ward listing.
type WardFlags uint8

const (
	WardFlagOwned       WardFlags = 1 << 0
	WardFlagPublic      WardFlags = 1 << 1
	WardFlagGreeting    WardFlags = 1 << 2
	WardFlagFreeCompany WardFlags = 1 << 4
)

// WardLand is one plot of a ward listing.
type WardLand struct {
	LandID  uint16      `json:"land_id"`
	Price   uint64      `json:"price"`
	Flags   WardFlags   `json:"flags"`
	OwnerID uint64      `json:"owner_id"`
	Size    land.Size   `json:"size"`
	Status  land.Status `json:"status"`
}

// QueryEstateInventory returns a snapshot of one estate container.
// Carried bags are not estate containers.
func (m *Manager) QueryEstateInventory(actorID uint64, zc zone.Context, plot uint16, kind inventory.Kind) (inventory.Snapshot, error) {
	ident := zc.Identity(plot)
	if _, err := m.owned(ident, actorID); err != nil {
		return inventory.Snapshot{}, err
	}
	if !kind.Valid() || kind.IsCarried() {
		return inventory.Snapshot{}, fmt.Errorf("query %s: %w", kind, ErrUnsupportedContainer)
	}
	c, ok := m.registry.Container(ident, kind)
	if !ok {
		return inventory.Snapshot{}, fmt.Errorf("%s of %s: %w", kind, ident, ErrNotFound)
	}
	return c.Snapshot(), nil
}

// QueryInteriorInventories returns the interior placed containers of an
// estate in pair order, or its interior storerooms. It stops at the first
// pair the estate does not have.
func (m *Manager) QueryInteriorInventories(actorID uint64, ident land.Identity, storeroom bool) ([]inventory.Snapshot, error) {
	if _, err := m.owned(ident, actorID); err != nil {
		return nil, err
	}
	kinds := inventory.InteriorPlaced
	if storeroom {
		kinds = inventory.InteriorStorerooms
	}

	snaps := make([]inventory.Snapshot, 0, len(kinds))
	for _, kind := range kinds {
		c, ok := m.registry.Container(ident, kind)
		if !ok {
			break
		}
		snaps = append(snaps, c.Snapshot())
	}
	return snaps, nil
}

// WardInfo lists every plot of a ward in land id order.
func (m *Manager) WardInfo(id land.SetID) ([]WardLand, error) {
	lands := m.lands.Get(id)
	if len(lands) == 0 {
		return nil, fmt.Errorf("land set %d: %w", id, ErrNotFound)
	}

	out := make([]WardLand, 0, len(lands))
	for _, e := range lands {
		wl := WardLand{
			LandID:  e.LandID,
			Price:   e.CurrentPrice,
			OwnerID: e.OwnerID,
			Size:    e.Size,
			Status:  e.Status,
		}
		if e.Status != land.StatusForSale {
			wl.Flags |= WardFlagOwned
		}
		if e.Comment != "" {
			wl.Flags |= WardFlagGreeting
		}
		if e.Type == land.TypeFreeCompany {
			wl.Flags |= WardFlagFreeCompany
		}
		out = append(out, wl)
	}
	return out, nil
}

// LandInfo returns a copy of the cached land.
func (m *Manager) LandInfo(ident land.Identity) (land.Entry, error) {
	e, err := m.entry(ident)
	if err != nil {
		return land.Entry{}, fmt.Errorf("land %s: %w", ident, ErrNotFound)
	}
	return *e, nil
}

// House returns the house built on a land.
func (m *Manager) House(ident land.Identity) (House, error) {
	h, ok := m.houses[ident.Pack()]
	if !ok {
		return House{}, fmt.Errorf("land %s: %w", ident, ErrNoHouse)
	}
	return h, nil
}

// EstateGreeting returns the greeting of the house on a land.
func (m *Manager) EstateGreeting(ident land.Identity) (string, error) {
	h, err := m.House(ident)
	if err != nil {
		return "", err
	}
	return h.Greeting, nil
}

// LandByOwner returns the land owned by a character.
func (m *Manager) LandByOwner(ownerID uint64) (land.Identity, bool) {
	return m.lands.ByOwner(ownerID)
}

// Wards returns every loaded ward.
func (m *Manager) Wards() []land.SetID {
	return m.lands.Wards()
}
