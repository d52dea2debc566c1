package land

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// WardSize is the number of lands every ward must hold.
const WardSize = 60

// ErrWardIncomplete is returned by Load when a ward does not hold WardSize lands.
var ErrWardIncomplete = errors.New("ward does not hold the expected number of lands")

// Cache is the in-memory index of every land across every ward.
//
// It is the owning table for land entries; everything else refers to a land
// by Identity. Cache performs no locking: mutations happen inside the
// serialized housing execution context.
type Cache struct {
	worldID uint16
	wards   map[SetID][]*Entry
	logger  *zap.Logger
}

// NewCache creates an empty cache for one world.
func NewCache(worldID uint16, logger *zap.Logger) *Cache {
	return &Cache{
		worldID: worldID,
		wards:   make(map[SetID][]*Entry),
		logger:  logger,
	}
}

// WorldID returns the world every cached land belongs to.
func (c *Cache) WorldID() uint16 {
	return c.worldID
}

// Load replaces the cache content with entries, grouped by ward.
// Placed item limits are derived from each entry's size. Any ward that does
// not hold exactly WardSize lands fails the whole load and leaves the cache unchanged.
func (c *Cache) Load(entries []Entry) error {
	wards := make(map[SetID][]*Entry)
	for i := range entries {
		e := entries[i]

		ext, in, ok := e.Size.Capacity()
		if !ok {
			c.logger.Error("Invalid land size, defaulting to cottage",
				zap.Uint16("land_id", e.LandID),
				zap.Uint32("land_set_id", uint32(e.SetID)),
				zap.Uint8("size", uint8(e.Size)))
			e.Size = SizeCottage
		}
		e.MaxPlacedExternalItems = ext
		e.MaxPlacedInternalItems = in

		wards[e.SetID] = append(wards[e.SetID], &e)
	}

	total := 0
	for id, lands := range wards {
		if len(lands) != WardSize {
			return fmt.Errorf("land set %d has %d lands, want %d: %w", id, len(lands), WardSize, ErrWardIncomplete)
		}
		sort.Slice(lands, func(i, j int) bool { return lands[i].LandID < lands[j].LandID })
		for i, l := range lands {
			if int(l.LandID) != i {
				return fmt.Errorf("land set %d is missing land %d: %w", id, i, ErrWardIncomplete)
			}
		}
		total += len(lands)
	}

	c.wards = wards
	c.logger.Info("Cached lands", zap.Int("wards", len(wards)), zap.Int("lands", total))
	return nil
}

// Get returns the ward's lands ordered by land id, or nil for an unknown ward.
func (c *Cache) Get(id SetID) []*Entry {
	return c.wards[id]
}

// Entry returns the land at ident.
func (c *Cache) Entry(ident Identity) (*Entry, bool) {
	lands := c.wards[ident.SetID()]
	if int(ident.LandID) >= len(lands) {
		return nil, false
	}
	return lands[ident.LandID], true
}

// ByOwner returns the identity of the land owned by ownerID.
func (c *Cache) ByOwner(ownerID uint64) (Identity, bool) {
	if ownerID == 0 {
		return Identity{}, false
	}
	for _, id := range c.Wards() {
		for _, e := range c.wards[id] {
			if e.OwnerID == ownerID {
				return e.Identity(c.worldID), true
			}
		}
	}
	return Identity{}, false
}

// Wards returns every cached ward key in ascending order.
func (c *Cache) Wards() []SetID {
	ids := make([]SetID, 0, len(c.wards))
	for id := range c.wards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Each calls fn for every cached land in ward then land order.
func (c *Cache) Each(fn func(*Entry)) {
	for _, id := range c.Wards() {
		for _, e := range c.wards[id] {
			fn(e)
		}
	}
}
