package housing

import (
	"context"
	"fmt"

	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/models"
	"housing-manager/feature/housing/store"
	"housing-manager/feature/housing/zone"

	"go.uber.org/zap"
)

// PlaceRequest places a carried item into an estate.
type PlaceRequest struct {
	ActorID uint64
	Zone    zone.Context
	// Plot is the land id in an exterior zone. It is ignored inside an estate.
	Plot       uint16
	Source     inventory.Kind
	SourceSlot uint16
	Pos        inventory.Vec3
	Rotation   float32
}

// MoveRequest moves a placed item.
type MoveRequest struct {
	ActorID uint64
	Zone    zone.Context
	Plot    uint16
	// Slot is the exterior slot, or pair*50+slot inside an estate.
	Slot     uint16
	Pos      inventory.Vec3
	Rotation float32
}

// RemoveRequest takes a placed item out of the world.
type RemoveRequest struct {
	ActorID     uint64
	Zone        zone.Context
	Plot        uint16
	Container   inventory.Kind
	Slot        uint16
	ToStoreroom bool
}

// placedSlot is a resolved placed-item location.
type placedSlot struct {
	container *inventory.Container
	slot      uint16
	// display is the world object slot: slot outside, pair*50+slot inside.
	display uint16
}

// freePlacedSlot finds where a new item goes. Outside it is the exterior
// container; inside, the first free slot of the first interior container
// with room, in pair order.
func (m *Manager) freePlacedSlot(ident land.Identity, interior bool) (placedSlot, error) {
	if !interior {
		c, ok := m.registry.Container(ident, inventory.KindExteriorPlacedItems)
		if !ok {
			return placedSlot{}, fmt.Errorf("exterior container of %s: %w", ident, ErrInternal)
		}
		slot, ok := c.FreeSlot()
		if !ok {
			return placedSlot{}, fmt.Errorf("%s of %s: %w", c.Kind(), ident, ErrNoFreeSlot)
		}
		return placedSlot{container: c, slot: slot, display: slot}, nil
	}

	for pair, kind := range inventory.InteriorPlaced {
		c, ok := m.registry.Container(ident, kind)
		if !ok {
			continue
		}
		if slot, ok := c.FreeSlot(); ok {
			return placedSlot{container: c, slot: slot, display: inventory.InteriorIndex(pair, slot)}, nil
		}
	}
	return placedSlot{}, fmt.Errorf("interior of %s: %w", ident, ErrNoFreeSlot)
}

// PlaceItem moves a carried item into the placed-item containers of the
// estate the actor is in or looking at. The item stays in its bag slot
// unless the whole placement succeeds.
func (m *Manager) PlaceItem(ctx context.Context, req PlaceRequest) error {
	ident := req.Zone.Identity(req.Plot)
	if _, err := m.owned(ident, req.ActorID); err != nil {
		return err
	}
	if !req.Source.IsCarried() {
		return fmt.Errorf("place from %s: %w", req.Source, ErrUnsupportedContainer)
	}
	peeked, err := m.bags.Peek(req.ActorID, req.Source, req.SourceSlot)
	if err != nil {
		return fmt.Errorf("%s slot %d: %w: %w", req.Source, req.SourceSlot, ErrNotFound, err)
	}
	if holder, kind, ok := m.registry.Holder(peeked.UID); ok {
		return fmt.Errorf("item %d already in %s of %s: %w", peeked.UID, kind, holder, ErrInternal)
	}

	dest, err := m.freePlacedSlot(ident, req.Zone.Interior())
	if err != nil {
		return err
	}

	carried, err := m.bags.Take(req.ActorID, req.Source, req.SourceSlot)
	if err != nil {
		return fmt.Errorf("unlink %s slot %d: %w: %w", req.Source, req.SourceSlot, ErrInternal, err)
	}
	item := carried.AsHousingItem()
	item.Place(req.Pos, req.Rotation)

	key := ident.Pack()
	if err := m.persist(ctx, "place item", func(s store.Store) error {
		if err := s.CreateItem(ctx, models.GlobalItemFrom(req.ActorID, item)); err != nil {
			return err
		}
		if err := s.SaveContainer(ctx, []models.InventorySlot{{
			LandIdent:   key,
			ContainerID: uint16(dest.container.Kind()),
			SlotID:      dest.slot,
			ItemID:      item.UID,
		}}); err != nil {
			return err
		}
		return s.SavePlacement(ctx, models.PlacedItemFrom(item))
	}); err != nil {
		m.returnToBag(req.ActorID, req.Source, req.SourceSlot, carried)
		return err
	}

	if err := dest.container.Set(dest.slot, item); err != nil {
		m.returnToBag(req.ActorID, req.Source, req.SourceSlot, carried)
		return fmt.Errorf("link placed item: %w: %w", ErrInternal, err)
	}

	m.notifier.ObjectSpawned(zone.NewObject(ident, req.Zone.Interior(), dest.display, item))
	m.notifier.ContainerUpdated(req.ActorID, ident, dest.container.Snapshot())
	return nil
}

func (m *Manager) returnToBag(actorID uint64, kind inventory.Kind, slot uint16, item *inventory.Item) {
	if err := m.bags.Put(actorID, kind, slot, item); err != nil {
		m.logger.Error("Failed to return item to carried inventory",
			zap.Uint64("actor", actorID),
			zap.Stringer("container", kind),
			zap.Uint16("slot", slot),
			zap.Uint64("item", item.UID),
			zap.Error(err))
	}
}

// resolvePlaced maps a world object slot to its container and container slot.
func (m *Manager) resolvePlaced(ident land.Identity, interior bool, slot uint16) (placedSlot, error) {
	if !interior {
		c, ok := m.registry.Container(ident, inventory.KindExteriorPlacedItems)
		if !ok {
			return placedSlot{}, fmt.Errorf("exterior container of %s: %w", ident, ErrInternal)
		}
		if slot >= c.Capacity() {
			return placedSlot{}, fmt.Errorf("exterior slot %d: %w", slot, ErrInvalidSlot)
		}
		return placedSlot{container: c, slot: slot, display: slot}, nil
	}

	kind, _, pairSlot, err := inventory.ResolveInteriorSlot(slot)
	if err != nil {
		return placedSlot{}, err
	}
	c, ok := m.registry.Container(ident, kind)
	if !ok {
		return placedSlot{}, fmt.Errorf("%s of %s: %w", kind, ident, ErrNotFound)
	}
	return placedSlot{container: c, slot: pairSlot, display: slot}, nil
}

// MoveItem changes the position and rotation of a placed item.
func (m *Manager) MoveItem(ctx context.Context, req MoveRequest) error {
	ident := req.Zone.Identity(req.Plot)
	if _, err := m.owned(ident, req.ActorID); err != nil {
		return err
	}

	at, err := m.resolvePlaced(ident, req.Zone.Interior(), req.Slot)
	if err != nil {
		return err
	}
	item, ok := at.container.Item(at.slot)
	if !ok {
		return fmt.Errorf("%s slot %d: %w", at.container.Kind(), at.slot, ErrNotFound)
	}

	moved := *item
	moved.Place(req.Pos, req.Rotation)
	if err := m.persist(ctx, "move item", func(s store.Store) error {
		return s.UpdateItemPosition(ctx, models.PlacedItemFrom(&moved))
	}); err != nil {
		return err
	}

	*item = moved
	m.notifier.ObjectMoved(req.ActorID, zone.NewObject(ident, req.Zone.Interior(), at.display, item))
	return nil
}

// removable validates the container named by a remove request for the zone.
func removable(kind inventory.Kind, interior bool) (int, error) {
	rules, ok := kind.Rules()
	if !ok || rules.Family != inventory.FamilyPlaced || rules.Exterior == interior {
		return 0, fmt.Errorf("remove from %s: %w", kind, ErrUnsupportedContainer)
	}
	return rules.Pair, nil
}

// RemoveItem takes a placed item out of the world, either into the paired
// storeroom or back into the actor's bags.
func (m *Manager) RemoveItem(ctx context.Context, req RemoveRequest) error {
	ident := req.Zone.Identity(req.Plot)
	if _, err := m.owned(ident, req.ActorID); err != nil {
		return err
	}

	interior := req.Zone.Interior()
	pair, err := removable(req.Container, interior)
	if err != nil {
		return err
	}
	c, ok := m.registry.Container(ident, req.Container)
	if !ok {
		return fmt.Errorf("%s of %s: %w", req.Container, ident, ErrNotFound)
	}
	if req.Slot >= c.Capacity() {
		return fmt.Errorf("%s slot %d: %w", req.Container, req.Slot, ErrInvalidSlot)
	}
	item, ok := c.Item(req.Slot)
	if !ok {
		return fmt.Errorf("%s slot %d: %w", req.Container, req.Slot, ErrNotFound)
	}

	display := req.Slot
	if interior {
		display = inventory.InteriorIndex(pair, req.Slot)
	}
	obj := zone.NewObject(ident, interior, display, item)

	if req.ToStoreroom {
		return m.removeToStoreroom(ctx, req, ident, c, item, obj)
	}
	return m.removeToBags(ctx, req, ident, c, item, obj)
}

func (m *Manager) removeToStoreroom(ctx context.Context, req RemoveRequest, ident land.Identity, c *inventory.Container, item *inventory.Item, obj zone.Object) error {
	storeKind, _ := c.Kind().Storeroom()
	storeroom, ok := m.registry.Container(ident, storeKind)
	if !ok {
		return fmt.Errorf("%s of %s: %w", storeKind, ident, ErrInternal)
	}
	dst, ok := storeroom.FreeSlot()
	if !ok {
		return fmt.Errorf("%s of %s: %w", storeKind, ident, ErrNoFreeSlot)
	}

	key := ident.Pack()
	from := models.InventorySlot{LandIdent: key, ContainerID: uint16(c.Kind()), SlotID: req.Slot, ItemID: item.UID}
	to := models.InventorySlot{LandIdent: key, ContainerID: uint16(storeKind), SlotID: dst, ItemID: item.UID}
	if err := m.persist(ctx, "store item", func(s store.Store) error {
		return s.MoveToStoreroom(ctx, from, to)
	}); err != nil {
		return err
	}

	stored := *item
	stored.Pos = inventory.Position{}
	stored.Rot = 0
	if err := storeroom.Set(dst, &stored); err != nil {
		return fmt.Errorf("link stored item: %w: %w", ErrInternal, err)
	}
	c.Remove(req.Slot)

	m.notifier.ObjectDespawned(obj)
	m.notifier.ContainerUpdated(req.ActorID, ident, c.Snapshot())
	m.notifier.ContainerUpdated(req.ActorID, ident, storeroom.Snapshot())
	return nil
}

func (m *Manager) removeToBags(ctx context.Context, req RemoveRequest, ident land.Identity, c *inventory.Container, item *inventory.Item, obj zone.Object) error {
	bag, bagSlot, ok := m.bags.FreeSlot(req.ActorID)
	if !ok {
		return fmt.Errorf("carried inventory of %d: %w", req.ActorID, ErrNoFreeSlot)
	}

	carried := *item
	carried.StackSize = 1
	carried.Pos = inventory.Position{}
	carried.Rot = 0
	if err := m.bags.Put(req.ActorID, bag, bagSlot, &carried); err != nil {
		return fmt.Errorf("link carried item: %w: %w", ErrInternal, err)
	}

	key := ident.Pack()
	if err := m.persist(ctx, "retrieve item", func(s store.Store) error {
		if err := s.RemoveFromContainer(ctx, key, uint16(c.Kind()), req.Slot); err != nil {
			return err
		}
		if err := s.RemovePlacement(ctx, item.UID); err != nil {
			return err
		}
		return s.DeleteItem(ctx, item.UID)
	}); err != nil {
		if _, terr := m.bags.Take(req.ActorID, bag, bagSlot); terr != nil {
			m.logger.Error("Failed to undo carried item link",
				zap.Uint64("actor", req.ActorID), zap.Uint64("item", item.UID), zap.Error(terr))
		}
		return err
	}

	c.Remove(req.Slot)
	m.notifier.ObjectDespawned(obj)
	m.notifier.ContainerUpdated(req.ActorID, ident, c.Snapshot())
	return nil
}
