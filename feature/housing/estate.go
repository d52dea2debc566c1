package housing

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"housing-manager/feature/gamedata"
	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/models"
	"housing-manager/feature/housing/store"
	"housing-manager/feature/housing/zone"

	"go.uber.org/zap"
)

const (
	// MaxHouseNameLength and MaxGreetingLength bound estate texts, in characters.
	MaxHouseNameLength = 20
	MaxGreetingLength  = 193
)

// PurchaseLand buys a plot for actorID. Only private purchases are supported.
func (m *Manager) PurchaseLand(ctx context.Context, actorID uint64, ident land.Identity, mode PurchaseMode) error {
	e, err := m.entry(ident)
	if err != nil {
		return err
	}
	if e.Status != land.StatusForSale {
		return fmt.Errorf("land %s is %s: %w", ident, e.Status, ErrNotAvailable)
	}
	price := e.CurrentPrice
	if m.wallet.Balance(actorID) < price {
		return fmt.Errorf("land %s costs %d: %w", ident, price, ErrNotEnoughFunds)
	}

	switch mode {
	case PurchasePrivate:
	case PurchaseFreeCompany:
		return fmt.Errorf("free company purchase of %s: %w", ident, ErrInternal)
	default:
		return fmt.Errorf("purchase mode %d: %w", mode, ErrInternal)
	}

	if owned, ok := m.lands.ByOwner(actorID); ok {
		return fmt.Errorf("character %d owns %s: %w", actorID, owned, ErrAlreadyOwnsLand)
	}

	next := *e
	next.OwnerID = actorID
	next.Status = land.StatusSold
	next.Type = land.TypePrivate
	next.UpdateTime = m.now().Unix()

	if err := m.wallet.Debit(actorID, price); err != nil {
		return fmt.Errorf("land %s: %w: %w", ident, ErrNotEnoughFunds, err)
	}
	row := models.LandFromEntry(&next)
	if err := m.persist(ctx, "purchase land", func(s store.Store) error {
		return s.UpdateLand(ctx, row)
	}); err != nil {
		if cerr := m.wallet.Credit(actorID, price); cerr != nil {
			m.logger.Error("Failed to refund land purchase",
				zap.Uint64("actor", actorID), zap.Uint64("amount", price), zap.Error(cerr))
		}
		return err
	}

	*e = next
	m.notifier.LandUpdated(next)
	m.logger.Info("Land purchased", zap.Stringer("land", ident), zap.Uint64("owner", actorID), zap.Uint64("price", price))
	return nil
}

// requireEmpty refuses when any placed or storeroom container of the estate holds an item.
func (m *Manager) requireEmpty(ident land.Identity) error {
	for _, kind := range inventory.Kinds() {
		if !kind.IsPlaced() && !kind.IsStoreroom() {
			continue
		}
		if c, ok := m.registry.Container(ident, kind); ok && !c.Empty() {
			return fmt.Errorf("%s of %s holds %d items: %w", kind, ident, c.Len(), ErrEstateNotEmpty)
		}
	}
	return nil
}

// RelinquishLand gives up an owned plot without a house. The price resets to the tier maximum.
func (m *Manager) RelinquishLand(ctx context.Context, actorID uint64, ident land.Identity) error {
	e, err := m.owned(ident, actorID)
	if err != nil {
		return err
	}
	if _, built := m.houses[ident.Pack()]; built || e.HouseID != 0 {
		return fmt.Errorf("land %s: %w", ident, ErrHouseStanding)
	}
	if err := m.requireEmpty(ident); err != nil {
		return err
	}

	next := *e
	next.CurrentPrice = m.cfg.MaxPrice(e.Size)
	next.OwnerID = 0
	next.Status = land.StatusForSale
	next.Type = land.TypeNone
	next.UpdateTime = m.now().Unix()

	row := models.LandFromEntry(&next)
	if err := m.persist(ctx, "relinquish land", func(s store.Store) error {
		return s.UpdateLand(ctx, row)
	}); err != nil {
		return err
	}

	*e = next
	m.notifier.LandUpdated(next)
	m.logger.Info("Land relinquished", zap.Stringer("land", ident), zap.Uint64("actor", actorID))
	return nil
}

type presetSlot struct {
	slot      uint16
	catalogID uint32
}

func exteriorPreset(p gamedata.Preset) []presetSlot {
	return []presetSlot{
		{inventory.ExteriorRoof, p.ExteriorRoof},
		{inventory.ExteriorWall, p.ExteriorWall},
		{inventory.ExteriorWindow, p.ExteriorWindow},
		{inventory.ExteriorDoor, p.ExteriorDoor},
	}
}

func interiorPreset(p gamedata.Preset) []presetSlot {
	return []presetSlot{
		{inventory.InteriorWall, p.InteriorWall},
		{inventory.InteriorFloor, p.InteriorFlooring},
		{inventory.InteriorLight, p.InteriorLighting},
		{inventory.InteriorAtticWall, p.OtherFloorWall},
		{inventory.InteriorAtticFloor, p.OtherFloorFlooring},
		{inventory.InteriorAtticLight, p.OtherFloorLighting},
		{inventory.InteriorBasementWall, p.BasementWall},
		{inventory.InteriorBasementFloor, p.BasementFlooring},
		{inventory.InteriorBasementLight, p.BasementLighting},
	}
}

// resolvePreset maps a permit item to its preset.
func (m *Manager) resolvePreset(ctx context.Context, permitID uint32) (gamedata.Preset, error) {
	permit, err := m.catalog.Item(ctx, permitID)
	if err == nil {
		var preset gamedata.Preset
		if preset, err = m.catalog.Preset(ctx, permit.AdditionalData); err == nil {
			return preset, nil
		}
	}
	if errors.Is(err, gamedata.ErrUnknownItem) || errors.Is(err, gamedata.ErrUnknownPreset) {
		return gamedata.Preset{}, fmt.Errorf("permit %d: %w: %w", permitID, ErrInvalidPreset, err)
	}
	return gamedata.Preset{}, fmt.Errorf("permit %d: %w: %w", permitID, ErrInternal, err)
}

// BuildEstate builds a house from a preset permit on an owned plot.
func (m *Manager) BuildEstate(ctx context.Context, actorID uint64, ident land.Identity, permitID uint32) error {
	e, err := m.owned(ident, actorID)
	if err != nil {
		return err
	}
	if _, built := m.houses[ident.Pack()]; built || e.Status == land.StatusPrivateHouse {
		return fmt.Errorf("land %s: %w", ident, ErrHouseStanding)
	}
	if e.Status != land.StatusSold {
		return fmt.Errorf("land %s is %s: %w", ident, e.Status, ErrNotAvailable)
	}

	preset, err := m.resolvePreset(ctx, permitID)
	if err != nil {
		return err
	}

	houseID, err := m.store.NextHouseID(ctx)
	if err != nil {
		return fmt.Errorf("build estate: %w: %w", ErrStore, err)
	}
	nextItem, err := m.store.NextItemID(ctx)
	if err != nil {
		return fmt.Errorf("build estate: %w: %w", ErrStore, err)
	}

	ext := inventory.NewContainer(inventory.KindExteriorAppearance, e.MaxPlacedExternalItems, inventory.Table, true)
	in := inventory.NewContainer(inventory.KindInteriorAppearance, e.MaxPlacedInternalItems, inventory.Table, true)

	var created []*inventory.Item
	fill := func(c *inventory.Container, slots []presetSlot) error {
		for _, ps := range slots {
			if ps.catalogID == 0 {
				continue
			}
			it := &inventory.Item{UID: nextItem, CatalogID: ps.catalogID, StackSize: 1}
			nextItem++
			if err := c.Set(ps.slot, it); err != nil {
				return fmt.Errorf("preset slot: %w: %w", ErrInternal, err)
			}
			created = append(created, it)
		}
		return nil
	}
	if err := fill(ext, exteriorPreset(preset)); err != nil {
		return err
	}
	if err := fill(in, interiorPreset(preset)); err != nil {
		return err
	}

	now := m.now().Unix()
	house := House{
		ID:        houseID,
		LandSetID: e.SetID,
		Identity:  ident,
		Name:      DefaultHouseName(ident.LandID),
		BuildTime: now,
	}

	next := *e
	next.Status = land.StatusPrivateHouse
	next.Type = land.TypePrivate
	next.HouseID = houseID
	next.Name = house.Name
	next.BuildTime = now

	key := ident.Pack()
	row := models.LandFromEntry(&next)
	if err := m.persist(ctx, "build estate", func(s store.Store) error {
		if err := s.InsertHouse(ctx, models.House{
			HouseID:   house.ID,
			LandSetID: uint32(house.LandSetID),
			BuildTime: house.BuildTime,
			HouseName: house.Name,
		}); err != nil {
			return err
		}
		for _, it := range created {
			if err := s.CreateItem(ctx, models.GlobalItemFrom(actorID, it)); err != nil {
				return err
			}
		}
		for _, c := range []*inventory.Container{ext, in} {
			if err := s.ClearContainer(ctx, key, uint16(c.Kind())); err != nil {
				return err
			}
			if err := s.SaveContainer(ctx, containerSlots(key, c)); err != nil {
				return err
			}
		}
		return s.UpdateLand(ctx, row)
	}); err != nil {
		return err
	}

	if err := m.registry.Install(ident, ext); err != nil {
		return fmt.Errorf("install exterior appearance: %w: %w", ErrInternal, err)
	}
	if err := m.registry.Install(ident, in); err != nil {
		return fmt.Errorf("install interior appearance: %w: %w", ErrInternal, err)
	}
	*e = next
	m.houses[key] = house
	m.refreshHouseModels(ctx, ident)

	m.notifier.ContainerUpdated(actorID, ident, ext.Snapshot())
	m.notifier.ContainerUpdated(actorID, ident, in.Snapshot())
	m.notifier.LandUpdated(next)
	m.notifier.HouseBuilt(actorID, ident, houseID)
	m.notifier.EntranceRegistered(zone.Entrance{Estate: ident, HouseID: houseID})
	m.logger.Info("Estate built", zap.Stringer("land", ident), zap.Uint64("house_id", houseID), zap.Uint32("preset", preset.ID))
	return nil
}

// DemolishEstate tears down the house of an owned plot. Every placed and
// storeroom container must be empty; the appearance items are destroyed.
func (m *Manager) DemolishEstate(ctx context.Context, actorID uint64, ident land.Identity) error {
	e, err := m.owned(ident, actorID)
	if err != nil {
		return err
	}
	key := ident.Pack()
	house, built := m.houses[key]
	if !built {
		return fmt.Errorf("land %s: %w", ident, ErrNoHouse)
	}

	if err := m.requireEmpty(ident); err != nil {
		return err
	}

	var doomed []uint64
	appearance := []inventory.Kind{inventory.KindExteriorAppearance, inventory.KindInteriorAppearance}
	for _, kind := range appearance {
		if c, ok := m.registry.Container(ident, kind); ok {
			for _, slot := range c.Slots() {
				it, _ := c.Item(slot)
				doomed = append(doomed, it.UID)
			}
		}
	}

	next := *e
	next.Status = land.StatusSold
	next.HouseID = 0
	next.Name = ""
	next.Comment = ""
	next.Welcome = 0
	next.BuildTime = 0
	next.Endorsements = 0

	row := models.LandFromEntry(&next)
	if err := m.persist(ctx, "demolish estate", func(s store.Store) error {
		for _, kind := range appearance {
			if err := s.ClearContainer(ctx, key, uint16(kind)); err != nil {
				return err
			}
		}
		for _, uid := range doomed {
			if err := s.DeleteItem(ctx, uid); err != nil {
				return err
			}
		}
		if err := s.DeleteHouse(ctx, house.ID); err != nil {
			return err
		}
		return s.UpdateLand(ctx, row)
	}); err != nil {
		return err
	}

	ext, err := m.registry.Replace(ident, inventory.KindExteriorAppearance, inventory.ExteriorAppearanceSlots, false)
	if err != nil {
		return fmt.Errorf("reset exterior appearance: %w: %w", ErrInternal, err)
	}
	in, err := m.registry.Replace(ident, inventory.KindInteriorAppearance, inventory.InteriorAppearanceSlots, false)
	if err != nil {
		return fmt.Errorf("reset interior appearance: %w: %w", ErrInternal, err)
	}
	delete(m.houses, key)
	*e = next

	m.notifier.ContainerUpdated(actorID, ident, ext.Snapshot())
	m.notifier.ContainerUpdated(actorID, ident, in.Snapshot())
	m.notifier.LandUpdated(next)
	m.logger.Info("Estate demolished", zap.Stringer("land", ident), zap.Uint64("house_id", house.ID))
	return nil
}

func validText(s string, max int) bool {
	n := utf8.RuneCountInString(s)
	return utf8.ValidString(s) && n <= max
}

// RenameEstate changes the name of an owned house.
func (m *Manager) RenameEstate(ctx context.Context, actorID uint64, ident land.Identity, name string) error {
	if name == "" || !validText(name, MaxHouseNameLength) {
		return fmt.Errorf("house name %q: %w", name, ErrInvalidText)
	}
	return m.updateHouse(ctx, actorID, ident, "rename estate", func(h *House, e *land.Entry) {
		h.Name = name
		e.Name = name
	})
}

// UpdateGreeting changes the greeting of an owned house. An empty greeting clears it.
func (m *Manager) UpdateGreeting(ctx context.Context, actorID uint64, ident land.Identity, greeting string) error {
	if !validText(greeting, MaxGreetingLength) {
		return fmt.Errorf("greeting: %w", ErrInvalidText)
	}
	return m.updateHouse(ctx, actorID, ident, "update greeting", func(h *House, e *land.Entry) {
		h.Greeting = greeting
		e.Comment = greeting
	})
}

func (m *Manager) updateHouse(ctx context.Context, actorID uint64, ident land.Identity, op string, apply func(*House, *land.Entry)) error {
	e, err := m.owned(ident, actorID)
	if err != nil {
		return err
	}
	key := ident.Pack()
	house, built := m.houses[key]
	if !built {
		return fmt.Errorf("land %s: %w", ident, ErrNoHouse)
	}

	nextEntry := *e
	apply(&house, &nextEntry)

	row := models.House{
		HouseID:      house.ID,
		LandSetID:    uint32(house.LandSetID),
		BuildTime:    house.BuildTime,
		HouseName:    house.Name,
		Welcome:      nextEntry.Welcome,
		Comment:      house.Greeting,
		Endorsements: nextEntry.Endorsements,
	}
	if err := m.persist(ctx, op, func(s store.Store) error {
		return s.UpdateHouse(ctx, row)
	}); err != nil {
		return err
	}

	m.houses[key] = house
	*e = nextEntry
	m.notifier.LandUpdated(nextEntry)
	return nil
}

// DecayPrices lowers the price of every plot that has been for sale for a
// full decay interval since its last price change. It returns how many plots changed.
func (m *Manager) DecayPrices(ctx context.Context) (int, error) {
	interval := m.cfg.DecayInterval()
	if interval <= 0 {
		return 0, nil
	}
	now := m.now().Unix()
	step := int64(interval.Seconds())

	type change struct {
		entry *land.Entry
		next  land.Entry
	}
	var changes []change
	m.lands.Each(func(e *land.Entry) {
		if e.Status != land.StatusForSale || now-e.UpdateTime < step {
			return
		}
		floor := m.cfg.FloorPrice(e.Size)
		if e.CurrentPrice <= floor {
			return
		}
		price := floor
		if cut := m.cfg.DecayStep(e.Size); e.CurrentPrice > floor+cut {
			price = e.CurrentPrice - cut
		}
		next := *e
		next.CurrentPrice = price
		next.UpdateTime = now
		changes = append(changes, change{entry: e, next: next})
	})
	if len(changes) == 0 {
		return 0, nil
	}

	if err := m.persist(ctx, "decay prices", func(s store.Store) error {
		for _, c := range changes {
			if err := s.UpdateLand(ctx, models.LandFromEntry(&c.next)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	for _, c := range changes {
		*c.entry = c.next
		m.notifier.LandUpdated(c.next)
	}
	m.logger.Info("Land prices decayed", zap.Int("lands", len(changes)))
	return len(changes), nil
}

// containerSlots builds the slot rows of every item in c.
func containerSlots(landIdent uint64, c *inventory.Container) []models.InventorySlot {
	slots := make([]models.InventorySlot, 0, c.Len())
	for _, slot := range c.Slots() {
		it, _ := c.Item(slot)
		slots = append(slots, models.InventorySlot{
			LandIdent:   landIdent,
			ContainerID: uint16(c.Kind()),
			SlotID:      slot,
			ItemID:      it.UID,
		})
	}
	return slots
}
