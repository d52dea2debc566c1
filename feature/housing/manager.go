package housing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"housing-manager/feature/gamedata"
	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/models"
	"housing-manager/feature/housing/store"
	"housing-manager/feature/housing/zone"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Bags is the carried inventory of characters.
type Bags interface {
	Peek(actorID uint64, kind inventory.Kind, slot uint16) (*inventory.Item, error)
	Take(actorID uint64, kind inventory.Kind, slot uint16) (*inventory.Item, error)
	Put(actorID uint64, kind inventory.Kind, slot uint16, item *inventory.Item) error
	FreeSlot(actorID uint64) (inventory.Kind, uint16, bool)
}

// Wallet is the currency of characters.
type Wallet interface {
	Balance(actorID uint64) uint64
	Debit(actorID, amount uint64) error
	Credit(actorID, amount uint64) error
}

// Deps are the collaborators of a Manager.
type Deps struct {
	Store    store.Store
	Catalog  gamedata.Catalog
	Notifier zone.Notifier
	Bags     Bags
	Wallet   Wallet
	Logger   *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Manager owns the land cache, the container registry and the houses, and
// implements every housing operation on top of them.
//
// Manager performs no locking. Callers must serialize every call, which
// Service does.
type Manager struct {
	cfg     Config
	worldID uint16

	lands    *land.Cache
	registry *inventory.Registry
	houses   map[uint64]House

	store    store.Store
	catalog  gamedata.Catalog
	notifier zone.Notifier
	bags     Bags
	wallet   Wallet
	logger   *zap.Logger
	now      func() time.Time
}

// NewManager creates a manager for one world. Init must run before any operation.
func NewManager(cfg Config, worldID uint16, deps Deps) *Manager {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = zone.NewLogNotifier(logger)
	}
	return &Manager{
		cfg:      cfg,
		worldID:  worldID,
		lands:    land.NewCache(worldID, logger),
		registry: inventory.NewRegistry(),
		houses:   make(map[uint64]House),
		store:    deps.Store,
		catalog:  deps.Catalog,
		notifier: notifier,
		bags:     deps.Bags,
		wallet:   deps.Wallet,
		logger:   logger,
		now:      now,
	}
}

// Init loads lands and estate inventories from the store. A ward that does
// not hold exactly land.WardSize lands fails with land.ErrWardIncomplete.
func (m *Manager) Init(ctx context.Context) error {
	var (
		landRows []models.LandView
		invRows  []models.InventoryView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := m.store.QueryLands(gctx)
		landRows = rows
		return err
	})
	g.Go(func() error {
		rows, err := m.store.QueryInventory(gctx)
		invRows = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load housing state: %w: %w", ErrStore, err)
	}

	entries := make([]land.Entry, len(landRows))
	for i, row := range landRows {
		entries[i] = row.Entry()
	}
	if err := m.lands.Load(entries); err != nil {
		return err
	}

	m.registry = inventory.NewRegistry()
	m.houses = make(map[uint64]House)
	var provisionErr error
	m.lands.Each(func(e *land.Entry) {
		ident := e.Identity(m.worldID)
		if err := m.registry.ProvisionLand(ident, e); err != nil {
			provisionErr = errors.Join(provisionErr, err)
			return
		}
		if e.HouseID == 0 {
			return
		}
		if err := m.provisionBuiltAppearance(ident, e); err != nil {
			provisionErr = errors.Join(provisionErr, err)
			return
		}
		m.houses[ident.Pack()] = House{
			ID:        e.HouseID,
			LandSetID: e.SetID,
			Identity:  ident,
			Name:      e.Name,
			Greeting:  e.Comment,
			BuildTime: e.BuildTime,
		}
	})
	if provisionErr != nil {
		return fmt.Errorf("provision estate containers: %w: %w", ErrInternal, provisionErr)
	}

	records := make([]inventory.Record, len(invRows))
	for i, row := range invRows {
		records[i] = row.Record()
	}
	linked, skipped := m.registry.Hydrate(records, m.logger)

	for key := range m.houses {
		m.refreshHouseModels(ctx, land.Unpack(key))
	}

	m.logger.Info("Housing initialized",
		zap.Int("wards", len(m.lands.Wards())),
		zap.Int("houses", len(m.houses)),
		zap.Int("items", linked),
		zap.Int("skipped_items", skipped))
	return nil
}

// provisionBuiltAppearance sizes the appearance containers of a built house.
func (m *Manager) provisionBuiltAppearance(ident land.Identity, e *land.Entry) error {
	if _, err := m.registry.Replace(ident, inventory.KindExteriorAppearance, e.MaxPlacedExternalItems, true); err != nil {
		return err
	}
	_, err := m.registry.Replace(ident, inventory.KindInteriorAppearance, e.MaxPlacedInternalItems, true)
	return err
}

// refreshHouseModels derives the house models from its appearance containers.
func (m *Manager) refreshHouseModels(ctx context.Context, ident land.Identity) {
	key := ident.Pack()
	house, ok := m.houses[key]
	if !ok {
		return
	}
	house.ExteriorModels = [inventory.ExteriorAppearanceSlots]Model{}
	house.InteriorModels = [inventory.InteriorAppearanceSlots]Model{}

	if c, ok := m.registry.Container(ident, inventory.KindExteriorAppearance); ok {
		for _, slot := range c.Slots() {
			if int(slot) >= len(house.ExteriorModels) {
				continue
			}
			it, _ := c.Item(slot)
			house.ExteriorModels[slot] = Model{ModelID: m.additionalData(ctx, it.CatalogID), Stain: it.Stain}
		}
	} else {
		m.logger.Error("Estate has no exterior appearance container", zap.Stringer("estate", ident))
	}

	if c, ok := m.registry.Container(ident, inventory.KindInteriorAppearance); ok {
		for _, slot := range c.Slots() {
			if int(slot) >= len(house.InteriorModels) {
				continue
			}
			it, _ := c.Item(slot)
			house.InteriorModels[slot] = Model{ModelID: m.additionalData(ctx, it.CatalogID)}
		}
	} else {
		m.logger.Error("Estate has no interior appearance container", zap.Stringer("estate", ident))
	}

	m.houses[key] = house
}

func (m *Manager) additionalData(ctx context.Context, catalogID uint32) uint32 {
	it, err := m.catalog.Item(ctx, catalogID)
	if err != nil {
		m.logger.Warn("Failed to resolve appearance model", zap.Uint32("catalog_id", catalogID), zap.Error(err))
		return 0
	}
	return it.AdditionalData
}

// persist runs fn in one store transaction, retrying failed transactions
// with linear backoff. Callers mutate memory only after persist succeeds.
func (m *Manager) persist(ctx context.Context, op string, fn func(store.Store) error) error {
	attempts := m.cfg.StoreRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = m.store.Atomic(ctx, fn); err == nil {
			return nil
		}
		m.logger.Warn("Housing store transaction failed",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Int("attempts", attempts),
			zap.Error(err))
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(m.cfg.RetryBackoff() * time.Duration(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s: %w: %w", op, ErrStore, ctx.Err())
		case <-timer.C:
		}
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

// entry looks up a land, treating an unknown identity as an internal error.
func (m *Manager) entry(ident land.Identity) (*land.Entry, error) {
	e, ok := m.lands.Entry(ident)
	if !ok || ident.WorldID != m.worldID {
		return nil, fmt.Errorf("land %s: %w", ident, ErrInternal)
	}
	return e, nil
}

// owned looks up a land and checks that actorID owns it.
func (m *Manager) owned(ident land.Identity, actorID uint64) (*land.Entry, error) {
	e, err := m.entry(ident)
	if err != nil {
		return nil, err
	}
	if !e.IsOwnedBy(actorID) {
		return nil, fmt.Errorf("land %s: %w", ident, ErrPermissionDenied)
	}
	return e, nil
}

// WorldID returns the world served by this manager.
func (m *Manager) WorldID() uint16 {
	return m.worldID
}
