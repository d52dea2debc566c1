package housing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"housing-manager/core/database"
	"housing-manager/feature/character"
	"housing-manager/feature/gamedata"
	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/models"
	"housing-manager/feature/housing/store"
	"housing-manager/feature/housing/zone"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testWorld  = 67
	permitID   = 6541
	furnitureA = 7001
	furnitureB = 7002
	alice      = 1001
	bob        = 1002
)

var (
	mist     = land.NewSetID(339, 2)
	errFlaky = errors.New("database is locked")
)

func testConfig() Config {
	return Config{
		StoreRetries:         1,
		RetryBackoffMs:       0,
		DecayIntervalMinutes: 60,
		DecayPercent:         5,
		FloorPercent:         60,
		PriceCottage:         3000000,
		PriceHouse:           16000000,
		PriceMansion:         40000000,
	}
}

// testCatalog holds one permit for preset 3: a cottage without attic or basement.
func testCatalog() *gamedata.Data {
	items := []gamedata.Item{
		{ID: permitID, Name: "Cottage Permit", AdditionalData: 3},
		{ID: 6542, Name: "Broken Permit", AdditionalData: 99},
		{ID: 12, Name: "Cottage Roof", AdditionalData: 120},
		{ID: 13, Name: "Cottage Wall", AdditionalData: 130},
		{ID: 14, Name: "Cottage Window", AdditionalData: 140},
		{ID: 15, Name: "Cottage Door", AdditionalData: 150},
		{ID: 16, Name: "Interior Wall", AdditionalData: 160},
		{ID: 17, Name: "Interior Floor", AdditionalData: 170},
		{ID: 18, Name: "Interior Light", AdditionalData: 180},
		{ID: furnitureA, Name: "Oak Table", StackSize: 1},
		{ID: furnitureB, Name: "Potted Fern", StackSize: 99},
	}
	presets := []gamedata.Preset{{
		ID:               3,
		Name:             "Cottage",
		HouseSize:        0,
		ExteriorRoof:     12,
		ExteriorWall:     13,
		ExteriorWindow:   14,
		ExteriorDoor:     15,
		InteriorWall:     16,
		InteriorFlooring: 17,
		InteriorLighting: 18,
		OtherFloorWall:   0,
	}}
	return gamedata.NewData(items, presets)
}

// flakyStore fails the next n transactions before reaching the database.
type flakyStore struct {
	store.Store
	mu       sync.Mutex
	failures int
	attempts int
}

func (f *flakyStore) failNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = n
}

func (f *flakyStore) Atomic(ctx context.Context, fn func(store.Store) error) error {
	f.mu.Lock()
	f.attempts++
	fail := f.failures > 0
	if fail {
		f.failures--
	}
	f.mu.Unlock()
	if fail {
		return errFlaky
	}
	return f.Store.Atomic(ctx, fn)
}

type event struct {
	kind   string
	actor  uint64
	estate land.Identity
	snap   inventory.Snapshot
	obj    zone.Object
	entry  land.Entry
	reason string
}

// recorder is a zone.Notifier keeping every notification.
type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) add(e event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) ContainerUpdated(actorID uint64, estate land.Identity, snap inventory.Snapshot) {
	r.add(event{kind: "container", actor: actorID, estate: estate, snap: snap})
}
func (r *recorder) ObjectSpawned(obj zone.Object) { r.add(event{kind: "spawn", obj: obj}) }
func (r *recorder) ObjectMoved(actorID uint64, obj zone.Object) {
	r.add(event{kind: "move", actor: actorID, obj: obj})
}
func (r *recorder) ObjectDespawned(obj zone.Object) { r.add(event{kind: "despawn", obj: obj}) }
func (r *recorder) LandUpdated(entry land.Entry)    { r.add(event{kind: "land", entry: entry}) }
func (r *recorder) HouseBuilt(actorID uint64, estate land.Identity, houseID uint64) {
	r.add(event{kind: "built", actor: actorID, estate: estate})
}
func (r *recorder) EntranceRegistered(e zone.Entrance) {
	r.add(event{kind: "entrance", estate: e.Estate})
}
func (r *recorder) Denied(actorID uint64, reason string) {
	r.add(event{kind: "denied", actor: actorID, reason: reason})
}

func (r *recorder) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.kind
	}
	return out
}

func (r *recorder) last(kind string) (event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].kind == kind {
			return r.events[i], true
		}
	}
	return event{}, false
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type fixture struct {
	db      *store.GormStore
	store   *flakyStore
	chars   *character.Registry
	notes   *recorder
	catalog *gamedata.Data
	now     time.Time
	mgr     *Manager
	svc     *Service
}

// wardRows builds 60 for-sale lands of one size at list price.
func wardRows(cfg Config, id land.SetID, size land.Size) []models.Land {
	rows := make([]models.Land, 0, land.WardSize)
	for i := 0; i < land.WardSize; i++ {
		rows = append(rows, models.Land{
			LandSetID: uint32(id),
			LandID:    uint16(i),
			Size:      uint8(size),
			LandPrice: cfg.MaxPrice(size),
		})
	}
	return rows
}

func openStore(t *testing.T) *store.GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	s := store.New(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

// newFixture boots a manager over a fresh database holding one ward of size.
func newFixture(t *testing.T, size land.Size) *fixture {
	t.Helper()
	cfg := testConfig()
	db := openStore(t)
	_, err := db.SeedLands(context.Background(), wardRows(cfg, mist, size))
	require.NoError(t, err)

	f := &fixture{
		db:      db,
		store:   &flakyStore{Store: db},
		chars:   character.NewRegistry(),
		notes:   &recorder{},
		catalog: testCatalog(),
		now:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.boot(t)
	return f
}

// boot creates a new manager over the fixture database, as a restart would.
func (f *fixture) boot(t *testing.T) {
	t.Helper()
	f.mgr = NewManager(testConfig(), testWorld, Deps{
		Store:    f.store,
		Catalog:  f.catalog,
		Notifier: f.notes,
		Bags:     f.chars,
		Wallet:   f.chars,
		Logger:   zap.NewNop(),
		Now:      func() time.Time { return f.now },
	})
	require.NoError(t, f.mgr.Init(context.Background()))
	f.svc = NewService(f.mgr)
}

func plot(id uint16) land.Identity {
	return mist.Identity(testWorld, id)
}

func outside() zone.Context {
	return zone.Exterior{Ward: mist, WorldID: testWorld}
}

func inside(ident land.Identity) zone.Context {
	return zone.Interior{Estate: ident}
}

// own gives actor enough currency and buys the plot.
func (f *fixture) own(t *testing.T, actor uint64, id uint16) land.Identity {
	t.Helper()
	ident := plot(id)
	e, ok := f.mgr.lands.Entry(ident)
	require.True(t, ok)
	require.NoError(t, f.chars.Credit(actor, e.CurrentPrice))
	require.NoError(t, f.mgr.PurchaseLand(context.Background(), actor, ident, PurchasePrivate))
	return ident
}

// build buys the plot and builds the test preset on it.
func (f *fixture) build(t *testing.T, actor uint64, id uint16) land.Identity {
	t.Helper()
	ident := f.own(t, actor, id)
	require.NoError(t, f.mgr.BuildEstate(context.Background(), actor, ident, permitID))
	return ident
}

// give puts a fresh carried item into the actor's first bag.
func (f *fixture) give(t *testing.T, actor uint64, slot uint16, uid uint64, catalogID uint32) {
	t.Helper()
	item := &inventory.Item{UID: uid, CatalogID: catalogID, StackSize: 5, Stain: 2}
	require.NoError(t, f.chars.Put(actor, inventory.KindBag0, slot, item))
}

// fill occupies every free slot of an estate container with stored rows.
func (f *fixture) fill(t *testing.T, ident land.Identity, kind inventory.Kind, firstUID uint64) {
	t.Helper()
	c, ok := f.mgr.registry.Container(ident, kind)
	require.True(t, ok, "container %s", kind)
	uid := firstUID
	for {
		slot, ok := c.FreeSlot()
		if !ok {
			return
		}
		require.NoError(t, c.Set(slot, &inventory.Item{UID: uid, CatalogID: furnitureA, StackSize: 1}))
		uid++
	}
}

func (f *fixture) landRow(t *testing.T, id uint16) models.LandView {
	t.Helper()
	rows, err := f.db.QueryLands(context.Background())
	require.NoError(t, err)
	for _, r := range rows {
		if r.LandSetID == uint32(mist) && r.LandID == id {
			return r
		}
	}
	require.Fail(t, fmt.Sprintf("land %d not found", id))
	return models.LandView{}
}

func (f *fixture) inventoryRows(t *testing.T, ident land.Identity) []models.InventoryView {
	t.Helper()
	rows, err := f.db.QueryInventory(context.Background())
	require.NoError(t, err)
	var out []models.InventoryView
	for _, r := range rows {
		if r.LandIdent == ident.Pack() {
			out = append(out, r)
		}
	}
	return out
}
