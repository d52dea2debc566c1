package housing

import (
	"context"
	"testing"

	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Init(t *testing.T) {
	f := newFixture(t, land.SizeCottage)

	lands := f.mgr.lands.Get(mist)
	assert.Len(t, lands, land.WardSize)

	t.Run("Boot Containers", func(t *testing.T) {
		containers := f.mgr.registry.ContainersFor(plot(0))
		_, hasPair4 := containers[inventory.KindInteriorPlacedItems4]
		_, hasPair5 := containers[inventory.KindInteriorPlacedItems5]
		assert.True(t, hasPair4)
		assert.False(t, hasPair5, "a cottage holds 200 interior items in four pairs")

		ext, ok := containers[inventory.KindExteriorPlacedItems]
		require.True(t, ok)
		assert.Equal(t, uint16(20), ext.Capacity())
		app := containers[inventory.KindInteriorAppearance]
		assert.Equal(t, uint16(inventory.InteriorAppearanceSlots), app.Capacity())
		assert.False(t, app.MultiStorage())
	})

	t.Run("Incomplete Ward Fails", func(t *testing.T) {
		db := openStore(t)
		rows := wardRows(testConfig(), mist, land.SizeCottage)
		_, err := db.SeedLands(context.Background(), rows[:59])
		require.NoError(t, err)

		m := NewManager(testConfig(), testWorld, Deps{Store: db, Catalog: testCatalog(), Bags: f.chars, Wallet: f.chars})
		assert.ErrorIs(t, m.Init(context.Background()), land.ErrWardIncomplete)
	})
}

func TestManager_PurchaseLand(t *testing.T) {
	ctx := context.Background()

	t.Run("Purchase Then Second Plot", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		price := f.mgr.cfg.MaxPrice(land.SizeCottage)
		require.NoError(t, f.chars.Credit(alice, price*2))

		require.NoError(t, f.mgr.PurchaseLand(ctx, alice, plot(5), PurchasePrivate))
		e, _ := f.mgr.lands.Entry(plot(5))
		assert.Equal(t, land.StatusSold, e.Status)
		assert.Equal(t, uint64(alice), e.OwnerID)
		assert.Equal(t, land.TypePrivate, e.Type)
		assert.Equal(t, price, f.chars.Balance(alice))

		row := f.landRow(t, 5)
		assert.Equal(t, uint64(alice), row.OwnerID)
		assert.Equal(t, uint8(land.StatusSold), row.Status)

		before, _ := f.mgr.lands.Entry(plot(7))
		snapshot := *before
		err := f.mgr.PurchaseLand(ctx, alice, plot(7), PurchasePrivate)
		assert.ErrorIs(t, err, ErrAlreadyOwnsLand)
		after, _ := f.mgr.lands.Entry(plot(7))
		assert.Empty(t, cmp.Diff(snapshot, *after))
		assert.Equal(t, price, f.chars.Balance(alice))
	})

	t.Run("Refusals", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		f.own(t, alice, 1)

		assert.ErrorIs(t, f.mgr.PurchaseLand(ctx, bob, plot(1), PurchasePrivate), ErrNotAvailable)
		assert.ErrorIs(t, f.mgr.PurchaseLand(ctx, bob, plot(2), PurchasePrivate), ErrNotEnoughFunds)

		require.NoError(t, f.chars.Credit(bob, 1<<40))
		assert.ErrorIs(t, f.mgr.PurchaseLand(ctx, bob, plot(2), PurchaseFreeCompany), ErrInternal)
		assert.ErrorIs(t, f.mgr.PurchaseLand(ctx, bob, mist.Identity(testWorld, 60), PurchasePrivate), ErrInternal)
		assert.ErrorIs(t, f.mgr.PurchaseLand(ctx, bob, mist.Identity(1, 2), PurchasePrivate), ErrInternal)
		assert.Equal(t, uint64(1<<40), f.chars.Balance(bob))
	})

	t.Run("Store Failure Refunds", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		price := f.mgr.cfg.MaxPrice(land.SizeCottage)
		require.NoError(t, f.chars.Credit(alice, price))
		f.store.failNext(2)

		err := f.mgr.PurchaseLand(ctx, alice, plot(5), PurchasePrivate)
		assert.ErrorIs(t, err, ErrStore)
		assert.ErrorIs(t, err, errFlaky)
		assert.Equal(t, 2, f.store.attempts, "one retry is configured")
		assert.Equal(t, price, f.chars.Balance(alice))

		e, _ := f.mgr.lands.Entry(plot(5))
		assert.Equal(t, land.StatusForSale, e.Status)
		assert.Zero(t, e.OwnerID)
		assert.Zero(t, f.landRow(t, 5).OwnerID)
	})

	t.Run("Retry Succeeds", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		require.NoError(t, f.chars.Credit(alice, f.mgr.cfg.MaxPrice(land.SizeCottage)))
		f.store.failNext(1)

		require.NoError(t, f.mgr.PurchaseLand(ctx, alice, plot(5), PurchasePrivate))
		assert.Equal(t, uint64(alice), f.landRow(t, 5).OwnerID)
	})
}

func TestManager_RelinquishLand(t *testing.T) {
	ctx := context.Background()

	t.Run("Resets Plot", func(t *testing.T) {
		f := newFixture(t, land.SizeHouse)
		ident := f.own(t, alice, 3)
		e, _ := f.mgr.lands.Entry(ident)
		e.CurrentPrice = 1

		assert.ErrorIs(t, f.mgr.RelinquishLand(ctx, bob, ident), ErrPermissionDenied)
		require.NoError(t, f.mgr.RelinquishLand(ctx, alice, ident))

		assert.Equal(t, land.StatusForSale, e.Status)
		assert.Equal(t, land.TypeNone, e.Type)
		assert.Zero(t, e.OwnerID)
		assert.Equal(t, f.mgr.cfg.PriceHouse, e.CurrentPrice)
		_, owns := f.mgr.LandByOwner(alice)
		assert.False(t, owns)
	})

	t.Run("House Standing", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		ident := f.build(t, alice, 5)

		entryBefore, _ := f.mgr.lands.Entry(ident)
		wantEntry := *entryBefore
		wantHouse := f.mgr.houses[ident.Pack()]
		f.notes.reset()

		err := f.mgr.RelinquishLand(ctx, alice, ident)
		assert.ErrorIs(t, err, ErrHouseStanding)

		entryAfter, _ := f.mgr.lands.Entry(ident)
		assert.Empty(t, cmp.Diff(wantEntry, *entryAfter))
		assert.Empty(t, cmp.Diff(wantHouse, f.mgr.houses[ident.Pack()]))
		assert.Empty(t, f.notes.kinds())
	})

	t.Run("Yard And Storeroom Items", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		ident := f.own(t, alice, 5)
		f.give(t, alice, 0, 900, furnitureA)
		require.NoError(t, f.mgr.PlaceItem(ctx, PlaceRequest{ActorID: alice, Zone: outside(), Plot: 5, Source: inventory.KindBag0}))

		assert.ErrorIs(t, f.mgr.RelinquishLand(ctx, alice, ident), ErrEstateNotEmpty)

		require.NoError(t, f.mgr.RemoveItem(ctx, RemoveRequest{ActorID: alice, Zone: outside(), Plot: 5, Container: inventory.KindExteriorPlacedItems, ToStoreroom: true}))
		assert.ErrorIs(t, f.mgr.RelinquishLand(ctx, alice, ident), ErrEstateNotEmpty)

		e, _ := f.mgr.lands.Entry(ident)
		assert.Equal(t, uint64(alice), e.OwnerID)
		assert.Equal(t, land.StatusSold, e.Status)
		assert.Equal(t, uint64(alice), f.landRow(t, 5).OwnerID)
		assert.Equal(t, 1, f.holders(alice, ident, 900))
	})

	t.Run("Next Owner Starts Empty", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		ident := f.own(t, alice, 5)
		f.give(t, alice, 0, 900, furnitureA)
		require.NoError(t, f.mgr.PlaceItem(ctx, PlaceRequest{ActorID: alice, Zone: outside(), Plot: 5, Source: inventory.KindBag0}))
		require.NoError(t, f.mgr.RemoveItem(ctx, RemoveRequest{ActorID: alice, Zone: outside(), Plot: 5, Container: inventory.KindExteriorPlacedItems}))
		require.NoError(t, f.mgr.RelinquishLand(ctx, alice, ident))

		f.own(t, bob, 5)
		for _, kind := range inventory.Kinds() {
			if c, ok := f.mgr.registry.Container(ident, kind); ok && (kind.IsPlaced() || kind.IsStoreroom()) {
				assert.True(t, c.Empty(), "%s", kind)
			}
		}
		err := f.mgr.RemoveItem(ctx, RemoveRequest{ActorID: bob, Zone: outside(), Plot: 5, Container: inventory.KindExteriorPlacedItems})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Zero(t, f.holders(bob, ident, 900))
	})
}

func TestManager_BuildEstate(t *testing.T) {
	ctx := context.Background()

	t.Run("Preset Skips Zero Slots", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		ident := f.own(t, alice, 5)
		f.notes.reset()

		require.NoError(t, f.mgr.BuildEstate(ctx, alice, ident, permitID))

		ext, ok := f.mgr.registry.Container(ident, inventory.KindExteriorAppearance)
		require.True(t, ok)
		roof, ok := ext.Item(inventory.ExteriorRoof)
		require.True(t, ok)
		assert.Equal(t, uint32(12), roof.CatalogID)
		assert.Equal(t, uint16(20), ext.Capacity())
		assert.True(t, ext.MultiStorage())

		in, ok := f.mgr.registry.Container(ident, inventory.KindInteriorAppearance)
		require.True(t, ok)
		_, attic := in.Item(inventory.InteriorAtticWall)
		assert.False(t, attic, "zero preset values are not provisioned")
		assert.Equal(t, 3, in.Len())

		e, _ := f.mgr.lands.Entry(ident)
		assert.Equal(t, land.StatusPrivateHouse, e.Status)
		house, err := f.mgr.House(ident)
		require.NoError(t, err)
		assert.Equal(t, "Estate #6", house.Name)
		assert.Equal(t, e.HouseID, house.ID)
		assert.Equal(t, Model{ModelID: 120}, house.ExteriorModels[inventory.ExteriorRoof])
		assert.Equal(t, Model{ModelID: 160}, house.InteriorModels[inventory.InteriorWall])

		assert.Equal(t, []string{"container", "container", "land", "built", "entrance"}, f.notes.kinds())
		assert.Len(t, f.inventoryRows(t, ident), 7)
		assert.Equal(t, house.ID, f.landRow(t, 5).HouseID)
	})

	t.Run("Survives Restart", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		ident := f.build(t, alice, 5)
		want, _ := f.mgr.House(ident)

		f.boot(t)
		got, err := f.mgr.House(ident)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(want, got))

		ext, _ := f.mgr.registry.Container(ident, inventory.KindExteriorAppearance)
		assert.Equal(t, uint16(20), ext.Capacity())
		assert.Equal(t, 4, ext.Len())
	})

	t.Run("Refusals", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		assert.ErrorIs(t, f.mgr.BuildEstate(ctx, alice, plot(5), permitID), ErrPermissionDenied)

		ident := f.own(t, alice, 5)
		assert.ErrorIs(t, f.mgr.BuildEstate(ctx, alice, ident, 6542), ErrInvalidPreset)
		assert.ErrorIs(t, f.mgr.BuildEstate(ctx, alice, ident, 1), ErrInvalidPreset)

		require.NoError(t, f.mgr.BuildEstate(ctx, alice, ident, permitID))
		assert.ErrorIs(t, f.mgr.BuildEstate(ctx, alice, ident, permitID), ErrHouseStanding)
	})

	t.Run("Store Failure", func(t *testing.T) {
		f := newFixture(t, land.SizeCottage)
		ident := f.own(t, alice, 5)
		f.store.failNext(2)

		assert.ErrorIs(t, f.mgr.BuildEstate(ctx, alice, ident, permitID), ErrStore)
		_, err := f.mgr.House(ident)
		assert.ErrorIs(t, err, ErrNoHouse)
		app, _ := f.mgr.registry.Container(ident, inventory.KindExteriorAppearance)
		assert.True(t, app.Empty())
		assert.Equal(t, uint16(inventory.ExteriorAppearanceSlots), app.Capacity())
		assert.Empty(t, f.inventoryRows(t, ident))
	})
}

func TestManager_DemolishEstate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, land.SizeCottage)
	ident := f.build(t, alice, 5)

	f.give(t, alice, 0, 500, furnitureA)
	require.NoError(t, f.mgr.PlaceItem(ctx, PlaceRequest{ActorID: alice, Zone: outside(), Plot: 5, Source: inventory.KindBag0}))
	assert.ErrorIs(t, f.mgr.DemolishEstate(ctx, alice, ident), ErrEstateNotEmpty)

	require.NoError(t, f.mgr.RemoveItem(ctx, RemoveRequest{ActorID: alice, Zone: outside(), Plot: 5, Container: inventory.KindExteriorPlacedItems}))
	assert.ErrorIs(t, f.mgr.DemolishEstate(ctx, bob, ident), ErrPermissionDenied)
	require.NoError(t, f.mgr.DemolishEstate(ctx, alice, ident))

	e, _ := f.mgr.lands.Entry(ident)
	assert.Equal(t, land.StatusSold, e.Status)
	assert.Zero(t, e.HouseID)
	_, err := f.mgr.House(ident)
	assert.ErrorIs(t, err, ErrNoHouse)
	assert.ErrorIs(t, f.mgr.DemolishEstate(ctx, alice, ident), ErrNoHouse)
	assert.Empty(t, f.inventoryRows(t, ident))

	app, _ := f.mgr.registry.Container(ident, inventory.KindInteriorAppearance)
	assert.Equal(t, uint16(inventory.InteriorAppearanceSlots), app.Capacity())

	require.NoError(t, f.mgr.RelinquishLand(ctx, alice, ident))
}

func TestManager_DemolishEstate_StoreroomItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, land.SizeCottage)
	ident := f.build(t, alice, 5)
	f.give(t, alice, 0, 500, furnitureA)
	require.NoError(t, f.mgr.PlaceItem(ctx, PlaceRequest{ActorID: alice, Zone: inside(ident), Source: inventory.KindBag0}))
	require.NoError(t, f.mgr.RemoveItem(ctx, RemoveRequest{ActorID: alice, Zone: inside(ident), Container: inventory.KindInteriorPlacedItems1, ToStoreroom: true}))
	f.notes.reset()

	assert.ErrorIs(t, f.mgr.DemolishEstate(ctx, alice, ident), ErrEstateNotEmpty)

	_, err := f.mgr.House(ident)
	assert.NoError(t, err)
	e, _ := f.mgr.lands.Entry(ident)
	assert.Equal(t, land.StatusPrivateHouse, e.Status)
	assert.Len(t, f.inventoryRows(t, ident), 8)
	assert.Empty(t, f.notes.kinds())
}

func TestManager_EstateTexts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, land.SizeCottage)

	ident := f.own(t, alice, 8)
	assert.ErrorIs(t, f.mgr.RenameEstate(ctx, alice, ident, "Lakeside"), ErrNoHouse)
	require.NoError(t, f.mgr.BuildEstate(ctx, alice, ident, permitID))

	require.NoError(t, f.mgr.RenameEstate(ctx, alice, ident, "Lakeside"))
	require.NoError(t, f.mgr.UpdateGreeting(ctx, alice, ident, "Welcome, traveller."))
	assert.ErrorIs(t, f.mgr.RenameEstate(ctx, alice, ident, ""), ErrInvalidText)
	assert.ErrorIs(t, f.mgr.RenameEstate(ctx, alice, ident, "A name far too long to fit"), ErrInvalidText)
	assert.ErrorIs(t, f.mgr.UpdateGreeting(ctx, bob, ident, "hi"), ErrPermissionDenied)

	greeting, err := f.mgr.EstateGreeting(ident)
	require.NoError(t, err)
	assert.Equal(t, "Welcome, traveller.", greeting)

	row := f.landRow(t, 8)
	assert.Equal(t, "Lakeside", row.HouseName)
	assert.Equal(t, "Welcome, traveller.", row.Comment)
}

func TestManager_DecayPrices(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, land.SizeCottage)
	f.own(t, alice, 0)

	n, err := f.mgr.DecayPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 59, n, "seeded lands have never been updated")

	e, _ := f.mgr.lands.Entry(plot(1))
	assert.Equal(t, uint64(2850000), e.CurrentPrice)
	assert.Equal(t, uint64(2850000), f.landRow(t, 1).LandPrice)

	n, err = f.mgr.DecayPrices(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "the interval has not passed")

	for i := 0; i < 20; i++ {
		f.now = f.now.Add(f.mgr.cfg.DecayInterval())
		_, err := f.mgr.DecayPrices(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, f.mgr.cfg.FloorPrice(land.SizeCottage), e.CurrentPrice)

	owned, _ := f.mgr.lands.Entry(plot(0))
	assert.Equal(t, f.mgr.cfg.PriceCottage, owned.CurrentPrice)
}
