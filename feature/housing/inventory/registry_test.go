package inventory

import (
	"errors"
	"testing"

	"housing-manager/feature/housing/land"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var plot = land.Identity{WorldID: 67, TerritoryTypeID: 339, WardNum: 2, LandID: 7}

func entryFor(size land.Size) *land.Entry {
	ext, in, _ := size.Capacity()
	return &land.Entry{SetID: plot.SetID(), LandID: plot.LandID, Size: size, MaxPlacedExternalItems: ext, MaxPlacedInternalItems: in}
}

func TestRegistry_ContainersFor(t *testing.T) {
	r := NewRegistry()
	cs := r.ContainersFor(plot)
	assert.Empty(t, cs)

	_, ok := r.Container(plot, KindExteriorPlacedItems)
	assert.False(t, ok)
	assert.Equal(t, []land.Identity{plot}, r.Estates())
}

func TestRegistry_Provision(t *testing.T) {
	r := NewRegistry()

	c, err := r.Provision(plot, KindExteriorPlacedItems, 20, true)
	require.NoError(t, err)
	require.NoError(t, c.Set(0, &Item{UID: 1}))

	again, err := r.Provision(plot, KindExteriorPlacedItems, 20, true)
	require.NoError(t, err)
	assert.Same(t, c, again)
	assert.Equal(t, 1, again.Len())

	_, err = r.Provision(plot, KindExteriorPlacedItems, 30, true)
	assert.True(t, errors.Is(err, ErrProvisionConflict))

	_, err = r.Provision(plot, Kind(12), 1, false)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestRegistry_Replace(t *testing.T) {
	r := NewRegistry()
	old, err := r.Provision(plot, KindExteriorAppearance, ExteriorAppearanceSlots, true)
	require.NoError(t, err)

	fresh, err := r.Replace(plot, KindExteriorAppearance, 20, true)
	require.NoError(t, err)
	assert.NotSame(t, old, fresh)
	assert.Equal(t, uint16(20), fresh.Capacity())

	require.NoError(t, r.Install(plot, old))
	got, _ := r.Container(plot, KindExteriorAppearance)
	assert.Same(t, old, got)
	assert.Error(t, r.Install(plot, NewContainer(KindExteriorStoreroom, 20, Table, false)))

	_, err = r.Replace(plot, KindExteriorPlacedItems, 20, true)
	assert.Error(t, err)
}

func TestRegistry_ProvisionLand(t *testing.T) {
	cases := []struct {
		size  land.Size
		pairs int
		ext   uint16
	}{
		{land.SizeCottage, 4, 20},
		{land.SizeHouse, 6, 30},
		{land.SizeMansion, 8, 40},
	}
	for _, tc := range cases {
		t.Run(tc.size.String(), func(t *testing.T) {
			r := NewRegistry()
			require.NoError(t, r.ProvisionLand(plot, entryFor(tc.size)))

			for i := 0; i < InteriorPairs; i++ {
				room, okRoom := r.Container(plot, InteriorPlaced[i])
				store, okStore := r.Container(plot, InteriorStorerooms[i])
				assert.Equal(t, i < tc.pairs, okRoom, "pair %d", i)
				assert.Equal(t, i < tc.pairs, okStore, "pair %d", i)
				if okRoom {
					assert.Equal(t, uint16(PairSlots), room.Capacity())
					assert.Equal(t, uint16(PairSlots), store.Capacity())
				}
			}

			ext, ok := r.Container(plot, KindExteriorPlacedItems)
			require.True(t, ok)
			assert.Equal(t, tc.ext, ext.Capacity())
			assert.Equal(t, Table, ext.Table())
			extStore, ok := r.Container(plot, KindExteriorStoreroom)
			require.True(t, ok)
			assert.Equal(t, tc.ext, extStore.Capacity())

			in, _ := r.Container(plot, KindInteriorAppearance)
			assert.Equal(t, uint16(InteriorAppearanceSlots), in.Capacity())
			out, _ := r.Container(plot, KindExteriorAppearance)
			assert.Equal(t, uint16(ExteriorAppearanceSlots), out.Capacity())

			// Boot provisioning is idempotent.
			require.NoError(t, r.ProvisionLand(plot, entryFor(tc.size)))
		})
	}
}

func TestRegistry_Hydrate(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := NewRegistry()
	require.NoError(t, r.ProvisionLand(plot, entryFor(land.SizeCottage)))

	other := plot.WithLand(8)
	records := []Record{
		{LandIdent: plot.Pack(), Container: uint16(KindInteriorPlacedItems2), Slot: 3, Item: Item{UID: 1, StackSize: 1, Pos: Position{1, 2, 3}, Rot: 9}},
		{LandIdent: plot.Pack(), Container: uint16(KindExteriorStoreroom), Slot: 0, Item: Item{UID: 2, StackSize: 1}},
		// out of range
		{LandIdent: plot.Pack(), Container: uint16(KindExteriorStoreroom), Slot: 20, Item: Item{UID: 3}},
		// pair beyond the cottage limit
		{LandIdent: plot.Pack(), Container: uint16(KindInteriorPlacedItems6), Slot: 0, Item: Item{UID: 4}},
		// unknown kind
		{LandIdent: plot.Pack(), Container: 9, Slot: 0, Item: Item{UID: 5}},
		// land never provisioned
		{LandIdent: other.Pack(), Container: uint16(KindExteriorStoreroom), Slot: 0, Item: Item{UID: 6}},
		// duplicate slot
		{LandIdent: plot.Pack(), Container: uint16(KindExteriorStoreroom), Slot: 0, Item: Item{UID: 7}},
	}

	linked, skipped := r.Hydrate(records, zap.New(core))
	assert.Equal(t, 2, linked)
	assert.Equal(t, 5, skipped)
	assert.Equal(t, 5, logs.Len())

	room, _ := r.Container(plot, KindInteriorPlacedItems2)
	it, ok := room.Item(3)
	require.True(t, ok)
	assert.Equal(t, Position{1, 2, 3}, it.Pos)
	assert.Equal(t, uint16(9), it.Rot)

	c, slot, ok := r.Locate(plot, 2)
	require.True(t, ok)
	assert.Equal(t, KindExteriorStoreroom, c.Kind())
	assert.Equal(t, uint16(0), slot)

	_, _, ok = r.Locate(plot, 7)
	assert.False(t, ok)
}

func TestRegistry_Holder(t *testing.T) {
	r := NewRegistry()
	other := land.Identity{WorldID: 67, TerritoryTypeID: 340, WardNum: 0, LandID: 1}
	require.NoError(t, r.ProvisionLand(plot, entryFor(land.SizeCottage)))
	require.NoError(t, r.ProvisionLand(other, entryFor(land.SizeCottage)))

	c, _ := r.Container(other, KindExteriorStoreroom)
	require.NoError(t, c.Set(3, &Item{UID: 42, CatalogID: 7001, StackSize: 1}))

	ident, kind, ok := r.Holder(42)
	require.True(t, ok)
	assert.Equal(t, other, ident)
	assert.Equal(t, KindExteriorStoreroom, kind)

	_, _, ok = r.Holder(43)
	assert.False(t, ok)
}
