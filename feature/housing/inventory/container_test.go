package inventory

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_FreeSlot(t *testing.T) {
	c := NewContainer(KindInteriorPlacedItems1, 3, Table, true)

	slot, ok := c.FreeSlot()
	require.True(t, ok)
	assert.Equal(t, uint16(0), slot)

	require.NoError(t, c.Set(0, &Item{UID: 1}))
	require.NoError(t, c.Set(2, &Item{UID: 3}))
	slot, ok = c.FreeSlot()
	require.True(t, ok)
	assert.Equal(t, uint16(1), slot)

	require.NoError(t, c.Set(1, &Item{UID: 2}))
	_, ok = c.FreeSlot()
	assert.False(t, ok)
	assert.True(t, c.Full())
	assert.Equal(t, []uint16{0, 1, 2}, c.Slots())
}

func TestContainer_Set(t *testing.T) {
	c := NewContainer(KindExteriorStoreroom, 2, Table, true)

	err := c.Set(2, &Item{UID: 1})
	assert.True(t, errors.Is(err, ErrInvalidSlot))

	require.NoError(t, c.Set(1, &Item{UID: 1}))
	err = c.Set(1, &Item{UID: 2})
	assert.True(t, errors.Is(err, ErrSlotOccupied))

	it, ok := c.Remove(1)
	require.True(t, ok)
	assert.Equal(t, uint64(1), it.UID)
	assert.True(t, c.Empty())

	_, ok = c.Remove(1)
	assert.False(t, ok)
}

func TestContainer_Snapshot(t *testing.T) {
	c := NewContainer(KindExteriorPlacedItems, 20, Table, true)
	require.NoError(t, c.Set(5, &Item{UID: 9, CatalogID: 100, StackSize: 1}))
	require.NoError(t, c.Set(1, &Item{UID: 8, CatalogID: 200, StackSize: 1}))

	snap := c.Snapshot()
	assert.Equal(t, KindExteriorPlacedItems, snap.Kind)
	assert.Equal(t, uint16(20), snap.Capacity)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, uint16(1), snap.Items[0].Slot)
	assert.Equal(t, uint64(9), snap.Items[1].Item.UID)

	// Snapshots are copies.
	snap.Items[0].Item.CatalogID = 0
	it, _ := c.Item(1)
	assert.Equal(t, uint32(200), it.CatalogID)
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, uint16(0x8000), QuantizeCoord(0))
	assert.Equal(t, uint16(0x8000+327), QuantizeCoord(10))
	assert.Equal(t, uint16(0x8000-327), QuantizeCoord(-10))
	assert.Equal(t, uint16(0xFFFF), QuantizeCoord(5000))
	assert.Equal(t, uint16(0x0001), QuantizeCoord(-5000))

	assert.Equal(t, uint16(0), QuantizeRotation(-math.Pi))
	assert.Equal(t, uint16(0x8000), QuantizeRotation(0))
	assert.Equal(t, uint16(0xC000), QuantizeRotation(math.Pi/2))

	it := Item{UID: 1, StackSize: 12, Pos: Position{1, 2, 3}, Rot: 4}
	h := it.AsHousingItem()
	assert.Equal(t, uint32(1), h.StackSize)
	assert.Equal(t, Position{}, h.Pos)
	assert.Equal(t, uint32(12), it.StackSize)

	h.Place(Vec3{X: 1, Y: 0, Z: -1}, 0)
	assert.Equal(t, Position{X: 0x8000 + 32, Y: 0x8000, Z: 0x8000 - 32}, h.Pos)
	assert.Equal(t, uint16(0x8000), h.Rot)
}
