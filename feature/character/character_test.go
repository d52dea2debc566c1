package character

import (
	"errors"
	"testing"

	"housing-manager/feature/housing/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Bags(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Put(1, inventory.KindBag0, 3, &inventory.Item{UID: 10, StackSize: 4}))
	it, err := r.Peek(1, inventory.KindBag0, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), it.UID)

	_, err = r.Peek(1, inventory.KindBag0, 4)
	assert.True(t, errors.Is(err, ErrEmptySlot))
	_, err = r.Take(1, inventory.KindExteriorPlacedItems, 0)
	assert.True(t, errors.Is(err, ErrNotCarried))

	kind, slot, ok := r.FreeSlot(1)
	require.True(t, ok)
	assert.Equal(t, inventory.KindBag0, kind)
	assert.Equal(t, uint16(0), slot)

	it, err = r.Take(1, inventory.KindBag0, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), it.StackSize)
	_, err = r.Take(1, inventory.KindBag0, 3)
	assert.True(t, errors.Is(err, ErrEmptySlot))

	snap, err := r.Snapshot(1, inventory.KindBag1)
	require.NoError(t, err)
	assert.Equal(t, uint16(BagSlots), snap.Capacity)
}

func TestRegistry_FreeSlotAcrossBags(t *testing.T) {
	r := NewRegistry()
	for s := uint16(0); s < BagSlots; s++ {
		require.NoError(t, r.Put(2, inventory.KindBag0, s, &inventory.Item{UID: uint64(s) + 1}))
	}
	kind, slot, ok := r.FreeSlot(2)
	require.True(t, ok)
	assert.Equal(t, inventory.KindBag1, kind)
	assert.Equal(t, uint16(0), slot)

	for _, k := range Bags[1:] {
		for s := uint16(0); s < BagSlots; s++ {
			require.NoError(t, r.Put(2, k, s, &inventory.Item{UID: 1000 + uint64(s)}))
		}
	}
	_, _, ok = r.FreeSlot(2)
	assert.False(t, ok)
}

func TestRegistry_Wallet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Credit(1, 500))
	assert.Equal(t, uint64(500), r.Balance(1))

	err := r.Debit(1, 600)
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
	assert.Equal(t, uint64(500), r.Balance(1))

	require.NoError(t, r.Debit(1, 500))
	assert.Zero(t, r.Balance(1))
}
