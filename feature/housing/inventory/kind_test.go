package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, id := range []uint16{0, 3, 25000, 25001, 25002, 25003, 25010, 27000, 27001, 27008} {
		k, err := ParseKind(id)
		require.NoError(t, err, "id %d", id)
		assert.Equal(t, Kind(id), k)
	}
	for _, id := range []uint16{4, 24999, 25011, 26999, 27009, 65535} {
		_, err := ParseKind(id)
		assert.True(t, errors.Is(err, ErrUnknownKind), "id %d", id)
	}
	assert.Len(t, Kinds(), 4+4+16)
}

func TestKind_Families(t *testing.T) {
	t.Run("Every Interior Room Is Placed", func(t *testing.T) {
		for i, k := range InteriorPlaced {
			assert.True(t, k.IsPlaced(), "%s", k)
			assert.False(t, k.IsExterior())
			r, ok := k.Rules()
			require.True(t, ok)
			assert.Equal(t, i, r.Pair)

			store, ok := k.Storeroom()
			require.True(t, ok)
			assert.Equal(t, InteriorStorerooms[i], store)
			assert.True(t, store.IsStoreroom())
		}
	})

	t.Run("Exterior", func(t *testing.T) {
		assert.True(t, KindExteriorPlacedItems.IsPlaced())
		assert.True(t, KindExteriorPlacedItems.IsExterior())
		store, ok := KindExteriorPlacedItems.Storeroom()
		require.True(t, ok)
		assert.Equal(t, KindExteriorStoreroom, store)
	})

	t.Run("Others", func(t *testing.T) {
		assert.True(t, KindBag2.IsCarried())
		assert.False(t, KindBag2.IsPlaced())
		assert.True(t, KindExteriorAppearance.IsAppearance())
		assert.True(t, KindInteriorAppearance.IsAppearance())
		_, ok := KindExteriorStoreroom.Storeroom()
		assert.False(t, ok)
		assert.Equal(t, "interior_placed_8", KindInteriorPlacedItems8.String())
		assert.Equal(t, "kind(42)", Kind(42).String())
	})
}

func TestResolveInteriorSlot(t *testing.T) {
	cases := []struct {
		slot     uint16
		kind     Kind
		pair     int
		pairSlot uint16
	}{
		{0, KindInteriorPlacedItems1, 0, 0},
		{49, KindInteriorPlacedItems1, 0, 49},
		{50, KindInteriorPlacedItems2, 1, 0},
		{175, KindInteriorPlacedItems4, 3, 25},
		{399, KindInteriorPlacedItems8, 7, 49},
	}
	for _, tc := range cases {
		kind, pair, pairSlot, err := ResolveInteriorSlot(tc.slot)
		require.NoError(t, err)
		assert.Equal(t, tc.kind, kind)
		assert.Equal(t, tc.pair, pair)
		assert.Equal(t, tc.pairSlot, pairSlot)
		assert.Equal(t, tc.slot, InteriorIndex(pair, pairSlot))
	}

	_, _, _, err := ResolveInteriorSlot(400)
	assert.True(t, errors.Is(err, ErrInvalidSlot))
}
