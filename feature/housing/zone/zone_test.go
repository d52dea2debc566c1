package zone

import (
	"testing"

	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContext_Converges(t *testing.T) {
	estate := land.Identity{WorldID: 67, TerritoryTypeID: 340, WardNum: 4, LandID: 12}

	ext, err := Parse(NameExterior, estate)
	require.NoError(t, err)
	in, err := Parse(NameInterior, estate)
	require.NoError(t, err)

	assert.False(t, ext.Interior())
	assert.True(t, in.Interior())
	assert.Equal(t, estate, ext.Identity(12))
	assert.Equal(t, ext.Identity(12), in.Identity(99))
	assert.Equal(t, estate.WithLand(3), ext.Identity(3))

	_, err = Parse("basement", estate)
	assert.Error(t, err)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := NewLogNotifier(zap.New(core))
	estate := land.Identity{WorldID: 67, TerritoryTypeID: 340, WardNum: 4, LandID: 12}

	item := &inventory.Item{UID: 5, CatalogID: 6}
	obj := NewObject(estate, true, 51, item)
	assert.Equal(t, uint64(5), obj.UID)

	n.ObjectSpawned(obj)
	n.ObjectMoved(1, obj)
	n.ObjectDespawned(obj)
	n.ContainerUpdated(1, estate, inventory.Snapshot{Kind: inventory.KindInteriorPlacedItems2})
	n.LandUpdated(land.Entry{SetID: estate.SetID(), LandID: 12})
	n.HouseBuilt(1, estate, 3)
	n.EntranceRegistered(Entrance{Estate: estate, HouseID: 3})
	n.Denied(1, "not yours")

	assert.Equal(t, 8, logs.Len())
	assert.Equal(t, 1, logs.FilterMessage("Housing request denied").Len())
	spawned := logs.FilterMessage("Object spawned").All()[0].ContextMap()
	assert.Equal(t, "67/340/4/12", spawned["estate"])
	assert.Equal(t, uint16(51), spawned["slot"])
}
