package store

import (
	"context"

	"housing-manager/feature/housing/models"
)

// Store is the persistence boundary of the housing subsystem.
// Implementations must be safe to use from the serialized housing context;
// they are not required to be safe for concurrent use.
type Store interface {
	// QueryLands returns every land joined with its house.
	QueryLands(ctx context.Context) ([]models.LandView, error)
	// QueryInventory returns every estate inventory slot joined with its item and placement.
	QueryInventory(ctx context.Context) ([]models.InventoryView, error)
	// NextHouseID returns one past the highest persisted house id.
	NextHouseID(ctx context.Context) (uint64, error)
	// NextItemID returns one past the highest persisted item id.
	NextItemID(ctx context.Context) (uint64, error)

	InsertHouse(ctx context.Context, house models.House) error
	UpdateHouse(ctx context.Context, house models.House) error
	DeleteHouse(ctx context.Context, houseID uint64) error
	UpdateLand(ctx context.Context, row models.Land) error

	// CreateItem inserts an item row. An existing row with the same id is an error.
	CreateItem(ctx context.Context, item models.GlobalItem) error
	DeleteItem(ctx context.Context, itemID uint64) error

	// SaveContainer upserts the given slots of one container.
	SaveContainer(ctx context.Context, slots []models.InventorySlot) error
	// RemoveFromContainer deletes one slot row.
	RemoveFromContainer(ctx context.Context, landIdent uint64, containerID, slotID uint16) error
	// ClearContainer deletes every slot row of one container.
	ClearContainer(ctx context.Context, landIdent uint64, containerID uint16) error
	// MoveToStoreroom relinks a placed item into a storeroom slot and drops its placement.
	MoveToStoreroom(ctx context.Context, from, to models.InventorySlot) error

	// SavePlacement inserts or overwrites the world position of an item.
	SavePlacement(ctx context.Context, placed models.PlacedItem) error
	// UpdateItemPosition updates the world position of an already placed item.
	UpdateItemPosition(ctx context.Context, placed models.PlacedItem) error
	RemovePlacement(ctx context.Context, itemID uint64) error

	// Execute runs a raw statement.
	Execute(ctx context.Context, sql string, args ...any) error
	// Atomic runs fn in a single transaction. Any error rolls back every write made through the passed Store.
	Atomic(ctx context.Context, fn func(Store) error) error
}
