package store

import (
	"context"
	"fmt"

	"housing-manager/feature/housing/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const landQuery = `SELECT land.LandSetId, land.LandId, land.Type, land.Size, land.Status, land.LandPrice,
	land.UpdateTime, land.OwnerId, land.HouseId,
	COALESCE(house.Welcome, 0) AS Welcome, COALESCE(house.Comment, '') AS Comment,
	COALESCE(house.HouseName, '') AS HouseName, COALESCE(house.BuildTime, 0) AS BuildTime,
	COALESCE(house.Endorsements, 0) AS Endorsements
FROM land
LEFT JOIN house ON house.HouseId = land.HouseId
ORDER BY land.LandSetId, land.LandId`

const inventoryQuery = `SELECT houseiteminventory.LandIdent, houseiteminventory.ContainerId,
	houseiteminventory.SlotId, houseiteminventory.ItemId,
	COALESCE(charaglobalitem.catalogId, 0) AS catalogId, COALESCE(charaglobalitem.stain, 0) AS stain,
	COALESCE(charaglobalitem.CharacterId, 0) AS CharacterId,
	COALESCE(landplaceditems.PosX, 0) AS PosX, COALESCE(landplaceditems.PosY, 0) AS PosY,
	COALESCE(landplaceditems.PosZ, 0) AS PosZ, COALESCE(landplaceditems.Rotation, 0) AS Rotation
FROM houseiteminventory
LEFT JOIN charaglobalitem ON charaglobalitem.ItemId = houseiteminventory.ItemId
LEFT JOIN landplaceditems ON landplaceditems.ItemId = houseiteminventory.ItemId
ORDER BY houseiteminventory.LandIdent, houseiteminventory.ContainerId, houseiteminventory.SlotId`

// GormStore implements Store on a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// New creates a store on db.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the housing tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate housing tables: %w", err)
	}
	return nil
}

// SeedLands inserts land rows, leaving existing rows untouched. It returns the number inserted.
func (s *GormStore) SeedLands(ctx context.Context, rows []models.Land) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&rows, 120)
	if res.Error != nil {
		return 0, fmt.Errorf("seed lands: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) QueryLands(ctx context.Context) ([]models.LandView, error) {
	var rows []models.LandView
	if err := s.db.WithContext(ctx).Raw(landQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query lands: %w", err)
	}
	return rows, nil
}

func (s *GormStore) QueryInventory(ctx context.Context) ([]models.InventoryView, error) {
	var rows []models.InventoryView
	if err := s.db.WithContext(ctx).Raw(inventoryQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query estate inventory: %w", err)
	}
	return rows, nil
}

func (s *GormStore) NextHouseID(ctx context.Context) (uint64, error) {
	var max uint64
	if err := s.db.WithContext(ctx).Raw("SELECT COALESCE(MAX(HouseId), 0) FROM house").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("next house id: %w", err)
	}
	return max + 1, nil
}

func (s *GormStore) NextItemID(ctx context.Context) (uint64, error) {
	var max uint64
	if err := s.db.WithContext(ctx).Raw("SELECT COALESCE(MAX(ItemId), 0) FROM charaglobalitem").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("next item id: %w", err)
	}
	return max + 1, nil
}

func (s *GormStore) InsertHouse(ctx context.Context, house models.House) error {
	if err := s.db.WithContext(ctx).Create(&house).Error; err != nil {
		return fmt.Errorf("insert house %d: %w", house.HouseID, err)
	}
	return nil
}

func (s *GormStore) UpdateHouse(ctx context.Context, house models.House) error {
	res := s.db.WithContext(ctx).Model(&models.House{}).
		Where("HouseId = ?", house.HouseID).
		Updates(map[string]any{
			"HouseName":    house.HouseName,
			"Welcome":      house.Welcome,
			"Comment":      house.Comment,
			"BuildTime":    house.BuildTime,
			"Endorsements": house.Endorsements,
		})
	if res.Error != nil {
		return fmt.Errorf("update house %d: %w", house.HouseID, res.Error)
	}
	return nil
}

func (s *GormStore) DeleteHouse(ctx context.Context, houseID uint64) error {
	if err := s.db.WithContext(ctx).Where("HouseId = ?", houseID).Delete(&models.House{}).Error; err != nil {
		return fmt.Errorf("delete house %d: %w", houseID, err)
	}
	return nil
}

func (s *GormStore) UpdateLand(ctx context.Context, row models.Land) error {
	res := s.db.WithContext(ctx).Model(&models.Land{}).
		Where("LandSetId = ? AND LandId = ?", row.LandSetID, row.LandID).
		Updates(map[string]any{
			"Type":       row.Type,
			"Size":       row.Size,
			"Status":     row.Status,
			"LandPrice":  row.LandPrice,
			"UpdateTime": row.UpdateTime,
			"OwnerId":    row.OwnerID,
			"HouseId":    row.HouseID,
		})
	if res.Error != nil {
		return fmt.Errorf("update land %d/%d: %w", row.LandSetID, row.LandID, res.Error)
	}
	return nil
}

func (s *GormStore) CreateItem(ctx context.Context, item models.GlobalItem) error {
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return fmt.Errorf("create item %d: %w", item.ItemID, err)
	}
	return nil
}

func (s *GormStore) DeleteItem(ctx context.Context, itemID uint64) error {
	if err := s.db.WithContext(ctx).Where("ItemId = ?", itemID).Delete(&models.GlobalItem{}).Error; err != nil {
		return fmt.Errorf("delete item %d: %w", itemID, err)
	}
	return nil
}

func (s *GormStore) SaveContainer(ctx context.Context, slots []models.InventorySlot) error {
	if len(slots) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&slots).Error; err != nil {
		return fmt.Errorf("save container %d: %w", slots[0].ContainerID, err)
	}
	return nil
}

func (s *GormStore) RemoveFromContainer(ctx context.Context, landIdent uint64, containerID, slotID uint16) error {
	err := s.db.WithContext(ctx).
		Where("LandIdent = ? AND ContainerId = ? AND SlotId = ?", landIdent, containerID, slotID).
		Delete(&models.InventorySlot{}).Error
	if err != nil {
		return fmt.Errorf("remove slot %d of container %d: %w", slotID, containerID, err)
	}
	return nil
}

func (s *GormStore) ClearContainer(ctx context.Context, landIdent uint64, containerID uint16) error {
	err := s.db.WithContext(ctx).
		Where("LandIdent = ? AND ContainerId = ?", landIdent, containerID).
		Delete(&models.InventorySlot{}).Error
	if err != nil {
		return fmt.Errorf("clear container %d: %w", containerID, err)
	}
	return nil
}

func (s *GormStore) MoveToStoreroom(ctx context.Context, from, to models.InventorySlot) error {
	return s.Atomic(ctx, func(tx Store) error {
		if err := tx.RemoveFromContainer(ctx, from.LandIdent, from.ContainerID, from.SlotID); err != nil {
			return err
		}
		if err := tx.SaveContainer(ctx, []models.InventorySlot{to}); err != nil {
			return err
		}
		return tx.RemovePlacement(ctx, to.ItemID)
	})
}

func (s *GormStore) SavePlacement(ctx context.Context, placed models.PlacedItem) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&placed).Error; err != nil {
		return fmt.Errorf("save placement of item %d: %w", placed.ItemID, err)
	}
	return nil
}

func (s *GormStore) UpdateItemPosition(ctx context.Context, placed models.PlacedItem) error {
	res := s.db.WithContext(ctx).Model(&models.PlacedItem{}).
		Where("ItemId = ?", placed.ItemID).
		Updates(map[string]any{
			"PosX":     placed.PosX,
			"PosY":     placed.PosY,
			"PosZ":     placed.PosZ,
			"Rotation": placed.Rotation,
		})
	if res.Error != nil {
		return fmt.Errorf("update position of item %d: %w", placed.ItemID, res.Error)
	}
	return nil
}

func (s *GormStore) RemovePlacement(ctx context.Context, itemID uint64) error {
	if err := s.db.WithContext(ctx).Where("ItemId = ?", itemID).Delete(&models.PlacedItem{}).Error; err != nil {
		return fmt.Errorf("remove placement of item %d: %w", itemID, err)
	}
	return nil
}

func (s *GormStore) Execute(ctx context.Context, sql string, args ...any) error {
	if err := s.db.WithContext(ctx).Exec(sql, args...).Error; err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func (s *GormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
