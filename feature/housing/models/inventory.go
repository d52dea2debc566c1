package models

import "housing-manager/feature/housing/inventory"

// InventorySlot is one row of the 'houseiteminventory' table.
type InventorySlot struct {
	LandIdent   uint64 `gorm:"primaryKey;autoIncrement:false;column:LandIdent"`
	ContainerID uint16 `gorm:"primaryKey;autoIncrement:false;column:ContainerId"`
	SlotID      uint16 `gorm:"primaryKey;autoIncrement:false;column:SlotId"`
	ItemID      uint64 `gorm:"column:ItemId"`
}

func (InventorySlot) TableName() string {
	return inventory.Table
}

// GlobalItem is one row of the 'charaglobalitem' table.
type GlobalItem struct {
	ItemID      uint64 `gorm:"primaryKey;autoIncrement:false;column:ItemId"`
	CharacterID uint64 `gorm:"column:CharacterId"`
	CatalogID   uint32 `gorm:"column:catalogId"`
	Stack       uint32 `gorm:"column:stack;default:1"`
	Stain       uint8  `gorm:"column:stain;default:0"`
}

func (GlobalItem) TableName() string {
	return "charaglobalitem"
}

// GlobalItemFrom builds the item row of an estate item owned by characterID.
func GlobalItemFrom(characterID uint64, item *inventory.Item) GlobalItem {
	return GlobalItem{
		ItemID:      item.UID,
		CharacterID: characterID,
		CatalogID:   item.CatalogID,
		Stack:       item.StackSize,
		Stain:       item.Stain,
	}
}

// PlacedItem is one row of the 'landplaceditems' table.
type PlacedItem struct {
	ItemID   uint64 `gorm:"primaryKey;autoIncrement:false;column:ItemId"`
	PosX     uint16 `gorm:"column:PosX"`
	PosY     uint16 `gorm:"column:PosY"`
	PosZ     uint16 `gorm:"column:PosZ"`
	Rotation uint16 `gorm:"column:Rotation"`
}

func (PlacedItem) TableName() string {
	return "landplaceditems"
}

// PlacedItemFrom builds the placement row of item.
func PlacedItemFrom(item *inventory.Item) PlacedItem {
	return PlacedItem{
		ItemID:   item.UID,
		PosX:     item.Pos.X,
		PosY:     item.Pos.Y,
		PosZ:     item.Pos.Z,
		Rotation: item.Rot,
	}
}

// InventoryView is an inventory slot joined with its item and placement.
type InventoryView struct {
	LandIdent   uint64 `gorm:"column:LandIdent"`
	ContainerID uint16 `gorm:"column:ContainerId"`
	SlotID      uint16 `gorm:"column:SlotId"`
	ItemID      uint64 `gorm:"column:ItemId"`
	CatalogID   uint32 `gorm:"column:catalogId"`
	Stain       uint8  `gorm:"column:stain"`
	CharacterID uint64 `gorm:"column:CharacterId"`
	PosX        uint16 `gorm:"column:PosX"`
	PosY        uint16 `gorm:"column:PosY"`
	PosZ        uint16 `gorm:"column:PosZ"`
	Rotation    uint16 `gorm:"column:Rotation"`
}

// Record converts the row for registry hydration. Position is only kept for placed kinds.
func (v InventoryView) Record() inventory.Record {
	item := inventory.Item{
		UID:       v.ItemID,
		CatalogID: v.CatalogID,
		Stain:     v.Stain,
		StackSize: 1,
	}
	if inventory.Kind(v.ContainerID).IsPlaced() {
		item.Pos = inventory.Position{X: v.PosX, Y: v.PosY, Z: v.PosZ}
		item.Rot = v.Rotation
	}
	return inventory.Record{
		LandIdent: v.LandIdent,
		Container: v.ContainerID,
		Slot:      v.SlotID,
		Item:      item,
	}
}

// All returns every persisted model, for migrations and schema checks.
func All() []any {
	return []any{&Land{}, &House{}, &InventorySlot{}, &GlobalItem{}, &PlacedItem{}}
}
