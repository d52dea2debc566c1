package zone

import (
	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
)

// Object is a placed item as seen by the world.
type Object struct {
	Estate   land.Identity
	Interior bool
	// Slot is the exterior slot, or pair*50+slot for interior objects.
	Slot      uint16
	UID       uint64
	CatalogID uint32
	Stain     uint8
	Pos       inventory.Position
	Rot       uint16
}

// NewObject describes item at slot of an estate.
func NewObject(estate land.Identity, interior bool, slot uint16, item *inventory.Item) Object {
	return Object{
		Estate:    estate,
		Interior:  interior,
		Slot:      slot,
		UID:       item.UID,
		CatalogID: item.CatalogID,
		Stain:     item.Stain,
		Pos:       item.Pos,
		Rot:       item.Rot,
	}
}

// Entrance is the world object leading into a built estate.
type Entrance struct {
	Estate  land.Identity
	HouseID uint64
}
