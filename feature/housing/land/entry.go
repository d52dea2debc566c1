package land

// Size is the plot size tier.
type Size uint8

const (
	SizeCottage Size = 0
	SizeHouse   Size = 1
	SizeMansion Size = 2
)

func (s Size) String() string {
	switch s {
	case SizeCottage:
		return "cottage"
	case SizeHouse:
		return "house"
	case SizeMansion:
		return "mansion"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known size tier.
func (s Size) Valid() bool {
	return s <= SizeMansion
}

// Capacity returns the placed item limits for the tier: exterior, interior.
// Unknown tiers report ok=false and cottage limits.
func (s Size) Capacity() (external, internal uint16, ok bool) {
	switch s {
	case SizeCottage:
		return 20, 200, true
	case SizeHouse:
		return 30, 300, true
	case SizeMansion:
		return 40, 400, true
	default:
		return 20, 200, false
	}
}

// Status is the estate state machine: ForSale -> Sold -> PrivateHouse.
type Status uint8

const (
	StatusForSale      Status = 0
	StatusSold         Status = 1
	StatusPrivateHouse Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusForSale:
		return "for_sale"
	case StatusSold:
		return "sold"
	case StatusPrivateHouse:
		return "private_house"
	default:
		return "unknown"
	}
}

// Type is the ownership model of a land.
type Type uint8

const (
	TypeNone        Type = 0
	TypeFreeCompany Type = 1
	TypePrivate     Type = 2
)

// Entry is the cached state of one land.
type Entry struct {
	SetID        SetID  `json:"land_set_id"`
	LandID       uint16 `json:"land_id"`
	Type         Type   `json:"type"`
	Size         Size   `json:"size"`
	Status       Status `json:"status"`
	CurrentPrice uint64 `json:"current_price"`
	UpdateTime   int64  `json:"update_time"`
	OwnerID      uint64 `json:"owner_id"`
	HouseID      uint64 `json:"house_id"`
	Welcome      uint8  `json:"welcome"`
	Comment      string `json:"comment"`
	Name         string `json:"name"`
	BuildTime    int64  `json:"build_time"`
	Endorsements uint64 `json:"endorsements"`

	MaxPlacedExternalItems uint16 `json:"max_placed_external_items"`
	MaxPlacedInternalItems uint16 `json:"max_placed_internal_items"`
}

// Identity returns the entry's identity on the given world.
func (e *Entry) Identity(worldID uint16) Identity {
	return e.SetID.Identity(worldID, e.LandID)
}

// IsOwnedBy reports whether actorID is the registered owner.
func (e *Entry) IsOwnedBy(actorID uint64) bool {
	return e.OwnerID != 0 && e.OwnerID == actorID
}
