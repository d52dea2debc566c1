package land

import "fmt"

// Identity locates a land across world, territory, ward and plot.
// It is a value type and the universal key of the housing subsystem.
type Identity struct {
	WorldID         uint16 `json:"world_id"`
	TerritoryTypeID uint16 `json:"territory_type_id"`
	WardNum         uint16 `json:"ward_num"`
	LandID          uint16 `json:"land_id"`
}

// Pack encodes the identity into a single 64-bit key.
// Layout (low to high): LandID, WardNum, TerritoryTypeID, WorldID.
func (i Identity) Pack() uint64 {
	return uint64(i.LandID) |
		uint64(i.WardNum)<<16 |
		uint64(i.TerritoryTypeID)<<32 |
		uint64(i.WorldID)<<48
}

// Unpack decodes a key produced by Pack.
func Unpack(key uint64) Identity {
	return Identity{
		LandID:          uint16(key),
		WardNum:         uint16(key >> 16),
		TerritoryTypeID: uint16(key >> 32),
		WorldID:         uint16(key >> 48),
	}
}

// SetID returns the ward key this land belongs to.
func (i Identity) SetID() SetID {
	return NewSetID(i.TerritoryTypeID, i.WardNum)
}

// WithLand returns a copy of the identity pointing at another plot of the same ward.
func (i Identity) WithLand(landID uint16) Identity {
	i.LandID = landID
	return i
}

func (i Identity) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", i.WorldID, i.TerritoryTypeID, i.WardNum, i.LandID)
}

// SetID identifies one ward's lands: TerritoryTypeID<<16 | WardNum.
type SetID uint32

// NewSetID builds the ward key.
func NewSetID(territoryTypeID, wardNum uint16) SetID {
	return SetID(uint32(territoryTypeID)<<16 | uint32(wardNum))
}

// TerritoryTypeID returns the territory half of the key.
func (s SetID) TerritoryTypeID() uint16 { return uint16(s >> 16) }

// WardNum returns the ward half of the key.
func (s SetID) WardNum() uint16 { return uint16(s) }

// Identity returns the identity of plot landID in this ward.
func (s SetID) Identity(worldID, landID uint16) Identity {
	return Identity{
		WorldID:         worldID,
		TerritoryTypeID: s.TerritoryTypeID(),
		WardNum:         s.WardNum(),
		LandID:          landID,
	}
}
