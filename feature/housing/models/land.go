package models

import "housing-manager/feature/housing/land"

// Land is one row of the 'land' table.
type Land struct {
	LandSetID  uint32 `gorm:"primaryKey;autoIncrement:false;column:LandSetId"`
	LandID     uint16 `gorm:"primaryKey;autoIncrement:false;column:LandId"`
	Type       uint8  `gorm:"column:Type;default:0"`
	Size       uint8  `gorm:"column:Size;default:0"`
	Status     uint8  `gorm:"column:Status;default:0"`
	LandPrice  uint64 `gorm:"column:LandPrice;default:0"`
	UpdateTime int64  `gorm:"column:UpdateTime;default:0"`
	OwnerID    uint64 `gorm:"column:OwnerId;default:0"`
	HouseID    uint64 `gorm:"column:HouseId;default:0"`
}

func (Land) TableName() string {
	return "land"
}

// LandView is a land row joined with its house, if any.
type LandView struct {
	Land
	Welcome      uint8  `gorm:"column:Welcome"`
	Comment      string `gorm:"column:Comment"`
	HouseName    string `gorm:"column:HouseName"`
	BuildTime    int64  `gorm:"column:BuildTime"`
	Endorsements uint64 `gorm:"column:Endorsements"`
}

// Entry converts the row into a cache entry. Item limits are filled in by the cache.
func (v LandView) Entry() land.Entry {
	return land.Entry{
		SetID:        land.SetID(v.LandSetID),
		LandID:       v.LandID,
		Type:         land.Type(v.Type),
		Size:         land.Size(v.Size),
		Status:       land.Status(v.Status),
		CurrentPrice: v.LandPrice,
		UpdateTime:   v.UpdateTime,
		OwnerID:      v.OwnerID,
		HouseID:      v.HouseID,
		Welcome:      v.Welcome,
		Comment:      v.Comment,
		Name:         v.HouseName,
		BuildTime:    v.BuildTime,
		Endorsements: v.Endorsements,
	}
}

// LandFromEntry builds the persisted land row of an entry.
func LandFromEntry(e *land.Entry) Land {
	return Land{
		LandSetID:  uint32(e.SetID),
		LandID:     e.LandID,
		Type:       uint8(e.Type),
		Size:       uint8(e.Size),
		Status:     uint8(e.Status),
		LandPrice:  e.CurrentPrice,
		UpdateTime: e.UpdateTime,
		OwnerID:    e.OwnerID,
		HouseID:    e.HouseID,
	}
}
