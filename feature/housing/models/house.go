package models

// House is one row of the 'house' table.
type House struct {
	HouseID      uint64 `gorm:"primaryKey;autoIncrement:false;column:HouseId"`
	LandSetID    uint32 `gorm:"column:LandSetId"`
	BuildTime    int64  `gorm:"column:BuildTime;default:0"`
	HouseName    string `gorm:"column:HouseName;type:varchar(32)"`
	Welcome      uint8  `gorm:"column:Welcome;default:0"`
	Comment      string `gorm:"column:Comment;type:varchar(193)"`
	Endorsements uint64 `gorm:"column:Endorsements;default:0"`
}

func (House) TableName() string {
	return "house"
}
