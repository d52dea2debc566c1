package checks

import (
	"fmt"

	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/models"

	"gorm.io/gorm"
)

// WardReport lists every ward that would stop the housing manager from booting.
type WardReport struct {
	Wards      int         `json:"wards"`
	Incomplete []WardCount `json:"incomplete"`
	Status     string      `json:"status"` // "ok", "error"
}

// WardCount is the number of land rows found for one ward.
type WardCount struct {
	LandSetID uint32 `json:"land_set_id"`
	Territory uint16 `json:"territory"`
	Ward      uint16 `json:"ward"`
	Lands     int64  `json:"lands"`
}

// CheckWards counts the land rows of every ward and reports those that do not hold land.WardSize rows.
func CheckWards(db *gorm.DB) (*WardReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var counts []struct {
		LandSetID uint32
		Lands     int64
	}
	err := db.Model(&models.Land{}).
		Select("LandSetId AS land_set_id, COUNT(*) AS lands").
		Group("LandSetId").
		Order("LandSetId").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count lands: %w", err)
	}

	report := &WardReport{Wards: len(counts), Incomplete: []WardCount{}, Status: "ok"}
	for _, c := range counts {
		if c.Lands == land.WardSize {
			continue
		}
		id := land.SetID(c.LandSetID)
		report.Incomplete = append(report.Incomplete, WardCount{
			LandSetID: c.LandSetID,
			Territory: id.TerritoryTypeID(),
			Ward:      id.WardNum(),
			Lands:     c.Lands,
		})
		report.Status = "error"
	}
	return report, nil
}
