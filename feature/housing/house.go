package housing

import (
	"fmt"

	"housing-manager/feature/housing/inventory"
	"housing-manager/feature/housing/land"
)

// Model is one appearance piece of a house.
type Model struct {
	ModelID uint32 `json:"model_id"`
	Stain   uint8  `json:"stain"`
}

// House is the structure built on an owned land.
type House struct {
	ID             uint64                                   `json:"id"`
	LandSetID      land.SetID                               `json:"land_set_id"`
	Identity       land.Identity                            `json:"identity"`
	Name           string                                   `json:"name"`
	Greeting       string                                   `json:"greeting"`
	BuildTime      int64                                    `json:"build_time"`
	ExteriorModels [inventory.ExteriorAppearanceSlots]Model `json:"exterior_models"`
	InteriorModels [inventory.InteriorAppearanceSlots]Model `json:"interior_models"`
}

// DefaultHouseName is the name a freshly built house gets.
func DefaultHouseName(landID uint16) string {
	return fmt.Sprintf("Estate #%d", landID+1)
}
