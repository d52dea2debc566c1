package gamedata

// Item is one entry of Item.json.
type Item struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	// AdditionalData links an item to another sheet: the preset id for
	// estate permits, the model id for appearance pieces.
	AdditionalData uint32 `json:"additionalData"`
	StackSize      uint32 `json:"stackSize"`
}

// Preset is one entry of HousingPreset.json. Zero slot values mean the tier
// has no default for that slot.
type Preset struct {
	ID        uint32 `json:"id"`
	Name      string `json:"name"`
	HouseSize uint8  `json:"houseSize"`

	ExteriorRoof   uint32 `json:"exteriorRoof"`
	ExteriorWall   uint32 `json:"exteriorWall"`
	ExteriorWindow uint32 `json:"exteriorWindow"`
	ExteriorDoor   uint32 `json:"exteriorDoor"`

	InteriorWall     uint32 `json:"interiorWall"`
	InteriorFlooring uint32 `json:"interiorFlooring"`
	InteriorLighting uint32 `json:"interiorLighting"`

	OtherFloorWall     uint32 `json:"otherFloorWall"`
	OtherFloorFlooring uint32 `json:"otherFloorFlooring"`
	OtherFloorLighting uint32 `json:"otherFloorLighting"`

	BasementWall     uint32 `json:"basementWall"`
	BasementFlooring uint32 `json:"basementFlooring"`
	BasementLighting uint32 `json:"basementLighting"`
}
