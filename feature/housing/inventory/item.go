package inventory

import "math"

// Exterior appearance slots.
const (
	ExteriorRoof uint16 = iota
	ExteriorWall
	ExteriorWindow
	ExteriorDoor
	ExteriorRoofDecoration
	ExteriorWallDecoration
	ExteriorPlacard
	ExteriorFence
)

// Interior appearance slots.
const (
	InteriorWall uint16 = iota
	InteriorFloor
	InteriorLight
	InteriorAtticWall
	InteriorAtticFloor
	InteriorAtticLight
	InteriorBasementWall
	InteriorBasementFloor
	InteriorBasementLight
	InteriorMansionLight
)

// Vec3 is an unquantized world position.
type Vec3 struct {
	X, Y, Z float32
}

// Position is a quantized world position.
type Position struct {
	X, Y, Z uint16
}

// Item is an item instance. Items in estate containers always have StackSize 1
// and carry a quantized position and rotation when placed.
type Item struct {
	UID       uint64
	CatalogID uint32
	Stain     uint8
	StackSize uint32
	Pos       Position
	Rot       uint16
}

// AsHousingItem returns a copy of a carried item suitable for an estate container.
func (i Item) AsHousingItem() *Item {
	out := i
	out.StackSize = 1
	out.Pos = Position{}
	out.Rot = 0
	return &out
}

// Place sets the quantized position and rotation.
func (i *Item) Place(pos Vec3, rot float32) {
	i.Pos = QuantizePosition(pos)
	i.Rot = QuantizeRotation(rot)
}

// QuantizeCoord maps a float coordinate to 0x8000 + clamp(v*32.767, ±0x7FFF).
func QuantizeCoord(v float32) uint16 {
	scaled := float64(v) * 32.767
	if scaled > 0x7FFF {
		scaled = 0x7FFF
	}
	if scaled < -0x7FFF {
		scaled = -0x7FFF
	}
	return uint16(0x8000 + int32(scaled))
}

// QuantizePosition quantizes all three axes.
func QuantizePosition(v Vec3) Position {
	return Position{X: QuantizeCoord(v.X), Y: QuantizeCoord(v.Y), Z: QuantizeCoord(v.Z)}
}

// QuantizeRotation maps a rotation in radians [-π, π] to 0x8000 * (r + π) / π.
func QuantizeRotation(r float32) uint16 {
	v := 0x8000 * (float64(r) + math.Pi) / math.Pi
	if v < 0 {
		v = 0
	}
	if v > math.MaxUint16 {
		v = math.MaxUint16
	}
	return uint16(v)
}
