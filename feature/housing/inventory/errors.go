package inventory

import "errors"

var (
	// ErrNoFreeSlot is returned when a container (or every candidate container) is full.
	ErrNoFreeSlot = errors.New("no free slot")
	// ErrInvalidSlot is returned for a slot outside a container's range.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrSlotOccupied is returned when linking into a slot that already holds an item.
	ErrSlotOccupied = errors.New("slot already occupied")
	// ErrUnknownKind is returned for a container id outside the closed kind set.
	ErrUnknownKind = errors.New("unknown container kind")
	// ErrProvisionConflict is returned when a kind is provisioned twice with different parameters.
	ErrProvisionConflict = errors.New("container already provisioned with different parameters")
)
