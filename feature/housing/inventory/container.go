package inventory

import (
	"fmt"
	"sort"
)

// Container is a fixed-capacity, sparse slot map of items.
type Container struct {
	kind         Kind
	capacity     uint16
	table        string
	multiStorage bool
	items        map[uint16]*Item
}

// NewContainer creates an empty container.
func NewContainer(kind Kind, capacity uint16, table string, multiStorage bool) *Container {
	return &Container{
		kind:         kind,
		capacity:     capacity,
		table:        table,
		multiStorage: multiStorage,
		items:        make(map[uint16]*Item),
	}
}

func (c *Container) Kind() Kind         { return c.kind }
func (c *Container) Capacity() uint16   { return c.capacity }
func (c *Container) Table() string      { return c.table }
func (c *Container) MultiStorage() bool { return c.multiStorage }
func (c *Container) Len() int           { return len(c.items) }
func (c *Container) Empty() bool        { return len(c.items) == 0 }
func (c *Container) Full() bool         { return len(c.items) >= int(c.capacity) }

// FreeSlot returns the lowest unoccupied slot.
func (c *Container) FreeSlot() (uint16, bool) {
	for s := uint16(0); s < c.capacity; s++ {
		if _, ok := c.items[s]; !ok {
			return s, true
		}
	}
	return 0, false
}

// Item returns the item at slot.
func (c *Container) Item(slot uint16) (*Item, bool) {
	it, ok := c.items[slot]
	return it, ok
}

// Set links item into slot.
func (c *Container) Set(slot uint16, item *Item) error {
	if slot >= c.capacity {
		return fmt.Errorf("%s slot %d of %d: %w", c.kind, slot, c.capacity, ErrInvalidSlot)
	}
	if _, ok := c.items[slot]; ok {
		return fmt.Errorf("%s slot %d: %w", c.kind, slot, ErrSlotOccupied)
	}
	c.items[slot] = item
	return nil
}

// Remove unlinks the item at slot.
func (c *Container) Remove(slot uint16) (*Item, bool) {
	it, ok := c.items[slot]
	if ok {
		delete(c.items, slot)
	}
	return it, ok
}

// Slots returns the occupied slots ascending.
func (c *Container) Slots() []uint16 {
	out := make([]uint16, 0, len(c.items))
	for s := range c.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SlotItem is an item paired with its slot.
type SlotItem struct {
	Slot uint16 `json:"slot"`
	Item Item   `json:"item"`
}

// Snapshot is a read-only copy of a container.
type Snapshot struct {
	Kind     Kind       `json:"kind"`
	Capacity uint16     `json:"capacity"`
	Items    []SlotItem `json:"items"`
}

// Snapshot copies the container contents ordered by slot.
func (c *Container) Snapshot() Snapshot {
	s := Snapshot{Kind: c.kind, Capacity: c.capacity, Items: make([]SlotItem, 0, len(c.items))}
	for _, slot := range c.Slots() {
		s.Items = append(s.Items, SlotItem{Slot: slot, Item: *c.items[slot]})
	}
	return s
}
