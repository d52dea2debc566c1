package gamedata

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnknownItem is returned for a catalog id missing from Item.json.
	ErrUnknownItem = errors.New("unknown item")
	// ErrUnknownPreset is returned for a preset id missing from HousingPreset.json.
	ErrUnknownPreset = errors.New("unknown housing preset")
)

// Catalog resolves items and presets.
type Catalog interface {
	Item(ctx context.Context, id uint32) (Item, error)
	Preset(ctx context.Context, id uint32) (Preset, error)
}

// Data is a loaded, indexed gamedata snapshot. It is immutable after NewData.
type Data struct {
	items   map[uint32]Item
	presets map[uint32]Preset
}

// NewData indexes items and presets by id. Later duplicates win.
func NewData(items []Item, presets []Preset) *Data {
	d := &Data{
		items:   make(map[uint32]Item, len(items)),
		presets: make(map[uint32]Preset, len(presets)),
	}
	for _, it := range items {
		d.items[it.ID] = it
	}
	for _, p := range presets {
		d.presets[p.ID] = p
	}
	return d
}

func (d *Data) Item(_ context.Context, id uint32) (Item, error) {
	it, ok := d.items[id]
	if !ok {
		return Item{}, fmt.Errorf("item %d: %w", id, ErrUnknownItem)
	}
	return it, nil
}

func (d *Data) Preset(_ context.Context, id uint32) (Preset, error) {
	p, ok := d.presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("preset %d: %w", id, ErrUnknownPreset)
	}
	return p, nil
}

// Counts returns the number of indexed items and presets.
func (d *Data) Counts() (items, presets int) {
	return len(d.items), len(d.presets)
}
