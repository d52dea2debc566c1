package layout

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"housing-manager/feature/housing/land"
	"housing-manager/feature/housing/models"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLayout is returned by Parse for a layout that cannot be seeded.
var ErrInvalidLayout = errors.New("invalid ward layout")

// Layout describes the wards of one or more housing districts.
type Layout struct {
	Districts []District `yaml:"districts"`
}

// District is a territory and the wards it exposes. Every ward of a district
// shares the same plot sizes.
type District struct {
	Territory uint16   `yaml:"territory"`
	Wards     []uint16 `yaml:"wards"`
	Type      uint8    `yaml:"type"`
	// Sizes holds one size name per plot, in plot order. Plots past the end
	// of the list are cottages.
	Sizes []string `yaml:"sizes"`

	sizes []land.Size
}

// Parse decodes and validates a YAML layout.
func Parse(r io.Reader) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	if len(l.Districts) == 0 {
		return nil, fmt.Errorf("%w: no districts", ErrInvalidLayout)
	}

	seen := make(map[land.SetID]bool)
	for i := range l.Districts {
		d := &l.Districts[i]
		if d.Territory == 0 {
			return nil, fmt.Errorf("%w: district %d has no territory", ErrInvalidLayout, i)
		}
		if len(d.Wards) == 0 {
			return nil, fmt.Errorf("%w: territory %d has no wards", ErrInvalidLayout, d.Territory)
		}
		if len(d.Sizes) > land.WardSize {
			return nil, fmt.Errorf("%w: territory %d lists %d sizes, a ward holds %d", ErrInvalidLayout, d.Territory, len(d.Sizes), land.WardSize)
		}
		for _, w := range d.Wards {
			id := land.NewSetID(d.Territory, w)
			if seen[id] {
				return nil, fmt.Errorf("%w: ward %d of territory %d listed twice", ErrInvalidLayout, w, d.Territory)
			}
			seen[id] = true
		}

		d.sizes = make([]land.Size, land.WardSize)
		for p, name := range d.Sizes {
			size, err := parseSize(name)
			if err != nil {
				return nil, fmt.Errorf("%w: territory %d plot %d: %w", ErrInvalidLayout, d.Territory, p, err)
			}
			d.sizes[p] = size
		}
	}
	return &l, nil
}

func parseSize(name string) (land.Size, error) {
	for _, s := range []land.Size{land.SizeCottage, land.SizeHouse, land.SizeMansion} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown size %q", name)
}

// Rows expands the layout into land rows, every plot listed for sale at price(size).
func (l *Layout) Rows(price func(land.Size) uint64) []models.Land {
	var rows []models.Land
	for _, d := range l.Districts {
		for _, w := range d.Wards {
			id := land.NewSetID(d.Territory, w)
			for p := 0; p < land.WardSize; p++ {
				size := d.sizes[p]
				rows = append(rows, models.Land{
					LandSetID: uint32(id),
					LandID:    uint16(p),
					Type:      d.Type,
					Size:      uint8(size),
					Status:    uint8(land.StatusForSale),
					LandPrice: price(size),
				})
			}
		}
	}
	return rows
}
