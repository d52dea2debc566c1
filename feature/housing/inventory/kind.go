package inventory

import (
	"fmt"
	"sort"
)

// Kind is a container kind. The numeric values are the persisted container ids.
// The set is closed: only kinds present in the rules table are valid.
type Kind uint16

const (
	KindBag0 Kind = 0
	KindBag1 Kind = 1
	KindBag2 Kind = 2
	KindBag3 Kind = 3

	KindExteriorAppearance   Kind = 25000
	KindExteriorPlacedItems  Kind = 25001
	KindInteriorAppearance   Kind = 25002
	KindInteriorPlacedItems1 Kind = 25003
	KindInteriorPlacedItems2 Kind = 25004
	KindInteriorPlacedItems3 Kind = 25005
	KindInteriorPlacedItems4 Kind = 25006
	KindInteriorPlacedItems5 Kind = 25007
	KindInteriorPlacedItems6 Kind = 25008
	KindInteriorPlacedItems7 Kind = 25009
	KindInteriorPlacedItems8 Kind = 25010

	KindExteriorStoreroom  Kind = 27000
	KindInteriorStoreroom1 Kind = 27001
	KindInteriorStoreroom2 Kind = 27002
	KindInteriorStoreroom3 Kind = 27003
	KindInteriorStoreroom4 Kind = 27004
	KindInteriorStoreroom5 Kind = 27005
	KindInteriorStoreroom6 Kind = 27006
	KindInteriorStoreroom7 Kind = 27007
	KindInteriorStoreroom8 Kind = 27008
)

const (
	// PairSlots is the capacity of every interior room/storeroom container.
	PairSlots = 50
	// InteriorPairs is the number of interior room/storeroom pairs.
	InteriorPairs = 8
	// MaxInteriorSlots is the largest interior placement index space.
	MaxInteriorSlots = PairSlots * InteriorPairs

	// ExteriorAppearanceSlots and InteriorAppearanceSlots size the boot placeholders.
	ExteriorAppearanceSlots = 8
	InteriorAppearanceSlots = 10

	// Table is the backing table of every estate container.
	Table = "houseiteminventory"
)

// Family groups kinds by role.
type Family uint8

const (
	FamilyCarried Family = iota
	FamilyAppearance
	FamilyPlaced
	FamilyStoreroom
)

func (f Family) String() string {
	switch f {
	case FamilyCarried:
		return "carried"
	case FamilyAppearance:
		return "appearance"
	case FamilyPlaced:
		return "placed"
	case FamilyStoreroom:
		return "storeroom"
	default:
		return "unknown"
	}
}

// Rules describes how a kind behaves.
type Rules struct {
	Name     string
	Family   Family
	Exterior bool
	// Pair is the interior pair index, -1 for kinds outside the eight pairs.
	Pair int
	// Partner is the placed/storeroom counterpart, zero when there is none.
	Partner Kind
}

// InteriorPlaced lists the interior placed-item kinds in scan order.
var InteriorPlaced = [InteriorPairs]Kind{
	KindInteriorPlacedItems1, KindInteriorPlacedItems2, KindInteriorPlacedItems3, KindInteriorPlacedItems4,
	KindInteriorPlacedItems5, KindInteriorPlacedItems6, KindInteriorPlacedItems7, KindInteriorPlacedItems8,
}

// InteriorStorerooms lists the interior storeroom kinds, paired by index with InteriorPlaced.
var InteriorStorerooms = [InteriorPairs]Kind{
	KindInteriorStoreroom1, KindInteriorStoreroom2, KindInteriorStoreroom3, KindInteriorStoreroom4,
	KindInteriorStoreroom5, KindInteriorStoreroom6, KindInteriorStoreroom7, KindInteriorStoreroom8,
}

var rules = buildRules()

func buildRules() map[Kind]Rules {
	r := map[Kind]Rules{
		KindBag0: {Name: "bag0", Family: FamilyCarried, Pair: -1},
		KindBag1: {Name: "bag1", Family: FamilyCarried, Pair: -1},
		KindBag2: {Name: "bag2", Family: FamilyCarried, Pair: -1},
		KindBag3: {Name: "bag3", Family: FamilyCarried, Pair: -1},

		KindExteriorAppearance:  {Name: "exterior_appearance", Family: FamilyAppearance, Exterior: true, Pair: -1},
		KindInteriorAppearance:  {Name: "interior_appearance", Family: FamilyAppearance, Pair: -1},
		KindExteriorPlacedItems: {Name: "exterior_placed", Family: FamilyPlaced, Exterior: true, Pair: -1, Partner: KindExteriorStoreroom},
		KindExteriorStoreroom:   {Name: "exterior_storeroom", Family: FamilyStoreroom, Exterior: true, Pair: -1, Partner: KindExteriorPlacedItems},
	}
	for i := 0; i < InteriorPairs; i++ {
		r[InteriorPlaced[i]] = Rules{
			Name:    fmt.Sprintf("interior_placed_%d", i+1),
			Family:  FamilyPlaced,
			Pair:    i,
			Partner: InteriorStorerooms[i],
		}
		r[InteriorStorerooms[i]] = Rules{
			Name:    fmt.Sprintf("interior_storeroom_%d", i+1),
			Family:  FamilyStoreroom,
			Pair:    i,
			Partner: InteriorPlaced[i],
		}
	}
	return r
}

// ParseKind validates a persisted or requested container id.
func ParseKind(id uint16) (Kind, error) {
	k := Kind(id)
	if _, ok := rules[k]; !ok {
		return 0, fmt.Errorf("container %d: %w", id, ErrUnknownKind)
	}
	return k, nil
}

// Kinds returns every valid kind in ascending order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(rules))
	for k := range rules {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Rules returns the rules of k.
func (k Kind) Rules() (Rules, bool) {
	r, ok := rules[k]
	return r, ok
}

// Valid reports whether k is in the closed set.
func (k Kind) Valid() bool {
	_, ok := rules[k]
	return ok
}

func (k Kind) family() (Family, bool) {
	r, ok := rules[k]
	return r.Family, ok
}

// IsCarried reports whether k is a character bag.
func (k Kind) IsCarried() bool {
	f, ok := k.family()
	return ok && f == FamilyCarried
}

// IsPlaced reports whether items of k are visible in the world.
func (k Kind) IsPlaced() bool {
	f, ok := k.family()
	return ok && f == FamilyPlaced
}

// IsAppearance reports whether k holds house appearance pieces.
func (k Kind) IsAppearance() bool {
	f, ok := k.family()
	return ok && f == FamilyAppearance
}

// IsStoreroom reports whether k holds stored estate items.
func (k Kind) IsStoreroom() bool {
	f, ok := k.family()
	return ok && f == FamilyStoreroom
}

// IsExterior reports whether k belongs to the yard side of an estate.
func (k Kind) IsExterior() bool {
	r, ok := rules[k]
	return ok && r.Exterior
}

// Storeroom returns the storeroom paired with a placed kind.
func (k Kind) Storeroom() (Kind, bool) {
	r, ok := rules[k]
	if !ok || r.Family != FamilyPlaced {
		return 0, false
	}
	return r.Partner, true
}

func (k Kind) String() string {
	if r, ok := rules[k]; ok {
		return r.Name
	}
	return fmt.Sprintf("kind(%d)", uint16(k))
}

// ResolveInteriorSlot maps an interior placement index to its container kind,
// pair index and slot within the container: pair = slot/50, pairSlot = slot%50.
func ResolveInteriorSlot(slot uint16) (Kind, int, uint16, error) {
	pair := int(slot / PairSlots)
	if pair >= InteriorPairs {
		return 0, 0, 0, fmt.Errorf("interior slot %d: %w", slot, ErrInvalidSlot)
	}
	return InteriorPlaced[pair], pair, slot % PairSlots, nil
}

// InteriorIndex is the inverse of ResolveInteriorSlot.
func InteriorIndex(pair int, slot uint16) uint16 {
	return uint16(pair)*PairSlots + slot
}
