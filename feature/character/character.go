package character

import (
	"errors"
	"fmt"
	"sync"

	"housing-manager/feature/housing/inventory"
)

// BagSlots is the capacity of every carried bag.
const BagSlots = 35

// Bags lists the carried bag kinds in fill order.
var Bags = [...]inventory.Kind{inventory.KindBag0, inventory.KindBag1, inventory.KindBag2, inventory.KindBag3}

var (
	// ErrNotCarried is returned for a container that is not a carried bag.
	ErrNotCarried = errors.New("not a carried bag")
	// ErrEmptySlot is returned when taking from an empty bag slot.
	ErrEmptySlot = errors.New("bag slot is empty")
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Registry keeps carried bags and currency per character in memory.
type Registry struct {
	mu       sync.Mutex
	bags     map[uint64]map[inventory.Kind]*inventory.Container
	balances map[uint64]uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bags:     make(map[uint64]map[inventory.Kind]*inventory.Container),
		balances: make(map[uint64]uint64),
	}
}

func (r *Registry) bag(actorID uint64, kind inventory.Kind) (*inventory.Container, error) {
	if !kind.IsCarried() {
		return nil, fmt.Errorf("container %s: %w", kind, ErrNotCarried)
	}
	bags, ok := r.bags[actorID]
	if !ok {
		bags = make(map[inventory.Kind]*inventory.Container, len(Bags))
		for _, k := range Bags {
			bags[k] = inventory.NewContainer(k, BagSlots, "charaiteminventory", false)
		}
		r.bags[actorID] = bags
	}
	return bags[kind], nil
}

// Peek returns the item at a bag slot without removing it.
func (r *Registry) Peek(actorID uint64, kind inventory.Kind, slot uint16) (*inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.bag(actorID, kind)
	if err != nil {
		return nil, err
	}
	it, ok := b.Item(slot)
	if !ok {
		return nil, fmt.Errorf("%s slot %d: %w", kind, slot, ErrEmptySlot)
	}
	return it, nil
}

// Take unlinks the item at a bag slot.
func (r *Registry) Take(actorID uint64, kind inventory.Kind, slot uint16) (*inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.bag(actorID, kind)
	if err != nil {
		return nil, err
	}
	it, ok := b.Remove(slot)
	if !ok {
		return nil, fmt.Errorf("%s slot %d: %w", kind, slot, ErrEmptySlot)
	}
	return it, nil
}

// Put links item into a specific bag slot.
func (r *Registry) Put(actorID uint64, kind inventory.Kind, slot uint16, item *inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.bag(actorID, kind)
	if err != nil {
		return err
	}
	return b.Set(slot, item)
}

// FreeSlot returns the first free slot across the bags in fill order.
func (r *Registry) FreeSlot(actorID uint64) (inventory.Kind, uint16, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range Bags {
		b, _ := r.bag(actorID, k)
		if slot, ok := b.FreeSlot(); ok {
			return k, slot, true
		}
	}
	return 0, 0, false
}

// Snapshot copies one bag.
func (r *Registry) Snapshot(actorID uint64, kind inventory.Kind) (inventory.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.bag(actorID, kind)
	if err != nil {
		return inventory.Snapshot{}, err
	}
	return b.Snapshot(), nil
}

// Balance returns the actor's currency.
func (r *Registry) Balance(actorID uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balances[actorID]
}

// Debit removes amount from the actor's currency.
func (r *Registry) Debit(actorID, amount uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.balances[actorID] < amount {
		return fmt.Errorf("debit %d of %d: %w", amount, r.balances[actorID], ErrInsufficientFunds)
	}
	r.balances[actorID] -= amount
	return nil
}

// Credit adds amount to the actor's currency.
func (r *Registry) Credit(actorID, amount uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[actorID] += amount
	return nil
}
