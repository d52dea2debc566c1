package zone

import (
	"fmt"

	"housing-manager/feature/housing/land"
)

// Context is where an actor currently stands: outside in a ward, or inside an
// estate. It is resolved once at the call boundary.
type Context interface {
	// Identity resolves the estate targeted by a request naming plot.
	Identity(plot uint16) land.Identity
	// Interior reports whether the actor is inside an estate.
	Interior() bool
	sealed()
}

// Exterior is a ward zone. Requests name the plot explicitly.
type Exterior struct {
	Ward land.SetID
	// WorldID of the ward.
	WorldID uint16
}

func (e Exterior) Identity(plot uint16) land.Identity { return e.Ward.Identity(e.WorldID, plot) }
func (Exterior) Interior() bool                       { return false }
func (Exterior) sealed()                              {}

// Interior is an estate instance. The plot is implied by the instance.
type Interior struct {
	Estate land.Identity
}

func (i Interior) Identity(uint16) land.Identity { return i.Estate }
func (Interior) Interior() bool                  { return true }
func (Interior) sealed()                         {}

// Names accepted by Parse.
const (
	NameExterior = "exterior"
	NameInterior = "interior"
)

// Parse builds a context from its name and the estate it refers to.
func Parse(name string, estate land.Identity) (Context, error) {
	switch name {
	case NameExterior:
		return Exterior{Ward: estate.SetID(), WorldID: estate.WorldID}, nil
	case NameInterior:
		return Interior{Estate: estate}, nil
	default:
		return nil, fmt.Errorf("unknown zone %q", name)
	}
}
