// Package area implements a group of locations that share a base address,
// for example the functions of one loaded module.
package area

import (
	"github.com/retroenv/addrcalc/internal/address"
	"github.com/retroenv/addrcalc/internal/location"
)

// DefaultLocations is the number of locations a new area is created with.
const DefaultLocations = 1

// Area is a base address with an ordered list of locations.
type Area struct {
	Base address.Value

	locations []*location.Entry
}

// New returns an area with a zero base address and the default locations.
func New() *Area {
	return NewWithLocations(DefaultLocations)
}

// NewWithLocations returns an area with a zero base address and the given
// number of default locations.
func NewWithLocations(count int) *Area {
	a := &Area{
		Base:      address.NewHex(0),
		locations: make([]*location.Entry, 0, max(count, 0)),
	}
	for i := 0; i < count; i++ {
		a.AppendDefaultLocation()
	}
	return a
}

// RecomputeAll recomputes all locations in order using the base address.
// If the base address has no value the locations are left untouched and
// false is returned.
func (a *Area) RecomputeAll() bool {
	base, ok := a.Base.Parse()
	if !ok {
		return false
	}

	for _, loc := range a.locations {
		loc.Recompute(base)
	}
	return true
}

// AppendDefaultLocation appends a new default location and returns it.
func (a *Area) AppendDefaultLocation() *location.Entry {
	loc := location.New()
	a.locations = append(a.locations, loc)
	return loc
}

// RemoveLastLocation removes the last location. It returns false if the
// area has no locations.
func (a *Area) RemoveLastLocation() bool {
	if len(a.locations) == 0 {
		return false
	}
	a.locations[len(a.locations)-1] = nil
	a.locations = a.locations[:len(a.locations)-1]
	return true
}

// Locations returns the locations in display order.
func (a *Area) Locations() []*location.Entry {
	return a.locations
}

// Location returns the location at the given index.
func (a *Area) Location(index int) (*location.Entry, bool) {
	if index < 0 || index >= len(a.locations) {
		return nil, false
	}
	return a.locations[index], true
}

// Len returns the number of locations.
func (a *Area) Len() int {
	return len(a.locations)
}
