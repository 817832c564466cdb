// Package calc contains the application state of the address calculator:
// the ordered areas and the currently selected area.
package calc

import (
	"errors"
	"fmt"

	"github.com/retroenv/addrcalc/internal/address"
	"github.com/retroenv/addrcalc/internal/area"
	"github.com/retroenv/addrcalc/internal/location"
	"github.com/retroenv/retrogolib/log"
)

// DefaultAreas is the number of areas the calculator starts with.
const DefaultAreas = 5

// ErrAreaIndex is returned when an area index is out of range.
var ErrAreaIndex = errors.New("area index out of range")

// State holds all areas and the index of the area that is displayed.
type State struct {
	logger *log.Logger

	areas    []*area.Area
	current  int
	imported string
}

// New returns a new state with the given number of areas, each containing
// the given number of default locations.
func New(logger *log.Logger, areas, locations int) *State {
	s := &State{
		logger: logger,
		areas:  make([]*area.Area, 0, max(areas, 0)),
	}
	for i := 0; i < areas; i++ {
		s.areas = append(s.areas, area.NewWithLocations(locations))
	}
	return s
}

// Areas returns all areas in tab order.
func (s *State) Areas() []*area.Area {
	return s.areas
}

// CurrentIndex returns the index of the selected area.
func (s *State) CurrentIndex() int {
	return s.current
}

// Current returns the selected area, it returns false if no area exists.
func (s *State) Current() (*area.Area, bool) {
	if len(s.areas) == 0 {
		return nil, false
	}
	return s.areas[s.current], true
}

// Select sets the selected area.
func (s *State) Select(index int) error {
	if index < 0 || index >= len(s.areas) {
		return fmt.Errorf("%w: %d", ErrAreaIndex, index)
	}
	s.current = index
	return nil
}

// AppendArea appends a new area with default locations and returns it.
// The selection is not changed.
func (s *State) AppendArea() *area.Area {
	a := area.New()
	s.areas = append(s.areas, a)
	return a
}

// RemoveLastArea removes the last area and keeps the selection in range.
// It returns false if no area exists.
func (s *State) RemoveLastArea() bool {
	if len(s.areas) == 0 {
		return false
	}

	s.areas[len(s.areas)-1] = nil
	s.areas = s.areas[:len(s.areas)-1]
	s.current = max(min(s.current, len(s.areas)-1), 0)
	return true
}

// Update recomputes the locations of the selected area. Areas that are not
// displayed are not updated.
func (s *State) Update() {
	a, ok := s.Current()
	if !ok {
		return
	}
	if !a.RecomputeAll() {
		s.logger.Debug("Base address not ready",
			log.String("base", a.Base.Text()))
	}
}

// ToggleMode toggles the mode of the given address value. A value without a
// numeric value is not changed and only a diagnostic is logged.
func (s *State) ToggleMode(v *address.Value) {
	if v.ToggleMode() {
		return
	}
	s.logger.Debug("Toggling address mode aborted, text is not a valid address",
		log.String("text", v.Text()),
		log.String("mode", v.Mode().String()))
}

// ToggleDirection switches the calculation direction of the given location.
func (s *State) ToggleDirection(entry *location.Entry) {
	entry.ToggleDirection()
}

// CaptureImport stores pasted address text. The text is kept as is and is
// not converted into areas.
func (s *State) CaptureImport(text string) {
	s.imported = text
}

// Imported returns the last captured import text.
func (s *State) Imported() string {
	return s.imported
}
