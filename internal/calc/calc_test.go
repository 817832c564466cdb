package calc

import (
	"errors"
	"testing"

	"github.com/retroenv/addrcalc/internal/address"
	"github.com/retroenv/addrcalc/internal/area"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	s := New(log.NewTestLogger(t), DefaultAreas, area.DefaultLocations)
	assert.Len(t, s.Areas(), DefaultAreas)
	assert.Equal(t, 0, s.CurrentIndex())

	a, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, area.DefaultLocations, a.Len())
}

func TestSelect(t *testing.T) {
	s := New(log.NewTestLogger(t), 3, 1)

	assert.NoError(t, s.Select(2))
	assert.Equal(t, 2, s.CurrentIndex())

	err := s.Select(3)
	assert.True(t, errors.Is(err, ErrAreaIndex))
	assert.Equal(t, 2, s.CurrentIndex())

	err = s.Select(-1)
	assert.True(t, errors.Is(err, ErrAreaIndex))
}

func TestAppendArea(t *testing.T) {
	s := New(log.NewTestLogger(t), 2, 1)
	assert.NoError(t, s.Select(1))

	s.AppendArea()
	assert.Len(t, s.Areas(), 3)
	assert.Equal(t, 1, s.CurrentIndex())
}

func TestRemoveLastAreaClampsSelection(t *testing.T) {
	s := New(log.NewTestLogger(t), 3, 1)
	assert.NoError(t, s.Select(2))

	assert.True(t, s.RemoveLastArea())
	assert.Equal(t, 1, s.CurrentIndex())

	assert.NoError(t, s.Select(0))
	assert.True(t, s.RemoveLastArea())
	assert.Equal(t, 0, s.CurrentIndex())

	assert.True(t, s.RemoveLastArea())
	assert.Equal(t, 0, s.CurrentIndex())
	_, ok := s.Current()
	assert.False(t, ok)

	assert.False(t, s.RemoveLastArea())
	s.Update()

	s.AppendArea()
	a, ok := s.Current()
	assert.True(t, ok)
	assert.NotNil(t, a)
}

func TestUpdateOnlyCurrentArea(t *testing.T) {
	s := New(log.NewTestLogger(t), 2, 1)
	for _, a := range s.Areas() {
		a.Base.SetText("0x1000")
		a.Locations()[0].Start = address.FromText("256", address.Dec)
	}

	s.Update()
	assert.Equal(t, "0x1100", s.Areas()[0].Locations()[0].Memory.Text())
	assert.True(t, s.Areas()[1].Locations()[0].Memory.IsEmpty())

	assert.NoError(t, s.Select(1))
	s.Update()
	assert.Equal(t, "0x1100", s.Areas()[1].Locations()[0].Memory.Text())
}

func TestUpdateInvalidBase(t *testing.T) {
	s := New(log.NewTestLogger(t), 1, 1)
	a, _ := s.Current()
	a.Base.SetText("")
	a.Locations()[0].Memory.SetText("0x5")

	s.Update()
	assert.Equal(t, "0x5", a.Locations()[0].Memory.Text())
}

func TestToggleMode(t *testing.T) {
	s := New(log.NewTestLogger(t), 1, 1)

	v := address.FromText("0x2A", address.Hex)
	s.ToggleMode(&v)
	assert.Equal(t, "42", v.Text())
	assert.Equal(t, address.Dec, v.Mode())

	invalid := address.FromText("not-a-number", address.Hex)
	s.ToggleMode(&invalid)
	assert.Equal(t, "not-a-number", invalid.Text())
	assert.Equal(t, address.Hex, invalid.Mode())
}

func TestToggleDirectionDoesNotRecompute(t *testing.T) {
	s := New(log.NewTestLogger(t), 1, 1)
	a, _ := s.Current()
	loc := a.Locations()[0]
	loc.Memory.SetText("0x1234")

	s.ToggleDirection(loc)
	assert.Equal(t, "0x0", loc.Start.Text())

	a.Base.SetText("0x1000")
	s.Update()
	assert.Equal(t, "0x234", loc.Start.Text())
}

func TestCaptureImport(t *testing.T) {
	s := New(log.NewTestLogger(t), 1, 1)
	s.CaptureImport("0x1000 main\n0x2000 init")
	assert.Equal(t, "0x1000 main\n0x2000 init", s.Imported())
	assert.Len(t, s.Areas(), 1)
}
