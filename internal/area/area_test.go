package area

import (
	"testing"

	"github.com/retroenv/addrcalc/internal/address"
	"github.com/retroenv/addrcalc/internal/location"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	a := New()
	assert.Equal(t, "0x0", a.Base.Text())
	assert.Len(t, a.Locations(), DefaultLocations)

	a = NewWithLocations(0)
	assert.Equal(t, 0, a.Len())
}

func TestRecomputeAll(t *testing.T) {
	a := NewWithLocations(3)
	a.Base.SetText("0x1000")

	locs := a.Locations()
	locs[0].Start = address.FromText("256", address.Dec)
	locs[1].Start.SetText("")
	locs[1].Memory.SetText("0x9999")
	locs[2].Direction = location.MemoryToStart
	locs[2].Memory.SetText("0x1100")
	locs[2].Offset.SetText("0x10")

	assert.True(t, a.RecomputeAll())
	assert.Equal(t, "0x1100", locs[0].Memory.Text())
	assert.Equal(t, "0x9999", locs[1].Memory.Text())
	assert.Equal(t, "0xF0", locs[2].Start.Text())
}

func TestRecomputeAllInvalidBase(t *testing.T) {
	a := New()
	a.Base.SetText("0x")

	loc, ok := a.Location(0)
	assert.True(t, ok)
	loc.Start.SetText("0x10")
	loc.Memory.SetText("0x1")

	assert.False(t, a.RecomputeAll())
	assert.Equal(t, "0x1", loc.Memory.Text())
}

func TestRecomputeAllIdempotent(t *testing.T) {
	a := New()
	a.Base.SetText("0x400000")
	loc, _ := a.Location(0)
	loc.Start.SetText("0x1234")

	assert.True(t, a.RecomputeAll())
	first := loc.Memory.Text()
	assert.True(t, a.RecomputeAll())
	assert.Equal(t, first, loc.Memory.Text())
	assert.Equal(t, "0x401234", first)
}

func TestAppendRemoveLocation(t *testing.T) {
	a := NewWithLocations(0)
	assert.False(t, a.RemoveLastLocation())

	first := a.AppendDefaultLocation()
	first.Comment = "first"
	second := a.AppendDefaultLocation()
	second.Comment = "second"

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "first", a.Locations()[0].Comment)
	assert.Equal(t, "second", a.Locations()[1].Comment)

	assert.True(t, a.RemoveLastLocation())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, "first", a.Locations()[0].Comment)

	_, ok := a.Location(1)
	assert.False(t, ok)
	_, ok = a.Location(-1)
	assert.False(t, ok)
}
