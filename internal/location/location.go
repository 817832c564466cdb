// Package location implements a single function entry of an area that
// relates a start address and an offset to an absolute memory address.
package location

import (
	"math/bits"

	"github.com/retroenv/addrcalc/internal/address"
)

// Direction defines which of the start and memory address is derived from
// the other.
type Direction int

// Calculation directions.
const (
	StartToMemory Direction = iota
	MemoryToStart
)

// String implements the fmt.Stringer interface.
func (d Direction) String() string {
	if d == MemoryToStart {
		return "memory->start"
	}
	return "start->memory"
}

// Entry is a location within an area.
type Entry struct {
	Comment string

	Start  address.Value // address relative to the area base
	Offset address.Value
	Memory address.Value // absolute runtime address

	Direction Direction
}

// New returns a location entry with default values that calculates the
// memory address from the start address.
func New() *Entry {
	return &Entry{
		Start:     address.NewHex(0),
		Offset:    address.New(address.Hex),
		Memory:    address.New(address.Hex),
		Direction: StartToMemory,
	}
}

// ToggleDirection switches the calculation direction. It does not recompute
// or clear any field.
func (e *Entry) ToggleDirection() {
	if e.Direction == StartToMemory {
		e.Direction = MemoryToStart
	} else {
		e.Direction = StartToMemory
	}
}

// Derived returns the field that gets overwritten by Recompute.
func (e *Entry) Derived() *address.Value {
	if e.Direction == MemoryToStart {
		return &e.Start
	}
	return &e.Memory
}

// Authoritative returns the field that Recompute reads its input from.
func (e *Entry) Authoritative() *address.Value {
	if e.Direction == MemoryToStart {
		return &e.Memory
	}
	return &e.Start
}

// Recompute updates the derived field from the authoritative field, the
// offset and the given base address. A missing or invalid offset counts as
// zero. If the authoritative field has no value or the calculation overflows
// no field is modified and false is returned.
func (e *Entry) Recompute(base uint64) bool {
	offset, _ := e.Offset.Parse()

	if e.Direction == MemoryToStart {
		memory, ok := e.Memory.Parse()
		if !ok {
			return false
		}
		start, ok := StartAddress(base, offset, memory)
		if !ok {
			return false
		}
		e.Start.Format(start)
		return true
	}

	start, ok := e.Start.Parse()
	if !ok {
		return false
	}
	memory, ok := MemoryAddress(base, start, offset)
	if !ok {
		return false
	}
	e.Memory.Format(memory)
	return true
}

// MemoryAddress returns base + start + offset, it returns false if the sum
// does not fit into 64 bits.
func MemoryAddress(base, start, offset uint64) (uint64, bool) {
	sum, carry := bits.Add64(base, start, 0)
	if carry != 0 {
		return 0, false
	}
	sum, carry = bits.Add64(sum, offset, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// StartAddress returns memory - (base + offset), it returns false if the
// addition overflows or the result would be negative.
func StartAddress(base, offset, memory uint64) (uint64, bool) {
	sub, carry := bits.Add64(base, offset, 0)
	if carry != 0 {
		return 0, false
	}
	start, borrow := bits.Sub64(memory, sub, 0)
	if borrow != 0 {
		return 0, false
	}
	return start, true
}
