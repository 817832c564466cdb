package address

import (
	"fmt"
	"strings"
)

// Mode defines the notation used to display and interpret an address.
type Mode int

// Supported modes.
const (
	Hex Mode = iota
	Dec
)

// String implements the fmt.Stringer interface.
func (m Mode) String() string {
	switch m {
	case Hex:
		return "hex"
	case Dec:
		return "dec"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Radix returns the label shown next to an input field, the numeric base.
func (m Mode) Radix() string {
	if m == Dec {
		return "10"
	}
	return "16"
}

// Toggled returns the other mode.
func (m Mode) Toggled() Mode {
	if m == Hex {
		return Dec
	}
	return Hex
}

// ParseMode returns the mode matching the given name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "h", "16":
		return Hex, nil
	case "dec", "d", "10":
		return Dec, nil
	default:
		return Hex, fmt.Errorf("unsupported address mode '%s'", s)
	}
}
