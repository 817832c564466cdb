// Package address implements editable address text that is bound to a
// display mode of either hexadecimal or decimal notation.
package address

import (
	"strconv"
	"strings"
)

const hexPrefix = "0x"

// Value is an address held as editable text together with the mode that
// defines how the text is interpreted and formatted.
// An empty or partially typed text is a valid state and simply has no
// numeric value yet.
type Value struct {
	text string
	mode Mode
}

// New returns an empty value using the given mode.
func New(mode Mode) Value {
	return Value{mode: mode}
}

// NewHex returns a hexadecimal value formatted from the given number.
func NewHex(v uint64) Value {
	val := Value{mode: Hex}
	val.Format(v)
	return val
}

// NewDec returns a decimal value formatted from the given number.
func NewDec(v uint64) Value {
	val := Value{mode: Dec}
	val.Format(v)
	return val
}

// FromText returns a value holding the given text unmodified.
func FromText(text string, mode Mode) Value {
	return Value{text: text, mode: mode}
}

// Text returns the raw text buffer.
func (v Value) Text() string {
	return v.text
}

// SetText overwrites the raw text buffer, the mode is kept.
func (v *Value) SetText(text string) {
	v.text = text
}

// Buffer returns the text buffer for direct binding to an input field.
func (v *Value) Buffer() *string {
	return &v.text
}

// Mode returns the current display mode.
func (v Value) Mode() Mode {
	return v.mode
}

// IsEmpty returns whether the text buffer is empty, independent of the mode.
func (v Value) IsEmpty() bool {
	return v.text == ""
}

// String implements the fmt.Stringer interface.
func (v Value) String() string {
	return v.text
}

// Parse returns the numeric value of the text interpreted in the current mode.
// The mode is authoritative, no base detection is done.
func (v Value) Parse() (uint64, bool) {
	text := strings.ToLower(strings.TrimSpace(v.text))

	switch v.mode {
	case Dec:
		return parseUint(text, 10)
	case Hex:
		return parseUint(strings.TrimPrefix(text, hexPrefix), 16)
	default:
		return 0, false
	}
}

// Format overwrites the text with the canonical representation of the given
// number in the current mode.
func (v *Value) Format(n uint64) {
	switch v.mode {
	case Dec:
		v.text = strconv.FormatUint(n, 10)
	default:
		v.text = hexPrefix + strings.ToUpper(strconv.FormatUint(n, 16))
	}
}

// ToggleMode switches between hexadecimal and decimal mode and reformats the
// text in the new mode. If the current text has no numeric value the value is
// left unchanged and false is returned.
func (v *Value) ToggleMode() bool {
	n, ok := v.Parse()
	if !ok {
		return false
	}

	v.mode = v.mode.Toggled()
	v.Format(n)
	return true
}

// ParseUnmoded parses text of a field that has no mode attached.
// Text consisting only of ASCII digits is read as decimal, anything else is
// read as hexadecimal with an optional 0x prefix. A 0x prefix always selects
// hexadecimal.
func ParseUnmoded(text string) (uint64, bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	if hex, ok := strings.CutPrefix(text, hexPrefix); ok {
		return parseUint(hex, 16)
	}
	if isDecimal(text) {
		return parseUint(text, 10)
	}
	return parseUint(text, 16)
}

// parseUint only accepts plain digits of the given base, unlike
// strconv.ParseUint it rejects signs and underscores.
func parseUint(text string, base int) (uint64, bool) {
	if text == "" {
		return 0, false
	}
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i], base) {
			return 0, false
		}
	}

	n, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDecimal(text string) bool {
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i], 10) {
			return false
		}
	}
	return true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	default:
		return false
	}
}
