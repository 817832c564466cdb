// Package options contains the program options.
package options

// Parameters contains the initial values of the calculator.
type Parameters struct {
	Base    string // base address text used for all initial areas
	Mode    string // mode of the base address fields
	Execute string // commands to run instead of the interactive shell
}

// Flags contains behavior options.
type Flags struct {
	Areas     int
	Locations int
	Debug     bool
	Quiet     bool
}

// Program options of the calculator.
type Program struct {
	Parameters
	Flags
}
