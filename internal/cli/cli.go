// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/addrcalc/internal/area"
	"github.com/retroenv/addrcalc/internal/calc"
	"github.com/retroenv/addrcalc/internal/options"
)

// maxCount limits the number of initial areas and locations.
const maxCount = 256

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(arguments); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	if err := validateArgs(flags.Args()); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage information to stdout.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: addrcalc [options]\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that no positional arguments are passed
func validateArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return &UsageError{
		msg: fmt.Sprintf("Unexpected argument %s, the calculator does not accept positional arguments", args[0]),
	}
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	opts.Base = strings.TrimSpace(opts.Base)

	if opts.Areas < 0 || opts.Areas > maxCount {
		return fmt.Errorf("invalid number of areas %d, valid range: 0-%d", opts.Areas, maxCount)
	}
	if opts.Locations < 0 || opts.Locations > maxCount {
		return fmt.Errorf("invalid number of locations %d, valid range: 0-%d", opts.Locations, maxCount)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Base, "base", "0x0", "base address of the initial areas")
	flags.StringVar(&opts.Mode, "mode", "hex", "mode of the base address (hex/dec)")
	flags.StringVar(&opts.Execute, "e", "", "execute the given ';' separated commands and exit")
	flags.IntVar(&opts.Areas, "areas", calc.DefaultAreas, "number of initial areas")
	flags.IntVar(&opts.Locations, "locations", area.DefaultLocations, "number of locations per initial area")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
