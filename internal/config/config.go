// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/addrcalc/internal/address"
	"github.com/retroenv/addrcalc/internal/calc"
	"github.com/retroenv/addrcalc/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateState creates the calculator state from the program options.
// The base address of every initial area is set from the options.
func CreateState(logger *log.Logger, opts options.Program) (*calc.State, error) {
	mode, err := address.ParseMode(opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("parsing base address mode: %w", err)
	}

	base := address.FromText(opts.Base, mode)
	if _, ok := base.Parse(); !ok {
		return nil, fmt.Errorf("invalid base address '%s' for mode %s", opts.Base, mode)
	}

	state := calc.New(logger, opts.Areas, opts.Locations)
	for _, a := range state.Areas() {
		a.Base = base
	}
	return state, nil
}
