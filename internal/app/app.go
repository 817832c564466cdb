// Package app provides the main application helpers for the calculator.
package app

import (
	"strconv"

	"github.com/retroenv/addrcalc/internal/calc"
	"github.com/retroenv/addrcalc/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("addrcalc - module address calculator",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the initial calculator setup.
func PrintInfo(logger *log.Logger, opts options.Program, state *calc.State) {
	if opts.Quiet || opts.Execute != "" {
		return
	}

	base := "none"
	if a, ok := state.Current(); ok {
		base = a.Base.Text()
	}
	logger.Info("Calculator ready, use 'help' to list commands",
		log.String("areas", strconv.Itoa(len(state.Areas()))),
		log.String("base", base),
	)
}
