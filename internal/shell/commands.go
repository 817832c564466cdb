package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/addrcalc/internal/address"
	"github.com/retroenv/addrcalc/internal/area"
	"github.com/retroenv/addrcalc/internal/location"
)

var (
	errNoArea        = errors.New("no area exists, use 'area add'")
	errMissingArg    = errors.New("missing argument")
	errUnknownField  = errors.New("unknown field")
	errUnknownOption = errors.New("unknown option")
)

type handler func(s *Shell, args []string) error

type command struct {
	name    string
	usage   string
	help    string
	handler handler
	mutates bool // the current area is printed after the command
}

var commands []command

func init() {
	commands = []command{
		{name: "areas", help: "list all areas", handler: (*Shell).cmdAreas},
		{name: "area", usage: "add|remove|<index>", help: "append, remove the last or select an area", handler: (*Shell).cmdArea, mutates: true},
		{name: "base", usage: "<address>", help: "set the base address of the current area", handler: (*Shell).cmdBase, mutates: true},
		{name: "loc", usage: "add|remove", help: "append or remove the last location", handler: (*Shell).cmdLocation, mutates: true},
		{name: "start", usage: "<loc> [address]", help: "set the start address of a location", handler: fieldSetter("start"), mutates: true},
		{name: "offset", usage: "<loc> [address]", help: "set the offset of a location", handler: fieldSetter("offset"), mutates: true},
		{name: "memory", usage: "<loc> [address]", help: "set the memory address of a location", handler: fieldSetter("memory"), mutates: true},
		{name: "comment", usage: "<loc> [text]", help: "set the comment of a location", handler: (*Shell).cmdComment, mutates: true},
		{name: "mode", usage: "base|<loc> start|offset|memory", help: "toggle a field between hex and dec", handler: (*Shell).cmdMode, mutates: true},
		{name: "dir", usage: "<loc>", help: "toggle the calculation direction of a location", handler: (*Shell).cmdDirection, mutates: true},
		{name: "show", help: "print the current area", handler: (*Shell).cmdShow},
		{name: "import", usage: "[text]", help: "capture address text, read until a single '.' line if no text given", handler: (*Shell).cmdImport},
		{name: "help", help: "print this help", handler: (*Shell).cmdHelp},
	}
}

func findCommand(name string) (command, bool) {
	name = strings.ToLower(name)
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func (s *Shell) cmdAreas(_ []string) error {
	areas := s.state.Areas()
	if len(areas) == 0 {
		s.println("no areas")
		return nil
	}
	for i, a := range areas {
		marker := " "
		if i == s.state.CurrentIndex() {
			marker = ">"
		}
		s.printf("%s Area %d  base %s  locations %d\n", marker, i, a.Base.Text(), a.Len())
	}
	return nil
}

func (s *Shell) cmdArea(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: add, remove or area index", errMissingArg)
	}

	switch strings.ToLower(args[0]) {
	case "add", "+":
		s.state.AppendArea()
		return nil
	case "remove", "-":
		s.state.RemoveLastArea()
		return nil
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w '%s'", errUnknownOption, args[0])
	}
	return s.state.Select(index)
}

func (s *Shell) cmdBase(args []string) error {
	a, err := s.currentArea()
	if err != nil {
		return err
	}
	a.Base.SetText(joinText(args))
	return nil
}

func (s *Shell) cmdLocation(args []string) error {
	a, err := s.currentArea()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: add or remove", errMissingArg)
	}

	switch strings.ToLower(args[0]) {
	case "add", "+":
		a.AppendDefaultLocation()
	case "remove", "-":
		a.RemoveLastLocation()
	default:
		return fmt.Errorf("%w '%s'", errUnknownOption, args[0])
	}
	return nil
}

func fieldSetter(field string) handler {
	return func(s *Shell, args []string) error {
		entry, rest, err := s.locationArg(args)
		if err != nil {
			return err
		}
		v, err := fieldOf(entry, field)
		if err != nil {
			return err
		}
		v.SetText(joinText(rest))
		return nil
	}
}

func (s *Shell) cmdComment(args []string) error {
	entry, rest, err := s.locationArg(args)
	if err != nil {
		return err
	}
	entry.Comment = strings.Join(rest, " ")
	return nil
}

func (s *Shell) cmdMode(args []string) error {
	if len(args) > 0 && strings.EqualFold(args[0], "base") {
		a, err := s.currentArea()
		if err != nil {
			return err
		}
		s.state.ToggleMode(&a.Base)
		return nil
	}

	entry, rest, err := s.locationArg(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: start, offset or memory", errMissingArg)
	}
	v, err := fieldOf(entry, rest[0])
	if err != nil {
		return err
	}
	s.state.ToggleMode(v)
	return nil
}

func (s *Shell) cmdDirection(args []string) error {
	entry, _, err := s.locationArg(args)
	if err != nil {
		return err
	}
	s.state.ToggleDirection(entry)
	return nil
}

func (s *Shell) cmdShow(_ []string) error {
	s.printArea()
	return nil
}

func (s *Shell) cmdImport(args []string) error {
	if len(args) > 0 {
		s.state.CaptureImport(strings.Join(args, " "))
		return nil
	}

	var lines []string
	for s.input.Scan() {
		line := s.input.Text()
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	if err := s.input.Err(); err != nil {
		return fmt.Errorf("reading import text: %w", err)
	}

	s.state.CaptureImport(strings.Join(lines, "\n"))
	s.printf("captured %d lines\n", len(lines))
	return nil
}

func (s *Shell) cmdHelp(_ []string) error {
	for _, cmd := range commands {
		s.printf("  %-8s %-32s %s\n", cmd.name, cmd.usage, cmd.help)
	}
	s.printf("  %-8s %-32s %s\n", "quit", "", "leave the calculator")
	return nil
}

func (s *Shell) currentArea() (*area.Area, error) {
	a, ok := s.state.Current()
	if !ok {
		return nil, errNoArea
	}
	return a, nil
}

// locationArg resolves the location index of the first argument and returns
// the remaining arguments.
func (s *Shell) locationArg(args []string) (*location.Entry, []string, error) {
	a, err := s.currentArea()
	if err != nil {
		return nil, nil, err
	}
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: location index", errMissingArg)
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("parsing location index '%s': %w", args[0], err)
	}
	entry, ok := a.Location(index)
	if !ok {
		return nil, nil, fmt.Errorf("location index %d out of range, area has %d locations", index, a.Len())
	}
	return entry, args[1:], nil
}

func fieldOf(entry *location.Entry, name string) (*address.Value, error) {
	switch strings.ToLower(name) {
	case "start", "s":
		return &entry.Start, nil
	case "offset", "o":
		return &entry.Offset, nil
	case "memory", "mem", "m":
		return &entry.Memory, nil
	default:
		return nil, fmt.Errorf("%w '%s'", errUnknownField, name)
	}
}

// joinText returns the address text of the arguments, "" clears a field.
func joinText(args []string) string {
	text := strings.Join(args, " ")
	if text == `""` {
		return ""
	}
	return text
}
