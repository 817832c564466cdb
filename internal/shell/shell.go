// Package shell implements a line based terminal interface for the address
// calculator. Every command is one interaction, after which the locations of
// the current area are recomputed.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/retroenv/addrcalc/internal/calc"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const prompt = "> "

// Shell reads commands and applies them to the calculator state.
type Shell struct {
	logger *log.Logger
	state  *calc.State

	input  *bufio.Scanner
	output io.Writer
	prompt bool // print a prompt before reading a command
}

// New returns a shell reading from the given input.
func New(logger *log.Logger, state *calc.State, input io.Reader, output io.Writer) *Shell {
	return &Shell{
		logger: logger,
		state:  state,
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// NewTerminal returns a shell that uses stdin and stdout. A prompt is only
// printed if both are connected to a real terminal.
func NewTerminal(logger *log.Logger, state *calc.State) *Shell {
	s := New(logger, state, os.Stdin, os.Stdout)
	s.prompt = term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	return s
}

// Run reads and executes commands until the input ends, a quit command is
// given or the context gets cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.state.Update()
	s.printArea()

	for {
		if s.prompt {
			s.printf("%s", prompt)
		}
		if !s.input.Scan() {
			break
		}

		// the context could have been cancelled while waiting for input
		if err := ctx.Err(); err != nil {
			return err
		}

		if quit := s.Execute(s.input.Text()); quit {
			return nil
		}
	}

	if err := s.input.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return ctx.Err()
}

// RunScript executes the ';' separated commands and prints the resulting
// current area.
func (s *Shell) RunScript(script string) {
	for _, line := range strings.Split(script, ";") {
		if quit := s.execute(line, false); quit {
			return
		}
	}
	s.printArea()
}

// Execute runs a single command line. It returns whether the shell should
// quit. Errors are printed and do not stop the shell.
func (s *Shell) Execute(line string) bool {
	return s.execute(line, true)
}

func (s *Shell) execute(line string, printChanges bool) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	name := strings.ToLower(fields[0])
	if name == "quit" || name == "exit" {
		return true
	}

	cmd, ok := findCommand(name)
	if !ok {
		s.printError(fmt.Errorf("unknown command '%s', use 'help' to list commands", fields[0]))
		return false
	}

	if err := cmd.handler(s, fields[1:]); err != nil {
		s.logger.Debug("Command failed",
			log.String("command", cmd.name),
			log.Err(err))
		s.printError(err)
	}

	s.state.Update()
	if cmd.mutates && printChanges {
		s.printArea()
	}
	return false
}

func (s *Shell) printArea() {
	a, ok := s.state.Current()
	if !ok {
		s.println("no areas")
		return
	}

	s.printf("Area %d/%d  base %s [%s]\n", s.state.CurrentIndex(), len(s.state.Areas()),
		a.Base.Text(), a.Base.Mode().Radix())

	w := tabwriter.NewWriter(s.output, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tdirection\tstart\toffset\tmemory\tcomment")
	for i, loc := range a.Locations() {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s [%s]\t%s [%s]\t%s [%s]\t%s\n", i, loc.Direction,
			loc.Start.Text(), loc.Start.Mode().Radix(),
			loc.Offset.Text(), loc.Offset.Mode().Radix(),
			loc.Memory.Text(), loc.Memory.Mode().Radix(),
			loc.Comment)
	}
	_ = w.Flush()
}

func (s *Shell) printError(err error) {
	s.printf("* %s\n", err)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.output, format, args...)
}

func (s *Shell) println(text string) {
	_, _ = fmt.Fprintln(s.output, text)
}
