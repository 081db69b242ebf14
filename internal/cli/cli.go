// Package cli parses command-line arguments, validates user input, and
// carries process-level concerns like exit codes. It translates flags into
// overrides on top of the loaded configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
)

// Subcommands.
const (
	CmdRun   = "run"
	CmdServe = "serve"
)

// ExitError is an error that carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Command is a parsed invocation.
type Command struct {
	Name       string
	ConfigPath string
	Final      bool

	logLevel  string
	logFormat string
	algorithm engine.Algorithm
	speed     int
	seed      int64
	generator string
	addr      string
	set       map[string]bool
}

const usage = `
gridpath - shortest-path search on a 2D grid (BFS, Dijkstra, A*).

Usage:
  gridpath run   [options]   play a search in the terminal
  gridpath serve [options]   serve the JSON/websocket API

Options:
`

// Parse processes command-line arguments. It returns the Command, a
// boolean indicating the program should exit cleanly (help), or an
// ExitError.
func Parse(args []string, output io.Writer) (*Command, bool, error) {
	slog.Debug("CLI parser started.")
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "--help" {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	cmd := &Command{Name: args[0], set: map[string]bool{}}
	switch cmd.Name {
	case CmdRun, CmdServe:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q: want %q or %q", cmd.Name, CmdRun, CmdServe)}
	}

	flagSet := flag.NewFlagSet("gridpath "+cmd.Name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(&cmd.ConfigPath, "config", "", "Path to a YAML configuration file.")
	flagSet.StringVar(&cmd.logLevel, "log-level", "", "Override the logging level: 'debug', 'info', 'warn' or 'error'.")
	flagSet.StringVar(&cmd.logFormat, "log-format", "", "Override the log format: 'text' or 'json'.")
	flagSet.Var(&cmd.algorithm, "algorithm", fmt.Sprintf("Search algorithm, one of %v.", engine.Algorithms()))
	flagSet.IntVar(&cmd.speed, "speed", 0, "Milliseconds taken off each playback delay.")
	flagSet.Int64Var(&cmd.seed, "seed", 0, "Seed for the random and maze generators.")
	flagSet.StringVar(&cmd.generator, "generator", "", "Grid generator: 'open', 'barrier', 'random' or 'maze'.")
	switch cmd.Name {
	case CmdRun:
		flagSet.BoolVar(&cmd.Final, "final", false, "Print only the final frame, without pacing.")
	case CmdServe:
		flagSet.StringVar(&cmd.addr, "addr", "", "Listen address, e.g. ':8080'.")
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}
	flagSet.Visit(func(f *flag.Flag) { cmd.set[f.Name] = true })

	slog.Debug("CLI parser finished successfully.", "command", cmd.Name, "flags", len(cmd.set))
	return cmd, false, nil
}

// Apply overlays explicitly set flags on cfg and re-validates it.
func (c *Command) Apply(cfg *config.Config) error {
	if c.set["log-level"] {
		cfg.Log.Level = strings.ToLower(c.logLevel)
	}
	if c.set["log-format"] {
		cfg.Log.Format = strings.ToLower(c.logFormat)
	}
	if c.set["algorithm"] {
		cfg.Scenario.Algorithm = c.algorithm
	}
	if c.set["speed"] {
		cfg.Scenario.Speed = c.speed
	}
	if c.set["seed"] {
		cfg.Scenario.Seed = c.seed
	}
	if c.set["generator"] {
		cfg.Scenario.Generator = config.Generator(strings.ToLower(c.generator))
	}
	if c.set["addr"] {
		cfg.Server.Addr = c.addr
	}

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	return nil
}
