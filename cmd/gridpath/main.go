// Command gridpath plays grid shortest-path searches in the terminal or
// serves them over HTTP and websocket.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/cli"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/playback"
	"github.com/katalvlaran/gridpath/server"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the application logic for easier testing.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cmd, shouldExit, err := cli.Parse(args, outW)
	if err != nil || shouldExit {
		return err
	}

	cfg, err := config.Load(cmd.ConfigPath)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	if err = cmd.Apply(cfg); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log, logW)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	g, err := cfg.Scenario.Grid()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("scenario: %v", err)}
	}

	switch cmd.Name {
	case cli.CmdServe:
		srv := server.New(g,
			server.WithLogger(logger),
			server.WithAlgorithm(cfg.Scenario.Algorithm),
			server.WithSpeed(cfg.Scenario.Speed),
		)
		return srv.ListenAndServe(ctx, cfg.Server.Addr)
	default:
		return play(ctx, outW, g, cfg.Scenario, cmd.Final)
	}
}

// play streams one search into an ASCII canvas. With final set, frames
// are not paced and only the last one is printed.
func play(ctx context.Context, outW io.Writer, g *gridgraph.Grid, sc config.Scenario, final bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	canvas := playback.NewCanvas(g)
	stream := engine.Start(ctx, g, g.Start, g.Goal, sc.Algorithm)

	pace := playback.NewPacing(sc.Algorithm, sc.Speed)
	render := func(ev engine.Event) error {
		if err := canvas.Apply(ev); err != nil {
			return err
		}
		_, err := fmt.Fprint(outW, clearScreen+canvas.Frame())
		return err
	}
	if final {
		pace = playback.Pacing{}
		render = canvas.Apply
	}

	if err := playback.Play(ctx, stream.Events(), pace, render); err != nil {
		return err
	}
	res, err := stream.Wait()
	if final {
		fmt.Fprint(outW, canvas.Frame())
	}

	switch {
	case err == nil:
		fmt.Fprintf(outW, "%s: path found, cost=%d visited=%d\n", sc.Algorithm, res.Cost, len(res.Order))
		return nil
	case errors.Is(err, core.ErrNoPath):
		fmt.Fprintf(outW, "%s: no path, visited=%d\n", sc.Algorithm, len(res.Order))
		return nil
	default:
		return err
	}
}
