package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/internal/cli"
)

func TestParse_Help(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}, {"run", "-h"}} {
		var out bytes.Buffer
		cmd, exit, err := cli.Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cmd)
		assert.Contains(t, out.String(), "gridpath run")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := [][]string{
		{"fly"},
		{"run", "-algorithm", "dfs"},
		{"run", "-addr", ":80"}, // serve-only flag
		{"serve", "extra"},
	}
	for _, args := range cases {
		var out bytes.Buffer
		_, _, err := cli.Parse(args, &out)
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr, "%v", args)
		assert.Equal(t, 2, exitErr.Code)
	}
}

func TestCommand_Apply(t *testing.T) {
	var out bytes.Buffer
	cmd, exit, err := cli.Parse([]string{"run", "-algorithm", "bfs", "-speed", "12", "-generator", "Maze", "-seed", "9", "-final"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, cli.CmdRun, cmd.Name)
	assert.True(t, cmd.Final)

	cfg := config.Default()
	require.NoError(t, cmd.Apply(cfg))
	assert.Equal(t, engine.BFS, cfg.Scenario.Algorithm)
	assert.Equal(t, 12, cfg.Scenario.Speed)
	assert.Equal(t, config.GenMaze, cfg.Scenario.Generator)
	assert.Equal(t, int64(9), cfg.Scenario.Seed)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level, "unset flags keep config values")
}

func TestCommand_ApplyValidates(t *testing.T) {
	var out bytes.Buffer
	cmd, _, err := cli.Parse([]string{"serve", "-log-format", "xml", "-addr", ":9000"}, &out)
	require.NoError(t, err)

	cfg := config.Default()
	err = cmd.Apply(cfg)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestCommand_ApplyRejectsNegativeSpeed(t *testing.T) {
	var out bytes.Buffer
	cmd, _, err := cli.Parse([]string{"run", "-speed", "-3"}, &out)
	require.NoError(t, err)

	err = cmd.Apply(config.Default())
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "speed")
}
