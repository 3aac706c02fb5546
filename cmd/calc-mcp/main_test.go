package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/transport"
	"github.com/averycrespi/calc-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestPressCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "addition", args: []string{"7", "+", "3", "="}, expected: "10\n"},
		{name: "division by zero", args: []string{"5", "/", "0", "="}, expected: "Infinity\n"},
		{name: "percentage", args: []string{"2", "0", "%"}, expected: "0.2\n"},
		{name: "pending operator", args: []string{"4", "x"}, expected: "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, "", append([]string{"press"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPressCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "", "press", "--json", "9", "-")
	require.NoError(t, err)

	var state types.State
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, "0", state.Display)
	assert.Equal(t, types.OperatorSubtract, state.Operator)
	require.NotNil(t, state.Previous)
	assert.Equal(t, "9", *state.Previous)
	assert.Equal(t, types.ModeOperatorPending, state.Mode)
}

func TestPressCommand_Errors(t *testing.T) {
	_, err := runCommand(t, "", "press", "1", "sqrt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown button: "sqrt"`)

	_, err = runCommand(t, "", "press")
	assert.Error(t, err)

	_, err = runCommand(t, "", "press", "--log-level", "loud", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestPressCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nlog_format: json\n"), 0o644))

	out, err := runCommand(t, "", "press", "--config", path, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)

	_, err = runCommand(t, "", "press", "--config", filepath.Join(dir, "missing.yaml"), "1")
	assert.Error(t, err)
}

func TestWatchCommand(t *testing.T) {
	var feed bytes.Buffer
	writer := transport.NewFeedWriter(&feed)
	previous := "7"
	require.NoError(t, writer.Publish(types.State{Display: "7", Mode: types.ModeEntering}))
	require.NoError(t, writer.Publish(types.State{
		Display:  "0",
		Operator: types.OperatorAdd,
		Previous: &previous,
		Mode:     types.ModeOperatorPending,
	}))
	require.NoError(t, writer.Publish(types.State{Display: "10", Mode: types.ModeEntering}))

	t.Run("stdin", func(t *testing.T) {
		out, err := runCommand(t, feed.String(), "watch", "-")
		require.NoError(t, err)
		assert.Equal(t, "1\t7\n2\t0\t(7 +)\n3\t10\n", out)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "display.feed")
		require.NoError(t, os.WriteFile(path, feed.Bytes(), 0o644))

		out, err := runCommand(t, "", "watch", path)
		require.NoError(t, err)
		assert.Equal(t, "1\t7\n2\t0\t(7 +)\n3\t10\n", out)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCommand(t, "", "watch", filepath.Join(t.TempDir(), "missing.feed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open display feed")
	})

	t.Run("corrupt feed", func(t *testing.T) {
		_, err := runCommand(t, "Content-Length: nope\r\n\r\n", "watch", "-")
		assert.Error(t, err)
	})
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	_, err := runCommand(t, "", "serve", "--transport", "sse", "--addr", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an address")

	_, err = runCommand(t, "", "serve", "--transport", "smoke-signals")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}
