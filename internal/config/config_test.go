package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/averycrespi/calc-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.NoError(t, Validate(config))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	content := "transport: sse\naddr: 127.0.0.1:9000\nlog_level: debug\nfeed_path: /tmp/display.feed\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, types.Config{
		Transport: types.TransportSSE,
		Addr:      "127.0.0.1:9000",
		LogLevel:  "debug",
		LogFormat: "text",
		FeedPath:  "/tmp/display.feed",
	}, config)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      types.Config
		errorContains string
	}{
		{
			name:     "empty document keeps defaults",
			input:    "",
			expected: Default(),
		},
		{
			name:  "partial document",
			input: "log_format: json\n",
			expected: types.Config{
				Transport: "stdio",
				Addr:      "localhost:8080",
				LogLevel:  "info",
				LogFormat: "json",
			},
		},
		{
			name:          "unknown field",
			input:         "colour: purple\n",
			errorContains: "colour",
		},
		{
			name:          "malformed yaml",
			input:         "transport: [stdio\n",
			errorContains: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Parse(strings.NewReader(tt.input))
			if tt.errorContains != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(*types.Config)
		errorContains string
	}{
		{name: "defaults", modify: func(*types.Config) {}},
		{name: "sse", modify: func(c *types.Config) { c.Transport = types.TransportSSE }},
		{name: "streamable http", modify: func(c *types.Config) { c.Transport = types.TransportStreamableHTTP }},
		{name: "stdio without address", modify: func(c *types.Config) { c.Addr = "" }},
		{
			name:          "unknown transport",
			modify:        func(c *types.Config) { c.Transport = "carrier-pigeon" },
			errorContains: "unknown transport",
		},
		{
			name: "http transport without address",
			modify: func(c *types.Config) {
				c.Transport = types.TransportSSE
				c.Addr = ""
			},
			errorContains: "requires an address",
		},
		{
			name:          "unknown log level",
			modify:        func(c *types.Config) { c.LogLevel = "loud" },
			errorContains: "unknown log level",
		},
		{
			name:          "unknown log format",
			modify:        func(c *types.Config) { c.LogFormat = "xml" },
			errorContains: "unknown log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(&config)

			err := Validate(config)
			if tt.errorContains != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
