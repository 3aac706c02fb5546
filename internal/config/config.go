package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"gopkg.in/yaml.v3"
)

const (
	defaultTransport = types.TransportStdio
	defaultAddr      = "localhost:8080"
	defaultLogLevel  = "info"
	defaultLogFormat = logging.FormatText
)

// Default returns the configuration used when no file is given
func Default() types.Config {
	return types.Config{
		Transport: defaultTransport,
		Addr:      defaultAddr,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load reads a YAML configuration file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (types.Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Parse(bytes.NewReader(data))
	if err != nil {
		return types.Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

// Parse decodes YAML configuration on top of the defaults
func Parse(r io.Reader) (types.Config, error) {
	config := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return types.Config{}, err
	}

	return config, nil
}

// Validate checks that every field holds a supported value
func Validate(config types.Config) error {
	switch config.Transport {
	case types.TransportStdio:
	case types.TransportSSE, types.TransportStreamableHTTP:
		if config.Addr == "" {
			return fmt.Errorf("transport %s requires an address", config.Transport)
		}
	default:
		return fmt.Errorf("unknown transport: %s", config.Transport)
	}

	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return err
	}

	switch config.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format: %s", config.LogFormat)
	}

	return nil
}
