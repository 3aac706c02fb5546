package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           project.Name,
		Short:         "A keypad calculator served over MCP, HTTP and the command line",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")

	cmd.AddCommand(
		newServeCommand(opts),
		newHTTPCommand(opts),
		newPressCommand(opts),
		newWatchCommand(),
	)
	return cmd
}

// loadConfig reads the config file and applies any flags the user set
func (o *rootOptions) loadConfig(flags *pflag.FlagSet, overrides func(*types.Config)) (types.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return types.Config{}, err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if overrides != nil {
		overrides(&cfg)
	}

	if err := config.Validate(cfg); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger; stdout is reserved for command output
func newLogger(w io.Writer, cfg types.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(w, level, cfg.LogFormat)
}
