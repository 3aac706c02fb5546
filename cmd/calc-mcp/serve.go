package main

import (
	"context"
	"fmt"
	"os"

	"github.com/averycrespi/calc-mcp/internal/logging"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/internal/transport"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/cobra"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var (
		transportName string
		addr          string
		feedPath      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator MCP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, err := root.loadConfig(flags, func(cfg *types.Config) {
				if flags.Changed("transport") {
					cfg.Transport = transportName
				}
				if flags.Changed("addr") {
					cfg.Addr = addr
				}
				if flags.Changed("feed") {
					cfg.FeedPath = feedPath
				}
			})
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			var opts []server.Option
			if cfg.FeedPath != "" {
				feedFile, err := os.OpenFile(cfg.FeedPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open display feed: %w", err)
				}
				defer feedFile.Close()
				opts = append(opts, server.WithFeed(transport.NewFeedWriter(feedFile)))
				logger.Info("Publishing display changes", "feed", cfg.FeedPath)
			}

			calcServer := server.NewCalculatorServer(cfg, logger, opts...)
			defer func() {
				if err := calcServer.Shutdown(context.WithoutCancel(cmd.Context())); err != nil {
					logging.LogError(logger, "failed to shut down server", err)
				}
			}()

			return calcServer.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transportName, "transport", types.TransportStdio, "MCP transport (stdio, sse, streamable-http)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address for the sse and streamable-http transports")
	cmd.Flags().StringVar(&feedPath, "feed", "", "Append display changes to this file")
	return cmd
}
