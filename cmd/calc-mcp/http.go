package main

import (
	"github.com/averycrespi/calc-mcp/internal/httpapi"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/cobra"
)

func newHTTPCommand(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "Run the REST keypad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, err := root.loadConfig(flags, func(cfg *types.Config) {
				if flags.Changed("addr") {
					cfg.Addr = addr
				}
			})
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			manager := session.NewManager(logger)
			defer manager.Shutdown()

			api := httpapi.New(manager.Initialize(), logger)
			return httpapi.NewServer(cfg.Addr, api, logger).Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to the config addr)")
	return cmd
}
