package main

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/spf13/cobra"
)

func newPressCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "press <label>...",
		Short: "Press buttons on a fresh calculator and print the display",
		Example: `  calc-mcp press 7 + 3 =
  calc-mcp press 1 / 4 = --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd.Flags(), nil)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			state, err := session.New(logger).PressSequence(args)
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(state)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), state.Display)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full state as JSON")
	return cmd
}
