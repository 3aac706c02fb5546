package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/averycrespi/calc-mcp/internal/transport"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <feed>",
		Short: "Print each display change recorded in a display feed (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open display feed: %w", err)
				}
				defer f.Close()
				in = f
			}

			return watchFeed(in, cmd.OutOrStdout())
		},
	}
	return cmd
}

func watchFeed(in io.Reader, out io.Writer) error {
	reader := transport.NewFeedReader(in)
	for {
		change, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line := fmt.Sprintf("%d\t%s", change.Sequence, change.Display)
		if change.Mode == types.ModeOperatorPending && change.Previous != nil {
			line += fmt.Sprintf("\t(%s %s)", *change.Previous, change.Operator)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
}
