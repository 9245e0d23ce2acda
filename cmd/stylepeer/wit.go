package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/style-peers/peer"
)

func newWITCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "wit",
		Short: "Print the WIT package of all peer surfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), peer.WIT(opts.cfg.Host.Namespace, opts.cfg.Host.Version))
			return err
		},
	}
}
