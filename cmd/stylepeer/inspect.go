package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wippyai/style-peers/peer"
	"github.com/wippyai/style-peers/resource"
	"github.com/wippyai/style-peers/style"
)

func newInspectCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [style]",
		Short: "Create a peer for every layer and list them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, opts, opts.stylePath(args))
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("HANDLE", "LAYER", "KIND", "PEER", "VISIBILITY", "ZOOM")
			s.bridgeAll()
			s.rt.Each(func(h resource.Handle, p peer.Peer) bool {
				l := p.Layer()
				kind := "?"
				if k, ok := style.KindOf(l); ok {
					kind = k.String()
				}
				t.Row(
					strconv.FormatUint(uint64(h), 10),
					l.ID(),
					kind,
					p.Type().Name,
					l.Visibility().String(),
					fmt.Sprintf("%g-%g", l.MinZoom(), l.MaxZoom()),
				)
				return true
			})

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d layers, %d peers\n", s.path, s.style.Len(), s.rt.Len())
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}
