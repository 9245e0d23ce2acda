package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCallCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "call <style> <layer-id> <surface> <func> [args...]",
		Short: "Call one surface function on a layer's peer",
		Example: `  stylepeer call streets.json roads line-layer set-width 4
  stylepeer call streets.json pois circle-layer set-color '#ff0000'
  stylepeer call streets.json labels layer get-visibility`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, opts, args[0])
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			lp, err := s.bridge(args[1])
			if err != nil {
				return err
			}

			results, err := s.call(ctx, lp.handle, args[2], args[3], args[4:])
			if err != nil {
				return err
			}
			if len(results) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(results, " "))
			}
			return nil
		},
	}
}
