package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui [style]",
		Short: "Browse layers and call surface functions interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("ui needs an interactive terminal")
			}

			ctx := cmd.Context()
			s, err := openSession(ctx, opts, opts.stylePath(args))
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			_, err = tea.NewProgram(newInteractiveModel(ctx, s), tea.WithAltScreen()).Run()
			return err
		},
	}
}
