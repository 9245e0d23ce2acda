package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/style-peers/config"
	"github.com/wippyai/style-peers/host"
	"github.com/wippyai/style-peers/peer"
)

// rootOptions holds global flags and the state they load.
type rootOptions struct {
	log        *zap.Logger
	configPath string
	cfg        config.Config
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "stylepeer",
		Short:        "Expose style layers to a wasm host as peers",
		Long:         "stylepeer loads MapLibre style documents, wraps each layer in a peer and exposes the peers to a wazero host runtime.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (TOML)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newInspectCommand(opts))
	cmd.AddCommand(newWITCommand(opts))
	cmd.AddCommand(newCallCommand(opts))
	cmd.AddCommand(newUICommand(opts))

	return cmd
}

func (o *rootOptions) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := cfg.Logger()
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.log = log
	peer.SetLogger(log.Named("peer"))
	host.SetLogger(log.Named("host"))
	return nil
}

// stylePath returns the style argument, falling back to the configured style.
func (o *rootOptions) stylePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return o.cfg.Style
}
