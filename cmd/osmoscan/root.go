package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-osmo/config"
)

type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

// Execute runs the command line against os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd(ctx).ExecuteContext(ctx)
}

func newRootCmd(ctx context.Context) *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "osmoscan",
		Short:         "Extract landmarks from Lorrca ektacytometry exports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(analyzeCmd(ctx, a))
	root.AddCommand(headersCmd(a))
	root.AddCommand(kindsCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	a.cfg = cfg
	return nil
}
