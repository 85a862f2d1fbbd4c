package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/finbound/forex/pkg/config"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "forex",
		Short:         "ECB foreign-exchange reference rates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(newExportCmd())
	return cmd
}

// loadConfig reads the environment config with the export-friendly default of
// not launching the background fetcher.
func loadConfig() (*config.App, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, err
	}
	cfg.Supervisor.AutoStart = false
	return cfg, nil
}
