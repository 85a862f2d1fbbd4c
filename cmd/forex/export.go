package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finbound/forex/pkg/forex"
	"github.com/finbound/forex/pkg/jsonenc"
)

// exportFlags are shared by the three export subcommands.
type exportFlags struct {
	base    string
	symbols []string
	output  string
	format  string
	round   int
}

func newExportCmd() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a rates feed to a JSON file",
	}

	cmd.PersistentFlags().StringVar(&flags.base, "base", "EUR", "base currency to quote against")
	cmd.PersistentFlags().StringSliceVar(&flags.symbols, "symbols", nil, "restrict to these currency codes")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", ".", "directory the JSON file is written to")
	cmd.PersistentFlags().StringVar(&flags.format, "format", "decimal", "value representation: decimal or string")
	cmd.PersistentFlags().IntVar(&flags.round, "round", forex.DefaultRound, "decimal places, -1 disables rounding")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "latest",
			Short: "Export today's rates",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runExport(cmd, flags, "latest_rates.json", func(svc *forex.Service, opts []forex.Option) (any, error) {
					return svc.LatestRates(cmd.Context(), opts...)
				})
			},
		},
		&cobra.Command{
			Use:   "ninety-days",
			Short: "Export the rolling last-90-days series",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runExport(cmd, flags, "last_ninety_days_rates.json", func(svc *forex.Service, opts []forex.Option) (any, error) {
					return svc.LastNinetyDaysRates(cmd.Context(), opts...)
				})
			},
		},
		&cobra.Command{
			Use:   "historic",
			Short: "Export the full series since 1999-01-04",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runExport(cmd, flags, "historic_rates.json", func(svc *forex.Service, opts []forex.Option) (any, error) {
					return svc.HistoricRates(cmd.Context(), opts...)
				})
			},
		},
	)
	return cmd
}

func runExport(cmd *cobra.Command, flags *exportFlags, filename string, fetch func(*forex.Service, []forex.Option) (any, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := forex.New(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer svc.Close()

	opts := []forex.Option{
		forex.WithBase(flags.base),
		forex.WithFormat(forex.Format(flags.format)),
		forex.WithRound(flags.round),
	}
	if len(flags.symbols) > 0 {
		opts = append(opts, forex.WithSymbols(flags.symbols...))
	}

	result, err := fetch(svc, opts)
	if err != nil {
		return err
	}

	codec, err := jsonenc.New(cfg.Cache.JSONCodec)
	if err != nil {
		return err
	}
	doc, err := codec.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode rates: %w", err)
	}

	if err := os.MkdirAll(flags.output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(flags.output, filename)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Info("rates exported", "path", path)
	return nil
}
