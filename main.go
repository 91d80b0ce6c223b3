package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	// Load environment from a local .env file for development.
	loadDotEnv()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statcalc",
		Short: "Print mean, median and mode for the built-in datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cfg, newLogger(cmd.ErrOrStderr(), cfg.Verbose))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP(keyFormat, "f", FormatText, "output format: text, table, json or yaml")
	cmd.Flags().Bool(keyExtended, false, "also report the supplementary datasets")
	cmd.Flags().BoolP(keyVerbose, "v", false, "log per-report diagnostics to stderr")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statcalc %s\n", Version)
		},
	})

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run reports every configured dataset to w in order.
func run(w io.Writer, cfg Config, logger *slog.Logger) error {
	r, err := newRenderer(cfg.Format, w)
	if err != nil {
		return err
	}

	if cfg.Format == FormatText || cfg.Format == FormatTable {
		if err := writeBanner(w); err != nil {
			return fmt.Errorf("write banner: %w", err)
		}
	}

	for _, d := range datasets(cfg.Extended) {
		if err := processDataset(r, logger, d); err != nil {
			return err
		}
	}

	if err := r.Close(); err != nil {
		return fmt.Errorf("flush %s output: %w", cfg.Format, err)
	}
	return nil
}

func processDataset(r Renderer, logger *slog.Logger, d Dataset) error {
	s, m := measureSummary(func() Summary { return Summarize(d.Sample) })
	logger.Debug("computed statistics",
		"dataset", d.Name,
		"count", s.Count,
		"duration", m.Duration,
		"alloc_bytes", m.AllocBytes,
	)
	if err := r.Render(d, s); err != nil {
		return fmt.Errorf("render dataset %s: %w", d.Name, err)
	}
	return nil
}
