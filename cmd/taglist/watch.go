// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/taglist/internal/fetch"
	"github.com/pdiddy/taglist/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the documentation whenever a local input changes",
	Long: `Watch runs build once, then watches the local template and definition
files and rebuilds from scratch after every burst of changes. Remote
sources are re-fetched on each rebuild but do not trigger one.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("template", "t", "", "template source (file or URL)")
	watchCmd.Flags().StringP("output", "o", "", "output path (default stdout)")
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before rebuilding")
	watchCmd.Flags().Bool("verbose", false, "log every file event")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var local []string
	for _, src := range append([]string{cfg.Template}, cfg.Definitions...) {
		if kind, path := fetch.Classify(src); kind == fetch.KindFile {
			local = append(local, path)
		}
	}
	if len(local) == 0 {
		return fmt.Errorf("no local template or definition files to watch")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := newClient(cfg)
	rebuild := func(ctx context.Context) error {
		out, report, err := build(ctx, client, cfg, os.Stderr)
		if err != nil {
			return err
		}
		if report.HasErrors() {
			logger.Warn("Some definitions failed to load", "errors", len(report.Errors))
		}
		return writeOutput(cfg.Output, out, os.Stdout)
	}

	// Watch before the first build so edits made during it are not lost.
	w, err := watch.New(local, debounce, logger)
	if err != nil {
		return err
	}
	if err := rebuild(ctx); err != nil {
		logger.Error("Initial build failed", "error", err)
	}
	return w.Run(ctx, rebuild)
}
