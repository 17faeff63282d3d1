package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dwikikusuma/luckybox/internal/storefront"
	"github.com/dwikikusuma/luckybox/pkg/config"
	"github.com/dwikikusuma/luckybox/pkg/logger"
	"github.com/dwikikusuma/luckybox/pkg/shutdown"
)

type flags struct {
	configPath  string
	catalog     string
	storage     string
	storagePath string
	watch       bool
	formOut     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "storefront",
		Short:        "Browse the luckybox catalog, fill a cart and prepare the order form",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.catalog, "catalog", "", "catalog file path or http(s) URL")
	fs.StringVar(&f.storage, "storage", "", "storage backend: file, sqlite or memory")
	fs.StringVar(&f.storagePath, "storage-path", "", "storage file for the file and sqlite backends")
	fs.BoolVar(&f.watch, "watch", false, "reload a file catalog when it changes")
	fs.StringVar(&f.formOut, "form-out", "", "write submitted order forms to this file")

	return cmd
}

// apply lets explicitly set flags win over file and environment values.
func (f flags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("catalog") {
		cfg.Catalog.Source = f.catalog
	}
	if changed("storage") {
		cfg.Storage.Backend = f.storage
	}
	if changed("storage-path") {
		cfg.Storage.Path = f.storagePath
	}
	if changed("watch") {
		cfg.Catalog.Watch = f.watch
	}
	if changed("form-out") {
		cfg.FormOut = f.formOut
	}
}

func run(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
		Output:    logFile,
	})

	ctx, cancel := shutdown.WithSignals(parent)
	defer cancel()

	app, err := bootstrap(ctx, cfg, log)
	if err != nil {
		log.Error("bootstrap failed", slog.Any("err", err))
		return err
	}
	defer app.Close()

	view := storefront.New(ctx, app.store, app.checkout, log)
	defer view.Close()

	p := tea.NewProgram(view, tea.WithAltScreen(), tea.WithContext(ctx))

	if err := app.watchCatalog(ctx, p.Send); err != nil {
		log.Warn("catalog watch unavailable", slog.Any("err", err))
	}

	log.Info("storefront starting", slog.String("catalog", cfg.Catalog.Source))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("shutdown requested")
			return nil
		}
		log.Error("storefront exited with error", slog.Any("err", err))
		return err
	}

	log.Info("bye")
	return nil
}
