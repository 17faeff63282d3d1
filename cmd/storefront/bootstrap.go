package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/dwikikusuma/luckybox/internal/cart/app"
	"github.com/dwikikusuma/luckybox/internal/cart/infra/filestore"
	"github.com/dwikikusuma/luckybox/internal/cart/infra/memory"
	"github.com/dwikikusuma/luckybox/internal/cart/infra/sqlite"
	catalogapp "github.com/dwikikusuma/luckybox/internal/catalog/app"
	catalog "github.com/dwikikusuma/luckybox/internal/catalog/domain"
	"github.com/dwikikusuma/luckybox/internal/catalog/infra/jsonfeed"
	"github.com/dwikikusuma/luckybox/internal/catalog/infra/watch"
	checkoutapp "github.com/dwikikusuma/luckybox/internal/checkout/app"
	"github.com/dwikikusuma/luckybox/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/luckybox/internal/checkout/infra/formfile"
	"github.com/dwikikusuma/luckybox/internal/storefront"
	"github.com/dwikikusuma/luckybox/pkg/config"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type application struct {
	cfg config.Config
	log *slog.Logger

	catalogSvc *catalogapp.Service
	store      *cartapp.Store
	checkout   *checkoutapp.Service

	closers []func() error
}

// bootstrap opens storage and fetches the catalog concurrently, then
// restores the cart against the loaded catalog.
func bootstrap(ctx context.Context, cfg config.Config, log *slog.Logger) (*application, error) {
	app := &application{
		cfg:        cfg,
		log:        log,
		catalogSvc: catalogapp.NewService(productSource(cfg, log), log),
	}

	var (
		cat  catalog.Catalog
		slot cartapp.Slot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cat = app.catalogSvc.Load(gctx)
		return nil
	})
	g.Go(func() error {
		s, closer, err := openSlot(gctx, cfg.Storage)
		if err != nil {
			return err
		}
		slot = s
		if closer != nil {
			app.closers = append(app.closers, closer)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	app.store = cartapp.NewStore(cat, slot, cartapp.Options{Key: cfg.Storage.Key, Log: log})
	restored := app.store.Restore(ctx)
	log.Info("cart restored", slog.Int("lines", restored), slog.String("backend", cfg.Storage.Backend))

	var sink checkoutapp.FormSink
	if cfg.FormOut != "" {
		sink = formfile.NewSink(cfg.FormOut)
	}
	app.checkout = checkoutapp.NewService(adapter.NewCartStoreReader(app.store), sink)

	return app, nil
}

func productSource(cfg config.Config, log *slog.Logger) catalogapp.ProductSource {
	dec := jsonfeed.NewDecoder(cfg.Catalog.Currency, log)
	if cfg.CatalogIsRemote() {
		return jsonfeed.NewHTTPSource(cfg.Catalog.Source, http.DefaultClient, dec)
	}
	return jsonfeed.NewFileSource(cfg.Catalog.Source, dec)
}

func openSlot(ctx context.Context, cfg config.StorageConfig) (cartapp.Slot, func() error, error) {
	switch cfg.Backend {
	case config.BackendFile:
		s, err := filestore.Open(cfg.Path)
		return s, nil, err
	case config.BackendSQLite:
		s, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendMemory:
		return memory.NewSlot(), nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// watchCatalog reloads a file-backed catalog on edits and hands the result
// to send, which must deliver it to the view's event loop.
func (a *application) watchCatalog(ctx context.Context, send func(tea.Msg)) error {
	if !a.cfg.Catalog.Watch {
		return nil
	}
	if a.cfg.CatalogIsRemote() {
		a.log.Warn("catalog watch ignored for remote source", slog.String("source", a.cfg.Catalog.Source))
		return nil
	}

	w, err := watch.New(a.cfg.Catalog.Source, watch.DefaultDebounce, a.log)
	if err != nil {
		return err
	}

	go w.Run(ctx, func() {
		cat, err := a.catalogSvc.Reload(ctx)
		if err != nil {
			a.log.Warn("catalog reload failed, keeping current catalog", slog.Any("err", err))
			return
		}
		send(storefront.CatalogReloadedMsg{Catalog: cat})
	})
	return nil
}

func (a *application) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Error("close failed", slog.Any("err", err))
		}
	}
}
