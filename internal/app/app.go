// Package app wires configuration, storage, the rates client and the
// conversion controller together.
package app

import (
	"CurrencyConverter/internal/config"
	"CurrencyConverter/internal/converter"
	"CurrencyConverter/internal/db"
	"CurrencyConverter/internal/favorites"
	"CurrencyConverter/internal/loader"
	"CurrencyConverter/internal/metrics"
	"CurrencyConverter/internal/model"
	"CurrencyConverter/internal/rates"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Config  *config.Config
	Rates   *rates.Client
	Loader  *loader.Loader
	Ctrl    *converter.Controller
	Metrics *metrics.ConverterMetrics

	closers []func() error
}

// Build assembles the application. Metrics are registered on reg.
func Build(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*App, error) {
	a := &App{Config: cfg, Metrics: metrics.NewConverterMetrics(reg)}

	opts := []rates.Option{rates.WithRateLimit(cfg.API.RequestsPerSecond)}
	if t := cfg.Timeout(); t > 0 {
		opts = append(opts, rates.WithTimeout(t))
	}
	a.Rates = rates.NewClient(cfg.API.BaseURL, opts...)
	a.Loader = loader.New(a.Rates, a.Metrics)

	kv, err := a.openStorage()
	if err != nil {
		a.Close()
		return nil, err
	}
	store := favorites.NewStore(kv, cfg.DefaultFavorites())

	a.Ctrl, err = converter.New(ctx, a.Rates, store, a.Metrics, converter.Defaults{
		From:      model.CurrencyCode(cfg.Converter.DefaultFrom),
		To:        model.CurrencyCode(cfg.Converter.DefaultTo),
		Amount:    cfg.Converter.DefaultAmount,
		MaxAmount: cfg.Converter.MaxAmount,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("app: init converter: %w", err)
	}
	return a, nil
}

// LoadCurrencies fetches the currency list once and hands it to the controller.
func (a *App) LoadCurrencies(ctx context.Context) []model.CurrencyCode {
	codes := a.Loader.Load(ctx)
	a.Ctrl.SetCurrencies(codes)
	return codes
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openStorage() (favorites.KV, error) {
	cfg := a.Config
	switch cfg.Storage.Driver {
	case config.StorageFile:
		dir, err := cfg.StoragePath()
		if err != nil {
			return nil, err
		}
		return favorites.NewFileStore(dir), nil

	case config.StorageSQLite, config.StoragePostgres:
		driver, dsn := db.DriverPostgres, cfg.Storage.DSN
		if cfg.Storage.Driver == config.StorageSQLite {
			path, err := cfg.StoragePath()
			if err != nil {
				return nil, err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return nil, err
			}
			driver, dsn = db.DriverSQLite, path
		}
		conn, err := db.Open(driver, dsn)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, conn.Close)
		kv, err := favorites.NewSQLStore(conn, driver)
		if err != nil {
			return nil, fmt.Errorf("app: prepare favorites store: %w", err)
		}
		a.closers = append(a.closers, kv.Close)
		return kv, nil
	}
	return nil, fmt.Errorf("app: unsupported storage driver %q", cfg.Storage.Driver)
}
