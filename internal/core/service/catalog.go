package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/retry"
)

type CatalogLoaderConfig struct {
	FetchTimeout time.Duration
	MaxAttempts  int
}

// CatalogLoader performs the one-shot startup load of the product catalog.
type CatalogLoader struct {
	store    *Store
	provider port.CatalogProvider
	cfg      CatalogLoaderConfig
}

func NewCatalogLoader(
	store *Store, provider port.CatalogProvider, cfg CatalogLoaderConfig,
) CatalogLoader {
	return CatalogLoader{store, provider, cfg}
}

// Load fetches products and categories and installs them in the store.
// Failure is never fatal: it surfaces as an error notification and leaves
// the catalog empty. The loading flag clears on every path.
func (l CatalogLoader) Load(ctx context.Context) {
	const op = "CatalogLoader.Load"
	log := slog.With("op", op)

	l.store.SetLoading(true)
	defer l.store.SetLoading(false)

	var products []domain.Product
	err := l.fetch(ctx, func(fetchCtx context.Context) error {
		var fetchErr error
		products, fetchErr = l.provider.FetchProducts(fetchCtx)
		return fetchErr
	})
	if err != nil {
		log.Error("failed to load products", "err", err)
		l.store.AddNotification(
			domain.NotifyError, "Error", "Failed to load products.", true,
		)
		return
	}

	var categories []domain.Category
	err = l.fetch(ctx, func(fetchCtx context.Context) error {
		var fetchErr error
		categories, fetchErr = l.provider.FetchCategories(fetchCtx)
		return fetchErr
	})
	if err != nil {
		log.Error("failed to load categories", "err", err)
		l.store.AddNotification(
			domain.NotifyError, "Error", "Failed to load products.", true,
		)
		return
	}

	l.store.SetCatalog(products, categories)
	log.Info("catalog loaded",
		"nProducts", len(products), "nCategories", len(categories))
}

func (l CatalogLoader) fetch(
	ctx context.Context, fn func(context.Context) error,
) error {
	c := retry.Config{MaxAttempts: l.cfg.MaxAttempts}
	err := retry.Do(ctx, c, func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, l.cfg.FetchTimeout)
		defer cancel()
		return fn(fetchCtx)
	})
	if err != nil {
		return fmt.Errorf("after %d attempts: %w", l.cfg.MaxAttempts, err)
	}
	return nil
}
