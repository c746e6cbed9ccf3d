package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/blobstore"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/timeq"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	blob       *blobstore.LevelDB
	store      *service.Store
	loader     service.CatalogLoader
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	blob, err := blobstore.New(app.cfg.BlobStorePath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.blob = blob
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	store, err := service.NewStore(
		service.StoreConfig{
			PageSize:        app.cfg.Listing.PageSize,
			NotificationTTL: app.cfg.Notifications.TTL,
		},
		app.blob,
		timeq.New(),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	store.Hydrate()
	app.store = store

	provider := catalog.NewProvider(app.cfg.Catalog.Latency)
	app.loader = service.NewCatalogLoader(store, provider,
		service.CatalogLoaderConfig{
			FetchTimeout: app.cfg.Catalog.FetchTimeout,
			MaxAttempts:  app.cfg.Catalog.FetchAttempts,
		},
	)
}

func (app *App) initInboundAdapters() {
	store := app.store

	rules := domain.PricingRules{
		TaxRate:          app.cfg.Checkout.TaxRate,
		FreeShippingOver: app.cfg.Checkout.FreeShippingOver,
		ShippingFee:      app.cfg.Checkout.ShippingFee,
		PromoCodes:       app.cfg.Checkout.PromoCodes,
	}
	checkout := service.NewCheckout(store, rules)
	session := service.NewSession(store)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, store, store, store)
	httphandler.RegisterCart(mux, store, store, store)
	httphandler.RegisterWishlist(mux, store, store, store)
	httphandler.RegisterSearch(mux, store, store)
	httphandler.RegisterSession(mux, session, store)
	httphandler.RegisterCheckout(mux, checkout)
	httphandler.RegisterNotifications(mux, store, store)

	handler := httphandler.LogRequests(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.loader.Load(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.blob.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
