package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopdiginow/storefront/config"
	"github.com/shopdiginow/storefront/internal/adapter/catalog"
	"github.com/shopdiginow/storefront/internal/adapter/httphandler"
	"github.com/shopdiginow/storefront/internal/adapter/orderlog"
	"github.com/shopdiginow/storefront/internal/adapter/whatsapp"
	"github.com/shopdiginow/storefront/internal/core/service"
)

type coreServices struct {
	catalog  service.CatalogService
	cart     *service.CartService
	checkout *service.CheckoutService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    *catalog.Catalog
	messenger  whatsapp.Messenger
	service    coreServices
	httpServer httphandler.HTTPServer
}

func New(context context.Context, config config.Config) *App {
	app := &App{ctx: context, cfg: config}

	app.initLogger()
	app.initCatalog()
	app.initCoreServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	c, err := catalog.Load()
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = c

	slog.Info("catalog loaded", "products", len(c.Products()))
}

func (app *App) initCoreServices() {
	cfg := app.cfg.Checkout

	app.messenger = whatsapp.New(cfg.WhatsAppNumber, cfg.WhatsAppDisplay, cfg.StoreName)

	sheetLogger := orderlog.New(cfg.OrderLogURL)

	app.service.catalog = service.NewCatalogService(app.catalog)
	app.service.cart = service.NewCartService(app.catalog)
	app.service.checkout = service.NewCheckoutService(
		app.service.cart, sheetLogger, cfg.OrderIDPrefix,
	)
}

func (app *App) initHTTPServer() {
	handler := httphandler.NewRouter(
		app.service.catalog,
		app.service.cart,
		app.service.checkout,
		app.messenger,
	)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
