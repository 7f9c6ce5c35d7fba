// Package orderform wires configuration into the order form's collaborators:
// the submission client, controllers, renderers, the terminal session and the
// HTTP handlers. Commands and embedding applications start here.
package orderform

import (
	"context"
	"fmt"
	"net/http"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-orderform/internal/stubserver"
	"github.com/goliatone/go-orderform/internal/web"
	"github.com/goliatone/go-orderform/pkg/config"
	"github.com/goliatone/go-orderform/pkg/contract"
	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
	htmlrenderer "github.com/goliatone/go-orderform/pkg/renderers/html"
	"github.com/goliatone/go-orderform/pkg/renderers/text"
	"github.com/goliatone/go-orderform/pkg/renderers/tui"
	"github.com/goliatone/go-orderform/pkg/submission"
)

// Option configures the App.
type Option func(*App)

// WithLogger attaches a logger shared by every component.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithSubmitter replaces the HTTP submission client, typically in tests.
func WithSubmitter(submitter form.Submitter) Option {
	return func(a *App) {
		if submitter != nil {
			a.submitter = submitter
		}
	}
}

// App holds the collaborators derived from one configuration.
type App struct {
	config    config.Config
	catalog   order.Catalog
	theme     *theme.RendererConfig
	submitter form.Submitter
	logger    *zap.Logger
}

// New validates cfg and builds the shared collaborators.
func New(cfg config.Config, options ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{config: cfg, logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	a.catalog = catalog

	themeCfg, err := cfg.Theme.RendererConfig()
	if err != nil {
		return nil, err
	}
	a.theme = themeCfg

	if a.submitter == nil {
		client, err := submission.New(cfg.Endpoint,
			submission.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			submission.WithFallbackMessages(cfg.Messages.Success, cfg.Messages.Failure),
			submission.WithLogger(a.logger.Named("submission")),
		)
		if err != nil {
			return nil, fmt.Errorf("orderform: %w", err)
		}
		a.submitter = client
	}
	return a, nil
}

// Config returns the configuration the app was built from.
func (a *App) Config() config.Config { return a.config }

// Catalog returns the configured topping catalog.
func (a *App) Catalog() order.Catalog { return a.catalog }

// Theme returns the resolved theme configuration.
func (a *App) Theme() *theme.RendererConfig { return a.theme }

// NewController returns a controller holding an empty draft.
func (a *App) NewController(options ...form.Option) (*form.Controller, error) {
	options = append([]form.Option{form.WithLogger(a.logger.Named("form"))}, options...)
	return form.New(a.submitter, options...)
}

// Renderers returns a registry with the html, text and json renderers. The
// page template comes from web.templates_dir when configured.
func (a *App) Renderers() (*render.Registry, error) {
	return a.renderers()
}

func (a *App) renderers(options ...htmlrenderer.Option) (*render.Registry, error) {
	if dir := a.config.Web.TemplatesDir; dir != "" {
		options = append(options, htmlrenderer.WithTemplatesDir(dir))
	}
	page, err := htmlrenderer.New(options...)
	if err != nil {
		return nil, fmt.Errorf("orderform: %w", err)
	}
	return render.NewRegistry(page, text.New(), text.NewJSON()), nil
}

// RenderOptions returns the options that carry the app's catalog and theme.
func (a *App) RenderOptions() render.RenderOptions {
	return render.RenderOptions{Catalog: a.catalog, Theme: a.theme}
}

// Session builds a terminal session over a fresh controller.
func (a *App) Session(options ...tui.Option) (*tui.Session, error) {
	ctrl, err := a.NewController()
	if err != nil {
		return nil, err
	}
	options = append([]tui.Option{tui.WithLogger(a.logger.Named("tui"))}, options...)
	return tui.New(ctrl, a.catalog, options...)
}

// WebHandler builds the HTML form server. Its page keeps the submit button
// enabled and the server validates each post.
func (a *App) WebHandler() (*web.Handler, error) {
	registry, err := a.renderers(htmlrenderer.WithSubmitGate(false))
	if err != nil {
		return nil, err
	}
	return web.NewHandler(a.submitter,
		web.WithCatalog(a.catalog),
		web.WithTheme(a.theme),
		web.WithRenderers(registry),
		web.WithLogger(a.logger.Named("web")),
	)
}

// StubHandler builds the development order endpoint.
func (a *App) StubHandler(ctx context.Context) (*stubserver.Handler, error) {
	c, err := contract.Load(ctx)
	if err != nil {
		return nil, err
	}
	return stubserver.NewHandler(c,
		stubserver.WithOutOfStock(a.config.Stub.OutOfStock...),
		stubserver.WithLogger(a.logger.Named("stub")),
	)
}
