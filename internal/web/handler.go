// Package web serves the order form as a server-rendered HTML page. Each
// request replays the posted values through a fresh controller, so the server
// keeps no per-user state.
package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-orderform/internal/logging"
	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
	htmlrenderer "github.com/goliatone/go-orderform/pkg/renderers/html"
	"github.com/goliatone/go-orderform/pkg/renderers/text"
)

// Option configures the handler.
type Option func(*Handler)

// WithCatalog sets the toppings offered on the page.
func WithCatalog(catalog order.Catalog) Option {
	return func(h *Handler) {
		if catalog.Len() > 0 {
			h.catalog = catalog
		}
	}
}

// WithTheme applies theme tokens to the page.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(h *Handler) {
		h.theme = cfg
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRenderers replaces the renderer registry. It must provide "html" and
// "json". The page is posted back without client script, so the html renderer
// should be built with WithSubmitGate(false); SubmitForm rejects invalid drafts.
func WithRenderers(registry *render.Registry) Option {
	return func(h *Handler) {
		if registry != nil {
			h.renderers = registry
		}
	}
}

// Handler serves the form page.
type Handler struct {
	submitter form.Submitter
	catalog   order.Catalog
	theme     *theme.RendererConfig
	renderers *render.Registry
	logger    *zap.Logger
}

// NewHandler builds the handler. submitter receives valid orders.
func NewHandler(submitter form.Submitter, options ...Option) (*Handler, error) {
	if submitter == nil {
		return nil, fmt.Errorf("web: submitter is required")
	}
	h := &Handler{
		submitter: submitter,
		catalog:   order.DefaultCatalog(),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	if h.renderers == nil {
		page, err := htmlrenderer.New(htmlrenderer.WithSubmitGate(false))
		if err != nil {
			return nil, fmt.Errorf("web: %w", err)
		}
		h.renderers = render.NewRegistry(page, text.NewJSON())
	}
	return h, nil
}

// Router returns the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware(h.logger))

	router.GET("/", h.ShowForm)
	router.POST("/", h.SubmitForm)
	router.POST("/validate", h.ValidateForm)
	router.GET("/healthz", h.Health)
	router.StaticFS("/assets", http.FS(htmlrenderer.AssetsFS()))
	return router
}

// ShowForm renders the empty form.
func (h *Handler) ShowForm(c *gin.Context) {
	ctrl, err := h.controller()
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, htmlrenderer.Name, ctrl.Snapshot())
}

// SubmitForm applies the posted values. Invalid input re-renders the page with
// field errors and status 422; valid input is submitted and the outcome shown.
func (h *Handler) SubmitForm(c *gin.Context) {
	ctrl, err := h.controllerFromRequest(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	if !ctrl.CanSubmit() {
		h.render(c, http.StatusUnprocessableEntity, htmlrenderer.Name, ctrl.Snapshot())
		return
	}

	outcome, err := ctrl.Submit(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Debug("form submitted", zap.String("outcome", outcome.Kind.String()))
	h.render(c, http.StatusOK, htmlrenderer.Name, ctrl.Snapshot())
}

// ValidateForm returns the JSON state for the posted values without
// submitting.
func (h *Handler) ValidateForm(c *gin.Context) {
	ctrl, err := h.controllerFromRequest(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, text.JSONName, ctrl.Snapshot())
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) controller() (*form.Controller, error) {
	return form.New(h.submitter, form.WithLogger(h.logger))
}

func (h *Handler) controllerFromRequest(c *gin.Context) (*form.Controller, error) {
	var input FormInput
	if err := c.ShouldBind(&input); err != nil {
		return nil, fmt.Errorf("web: bind form: %w", err)
	}
	ctrl, err := h.controller()
	if err != nil {
		return nil, err
	}
	input.Apply(ctrl)
	return ctrl, nil
}

func (h *Handler) render(c *gin.Context, status int, name string, snap form.Snapshot) {
	out, contentType, err := h.renderers.Render(c.Request.Context(), name, snap, render.RenderOptions{
		Catalog: h.catalog,
		Action:  "/",
		Method:  http.MethodPost,
		Theme:   h.theme,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(status, contentType, out)
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.logger.Error("request failed", zap.Error(err))
	c.String(http.StatusInternalServerError, "internal error")
}
