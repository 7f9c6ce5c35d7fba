package html

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/render"
	rendertemplate "github.com/goliatone/go-orderform/pkg/render/template"
	"github.com/goliatone/go-orderform/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS   fs.FS
	templatesDir string
	stylesheet   *string
	submitGate   bool
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// order_form.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates missing
// there are taken from the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithStylesheet replaces the inlined stylesheet. An empty string disables it.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// WithSubmitGate controls whether the submit button is disabled while the
// draft is not submittable. It is on by default. Pages posted back to a server
// that validates on submit turn it off, since nothing on the page re-enables the
// button. A pending submission always disables it.
func WithSubmitGate(enabled bool) Option {
	return func(cfg *config) {
		cfg.submitGate = enabled
	}
}

// Renderer renders the order form page.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	submitGate bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), submitGate: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}

	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(cfg.templatesDir),
		gotemplate.WithFS(cfg.templateFS),
		gotemplate.WithFilter(sanitizeFilterName, sanitizeFilter),
		gotemplate.WithGlobalData(map[string]any{"stylesheet": stylesheet}),
	)
	if err != nil {
		return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
	}

	return &Renderer{templates: engine, submitGate: cfg.submitGate}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full page for snapshot.
func (r *Renderer) Render(ctx context.Context, snapshot form.Snapshot, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	view := render.NewView(snapshot, options)
	result, err := r.templates.RenderTemplate(TemplateName, map[string]any{
		"view":     view,
		"disabled": view.Pending || (r.submitGate && !view.CanSubmit),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
