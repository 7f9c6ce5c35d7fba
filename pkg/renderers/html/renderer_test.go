package html_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/render"
	htmlrenderer "github.com/goliatone/go-orderform/pkg/renderers/html"
	"github.com/goliatone/go-orderform/pkg/testsupport"
	"github.com/goliatone/go-orderform/pkg/validation"
)

func newRenderer(t *testing.T, options ...htmlrenderer.Option) *htmlrenderer.Renderer {
	t.Helper()
	r, err := htmlrenderer.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func renderString(t *testing.T, r render.Renderer, snap form.Snapshot, opts render.RenderOptions) string {
	t.Helper()
	out, err := r.Render(context.Background(), snap, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, out)
		}
	}
}

func assertNotContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(out, fragment) {
			t.Fatalf("expected output not to contain %q\n%s", fragment, out)
		}
	}
}

func TestRenderer_Metadata(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "html" {
		t.Fatalf("name = %q", r.Name())
	}
	if !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("content type = %q", r.ContentType())
	}
}

func TestRenderer_EmptyForm(t *testing.T) {
	r := newRenderer(t)
	var snap form.Snapshot

	out := renderString(t, r, snap, render.RenderOptions{Action: "/"})

	assertContains(t, out,
		"<h2>Order Your Pizza</h2>",
		`<form action="/" method="POST" novalidate>`,
		`<option value="">----Choose Size----</option>`,
		`<option value="S">Small</option>`,
		`<input name="toppings" type="checkbox" value="1">`,
		"Pepperoni<br>",
		"Ham<br>",
		`<input type="submit" disabled>`,
		"<style>",
	)
	assertNotContains(t, out, `class="error"`, `class="success"`, `class="failure"`)
}

func TestRenderer_FieldErrors(t *testing.T) {
	r := newRenderer(t)
	snap := testsupport.Snapshot(t, "Al", "")

	out := renderString(t, r, snap, render.RenderOptions{})

	assertContains(t, out,
		`<div class="error" data-field="fullName">`+validation.MessageFullNameTooShort+`</div>`,
		`<div class="error" data-field="size">`+validation.MessageSizeIncorrect+`</div>`,
		`value="Al"`,
		`<input type="submit" disabled>`,
	)
}

func TestRenderer_ValidDraftEnablesSubmit(t *testing.T) {
	r := newRenderer(t)
	snap := testsupport.Snapshot(t, "Alice", "L", "1", "3")

	out := renderString(t, r, snap, render.RenderOptions{})

	assertContains(t, out,
		`<option value="L" selected>Large</option>`,
		`<input name="toppings" type="checkbox" value="1" checked>`,
		`<input name="toppings" type="checkbox" value="3" checked>`,
		`<input name="toppings" type="checkbox" value="2">`,
		`<input type="submit">`,
	)
	assertNotContains(t, out, `class="error"`)
}

func TestRenderer_PendingDisablesSubmit(t *testing.T) {
	r := newRenderer(t)
	snap := testsupport.Snapshot(t, "Alice", "L")
	snap.Pending = true

	out := renderString(t, r, snap, render.RenderOptions{})
	assertContains(t, out, `<input type="submit" disabled>`)
}

func TestRenderer_WithoutSubmitGate(t *testing.T) {
	r := newRenderer(t, htmlrenderer.WithSubmitGate(false))

	empty := renderString(t, r, form.Snapshot{}, render.RenderOptions{})
	assertContains(t, empty, `<input type="submit">`)
	assertNotContains(t, empty, `<input type="submit" disabled>`)

	invalid := renderString(t, r, testsupport.Snapshot(t, "Al", ""), render.RenderOptions{})
	assertContains(t, invalid, validation.MessageFullNameTooShort, `<input type="submit">`)

	pending := testsupport.Snapshot(t, "Alice", "L")
	pending.Pending = true
	assertContains(t, renderString(t, r, pending, render.RenderOptions{}), `<input type="submit" disabled>`)
}

func TestRenderer_TemplatesDir(t *testing.T) {
	empty := t.TempDir()
	r := newRenderer(t, htmlrenderer.WithTemplatesDir(empty))
	assertContains(t, renderString(t, r, form.Snapshot{}, render.RenderOptions{}), "<h2>Order Your Pizza</h2>")

	custom := t.TempDir()
	page := []byte(`{{ view.title }}|{{ view.outcome.message|sanitize_message }}`)
	if err := os.WriteFile(filepath.Join(custom, htmlrenderer.TemplateName), page, 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	r = newRenderer(t, htmlrenderer.WithTemplatesDir(custom))
	snap := form.Snapshot{Outcome: form.Success("<em>done</em><img src=x>")}
	out := renderString(t, r, snap, render.RenderOptions{Title: "Custom"})
	if out != "Custom|<em>done</em>" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderer_EscapesUserInput(t *testing.T) {
	r := newRenderer(t)
	snap := testsupport.Snapshot(t, `<script>x</script>`, "S")

	out := renderString(t, r, snap, render.RenderOptions{})

	assertContains(t, out, "&lt;script&gt;")
	assertNotContains(t, out, "<script>x</script>")
}

func TestRenderer_OutcomeBanners(t *testing.T) {
	r := newRenderer(t)

	success := form.Snapshot{Outcome: form.Success(`Thanks, <b>Alice</b>!<script>alert(1)</script>`)}
	out := renderString(t, r, success, render.RenderOptions{})
	assertContains(t, out, `<div class="success" role="status">Thanks, <b>Alice</b>!</div>`)
	assertNotContains(t, out, "alert(1)", `class="failure"`)

	failure := form.Snapshot{Outcome: form.Failure("Out of stock")}
	out = renderString(t, r, failure, render.RenderOptions{})
	assertContains(t, out, `<div class="failure" role="alert">Out of stock</div>`)
	assertNotContains(t, out, `class="success"`)
}

func TestRenderer_Theme(t *testing.T) {
	r := newRenderer(t, htmlrenderer.WithStylesheet(""))
	snap := testsupport.Snapshot(t, "Alice", "M")

	out := renderString(t, r, snap, render.RenderOptions{
		Title: "Pizza Night",
		Theme: &theme.RendererConfig{
			Theme:   "acme",
			Variant: "dark",
			CSSVars: map[string]string{"--brand": "#654321"},
		},
	})

	assertContains(t, out,
		"<title>Pizza Night</title>",
		`data-theme="acme"`,
		`data-variant="dark"`,
		`style="--brand: #654321;"`,
	)
	assertNotContains(t, out, "<style>")
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"order_form.tpl": {Data: []byte(`{{ view.fullName }}|{{ view.size }}|{{ view.labels|join:"," }}`)},
	}
	r := newRenderer(t, htmlrenderer.WithTemplatesFS(files))
	snap := testsupport.Snapshot(t, "Alice", "S", "5", "2")

	out := renderString(t, r, snap, render.RenderOptions{})
	if out != "Alice|S|Green Peppers,Ham" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	r := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, form.Snapshot{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestAssetsFS(t *testing.T) {
	if _, err := htmlrenderer.AssetsFS().Open(htmlrenderer.StylesheetName); err != nil {
		t.Fatalf("stylesheet missing: %v", err)
	}
}
