package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-orderform/pkg/order"
)

// RenderOptions describe per-request data renderers use alongside the
// snapshot.
type RenderOptions struct {
	// Catalog lists the toppings to offer. The zero value falls back to the
	// default catalog.
	Catalog order.Catalog
	// Action is the URL the HTML form posts to.
	Action string
	// Method is the HTTP method for the HTML form. Defaults to POST.
	Method string
	// Title overrides the page heading.
	Title string
	// Theme carries tokens and CSS variables resolved from configuration.
	Theme *theme.RendererConfig
}

func (o RenderOptions) catalog() order.Catalog {
	if o.Catalog.Len() == 0 {
		return order.DefaultCatalog()
	}
	return o.Catalog
}
