package orderform

import (
	"io/fs"

	htmlrenderer "github.com/goliatone/go-orderform/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in page template so callers can copy or
// extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return htmlrenderer.TemplatesFS()
}

// EmbeddedAssets exposes the stylesheet served under /assets.
func EmbeddedAssets() fs.FS {
	return htmlrenderer.AssetsFS()
}
