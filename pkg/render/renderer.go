package render

import (
	"context"

	"github.com/goliatone/go-orderform/pkg/form"
)

// Renderer converts a controller snapshot into a byte representation (HTML,
// plain text, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, snapshot form.Snapshot, options RenderOptions) ([]byte, error)
}
