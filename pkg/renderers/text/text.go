package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
)

const (
	// TextName is the registry name of the plain-text renderer.
	TextName = "text"
	// JSONName is the registry name of the JSON renderer.
	JSONName = "json"
)

// Renderer prints a human readable summary of the form state.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the plain-text renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string        { return TextName }
func (Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render writes one line per field, followed by the eligibility flag and the
// last outcome when there is one.
func (Renderer) Render(ctx context.Context, snapshot form.Snapshot, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	view := render.NewView(snapshot, options)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", view.Title)
	writeField(&b, "Full Name", quoteOrDash(view.FullName), view.Errors[string(order.FieldFullName)])
	writeField(&b, "Size", sizeLabel(view), view.Errors[string(order.FieldSize)])
	writeField(&b, "Toppings", joinOrDash(view.Labels), "")
	fmt.Fprintf(&b, "Can submit: %s\n", yesNo(view.CanSubmit))

	switch snapshot.Outcome.Kind {
	case form.OutcomeSuccess:
		fmt.Fprintf(&b, "Success: %s\n", view.Outcome.Message)
	case form.OutcomeFailure:
		fmt.Fprintf(&b, "Failure: %s\n", view.Outcome.Message)
	}
	return []byte(b.String()), nil
}

func writeField(b *strings.Builder, label, value, msg string) {
	fmt.Fprintf(b, "  %-10s %s\n", label+":", value)
	if msg != "" {
		fmt.Fprintf(b, "  %-10s ! %s\n", "", msg)
	}
}

func sizeLabel(view render.View) string {
	for _, s := range view.Sizes {
		if s.Selected {
			return s.Label
		}
	}
	if view.Size != "" {
		return view.Size
	}
	return "-"
}

func quoteOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return fmt.Sprintf("%q", s)
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
