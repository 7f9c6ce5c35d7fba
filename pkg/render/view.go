package render

import (
	"net/http"
	"sort"
	"strings"

	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/order"
)

// DefaultTitle is the page heading used when RenderOptions.Title is empty.
const DefaultTitle = "Order Your Pizza"

// View is the render-ready projection of a snapshot shared by the renderers.
// Field names follow the payload names so templates and JSON consumers see the
// same keys.
type View struct {
	Title     string            `json:"title"`
	Action    string            `json:"action,omitempty"`
	Method    string            `json:"method,omitempty"`
	FullName  string            `json:"fullName"`
	Size      string            `json:"size"`
	Sizes     []SizeChoice      `json:"sizes"`
	Toppings  []ToppingChoice   `json:"toppings"`
	Selected  []string          `json:"selected"`
	Labels    []string          `json:"labels"`
	Errors    map[string]string `json:"errors"`
	CanSubmit bool              `json:"canSubmit"`
	Pending   bool              `json:"pending"`
	Outcome   OutcomeView       `json:"outcome"`
	Theme     ThemeView         `json:"theme"`
}

// SizeChoice is one size radio button.
type SizeChoice struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// ToppingChoice is one topping checkbox.
type ToppingChoice struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// OutcomeView is the banner for the last submission.
type OutcomeView struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

// ThemeView flattens the theme configuration for templates.
type ThemeView struct {
	Name    string `json:"name,omitempty"`
	Variant string `json:"variant,omitempty"`
	Style   string `json:"style,omitempty"`
}

// NewView projects snapshot through options.
func NewView(snapshot form.Snapshot, options RenderOptions) View {
	draft := snapshot.Draft
	catalog := options.catalog()

	view := View{
		Title:     strings.TrimSpace(options.Title),
		Action:    options.Action,
		Method:    strings.ToUpper(strings.TrimSpace(options.Method)),
		FullName:  draft.FullName,
		Size:      string(draft.Size),
		Selected:  draft.Toppings(),
		Labels:    catalog.Labels(draft.Toppings()),
		Errors:    make(map[string]string, len(snapshot.Errors)),
		CanSubmit: snapshot.CanSubmit,
		Pending:   snapshot.Pending,
		Outcome: OutcomeView{
			Kind:    snapshot.Outcome.Kind.String(),
			Message: snapshot.Outcome.Message,
		},
	}
	if view.Title == "" {
		view.Title = DefaultTitle
	}
	if view.Method == "" {
		view.Method = http.MethodPost
	}

	for _, opt := range order.Sizes() {
		view.Sizes = append(view.Sizes, SizeChoice{
			Value:    string(opt.Value),
			Label:    opt.Label,
			Selected: opt.Value == draft.Size,
		})
	}
	for _, topping := range catalog.Toppings() {
		view.Toppings = append(view.Toppings, ToppingChoice{
			ID:      topping.ID,
			Label:   topping.Label,
			Checked: draft.HasTopping(topping.ID),
		})
	}
	for field, msg := range snapshot.Errors {
		if msg != "" {
			view.Errors[string(field)] = msg
		}
	}

	if cfg := options.Theme; cfg != nil {
		view.Theme = ThemeView{
			Name:    cfg.Theme,
			Variant: cfg.Variant,
			Style:   CSSVarsStyle(cfg.CSSVars),
		}
	}
	return view
}

// CSSVarsStyle renders CSS custom properties as a deterministic declaration
// list suitable for a style attribute.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	return b.String()
}
