package text

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
)

// State is the JSON document produced by JSONRenderer.
type State struct {
	Values    order.Payload      `json:"values"`
	Errors    map[string]string  `json:"errors"`
	CanSubmit bool               `json:"canSubmit"`
	Pending   bool               `json:"pending"`
	Outcome   render.OutcomeView `json:"outcome"`
}

// NewState builds the JSON document for snapshot. Every validated field is
// present in Errors, with an empty string when it has no error.
func NewState(snapshot form.Snapshot) State {
	errs := make(map[string]string, len(snapshot.Errors))
	for field, msg := range snapshot.Errors {
		errs[string(field)] = msg
	}
	return State{
		Values:    snapshot.Draft.Payload(),
		Errors:    errs,
		CanSubmit: snapshot.CanSubmit,
		Pending:   snapshot.Pending,
		Outcome: render.OutcomeView{
			Kind:    snapshot.Outcome.Kind.String(),
			Message: snapshot.Outcome.Message,
		},
	}
}

// JSONRenderer encodes the form state as indented JSON.
type JSONRenderer struct{}

var _ render.Renderer = JSONRenderer{}

// NewJSON returns the JSON renderer.
func NewJSON() JSONRenderer {
	return JSONRenderer{}
}

func (JSONRenderer) Name() string        { return JSONName }
func (JSONRenderer) ContentType() string { return "application/json" }

func (JSONRenderer) Render(ctx context.Context, snapshot form.Snapshot, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(NewState(snapshot), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json renderer: %w", err)
	}
	return append(out, '\n'), nil
}
