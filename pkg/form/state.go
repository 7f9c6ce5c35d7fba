package form

import (
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/validation"
)

// FieldErrors maps a field to its current message. An empty message means the
// field has no error.
type FieldErrors map[order.Field]string

// Get returns the message for field.
func (fe FieldErrors) Get(field order.Field) string {
	if fe == nil {
		return ""
	}
	return fe[field]
}

// Any reports whether at least one field carries a message.
func (fe FieldErrors) Any() bool {
	for _, msg := range fe {
		if msg != "" {
			return true
		}
	}
	return false
}

// Snapshot is an immutable copy of the controller state handed to views.
type Snapshot struct {
	Draft     order.Draft
	Errors    FieldErrors
	CanSubmit bool
	Outcome   Outcome
	Pending   bool
}

// state tracks draft values and field errors. Callers hold the controller
// lock while touching it.
type state struct {
	draft     order.Draft
	errors    FieldErrors
	canSubmit bool
	outcome   Outcome
}

func newState() *state {
	s := &state{outcome: Idle()}
	s.reset()
	return s
}

// reset restores the initial draft and clears every field error.
func (s *state) reset() {
	s.draft = order.NewDraft()
	s.errors = emptyErrors()
	s.canSubmit = validation.Valid(s.draft)
}

func (s *state) snapshot(pending bool) Snapshot {
	return Snapshot{
		Draft:     s.draft.Clone(),
		Errors:    cloneErrors(s.errors),
		CanSubmit: s.canSubmit,
		Outcome:   s.outcome,
		Pending:   pending,
	}
}

func emptyErrors() FieldErrors {
	fields := validation.Fields()
	out := make(FieldErrors, len(fields))
	for _, field := range fields {
		out[field] = ""
	}
	return out
}

func cloneErrors(src FieldErrors) FieldErrors {
	out := make(FieldErrors, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
