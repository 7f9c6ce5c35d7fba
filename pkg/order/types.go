package order

import (
	"sort"
	"strings"
)

// Field identifies a form field by the name used in payloads, view events and
// field error maps.
type Field string

const (
	FieldFullName Field = "fullName"
	FieldSize     Field = "size"
	FieldToppings Field = "toppings"
)

// Size is the pizza size code. The empty string means "not chosen yet".
type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// SizeOption pairs a size code with its display label.
type SizeOption struct {
	Value Size   `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Sizes returns the size options in display order.
func Sizes() []SizeOption {
	return []SizeOption{
		{Value: SizeSmall, Label: "Small"},
		{Value: SizeMedium, Label: "Medium"},
		{Value: SizeLarge, Label: "Large"},
	}
}

// Label returns the display label for s, or an empty string when s is not a
// known size.
func (s Size) Label() string {
	for _, opt := range Sizes() {
		if opt.Value == s {
			return opt.Label
		}
	}
	return ""
}

// Draft is the in-progress order. The zero value is the empty draft.
type Draft struct {
	FullName string
	Size     Size
	toppings map[string]struct{}
}

// NewDraft returns an empty draft.
func NewDraft() Draft {
	return Draft{}
}

// HasTopping reports whether id is selected.
func (d Draft) HasTopping(id string) bool {
	_, ok := d.toppings[id]
	return ok
}

// WithTopping returns a copy of d with id selected. Selecting an id twice has
// no further effect.
func (d Draft) WithTopping(id string) Draft {
	id = strings.TrimSpace(id)
	if id == "" || d.HasTopping(id) {
		return d
	}
	out := d.Clone()
	if out.toppings == nil {
		out.toppings = make(map[string]struct{}, 1)
	}
	out.toppings[id] = struct{}{}
	return out
}

// WithoutTopping returns a copy of d with id deselected.
func (d Draft) WithoutTopping(id string) Draft {
	id = strings.TrimSpace(id)
	if !d.HasTopping(id) {
		return d
	}
	out := d.Clone()
	delete(out.toppings, id)
	return out
}

// Toppings returns the selected topping ids sorted ascending. The result is
// never nil.
func (d Draft) Toppings() []string {
	out := make([]string, 0, len(d.toppings))
	for id := range d.toppings {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy so callers can hand drafts across goroutines.
func (d Draft) Clone() Draft {
	out := Draft{FullName: d.FullName, Size: d.Size}
	if len(d.toppings) > 0 {
		out.toppings = make(map[string]struct{}, len(d.toppings))
		for id := range d.toppings {
			out.toppings[id] = struct{}{}
		}
	}
	return out
}

// IsEmpty reports whether d equals the initial draft.
func (d Draft) IsEmpty() bool {
	return d.FullName == "" && d.Size == "" && len(d.toppings) == 0
}

// Payload converts d into the JSON body posted to the order endpoint.
func (d Draft) Payload() Payload {
	return Payload{
		FullName: d.FullName,
		Size:     string(d.Size),
		Toppings: d.Toppings(),
	}
}
