package order

import (
	"fmt"
	"strings"
)

// Topping is a selectable extra with a stable identifier.
type Topping struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Catalog is the ordered, immutable list of toppings offered by the form.
type Catalog struct {
	toppings []Topping
	index    map[string]int
}

// DefaultToppings returns the toppings offered when no configuration overrides
// them.
func DefaultToppings() []Topping {
	return []Topping{
		{ID: "1", Label: "Pepperoni"},
		{ID: "2", Label: "Green Peppers"},
		{ID: "3", Label: "Pineapple"},
		{ID: "4", Label: "Mushrooms"},
		{ID: "5", Label: "Ham"},
	}
}

// NewCatalog validates and freezes the provided toppings. Ids must be unique
// and non-empty; labels default to the id.
func NewCatalog(toppings []Topping) (Catalog, error) {
	cat := Catalog{
		toppings: make([]Topping, 0, len(toppings)),
		index:    make(map[string]int, len(toppings)),
	}
	for i, t := range toppings {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return Catalog{}, fmt.Errorf("order: topping %d has an empty id", i)
		}
		if _, exists := cat.index[id]; exists {
			return Catalog{}, fmt.Errorf("order: duplicate topping id %q", id)
		}
		label := strings.TrimSpace(t.Label)
		if label == "" {
			label = id
		}
		cat.index[id] = len(cat.toppings)
		cat.toppings = append(cat.toppings, Topping{ID: id, Label: label})
	}
	return cat, nil
}

// MustCatalog panics when NewCatalog fails. Useful for package-level defaults.
func MustCatalog(toppings []Topping) Catalog {
	cat, err := NewCatalog(toppings)
	if err != nil {
		panic(err)
	}
	return cat
}

// DefaultCatalog returns a catalog of DefaultToppings.
func DefaultCatalog() Catalog {
	return MustCatalog(DefaultToppings())
}

// Toppings returns a copy of the catalog entries in display order.
func (c Catalog) Toppings() []Topping {
	return append([]Topping(nil), c.toppings...)
}

// Lookup returns the topping with the given id.
func (c Catalog) Lookup(id string) (Topping, bool) {
	idx, ok := c.index[id]
	if !ok {
		return Topping{}, false
	}
	return c.toppings[idx], true
}

// Len reports the number of toppings.
func (c Catalog) Len() int {
	return len(c.toppings)
}

// Labels resolves ids to labels in catalog order. Unknown ids are appended
// verbatim so nothing selected is silently dropped.
func (c Catalog) Labels(ids []string) []string {
	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}
	out := make([]string, 0, len(ids))
	for _, t := range c.toppings {
		if _, ok := selected[t.ID]; ok {
			out = append(out, t.Label)
			delete(selected, t.ID)
		}
	}
	for _, id := range ids {
		if _, ok := selected[id]; ok {
			out = append(out, id)
			delete(selected, id)
		}
	}
	return out
}
