package order_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-orderform/pkg/order"
)

func TestDraft_ToggleRoundTripRestoresSelection(t *testing.T) {
	base := order.NewDraft().WithTopping("2")

	toggled := base.WithTopping("4").WithoutTopping("4")
	if diff := cmp.Diff(base.Toppings(), toggled.Toppings()); diff != "" {
		t.Fatalf("toggle on/off mismatch (-want +got):\n%s", diff)
	}

	again := base.WithTopping("2")
	if diff := cmp.Diff([]string{"2"}, again.Toppings()); diff != "" {
		t.Fatalf("duplicate add should be a no-op (-want +got):\n%s", diff)
	}

	removed := base.WithoutTopping("9")
	if diff := cmp.Diff([]string{"2"}, removed.Toppings()); diff != "" {
		t.Fatalf("removing absent id should be a no-op (-want +got):\n%s", diff)
	}
}

func TestDraft_WithToppingDoesNotAliasOriginal(t *testing.T) {
	original := order.NewDraft().WithTopping("1")
	_ = original.WithTopping("3")

	if original.HasTopping("3") {
		t.Fatalf("original draft mutated by WithTopping")
	}
}

func TestDraft_PayloadJSON(t *testing.T) {
	draft := order.Draft{FullName: " Alice ", Size: order.SizeLarge}
	draft = draft.WithTopping("3").WithTopping("1")

	raw, err := json.Marshal(draft.Payload())
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	want := `{"fullName":" Alice ","size":"L","toppings":["1","3"]}`
	if string(raw) != want {
		t.Fatalf("payload mismatch\nwant: %s\n got: %s", want, raw)
	}

	empty, err := json.Marshal(order.NewDraft().Payload())
	if err != nil {
		t.Fatalf("marshal empty payload: %v", err)
	}
	if !strings.Contains(string(empty), `"toppings":[]`) {
		t.Fatalf("expected empty toppings array, got %s", empty)
	}
}

func TestCatalog_RejectsDuplicateAndEmptyIDs(t *testing.T) {
	if _, err := order.NewCatalog([]order.Topping{{ID: "1"}, {ID: " 1 "}}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if _, err := order.NewCatalog([]order.Topping{{ID: "  ", Label: "Blank"}}); err == nil {
		t.Fatalf("expected empty id error")
	}
}

func TestCatalog_LabelsFollowCatalogOrder(t *testing.T) {
	cat := order.DefaultCatalog()

	got := cat.Labels([]string{"5", "x", "1"})
	want := []string{"Pepperoni", "Ham", "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	if top, ok := cat.Lookup("3"); !ok || top.Label != "Pineapple" {
		t.Fatalf("lookup 3 = %+v, %v", top, ok)
	}
}

func TestSize_Label(t *testing.T) {
	if got := order.SizeMedium.Label(); got != "Medium" {
		t.Fatalf("medium label = %q", got)
	}
	if got := order.Size("XL").Label(); got != "" {
		t.Fatalf("unknown size label = %q", got)
	}
}
