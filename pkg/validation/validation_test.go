package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/validation"
)

func TestValidateField_FullNameBounds(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: validation.MessageFullNameTooShort},
		{name: "whitespace only", input: "     ", want: validation.MessageFullNameTooShort},
		{name: "two chars", input: "Al", want: validation.MessageFullNameTooShort},
		{name: "padded two chars", input: "  Al  ", want: validation.MessageFullNameTooShort},
		{name: "three chars", input: "Ali", want: ""},
		{name: "padded valid", input: "   Alice Smith   ", want: ""},
		{name: "twenty chars", input: strings.Repeat("a", 20), want: ""},
		{name: "twenty padded", input: " " + strings.Repeat("a", 20) + " ", want: ""},
		{name: "twenty one chars", input: strings.Repeat("a", 21), want: validation.MessageFullNameTooLong},
		{name: "multibyte counts runes", input: strings.Repeat("é", 20), want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := order.Draft{FullName: tc.input}
			if got := validation.ValidateField(order.FieldFullName, draft); got != tc.want {
				t.Fatalf("ValidateField(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidateField_Size(t *testing.T) {
	for _, size := range []order.Size{order.SizeSmall, order.SizeMedium, order.SizeLarge} {
		if got := validation.ValidateField(order.FieldSize, order.Draft{Size: size}); got != "" {
			t.Fatalf("size %q unexpectedly invalid: %q", size, got)
		}
	}
	for _, size := range []order.Size{"", "s", "XL", " M", "Medium"} {
		if got := validation.ValidateField(order.FieldSize, order.Draft{Size: size}); got != validation.MessageSizeIncorrect {
			t.Fatalf("size %q: got %q, want %q", size, got, validation.MessageSizeIncorrect)
		}
	}
}

func TestValidateField_ToppingsNeverFail(t *testing.T) {
	draft := order.NewDraft().WithTopping("1").WithTopping("nope")
	if got := validation.ValidateField(order.FieldToppings, draft); got != "" {
		t.Fatalf("toppings produced an error: %q", got)
	}
}

func TestValidate_AggregatesPerField(t *testing.T) {
	got := validation.Validate(order.Draft{FullName: "Al"})
	want := validation.Result{
		Valid: false,
		Issues: []validation.Issue{
			{Field: order.FieldFullName, Message: validation.MessageFullNameTooShort},
			{Field: order.FieldSize, Message: validation.MessageSizeIncorrect},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if got.Message(order.FieldSize) != validation.MessageSizeIncorrect {
		t.Fatalf("Message lookup failed")
	}
}

func TestValid_IgnoresToppings(t *testing.T) {
	base := order.Draft{FullName: "Alice", Size: order.SizeLarge}
	if !validation.Valid(base) {
		t.Fatalf("expected valid draft without toppings")
	}
	if !validation.Valid(base.WithTopping("1").WithTopping("3")) {
		t.Fatalf("expected valid draft with toppings")
	}
	if validation.Valid(order.Draft{FullName: "Alice Smith"}) {
		t.Fatalf("missing size should be invalid")
	}
	if !validation.Validate(base).Valid {
		t.Fatalf("Validate and Valid disagree")
	}
}

func TestFields_OrderAndTieBreak(t *testing.T) {
	if diff := cmp.Diff([]order.Field{order.FieldFullName, order.FieldSize}, validation.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	rules := validation.Rules()
	if rules[0].Message != validation.MessageFullNameTooShort || rules[1].Message != validation.MessageFullNameTooLong {
		t.Fatalf("min-length rule must be evaluated before max-length")
	}
}
