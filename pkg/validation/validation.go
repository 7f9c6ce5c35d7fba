package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-orderform/pkg/order"
)

const (
	FullNameMinLength = 3
	FullNameMaxLength = 20
)

// Error messages surfaced inline next to the offending field.
const (
	MessageFullNameTooShort = "full name must be at least 3 characters"
	MessageFullNameTooLong  = "full name must be at most 20 characters"
	MessageSizeIncorrect    = "size must be S or M or L"
)

// Rule is a single predicate over one field of the draft. Check reports
// whether the draft satisfies the rule.
type Rule struct {
	Field   order.Field
	Check   func(order.Draft) bool
	Message string
}

// Issue represents a failed rule attached to a field.
type Issue struct {
	Field   order.Field `json:"field"`
	Message string      `json:"message"`
}

// Result captures the outcome of validating a whole draft.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Message returns the issue message recorded for field, or an empty string.
func (r Result) Message(field order.Field) string {
	for _, issue := range r.Issues {
		if issue.Field == field {
			return issue.Message
		}
	}
	return ""
}

// rules is evaluated in declaration order; the first failing rule of a field
// provides its message, so min-length wins over max-length.
var rules = []Rule{
	{
		Field: order.FieldFullName,
		Check: func(d order.Draft) bool {
			return nameLength(d.FullName) >= FullNameMinLength
		},
		Message: MessageFullNameTooShort,
	},
	{
		Field: order.FieldFullName,
		Check: func(d order.Draft) bool {
			return nameLength(d.FullName) <= FullNameMaxLength
		},
		Message: MessageFullNameTooLong,
	},
	{
		Field:   order.FieldSize,
		Check:   func(d order.Draft) bool { return IsSize(d.Size) },
		Message: MessageSizeIncorrect,
	},
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Fields returns the fields that carry rules, in evaluation order. Toppings
// are absent: they never produce an error.
func Fields() []order.Field {
	var out []order.Field
	seen := make(map[order.Field]struct{}, 2)
	for _, rule := range rules {
		if _, ok := seen[rule.Field]; ok {
			continue
		}
		seen[rule.Field] = struct{}{}
		out = append(out, rule.Field)
	}
	return out
}

// ValidateField evaluates only the rules of field against draft and returns
// the first failing message, or an empty string when the field is valid or has
// no rules.
func ValidateField(field order.Field, draft order.Draft) string {
	for _, rule := range rules {
		if rule.Field != field {
			continue
		}
		if !rule.Check(draft) {
			return rule.Message
		}
	}
	return ""
}

// Validate evaluates every field and reports at most one issue per field.
func Validate(draft order.Draft) Result {
	result := Result{Valid: true}
	for _, field := range Fields() {
		if msg := ValidateField(field, draft); msg != "" {
			result.Valid = false
			result.Issues = append(result.Issues, Issue{Field: field, Message: msg})
		}
	}
	return result
}

// Valid reports whether every rule passes. It is the logical AND of all field
// predicates.
func Valid(draft order.Draft) bool {
	for _, rule := range rules {
		if !rule.Check(draft) {
			return false
		}
	}
	return true
}

// IsSize reports whether s is one of the accepted size codes.
func IsSize(s order.Size) bool {
	switch s {
	case order.SizeSmall, order.SizeMedium, order.SizeLarge:
		return true
	default:
		return false
	}
}

func nameLength(name string) int {
	return utf8.RuneCountInString(strings.TrimSpace(name))
}
