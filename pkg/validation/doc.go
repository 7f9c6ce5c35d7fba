// Package validation holds the declarative rule table for the order form.
// Each rule is a pure predicate over a draft paired with the message shown
// when it fails. Callers validate a single field after it changes and the
// whole draft to decide whether submission is allowed.
package validation
