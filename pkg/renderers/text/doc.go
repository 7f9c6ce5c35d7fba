// Package text provides plain-text and JSON renderers of the order form state,
// used by the command line and the validation endpoint.
package text
