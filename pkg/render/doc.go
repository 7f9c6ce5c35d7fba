// Package render defines the renderer contract shared by the HTML, text and
// JSON views of the order form, the registry that looks them up by name, and
// the View projection they all start from.
package render
