// Package html renders the order form as a server-side HTML page using the
// pongo2 template engine. Endpoint messages are sanitised before display and
// theme tokens are applied as CSS custom properties.
package html
