// Package config loads the order form configuration from YAML. An embedded
// default document is always applied first so a partial file only needs to
// name the values it changes.
package config
