package config

import "errors"

var (
	// ErrEndpointRequired indicates the configuration has no order endpoint.
	ErrEndpointRequired = errors.New("config: endpoint is required")
	// ErrInvalidTopping indicates an empty or duplicated topping id.
	ErrInvalidTopping = errors.New("config: invalid topping")
	// ErrNegativeTimeout indicates a negative submission timeout.
	ErrNegativeTimeout = errors.New("config: timeout must not be negative")
	// ErrUnknownVariant indicates the selected theme variant is not defined.
	ErrUnknownVariant = errors.New("config: unknown theme variant")
)
