package submission

import "errors"

var (
	// ErrEndpointRequired is returned by New when no endpoint is configured.
	ErrEndpointRequired = errors.New("submission: endpoint is required")
	// ErrTransport marks failures where no response was received.
	ErrTransport = errors.New("submission: transport failure")
	// ErrRejected marks replies with a non-2xx status.
	ErrRejected = errors.New("submission: order rejected")
)
