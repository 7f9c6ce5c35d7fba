package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrControllerRequired is returned when New receives a nil controller.
	ErrControllerRequired = errors.New("tui: controller is required")
)
