// Package tui drives the order form from an interactive terminal session. The
// survey-backed PromptDriver can be replaced for tests or other front ends.
package tui
