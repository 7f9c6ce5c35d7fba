// Package form implements the order form state controller. The controller
// owns the draft, the per-field error messages, the derived submit flag and
// the outcome of the last submission. Views feed it field changes and a submit
// trigger and read back immutable snapshots.
//
// A submission runs without holding the controller lock, so views may keep
// applying changes while it is in flight. Its outcome is applied to whatever
// state exists when the reply arrives.
package form
