package form

import "errors"

var (
	// ErrSubmitterRequired is returned by New when no submitter is supplied.
	ErrSubmitterRequired = errors.New("form: submitter is required")
	// ErrNotSubmittable is returned by Submit when the draft fails validation.
	// The collaborator is not contacted and the outcome is left untouched.
	ErrNotSubmittable = errors.New("form: draft is not valid for submission")
	// ErrSubmissionInFlight is returned by Submit while a previous submission
	// has not completed.
	ErrSubmissionInFlight = errors.New("form: submission already in flight")
)
