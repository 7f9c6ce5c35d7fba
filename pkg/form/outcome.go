package form

// OutcomeKind tags the result of the most recent submission attempt.
type OutcomeKind int

const (
	OutcomeIdle OutcomeKind = iota
	OutcomeSuccess
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Outcome is Idle, Success(message) or Failure(message).
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Idle is the outcome before any submission.
func Idle() Outcome {
	return Outcome{Kind: OutcomeIdle}
}

// Success builds a success outcome.
func Success(message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: message}
}

// Failure builds a failure outcome.
func Failure(message string) Outcome {
	return Outcome{Kind: OutcomeFailure, Message: message}
}

func (o Outcome) IsIdle() bool    { return o.Kind == OutcomeIdle }
func (o Outcome) IsSuccess() bool { return o.Kind == OutcomeSuccess }
func (o Outcome) IsFailure() bool { return o.Kind == OutcomeFailure }
