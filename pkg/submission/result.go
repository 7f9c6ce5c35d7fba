package submission

// Kind distinguishes accepted orders from rejected ones.
type Kind int

const (
	KindOK Kind = iota + 1
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindErr:
		return "err"
	default:
		return "unknown"
	}
}

// Result is the single value returned by a submission attempt: either
// Ok(message) or Err(message). StatusCode is zero when no response arrived and
// Cause carries the transport or decoding error for logging only.
type Result struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

// Ok builds an accepted result.
func Ok(message string) Result {
	return Result{Kind: KindOK, Message: message}
}

// Err builds a rejected result.
func Err(message string) Result {
	return Result{Kind: KindErr, Message: message}
}

// IsOK reports whether the order was accepted.
func (r Result) IsOK() bool {
	return r.Kind == KindOK
}
