package form

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/submission"
	"github.com/goliatone/go-orderform/pkg/validation"
)

// Submitter delivers a payload to the order endpoint. *submission.Client
// satisfies it.
type Submitter interface {
	Submit(ctx context.Context, payload order.Payload) submission.Result
}

// Observer receives a snapshot after every state transition.
type Observer func(Snapshot)

// Change is a raw field event supplied by a view. Toggle marks set-membership
// fields (topping checkboxes), for which Value is the topping id and Checked
// tells whether it was turned on. Scalar fields ignore Checked.
type Change struct {
	Field   order.Field
	Value   string
	Toggle  bool
	Checked bool
}

// Option configures the Controller.
type Option func(*Controller)

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers fn to be called after every transition.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// Controller is the form state machine. It is safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	state     *state
	pending   bool
	submitter Submitter
	logger    *zap.Logger
	observers []Observer
}

// New constructs a controller holding an empty draft.
func New(submitter Submitter, options ...Option) (*Controller, error) {
	if submitter == nil {
		return nil, ErrSubmitterRequired
	}
	c := &Controller{
		state:     newState(),
		submitter: submitter,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.snapshot(c.pending)
}

// CanSubmit reports whether the whole draft currently passes validation.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.canSubmit
}

// UpdateField applies a view event, validates the changed field in isolation
// and recomputes the submit flag over the whole draft. It never fails; invalid
// input shows up as a field error.
func (c *Controller) UpdateField(change Change) {
	c.mu.Lock()
	applied := c.apply(change)
	c.mu.Unlock()

	if applied {
		c.publish()
	}
}

// SetFullName replaces the full name.
func (c *Controller) SetFullName(value string) {
	c.UpdateField(Change{Field: order.FieldFullName, Value: value})
}

// SetSize replaces the size.
func (c *Controller) SetSize(value string) {
	c.UpdateField(Change{Field: order.FieldSize, Value: value})
}

// ToggleTopping selects or deselects a topping id.
func (c *Controller) ToggleTopping(id string, on bool) {
	c.UpdateField(Change{Field: order.FieldToppings, Value: id, Toggle: true, Checked: on})
}

func (c *Controller) apply(change Change) bool {
	s := c.state

	if change.Toggle {
		if change.Field != order.FieldToppings {
			c.logger.Debug("ignoring toggle on scalar field", zap.String("field", string(change.Field)))
			return false
		}
		if change.Checked {
			s.draft = s.draft.WithTopping(change.Value)
		} else {
			s.draft = s.draft.WithoutTopping(change.Value)
		}
	} else {
		switch change.Field {
		case order.FieldFullName:
			s.draft.FullName = change.Value
		case order.FieldSize:
			s.draft.Size = order.Size(change.Value)
		default:
			c.logger.Debug("ignoring change to unknown field", zap.String("field", string(change.Field)))
			return false
		}
		s.errors[change.Field] = validation.ValidateField(change.Field, s.draft)
	}

	s.canSubmit = validation.Valid(s.draft)
	return true
}

// Submit sends the current draft to the submitter. It refuses with
// ErrNotSubmittable when the draft is invalid and ErrSubmissionInFlight while
// another submission is pending; both leave the outcome untouched.
//
// The lock is released while waiting for the reply. On success the draft is
// reset; on failure it is kept so the user can correct and retry.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return Outcome{}, ErrSubmissionInFlight
	}
	if !validation.Valid(c.state.draft) {
		c.state.canSubmit = false
		c.mu.Unlock()
		return Outcome{}, ErrNotSubmittable
	}
	c.pending = true
	payload := c.state.draft.Payload()
	c.mu.Unlock()

	c.publish()
	c.logger.Debug("submitting order",
		zap.String("size", payload.Size),
		zap.Int("toppings", len(payload.Toppings)),
	)

	res := c.submitter.Submit(ctx, payload)

	var outcome Outcome
	c.mu.Lock()
	c.pending = false
	if res.IsOK() {
		outcome = Success(res.Message)
		c.state.reset()
	} else {
		outcome = Failure(strings.TrimSpace(res.Message))
		if outcome.Message == "" {
			outcome.Message = submission.DefaultFailureMessage
		}
	}
	c.state.outcome = outcome
	c.mu.Unlock()

	if res.IsOK() {
		c.logger.Info("order placed", zap.String("message", outcome.Message))
	} else {
		c.logger.Info("order failed", zap.String("message", outcome.Message), zap.Error(res.Cause))
	}

	c.publish()
	return outcome, nil
}

func (c *Controller) publish() {
	if len(c.observers) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, fn := range c.observers {
		fn(snap)
	}
}
