package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/submission"
)

// StubSubmitter records payloads and answers with a fixed result.
type StubSubmitter struct {
	mu       sync.Mutex
	Result   submission.Result
	payloads []order.Payload
}

// NewStubSubmitter returns a submitter answering with result.
func NewStubSubmitter(result submission.Result) *StubSubmitter {
	return &StubSubmitter{Result: result}
}

// Submit implements form.Submitter.
func (s *StubSubmitter) Submit(_ context.Context, payload order.Payload) submission.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return s.Result
}

// Payloads returns the payloads received so far.
func (s *StubSubmitter) Payloads() []order.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]order.Payload(nil), s.payloads...)
}

// NewController builds a controller around submitter, failing the test on error.
func NewController(t *testing.T, submitter form.Submitter, options ...form.Option) *form.Controller {
	t.Helper()

	ctrl, err := form.New(submitter, options...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return ctrl
}

// Snapshot drives a fresh controller through the given edits and returns its
// state. Empty name or size values are still applied so their field errors show.
func Snapshot(t *testing.T, name, size string, toppings ...string) form.Snapshot {
	t.Helper()

	ctrl := NewController(t, NewStubSubmitter(submission.Ok("")))
	ctrl.SetFullName(name)
	ctrl.SetSize(size)
	for _, id := range toppings {
		ctrl.ToggleTopping(id, true)
	}
	return ctrl.Snapshot()
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
