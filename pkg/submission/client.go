package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-orderform/pkg/order"
)

const (
	DefaultSuccessMessage = "Thank you for your order!"
	DefaultFailureMessage = "Something went wrong"

	// maxReplyBytes bounds how much of a reply body is read.
	maxReplyBytes = 1 << 20
)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used to reach the endpoint.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger for transport diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFallbackMessages sets the messages used when the endpoint reply carries
// no message of its own. Empty values keep the defaults.
func WithFallbackMessages(success, failure string) Option {
	return func(c *Client) {
		if s := strings.TrimSpace(success); s != "" {
			c.successMessage = s
		}
		if f := strings.TrimSpace(failure); f != "" {
			c.failureMessage = f
		}
	}
}

// Client posts order payloads to a fixed endpoint.
type Client struct {
	endpoint       string
	httpClient     *http.Client
	logger         *zap.Logger
	successMessage string
	failureMessage string
}

// New constructs a Client for endpoint. The default HTTP client has no
// timeout; callers bound the call through the context or WithHTTPClient.
func New(endpoint string, options ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}

	c := &Client{
		endpoint:       endpoint,
		httpClient:     &http.Client{},
		logger:         zap.NewNop(),
		successMessage: DefaultSuccessMessage,
		failureMessage: DefaultFailureMessage,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Endpoint reports the URL orders are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts payload and maps the reply to a Result. It never returns a Go
// error: transport failures become Err results with the fallback message.
func (c *Client) Submit(ctx context.Context, payload order.Payload) Result {
	if payload.Toppings == nil {
		payload.Toppings = []string{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return c.failure(0, fmt.Errorf("encode payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.failure(0, fmt.Errorf("request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failure(0, fmt.Errorf("%w: %v", ErrTransport, err))
	}
	defer resp.Body.Close()

	reply, decodeErr := decodeReply(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		msg := strings.TrimSpace(reply.Message)
		if msg == "" {
			msg = c.successMessage
		}
		c.logger.Debug("order accepted",
			zap.Int("status", resp.StatusCode),
			zap.String("order_id", reply.OrderID),
		)
		res := Ok(msg)
		res.StatusCode = resp.StatusCode
		res.Cause = decodeErr
		return res
	}

	msg := strings.TrimSpace(reply.Message)
	if msg == "" {
		cause := fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
		if decodeErr != nil {
			cause = fmt.Errorf("%w: status %d: %v", ErrRejected, resp.StatusCode, decodeErr)
		}
		return c.failure(resp.StatusCode, cause)
	}

	c.logger.Info("order rejected",
		zap.Int("status", resp.StatusCode),
		zap.String("message", msg),
	)
	res := Err(msg)
	res.StatusCode = resp.StatusCode
	res.Cause = fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	return res
}

func (c *Client) failure(status int, cause error) Result {
	c.logger.Warn("order submission failed",
		zap.String("endpoint", c.endpoint),
		zap.Int("status", status),
		zap.Error(cause),
	)
	res := Err(c.failureMessage)
	res.StatusCode = status
	res.Cause = cause
	return res
}

func decodeReply(r io.Reader) (order.Reply, error) {
	var reply order.Reply
	raw, err := io.ReadAll(io.LimitReader(r, maxReplyBytes))
	if err != nil {
		return reply, fmt.Errorf("read reply: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return reply, nil
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return order.Reply{}, fmt.Errorf("decode reply: %w", err)
	}
	return reply, nil
}
