// Package stubserver is a development stand-in for the remote order endpoint.
// It checks payloads against the OpenAPI contract and the shared validation
// rules, and answers in the same message shape the real endpoint uses.
package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-orderform/internal/logging"
	"github.com/goliatone/go-orderform/pkg/contract"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/validation"
)

const (
	// MessageOutOfStock is returned when a configured topping is requested.
	MessageOutOfStock = "Out of stock"
	// MessageInvalidPayload is returned when the body does not match the contract.
	MessageInvalidPayload = "Invalid order payload"
)

// Option configures the handler.
type Option func(*Handler)

// WithOutOfStock makes the stub reject orders containing any of ids.
func WithOutOfStock(ids ...string) Option {
	return func(h *Handler) {
		for _, id := range ids {
			if id = strings.TrimSpace(id); id != "" {
				h.outOfStock[id] = struct{}{}
			}
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithIDGenerator overrides the order id source.
func WithIDGenerator(fn func() string) Option {
	return func(h *Handler) {
		if fn != nil {
			h.newID = fn
		}
	}
}

// Handler serves the order endpoint.
type Handler struct {
	contract   *contract.Contract
	outOfStock map[string]struct{}
	logger     *zap.Logger
	newID      func() string
}

// NewHandler builds the handler around a loaded contract.
func NewHandler(c *contract.Contract, options ...Option) (*Handler, error) {
	if c == nil {
		return nil, fmt.Errorf("stubserver: contract is required")
	}
	h := &Handler{
		contract:   c,
		outOfStock: make(map[string]struct{}),
		logger:     zap.NewNop(),
		newID:      uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h, nil
}

// Router returns a gin engine exposing the endpoint at contract.Path.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware(h.logger))
	router.POST(contract.Path, h.CreateOrder)
	return router
}

// CreateOrder handles POST /api/order.
func (h *Handler) CreateOrder(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, order.Reply{Message: MessageInvalidPayload})
		return
	}
	if err := h.contract.ValidatePayload(raw); err != nil {
		h.logger.Debug("payload rejected by contract", zap.Error(err))
		c.JSON(http.StatusBadRequest, order.Reply{Message: MessageInvalidPayload})
		return
	}

	var payload order.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, order.Reply{Message: MessageInvalidPayload})
		return
	}

	draft := order.Draft{FullName: payload.FullName, Size: order.Size(payload.Size)}
	for _, id := range payload.Toppings {
		draft = draft.WithTopping(id)
	}
	if res := validation.Validate(draft); !res.Valid {
		c.JSON(http.StatusUnprocessableEntity, order.Reply{Message: res.Issues[0].Message})
		return
	}

	for _, id := range draft.Toppings() {
		if _, out := h.outOfStock[id]; out {
			h.logger.Info("order rejected", zap.String("topping", id))
			c.JSON(http.StatusUnprocessableEntity, order.Reply{Message: MessageOutOfStock})
			return
		}
	}

	reply := order.Reply{
		Message: ConfirmationMessage(draft),
		OrderID: h.newID(),
	}
	h.logger.Info("order accepted", zap.String("order_id", reply.OrderID))
	c.JSON(http.StatusCreated, reply)
}

// ConfirmationMessage is the success text for an accepted draft.
func ConfirmationMessage(draft order.Draft) string {
	return fmt.Sprintf("Thank you for your order, %s! Your %s pizza with %s is on the way.",
		strings.TrimSpace(draft.FullName),
		strings.ToLower(draft.Size.Label()),
		toppingCount(len(draft.Toppings())),
	)
}

func toppingCount(n int) string {
	switch n {
	case 0:
		return "no toppings"
	case 1:
		return "1 topping"
	default:
		return fmt.Sprintf("%d toppings", n)
	}
}
