package contract

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	// Path is the order endpoint route.
	Path = "/api/order"
	// OperationID names the order operation in the document.
	OperationID = "placeOrder"

	payloadSchema = "OrderPayload"
	replySchema   = "OrderReply"
	documentPath  = "openapi/order.yaml"
)

//go:embed openapi/order.yaml
var documentFS embed.FS

var (
	// ErrInvalidBody indicates a body that does not match the contract.
	ErrInvalidBody = errors.New("contract: body does not match schema")
	// ErrMissingOperation indicates the document lacks the order operation.
	ErrMissingOperation = errors.New("contract: order operation not defined")
)

// FS exposes the embedded OpenAPI document.
func FS() fs.FS {
	sub, err := fs.Sub(documentFS, "openapi")
	if err != nil {
		return documentFS
	}
	return sub
}

// Document returns the raw embedded OpenAPI document.
func Document() []byte {
	raw, err := documentFS.ReadFile(documentPath)
	if err != nil {
		return nil
	}
	return raw
}

// Contract wraps the loaded and validated OpenAPI document.
type Contract struct {
	spec    *openapi3.T
	payload *openapi3.Schema
	reply   *openapi3.Schema
}

// Load parses the embedded document and validates it.
func Load(ctx context.Context) (*Contract, error) {
	return LoadFromData(ctx, Document())
}

// LoadFromData parses and validates raw as the order contract.
func LoadFromData(ctx context.Context, raw []byte) (*Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("contract: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate: %w", err)
	}

	item := spec.Paths.Value(Path)
	if item == nil || item.Post == nil || item.Post.OperationID != OperationID {
		return nil, ErrMissingOperation
	}

	payload, err := componentSchema(spec, payloadSchema)
	if err != nil {
		return nil, err
	}
	reply, err := componentSchema(spec, replySchema)
	if err != nil {
		return nil, err
	}

	return &Contract{spec: spec, payload: payload, reply: reply}, nil
}

// MustLoad is Load for package initialisation and tests.
func MustLoad(ctx context.Context) *Contract {
	c, err := Load(ctx)
	if err != nil {
		panic(err)
	}
	return c
}

// Spec returns the parsed document.
func (c *Contract) Spec() *openapi3.T {
	return c.spec
}

// ValidatePayload checks a request body against the OrderPayload schema.
func (c *Contract) ValidatePayload(raw []byte) error {
	return visit(c.payload, payloadSchema, raw)
}

// ValidateReply checks a response body against the OrderReply schema.
func (c *Contract) ValidateReply(raw []byte) error {
	return visit(c.reply, replySchema, raw)
}

func componentSchema(spec *openapi3.T, name string) (*openapi3.Schema, error) {
	ref, ok := spec.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("contract: schema %q not defined", name)
	}
	return ref.Value, nil
}

func visit(schema *openapi3.Schema, name string, raw []byte) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidBody, name, err)
	}
	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidBody, name, err)
	}
	return nil
}
