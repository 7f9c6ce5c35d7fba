package order

// Payload is the request body accepted by the order endpoint.
type Payload struct {
	FullName string   `json:"fullName"`
	Size     string   `json:"size"`
	Toppings []string `json:"toppings"`
}

// Reply is the body returned by the order endpoint for both accepted and
// rejected orders.
type Reply struct {
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}
