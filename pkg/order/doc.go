// Package order defines the order draft collected by the form, the fixed size
// options, the topping catalog supplied as configuration and the JSON payload
// shape posted to the order endpoint. Types here carry no validation logic;
// rules live in pkg/validation and state transitions in pkg/form.
package order
