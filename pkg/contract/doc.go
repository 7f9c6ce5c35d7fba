// Package contract embeds the OpenAPI document describing the order endpoint
// and validates request and reply bodies against it.
package contract
