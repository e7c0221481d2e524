package errors

import (
	"fmt"
)

// Error taxonomy for the Silvercloud client. Every failure a caller can
// observe is one of these types; the HTTP clients never recover errors
// themselves, they translate each failed call into one of these and
// propagate it.

// NetworkError is a transport-level failure: no HTTP response was received
// at all (DNS failure, connection refused, timeout).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthError is a non-2xx response from an auth endpoint. Message carries the
// server's human-readable rejection (the body's "detail" field when present).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// APIError is a non-2xx response from a resource endpoint.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// DecodeError is a response body that could not be decoded into the
// caller's expected shape.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ConfigError is missing or malformed startup configuration. Fatal: the
// client refuses to run without its identity-provider settings.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
