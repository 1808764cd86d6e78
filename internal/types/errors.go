// internal/types/errors.go
//
// Domain error taxonomy.
//
// Context
// -------
// Every error that crosses a subsystem boundary is an *APIError: one flat
// struct tagged with an ErrorKind instead of a subtype hierarchy.  The kind
// fixes the default numeric classifier (HTTP-shaped status code) that the
// boundary layer maps onto a response; Details carries optional structured
// context, such as the per-field results of a validation pass.
//
// Dispatch is by kind, through KindOf or errors.As, never by concrete
// subtype.
package types

import (
	"errors"
	"net/http"
)

// ErrorKind enumerates the domain error categories.
type ErrorKind uint8

const (
	KindGeneric ErrorKind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindRateLimit
)

// Status returns the default numeric classifier for the kind.
func (k ErrorKind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimit:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// String returns the lowercase kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	}
	return "api_error"
}

// APIError is the single error shape shared across the backend: a human
// message, a numeric status classifier, and an optional detail map.
type APIError struct {
	Kind    ErrorKind        `json:"kind"`
	Message string           `json:"message"`
	Status  int              `json:"status"`
	Details map[string]Value `json:"details,omitempty"`
}

// Error implements the error interface; the human message is the string
// form, matching how these errors read in logs.
func (e *APIError) Error() string { return e.Message }

func newError(kind ErrorKind, message string, details map[string]Value) *APIError {
	return &APIError{Kind: kind, Message: message, Status: kind.Status(), Details: details}
}

// NewAPIError builds a generic error with an explicit classifier.  A zero
// status falls back to 500.
func NewAPIError(message string, status int, details map[string]Value) *APIError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &APIError{Kind: KindGeneric, Message: message, Status: status, Details: details}
}

// NewValidationError builds a 422 error; details usually map field names to
// the rule they broke.
func NewValidationError(message string, details map[string]Value) *APIError {
	return newError(KindValidation, message, details)
}

// NewAuthenticationError builds a 401 error.  An empty message takes the
// default wording.
func NewAuthenticationError(message string) *APIError {
	if message == "" {
		message = "Authentication failed"
	}
	return newError(KindAuthentication, message, nil)
}

// NewAuthorizationError builds a 403 error.
func NewAuthorizationError(message string) *APIError {
	if message == "" {
		message = "Not authorized"
	}
	return newError(KindAuthorization, message, nil)
}

// NewNotFoundError builds a 404 error.
func NewNotFoundError(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return newError(KindNotFound, message, nil)
}

// NewRateLimitError builds a 429 error.
func NewRateLimitError(message string) *APIError {
	if message == "" {
		message = "Rate limit exceeded"
	}
	return newError(KindRateLimit, message, nil)
}

// KindOf unwraps err and reports its ErrorKind.  ok is false when no
// *APIError is found in the chain.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return KindGeneric, false
}

// StatusOf unwraps err and returns its numeric classifier, defaulting to
// 500 for errors outside the taxonomy.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}
