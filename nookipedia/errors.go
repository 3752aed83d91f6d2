package nookipedia

import (
	"fmt"
	"net/http"
)

// unknownErrorTitle is reported for non-success status codes the
// library does not recognize.
const unknownErrorTitle = "Unexpected API error"

// ErrorKind identifies the failure class of an API response.
type ErrorKind int

const (
	// KindUnknown covers any non-success status without a dedicated kind.
	KindUnknown ErrorKind = iota
	// KindBadRequest is a 400 response, usually a malformed parameter.
	KindBadRequest
	// KindUnauthorized is a 401 response, a missing or invalid API key.
	KindUnauthorized
	// KindNotFound is a 404 response, a resource that does not exist.
	KindNotFound
	// KindServerError is a 500 response from the API itself.
	KindServerError
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindServerError:
		return "server error"
	default:
		return "unknown"
	}
}

// ErrorBody is the JSON error payload returned by the API. Either field
// may be empty if the service returned an unexpected body.
type ErrorBody struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

// APIError represents a non-success response from the Nookipedia API.
// Callers distinguish failures by Kind rather than by comparing status
// numbers; the raw code and body stay available for generic handling.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Title      string
	Details    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("nookipedia API error: status %d: %s: %s", e.StatusCode, e.Title, e.Details)
	}
	return fmt.Sprintf("nookipedia API error: status %d: %s", e.StatusCode, e.Title)
}

// IsNotFound reports whether the error is a not-found response.
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsUnauthorized reports whether the error is an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == KindUnauthorized
}

// classify maps a non-success status code and decoded error body to a
// typed error. Recognized codes get their fixed kind; anything else is
// KindUnknown with the fallback title and whatever code was reported.
func classify(statusCode int, body ErrorBody) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Title:      body.Title,
		Details:    body.Details,
	}

	switch statusCode {
	case http.StatusBadRequest:
		apiErr.Kind = KindBadRequest
	case http.StatusUnauthorized:
		apiErr.Kind = KindUnauthorized
	case http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case http.StatusInternalServerError:
		apiErr.Kind = KindServerError
	default:
		apiErr.Kind = KindUnknown
		apiErr.Title = unknownErrorTitle
	}

	return apiErr
}
