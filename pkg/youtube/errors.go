package youtube

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorItem is a single entry of an API error payload.
type ErrorItem struct {
	Domain       string `json:"domain"                 yaml:"domain"`
	Reason       string `json:"reason"                 yaml:"reason"`
	Message      string `json:"message"                yaml:"message"`
	LocationType string `json:"locationType,omitempty" yaml:"locationType,omitempty"`
	Location     string `json:"location,omitempty"     yaml:"location,omitempty"`
}

// ErrorDetail is the structured cause the API returns under the top-level
// "error" key of a failure envelope.
type ErrorDetail struct {
	Code    int         `json:"code"             yaml:"code"`
	Message string      `json:"message"          yaml:"message"`
	Errors  []ErrorItem `json:"errors,omitempty" yaml:"errors,omitempty"`
	Status  string      `json:"status,omitempty" yaml:"status,omitempty"`
}

// Error implements the error interface.
func (e *ErrorDetail) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// FirstReason returns the reason of the first error entry, or "".
func (e *ErrorDetail) FirstReason() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Reason
	}

	return ""
}

// ErrorEnvelope is the top-level shape of a failure response body.
type ErrorEnvelope struct {
	Error *ErrorDetail `json:"error"`
}

// APIError is the unified error produced by the transport layer for every
// server-reported failure. URL identifies the request that failed (with the
// credential redacted). Exactly one of Detail and Raw is populated: Detail
// when the body was a parseable error envelope, Raw with the body text when
// it was not.
type APIError struct {
	URL        string
	StatusCode int
	Detail     *ErrorDetail
	Raw        string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("GET %s: %s", e.URL, e.Detail.Error())
	}

	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.StatusCode, e.Raw)
}

// Unwrap exposes the structured cause for errors.Is/As chains.
func (e *APIError) Unwrap() error {
	if e.Detail != nil {
		return e.Detail
	}

	return nil
}

// ResourceNotFoundError reports a lookup that succeeded at the transport
// level but matched no resource. The server signals this case with an empty
// item list inside a 200 envelope rather than an HTTP error, so the client
// synthesizes the failure locally. Kind is the envelope's kind field.
type ResourceNotFoundError struct {
	Kind string
	URL  string
}

// Error implements the error interface.
func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource %s not found", e.Kind)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrCountTooSmall       = errors.New("cannot fetch less than 1 result")
	ErrUnknownResourceType = errors.New("unknown resource type")
)

// Well-known error reasons reported by the API.
const (
	ReasonQuotaExceeded    = "quotaExceeded"
	ReasonKeyInvalid       = "keyInvalid"
	ReasonVideoNotFound    = "videoNotFound"
	ReasonPlaylistNotFound = "playlistNotFound"
	ReasonInvalidPageToken = "invalidPageToken"
)

// IsNotFound reports whether err is a missing-resource failure: either a
// locally synthesized ResourceNotFoundError or a server 404.
func IsNotFound(err error) bool {
	notFound := &ResourceNotFoundError{}
	if errors.As(err, &notFound) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsQuotaExceeded reports whether err is the API's daily-quota rejection.
func IsQuotaExceeded(err error) bool {
	return HasReason(err, ReasonQuotaExceeded)
}

// IsBadRequest reports whether err is a 400-level rejection of the request
// itself (malformed parameters, invalid page token, and so on).
func IsBadRequest(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusBadRequest
	}

	return false
}

// HasReason reports whether err carries an API error entry with the given
// reason string.
func HasReason(err error, reason string) bool {
	apiErr := &APIError{}
	if !errors.As(err, &apiErr) || apiErr.Detail == nil {
		return false
	}

	for _, item := range apiErr.Detail.Errors {
		if item.Reason == reason {
			return true
		}
	}

	return false
}

// ParseErrorEnvelope decodes a failure body. It returns an error when the
// body is not a structured error envelope, letting callers fall back to the
// raw text.
func ParseErrorEnvelope(data []byte) (*ErrorDetail, error) {
	var envelope ErrorEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error envelope: %w", err)
	}

	if envelope.Error == nil {
		return nil, fmt.Errorf("%w: missing error payload", ErrMalformedErrorBody)
	}

	return envelope.Error, nil
}

// ErrMalformedErrorBody marks failure bodies that parsed as JSON but did not
// contain an error payload.
var ErrMalformedErrorBody = errors.New("malformed error body")
