package domain

import (
	"errors"
	"fmt"
)

// Failure classes reported by the breed data providers.
var (
	ErrConfiguration     = errors.New("configuration error")
	ErrUpstreamRejected  = errors.New("upstream rejected the request")
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// Source names the upstream a record or failure came from.
type Source string

const (
	SourceCurated    Source = "curated"
	SourceGenerative Source = "generative"
)

// FetchError carries the failure class plus enough context to log it.
// Kind is one of ErrConfiguration, ErrUpstreamRejected or ErrMalformedResponse.
type FetchError struct {
	Kind   error
	Source Source
	Op     string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the failure class and the underlying cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewConfigurationError reports a missing credential or endpoint.
func NewConfigurationError(source Source, op string, err error) *FetchError {
	return &FetchError{Kind: ErrConfiguration, Source: source, Op: op, Err: err}
}

// NewUpstreamRejected reports a non-success status or envelope.
func NewUpstreamRejected(source Source, op string, status int, err error) *FetchError {
	return &FetchError{Kind: ErrUpstreamRejected, Source: source, Op: op, Status: status, Err: err}
}

// NewMalformedResponse reports output that could not be decoded or validated.
func NewMalformedResponse(source Source, op string, err error) *FetchError {
	return &FetchError{Kind: ErrMalformedResponse, Source: source, Op: op, Err: err}
}

// FailureKind returns a stable label for metrics and logs.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrUpstreamRejected):
		return "upstream_rejected"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "unknown"
	}
}
