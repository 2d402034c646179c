package domain

import (
	"errors"
	"fmt"
)

// Error classes surfaced by the checkout and price operations.
var (
	// ErrBadRequest is returned when the caller supplied an unusable cart.
	ErrBadRequest = errors.New("bad request")
	// ErrConfiguration is returned when a required setting is absent.
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstream is returned when the payment provider call failed.
	ErrUpstream = errors.New("upstream error")
)

// BadRequestError carries a human-readable reason safe to show the caller.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string { return e.Reason }

// Is reports ErrBadRequest as the error class.
func (e *BadRequestError) Is(target error) bool { return target == ErrBadRequest }

// NewBadRequest formats a BadRequestError.
func NewBadRequest(format string, args ...any) error {
	return &BadRequestError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError names the missing setting. It never holds the value.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing %s", e.Setting)
}

// Is reports ErrConfiguration as the error class.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// UpstreamError wraps a payment provider failure.
//
// Message is the provider's own message when one was returned, StatusCode
// the provider's HTTP status (0 for transport failures).
type UpstreamError struct {
	Op         string
	Message    string
	StatusCode int
	Code       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is reports ErrUpstream as the error class.
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// CallerFault reports whether the provider rejected the request because of
// what the caller referenced (unknown or malformed object) rather than
// because the provider or the network failed.
func (e *UpstreamError) CallerFault() bool {
	switch e.StatusCode {
	case 400, 404:
		return true
	}
	return e.Code == "resource_missing"
}

// UpstreamMessage returns the provider message carried by err, if any.
func UpstreamMessage(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		if ue.Message != "" {
			return ue.Message
		}
		if ue.Err != nil {
			return ue.Err.Error()
		}
	}
	return ""
}
