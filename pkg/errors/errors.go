package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP layer can pick a status code and
// the caller can decide what to do next.
type Kind string

const (
	KindInput      Kind = "input_error"
	KindExtraction Kind = "extraction_error"
	KindTimeout    Kind = "timeout_error"
	KindInternal   Kind = "internal_error"
)

type ApiError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	code    int
	wrapped error
}

var (
	ErrUnsupportedFormat = func(detail string) *ApiError {
		return New(KindInput, http.StatusBadRequest, "Unsupported file format", detail)
	}
	ErrFileTooLarge = func(detail string) *ApiError {
		return New(KindInput, http.StatusBadRequest, "File too large", detail)
	}
	ErrMissingFile = func(detail string) *ApiError {
		return New(KindInput, http.StatusBadRequest, "Missing file", detail)
	}
	ErrCorruptDocument = func(detail string) *ApiError {
		return New(KindExtraction, http.StatusUnprocessableEntity, "Corrupt document", detail)
	}
	ErrEmptyDocument = func(detail string) *ApiError {
		return New(KindExtraction, http.StatusUnprocessableEntity, "Empty document", detail)
	}
	ErrTimeout = func(detail string) *ApiError {
		return New(KindTimeout, http.StatusGatewayTimeout, "Processing timed out", detail)
	}
	ErrInternal = func(detail string) *ApiError {
		return New(KindInternal, http.StatusInternalServerError, "Internal server error", detail)
	}
)

func New(kind Kind, code int, message, detail string) *ApiError {
	return &ApiError{
		Kind:    kind,
		Message: message,
		Detail:  detail,
		code:    code,
	}
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *ApiError) StatusCode() int {
	return e.code
}

func (e *ApiError) Unwrap() error {
	return e.wrapped
}

// Wrap attaches an underlying cause while keeping the taxonomy intact.
func (e *ApiError) Wrap(err error) *ApiError {
	e.wrapped = err
	return e
}

// AsApiError extracts an *ApiError from an error chain. Unknown errors map
// to an internal error with a generic message so internals never leak.
func AsApiError(err error) *ApiError {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrInternal("unexpected failure during matching").Wrap(err)
}
