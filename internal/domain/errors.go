package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrValidation         = errors.New("validation failed")
	ErrFormattingService  = errors.New("formatting service failed")
	ErrMalformedStructure = errors.New("malformed structured text")
	ErrRender             = errors.New("render failed")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
)

// InputValidationError indicates the inbound request was unusable.
// Surfaced as a client error; nothing downstream ran.
type InputValidationError struct {
	Message string
}

func (e *InputValidationError) Error() string        { return e.Message }
func (e *InputValidationError) StatusCode() int      { return http.StatusBadRequest }
func (e *InputValidationError) Is(target error) bool { return target == ErrValidation }

// FormattingServiceError wraps a failed call to the text-generation service.
type FormattingServiceError struct {
	Provider string
	Err      error
}

func (e *FormattingServiceError) Error() string {
	if e.Provider == "" {
		return "formatting service: " + e.Err.Error()
	}
	return e.Provider + ": " + e.Err.Error()
}

func (e *FormattingServiceError) Unwrap() error        { return e.Err }
func (e *FormattingServiceError) StatusCode() int      { return http.StatusBadGateway }
func (e *FormattingServiceError) Is(target error) bool { return target == ErrFormattingService }

// MalformedStructureError reports structured text that does not match the
// JSON document schema.
//
// ClientSupplied is true when the caller sent the structure directly
// (render endpoint, CLI) instead of it coming back from the model.
type MalformedStructureError struct {
	Message        string
	ClientSupplied bool
}

func (e *MalformedStructureError) Error() string { return "malformed structure: " + e.Message }

func (e *MalformedStructureError) StatusCode() int {
	if e.ClientSupplied {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

func (e *MalformedStructureError) Is(target error) bool { return target == ErrMalformedStructure }

// RenderError reports a failure while writing the document container.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string        { return "render document: " + e.Err.Error() }
func (e *RenderError) Unwrap() error        { return e.Err }
func (e *RenderError) StatusCode() int      { return http.StatusInternalServerError }
func (e *RenderError) Is(target error) bool { return target == ErrRender }

// NotFoundError indicates a resource was not found
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string        { return e.Message }
func (e *NotFoundError) StatusCode() int      { return http.StatusNotFound }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UnauthorizedError indicates authentication failure
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string        { return e.Message }
func (e *UnauthorizedError) StatusCode() int      { return http.StatusUnauthorized }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
