package mailpreview

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Match them with errors.Is.
var (
	ErrForbidden           = errors.New("mail preview requires debug mode")
	ErrPreviewNotFound     = errors.New("mail preview not found")
	ErrPartNotFound        = errors.New("email part not found")
	ErrUnregisteredPreview = errors.New("mail preview is not registered")
	ErrBuildFailed         = errors.New("mail preview failed to build email")
)

// Error is a classified failure with the HTTP status the router renders it with.
type Error struct {
	Kind    error
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status for the error.
func (e *Error) StatusCode() int {
	return e.Status
}

// Unwrap exposes both the kind and the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func forbidden() error {
	return &Error{Kind: ErrForbidden, Status: http.StatusForbidden, Message: "Forbidden"}
}

func previewNotFound(preview, email string) error {
	return &Error{
		Kind:    ErrPreviewNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("Mailer preview %s::%s not found", preview, email),
	}
}

func partNotFound(part, preview, email string) error {
	return &Error{
		Kind:    ErrPartNotFound,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("Email part '%s' not found in %s::%s", part, preview, email),
	}
}

func unregistered(className string) error {
	return &Error{
		Kind:    ErrUnregisteredPreview,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("Mailer preview class %s is not registered", className),
	}
}

func buildFailed(preview, email string, err error) error {
	return &Error{
		Kind:    ErrBuildFailed,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("Mailer preview %s::%s failed: %v", preview, email, err),
		Err:     err,
	}
}
