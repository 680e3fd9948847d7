package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// ForbiddenError indicates authorization failure
	ForbiddenError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string    { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int    { return http.StatusForbidden }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Import pipeline sentinels - use with errors.Is()
var (
	// ErrInvalidDestinationType indicates an unrecognized destination kind.
	// Raised before any I/O; a caller configuration bug, not a data problem.
	ErrInvalidDestinationType = errors.New("invalid destination type")

	// ErrInvalidSourceSection indicates a source section missing its id or name.
	ErrInvalidSourceSection = errors.New("invalid source section")

	// ErrSectionsNotSupported indicates sections were requested against a flat
	// destination (weld log / weld), which has no section structure.
	ErrSectionsNotSupported = errors.New("sections are not supported for this destination")
)

// AssetCopyError indicates a remote object copy failed for a document asset.
// The whole import of the owning document is aborted; nothing is persisted
// for it.
type AssetCopyError struct {
	StorageRef string
	Err        error
}

func (e *AssetCopyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("asset copy failed for %s: %v", e.StorageRef, e.Err)
	}
	return fmt.Sprintf("asset copy failed for %s", e.StorageRef)
}

// Unwrap exposes the underlying transport error
func (e *AssetCopyError) Unwrap() error { return e.Err }

// StatusCode implements the HTTPError interface
func (e *AssetCopyError) StatusCode() int { return http.StatusBadGateway }

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (document, section, project)
	ResourceID   string // ID of the existing/conflicting resource
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
