package models

import (
	"fmt"
	"net/http"
)

// APIError maps directly to an HTTP response: the boundary handler relays
// the status code and message verbatim instead of reinterpreting them.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// Fixed error kinds raised by the upload and delete paths.
var (
	ErrNoFile            = NewAPIError(http.StatusBadRequest, "Bad request: No file provided.")
	ErrMultipleFiles     = NewAPIError(http.StatusBadRequest, "Multiple files upload is not supported.")
	ErrUnsupportedFormat = NewAPIError(http.StatusBadRequest, "Unsupported file format.")
	ErrFilenameMissing   = NewAPIError(http.StatusBadRequest, "Filename not provided.")
	ErrInvalidFilename   = NewAPIError(http.StatusBadRequest, "Invalid filename.")
	ErrFileNotFound      = NewAPIError(http.StatusNotFound, "File not found.")
	ErrPermissionDenied  = NewAPIError(http.StatusInternalServerError, "Permission denied.")
)

// ErrFileTooLarge reports the configured size limit to the client.
func ErrFileTooLarge(maxSize int64) *APIError {
	return NewAPIError(http.StatusBadRequest, fmt.Sprintf("File size exceeds the maximum allowed (%d bytes).", maxSize))
}

// ErrInternal converts an unexpected OS-level failure, keeping the error
// text in the client-facing message.
func ErrInternal(err error) *APIError {
	return NewAPIError(http.StatusInternalServerError, "Internal server error: "+err.Error())
}
