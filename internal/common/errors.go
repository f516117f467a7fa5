package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("requested resource not found")
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("resource conflict") // e.g., username already exists
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
// Validation and conflict errors are rejections by the store and surface as 500.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
