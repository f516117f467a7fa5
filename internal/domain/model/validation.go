package model

import (
	"strings"

	"pharmacy_store/internal/common"
)

// ValidationError lists the fields that made a record unacceptable to the store.
type ValidationError struct {
	Model  string
	Fields []string
}

func NewValidationError(model string) *ValidationError {
	return &ValidationError{Model: model}
}

func (e *ValidationError) Error() string {
	return e.Model + " validation failed: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

// Require records field as missing unless present is true.
func (e *ValidationError) Require(field string, present bool) {
	if !present {
		e.Fields = append(e.Fields, field+" is required")
	}
}

// Add records already formatted messages, skipping empty ones.
func (e *ValidationError) Add(msgs ...string) {
	for _, msg := range msgs {
		if msg != "" {
			e.Fields = append(e.Fields, msg)
		}
	}
}

// Err returns e if any field was recorded, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
