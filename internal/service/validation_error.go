package service

import (
	"fmt"
	"strings"
)

type ViolationKind string

const (
	RequiredFieldMissing ViolationKind = "required_field_missing"
	UniquenessViolation  ViolationKind = "uniqueness_violation"
	FormatViolation      ViolationKind = "format_violation"
	RangeViolation       ViolationKind = "range_violation"
	InvalidEnumValue     ViolationKind = "invalid_enum_value"
	DateTooEarly         ViolationKind = "date_too_early"
	InvalidReference     ViolationKind = "invalid_reference"
)

// FieldError is one user-correctable problem with a submitted field.
type FieldError struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// ValidationError collects every failing field of a submission.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed with the given kind.
func (e *ValidationError) Has(field string, kind ViolationKind) bool {
	for _, fe := range e.Errors {
		if fe.Field == field && fe.Kind == kind {
			return true
		}
	}
	return false
}

func (e *ValidationError) failed(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field string, kind ViolationKind, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Kind: kind, Message: message})
}

// ByField groups the errors for display next to each form input.
func (e *ValidationError) ByField() map[string][]FieldError {
	grouped := make(map[string][]FieldError, len(e.Errors))
	for _, fe := range e.Errors {
		grouped[fe.Field] = append(grouped[fe.Field], fe)
	}
	return grouped
}
