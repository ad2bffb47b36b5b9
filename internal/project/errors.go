package project

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure. Every Kind is detected before any
// filesystem mutation and is always fatal to the run.
type Kind string

const (
	KindInvalidName         Kind = "invalid_name"
	KindUnknownVariant      Kind = "unknown_variant"
	KindDirectoryExists     Kind = "directory_exists"
	KindMissingPrerequisite Kind = "missing_prerequisite"
	KindUnresolvedVariable  Kind = "unresolved_template_variable"
)

// ValidationError is the typed error for all pre-flight failures.
type ValidationError struct {
	Kind   Kind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// AsValidationError unwraps err into a *ValidationError if one is in its
// chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
