package employee

import (
	"errors"
	"fmt"
)

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// DuplicateError reports a uniqueness conflict on a specific field. The
// storage-level constraints are the real guard; this error exists so the
// caller learns which field collided.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("employee with %s '%s' already exists", e.Field, e.Value)
}
