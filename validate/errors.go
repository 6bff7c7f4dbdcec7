// Package validate implements the shallow structural validator (§4.5):
// it checks a single data-model node and its immediate structural
// components, never descending into the values of its children. It is
// grounded on schema/identifier.go's small pure-function style and
// applies the same fail-fast, wrap-and-return discipline schema.ParseDDL
// uses for its own errors.
package validate

import (
	"fmt"

	"github.com/Alphish/ston-go/model"
)

// ImplementationMismatchError reports that a supplied value did not
// belong to one of the recognized concrete variants of a closed sum type.
type ImplementationMismatchError struct {
	Context string
}

func (e *ImplementationMismatchError) Error() string {
	return fmt.Sprintf("implementation mismatch: unrecognized %s variant", e.Context)
}

// NullArgumentError reports that a required field was absent.
type NullArgumentError struct {
	Field string
}

func (e *NullArgumentError) Error() string {
	return fmt.Sprintf("null argument: %s is required", e.Field)
}

// MalformedContentError reports that a SimpleValue's content violates the
// grammar for its DataType.
type MalformedContentError struct {
	DataType model.DataType
	Reason   string
}

func (e *MalformedContentError) Error() string {
	return fmt.Sprintf("malformed %s content: %s", e.DataType, e.Reason)
}

// StructuralViolationError reports that an invariant on a parent node was
// violated.
type StructuralViolationError struct {
	Reason string
}

func (e *StructuralViolationError) Error() string {
	return e.Reason
}

// EntityError wraps a lower-level error encountered while validating a
// specific entity, carrying the offending entity handle alongside the
// underlying message (§7's "wraps ... into an entity-level error").
type EntityError struct {
	Kind   string
	Entity model.Entity
	Err    error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

func wrapEntity(kind string, entity model.Entity, err error) error {
	if err == nil {
		return nil
	}
	return &EntityError{Kind: kind, Entity: entity, Err: err}
}
