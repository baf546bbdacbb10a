package apperr

import "fmt"

// InvalidFilterError signals a filter value outside its recognized
// enumeration. The request is rejected rather than silently defaulted.
type InvalidFilterError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidFilterError) Error() string {
	msg := fmt.Sprintf("invalid filter %s: %q", e.Field, e.Value)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFilterError) Unwrap() error {
	return e.Err
}

func NewInvalidFilter(field, value string) *InvalidFilterError {
	return &InvalidFilterError{Field: field, Value: value}
}

// UnknownEntityError signals a reference to an entity id that is not present
// in the current snapshot. Distinct from a valid id with an empty result.
type UnknownEntityError struct {
	Kind string
	ID   string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.ID)
}

func NewUnknownEntity(kind, id string) *UnknownEntityError {
	return &UnknownEntityError{Kind: kind, ID: id}
}
