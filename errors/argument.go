package errors

import "fmt"

// ArgumentError is the default error returned by a failed guard clause.
// It carries the offending value, the parameter name and the failure kind,
// so callers can inspect it with errors.As or match the kind with errors.Is.
type ArgumentError struct {
	Kind    *Kind
	Name    string
	Value   any
	Message string

	// Cause is the underlying failure, if the guard delegated to something
	// else (a Validate method, a parser).
	Cause error
}

// NewArgumentError builds an ArgumentError. If message is empty, the kind's
// description is used.
func NewArgumentError(kind *Kind, name string, value any, message string) *ArgumentError {
	return &ArgumentError{
		Kind:    kind,
		Name:    name,
		Value:   value,
		Message: message,
	}
}

func (e *ArgumentError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	kind := ErrArgument
	if e.Kind != nil {
		kind = e.Kind
	}

	if e.Name == "" {
		return kind.Error()
	}

	return fmt.Sprintf("%s: %s", e.Name, kind.Error())
}

// WithCause returns a copy of e that also unwraps to cause.
func (e *ArgumentError) WithCause(cause error) *ArgumentError {
	clone := *e
	clone.Cause = cause

	return &clone
}

// Unwrap exposes the kind and the cause, which lets errors.Is match the kind,
// its ancestors and anything the cause wraps.
func (e *ArgumentError) Unwrap() []error {
	var errs []error

	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}

	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	return errs
}
