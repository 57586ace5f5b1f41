package render

import "fmt"

// UnsupportedFeatureError indicates a construct with no valid rendering
// in the target dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// InvalidIdentifierError indicates a name that cannot be quoted for any
// dialect, such as an empty name or one containing a NUL byte.
type InvalidIdentifierError struct {
	Name   string
	Reason string
}

func (e InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.Name, e.Reason)
}

// NewInvalidIdentifierError creates a new invalid identifier error.
func NewInvalidIdentifierError(name, reason string) error {
	return InvalidIdentifierError{Name: name, Reason: reason}
}
