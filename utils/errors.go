package utils

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is the root of every shape or value error returned at a package boundary.
var ErrInvalidArgument = errors.New("invalid argument")

// NewInvalidArgumentError wraps ErrInvalidArgument with a description of what was wrong.
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// NewIncorrectDoFError is used when the number of joint values does not match the number of joints.
func NewIncorrectDoFError(actual, expected int) error {
	return NewInvalidArgumentError("number of inputs does not match frame DoF, expected %d but got %d", expected, actual)
}

// NewConfigValidationError wraps a config validation failure with the path of the offending field.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

// NewConfigValidationFieldRequiredError is used when a config field must be set and positive.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q must be greater than zero", field))
}

// NewConfigValidationNegativeFieldError is used when a config field may be zero but not negative.
func NewConfigValidationNegativeFieldError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q must not be negative", field))
}
