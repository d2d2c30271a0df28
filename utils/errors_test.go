package utils

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestIncorrectDoFError(t *testing.T) {
	err := NewIncorrectDoFError(3, 4)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expected 4 but got 3")
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
}

func TestConfigValidationErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		err    error
		errStr string
	}{
		{"wrapped", NewConfigValidationError("scara", errors.New("bad")), `error validating "scara": bad`},
		{"required", NewConfigValidationFieldRequiredError("rrr", "l2"), `error validating "rrr": "l2" must be greater than zero`},
		{"negative", NewConfigValidationNegativeFieldError("scara", "d"), `error validating "scara": "d" must not be negative`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			test.That(t, tc.err.Error(), test.ShouldEqual, tc.errStr)
		})
	}
}
