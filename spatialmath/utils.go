package spatialmath

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DelimitedStringToSlice splits a string of numbers separated by spaces and/or commas.
func DelimitedStringToSlice(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	converted := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot parse %q", field)
		}
		converted = append(converted, value)
	}
	return converted, nil
}

// ParseRotationMatrix reads nine row-major values from a delimited string.
func ParseRotationMatrix(s string) (*RotationMatrix, error) {
	values, err := DelimitedStringToSlice(s)
	if err != nil {
		return nil, err
	}
	return NewRotationMatrix(values)
}
