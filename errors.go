package datapoint

import "fmt"

// MissingFieldError reports a required wire key absent from the payload
// being decoded.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// InvalidValueError reports a wire value that cannot be converted to its
// target type or enumeration.
type InvalidValueError struct {
	Field string
	Value string
	Want  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("field %q: %q is not a valid %s", e.Field, e.Value, e.Want)
}

// UnknownResolutionError reports a Resolution value outside the known set.
type UnknownResolutionError struct {
	Value Resolution
}

func (e *UnknownResolutionError) Error() string {
	return fmt.Sprintf("%q is not a valid resolution", string(e.Value))
}

// UnsupportedUnitError reports an extreme type with no registered unit of
// measurement.
type UnsupportedUnitError struct {
	Type ExtremeType
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("extreme type %q has no associated unit", string(e.Type))
}
