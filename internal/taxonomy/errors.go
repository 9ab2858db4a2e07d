package taxonomy

import "errors"

var (
	// ErrNotFound is returned when a device type name is unknown.
	ErrNotFound = errors.New("taxonomy: device type not found")
	// ErrInvalidSpec is returned when a type or parameter spec is malformed.
	ErrInvalidSpec = errors.New("taxonomy: invalid spec")
)
