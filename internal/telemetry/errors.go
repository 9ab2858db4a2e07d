package telemetry

import "errors"

// ErrInvalidWindow is returned when a historical window ends before it starts.
var ErrInvalidWindow = errors.New("telemetry: invalid window")
