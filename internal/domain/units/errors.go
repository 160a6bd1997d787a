package units

import "errors"

// Sentinel kinds for unit conversion errors.
var (
	ErrUnknownLength = errors.New("unknown length representation")
)
