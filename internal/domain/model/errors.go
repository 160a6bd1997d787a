package model

import "errors"

// Sentinel kinds for domain value errors.
var (
	ErrUnknownTeam    = errors.New("unknown team")
	ErrInvalidUnit    = errors.New("invalid unit")
	ErrInvalidVersion = errors.New("invalid api version")
)
