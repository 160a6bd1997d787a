package repository

import "errors"

// Sentinel kinds for fixture errors.
var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrInvalidFixture = errors.New("invalid fixture")
)
