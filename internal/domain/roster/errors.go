package roster

import "errors"

// Sentinel kinds for roster assembly errors.
var (
	ErrUnresolvedTeam = errors.New("unresolved team reference")
)
