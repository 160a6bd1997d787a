package smoketest

import "errors"

// Sentinel errors returned by Run.
var (
	ErrUnhealthy    = errors.New("service unhealthy")
	ErrChecksFailed = errors.New("smoke checks failed")
	ErrUnexpected   = errors.New("unexpected response")
)
