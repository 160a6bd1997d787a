package smoketest

import "time"

// HTTP status code constants.
const (
	StatusOK                  = 200
	StatusUnprocessableEntity = 422
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
	maxReportedFailures     = 20
)

// Defaults used when Config fields are zero.
const (
	DefaultRounds  = 10
	DefaultTimeout = 10 * time.Second
	tolerance      = 1e-6
)
