package service

import "errors"

// ErrNotStarted is returned when the roster is requested before Start.
var ErrNotStarted = errors.New("legends service not started")
