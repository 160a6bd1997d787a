package model

import (
	"fmt"
	"strings"
)

// Version selects the response shape of the legends endpoint.
type Version string

// API versions.
const (
	// V1 serves height as decimal feets, or an object of meters.
	V1 Version = "v1"
	// V2 serves height as feet/inch, or a bare number of meters.
	V2 Version = "v2"
	// V3 serves feet/inch and height_in_metric together.
	V3 Version = "v3"
)

// Versions lists the served versions.
func Versions() []Version {
	return []Version{V1, V2, V3}
}

// AcceptsUnit reports whether the version reads the unit parameter.
func (v Version) AcceptsUnit() bool {
	return v == V1 || v == V2
}

// ParseVersion parses "v1", "v2" or "v3" (case-insensitive).
func ParseVersion(s string) (Version, error) {
	switch v := Version(strings.ToLower(strings.TrimSpace(s))); v {
	case V1, V2, V3:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
}
