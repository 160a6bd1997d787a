package model

import "fmt"

// Unit selects the height unit of v1 and v2 responses.
type Unit string

// Supported units.
const (
	UnitImperial Unit = "imperial"
	UnitMetric   Unit = "metric"
)

// ParseUnit parses the unit query value. An empty value means imperial.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case "", UnitImperial:
		return UnitImperial, nil
	case UnitMetric:
		return UnitMetric, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
}
