// Package units holds the length representations served by the legends API
// and the imperial-to-metric conversions between them.
package units

import "fmt"

// Conversion constants.
const (
	// FeetPerMeter is the factor used by the decimal-feet conversion.
	FeetPerMeter = 3.2808399
	// InchesPerFoot is used to flatten a feet/inch pair into inches.
	InchesPerFoot = 12
	// MetersPerInch is the exact international inch.
	MetersPerInch = 0.0254
)

// Length is a closed set of height representations. Only the types in this
// package implement it.
type Length interface {
	// InMeters returns the length in meters.
	InMeters() float64
	isLength()
}

// Feet is a single decimal-feet value, rendered as {"feets": n}.
type Feet struct {
	Feets float64 `json:"feets"`
}

// Metric is a meters value wrapped in an object, rendered as {"meters": n}.
type Metric struct {
	Meters float64 `json:"meters"`
}

// Imperial is a feet and inch pair, rendered as {"feet": n, "inch": n}.
type Imperial struct {
	Feet int     `json:"feet" yaml:"feet"`
	Inch float64 `json:"inch" yaml:"inch"`
}

// Meters is a bare meters value, rendered as a JSON number.
type Meters float64

func (Feet) isLength()     {}
func (Metric) isLength()   {}
func (Imperial) isLength() {}
func (Meters) isLength()   {}

// InMeters implements Length.
func (f Feet) InMeters() float64 { return FeetToMetric(f).Meters }

// InMeters implements Length.
func (m Metric) InMeters() float64 { return m.Meters }

// InMeters implements Length.
func (i Imperial) InMeters() float64 { return float64(ImperialToMeters(i)) }

// InMeters implements Length.
func (m Meters) InMeters() float64 { return float64(m) }

// Inches returns the total length in inches.
func (i Imperial) Inches() float64 {
	return float64(i.Feet)*InchesPerFoot + i.Inch
}

// FeetToMetric converts decimal feet to meters using the 1/3.2808399 factor.
// No rounding is applied.
func FeetToMetric(f Feet) Metric {
	return Metric{Meters: f.Feets * (1 / FeetPerMeter)}
}

// ImperialToMeters converts a feet/inch pair to meters via total inches.
// No rounding is applied.
func ImperialToMeters(i Imperial) Meters {
	return Meters(i.Inches() * MetersPerInch)
}

// ToMetric returns the metric counterpart of l. Metric values are returned
// unchanged.
func ToMetric(l Length) (Length, error) {
	switch v := l.(type) {
	case Feet:
		return FeetToMetric(v), nil
	case Imperial:
		return ImperialToMeters(v), nil
	case Metric:
		return v, nil
	case Meters:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownLength, l)
	}
}
