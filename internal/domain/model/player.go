package model

import "github.com/okian/legends/internal/domain/units"

// Player is a fixture player with club references by id.
type Player struct {
	Name string
	// DecimalFeet is the height as recorded for the v1 API.
	DecimalFeet units.Feet
	// Height is the feet/inch height used by v2 and v3.
	Height    units.Imperial
	Position  string
	BirthDate Date
	Teams     []TeamID
}

// Clone returns a copy that shares no slices with p.
func (p Player) Clone() Player {
	c := p
	c.Teams = append([]TeamID(nil), p.Teams...)
	return c
}
