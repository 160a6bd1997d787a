package model

import "fmt"

// TeamID identifies one of the known clubs.
type TeamID string

// Known clubs.
const (
	TeamLiverpool TeamID = "liverpool"
	TeamManUtd    TeamID = "man_utd"
	TeamManCity   TeamID = "man_city"
	TeamChelsea   TeamID = "chelsea"
)

// TeamIDs lists every known club.
func TeamIDs() []TeamID {
	return []TeamID{TeamLiverpool, TeamManUtd, TeamManCity, TeamChelsea}
}

// Valid reports whether id is one of the known clubs.
func (id TeamID) Valid() bool {
	switch id {
	case TeamLiverpool, TeamManUtd, TeamManCity, TeamChelsea:
		return true
	default:
		return false
	}
}

// ParseTeamID parses a club code.
func ParseTeamID(s string) (TeamID, error) {
	id := TeamID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, s)
	}
	return id, nil
}

// Team is a club as stored in the fixture.
type Team struct {
	ID   TeamID `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}
