package repository

import (
	"time"

	"github.com/okian/legends/internal/domain/model"
	"github.com/okian/legends/internal/domain/units"
)

// BuiltinTeams returns the default team fixture.
func BuiltinTeams() []model.Team {
	return []model.Team{
		{ID: model.TeamLiverpool, Name: "Liverpool FC", City: "Liverpool"},
		{ID: model.TeamManUtd, Name: "Manchester United", City: "Manchester"},
		{ID: model.TeamChelsea, Name: "Chelsea FC", City: "London"},
		{ID: model.TeamManCity, Name: "Manchester City", City: "Manchester"},
	}
}

// BuiltinPlayers returns the default player fixture.
func BuiltinPlayers() []model.Player {
	return []model.Player{
		{
			Name:        "Steven Gerrard",
			DecimalFeet: units.Feet{Feets: 6},
			Height:      units.Imperial{Feet: 6, Inch: 0},
			Position:    "Midfielder",
			BirthDate:   model.NewDate(1980, time.May, 30),
			Teams:       []model.TeamID{model.TeamLiverpool},
		},
		{
			Name:        "Wayne Rooney",
			DecimalFeet: units.Feet{Feets: 5.9},
			Height:      units.Imperial{Feet: 5, Inch: 9},
			Position:    "Forward",
			BirthDate:   model.NewDate(1985, time.October, 24),
			Teams:       []model.TeamID{model.TeamManUtd},
		},
		{
			Name:        "Frank Lampard",
			DecimalFeet: units.Feet{Feets: 6},
			Height:      units.Imperial{Feet: 6, Inch: 0},
			Position:    "Midfielder",
			BirthDate:   model.NewDate(1978, time.June, 20),
			Teams:       []model.TeamID{model.TeamChelsea, model.TeamManCity},
		},
		{
			Name:        "Michael Owen",
			DecimalFeet: units.Feet{Feets: 5.8},
			Height:      units.Imperial{Feet: 5, Inch: 8},
			Position:    "Forward",
			BirthDate:   model.NewDate(1979, time.December, 14),
			Teams:       []model.TeamID{model.TeamLiverpool, model.TeamManUtd},
		},
	}
}
