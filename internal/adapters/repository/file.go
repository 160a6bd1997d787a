package repository

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/legends/internal/domain/model"
	"github.com/okian/legends/internal/domain/units"
)

// Fixture is a complete roster ready to be passed to WithFixture.
type Fixture struct {
	Teams   []model.Team
	Players []model.Player
	Origin  string
}

// fixtureDoc is the YAML layout of a roster file.
type fixtureDoc struct {
	Teams   []teamDoc   `yaml:"teams"`
	Players []playerDoc `yaml:"players"`
}

type teamDoc struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	City string `yaml:"city"`
}

type playerDoc struct {
	Name        string         `yaml:"name"`
	DecimalFeet float64        `yaml:"decimal_feet"`
	Height      units.Imperial `yaml:"height"`
	Position    string         `yaml:"position"`
	BirthDate   string         `yaml:"birth_date"`
	Teams       []string       `yaml:"teams"`
}

// LoadFixtureFile reads a YAML roster file.
func LoadFixtureFile(path string) (Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("open fixture file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fx, err := ParseFixture(f)
	if err != nil {
		return Fixture{}, fmt.Errorf("%s: %w", path, err)
	}
	fx.Origin = originFile
	return fx, nil
}

// ParseFixture decodes a YAML roster. Unknown keys, unknown team codes and
// malformed dates are rejected.
func ParseFixture(r io.Reader) (Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fixtureDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixture{}, fmt.Errorf("%w: empty document", ErrInvalidFixture)
		}
		return Fixture{}, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}

	fx := Fixture{
		Teams:   make([]model.Team, 0, len(doc.Teams)),
		Players: make([]model.Player, 0, len(doc.Players)),
		Origin:  originCustom,
	}
	for _, t := range doc.Teams {
		id, err := model.ParseTeamID(t.ID)
		if err != nil {
			return Fixture{}, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
		}
		fx.Teams = append(fx.Teams, model.Team{ID: id, Name: t.Name, City: t.City})
	}
	for _, p := range doc.Players {
		born, err := model.ParseDate(p.BirthDate)
		if err != nil {
			return Fixture{}, fmt.Errorf("%w: player %q: %w", ErrInvalidFixture, p.Name, err)
		}
		ids := make([]model.TeamID, 0, len(p.Teams))
		for _, raw := range p.Teams {
			id, err := model.ParseTeamID(raw)
			if err != nil {
				return Fixture{}, fmt.Errorf("%w: player %q: %w", ErrInvalidFixture, p.Name, err)
			}
			ids = append(ids, id)
		}
		fx.Players = append(fx.Players, model.Player{
			Name:        p.Name,
			DecimalFeet: units.Feet{Feets: p.DecimalFeet},
			Height:      p.Height,
			Position:    p.Position,
			BirthDate:   born,
			Teams:       ids,
		})
	}
	return fx, nil
}
