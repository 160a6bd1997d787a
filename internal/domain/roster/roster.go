// Package roster assembles the legends response: it resolves each player's
// team ids to team records and shapes the height for the requested version.
package roster

import (
	"context"
	"fmt"

	"github.com/okian/legends/internal/domain/model"
	"github.com/okian/legends/internal/domain/units"
)

// Source is the read side of the fixture store.
type Source interface {
	Players(ctx context.Context) []model.Player
	Team(ctx context.Context, id model.TeamID) (model.Team, error)
}

// TeamView is a team as shown to clients, without its id.
type TeamView struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// Legend is one player record of the response.
type Legend struct {
	Name   string       `json:"name"`
	Height units.Length `json:"height"`
	// HeightInMetric is only set by v3.
	HeightInMetric *units.Meters `json:"height_in_metric,omitempty"`
	Position       string        `json:"position"`
	BirthDate      model.Date    `json:"birth_date"`
	Teams          []TeamView    `json:"teams"`
}

// Builder assembles Legends from a Source.
type Builder struct {
	src Source
}

// NewBuilder returns a Builder reading from src.
func NewBuilder(src Source) *Builder {
	return &Builder{src: src}
}

// Legends returns every player in fixture order with teams resolved and the
// height shaped for version. unit is ignored by v3.
func (b *Builder) Legends(ctx context.Context, version model.Version, unit model.Unit) ([]Legend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	players := b.src.Players(ctx)
	out := make([]Legend, 0, len(players))
	for _, p := range players {
		teams, err := b.resolveTeams(ctx, p)
		if err != nil {
			return nil, err
		}
		l := Legend{
			Name:      p.Name,
			Position:  p.Position,
			BirthDate: p.BirthDate,
			Teams:     teams,
		}
		if err := shapeHeight(&l, p, version, unit); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// resolveTeams keeps the order and cardinality of p.Teams.
func (b *Builder) resolveTeams(ctx context.Context, p model.Player) ([]TeamView, error) {
	views := make([]TeamView, 0, len(p.Teams))
	for _, id := range p.Teams {
		t, err := b.src.Team(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: player %q team %q: %w", ErrUnresolvedTeam, p.Name, id, err)
		}
		views = append(views, TeamView{Name: t.Name, City: t.City})
	}
	return views, nil
}

func shapeHeight(l *Legend, p model.Player, version model.Version, unit model.Unit) error {
	switch version {
	case model.V1:
		l.Height = p.DecimalFeet
		if unit == model.UnitMetric {
			l.Height = units.FeetToMetric(p.DecimalFeet)
		}
	case model.V2:
		l.Height = p.Height
		if unit == model.UnitMetric {
			l.Height = units.ImperialToMeters(p.Height)
		}
	case model.V3:
		m := units.ImperialToMeters(p.Height)
		l.Height = p.Height
		l.HeightInMetric = &m
	default:
		return fmt.Errorf("%w: %q", model.ErrInvalidVersion, version)
	}
	return nil
}
