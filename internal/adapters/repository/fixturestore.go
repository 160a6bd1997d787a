package repository

import (
	"context"
	"fmt"

	"github.com/okian/legends/internal/domain/model"
	"github.com/okian/legends/pkg/metrics"
)

// Fixture origins reported through metrics and stats.
const (
	originBuiltin = "builtin"
	originCustom  = "custom"
	originFile    = "file"
)

// FixtureStore is an in-memory, read-only Store. It is safe for concurrent
// use because nothing mutates it after NewFixtureStore returns.
type FixtureStore struct {
	teams   []model.Team
	players []model.Player
	origin  string
}

var _ Store = (*FixtureStore)(nil)

// NewFixtureStore builds a store from the built-in roster unless options
// replace it. The fixture is validated: every player must reference known,
// present teams.
func NewFixtureStore(_ context.Context, opts ...Option) (*FixtureStore, error) {
	s := &FixtureStore{
		teams:   BuiltinTeams(),
		players: BuiltinPlayers(),
		origin:  originBuiltin,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Detach from caller-owned slices.
	s.teams = append([]model.Team(nil), s.teams...)
	players := make([]model.Player, len(s.players))
	for i, p := range s.players {
		players[i] = p.Clone()
	}
	s.players = players

	if err := validateFixture(s.teams, s.players); err != nil {
		return nil, err
	}

	metrics.RecordFixtureLoad(s.origin)
	metrics.UpdateFixtureSize(len(s.players), len(s.teams))
	return s, nil
}

func validateFixture(teams []model.Team, players []model.Player) error {
	seen := make(map[model.TeamID]struct{}, len(teams))
	for i, t := range teams {
		if !t.ID.Valid() {
			return fmt.Errorf("%w: team %d: %w", ErrInvalidFixture, i, model.ErrUnknownTeam)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate team %q", ErrInvalidFixture, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	for i, p := range players {
		if p.Name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalidFixture, i)
		}
		if len(p.Teams) == 0 {
			return fmt.Errorf("%w: player %q has no teams", ErrInvalidFixture, p.Name)
		}
		for _, id := range p.Teams {
			if _, ok := seen[id]; !ok {
				return fmt.Errorf("%w: player %q references %q: %w", ErrInvalidFixture, p.Name, id, ErrTeamNotFound)
			}
		}
	}
	return nil
}

// Teams implements Store.
func (s *FixtureStore) Teams(_ context.Context) []model.Team {
	return append([]model.Team(nil), s.teams...)
}

// Players implements Store.
func (s *FixtureStore) Players(_ context.Context) []model.Player {
	out := make([]model.Player, len(s.players))
	for i, p := range s.players {
		out[i] = p.Clone()
	}
	return out
}

// Team implements Store with a linear scan; the fixture holds at most a
// handful of clubs.
func (s *FixtureStore) Team(_ context.Context, id model.TeamID) (model.Team, error) {
	metrics.RecordTeamResolution()
	for _, t := range s.teams {
		if t.ID == id {
			return t, nil
		}
	}
	metrics.RecordUnresolvedTeam()
	metrics.RecordErrorByComponent("repository", "not_found")
	return model.Team{}, fmt.Errorf("%w: %q", ErrTeamNotFound, id)
}

// Origin reports where the fixture came from: builtin, custom or file.
func (s *FixtureStore) Origin() string {
	return s.origin
}
