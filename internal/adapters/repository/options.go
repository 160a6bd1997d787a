package repository

import "github.com/okian/legends/internal/domain/model"

// Option applies a configuration option to the FixtureStore.
type Option func(*FixtureStore)

// WithTeams replaces the built-in team fixture.
func WithTeams(teams []model.Team) Option {
	return func(s *FixtureStore) {
		if teams != nil {
			s.teams = teams
			s.origin = originCustom
		}
	}
}

// WithPlayers replaces the built-in player fixture.
func WithPlayers(players []model.Player) Option {
	return func(s *FixtureStore) {
		if players != nil {
			s.players = players
			s.origin = originCustom
		}
	}
}

// WithFixture replaces both fixtures, e.g. with the result of LoadFixtureFile.
func WithFixture(f Fixture) Option {
	return func(s *FixtureStore) {
		WithTeams(f.Teams)(s)
		WithPlayers(f.Players)(s)
		if f.Origin != "" {
			s.origin = f.Origin
		}
	}
}
