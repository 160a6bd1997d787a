// Package repository holds the read-only roster fixture and team resolution.
package repository

import (
	"context"

	"github.com/okian/legends/internal/domain/model"
)

// Store provides read access to the roster fixture.
type Store interface {
	// Teams returns the team fixture in fixture order.
	Teams(ctx context.Context) []model.Team
	// Players returns the player fixture in fixture order.
	Players(ctx context.Context) []model.Player
	// Team resolves a team id. Returns ErrTeamNotFound if the id is unknown.
	Team(ctx context.Context, id model.TeamID) (model.Team, error)
}
