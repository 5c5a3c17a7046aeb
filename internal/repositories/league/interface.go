package league

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gkha/league/internal/repositories/league Repository

import (
	"context"

	"github.com/gkha/league/internal/models"
)

// Repository defines the interface for league data persistence
type Repository interface {
	// SaveLeague persists a league aggregate
	SaveLeague(ctx context.Context, input *SaveLeagueInput) error

	// GetLeague retrieves a league by ID
	GetLeague(ctx context.Context, input *GetLeagueInput) (*models.League, error)

	// ListLeagues retrieves every saved league ID
	ListLeagues(ctx context.Context, input *ListLeaguesInput) (*ListLeaguesOutput, error)

	// DeleteLeague removes a league
	DeleteLeague(ctx context.Context, input *DeleteLeagueInput) error
}
