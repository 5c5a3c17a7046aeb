package league

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/gkha/league/internal/services/league Service

import (
	"context"
)

// Service orchestrates everything that happens to a league: creation,
// game simulation, playoffs, the offseason, and reads.
type Service interface {
	// CreateLeague bootstraps a new league with seeded rosters and a
	// full season schedule
	CreateLeague(ctx context.Context, input *CreateLeagueInput) (*CreateLeagueOutput, error)

	// GetLeague retrieves a league by ID
	GetLeague(ctx context.Context, input *GetLeagueInput) (*GetLeagueOutput, error)

	// ListLeagues retrieves every saved league ID
	ListLeagues(ctx context.Context, input *ListLeaguesInput) (*ListLeaguesOutput, error)

	// SimulateNextGame plays the next scheduled regular season game
	SimulateNextGame(ctx context.Context, input *SimulateNextGameInput) (*SimulateNextGameOutput, error)

	// SimulateGames plays up to Count regular season games
	SimulateGames(ctx context.Context, input *SimulateGamesInput) (*SimulateGamesOutput, error)

	// SimulateSeason plays every remaining regular season game
	SimulateSeason(ctx context.Context, input *SimulateSeasonInput) (*SimulateSeasonOutput, error)

	// StartPlayoffs seeds the bracket once the season is complete
	StartPlayoffs(ctx context.Context, input *StartPlayoffsInput) (*StartPlayoffsOutput, error)

	// SimulatePlayoffGame plays the next available playoff game
	SimulatePlayoffGame(ctx context.Context, input *SimulatePlayoffGameInput) (*SimulatePlayoffGameOutput, error)

	// SimulatePlayoffs plays playoff games until a champion is crowned
	SimulatePlayoffs(ctx context.Context, input *SimulatePlayoffsInput) (*SimulatePlayoffsOutput, error)

	// AdvanceSeason runs the offseason and rolls into the next year
	AdvanceSeason(ctx context.Context, input *AdvanceSeasonInput) (*AdvanceSeasonOutput, error)

	// GetStandings returns teams sorted by points
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// GetLeaders returns the top players in a stat category
	GetLeaders(ctx context.Context, input *GetLeadersInput) (*GetLeadersOutput, error)

	// GetFeed returns the newest feed posts
	GetFeed(ctx context.Context, input *GetFeedInput) (*GetFeedOutput, error)

	// GetHallOfFame returns the inductee list
	GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error)

	// GetAchievements returns the achievement registry
	GetAchievements(ctx context.Context, input *GetAchievementsInput) (*GetAchievementsOutput, error)

	// GetSchedule returns the current season's games
	GetSchedule(ctx context.Context, input *GetScheduleInput) (*GetScheduleOutput, error)
}
