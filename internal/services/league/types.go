package league

import (
	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/standings"
)

type CreateLeagueInput struct {
	// LeagueID is optional, a UUID is generated when empty
	LeagueID string
}

type CreateLeagueOutput struct {
	League *models.League
}

type GetLeagueInput struct {
	LeagueID string
}

type GetLeagueOutput struct {
	League *models.League
}

type ListLeaguesInput struct {
}

type ListLeaguesOutput struct {
	LeagueIDs []string
}

type SimulateNextGameInput struct {
	LeagueID string
}

type SimulateNextGameOutput struct {
	Game   *models.Game
	League *models.League
}

type SimulateGamesInput struct {
	LeagueID string
	Count    int
}

type SimulateGamesOutput struct {
	Games  []*models.Game
	League *models.League
}

type SimulateSeasonInput struct {
	LeagueID string
}

type SimulateSeasonOutput struct {
	GamesPlayed int
	League      *models.League
}

type StartPlayoffsInput struct {
	LeagueID string
}

type StartPlayoffsOutput struct {
	Series []*models.PlayoffSeries
	League *models.League
}

type SimulatePlayoffGameInput struct {
	LeagueID string
}

type SimulatePlayoffGameOutput struct {
	Game   *models.Game
	Series *models.PlayoffSeries
	League *models.League
}

type SimulatePlayoffsInput struct {
	LeagueID string
}

type SimulatePlayoffsOutput struct {
	ChampionID string
	League     *models.League
}

type AdvanceSeasonInput struct {
	LeagueID string
}

type AdvanceSeasonOutput struct {
	NewYear      int
	Retired      []*models.Player
	NewProspects []*models.Player
	NewInductee  *models.HallOfFameInductee
	League       *models.League
}

type GetStandingsInput struct {
	LeagueID string
}

type GetStandingsOutput struct {
	Teams []*models.Team
}

type GetLeadersInput struct {
	LeagueID string
	Category standings.StatCategory

	// Career selects career stats instead of season stats
	Career bool

	Limit int
}

type GetLeadersOutput struct {
	Players []*models.Player
}

type GetFeedInput struct {
	LeagueID string

	// Limit caps the number of posts, 0 means all
	Limit int
}

type GetFeedOutput struct {
	Posts []*models.FeedPost
}

type GetHallOfFameInput struct {
	LeagueID string
}

type GetHallOfFameOutput struct {
	Inductees []*models.HallOfFameInductee
}

type GetAchievementsInput struct {
	LeagueID string
}

type GetAchievementsOutput struct {
	Achievements []*models.Achievement
}

type GetScheduleInput struct {
	LeagueID string
}

type GetScheduleOutput struct {
	Games []*models.Game
}
