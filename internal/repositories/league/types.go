package league

import "github.com/gkha/league/internal/models"

type SaveLeagueInput struct {
	League *models.League
}

type GetLeagueInput struct {
	LeagueID string
}

type ListLeaguesInput struct {
}

type ListLeaguesOutput struct {
	LeagueIDs []string
}

type DeleteLeagueInput struct {
	LeagueID string
}
