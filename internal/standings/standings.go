// Package standings ranks teams and players from accumulated records.
package standings

import (
	"sort"

	"github.com/gkha/league/internal/models"
)

// PlayoffSpots is how many teams qualify for the postseason
const PlayoffSpots = 4

// StatCategory selects which player stat a leaderboard ranks by
type StatCategory string

const (
	CategoryPoints  StatCategory = "points"
	CategoryGoals   StatCategory = "goals"
	CategoryAssists StatCategory = "assists"
	CategorySaves   StatCategory = "saves"
	CategoryHits    StatCategory = "hits"
	CategoryLegacy  StatCategory = "legacy"
)

// Standings returns the teams ordered by points, wins breaking ties.
func Standings(teams []*models.Team) []*models.Team {
	sorted := make([]*models.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].Wins > sorted[j].Wins
	})
	return sorted
}

// PlayoffTeams returns the top qualifying teams in seed order.
func PlayoffTeams(teams []*models.Team) []*models.Team {
	sorted := Standings(teams)
	if len(sorted) > PlayoffSpots {
		sorted = sorted[:PlayoffSpots]
	}
	return sorted
}

// AllPlayers collects every rostered player across the league.
func AllPlayers(teams []*models.Team) []*models.Player {
	var players []*models.Player
	for _, team := range teams {
		players = append(players, team.Roster()...)
	}
	return players
}

func statValue(p *models.Player, category StatCategory, useSeason bool) int {
	stats := p.CareerStats
	if useSeason {
		stats = p.SeasonStats
	}
	switch category {
	case CategoryPoints:
		return stats.Points
	case CategoryGoals:
		return stats.Goals
	case CategoryAssists:
		return stats.Assists
	case CategorySaves:
		return stats.Saves
	case CategoryHits:
		return stats.Hits
	case CategoryLegacy:
		return stats.Legacy
	default:
		return 0
	}
}

// LeagueLeaders ranks players by the given category, highest first.
// Players with a zero value never appear, so an empty board stays
// empty instead of listing the whole league.
func LeagueLeaders(players []*models.Player, category StatCategory, useSeason bool, limit int) []*models.Player {
	var ranked []*models.Player
	for _, p := range players {
		if statValue(p, category, useSeason) > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return statValue(ranked[i], category, useSeason) > statValue(ranked[j], category, useSeason)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopLeader returns the single leader for a category, or nil when
// nobody has recorded the stat.
func TopLeader(players []*models.Player, category StatCategory, useSeason bool) *models.Player {
	leaders := LeagueLeaders(players, category, useSeason, 1)
	if len(leaders) == 0 {
		return nil
	}
	return leaders[0]
}

// ResetSeasonStats zeroes every player's season line for a fresh year.
// Season legacy restarts from the career total so the running score
// carries forward.
func ResetSeasonStats(players []*models.Player) {
	for _, p := range players {
		p.SeasonStats = models.PlayerStats{Legacy: p.CareerStats.Legacy}
	}
}

// ResetTeamRecords clears win-loss records ahead of a new season.
func ResetTeamRecords(teams []*models.Team) {
	for _, team := range teams {
		team.Wins = 0
		team.Losses = 0
		team.OvertimeLosses = 0
		team.GamesPlayed = 0
		team.Points = 0
		team.GoalsFor = 0
		team.GoalsAgainst = 0
	}
}
