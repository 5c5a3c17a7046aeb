// Package schedule builds the balanced regular-season calendar: every
// team plays every opponent twice at home and twice away, sixty games
// in all, on unique random dates between January 2 and May 31.
package schedule

import (
	"sort"
	"time"

	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/models"
)

const (
	// GamesPerOpponentPerVenue is how often each pairing repeats at
	// each venue
	GamesPerOpponentPerVenue = 2

	// HomeGamesPerTeam and AwayGamesPerTeam define the per-team split
	HomeGamesPerTeam = 10
	AwayGamesPerTeam = 10

	// DefaultVenue hosts every game except the single outdoor date
	DefaultVenue = "Google Plus Arena"

	// OutdoorVenue hosts exactly one regular-season game a year
	OutdoorVenue = "Outdoor Rink"
)

// Generator produces season schedules
type Generator struct {
	roller dice.Roller
	uuider uuid.UUID
}

// Config holds Generator dependencies
type Config struct {
	Roller dice.Roller
	UUID   uuid.UUID
}

// New creates a schedule generator
func New(cfg *Config) *Generator {
	return &Generator{
		roller: cfg.Roller,
		uuider: cfg.UUID,
	}
}

// Generate builds the full regular season for the given year, sorted
// by date.
func (g *Generator) Generate(teams []*models.Team, year int) []*models.Game {
	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	type matchup struct {
		home string
		away string
	}

	var matchups []matchup
	for _, home := range teamIDs {
		for _, away := range teamIDs {
			if home == away {
				continue
			}
			for k := 0; k < GamesPerOpponentPerVenue; k++ {
				matchups = append(matchups, matchup{home: home, away: away})
			}
		}
	}

	// Fisher-Yates shuffle so date assignment order varies
	for i := len(matchups) - 1; i > 0; i-- {
		j := g.roller.Intn(i + 1)
		matchups[i], matchups[j] = matchups[j], matchups[i]
	}

	homeCounts := map[string]int{}
	awayCounts := map[string]int{}
	pairCounts := map[matchup]int{}

	var games []*models.Game
	for _, m := range matchups {
		if homeCounts[m.home] >= HomeGamesPerTeam || awayCounts[m.away] >= AwayGamesPerTeam {
			continue
		}
		if pairCounts[m] >= GamesPerOpponentPerVenue {
			continue
		}
		homeCounts[m.home]++
		awayCounts[m.away]++
		pairCounts[m]++

		games = append(games, &models.Game{
			ID:         g.uuider.NewUUID(),
			HomeTeamID: m.home,
			AwayTeamID: m.away,
			Venue:      DefaultVenue,
			Status:     models.GameStatusScheduled,
		})
	}

	if len(games) > 0 {
		games[g.roller.Intn(len(games))].Venue = OutdoorVenue
	}

	g.assignDates(games, year)

	sort.Slice(games, func(i, j int) bool {
		return games[i].Date.Before(games[j].Date)
	})

	return games
}

// assignDates spreads the games over unique days between January 2 and
// May 31.
func (g *Generator) assignDates(games []*models.Game, year int) {
	start := time.Date(year, time.January, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.May, 31, 0, 0, 0, 0, time.UTC)
	dayCount := int(end.Sub(start).Hours()/24) + 1

	used := map[string]bool{}
	for _, game := range games {
		for {
			date := start.AddDate(0, 0, g.roller.Intn(dayCount))
			key := date.Format("2006-01-02")
			if used[key] {
				continue
			}
			used[key] = true
			game.Date = date
			break
		}
	}
}

// NextScheduledGame returns the first unplayed regular-season game, or
// nil when the season is done.
func NextScheduledGame(games []*models.Game) *models.Game {
	for _, game := range games {
		if game.Status == models.GameStatusScheduled && game.SeriesID == "" {
			return game
		}
	}
	return nil
}

// NextScheduledGames returns up to count unplayed regular-season games
// in date order.
func NextScheduledGames(games []*models.Game, count int) []*models.Game {
	var next []*models.Game
	for _, game := range games {
		if len(next) >= count {
			break
		}
		if game.Status == models.GameStatusScheduled && game.SeriesID == "" {
			next = append(next, game)
		}
	}
	return next
}

// SeasonComplete reports whether every regular-season game is final.
func SeasonComplete(games []*models.Game) bool {
	sawRegular := false
	for _, game := range games {
		if game.SeriesID != "" {
			continue
		}
		sawRegular = true
		if game.Status != models.GameStatusFinal {
			return false
		}
	}
	return sawRegular
}
