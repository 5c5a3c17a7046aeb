// Package playoffs manages the four-team best-of-3 bracket: seeding,
// lazy game scheduling, series bookkeeping and the championship.
package playoffs

import (
	"fmt"
	"time"

	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/standings"
)

const (
	// Venue hosts every playoff game
	Venue = "Google Plus Arena"

	// SeriesWinsNeeded ends a best-of-3
	SeriesWinsNeeded = 2

	// MaxSeriesGames caps a best-of-3
	MaxSeriesGames = 3

	// SemifinalGapDays separates the two semifinal start dates
	SemifinalGapDays = 4
)

// SemifinalStart is June 1 of the given year.
func SemifinalStart(year, index int) time.Time {
	return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, index*SemifinalGapDays)
}

// ChampionshipStart is June 15 of the given year.
func ChampionshipStart(year int) time.Time {
	return time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
}

// GenerateBracket seeds the top four teams into two semifinals,
// 1 versus 4 and 2 versus 3. Returns nil when fewer than four teams
// qualify.
func GenerateBracket(teams []*models.Team) []*models.PlayoffSeries {
	seeds := standings.PlayoffTeams(teams)
	if len(seeds) < 4 {
		return nil
	}

	return []*models.PlayoffSeries{
		{
			ID:      "semifinal_1",
			Team1ID: seeds[0].ID,
			Team2ID: seeds[3].ID,
			Round:   models.PlayoffRoundSemifinal,
		},
		{
			ID:      "semifinal_2",
			Team1ID: seeds[1].ID,
			Team2ID: seeds[2].ID,
			Round:   models.PlayoffRoundSemifinal,
		},
	}
}

// SeriesOpener builds game 1 of a series, hosted by the higher seed.
func SeriesOpener(series *models.PlayoffSeries, start time.Time) *models.Game {
	return &models.Game{
		ID:         fmt.Sprintf("%s_game1", series.ID),
		HomeTeamID: series.Team1ID,
		AwayTeamID: series.Team2ID,
		Venue:      Venue,
		Date:       start,
		Status:     models.GameStatusScheduled,
		SeriesID:   series.ID,
		GameNumber: 1,
	}
}

// NextSeriesGame builds the next game of a series one day after the
// previous one, alternating home ice. Returns nil when the series is
// decided, already holds three games, or the next game exists.
func NextSeriesGame(series *models.PlayoffSeries, start time.Time, existing []*models.Game) *models.Game {
	if series.Complete() {
		return nil
	}

	maxGameNumber := 0
	for _, g := range existing {
		if g.SeriesID == series.ID && g.GameNumber > maxGameNumber {
			maxGameNumber = g.GameNumber
		}
	}

	next := maxGameNumber + 1
	if next > MaxSeriesGames {
		return nil
	}

	id := fmt.Sprintf("%s_game%d", series.ID, next)
	for _, g := range existing {
		if g.ID == id {
			return nil
		}
	}

	home, away := series.Team1ID, series.Team2ID
	if next%2 == 0 {
		home, away = series.Team2ID, series.Team1ID
	}

	return &models.Game{
		ID:         id,
		HomeTeamID: home,
		AwayTeamID: away,
		Venue:      Venue,
		Date:       start.AddDate(0, 0, next-1),
		Status:     models.GameStatusScheduled,
		SeriesID:   series.ID,
		GameNumber: next,
	}
}

// NextUnplayedGame returns the lowest-numbered scheduled game of a
// series, or nil.
func NextUnplayedGame(seriesID string, games []*models.Game) *models.Game {
	var next *models.Game
	for _, g := range games {
		if g.SeriesID != seriesID || g.Status != models.GameStatusScheduled {
			continue
		}
		if next == nil || g.GameNumber < next.GameNumber {
			next = g
		}
	}
	return next
}

// RecordSeriesWin credits a game win to the right side of the series
// and sets the winner once a side reaches two.
func RecordSeriesWin(series *models.PlayoffSeries, winnerTeamID string) {
	if winnerTeamID == series.Team1ID {
		series.Team1Wins++
	} else {
		series.Team2Wins++
	}

	if series.Team1Wins >= SeriesWinsNeeded {
		series.WinnerID = series.Team1ID
	} else if series.Team2Wins >= SeriesWinsNeeded {
		series.WinnerID = series.Team2ID
	}
}

// SeriesWinner resolves the winning team, or nil while undecided.
func SeriesWinner(series *models.PlayoffSeries, teams []*models.Team) *models.Team {
	if series.WinnerID == "" {
		return nil
	}
	for _, t := range teams {
		if t.ID == series.WinnerID {
			return t
		}
	}
	return nil
}

// CreateChampionship pairs the semifinal winners. Returns nil until
// both semifinals are decided.
func CreateChampionship(semifinals []*models.PlayoffSeries, teams []*models.Team) *models.PlayoffSeries {
	if len(semifinals) != 2 {
		return nil
	}

	winner1 := SeriesWinner(semifinals[0], teams)
	winner2 := SeriesWinner(semifinals[1], teams)
	if winner1 == nil || winner2 == nil {
		return nil
	}

	return &models.PlayoffSeries{
		ID:      "championship",
		Team1ID: winner1.ID,
		Team2ID: winner2.ID,
		Round:   models.PlayoffRoundChampionship,
	}
}

// NextAvailableSeries picks the undecided series whose first game has
// the earliest date, or nil when the bracket is done.
func NextAvailableSeries(series []*models.PlayoffSeries, games []*models.Game) *models.PlayoffSeries {
	var earliest *models.PlayoffSeries
	var earliestDate time.Time

	for _, s := range series {
		if s.Complete() {
			continue
		}
		for _, g := range games {
			if g.SeriesID == s.ID {
				if earliest == nil || g.Date.Before(earliestDate) {
					earliest = s
					earliestDate = g.Date
				}
				break
			}
		}
	}
	return earliest
}
