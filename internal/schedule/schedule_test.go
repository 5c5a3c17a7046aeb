package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/models"
)

func testTeams() []*models.Team {
	names := []string{"rev", "thunder", "whales", "tropics", "spartans", "chippewas"}
	teams := make([]*models.Team, 0, len(names))
	for _, name := range names {
		teams = append(teams, &models.Team{ID: name, Name: name})
	}
	return teams
}

func newTestGenerator(seed int64) *Generator {
	return New(&Config{
		Roller: dice.New(&dice.Config{Seed: seed}),
		UUID:   uuid.New(),
	})
}

func TestGenerate_BalancedSchedule(t *testing.T) {
	teams := testTeams()
	games := newTestGenerator(7).Generate(teams, 2026)

	assert.Len(t, games, 60)

	home := map[string]int{}
	away := map[string]int{}
	pairs := map[[2]string]int{}
	for _, game := range games {
		home[game.HomeTeamID]++
		away[game.AwayTeamID]++
		pairs[[2]string{game.HomeTeamID, game.AwayTeamID}]++
		assert.Equal(t, models.GameStatusScheduled, game.Status)
		assert.NotEmpty(t, game.ID)
	}

	for _, team := range teams {
		assert.Equal(t, 10, home[team.ID], "home games for %s", team.ID)
		assert.Equal(t, 10, away[team.ID], "away games for %s", team.ID)
	}
	for pair, count := range pairs {
		assert.Equal(t, 2, count, "pair %v", pair)
	}
}

func TestGenerate_UniqueDatesInWindow(t *testing.T) {
	games := newTestGenerator(11).Generate(testTeams(), 2026)

	seen := map[string]bool{}
	start := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)
	for _, game := range games {
		key := game.Date.Format("2006-01-02")
		assert.False(t, seen[key], "duplicate date %s", key)
		seen[key] = true
		assert.False(t, game.Date.Before(start))
		assert.False(t, game.Date.After(end))
	}
}

func TestGenerate_SortedByDate(t *testing.T) {
	games := newTestGenerator(13).Generate(testTeams(), 2026)

	for i := 1; i < len(games); i++ {
		assert.True(t, games[i-1].Date.Before(games[i].Date))
	}
}

func TestGenerate_SingleOutdoorGame(t *testing.T) {
	games := newTestGenerator(17).Generate(testTeams(), 2026)

	outdoor := 0
	for _, game := range games {
		if game.Venue == OutdoorVenue {
			outdoor++
		} else {
			assert.Equal(t, DefaultVenue, game.Venue)
		}
	}
	assert.Equal(t, 1, outdoor)
}

func TestNextScheduledGame(t *testing.T) {
	games := []*models.Game{
		{ID: "g1", Status: models.GameStatusFinal},
		{ID: "g2", Status: models.GameStatusScheduled, SeriesID: "semifinal_1"},
		{ID: "g3", Status: models.GameStatusScheduled},
		{ID: "g4", Status: models.GameStatusScheduled},
	}

	next := NextScheduledGame(games)
	assert.NotNil(t, next)
	assert.Equal(t, "g3", next.ID)

	batch := NextScheduledGames(games, 5)
	assert.Len(t, batch, 2)
	assert.Equal(t, "g3", batch[0].ID)
	assert.Equal(t, "g4", batch[1].ID)
}

func TestNextScheduledGame_NoneLeft(t *testing.T) {
	games := []*models.Game{
		{ID: "g1", Status: models.GameStatusFinal},
	}

	assert.Nil(t, NextScheduledGame(games))
	assert.True(t, SeasonComplete(games))
}

func TestSeasonComplete_IgnoresPlayoffGames(t *testing.T) {
	games := []*models.Game{
		{ID: "g1", Status: models.GameStatusFinal},
		{ID: "p1", Status: models.GameStatusScheduled, SeriesID: "championship"},
	}

	assert.True(t, SeasonComplete(games))
}
