package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gkha/league/internal/models"
)

func TestStandings_PointsThenWins(t *testing.T) {
	teams := []*models.Team{
		{ID: "a", Points: 10, Wins: 5},
		{ID: "b", Points: 14, Wins: 7},
		{ID: "c", Points: 10, Wins: 4},
		{ID: "d", Points: 12, Wins: 6},
	}

	sorted := Standings(teams)

	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "d", sorted[1].ID)
	assert.Equal(t, "a", sorted[2].ID)
	assert.Equal(t, "c", sorted[3].ID)

	// input untouched
	assert.Equal(t, "a", teams[0].ID)
}

func TestPlayoffTeams_TopFour(t *testing.T) {
	teams := []*models.Team{
		{ID: "a", Points: 10},
		{ID: "b", Points: 14},
		{ID: "c", Points: 8},
		{ID: "d", Points: 12},
		{ID: "e", Points: 6},
		{ID: "f", Points: 4},
	}

	seeds := PlayoffTeams(teams)

	assert.Len(t, seeds, 4)
	assert.Equal(t, "b", seeds[0].ID)
	assert.Equal(t, "d", seeds[1].ID)
	assert.Equal(t, "a", seeds[2].ID)
	assert.Equal(t, "c", seeds[3].ID)
}

func TestLeagueLeaders_ExcludesZeroValues(t *testing.T) {
	players := []*models.Player{
		{ID: "p1", SeasonStats: models.PlayerStats{Goals: 12}},
		{ID: "p2", SeasonStats: models.PlayerStats{Goals: 0}},
		{ID: "p3", SeasonStats: models.PlayerStats{Goals: 20}},
		{ID: "p4", SeasonStats: models.PlayerStats{Goals: 7}},
	}

	leaders := LeagueLeaders(players, CategoryGoals, true, 10)

	assert.Len(t, leaders, 3)
	assert.Equal(t, "p3", leaders[0].ID)
	assert.Equal(t, "p1", leaders[1].ID)
	assert.Equal(t, "p4", leaders[2].ID)
}

func TestLeagueLeaders_RespectsLimitAndCareerStats(t *testing.T) {
	players := []*models.Player{
		{ID: "p1", CareerStats: models.PlayerStats{Saves: 300}},
		{ID: "p2", CareerStats: models.PlayerStats{Saves: 500}},
		{ID: "p3", CareerStats: models.PlayerStats{Saves: 400}},
	}

	leaders := LeagueLeaders(players, CategorySaves, false, 2)

	assert.Len(t, leaders, 2)
	assert.Equal(t, "p2", leaders[0].ID)
	assert.Equal(t, "p3", leaders[1].ID)
}

func TestTopLeader_NilWhenNobodyScored(t *testing.T) {
	players := []*models.Player{
		{ID: "p1"},
		{ID: "p2"},
	}

	assert.Nil(t, TopLeader(players, CategoryPoints, true))
}

func TestResetSeasonStats_CarriesLegacyForward(t *testing.T) {
	p := &models.Player{
		SeasonStats: models.PlayerStats{Goals: 30, Points: 55, Legacy: 40},
		CareerStats: models.PlayerStats{Goals: 90, Points: 160, Legacy: 75},
	}

	ResetSeasonStats([]*models.Player{p})

	assert.Zero(t, p.SeasonStats.Goals)
	assert.Zero(t, p.SeasonStats.Points)
	assert.Equal(t, 75, p.SeasonStats.Legacy)
	assert.Equal(t, 90, p.CareerStats.Goals)
}

func TestResetTeamRecords(t *testing.T) {
	team := &models.Team{
		Wins: 20, Losses: 8, OvertimeLosses: 2, GamesPlayed: 30,
		Points: 42, GoalsFor: 110, GoalsAgainst: 80, Legacy: 55,
	}

	ResetTeamRecords([]*models.Team{team})

	assert.Zero(t, team.Wins)
	assert.Zero(t, team.Points)
	assert.Zero(t, team.GoalsFor)
	assert.Zero(t, team.GamesPlayed)
	// franchise legacy survives the reset
	assert.Equal(t, 55, team.Legacy)
}

func TestAllPlayers_IncludesEverySlot(t *testing.T) {
	team := &models.Team{
		ActivePlayers:    []*models.Player{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}},
		BenchPlayer:      &models.Player{ID: "b1"},
		IRPlayers:        []*models.Player{{ID: "ir1"}},
		SuspendedPlayers: []*models.Player{{ID: "s1"}},
	}

	players := AllPlayers([]*models.Team{team})
	assert.Len(t, players, 6)
}
