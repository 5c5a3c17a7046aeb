package playoffs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gkha/league/internal/models"
)

func bracketTeams() []*models.Team {
	return []*models.Team{
		{ID: "a", Name: "a", Points: 40},
		{ID: "b", Name: "b", Points: 36},
		{ID: "c", Name: "c", Points: 30},
		{ID: "d", Name: "d", Points: 24},
		{ID: "e", Name: "e", Points: 20},
		{ID: "f", Name: "f", Points: 10},
	}
}

func TestGenerateBracket_SeedsOneFourAndTwoThree(t *testing.T) {
	series := GenerateBracket(bracketTeams())

	assert.Len(t, series, 2)
	assert.Equal(t, "semifinal_1", series[0].ID)
	assert.Equal(t, "a", series[0].Team1ID)
	assert.Equal(t, "d", series[0].Team2ID)
	assert.Equal(t, models.PlayoffRoundSemifinal, series[0].Round)

	assert.Equal(t, "semifinal_2", series[1].ID)
	assert.Equal(t, "b", series[1].Team1ID)
	assert.Equal(t, "c", series[1].Team2ID)
}

func TestGenerateBracket_TooFewTeams(t *testing.T) {
	assert.Nil(t, GenerateBracket(bracketTeams()[:3]))
}

func TestSemifinalStartDates(t *testing.T) {
	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), SemifinalStart(2026, 0))
	assert.Equal(t, time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC), SemifinalStart(2026, 1))
	assert.Equal(t, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), ChampionshipStart(2026))
}

func TestSeriesOpener(t *testing.T) {
	series := &models.PlayoffSeries{ID: "semifinal_1", Team1ID: "a", Team2ID: "d"}
	start := SemifinalStart(2026, 0)

	game := SeriesOpener(series, start)

	assert.Equal(t, "semifinal_1_game1", game.ID)
	assert.Equal(t, "a", game.HomeTeamID)
	assert.Equal(t, "d", game.AwayTeamID)
	assert.Equal(t, Venue, game.Venue)
	assert.Equal(t, start, game.Date)
	assert.Equal(t, 1, game.GameNumber)
}

func TestNextSeriesGame_AlternatesHomeIce(t *testing.T) {
	series := &models.PlayoffSeries{ID: "semifinal_1", Team1ID: "a", Team2ID: "d", Team1Wins: 1}
	start := SemifinalStart(2026, 0)
	existing := []*models.Game{
		{ID: "semifinal_1_game1", SeriesID: "semifinal_1", GameNumber: 1, Status: models.GameStatusFinal},
	}

	game2 := NextSeriesGame(series, start, existing)
	assert.NotNil(t, game2)
	assert.Equal(t, "semifinal_1_game2", game2.ID)
	assert.Equal(t, "d", game2.HomeTeamID)
	assert.Equal(t, start.AddDate(0, 0, 1), game2.Date)

	existing = append(existing, game2)
	series.Team2Wins = 1

	game3 := NextSeriesGame(series, start, existing)
	assert.NotNil(t, game3)
	assert.Equal(t, "a", game3.HomeTeamID)
	assert.Equal(t, start.AddDate(0, 0, 2), game3.Date)
}

func TestNextSeriesGame_NoGameThreeAfterSweep(t *testing.T) {
	series := &models.PlayoffSeries{ID: "semifinal_1", Team1ID: "a", Team2ID: "d", Team1Wins: 2, WinnerID: "a"}
	existing := []*models.Game{
		{ID: "semifinal_1_game1", SeriesID: "semifinal_1", GameNumber: 1},
		{ID: "semifinal_1_game2", SeriesID: "semifinal_1", GameNumber: 2},
	}

	assert.Nil(t, NextSeriesGame(series, SemifinalStart(2026, 0), existing))
}

func TestNextSeriesGame_NeverDuplicates(t *testing.T) {
	series := &models.PlayoffSeries{ID: "semifinal_1", Team1ID: "a", Team2ID: "d"}
	existing := []*models.Game{
		{ID: "semifinal_1_game1", SeriesID: "semifinal_1", GameNumber: 0},
	}

	// a zero game number still collides on the generated ID
	assert.Nil(t, NextSeriesGame(series, SemifinalStart(2026, 0), existing))
}

func TestNextSeriesGame_CapsAtThree(t *testing.T) {
	series := &models.PlayoffSeries{ID: "semifinal_1", Team1ID: "a", Team2ID: "d", Team1Wins: 1, Team2Wins: 1}
	existing := []*models.Game{
		{ID: "semifinal_1_game1", SeriesID: "semifinal_1", GameNumber: 1},
		{ID: "semifinal_1_game2", SeriesID: "semifinal_1", GameNumber: 2},
		{ID: "semifinal_1_game3", SeriesID: "semifinal_1", GameNumber: 3},
	}

	assert.Nil(t, NextSeriesGame(series, SemifinalStart(2026, 0), existing))
}

func TestRecordSeriesWin(t *testing.T) {
	series := &models.PlayoffSeries{ID: "semifinal_1", Team1ID: "a", Team2ID: "d"}

	RecordSeriesWin(series, "a")
	assert.Equal(t, 1, series.Team1Wins)
	assert.Empty(t, series.WinnerID)

	RecordSeriesWin(series, "d")
	assert.Equal(t, 1, series.Team2Wins)
	assert.Empty(t, series.WinnerID)

	RecordSeriesWin(series, "a")
	assert.Equal(t, "a", series.WinnerID)
	assert.True(t, series.Complete())
}

func TestCreateChampionship(t *testing.T) {
	teams := bracketTeams()
	semis := []*models.PlayoffSeries{
		{ID: "semifinal_1", Team1ID: "a", Team2ID: "d", Team1Wins: 2, WinnerID: "a"},
		{ID: "semifinal_2", Team1ID: "b", Team2ID: "c", Team1Wins: 1},
	}

	assert.Nil(t, CreateChampionship(semis, teams))

	semis[1].Team2Wins = 2
	semis[1].WinnerID = "c"

	final := CreateChampionship(semis, teams)
	assert.NotNil(t, final)
	assert.Equal(t, "championship", final.ID)
	assert.Equal(t, "a", final.Team1ID)
	assert.Equal(t, "c", final.Team2ID)
	assert.Equal(t, models.PlayoffRoundChampionship, final.Round)
}

func TestNextAvailableSeries_EarliestFirstGame(t *testing.T) {
	semi1 := &models.PlayoffSeries{ID: "semifinal_1", Team1ID: "a", Team2ID: "d"}
	semi2 := &models.PlayoffSeries{ID: "semifinal_2", Team1ID: "b", Team2ID: "c"}
	games := []*models.Game{
		{ID: "semifinal_1_game1", SeriesID: "semifinal_1", Date: SemifinalStart(2026, 0)},
		{ID: "semifinal_2_game1", SeriesID: "semifinal_2", Date: SemifinalStart(2026, 1)},
	}

	next := NextAvailableSeries([]*models.PlayoffSeries{semi1, semi2}, games)
	assert.Equal(t, "semifinal_1", next.ID)

	semi1.Team1Wins = 2
	semi1.WinnerID = "a"

	next = NextAvailableSeries([]*models.PlayoffSeries{semi1, semi2}, games)
	assert.Equal(t, "semifinal_2", next.ID)

	semi2.Team2Wins = 2
	semi2.WinnerID = "c"

	assert.Nil(t, NextAvailableSeries([]*models.PlayoffSeries{semi1, semi2}, games))
}

func TestNextUnplayedGame(t *testing.T) {
	games := []*models.Game{
		{ID: "semifinal_1_game2", SeriesID: "semifinal_1", GameNumber: 2, Status: models.GameStatusScheduled},
		{ID: "semifinal_1_game1", SeriesID: "semifinal_1", GameNumber: 1, Status: models.GameStatusScheduled},
		{ID: "other", SeriesID: "semifinal_2", GameNumber: 1, Status: models.GameStatusScheduled},
	}

	next := NextUnplayedGame("semifinal_1", games)
	assert.Equal(t, "semifinal_1_game1", next.ID)

	next.Status = models.GameStatusFinal
	assert.Equal(t, "semifinal_1_game2", NextUnplayedGame("semifinal_1", games).ID)
}
