package models

// PlayoffRound identifies the stage of a playoff series
type PlayoffRound string

const (
	// PlayoffRoundSemifinal is one of the two opening series
	PlayoffRoundSemifinal PlayoffRound = "semifinal"

	// PlayoffRoundChampionship is the final series
	PlayoffRoundChampionship PlayoffRound = "championship"
)

// PlayoffSeries is a best-of-3 matchup between two teams
type PlayoffSeries struct {
	// ID is the unique identifier for the series
	ID string

	// Team1ID is the higher seed and hosts games 1 and 3
	Team1ID string

	// Team2ID is the lower seed and hosts game 2
	Team2ID string

	// Win counters, series completes when either reaches 2
	Team1Wins int
	Team2Wins int

	// Round is the bracket stage
	Round PlayoffRound

	// WinnerID is set the moment a team reaches 2 wins
	WinnerID string
}

// Complete reports whether either side has won the series.
func (s *PlayoffSeries) Complete() bool {
	return s.Team1Wins >= 2 || s.Team2Wins >= 2
}
