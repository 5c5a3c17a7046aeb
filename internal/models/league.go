package models

import (
	"time"
)

// League is the full persisted aggregate. Everything the simulator
// touches hangs off this struct and is saved as one document.
type League struct {
	// ID is the identifier
	ID string

	// CurrentYear is the season being played
	CurrentYear int

	// GameDate is the in-world calendar date
	GameDate time.Time

	// Teams holds the six franchises
	Teams []*Team

	// FreeAgents are unsigned players available to every team
	FreeAgents []*Player

	// RetiredPlayers keeps everyone who has left the league
	RetiredPlayers []*Player

	// Games is the current season schedule, regular and playoff
	Games []*Game

	// Injuries tracks every player currently out injured
	Injuries []*Injury

	// Suspensions tracks every player currently suspended
	Suspensions []*Suspension

	// FeedPosts is the analyst feed, newest first
	FeedPosts []*FeedPost

	// SeasonHistory records each completed season
	SeasonHistory []*SeasonHistory

	// SeasonComplete is set once every regular season game is final
	SeasonComplete bool

	// PlayoffsStarted is set when the bracket has been generated
	PlayoffsStarted bool

	// PlayoffSeries holds the bracket for the current year
	PlayoffSeries []*PlayoffSeries

	// Achievements is the unlockable registry
	Achievements []*Achievement

	// HallOfFame lists inductees in induction order
	HallOfFame []*HallOfFameInductee

	// CreatedAt is when the league was bootstrapped
	CreatedAt time.Time

	// UpdatedAt is bumped on every save
	UpdatedAt time.Time
}

// Team returns the team with the given ID, or nil.
func (l *League) Team(id string) *Team {
	for _, t := range l.Teams {
		if t.ID == id {
			return t
		}
	}

	return nil
}

// Game returns the game with the given ID, or nil.
func (l *League) Game(id string) *Game {
	for _, g := range l.Games {
		if g.ID == id {
			return g
		}
	}

	return nil
}

// Series returns the playoff series with the given ID, or nil.
func (l *League) Series(id string) *PlayoffSeries {
	for _, s := range l.PlayoffSeries {
		if s.ID == id {
			return s
		}
	}

	return nil
}

// Achievement returns the achievement with the given ID, or nil.
func (l *League) Achievement(id string) *Achievement {
	for _, a := range l.Achievements {
		if a.ID == id {
			return a
		}
	}

	return nil
}

// Champion returns the winner of the championship series for the
// current playoff bracket, or empty if it is not decided.
func (l *League) Champion() string {
	for _, s := range l.PlayoffSeries {
		if s.Round == PlayoffRoundChampionship && s.WinnerID != "" {
			return s.WinnerID
		}
	}

	return ""
}
