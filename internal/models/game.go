package models

import (
	"time"
)

// GameStatus represents the lifecycle of a scheduled game
type GameStatus string

const (
	// GameStatusScheduled indicates the game has not been played
	GameStatusScheduled GameStatus = "scheduled"

	// GameStatusInProgress indicates a live simulation is running
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusFinal indicates the game is complete and immutable
	GameStatusFinal GameStatus = "final"
)

// EventType classifies entries in a game's event log
type EventType string

const (
	EventTypeGoal      EventType = "goal"
	EventTypeSave      EventType = "save"
	EventTypeHit       EventType = "hit"
	EventTypePeriodEnd EventType = "period_end"
	EventTypeGameEnd   EventType = "game_end"
)

// GameEvent is one entry in the minute-by-minute log of a simulated game
type GameEvent struct {
	// Minute within the game, 1-60 regulation, 61-79 overtime
	Minute int

	// Type classifies the event
	Type EventType

	// Description is display text, opaque to the engines
	Description string

	// TeamID is set for events attributed to a team
	TeamID string

	// PlayerID is set for events attributed to a player
	PlayerID string
}

// Game represents a single scheduled or completed game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// HomeTeamID and AwayTeamID reference the two teams
	HomeTeamID string
	AwayTeamID string

	// Scores are meaningful only once Status is final
	HomeScore int
	AwayScore int

	// Venue is the rink display name
	Venue string

	// Date is the scheduled calendar day
	Date time.Time

	// Status tracks the game lifecycle
	Status GameStatus

	// Overtime is true when regulation ended tied
	Overtime bool

	// Events is the ordered play-by-play log, set when simulated
	Events []GameEvent

	// SeriesID links playoff games to their series, empty otherwise
	SeriesID string

	// GameNumber is the 1-based position within a playoff series
	GameNumber int
}

// Involves reports whether the team played in this game.
func (g *Game) Involves(teamID string) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}
