package models

// StatLine is a single leader entry in a season history snapshot
type StatLine struct {
	PlayerName string
	Value      int
}

// SeasonStatLeaders snapshots the top player per category for one season
type SeasonStatLeaders struct {
	Goals   StatLine
	Assists StatLine
	Points  StatLine
	Saves   StatLine
	Hits    StatLine
}

// SeasonHistory is one append-only record per completed season
type SeasonHistory struct {
	// Year the season was played
	Year int

	// Champion is the winning team's name
	Champion string

	// StatLeaders snapshots the category leaders at season end
	StatLeaders SeasonStatLeaders
}

// HallOfFameInductee is a frozen snapshot of a player at induction
type HallOfFameInductee struct {
	PlayerID          string
	PlayerName        string
	InductionYear     int
	RetirementYear    int
	LegacyScore       int
	Position          Position
	YearsOfExperience int
	CareerStats       PlayerStats
}

// Injury tracks an ongoing injury for countdown processing
type Injury struct {
	PlayerID      string
	DaysRemaining int
	Description   string
}

// Suspension tracks an ongoing suspension for countdown processing
type Suspension struct {
	PlayerID       string
	GamesRemaining int
	Reason         string
}
