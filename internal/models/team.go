package models

// Team represents a franchise and the players it owns
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the franchise display name
	Name string

	// ActivePlayers is the starting lineup, one player per position
	ActivePlayers []*Player

	// BenchPlayer is the single reserve slot, nil when empty
	BenchPlayer *Player

	// IRPlayers holds injured players, no size limit
	IRPlayers []*Player

	// SuspendedPlayers holds suspended players, no size limit
	SuspendedPlayers []*Player

	// Season record
	Wins           int
	Losses         int
	OvertimeLosses int
	GamesPlayed    int

	// Points is 2 per win, 1 per overtime loss
	Points int

	GoalsFor     int
	GoalsAgainst int

	// Legacy accumulates franchise achievement points across seasons
	Legacy int
}

// Roster returns every player the team currently owns: active, bench,
// IR and suspended.
func (t *Team) Roster() []*Player {
	players := make([]*Player, 0, len(t.ActivePlayers)+1+len(t.IRPlayers)+len(t.SuspendedPlayers))
	players = append(players, t.ActivePlayers...)
	if t.BenchPlayer != nil {
		players = append(players, t.BenchPlayer)
	}
	players = append(players, t.IRPlayers...)
	players = append(players, t.SuspendedPlayers...)
	return players
}

// ActiveAt returns the active player currently filling the given position,
// with their lineup index, or nil and -1 when the slot is vacant.
func (t *Team) ActiveAt(position Position) (*Player, int) {
	for i, p := range t.ActivePlayers {
		if p.Position == position {
			return p, i
		}
	}
	return nil, -1
}

// RemoveActive removes the lineup entry at index i, preserving order.
func (t *Team) RemoveActive(i int) {
	t.ActivePlayers = append(t.ActivePlayers[:i], t.ActivePlayers[i+1:]...)
}
