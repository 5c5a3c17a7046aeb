// Package rating computes effective skill ratings for the three
// positions and keeps a player's Overall in sync with the position
// they currently play.
package rating

import (
	"github.com/gkha/league/internal/models"
)

// For returns the player's stored rating for the given position.
func For(p *models.Player, position models.Position) int {
	switch position {
	case models.PositionForward:
		return p.ForwardRating
	case models.PositionDefender:
		return p.DefenderRating
	case models.PositionGoalie:
		return p.GoalieRating
	default:
		return p.Overall
	}
}

// BestPosition returns the position with the player's highest rating.
// Ties resolve in favor of the earlier position in models.Positions,
// so Forward beats Defender beats Goalie.
func BestPosition(p *models.Player) models.Position {
	best := models.Positions[0]
	bestRating := For(p, best)
	for _, pos := range models.Positions[1:] {
		if r := For(p, pos); r > bestRating {
			best = pos
			bestRating = r
		}
	}
	return best
}

// SwitchPosition moves the player to a new position and resyncs Overall.
func SwitchPosition(p *models.Player, position models.Position) {
	p.Position = position
	p.Overall = For(p, position)
}

// SwitchToBestPosition moves the player to their highest-rated position.
func SwitchToBestPosition(p *models.Player) {
	best := BestPosition(p)
	if p.Position != best {
		SwitchPosition(p, best)
	}
}

// SyncOverall resyncs Overall with the current position's rating.
func SyncOverall(p *models.Player) {
	p.Overall = For(p, p.Position)
}

// TeamStrength sums each active player's rating at the position they
// currently play.
func TeamStrength(t *models.Team) int {
	total := 0
	for _, p := range t.ActivePlayers {
		total += For(p, p.Position)
	}
	return total
}

// OffensiveStrength weights the forward's rating double against the
// defender's. Zero when either slot is vacant.
func OffensiveStrength(t *models.Team) float64 {
	forward, _ := t.ActiveAt(models.PositionForward)
	defender, _ := t.ActiveAt(models.PositionDefender)
	if forward == nil || defender == nil {
		return 0
	}
	return float64(2*forward.ForwardRating+defender.DefenderRating) / 3
}

// DefensiveStrength weights the goalie's rating double against the
// defender's. Zero when either slot is vacant.
func DefensiveStrength(t *models.Team) float64 {
	goalie, _ := t.ActiveAt(models.PositionGoalie)
	defender, _ := t.ActiveAt(models.PositionDefender)
	if goalie == nil || defender == nil {
		return 0
	}
	return float64(2*goalie.GoalieRating+defender.DefenderRating) / 3
}
