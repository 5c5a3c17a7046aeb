// Package roster maintains the team-shape invariant: three active
// players covering the three positions plus at most one bench player.
// It promotes the best eligible replacement when a slot opens and
// relegates weaker players down the chain toward free agency.
package roster

import (
	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/rating"
)

// maxReturnsPerPass bounds the drain loops so a violated invariant
// cannot spin forever.
const maxReturnsPerPass = 32

// ReturnAction describes where a returning player landed
type ReturnAction string

const (
	// ReturnToActive means the returner displaced the active player
	ReturnToActive ReturnAction = "to-active"

	// ReturnToBench means the returner displaced the bench player
	ReturnToBench ReturnAction = "to-bench"

	// ReturnDropped means the returner was released to free agency
	ReturnDropped ReturnAction = "dropped"
)

// SwapResult reports a bench/active swap
type SwapResult struct {
	Swapped bool

	// Promoted moved from bench to active
	Promoted *models.Player

	// Demoted moved from active to bench and was repositioned
	Demoted *models.Player
}

// AutoSwapBenchWithActive promotes the bench player over the active
// player at the same position when the bench player rates higher. The
// demoted player is repositioned to their own best position.
func AutoSwapBenchWithActive(team *models.Team) SwapResult {
	bench := team.BenchPlayer
	if bench == nil {
		return SwapResult{}
	}

	active, i := team.ActiveAt(bench.Position)
	if active == nil {
		return SwapResult{}
	}

	if bench.Overall <= active.Overall {
		return SwapResult{}
	}

	team.ActivePlayers[i] = bench
	team.BenchPlayer = active
	bench.State = models.PlayerStateActive
	active.State = models.PlayerStateBench
	rating.SwitchToBestPosition(active)

	return SwapResult{Swapped: true, Promoted: bench, Demoted: active}
}

// AutoSwapAllTeams runs the bench/active swap across every team.
func AutoSwapAllTeams(teams []*models.Team) []SwapResult {
	var results []SwapResult
	for _, team := range teams {
		if result := AutoSwapBenchWithActive(team); result.Swapped {
			results = append(results, result)
		}
	}
	return results
}

// ReturnResult reports a single IR or suspension return
type ReturnResult struct {
	Returned bool
	Action   ReturnAction

	// Team is the roster the return resolved against
	Team *models.Team

	// Player is the returner
	Player *models.Player

	// Benched is the active player pushed to the bench, to-active only
	Benched *models.Player

	// Dropped is whoever was released to free agency, if anyone
	Dropped *models.Player
}

// release moves a player to the free agent pool.
func release(p *models.Player, freeAgents *[]*models.Player) {
	p.State = models.PlayerStateFreeAgent
	p.TeamID = ""
	*freeAgents = append(*freeAgents, p)
}

// resolveReturn runs the three-way decision for a player rejoining from
// a reserve list: beat the active player, beat the bench player, or be
// released.
func resolveReturn(team *models.Team, returning *models.Player, removeFromList func(), freeAgents *[]*models.Player) ReturnResult {
	active, i := team.ActiveAt(returning.Position)
	if active == nil {
		return ReturnResult{}
	}

	if returning.Overall > active.Overall {
		result := ReturnResult{
			Returned: true,
			Action:   ReturnToActive,
			Team:     team,
			Player:   returning,
			Benched:  active,
		}
		if team.BenchPlayer != nil {
			result.Dropped = team.BenchPlayer
			release(team.BenchPlayer, freeAgents)
		}

		team.BenchPlayer = active
		active.State = models.PlayerStateBench
		rating.SwitchToBestPosition(active)

		team.ActivePlayers[i] = returning
		returning.State = models.PlayerStateActive
		removeFromList()
		return result
	}

	if team.BenchPlayer != nil && returning.Overall > team.BenchPlayer.Overall {
		dropped := team.BenchPlayer
		release(dropped, freeAgents)

		team.BenchPlayer = returning
		returning.State = models.PlayerStateBench
		rating.SwitchToBestPosition(returning)
		removeFromList()
		return ReturnResult{
			Returned: true,
			Action:   ReturnToBench,
			Team:     team,
			Player:   returning,
			Dropped:  dropped,
		}
	}

	release(returning, freeAgents)
	removeFromList()
	return ReturnResult{
		Returned: true,
		Action:   ReturnDropped,
		Team:     team,
		Player:   returning,
		Dropped:  returning,
	}
}

// AutoReturnFromIR pops the first healed player off the IR list and
// resolves their return. One return per call; callers drain the list.
func AutoReturnFromIR(team *models.Team, freeAgents *[]*models.Player) ReturnResult {
	for i, p := range team.IRPlayers {
		if p.InjuryDaysRemaining > 0 {
			continue
		}
		p.InjuryDaysRemaining = 0
		index := i
		removeFromList := func() {
			team.IRPlayers = append(team.IRPlayers[:index], team.IRPlayers[index+1:]...)
		}
		return resolveReturn(team, p, removeFromList, freeAgents)
	}
	return ReturnResult{}
}

// AutoReturnFromSuspension pops the first player whose suspension has
// expired and resolves their return.
func AutoReturnFromSuspension(team *models.Team, freeAgents *[]*models.Player) ReturnResult {
	for i, p := range team.SuspendedPlayers {
		if p.SuspensionGamesRemaining > 0 {
			continue
		}
		p.SuspensionGamesRemaining = 0
		index := i
		removeFromList := func() {
			team.SuspendedPlayers = append(team.SuspendedPlayers[:index], team.SuspendedPlayers[index+1:]...)
		}
		return resolveReturn(team, p, removeFromList, freeAgents)
	}
	return ReturnResult{}
}

// DrainIRReturns drains every eligible IR return across all teams.
func DrainIRReturns(teams []*models.Team, freeAgents *[]*models.Player) []ReturnResult {
	var results []ReturnResult
	for _, team := range teams {
		for i := 0; i < maxReturnsPerPass; i++ {
			result := AutoReturnFromIR(team, freeAgents)
			if !result.Returned {
				break
			}
			results = append(results, result)
		}
	}
	return results
}

// DrainSuspensionReturns drains every eligible suspension return
// across all teams.
func DrainSuspensionReturns(teams []*models.Team, freeAgents *[]*models.Player) []ReturnResult {
	var results []ReturnResult
	for _, team := range teams {
		for i := 0; i < maxReturnsPerPass; i++ {
			result := AutoReturnFromSuspension(team, freeAgents)
			if !result.Returned {
				break
			}
			results = append(results, result)
		}
	}
	return results
}

// Replacement identifies the best candidate to fill a position
type Replacement struct {
	Player *models.Player

	// FromBench is true when the candidate is the team's bench player
	FromBench bool

	// NeedsPositionSwitch is true when the candidate plays elsewhere
	NeedsPositionSwitch bool

	OldPosition models.Position
}

// FindBestReplacement compares the bench player's rating at the needed
// position against the best free agent's. The bench player wins ties.
func FindBestReplacement(team *models.Team, freeAgents []*models.Player, position models.Position) Replacement {
	benchRating := 0
	if team.BenchPlayer != nil {
		benchRating = rating.For(team.BenchPlayer, position)
	}

	var bestAgent *models.Player
	bestAgentRating := 0
	for _, fa := range freeAgents {
		if r := rating.For(fa, position); bestAgent == nil || r > bestAgentRating {
			bestAgent = fa
			bestAgentRating = r
		}
	}

	if team.BenchPlayer != nil && benchRating >= bestAgentRating {
		return Replacement{
			Player:              team.BenchPlayer,
			FromBench:           true,
			NeedsPositionSwitch: team.BenchPlayer.Position != position,
			OldPosition:         team.BenchPlayer.Position,
		}
	}

	if bestAgent != nil {
		return Replacement{
			Player:              bestAgent,
			NeedsPositionSwitch: bestAgent.Position != position,
			OldPosition:         bestAgent.Position,
		}
	}

	return Replacement{}
}

// FillResult reports a filled roster hole
type FillResult struct {
	Filled bool

	// Team is the roster that was repaired
	Team *models.Team

	// Signed is set when a free agent was signed, nil for bench moves
	Signed *models.Player

	// Player is whoever now fills the slot
	Player *models.Player

	PositionSwitched bool
	OldPosition      models.Position
	NewPosition      models.Position
}

// AutoFillMissingPosition promotes the bench player or signs the best
// free agent into a vacant active slot, switching their position when
// needed. The team stays understrength when nobody is available.
func AutoFillMissingPosition(team *models.Team, freeAgents *[]*models.Player, missing models.Position) FillResult {
	replacement := FindBestReplacement(team, *freeAgents, missing)
	if replacement.Player == nil {
		return FillResult{}
	}

	player := replacement.Player
	if replacement.NeedsPositionSwitch {
		rating.SwitchPosition(player, missing)
	}

	result := FillResult{
		Filled:           true,
		Team:             team,
		Player:           player,
		PositionSwitched: replacement.NeedsPositionSwitch,
		OldPosition:      replacement.OldPosition,
		NewPosition:      missing,
	}

	if replacement.FromBench {
		team.BenchPlayer = nil
	} else {
		for i, fa := range *freeAgents {
			if fa.ID == player.ID {
				*freeAgents = append((*freeAgents)[:i], (*freeAgents)[i+1:]...)
				break
			}
		}
		player.TeamID = team.ID
		result.Signed = player
	}

	player.State = models.PlayerStateActive
	team.ActivePlayers = append(team.ActivePlayers, player)

	return result
}

// MissingPosition reports the first position the lineup fails to
// cover, in Forward, Goalie, Defender order. Empty when the roster is
// valid.
func MissingPosition(team *models.Team) (models.Position, bool) {
	if len(team.ActivePlayers) >= 3 {
		return "", false
	}

	for _, position := range []models.Position{models.PositionForward, models.PositionGoalie, models.PositionDefender} {
		if p, _ := team.ActiveAt(position); p == nil {
			return position, true
		}
	}

	return "", false
}

// ValidateAndFixAllTeamRosters fills one missing position per team per
// pass across the league.
func ValidateAndFixAllTeamRosters(teams []*models.Team, freeAgents *[]*models.Player) []FillResult {
	var results []FillResult
	for _, team := range teams {
		missing, ok := MissingPosition(team)
		if !ok {
			continue
		}
		if result := AutoFillMissingPosition(team, freeAgents, missing); result.Filled {
			results = append(results, result)
		}
	}
	return results
}

// MoveToIR shifts an active player onto injured reserve.
func MoveToIR(team *models.Team, player *models.Player, days int) {
	for i, p := range team.ActivePlayers {
		if p.ID == player.ID {
			team.RemoveActive(i)
			break
		}
	}
	player.State = models.PlayerStateIR
	player.InjuryDaysRemaining = days
	team.IRPlayers = append(team.IRPlayers, player)
}

// MoveToSuspended shifts an active player onto the suspension list.
func MoveToSuspended(team *models.Team, player *models.Player, games int) {
	for i, p := range team.ActivePlayers {
		if p.ID == player.ID {
			team.RemoveActive(i)
			break
		}
	}
	player.State = models.PlayerStateSuspended
	player.SuspensionGamesRemaining = games
	team.SuspendedPlayers = append(team.SuspendedPlayers, player)
}
