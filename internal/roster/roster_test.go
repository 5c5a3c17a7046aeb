package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkha/league/internal/models"
)

func player(id string, position models.Position, overall int) *models.Player {
	p := &models.Player{
		ID:       id,
		Name:     id,
		Position: position,
		Overall:  overall,
	}
	switch position {
	case models.PositionForward:
		p.ForwardRating = overall
		p.DefenderRating = overall - 5
		p.GoalieRating = overall - 10
	case models.PositionDefender:
		p.DefenderRating = overall
		p.ForwardRating = overall - 5
		p.GoalieRating = overall - 10
	case models.PositionGoalie:
		p.GoalieRating = overall
		p.ForwardRating = overall - 10
		p.DefenderRating = overall - 5
	}
	return p
}

func fullTeam() *models.Team {
	return &models.Team{
		ID:   "team1",
		Name: "team1",
		ActivePlayers: []*models.Player{
			player("f1", models.PositionForward, 80),
			player("d1", models.PositionDefender, 75),
			player("g1", models.PositionGoalie, 78),
		},
	}
}

func rosterSize(t *models.Team) int {
	size := len(t.ActivePlayers) + len(t.IRPlayers) + len(t.SuspendedPlayers)
	if t.BenchPlayer != nil {
		size++
	}
	return size
}

func TestAutoSwapBenchWithActive(t *testing.T) {
	team := fullTeam()
	bench := player("b1", models.PositionForward, 85)
	bench.State = models.PlayerStateBench
	team.BenchPlayer = bench

	result := AutoSwapBenchWithActive(team)

	require.True(t, result.Swapped)
	assert.Equal(t, "b1", result.Promoted.ID)
	assert.Equal(t, "f1", result.Demoted.ID)

	active, _ := team.ActiveAt(models.PositionForward)
	assert.Equal(t, "b1", active.ID)
	assert.Equal(t, models.PlayerStateActive, active.State)
	assert.Equal(t, "f1", team.BenchPlayer.ID)
	assert.Equal(t, models.PlayerStateBench, team.BenchPlayer.State)
	// Demoted player lands on their own best position
	assert.Equal(t, models.PositionForward, team.BenchPlayer.Position)
}

func TestAutoSwapBenchWithActive_NoSwapOnEqualRating(t *testing.T) {
	team := fullTeam()
	bench := player("b1", models.PositionForward, 80)
	team.BenchPlayer = bench

	result := AutoSwapBenchWithActive(team)

	assert.False(t, result.Swapped)
	assert.Equal(t, "b1", team.BenchPlayer.ID)
}

func TestAutoReturnFromIR_ToActive(t *testing.T) {
	team := fullTeam()
	bench := player("b1", models.PositionDefender, 70)
	bench.State = models.PlayerStateBench
	team.BenchPlayer = bench

	returning := player("ir1", models.PositionForward, 90)
	returning.State = models.PlayerStateIR
	returning.InjuryDaysRemaining = 0
	team.IRPlayers = append(team.IRPlayers, returning)

	var freeAgents []*models.Player
	result := AutoReturnFromIR(team, &freeAgents)

	require.True(t, result.Returned)
	assert.Equal(t, ReturnToActive, result.Action)
	assert.Equal(t, "ir1", result.Player.ID)
	assert.Equal(t, "f1", result.Benched.ID)
	require.NotNil(t, result.Dropped)
	assert.Equal(t, "b1", result.Dropped.ID)

	active, _ := team.ActiveAt(models.PositionForward)
	assert.Equal(t, "ir1", active.ID)
	assert.Equal(t, "f1", team.BenchPlayer.ID)
	assert.Empty(t, team.IRPlayers)

	require.Len(t, freeAgents, 1)
	assert.Equal(t, "b1", freeAgents[0].ID)
	assert.Equal(t, models.PlayerStateFreeAgent, freeAgents[0].State)
	assert.Empty(t, freeAgents[0].TeamID)
}

func TestAutoReturnFromIR_ToBench(t *testing.T) {
	team := fullTeam()
	bench := player("b1", models.PositionForward, 60)
	team.BenchPlayer = bench

	returning := player("ir1", models.PositionForward, 70)
	returning.State = models.PlayerStateIR
	team.IRPlayers = append(team.IRPlayers, returning)

	var freeAgents []*models.Player
	result := AutoReturnFromIR(team, &freeAgents)

	require.True(t, result.Returned)
	assert.Equal(t, ReturnToBench, result.Action)
	assert.Equal(t, "ir1", team.BenchPlayer.ID)
	require.Len(t, freeAgents, 1)
	assert.Equal(t, "b1", freeAgents[0].ID)
}

func TestAutoReturnFromIR_Dropped(t *testing.T) {
	team := fullTeam()
	bench := player("b1", models.PositionForward, 79)
	team.BenchPlayer = bench

	returning := player("ir1", models.PositionForward, 65)
	returning.State = models.PlayerStateIR
	team.IRPlayers = append(team.IRPlayers, returning)

	var freeAgents []*models.Player
	result := AutoReturnFromIR(team, &freeAgents)

	require.True(t, result.Returned)
	assert.Equal(t, ReturnDropped, result.Action)
	assert.Equal(t, "b1", team.BenchPlayer.ID)
	require.Len(t, freeAgents, 1)
	assert.Equal(t, "ir1", freeAgents[0].ID)
}

func TestAutoReturnFromIR_StillInjured(t *testing.T) {
	team := fullTeam()
	returning := player("ir1", models.PositionForward, 90)
	returning.InjuryDaysRemaining = 3
	team.IRPlayers = append(team.IRPlayers, returning)

	var freeAgents []*models.Player
	result := AutoReturnFromIR(team, &freeAgents)

	assert.False(t, result.Returned)
	assert.Len(t, team.IRPlayers, 1)
}

func TestDrainIRReturns_CascadesUntilEmpty(t *testing.T) {
	team := fullTeam()
	for _, id := range []string{"ir1", "ir2"} {
		p := player(id, models.PositionForward, 85)
		p.State = models.PlayerStateIR
		team.IRPlayers = append(team.IRPlayers, p)
	}

	var freeAgents []*models.Player
	results := DrainIRReturns([]*models.Team{team}, &freeAgents)

	assert.Len(t, results, 2)
	assert.Empty(t, team.IRPlayers)
	// No player duplicated or lost across the cascade
	assert.Equal(t, 4, rosterSize(team))
	assert.Len(t, freeAgents, 1)
}

func TestAutoReturnFromSuspension_ToActive(t *testing.T) {
	team := fullTeam()
	returning := player("s1", models.PositionGoalie, 95)
	returning.State = models.PlayerStateSuspended
	team.SuspendedPlayers = append(team.SuspendedPlayers, returning)

	var freeAgents []*models.Player
	result := AutoReturnFromSuspension(team, &freeAgents)

	require.True(t, result.Returned)
	assert.Equal(t, ReturnToActive, result.Action)
	active, _ := team.ActiveAt(models.PositionGoalie)
	assert.Equal(t, "s1", active.ID)
	assert.Empty(t, team.SuspendedPlayers)
	// Displaced goalie repositions to their best position on the bench
	require.NotNil(t, team.BenchPlayer)
	assert.Equal(t, "g1", team.BenchPlayer.ID)
}

func TestFindBestReplacement_BenchWinsTies(t *testing.T) {
	team := fullTeam()
	bench := player("b1", models.PositionForward, 70)
	team.BenchPlayer = bench

	agent := player("fa1", models.PositionForward, 70)

	replacement := FindBestReplacement(team, []*models.Player{agent}, models.PositionForward)

	require.NotNil(t, replacement.Player)
	assert.Equal(t, "b1", replacement.Player.ID)
	assert.True(t, replacement.FromBench)
}

func TestFindBestReplacement_BestAgentByPositionRating(t *testing.T) {
	team := fullTeam()

	weak := player("fa1", models.PositionGoalie, 85)
	strong := player("fa2", models.PositionForward, 75)

	// fa1 rates 75 as a forward, fa2 rates 75 as well but comes later,
	// so the first best stays selected
	replacement := FindBestReplacement(team, []*models.Player{weak, strong}, models.PositionForward)

	require.NotNil(t, replacement.Player)
	assert.Equal(t, "fa1", replacement.Player.ID)
	assert.True(t, replacement.NeedsPositionSwitch)
	assert.Equal(t, models.PositionGoalie, replacement.OldPosition)
}

func TestAutoFillMissingPosition_SignsFreeAgent(t *testing.T) {
	team := fullTeam()
	team.RemoveActive(0) // drop the forward

	agent := player("fa1", models.PositionDefender, 72)
	freeAgents := []*models.Player{agent}

	result := AutoFillMissingPosition(team, &freeAgents, models.PositionForward)

	require.True(t, result.Filled)
	require.NotNil(t, result.Signed)
	assert.Equal(t, "fa1", result.Signed.ID)
	assert.True(t, result.PositionSwitched)
	assert.Equal(t, models.PositionDefender, result.OldPosition)

	active, _ := team.ActiveAt(models.PositionForward)
	require.NotNil(t, active)
	assert.Equal(t, "fa1", active.ID)
	assert.Equal(t, "team1", active.TeamID)
	assert.Equal(t, active.ForwardRating, active.Overall)
	assert.Empty(t, freeAgents)
}

func TestAutoFillMissingPosition_NobodyAvailable(t *testing.T) {
	team := fullTeam()
	team.RemoveActive(0)

	var freeAgents []*models.Player
	result := AutoFillMissingPosition(team, &freeAgents, models.PositionForward)

	assert.False(t, result.Filled)
	assert.Len(t, team.ActivePlayers, 2)
}

func TestValidateAndFixAllTeamRosters(t *testing.T) {
	team := fullTeam()
	team.RemoveActive(2) // drop the goalie
	bench := player("b1", models.PositionGoalie, 74)
	bench.State = models.PlayerStateBench
	team.BenchPlayer = bench

	var freeAgents []*models.Player
	results := ValidateAndFixAllTeamRosters([]*models.Team{team}, &freeAgents)

	require.Len(t, results, 1)
	assert.Nil(t, team.BenchPlayer)
	active, _ := team.ActiveAt(models.PositionGoalie)
	require.NotNil(t, active)
	assert.Equal(t, "b1", active.ID)
	_, ok := MissingPosition(team)
	assert.False(t, ok)
}

func TestMoveToIR(t *testing.T) {
	team := fullTeam()
	forward, _ := team.ActiveAt(models.PositionForward)

	MoveToIR(team, forward, 7)

	assert.Len(t, team.ActivePlayers, 2)
	require.Len(t, team.IRPlayers, 1)
	assert.Equal(t, models.PlayerStateIR, team.IRPlayers[0].State)
	assert.Equal(t, 7, team.IRPlayers[0].InjuryDaysRemaining)
}

func TestMoveToSuspended(t *testing.T) {
	team := fullTeam()
	defender, _ := team.ActiveAt(models.PositionDefender)

	MoveToSuspended(team, defender, 3)

	assert.Len(t, team.ActivePlayers, 2)
	require.Len(t, team.SuspendedPlayers, 1)
	assert.Equal(t, models.PlayerStateSuspended, team.SuspendedPlayers[0].State)
	assert.Equal(t, 3, team.SuspendedPlayers[0].SuspensionGamesRemaining)
}
