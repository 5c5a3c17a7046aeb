package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/dice/mocks"
	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/names"
)

func newSeededEngine(seed int64) *Engine {
	roller := dice.New(&dice.Config{Seed: seed})
	return New(&Config{
		Roller: roller,
		Names:  names.New(&names.Config{Roller: roller}),
		UUID:   uuid.New(),
	})
}

func newMockEngine(t *testing.T) (*Engine, *mocks.MockRoller) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)
	return New(&Config{
		Roller: roller,
		Names:  names.New(&names.Config{Roller: roller}),
		UUID:   uuid.New(),
	}), roller
}

func TestProcessDevelopment_OldPlayerNeverPractices(t *testing.T) {
	engine, roller := newMockEngine(t)

	p := &models.Player{
		ID: "p1", Position: models.PositionForward,
		ForwardRating: 90, DefenderRating: 80, GoalieRating: 70,
		Overall: 90, Potential: models.PotentialGoat, Age: 36,
	}

	// practice probability is zero at 35+, so the roll always regresses
	roller.EXPECT().Float64().Return(0.0)
	roller.EXPECT().Intn(3).Return(2).Times(3)

	engine.ProcessDevelopment([]*models.Player{p})

	assert.Equal(t, 88, p.ForwardRating)
	assert.Equal(t, 78, p.DefenderRating)
	assert.Equal(t, 68, p.GoalieRating)
	assert.Equal(t, 88, p.Overall)
}

func TestProcessDevelopment_AgePenaltyImmune(t *testing.T) {
	engine, roller := newMockEngine(t)

	p := &models.Player{
		ID: "jar", Position: models.PositionGoalie,
		ForwardRating: 1, DefenderRating: 2, GoalieRating: 2,
		Overall: 2, Potential: models.PotentialGoat, Age: 80,
		Modifiers: models.PlayerModifiers{AgePenaltyImmune: true},
	}

	roller.EXPECT().Float64().Return(0.5)
	roller.EXPECT().Intn(5).Return(4).Times(3)

	engine.ProcessDevelopment([]*models.Player{p})

	assert.Equal(t, 6, p.ForwardRating)
	assert.Equal(t, 7, p.GoalieRating)
	assert.Equal(t, 7, p.Overall)
}

func TestProcessDevelopment_CapsAtNinetyNine(t *testing.T) {
	engine, roller := newMockEngine(t)

	p := &models.Player{
		ID: "p1", Position: models.PositionForward,
		ForwardRating: 98, DefenderRating: 98, GoalieRating: 98,
		Overall: 98, Potential: models.PotentialGoat, Age: 20,
	}

	roller.EXPECT().Float64().Return(0.5)
	roller.EXPECT().Intn(5).Return(4).Times(3)

	engine.ProcessDevelopment([]*models.Player{p})

	assert.Equal(t, 99, p.ForwardRating)
	assert.Equal(t, 99, p.Overall)
}

func TestProcessDevelopment_LinkedPlayerSyncs(t *testing.T) {
	engine, roller := newMockEngine(t)

	source := &models.Player{
		ID: "tim", Position: models.PositionGoalie,
		ForwardRating: 55, DefenderRating: 57, GoalieRating: 62,
		Overall: 62, Potential: models.PotentialStandard, Age: 25,
	}
	follower := &models.Player{
		ID: "suddy", Position: models.PositionGoalie,
		ForwardRating: 54, DefenderRating: 56, GoalieRating: 61,
		Overall: 61, Potential: models.PotentialBust, Age: 25,
		Modifiers: models.PlayerModifiers{
			LinkedPlayerID:     "tim",
			LinkedRatingOffset: -1,
		},
	}

	// only the source rolls; the follower is synced afterwards
	roller.EXPECT().Float64().Return(0.1)
	roller.EXPECT().Intn(2).Return(1).Times(3)

	engine.ProcessDevelopment([]*models.Player{source, follower})

	assert.Equal(t, source.GoalieRating-1, follower.GoalieRating)
	assert.Equal(t, source.ForwardRating-1, follower.ForwardRating)
	assert.Equal(t, follower.GoalieRating, follower.Overall)
}

func TestProcessRetirements_ScriptedAge(t *testing.T) {
	engine, _ := newMockEngine(t)

	young := &models.Player{
		ID: "jar1", Age: 99, State: models.PlayerStateFreeAgent,
		Modifiers: models.PlayerModifiers{ScriptedRetirementAge: 100},
	}
	old := &models.Player{
		ID: "jar2", Age: 100, State: models.PlayerStateFreeAgent,
		Modifiers: models.PlayerModifiers{ScriptedRetirementAge: 100},
	}

	retiring := engine.ProcessRetirements([]*models.Player{young, old}, 2050)

	assert.Len(t, retiring, 1)
	assert.Equal(t, "jar2", retiring[0].ID)
	assert.Equal(t, models.PlayerStateRetired, old.State)
	assert.Equal(t, 2050, old.RetirementYear)
	assert.NotEqual(t, models.PlayerStateRetired, young.State)
}

func TestProcessRetirements_LinkedFollows(t *testing.T) {
	engine, roller := newMockEngine(t)

	source := &models.Player{
		ID: "tim", Age: 38, State: models.PlayerStateActive,
		Potential: models.PotentialStandard,
	}
	follower := &models.Player{
		ID: "suddy", Age: 25, State: models.PlayerStateActive,
		Modifiers: models.PlayerModifiers{
			LinkedPlayerID:    "tim",
			RetiresWithLinked: true,
		},
	}

	// age 38: 0.15 + 3*0.05 = 0.30, roll under it
	roller.EXPECT().Float64().Return(0.1)

	retiring := engine.ProcessRetirements([]*models.Player{source, follower}, 2040)

	assert.Len(t, retiring, 2)
	assert.Equal(t, models.PlayerStateRetired, follower.State)
}

func TestProcessRetirements_ForcedAfterInactiveSeasons(t *testing.T) {
	engine, _ := newMockEngine(t)

	p := &models.Player{
		ID: "benched", Age: 22, State: models.PlayerStateFreeAgent,
		ConsecutiveSeasonsWithoutGames: 4,
	}

	retiring := engine.ProcessRetirements([]*models.Player{p}, 2030)

	assert.Len(t, retiring, 1)
	assert.Equal(t, models.PlayerStateRetired, p.State)
}

func TestGenerateProspects_RatingsAndAges(t *testing.T) {
	engine := newSeededEngine(21)

	used := map[string]bool{}
	prospects := engine.GenerateProspects(40, used)

	assert.Len(t, prospects, 40)
	for _, p := range prospects {
		assert.GreaterOrEqual(t, p.Overall, 66)
		assert.LessOrEqual(t, p.Overall, 79)
		assert.GreaterOrEqual(t, p.Age, 17)
		assert.LessOrEqual(t, p.Age, 19)
		assert.Equal(t, models.PlayerStateFreeAgent, p.State)
		assert.GreaterOrEqual(t, p.ForwardRating, 60)
		assert.GreaterOrEqual(t, p.DefenderRating, 60)
		assert.GreaterOrEqual(t, p.GoalieRating, 60)
		assert.True(t, used[p.Name])
	}
}

func TestAwardLegacyPoints_ChampionRoster(t *testing.T) {
	star := &models.Player{
		ID: "star", TeamID: "champs",
		SeasonStats: models.PlayerStats{Goals: 40, Points: 70, Assists: 30},
	}
	team := &models.Team{
		ID: "champs", Name: "American Revolution",
		ActivePlayers: []*models.Player{star},
	}
	other := &models.Team{ID: "other", Name: "Florida Tropics"}

	AwardLegacyPoints(
		[]*models.Team{team, other}, nil,
		"American Revolution",
		[]string{"American Revolution", "Florida Tropics"},
		[]string{"American Revolution"},
	)

	// playoffs 5 + finals 10 + champion 35 + goals leader 25 +
	// assists leader 20 + points leader 10
	assert.Equal(t, 105, star.CareerStats.Legacy)
}

func TestAwardTeamLegacyPoints(t *testing.T) {
	champs := &models.Team{Name: "A", GoalsFor: 90, GoalsAgainst: 40}
	runnerUp := &models.Team{Name: "B", GoalsFor: 70, GoalsAgainst: 60}
	alsoRan := &models.Team{Name: "C", GoalsFor: 50, GoalsAgainst: 80}

	AwardTeamLegacyPoints(
		[]*models.Team{champs, runnerUp, alsoRan},
		"A",
		[]string{"A", "B"},
		[]string{"A", "B"},
	)

	// playoffs 10 + finals 15 + champion 25 + most GF 10 + fewest GA 10
	assert.Equal(t, 70, champs.Legacy)
	assert.Equal(t, 25, runnerUp.Legacy)
	assert.Zero(t, alsoRan.Legacy)
}

func TestProcessHallOfFame_ClosedThrough2040(t *testing.T) {
	engine, _ := newMockEngine(t)

	legend := &models.Player{
		ID: "legend", State: models.PlayerStateRetired,
		CareerStats: models.PlayerStats{Legacy: 900},
	}

	assert.Nil(t, engine.ProcessHallOfFameInduction([]*models.Player{legend}, nil, 2040))
}

func TestProcessHallOfFame_GuaranteedAtSevenHundred(t *testing.T) {
	engine, _ := newMockEngine(t)

	legend := &models.Player{
		ID: "legend", Name: "Wayne Gretzky", Position: models.PositionForward,
		State:          models.PlayerStateRetired,
		RetirementYear: 2044,
		CareerStats:    models.PlayerStats{Legacy: 700},
	}

	inductee := engine.ProcessHallOfFameInduction([]*models.Player{legend}, nil, 2045)

	assert.NotNil(t, inductee)
	assert.Equal(t, "legend", inductee.PlayerID)
	assert.Equal(t, 2045, inductee.InductionYear)
	assert.Equal(t, 2044, inductee.RetirementYear)
	assert.Equal(t, 700, inductee.LegacyScore)
}

func TestProcessHallOfFame_VoteFailsBelowThreshold(t *testing.T) {
	engine, roller := newMockEngine(t)

	marginal := &models.Player{
		ID: "marginal", State: models.PlayerStateRetired,
		CareerStats: models.PlayerStats{Legacy: 540},
	}

	// 500-549 band needs a 6% vote
	roller.EXPECT().Float64().Return(0.5)

	assert.Nil(t, engine.ProcessHallOfFameInduction([]*models.Player{marginal}, nil, 2045))
}

func TestProcessHallOfFame_SkipsInducted(t *testing.T) {
	engine, _ := newMockEngine(t)

	legend := &models.Player{
		ID: "legend", State: models.PlayerStateRetired,
		CareerStats: models.PlayerStats{Legacy: 800},
	}
	hall := []*models.HallOfFameInductee{{PlayerID: "legend"}}

	assert.Nil(t, engine.ProcessHallOfFameInduction([]*models.Player{legend}, hall, 2045))
}

func advanceTestLeague() *models.League {
	teams := make([]*models.Team, 0, 2)
	for _, name := range []string{"American Revolution", "Florida Tropics"} {
		team := &models.Team{ID: name, Name: name}
		for _, pos := range models.Positions {
			team.ActivePlayers = append(team.ActivePlayers, &models.Player{
				ID: name + string(pos), Name: name + " " + string(pos),
				Position: pos, Overall: 75,
				ForwardRating: 75, DefenderRating: 75, GoalieRating: 75,
				State: models.PlayerStateActive, TeamID: name,
				Potential: models.PotentialStandard, Age: 24,
				SeasonStats: models.PlayerStats{GamesPlayed: 20, Goals: 5},
			})
		}
		teams = append(teams, team)
	}
	return &models.League{
		ID:          "league_1",
		CurrentYear: 2026,
		GameDate:    time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC),
		Teams:       teams,
	}
}

func TestAdvanceSeason_RollsOver(t *testing.T) {
	engine := newSeededEngine(33)
	league := advanceTestLeague()

	result := engine.AdvanceSeason(league, "American Revolution",
		[]string{"American Revolution", "Florida Tropics"},
		[]string{"American Revolution", "Florida Tropics"})

	assert.Equal(t, 2027, result.NewYear)
	assert.Equal(t, 2027, league.CurrentYear)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), league.GameDate)

	assert.Len(t, league.SeasonHistory, 1)
	assert.Equal(t, 2026, league.SeasonHistory[0].Year)
	assert.Equal(t, "American Revolution", league.SeasonHistory[0].Champion)

	assert.NotEmpty(t, result.NewFreeAgents)
	assert.LessOrEqual(t, len(result.NewFreeAgents), 4)

	for _, team := range league.Teams {
		assert.Zero(t, team.Wins)
		assert.Zero(t, team.Points)
		for _, p := range team.ActivePlayers {
			assert.Zero(t, p.SeasonStats.Goals)
			assert.Equal(t, 25, p.Age)
		}
	}
}

func TestAdvanceSeason_SecondCallForSameYearChangesNothing(t *testing.T) {
	engine := newSeededEngine(33)
	league := advanceTestLeague()
	league.SeasonHistory = []*models.SeasonHistory{{Year: 2026, Champion: "American Revolution"}}

	engine.AdvanceSeason(league, "American Revolution", nil, nil)

	// history, aging, retirements and development are all guarded by
	// the recorded year
	assert.Len(t, league.SeasonHistory, 1)
	for _, team := range league.Teams {
		for _, p := range team.ActivePlayers {
			assert.Equal(t, 24, p.Age)
			assert.Equal(t, 75, p.ForwardRating)
		}
	}
}
