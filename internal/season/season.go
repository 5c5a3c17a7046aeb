// Package season handles the offseason: development, retirements,
// prospect generation, legacy awards, Hall of Fame voting and the
// rollover into a new year.
package season

import (
	"time"

	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/names"
	"github.com/gkha/league/internal/rating"
	"github.com/gkha/league/internal/roster"
	"github.com/gkha/league/internal/standings"
)

const (
	// inactiveSeasonsBeforeRetirement forces unsigned players out after
	// this many seasons without a game
	inactiveSeasonsBeforeRetirement = 4

	// HallOfFameOpenYear is the last year with no induction vote
	HallOfFameOpenYear = 2040

	// hallOfFameMinLegacy is the eligibility floor
	hallOfFameMinLegacy = 500

	// prospectSurgeYear is when the draft class grows from 1-4 to 2-4
	prospectSurgeYear = 2038
)

// Engine runs the offseason
type Engine struct {
	roller dice.Roller
	names  *names.Generator
	uuider uuid.UUID
}

// Config holds Engine dependencies
type Config struct {
	Roller dice.Roller
	Names  *names.Generator
	UUID   uuid.UUID
}

// New creates a season engine
func New(cfg *Config) *Engine {
	return &Engine{
		roller: cfg.Roller,
		names:  cfg.Names,
		uuider: cfg.UUID,
	}
}

func practiceProbability(p *models.Player) float64 {
	prob := 0.5
	switch p.Potential {
	case models.PotentialBust:
		prob = 0.25
	case models.PotentialStandard:
		prob = 0.51
	case models.PotentialStar:
		prob = 0.80
	case models.PotentialGoat:
		prob = 0.98
	}

	if !p.Modifiers.AgePenaltyImmune {
		if p.Age >= 35 {
			prob = 0
		} else if p.Age >= 29 {
			prob *= 1 - float64(p.Age-29)/5
		}
	}
	return prob
}

func improvementRange(potential models.Potential) int {
	switch potential {
	case models.PotentialGoat:
		return 5
	case models.PotentialStar:
		return 3
	case models.PotentialStandard:
		return 2
	default:
		return 1
	}
}

func capRating(v int) int {
	if v > 99 {
		return 99
	}
	return v
}

func floorRating(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// ProcessDevelopment runs one offseason practice pass over every
// player. Players whose ratings are linked to another player skip the
// pass and are synced afterwards.
func (e *Engine) ProcessDevelopment(players []*models.Player) {
	byID := make(map[string]*models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	var linked []*models.Player
	for _, p := range players {
		if p.Modifiers.LinkedPlayerID != "" {
			linked = append(linked, p)
			continue
		}

		if e.roller.Float64() < practiceProbability(p) {
			rng := improvementRange(p.Potential)
			p.ForwardRating = capRating(p.ForwardRating + e.roller.Intn(rng) + 1)
			p.DefenderRating = capRating(p.DefenderRating + e.roller.Intn(rng) + 1)
			p.GoalieRating = capRating(p.GoalieRating + e.roller.Intn(rng) + 1)
		} else {
			p.ForwardRating = floorRating(p.ForwardRating - e.roller.Intn(3))
			p.DefenderRating = floorRating(p.DefenderRating - e.roller.Intn(3))
			p.GoalieRating = floorRating(p.GoalieRating - e.roller.Intn(3))
		}
		rating.SyncOverall(p)
	}

	for _, p := range linked {
		source, ok := byID[p.Modifiers.LinkedPlayerID]
		if !ok {
			continue
		}
		offset := p.Modifiers.LinkedRatingOffset
		p.ForwardRating = floorRating(source.ForwardRating + offset)
		p.DefenderRating = floorRating(source.DefenderRating + offset)
		p.GoalieRating = floorRating(source.GoalieRating + offset)
		rating.SyncOverall(p)
	}
}

func retirementProbability(p *models.Player) float64 {
	var prob float64
	switch {
	case p.Age < 25:
		prob = 0.001
	case p.Age < 30:
		prob = 0.01
	case p.Age < 35:
		prob = 0.05 + float64(p.Age-30)*0.02
	case p.Age < 40:
		prob = 0.15 + float64(p.Age-35)*0.05
	default:
		prob = 0.40 + float64(p.Age-40)*0.08
	}

	switch p.Potential {
	case models.PotentialGoat:
		prob *= 0.5
	case models.PotentialStar:
		prob *= 0.9
	}

	if prob > 0.95 {
		prob = 0.95
	}
	return prob
}

// ProcessRetirements rolls retirement for every player and marks those
// who leave. Players scripted to retire at a fixed age skip the roll,
// and players who retire with a linked teammate go only when that
// teammate goes.
func (e *Engine) ProcessRetirements(players []*models.Player, currentYear int) []*models.Player {
	var retiring []*models.Player
	retiredIDs := map[string]bool{}

	retire := func(p *models.Player) {
		p.State = models.PlayerStateRetired
		p.RetirementYear = currentYear
		retiring = append(retiring, p)
		retiredIDs[p.ID] = true
	}

	var followers []*models.Player
	for _, p := range players {
		if p.Modifiers.RetiresWithLinked {
			followers = append(followers, p)
			continue
		}

		if scripted := p.Modifiers.ScriptedRetirementAge; scripted > 0 {
			if p.Age >= scripted {
				retire(p)
			}
			continue
		}

		if p.ConsecutiveSeasonsWithoutGames >= inactiveSeasonsBeforeRetirement &&
			p.State == models.PlayerStateFreeAgent {
			retire(p)
			continue
		}

		if e.roller.Float64() < retirementProbability(p) {
			retire(p)
		}
	}

	for _, p := range followers {
		if retiredIDs[p.Modifiers.LinkedPlayerID] {
			retire(p)
		}
	}

	return retiring
}

func (e *Engine) prospectPotential() models.Potential {
	switch roll := e.roller.Intn(20); {
	case roll < 1:
		return models.PotentialGoat
	case roll < 7:
		return models.PotentialStar
	case roll < 16:
		return models.PotentialStandard
	default:
		return models.PotentialBust
	}
}

func (e *Engine) secondaryRating(overall int) int {
	v := int(float64(overall) * (0.6 + e.roller.Float64()*0.25))
	if v < 60 {
		return 60
	}
	return v
}

// GenerateProspects creates count new free agents with ratings between
// 66 and 79 and ages 17 to 19. Names are drawn against used so no two
// league players ever share one.
func (e *Engine) GenerateProspects(count int, used map[string]bool) []*models.Player {
	prospects := make([]*models.Player, 0, count)
	for i := 0; i < count; i++ {
		position := models.Positions[e.roller.Intn(len(models.Positions))]
		overall := e.roller.Intn(14) + 66

		p := &models.Player{
			ID:        e.uuider.NewUUID(),
			Name:      e.names.Generate(used),
			Position:  position,
			Overall:   overall,
			State:     models.PlayerStateFreeAgent,
			Potential: e.prospectPotential(),
			Age:       e.roller.Intn(3) + 17,
		}

		switch position {
		case models.PositionForward:
			p.ForwardRating = overall
			p.DefenderRating = e.secondaryRating(overall)
			p.GoalieRating = e.secondaryRating(overall)
		case models.PositionDefender:
			p.DefenderRating = overall
			p.ForwardRating = e.secondaryRating(overall)
			p.GoalieRating = e.secondaryRating(overall)
		default:
			p.GoalieRating = overall
			p.ForwardRating = e.secondaryRating(overall)
			p.DefenderRating = e.secondaryRating(overall)
		}

		if e.roller.Intn(8) == 0 {
			p.Nickname = e.names.Nickname()
		}

		prospects = append(prospects, p)
	}
	return prospects
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func rank(leaders []*models.Player, id string) int {
	for i, p := range leaders {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// AwardLegacyPoints credits every player for the season's team results
// and statistical finishes.
func AwardLegacyPoints(teams []*models.Team, freeAgents []*models.Player, championName string, playoffTeamNames, finalistTeamNames []string) {
	players := append(standings.AllPlayers(teams), freeAgents...)

	categories := []standings.StatCategory{
		standings.CategoryGoals,
		standings.CategoryAssists,
		standings.CategoryPoints,
		standings.CategorySaves,
		standings.CategoryHits,
	}
	leaderBonus := map[standings.StatCategory]int{
		standings.CategoryGoals:   25,
		standings.CategoryAssists: 20,
		standings.CategoryPoints:  10,
		standings.CategorySaves:   25,
		standings.CategoryHits:    20,
	}

	top5 := map[standings.StatCategory][]*models.Player{}
	for _, category := range categories {
		top5[category] = standings.LeagueLeaders(players, category, true, 5)
	}

	teamsByID := map[string]*models.Team{}
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	for _, p := range players {
		points := 0

		if team := teamsByID[p.TeamID]; team != nil {
			if contains(playoffTeamNames, team.Name) {
				points += 5
			}
			if contains(finalistTeamNames, team.Name) {
				points += 10
			}
			if team.Name == championName {
				points += 35
			}
		}

		for _, category := range categories {
			switch r := rank(top5[category], p.ID); {
			case r == 0:
				points += leaderBonus[category]
			case r >= 1 && r <= 4:
				points += 5
			}
		}

		if points > 0 {
			p.CareerStats.Legacy += points
		}
	}
}

// AwardTeamLegacyPoints credits franchises for playoff results and for
// leading the league in goals scored or goals allowed.
func AwardTeamLegacyPoints(teams []*models.Team, championName string, playoffTeamNames, finalistTeamNames []string) {
	var mostGoals, fewestAgainst string
	var bestFor, bestAgainst int
	for i, t := range teams {
		if i == 0 || t.GoalsFor > bestFor {
			bestFor = t.GoalsFor
			mostGoals = t.Name
		}
		if i == 0 || t.GoalsAgainst < bestAgainst {
			bestAgainst = t.GoalsAgainst
			fewestAgainst = t.Name
		}
	}

	for _, team := range teams {
		points := 0
		if contains(playoffTeamNames, team.Name) {
			points += 10
		}
		if contains(finalistTeamNames, team.Name) {
			points += 15
		}
		if team.Name == championName {
			points += 25
		}
		if team.Name == mostGoals {
			points += 10
		}
		if team.Name == fewestAgainst {
			points += 10
		}
		team.Legacy += points
	}
}

// ProcessHallOfFameInduction votes in at most one retired player for
// the given induction year. Voting only opens after 2040, eligibility
// starts at 500 career legacy, and the odds rise with the score until
// 700 guarantees a plaque.
func (e *Engine) ProcessHallOfFameInduction(retiredPlayers []*models.Player, hallOfFame []*models.HallOfFameInductee, inductionYear int) *models.HallOfFameInductee {
	if inductionYear <= HallOfFameOpenYear {
		return nil
	}

	inducted := map[string]bool{}
	for _, inductee := range hallOfFame {
		inducted[inductee.PlayerID] = true
	}

	var top *models.Player
	for _, p := range retiredPlayers {
		if inducted[p.ID] || p.CareerStats.Legacy < hallOfFameMinLegacy {
			continue
		}
		if top == nil || p.CareerStats.Legacy > top.CareerStats.Legacy {
			top = p
		}
	}
	if top == nil {
		return nil
	}

	var voteChance float64
	switch legacy := top.CareerStats.Legacy; {
	case legacy < 550:
		voteChance = 0.06
	case legacy < 600:
		voteChance = 0.30
	case legacy < 650:
		voteChance = 0.60
	case legacy < 700:
		voteChance = 0.90
	default:
		voteChance = 1.0
	}
	if voteChance < 1.0 && e.roller.Float64() > voteChance {
		return nil
	}

	retirementYear := top.RetirementYear
	if retirementYear == 0 {
		retirementYear = inductionYear - 1
	}

	return &models.HallOfFameInductee{
		PlayerID:          top.ID,
		PlayerName:        top.Name,
		InductionYear:     inductionYear,
		RetirementYear:    retirementYear,
		LegacyScore:       top.CareerStats.Legacy,
		Position:          top.Position,
		YearsOfExperience: top.YearsOfExperience,
		CareerStats:       top.CareerStats,
	}
}

// AdvanceResult reports what changed when a season rolled over
type AdvanceResult struct {
	NewYear       int
	NewGameDate   time.Time
	Retiring      []*models.Player
	NewFreeAgents []*models.Player
	NewInductee   *models.HallOfFameInductee
}

// AdvanceSeason rolls the league into the next year: records history,
// awards legacy, ages players, processes retirements, signs a new
// draft class, runs development, resets stats and records, and holds
// the Hall of Fame vote. Calling it twice for the same year is a no-op
// beyond the first call.
func (e *Engine) AdvanceSeason(league *models.League, championName string, playoffTeamNames, finalistTeamNames []string) *AdvanceResult {
	players := append(standings.AllPlayers(league.Teams), league.FreeAgents...)

	alreadyRecorded := false
	for _, h := range league.SeasonHistory {
		if h.Year == league.CurrentYear {
			alreadyRecorded = true
			break
		}
	}

	if !alreadyRecorded {
		league.SeasonHistory = append(league.SeasonHistory, &models.SeasonHistory{
			Year:     league.CurrentYear,
			Champion: championName,
			StatLeaders: models.SeasonStatLeaders{
				Goals:   statLine(players, standings.CategoryGoals),
				Assists: statLine(players, standings.CategoryAssists),
				Points:  statLine(players, standings.CategoryPoints),
				Saves:   statLine(players, standings.CategorySaves),
				Hits:    statLine(players, standings.CategoryHits),
			},
		})

		AwardLegacyPoints(league.Teams, league.FreeAgents, championName, playoffTeamNames, finalistTeamNames)
		AwardTeamLegacyPoints(league.Teams, championName, playoffTeamNames, finalistTeamNames)

		for _, p := range players {
			if p.SeasonStats.GamesPlayed > 0 {
				p.YearsOfExperience++
				p.ConsecutiveSeasonsWithoutGames = 0
			} else {
				p.ConsecutiveSeasonsWithoutGames++
			}
			p.Age++
		}
	}

	var retiring []*models.Player
	if !alreadyRecorded {
		retiring = e.ProcessRetirements(players, league.CurrentYear)
		league.RetiredPlayers = append(league.RetiredPlayers, retiring...)
	}

	for _, team := range league.Teams {
		var actives []*models.Player
		for _, p := range team.ActivePlayers {
			if p.State != models.PlayerStateRetired {
				actives = append(actives, p)
			}
		}
		team.ActivePlayers = actives
		if team.BenchPlayer != nil && team.BenchPlayer.State == models.PlayerStateRetired {
			team.BenchPlayer = nil
		}
		var ir []*models.Player
		for _, p := range team.IRPlayers {
			if p.State != models.PlayerStateRetired {
				ir = append(ir, p)
			}
		}
		team.IRPlayers = ir
		var suspended []*models.Player
		for _, p := range team.SuspendedPlayers {
			if p.State != models.PlayerStateRetired {
				suspended = append(suspended, p)
			}
		}
		team.SuspendedPlayers = suspended
	}

	var activeFreeAgents []*models.Player
	for _, p := range league.FreeAgents {
		if p.State != models.PlayerStateRetired {
			activeFreeAgents = append(activeFreeAgents, p)
		}
	}

	nextYear := league.CurrentYear + 1

	var newFreeAgents []*models.Player
	alreadyGenerated := false
	for _, p := range activeFreeAgents {
		if p.SeasonGenerated == nextYear {
			alreadyGenerated = true
			break
		}
	}
	if !alreadyGenerated {
		used := map[string]bool{}
		for _, p := range append(standings.AllPlayers(league.Teams), activeFreeAgents...) {
			used[p.Name] = true
		}
		minProspects, spread := 1, 4
		if nextYear > prospectSurgeYear {
			minProspects, spread = 2, 3
		}
		newFreeAgents = e.GenerateProspects(e.roller.Intn(spread)+minProspects, used)
		for _, p := range newFreeAgents {
			p.SeasonGenerated = nextYear
		}
	}

	league.FreeAgents = append(activeFreeAgents, newFreeAgents...)

	survivors := append(standings.AllPlayers(league.Teams), league.FreeAgents...)
	if !alreadyRecorded {
		e.ProcessDevelopment(survivors)
	}

	roster.AutoSwapAllTeams(league.Teams)
	standings.ResetSeasonStats(survivors)
	standings.ResetTeamRecords(league.Teams)

	league.CurrentYear = nextYear
	league.GameDate = time.Date(nextYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	var inductee *models.HallOfFameInductee
	if candidate := e.ProcessHallOfFameInduction(league.RetiredPlayers, league.HallOfFame, nextYear); candidate != nil {
		league.HallOfFame = append(league.HallOfFame, candidate)
		inductee = candidate
	}

	return &AdvanceResult{
		NewYear:       nextYear,
		NewGameDate:   league.GameDate,
		Retiring:      retiring,
		NewFreeAgents: newFreeAgents,
		NewInductee:   inductee,
	}
}

func statLine(players []*models.Player, category standings.StatCategory) models.StatLine {
	leader := standings.TopLeader(players, category, true)
	if leader == nil {
		return models.StatLine{PlayerName: "N/A"}
	}
	return models.StatLine{
		PlayerName: leader.Name,
		Value:      statValue(leader, category),
	}
}

func statValue(p *models.Player, category standings.StatCategory) int {
	switch category {
	case standings.CategoryGoals:
		return p.SeasonStats.Goals
	case standings.CategoryAssists:
		return p.SeasonStats.Assists
	case standings.CategoryPoints:
		return p.SeasonStats.Points
	case standings.CategorySaves:
		return p.SeasonStats.Saves
	case standings.CategoryHits:
		return p.SeasonStats.Hits
	default:
		return 0
	}
}
