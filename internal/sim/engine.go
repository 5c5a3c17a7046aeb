// Package sim contains the game outcome engine: score generation,
// play-by-play event generation, injury and suspension rolls, and the
// post-game stat commit.
package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/rating"
)

const (
	baseLambda    = 2.5
	avgOffense    = 80.0
	avgDefense    = 81.0
	homeAdvantage = 1.05

	// regulation length in minutes, three periods of twenty
	gameDuration = 60

	maxGoals = 10

	injuryChance     = 0.05
	suspensionChance = 0.01

	assistChance = 0.70
)

type injuryArchetype struct {
	description string
	days        int
}

var injuryArchetypes = []injuryArchetype{
	{description: "Knee sprain", days: 7},
	{description: "Shoulder injury", days: 10},
	{description: "Ankle sprain", days: 5},
	{description: "Wrist injury", days: 14},
	{description: "Back strain", days: 7},
	{description: "Concussion", days: 21},
}

type suspensionArchetype struct {
	reason string
	games  int
}

var suspensionArchetypes = []suspensionArchetype{
	{reason: "Fighting", games: 2},
	{reason: "High-sticking", games: 1},
	{reason: "Unsportsmanlike conduct", games: 3},
	{reason: "Illegal check", games: 2},
	{reason: "Off-ice conduct violation", games: 5},
	{reason: "Repeated minor infractions", games: 1},
}

// Engine simulates games. All randomness flows through the injected
// roller so a seeded roller replays identically.
type Engine struct {
	roller dice.Roller
}

// Config holds Engine dependencies
type Config struct {
	Roller dice.Roller
}

// New creates a new simulation engine
func New(cfg *Config) *Engine {
	return &Engine{
		roller: cfg.Roller,
	}
}

// GameResult is the outcome of a single simulated game
type GameResult struct {
	HomeScore int
	AwayScore int
	Overtime  bool
}

// Lambdas returns the expected-goals parameters for both teams. The
// home side carries the home-ice multiplier on its offense term.
func Lambdas(home, away *models.Team) (homeLambda, awayLambda float64) {
	homeOffense := rating.OffensiveStrength(home)
	homeDefense := rating.DefensiveStrength(home)
	awayOffense := rating.OffensiveStrength(away)
	awayDefense := rating.DefensiveStrength(away)

	homeLambda = baseLambda * (homeOffense * homeAdvantage / avgOffense) * (avgDefense / awayDefense)
	awayLambda = baseLambda * (awayOffense / avgOffense) * (avgDefense / homeDefense)
	return homeLambda, awayLambda
}

// sampleScore inverts the Poisson CDF for the given lambda against a
// single uniform draw. Mass beyond ten goals collapses onto ten.
func (e *Engine) sampleScore(lambda float64) int {
	draw := e.roller.Float64()
	eLambda := math.Exp(-lambda)

	cumulative := 0.0
	for k := 0; k <= maxGoals; k++ {
		factorial := 1.0
		for i := 2; i <= k; i++ {
			factorial *= float64(i)
		}
		cumulative += eLambda * math.Pow(lambda, float64(k)) / factorial
		if draw < cumulative {
			return k
		}
	}
	return maxGoals
}

// DetermineWinner produces a final score for the matchup. Ties go to
// overtime, decided by a coin weighted on total roster strength, and
// the winner's score is bumped by one.
func (e *Engine) DetermineWinner(home, away *models.Team) GameResult {
	homeLambda, awayLambda := Lambdas(home, away)

	result := GameResult{
		HomeScore: e.sampleScore(homeLambda),
		AwayScore: e.sampleScore(awayLambda),
	}

	if result.HomeScore == result.AwayScore {
		result.Overtime = true

		homeStrength := float64(rating.TeamStrength(home))
		awayStrength := float64(rating.TeamStrength(away))
		homeWinProbability := (homeStrength * homeAdvantage) /
			(homeStrength*homeAdvantage + awayStrength)

		if e.roller.Float64() < homeWinProbability {
			result.HomeScore++
		} else {
			result.AwayScore++
		}
	}

	return result
}

// pickScorer chooses a goal scorer from the team's active players,
// favoring forwards at sixty percent.
func (e *Engine) pickScorer(team *models.Team) *models.Player {
	var forwards, others []*models.Player
	for _, p := range team.ActivePlayers {
		if p.Position == models.PositionForward {
			forwards = append(forwards, p)
		} else {
			others = append(others, p)
		}
	}

	switch {
	case e.roller.Float64() < 0.6 && len(forwards) > 0:
		return forwards[e.roller.Intn(len(forwards))]
	case len(others) > 0:
		return others[e.roller.Intn(len(others))]
	case len(forwards) > 0:
		return forwards[e.roller.Intn(len(forwards))]
	default:
		return team.ActivePlayers[e.roller.Intn(len(team.ActivePlayers))]
	}
}

// pickHitter chooses a hit deliverer weighted by position: defenders
// sixty percent, forwards thirty-five, goalies five.
func (e *Engine) pickHitter(team *models.Team) *models.Player {
	var forwards, defenders, goalies []*models.Player
	for _, p := range team.ActivePlayers {
		switch p.Position {
		case models.PositionForward:
			forwards = append(forwards, p)
		case models.PositionDefender:
			defenders = append(defenders, p)
		case models.PositionGoalie:
			goalies = append(goalies, p)
		}
	}

	roll := e.roller.Float64()
	switch {
	case roll < 0.60 && len(defenders) > 0:
		return defenders[e.roller.Intn(len(defenders))]
	case roll < 0.95 && len(forwards) > 0:
		return forwards[e.roller.Intn(len(forwards))]
	case len(goalies) > 0:
		return goalies[e.roller.Intn(len(goalies))]
	default:
		return nil
	}
}

func (e *Engine) pickTeam(home, away *models.Team) *models.Team {
	if e.roller.Float64() < 0.5 {
		return home
	}
	return away
}

// GenerateGameEvents builds the minute-by-minute log for a completed
// game. Regulation goals land on minutes 1-60; an overtime decider, if
// any, lands on 61-79 with proportional extra saves and hits. The log
// comes back sorted by minute, stable for ties.
func (e *Engine) GenerateGameEvents(game *models.Game, home, away *models.Team, homeScore, awayScore int) []models.GameEvent {
	var events []models.GameEvent

	regulationHome := homeScore
	regulationAway := awayScore
	otWinner := (*models.Team)(nil)
	if game.Overtime {
		if homeScore > awayScore {
			regulationHome--
			otWinner = home
		} else {
			regulationAway--
			otWinner = away
		}
	}

	goalMinutes := make([]int, 0, regulationHome+regulationAway)
	for i := 0; i < regulationHome+regulationAway; i++ {
		goalMinutes = append(goalMinutes, e.roller.Intn(gameDuration)+1)
	}
	sort.Ints(goalMinutes)

	homeScored := 0
	awayScored := 0
	for _, minute := range goalMinutes {
		var scoringTeam *models.Team
		if homeScored < regulationHome && (awayScored >= regulationAway || e.roller.Float64() < 0.5) {
			scoringTeam = home
			homeScored++
		} else {
			scoringTeam = away
			awayScored++
		}

		scorer := e.pickScorer(scoringTeam)
		events = append(events, models.GameEvent{
			Minute: minute,
			Type:   models.EventTypeGoal,
			Description: fmt.Sprintf("GOAL! %s scores for %s! %s %d, %s %d",
				scorer.Name, scoringTeam.Name, home.Name, homeScored, away.Name, awayScored),
			TeamID:   scoringTeam.ID,
			PlayerID: scorer.ID,
		})
	}

	numSaves := e.roller.Intn(10) + 10
	for i := 0; i < numSaves; i++ {
		minute := e.roller.Intn(gameDuration) + 1
		team := e.pickTeam(home, away)
		goalie, _ := team.ActiveAt(models.PositionGoalie)
		if goalie == nil {
			continue
		}
		events = append(events, models.GameEvent{
			Minute:      minute,
			Type:        models.EventTypeSave,
			Description: fmt.Sprintf("Great save by %s!", goalie.Name),
			TeamID:      team.ID,
			PlayerID:    goalie.ID,
		})
	}

	numHits := e.roller.Intn(15) + 15
	for i := 0; i < numHits; i++ {
		minute := e.roller.Intn(gameDuration) + 1
		team := e.pickTeam(home, away)
		hitter := e.pickHitter(team)
		if hitter == nil {
			continue
		}
		events = append(events, models.GameEvent{
			Minute:      minute,
			Type:        models.EventTypeHit,
			Description: fmt.Sprintf("%s delivers a big hit!", hitter.Name),
			TeamID:      team.ID,
			PlayerID:    hitter.ID,
		})
	}

	events = append(events,
		models.GameEvent{Minute: 20, Type: models.EventTypePeriodEnd, Description: "End of 1st period"},
		models.GameEvent{Minute: 40, Type: models.EventTypePeriodEnd, Description: "End of 2nd period"},
		models.GameEvent{Minute: 60, Type: models.EventTypePeriodEnd, Description: "End of 3rd period"},
	)

	lastGoalMinute := gameDuration
	if len(goalMinutes) > 0 {
		lastGoalMinute = goalMinutes[len(goalMinutes)-1]
	}

	if game.Overtime && otWinner != nil {
		scorer := e.pickScorerOT(otWinner)
		otMinute := e.roller.Intn(19) + 61
		lastGoalMinute = otMinute

		events = append(events, models.GameEvent{
			Minute: otMinute,
			Type:   models.EventTypeGoal,
			Description: fmt.Sprintf("OVERTIME GOAL! %s wins it for %s! Final: %s %d, %s %d",
				scorer.Name, otWinner.Name, home.Name, homeScore, away.Name, awayScore),
			TeamID:   otWinner.ID,
			PlayerID: scorer.ID,
		})

		otDuration := otMinute - 60

		numOTSaves := numSaves * otDuration / gameDuration
		for i := 0; i < numOTSaves; i++ {
			minute := e.roller.Intn(otDuration) + 61
			team := e.pickTeam(home, away)
			goalie, _ := team.ActiveAt(models.PositionGoalie)
			if goalie == nil {
				continue
			}
			events = append(events, models.GameEvent{
				Minute:      minute,
				Type:        models.EventTypeSave,
				Description: fmt.Sprintf("Great save by %s!", goalie.Name),
				TeamID:      team.ID,
				PlayerID:    goalie.ID,
			})
		}

		numOTHits := numHits * otDuration / gameDuration
		for i := 0; i < numOTHits; i++ {
			minute := e.roller.Intn(otDuration) + 61
			team := e.pickTeam(home, away)
			hitter := e.pickHitter(team)
			if hitter == nil {
				continue
			}
			events = append(events, models.GameEvent{
				Minute:      minute,
				Type:        models.EventTypeHit,
				Description: fmt.Sprintf("%s delivers a big hit!", hitter.Name),
				TeamID:      team.ID,
				PlayerID:    hitter.ID,
			})
		}
	}

	suffix := ""
	if game.Overtime {
		suffix = " (OT)"
	}
	events = append(events, models.GameEvent{
		Minute: lastGoalMinute,
		Type:   models.EventTypeGameEnd,
		Description: fmt.Sprintf("Final Score: %s %d, %s %d%s",
			home.Name, homeScore, away.Name, awayScore, suffix),
	})

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Minute < events[j].Minute
	})

	return events
}

// pickScorerOT favors forwards at seventy percent for the decider.
func (e *Engine) pickScorerOT(team *models.Team) *models.Player {
	var forwards, others []*models.Player
	for _, p := range team.ActivePlayers {
		if p.Position == models.PositionForward {
			forwards = append(forwards, p)
		} else {
			others = append(others, p)
		}
	}

	switch {
	case e.roller.Float64() < 0.7 && len(forwards) > 0:
		return forwards[e.roller.Intn(len(forwards))]
	case len(others) > 0:
		return others[e.roller.Intn(len(others))]
	case len(forwards) > 0:
		return forwards[e.roller.Intn(len(forwards))]
	default:
		return team.ActivePlayers[e.roller.Intn(len(team.ActivePlayers))]
	}
}

// CheckForInjuries rolls an independent five percent injury chance per
// player and draws an archetype for each hit.
func (e *Engine) CheckForInjuries(players []*models.Player) []models.Injury {
	var injuries []models.Injury
	for _, p := range players {
		if e.roller.Float64() < injuryChance {
			archetype := injuryArchetypes[e.roller.Intn(len(injuryArchetypes))]
			injuries = append(injuries, models.Injury{
				PlayerID:      p.ID,
				DaysRemaining: archetype.days,
				Description:   archetype.description,
			})
		}
	}
	return injuries
}

// CheckForSuspensions rolls an independent one percent suspension
// chance per player.
func (e *Engine) CheckForSuspensions(players []*models.Player) []models.Suspension {
	var suspensions []models.Suspension
	for _, p := range players {
		if e.roller.Float64() < suspensionChance {
			archetype := suspensionArchetypes[e.roller.Intn(len(suspensionArchetypes))]
			suspensions = append(suspensions, models.Suspension{
				PlayerID:       p.ID,
				GamesRemaining: archetype.games,
				Reason:         archetype.reason,
			})
		}
	}
	return suspensions
}

// UpdatePlayerStats tallies the event log into season and career stat
// blocks for every participant. Each goal independently rolls a
// seventy percent assist awarded to a random teammate on the scorer's
// own team. Single-game legacy bonuses apply for a hat trick, ten
// saves or ten hits.
func (e *Engine) UpdatePlayerStats(players []*models.Player, events []models.GameEvent) {
	goals := map[string]int{}
	saves := map[string]int{}
	hits := map[string]int{}

	for _, event := range events {
		if event.PlayerID == "" {
			continue
		}
		switch event.Type {
		case models.EventTypeGoal:
			goals[event.PlayerID]++
		case models.EventTypeSave:
			saves[event.PlayerID]++
		case models.EventTypeHit:
			hits[event.PlayerID]++
		}
	}

	for _, player := range players {
		player.SeasonStats.GamesPlayed++
		player.CareerStats.GamesPlayed++

		if g := goals[player.ID]; g > 0 {
			player.SeasonStats.Goals += g
			player.CareerStats.Goals += g
			player.SeasonStats.Points += g
			player.CareerStats.Points += g

			if g >= 3 {
				player.CareerStats.Legacy++
			}

			teammates := make([]*models.Player, 0, len(players))
			for _, candidate := range players {
				if candidate.ID != player.ID && candidate.TeamID == player.TeamID {
					teammates = append(teammates, candidate)
				}
			}

			for i := 0; i < g; i++ {
				if e.roller.Float64() < assistChance && len(teammates) > 0 {
					assister := teammates[e.roller.Intn(len(teammates))]
					assister.SeasonStats.Assists++
					assister.CareerStats.Assists++
					assister.SeasonStats.Points++
					assister.CareerStats.Points++
				}
			}
		}

		if s := saves[player.ID]; s > 0 {
			player.SeasonStats.Saves += s
			player.CareerStats.Saves += s
			if s >= 10 {
				player.CareerStats.Legacy++
			}
		}

		if h := hits[player.ID]; h > 0 {
			player.SeasonStats.Hits += h
			player.CareerStats.Hits += h
			if h >= 10 {
				player.CareerStats.Legacy++
			}
		}
	}
}
