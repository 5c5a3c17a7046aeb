// Package achievements holds the unlockable registry and the checks
// that fire as the simulation runs. Every check marks matches in the
// registry and returns only what it newly unlocked.
package achievements

import (
	"strings"
	"time"

	"github.com/gkha/league/internal/models"
)

// Catalog returns the full locked registry for a new league.
func Catalog() []*models.Achievement {
	return []*models.Achievement{
		{ID: "complete-one-season", Title: "First Championship", Description: "Complete one full season and crown a champion"},
		{ID: "complete-10-seasons", Title: "Decade of Hockey", Description: "Complete 10 full seasons"},
		{ID: "complete-50-seasons", Title: "Golden Anniversary", Description: "Complete 50 full seasons"},
		{ID: "complete-100-seasons", Title: "Century of Champions", Description: "Complete 100 full seasons"},
		{ID: "double-digit-goals", Title: "Offensive Explosion", Description: "A team scores 10 or more goals in a single game"},
		{ID: "overtime-shutout", Title: "Overtime Nail-Biter", Description: "A game ends 1-0 in overtime"},
		{ID: "high-scoring-thriller", Title: "Nice!", Description: "A game ends with a final score of 6-9"},
		{ID: "peanut-butter-retirement", Title: "The Legend Retires", Description: "Jar of Peanut Butter retires"},
		{ID: "pallet-town-remembers", Title: "Pallet Town Remembers", Description: "A player named Chauncey joins the league"},
		{ID: "offensive-powerhouse", Title: "Offensive Powerhouse", Description: "A team finishes the regular season with 70+ goals scored"},
		{ID: "defensive-disaster", Title: "Defensive Disaster", Description: "A team finishes the regular season with 70+ goals allowed"},
		{ID: "dominant-season", Title: "Dominant Season", Description: "A team finishes the regular season with 35+ total points"},
		{ID: "basement-dweller", Title: "Basement Dweller", Description: "A team finishes the regular season with 10 or less total points"},
		{ID: "overtime-specialist", Title: "Overtime Specialist", Description: "A team finishes the regular season with 5+ overtime losses"},
		{ID: "fifty-goal-season", Title: "Fifty Goals", Description: "A player scores 50 goals in a single season"},
		{ID: "career-600-goals", Title: "The Great One", Description: "A player reaches 600 career goals"},
		{ID: "twenty-five-assist-season", Title: "Playmaker", Description: "A player records 25 assists in a single season"},
		{ID: "career-200-assists", Title: "Master Distributor", Description: "A player reaches 200 career assists"},
		{ID: "sixty-point-season", Title: "Point Producer", Description: "A player scores 60 points in a single season"},
		{ID: "career-750-points", Title: "Elite Scorer", Description: "A player reaches 750 career points"},
		{ID: "one-seventy-five-save-season", Title: "Wall", Description: "A goalie records 180 saves in a single season"},
		{ID: "career-1500-saves", Title: "Brick Wall", Description: "A goalie reaches 2500 career saves"},
		{ID: "one-fifty-hit-season", Title: "Enforcer", Description: "A player records 150 hits in a single season"},
		{ID: "career-1500-hits", Title: "Intimidator", Description: "A player reaches 2000 career hits"},
		{ID: "three-peat", Title: "Three-Peat", Description: "A team wins 3 consecutive championships"},
		{ID: "hall-of-fame-opens", Title: "Hall of Fame Opens", Description: "The Hall of Fame opens"},
		{ID: "first-hall-of-fame-inductee", Title: "Legend Immortalized", Description: "A player is inducted into the Hall of Fame"},
		{ID: "fifteen-hall-of-fame-inductees", Title: "Hall of Legends", Description: "15 players are inducted into the Hall of Fame"},
		{ID: "career-1000-legacy", Title: "Legendary Status", Description: "A player reaches 1000 career legacy score"},
	}
}

func unlock(achievements []*models.Achievement, id string, date time.Time) *models.Achievement {
	for _, a := range achievements {
		if a.ID == id && !a.Unlocked {
			a.Unlocked = true
			a.UnlockedDate = date
			return a
		}
	}
	return nil
}

func collect(unlocked []*models.Achievement, a *models.Achievement) []*models.Achievement {
	if a != nil {
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// CheckGame fires the single-game score achievements.
func CheckGame(game *models.Game, achievements []*models.Achievement, date time.Time) []*models.Achievement {
	var unlocked []*models.Achievement

	if game.HomeScore >= 10 || game.AwayScore >= 10 {
		unlocked = collect(unlocked, unlock(achievements, "double-digit-goals", date))
	}
	if game.Overtime && game.HomeScore+game.AwayScore == 1 {
		unlocked = collect(unlocked, unlock(achievements, "overtime-shutout", date))
	}
	if (game.HomeScore == 9 && game.AwayScore == 6) || (game.HomeScore == 6 && game.AwayScore == 9) {
		unlocked = collect(unlocked, unlock(achievements, "high-scoring-thriller", date))
	}

	return unlocked
}

// CheckNewPlayers fires when a newly generated player is named
// Chauncey.
func CheckNewPlayers(newPlayers []*models.Player, achievements []*models.Achievement, date time.Time) []*models.Achievement {
	var unlocked []*models.Achievement

	for _, p := range newPlayers {
		if first, _, _ := strings.Cut(p.Name, " "); first == "Chauncey" {
			unlocked = collect(unlocked, unlock(achievements, "pallet-town-remembers", date))
			break
		}
	}

	return unlocked
}

// CheckSeasonEnd fires team-record achievements once the regular
// season is over.
func CheckSeasonEnd(teams []*models.Team, achievements []*models.Achievement, date time.Time) []*models.Achievement {
	var unlocked []*models.Achievement

	for _, team := range teams {
		if team.GoalsFor >= 70 {
			unlocked = collect(unlocked, unlock(achievements, "offensive-powerhouse", date))
		}
		if team.GoalsAgainst >= 70 {
			unlocked = collect(unlocked, unlock(achievements, "defensive-disaster", date))
		}
		if team.Points >= 35 {
			unlocked = collect(unlocked, unlock(achievements, "dominant-season", date))
		}
		if team.Points <= 10 {
			unlocked = collect(unlocked, unlock(achievements, "basement-dweller", date))
		}
		if team.OvertimeLosses >= 5 {
			unlocked = collect(unlocked, unlock(achievements, "overtime-specialist", date))
		}
	}

	return unlocked
}

// CheckPlayerStats fires season and career milestone achievements.
func CheckPlayerStats(players []*models.Player, achievements []*models.Achievement, date time.Time) []*models.Achievement {
	var unlocked []*models.Achievement

	for _, p := range players {
		if p.SeasonStats.Goals >= 50 {
			unlocked = collect(unlocked, unlock(achievements, "fifty-goal-season", date))
		}
		if p.CareerStats.Goals >= 600 {
			unlocked = collect(unlocked, unlock(achievements, "career-600-goals", date))
		}
		if p.SeasonStats.Assists >= 25 {
			unlocked = collect(unlocked, unlock(achievements, "twenty-five-assist-season", date))
		}
		if p.CareerStats.Assists >= 200 {
			unlocked = collect(unlocked, unlock(achievements, "career-200-assists", date))
		}
		if p.SeasonStats.Points >= 60 {
			unlocked = collect(unlocked, unlock(achievements, "sixty-point-season", date))
		}
		if p.CareerStats.Points >= 750 {
			unlocked = collect(unlocked, unlock(achievements, "career-750-points", date))
		}
		if p.SeasonStats.Saves >= 180 {
			unlocked = collect(unlocked, unlock(achievements, "one-seventy-five-save-season", date))
		}
		if p.CareerStats.Saves >= 2500 {
			unlocked = collect(unlocked, unlock(achievements, "career-1500-saves", date))
		}
		if p.SeasonStats.Hits >= 150 {
			unlocked = collect(unlocked, unlock(achievements, "one-fifty-hit-season", date))
		}
		if p.CareerStats.Hits >= 2000 {
			unlocked = collect(unlocked, unlock(achievements, "career-1500-hits", date))
		}
		if p.CareerStats.Legacy >= 1000 {
			unlocked = collect(unlocked, unlock(achievements, "career-1000-legacy", date))
		}
	}

	return unlocked
}

// CheckThreePeat fires when the last three recorded seasons share a
// champion.
func CheckThreePeat(history []*models.SeasonHistory, achievements []*models.Achievement, date time.Time) []*models.Achievement {
	var unlocked []*models.Achievement

	if len(history) >= 3 {
		last := history[len(history)-3:]
		if last[0].Champion == last[1].Champion && last[1].Champion == last[2].Champion {
			unlocked = collect(unlocked, unlock(achievements, "three-peat", date))
		}
	}

	return unlocked
}

// CheckHallOfFame fires once the Hall opens and as inductee counts
// cross milestones.
func CheckHallOfFame(inducteeCount int, achievements []*models.Achievement, date time.Time) []*models.Achievement {
	var unlocked []*models.Achievement

	unlocked = collect(unlocked, unlock(achievements, "hall-of-fame-opens", date))
	if inducteeCount >= 1 {
		unlocked = collect(unlocked, unlock(achievements, "first-hall-of-fame-inductee", date))
	}
	if inducteeCount >= 15 {
		unlocked = collect(unlocked, unlock(achievements, "fifteen-hall-of-fame-inductees", date))
	}

	return unlocked
}

// CheckSeasonCount fires on the first, tenth, fiftieth and hundredth
// completed season.
func CheckSeasonCount(completedSeasons int, achievements []*models.Achievement, date time.Time) []*models.Achievement {
	var unlocked []*models.Achievement

	if completedSeasons >= 1 {
		unlocked = collect(unlocked, unlock(achievements, "complete-one-season", date))
	}
	if completedSeasons >= 10 {
		unlocked = collect(unlocked, unlock(achievements, "complete-10-seasons", date))
	}
	if completedSeasons >= 50 {
		unlocked = collect(unlocked, unlock(achievements, "complete-50-seasons", date))
	}
	if completedSeasons >= 100 {
		unlocked = collect(unlocked, unlock(achievements, "complete-100-seasons", date))
	}

	return unlocked
}

// CheckRetirements fires when a player on a scripted retirement age
// finally hangs it up.
func CheckRetirements(retiring []*models.Player, achievements []*models.Achievement, date time.Time) []*models.Achievement {
	var unlocked []*models.Achievement

	for _, p := range retiring {
		if p.Modifiers.ScriptedRetirementAge > 0 {
			unlocked = collect(unlocked, unlock(achievements, "peanut-butter-retirement", date))
			break
		}
	}

	return unlocked
}
