// Package seed bootstraps a brand new league: the six franchises and
// their opening-day rosters, the scripted free agent class, the feed
// welcome posts and the locked achievement registry.
package seed

import (
	"time"

	"github.com/gkha/league/internal/achievements"
	"github.com/gkha/league/internal/common/clock"
	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/names"
	"github.com/gkha/league/internal/roster"
)

// StartYear is the league's first season
const StartYear = 2026

// TeamNames lists the six franchises in seed order
var TeamNames = []string{
	"American Revolution",
	"Alaskan Thunder",
	"Boondock Beluga Whales",
	"Florida Tropics",
	"Southside Spartans",
	"Smashville Chippewas",
}

// Seeder builds new leagues
type Seeder struct {
	roller dice.Roller
	names  *names.Generator
	uuider uuid.UUID
	clock  clock.Clock
}

// Config holds Seeder dependencies
type Config struct {
	Roller dice.Roller
	Names  *names.Generator
	UUID   uuid.UUID
	Clock  clock.Clock
}

// New creates a seeder
func New(cfg *Config) *Seeder {
	return &Seeder{
		roller: cfg.Roller,
		names:  cfg.Names,
		uuider: cfg.UUID,
		clock:  cfg.Clock,
	}
}

type rosterEntry struct {
	name     string
	position models.Position
	forward  int
	defender int
	goalie   int
}

type rosterSpec struct {
	forward  rosterEntry
	defender rosterEntry
	goalie   rosterEntry
	bench    rosterEntry
}

var initialRosters = map[string]rosterSpec{
	"American Revolution": {
		forward:  rosterEntry{name: "Mikey Papa", forward: 90, defender: 77, goalie: 65},
		defender: rosterEntry{name: "Owen Brown", forward: 65, defender: 77, goalie: 65},
		goalie:   rosterEntry{name: "Mike Marotta", forward: 73, defender: 80, goalie: 89},
		bench:    rosterEntry{name: "Nick Marotta", position: models.PositionGoalie, forward: 60, defender: 62, goalie: 71},
	},
	"Alaskan Thunder": {
		forward:  rosterEntry{name: "Ricky Novia", forward: 82, defender: 80, goalie: 77},
		defender: rosterEntry{name: "Andy Levy", forward: 75, defender: 82, goalie: 53},
		goalie:   rosterEntry{name: "Joe O'Donnell", forward: 62, defender: 65, goalie: 77},
		bench:    rosterEntry{name: "Brad Robidoux", position: models.PositionGoalie, forward: 55, defender: 58, goalie: 65},
	},
	"Boondock Beluga Whales": {
		forward:  rosterEntry{name: "Austin Ingarra", forward: 83, defender: 72, goalie: 80},
		defender: rosterEntry{name: "Ian Beling", forward: 65, defender: 77, goalie: 74},
		goalie:   rosterEntry{name: "Alec Fowler", forward: 66, defender: 72, goalie: 81},
		bench:    rosterEntry{name: "Shem Prudhomme", position: models.PositionForward, forward: 67, defender: 53, goalie: 66},
	},
	"Florida Tropics": {
		forward:  rosterEntry{name: "Erik Galuska", forward: 76, defender: 64, goalie: 60},
		defender: rosterEntry{name: "Aidan Murray", forward: 62, defender: 74, goalie: 62},
		goalie:   rosterEntry{name: "Collin Salatto", forward: 51, defender: 73, goalie: 95},
		bench:    rosterEntry{name: "Chris Horowitz", position: models.PositionForward, forward: 72, defender: 70, goalie: 56},
	},
	"Smashville Chippewas": {
		forward:  rosterEntry{name: "Vinny Cleary", forward: 86, defender: 82, goalie: 74},
		defender: rosterEntry{name: "Sal DeLucia", forward: 69, defender: 77, goalie: 72},
		goalie:   rosterEntry{name: "Thom Bishop", forward: 85, defender: 81, goalie: 93},
		bench:    rosterEntry{name: "Erik Levenduski", position: models.PositionForward, forward: 79, defender: 66, goalie: 62},
	},
	"Southside Spartans": {
		forward:  rosterEntry{name: "Chris Papa", forward: 95, defender: 78, goalie: 75},
		defender: rosterEntry{name: "Matt Robidoux", forward: 65, defender: 77, goalie: 77},
		goalie:   rosterEntry{name: "Matt Palma", forward: 56, defender: 70, goalie: 80},
		bench:    rosterEntry{name: "George Bonadies", position: models.PositionGoalie, forward: 64, defender: 66, goalie: 77},
	},
}

var nicknameMap = map[string]string{
	"Collin Salatto":  "Googus",
	"Joe O'Donnell":   "Fienders",
	"Chris Papa":      "Commish",
	"Austin Ingarra":  "Safari Master",
	"Ricky Novia":     "The Animal",
	"Quinn Donahue":   "Diesel",
	"Erik Levenduski": "Eggy",
}

// playerAge fixes a few seed ages, everyone else starts 17-20
func (s *Seeder) playerAge(name string) int {
	switch name {
	case "Andy Levy", "Nick Marotta":
		return 21
	case "Mikey Papa", "Vinny Cleary", "Eggy Levenduski":
		return 17
	case "Kyle Kulthau", "Quinn Donahue":
		return 16
	}
	return s.roller.Intn(4) + 17
}

// genesisPotential rolls the founding-class distribution: 1/25 Goat,
// 5/25 Star, 14/25 Standard, 5/25 Bust.
func (s *Seeder) genesisPotential() models.Potential {
	switch roll := s.roller.Intn(25); {
	case roll < 1:
		return models.PotentialGoat
	case roll < 6:
		return models.PotentialStar
	case roll < 20:
		return models.PotentialStandard
	default:
		return models.PotentialBust
	}
}

func overallFor(position models.Position, forward, defender, goalie int) int {
	switch position {
	case models.PositionForward:
		return forward
	case models.PositionDefender:
		return defender
	default:
		return goalie
	}
}

func (s *Seeder) specificPlayer(entry rosterEntry, position models.Position, state models.PlayerState, teamID string) *models.Player {
	return &models.Player{
		ID:             s.uuider.NewUUID(),
		Name:           entry.name,
		Nickname:       nicknameMap[entry.name],
		Position:       position,
		Overall:        overallFor(position, entry.forward, entry.defender, entry.goalie),
		ForwardRating:  entry.forward,
		DefenderRating: entry.defender,
		GoalieRating:   entry.goalie,
		State:          state,
		Potential:      s.genesisPotential(),
		TeamID:         teamID,
		Age:            s.playerAge(entry.name),
	}
}

// randomPlayer builds an unnamed-pool player with a 65-69 primary
// rating, weaker secondaries, and a 1-in-20 nickname.
func (s *Seeder) randomPlayer(position models.Position, state models.PlayerState, used map[string]bool) *models.Player {
	primary := s.roller.Intn(5) + 65
	secondary := func() int {
		v := int(float64(primary) * (0.6 + s.roller.Float64()*0.25))
		if v < 60 {
			return 60
		}
		return v
	}

	p := &models.Player{
		ID:        s.uuider.NewUUID(),
		Name:      s.names.Generate(used),
		Position:  position,
		State:     state,
		Potential: s.genesisPotential(),
		Age:       s.roller.Intn(4) + 17,
	}

	switch position {
	case models.PositionForward:
		p.ForwardRating = primary
		p.DefenderRating = secondary()
		p.GoalieRating = secondary()
	case models.PositionDefender:
		p.DefenderRating = primary
		p.ForwardRating = secondary()
		p.GoalieRating = secondary()
	default:
		p.GoalieRating = primary
		p.ForwardRating = secondary()
		p.DefenderRating = secondary()
	}
	p.Overall = overallFor(position, p.ForwardRating, p.DefenderRating, p.GoalieRating)

	if s.roller.Intn(20) == 0 {
		p.Nickname = s.names.Nickname()
	}

	return p
}

// Teams builds the six franchises with their opening rosters, running
// the bench auto-swap on each.
func (s *Seeder) Teams() []*models.Team {
	teams := make([]*models.Team, 0, len(TeamNames))
	for _, teamName := range TeamNames {
		spec := initialRosters[teamName]
		teamID := s.uuider.NewUUID()

		team := &models.Team{
			ID:   teamID,
			Name: teamName,
			ActivePlayers: []*models.Player{
				s.specificPlayer(spec.forward, models.PositionForward, models.PlayerStateActive, teamID),
				s.specificPlayer(spec.goalie, models.PositionGoalie, models.PlayerStateActive, teamID),
				s.specificPlayer(spec.defender, models.PositionDefender, models.PlayerStateActive, teamID),
			},
		}

		bench := s.specificPlayer(spec.bench, spec.bench.position, models.PlayerStateBench, teamID)
		team.BenchPlayer = bench

		roster.AutoSwapBenchWithActive(team)
		teams = append(teams, team)
	}
	return teams
}

type scriptedAgent struct {
	name     string
	position models.Position
	forward  int
	defender int
	goalie   int
}

var scriptedFreeAgents = []scriptedAgent{
	{name: "Jarrett Hissick", position: models.PositionDefender, forward: 62, defender: 70, goalie: 63},
	{name: "Jar of Peanut Butter", position: models.PositionGoalie, forward: 1, defender: 1, goalie: 2},
	{name: "Yiannis Bagtzoglou", position: models.PositionGoalie, forward: 62, defender: 60, goalie: 69},
	{name: "Christos Bagtzoglou", position: models.PositionDefender, forward: 62, defender: 69, goalie: 60},
	{name: "Kyle Kulthau", position: models.PositionForward, forward: 68, defender: 60, goalie: 60},
	{name: "Quinn Donahue", position: models.PositionDefender, forward: 63, defender: 67, goalie: 65},
	{name: "Darren Barille", position: models.PositionForward, forward: 57, defender: 52, goalie: 55},
	{name: "Aaron Narine", position: models.PositionForward, forward: 55, defender: 55, goalie: 55},
	{name: "Tim Winters", position: models.PositionGoalie, forward: 55, defender: 57, goalie: 62},
}

// FreeAgents builds the scripted opening free agent class plus one
// random extra. Jar of Peanut Butter never ages out and only hits Star
// potential one seed in thirty; Eric Sudhoff tracks Tim Winters one
// rating point behind and retires with him.
func (s *Seeder) FreeAgents(used map[string]bool) []*models.Player {
	agents := make([]*models.Player, 0, len(scriptedFreeAgents)+2)

	var timWinters *models.Player
	for _, spec := range scriptedFreeAgents {
		p := s.specificPlayer(rosterEntry{
			name: spec.name, forward: spec.forward, defender: spec.defender, goalie: spec.goalie,
		}, spec.position, models.PlayerStateFreeAgent, "")

		if spec.name == "Jar of Peanut Butter" {
			if s.roller.Intn(30) < 1 {
				p.Potential = models.PotentialStar
			} else {
				p.Potential = models.PotentialBust
			}
			p.Modifiers = models.PlayerModifiers{
				AgePenaltyImmune:      true,
				ScriptedRetirementAge: 100,
			}
		}
		if spec.name == "Tim Winters" {
			timWinters = p
		}

		used[p.Name] = true
		agents = append(agents, p)
	}

	suddy := s.specificPlayer(rosterEntry{
		name: "Eric Sudhoff", forward: 54, defender: 56, goalie: 61,
	}, models.PositionGoalie, models.PlayerStateFreeAgent, "")
	suddy.Nickname = "Suddy"
	suddy.Potential = models.PotentialBust
	suddy.Modifiers = models.PlayerModifiers{
		LinkedPlayerID:     timWinters.ID,
		LinkedRatingOffset: -1,
		RetiresWithLinked:  true,
	}
	used[suddy.Name] = true
	agents = append(agents, suddy)

	position := models.Positions[s.roller.Intn(len(models.Positions))]
	agents = append(agents, s.randomPlayer(position, models.PlayerStateFreeAgent, used))

	return agents
}

// League builds a complete opening-day league, schedule excluded.
func (s *Seeder) League(id string) *models.League {
	now := s.clock.Now()

	teams := s.Teams()
	used := map[string]bool{}
	for _, team := range teams {
		for _, p := range team.Roster() {
			used[p.Name] = true
		}
	}
	freeAgents := s.FreeAgents(used)

	return &models.League{
		ID:          id,
		CurrentYear: StartYear,
		GameDate:    time.Date(StartYear, time.January, 1, 0, 0, 0, 0, time.UTC),
		Teams:       teams,
		FreeAgents:  freeAgents,
		FeedPosts: []*models.FeedPost{
			{
				ID:        s.uuider.NewUUID(),
				Analyst:   "@dj_devy_dev",
				Content:   "Hello and Welcome to GKHA 2026!",
				Timestamp: now,
				Type:      models.PostTypeOther,
			},
			{
				ID:        s.uuider.NewUUID(),
				Analyst:   "@GKHAinside",
				Content:   "Who's excited for some knockey!?",
				Timestamp: now.Add(time.Millisecond),
				Type:      models.PostTypeOther,
			},
		},
		Achievements: achievements.Catalog(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
