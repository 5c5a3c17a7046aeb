// Package feed writes the analyst posts that narrate the league: game
// results, injuries, roster churn, milestones and Hall of Fame news.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/models"
)

// Analysts is the rotating byline pool for regular posts
var Analysts = []string{
	"@CoachWoof",
	"@CrumbRingFandom",
	"@RinkReporter",
	"@richlevy19",
	"@arman_cabral",
	"@kevincarnale",
	"@GKHAOfficial",
	"@GKHAinside",
}

// AchievementAnalyst bylines every achievement and Hall of Fame post
const AchievementAnalyst = "@dj_devy_dev"

// Service builds feed posts
type Service struct {
	roller dice.Roller
	uuider uuid.UUID
}

// Config holds Service dependencies
type Config struct {
	Roller dice.Roller
	UUID   uuid.UUID
}

// New creates a feed service
func New(cfg *Config) *Service {
	return &Service{
		roller: cfg.Roller,
		uuider: cfg.UUID,
	}
}

func (s *Service) analyst() string {
	return Analysts[s.roller.Intn(len(Analysts))]
}

func (s *Service) pick(messages []string) string {
	return messages[s.roller.Intn(len(messages))]
}

// timestamp places the post in a random afternoon slot on the game day
func (s *Service) timestamp(date time.Time) time.Time {
	hour := s.roller.Intn(6) + 12
	minute := s.roller.Intn(60)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func (s *Service) post(analyst, content string, date time.Time, postType models.PostType) *models.FeedPost {
	return &models.FeedPost{
		ID:        s.uuider.NewUUID(),
		Analyst:   analyst,
		Content:   content,
		Timestamp: s.timestamp(date),
		Type:      postType,
	}
}

func overtimeSuffix(overtime bool, long bool) string {
	if !overtime {
		return ""
	}
	if long {
		return " in overtime"
	}
	return " (OT)"
}

// GameResult announces a final score.
func (s *Service) GameResult(game *models.Game, homeTeam, awayTeam *models.Team, date time.Time) *models.FeedPost {
	winner, loser := homeTeam, awayTeam
	if game.AwayScore > game.HomeScore {
		winner, loser = awayTeam, homeTeam
	}

	shortOT := ""
	if game.Overtime {
		shortOT = " in OT"
	}

	messages := []string{
		fmt.Sprintf("%s defeats %s %d-%d%s! What a game!", winner.Name, loser.Name, game.HomeScore, game.AwayScore, overtimeSuffix(game.Overtime, true)),
		fmt.Sprintf("Final score: %s %d, %s %d%s. %s takes the W!", homeTeam.Name, game.HomeScore, awayTeam.Name, game.AwayScore, overtimeSuffix(game.Overtime, false), winner.Name),
		fmt.Sprintf("%s comes out on top against %s, %d-%d%s!", winner.Name, loser.Name, game.HomeScore, game.AwayScore, shortOT),
		fmt.Sprintf("Game over at %s! %s %d, %s %d. %s wins!", game.Venue, homeTeam.Name, game.HomeScore, awayTeam.Name, game.AwayScore, winner.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeGameResult)
}

// Injury reports a player going down.
func (s *Service) Injury(player *models.Player, team *models.Team, description string, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("Breaking: %s of the %s suffers %s. Day-to-day.", player.Name, team.Name, description),
		fmt.Sprintf("Injury update: %s %s %s out with %s.", team.Name, player.Position, player.Name, description),
		fmt.Sprintf("Tough break for %s. %s injured (%s).", team.Name, player.Name, description),
		fmt.Sprintf("%s leaves the ice with %s. %s hoping for a quick recovery.", player.Name, description, team.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeInjury)
}

// Signing announces a free agent pickup.
func (s *Service) Signing(player *models.Player, team *models.Team, date time.Time) *models.FeedPost {
	name := player.DisplayName()
	messages := []string{
		fmt.Sprintf("%s signs %s %s (%d OVR). Solid pickup!", team.Name, player.Position, name, player.Overall),
		fmt.Sprintf("Roster move: %s adds %s to the squad. %s, %d overall.", team.Name, name, player.Position, player.Overall),
		fmt.Sprintf("%s joins %s! The %s brings a %d overall rating.", name, team.Name, player.Position, player.Overall),
		fmt.Sprintf("Breaking: %s signs free agent %s (%s, %d OVR).", team.Name, name, player.Position, player.Overall),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

// Release announces a player being dropped to free agency.
func (s *Service) Release(player *models.Player, team *models.Team, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("%s releases %s. The %s hits free agency.", team.Name, player.Name, player.Position),
		fmt.Sprintf("Roster move: %s parts ways with %s.", team.Name, player.Name),
		fmt.Sprintf("%s no longer with %s. Free agent market gets another option.", player.Name, team.Name),
		fmt.Sprintf("%s drops %s from the roster. Making room for upgrades?", team.Name, player.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

// MovedToIR announces an IR placement.
func (s *Service) MovedToIR(player *models.Player, team *models.Team, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("%s places %s on IR. Tough loss for the %s.", team.Name, player.Name, team.Name),
		fmt.Sprintf("Injury reserve: %s moved to IR by %s.", player.Name, team.Name),
		fmt.Sprintf("%s to IR. %s will need to find a replacement.", player.Name, team.Name),
		fmt.Sprintf("%s moves injured %s %s to injury reserve.", team.Name, player.Position, player.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

// SeasonStart kicks off a new year.
func (s *Service) SeasonStart(year int, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("The %d GKHA season is underway! Let's see who takes home the championship!", year),
		fmt.Sprintf("Welcome to the %d season! 6 teams, 1 champion. Who's it gonna be?", year),
		fmt.Sprintf("%d GKHA season tips off! Time to knee some pucks!", year),
		fmt.Sprintf("New season, new dreams! %d GKHA action starts now!", year),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeOther)
}

// PlayoffsStart announces the bracket.
func (s *Service) PlayoffsStart(teams []*models.Team, date time.Time) *models.FeedPost {
	teamNames := make([]string, 0, len(teams))
	for _, t := range teams {
		teamNames = append(teamNames, t.Name)
	}
	joined := strings.Join(teamNames, ", ")

	messages := []string{
		fmt.Sprintf("Playoffs begin! Top 4 teams: %s. Who will be crowned champion?", joined),
		fmt.Sprintf("The playoffs are here! %s battle for the title!", joined),
		fmt.Sprintf("Postseason time! %s are your playoff teams!", joined),
		fmt.Sprintf("Championship hunt begins! %s advance to the playoffs!", joined),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeOther)
}

// Championship crowns the winner.
func (s *Service) Championship(champion *models.Team, year int, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("🏆 %s are your %d GKHA Champions! What a season!", champion.Name, year),
		fmt.Sprintf("Champions! %s win the %d GKHA title!", champion.Name, year),
		fmt.Sprintf("%s capture the %d championship! Incredible!", champion.Name, year),
		fmt.Sprintf("Your %d GKHA Champions: %s! 🏆", year, champion.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeOther)
}

// Retirement sends a player off.
func (s *Service) Retirement(player *models.Player, date time.Time) *models.FeedPost {
	name := player.DisplayName()
	career := player.CareerStats
	messages := []string{
		fmt.Sprintf("%s announces retirement. %d games, %d points. What a career!", name, career.GamesPlayed, career.Points),
		fmt.Sprintf("End of an era: %s retires from the GKHA. %d career points.", name, career.Points),
		fmt.Sprintf("%s hangs up the stick. Career: %d GP, %d G, %d A.", name, career.GamesPlayed, career.Goals, career.Assists),
		fmt.Sprintf("Retirement: %s calls it a career after %d games. Respect!", name, career.GamesPlayed),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRetirement)
}

// IRReturnToActive announces a healed player reclaiming a lineup spot.
func (s *Service) IRReturnToActive(player *models.Player, team *models.Team, benched *models.Player, date time.Time) *models.FeedPost {
	name := player.DisplayName()
	benchedName := benched.DisplayName()
	messages := []string{
		fmt.Sprintf("%s returns from IR and takes back their spot in %s's active lineup! %s moves to bench.", name, team.Name, benchedName),
		fmt.Sprintf("Healthy and ready! %s (%d OVR) back in action for %s. %s to the bench.", name, player.Overall, team.Name, benchedName),
		fmt.Sprintf("%s activates %s from IR. %s heads to the bench.", team.Name, name, benchedName),
		fmt.Sprintf("Welcome back! %s returns from injury and rejoins %s's active roster.", name, team.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

// IRReturnToBench announces a healed player returning to the bench.
func (s *Service) IRReturnToBench(player *models.Player, team *models.Team, date time.Time) *models.FeedPost {
	name := player.DisplayName()
	messages := []string{
		fmt.Sprintf("%s returns from IR to %s's bench. Good to have them back!", name, team.Name),
		fmt.Sprintf("%s activates %s from IR to the bench. Depth restored!", team.Name, name),
		fmt.Sprintf("Healthy again! %s rejoins %s on the bench.", name, team.Name),
		fmt.Sprintf("%s (%d OVR) back from injury, heads to %s's bench.", name, player.Overall, team.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

func gamesWord(games int) string {
	if games == 1 {
		return "game"
	}
	return "games"
}

// Suspension announces league discipline.
func (s *Service) Suspension(player *models.Player, team *models.Team, reason string, games int, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("Breaking: %s %s %s suspended %d %s for %s.", team.Name, player.Position, player.Name, games, gamesWord(games), reason),
		fmt.Sprintf("Discipline: %s receives %d-game suspension for %s. Big loss for %s.", player.Name, games, reason, team.Name),
		fmt.Sprintf("%s suspended! The %s %s sits %d %s (%s).", player.Name, team.Name, player.Position, games, gamesWord(games), reason),
		fmt.Sprintf("League announces: %s of %s suspended %d %s for %s.", player.Name, team.Name, games, gamesWord(games), reason),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeSuspension)
}

// MovedToSuspended announces the roster move that follows a suspension.
func (s *Service) MovedToSuspended(player *models.Player, team *models.Team, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("%s moves %s to suspension list. Time to find a replacement.", team.Name, player.Name),
		fmt.Sprintf("%s to suspension list. %s will need to adjust their lineup.", player.Name, team.Name),
		fmt.Sprintf("%s places %s %s on suspension list.", team.Name, player.Position, player.Name),
		fmt.Sprintf("Roster move: %s moved to %s's suspension list.", player.Name, team.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

// SuspensionReturnToActive announces a served suspension and a reclaimed
// lineup spot.
func (s *Service) SuspensionReturnToActive(player *models.Player, team *models.Team, benched *models.Player, date time.Time) *models.FeedPost {
	name := player.DisplayName()
	benchedName := benched.DisplayName()
	messages := []string{
		fmt.Sprintf("%s returns from suspension and takes back their spot in %s's active lineup! %s moves to bench.", name, team.Name, benchedName),
		fmt.Sprintf("Suspension served! %s (%d OVR) back in action for %s. %s to the bench.", name, player.Overall, team.Name, benchedName),
		fmt.Sprintf("%s activates %s from suspension. %s heads to the bench.", team.Name, name, benchedName),
		fmt.Sprintf("Welcome back! %s returns from suspension and rejoins %s's active roster.", name, team.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

// SuspensionReturnToBench announces a served suspension ending on the
// bench.
func (s *Service) SuspensionReturnToBench(player *models.Player, team *models.Team, date time.Time) *models.FeedPost {
	name := player.DisplayName()
	messages := []string{
		fmt.Sprintf("%s returns from suspension to %s's bench. Served their time!", name, team.Name),
		fmt.Sprintf("%s activates %s from suspension to the bench. Depth restored!", team.Name, name),
		fmt.Sprintf("Suspension complete! %s rejoins %s on the bench.", name, team.Name),
		fmt.Sprintf("%s (%d OVR) back from suspension, heads to %s's bench.", name, player.Overall, team.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

// PositionSwitch announces a player changing positions.
func (s *Service) PositionSwitch(player *models.Player, team *models.Team, oldPosition, newPosition models.Position, date time.Time) *models.FeedPost {
	name := player.DisplayName()
	messages := []string{
		fmt.Sprintf("%s moves %s from %s to %s. New overall: %d. Versatility!", team.Name, name, oldPosition, newPosition, player.Overall),
		fmt.Sprintf("Position change: %s switches from %s to %s for %s. (%d OVR)", name, oldPosition, newPosition, team.Name, player.Overall),
		fmt.Sprintf("%s makes the position switch! Now playing %s for %s (%d OVR).", name, newPosition, team.Name, player.Overall),
		fmt.Sprintf("%s utilizes %s's versatility, switching from %s to %s. %d overall.", team.Name, name, oldPosition, newPosition, player.Overall),
		fmt.Sprintf("Roster flexibility! %s transitions from %s to %s for %s.", name, oldPosition, newPosition, team.Name),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeRosterMove)
}

// NewFreeAgent announces a prospect entering the pool.
func (s *Service) NewFreeAgent(player *models.Player, date time.Time) *models.FeedPost {
	name := player.DisplayName()
	messages := []string{
		fmt.Sprintf("New talent alert! %s %s (%d OVR) enters the free agent pool. Who will sign them?", player.Position, name, player.Overall),
		fmt.Sprintf("Fresh blood in the GKHA! %s is now available as a free agent. %s, %d overall.", name, player.Position, player.Overall),
		fmt.Sprintf("%s joins the free agent market! The %s brings a %d overall rating.", name, player.Position, player.Overall),
		fmt.Sprintf("Breaking: New %s %s (%d OVR) available for signing. Teams, make your move!", player.Position, name, player.Overall),
		fmt.Sprintf("League expansion! %s (%s, %d OVR) is now a free agent. Who's gonna snag this talent?", name, player.Position, player.Overall),
	}

	return s.post(s.analyst(), s.pick(messages), date, models.PostTypeOther)
}

// AchievementUnlocked celebrates an unlock under the dedicated analyst.
func (s *Service) AchievementUnlocked(achievement *models.Achievement, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("Achievement Unlocked: %s! %s", achievement.Title, achievement.Description),
		fmt.Sprintf("Milestone reached! %s - %s", achievement.Title, achievement.Description),
		fmt.Sprintf("Congratulations! You've unlocked: %s. %s", achievement.Title, achievement.Description),
		fmt.Sprintf("New Achievement! %s: %s", achievement.Title, achievement.Description),
	}

	post := s.post(AchievementAnalyst, s.pick(messages), date, models.PostTypeAchievement)
	post.IsAchievement = true
	return post
}

// HallOfFameInduction announces the year's inductee.
func (s *Service) HallOfFameInduction(inductee *models.HallOfFameInductee, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("BREAKING: %s has been inducted into the Hall of Fame! With a legacy score of %d, the legendary %s will be remembered forever.", inductee.PlayerName, inductee.LegacyScore, inductee.Position),
		fmt.Sprintf("HISTORIC MOMENT: %s joins the Hall of Fame! The %s amassed %d legacy points over %d seasons. A true legend of the game.", inductee.PlayerName, inductee.Position, inductee.LegacyScore, inductee.YearsOfExperience),
		fmt.Sprintf("Hall of Fame Class of %d: %s! The %s enters immortality with %d legacy points. Congratulations to a hockey legend!", inductee.InductionYear, inductee.PlayerName, inductee.Position, inductee.LegacyScore),
		fmt.Sprintf("It's official! %s has been enshrined in the Hall of Fame with %d legacy points. The %s's %d-year career will never be forgotten.", inductee.PlayerName, inductee.LegacyScore, inductee.Position, inductee.YearsOfExperience),
	}

	return s.post(AchievementAnalyst, s.pick(messages), date, models.PostTypeHallOfFame)
}

// HallOfFameNoInduction announces an empty class.
func (s *Service) HallOfFameNoInduction(year int, date time.Time) *models.FeedPost {
	messages := []string{
		fmt.Sprintf("Hall of Fame Class of %d: No inductees this year. While we saw some great careers come to an end, none were quite legendary enough for enshrinement.", year),
		"The Hall of Fame will not be adding any new members this year. The voting committee has determined that no recently retired players have earned induction at this time.",
		fmt.Sprintf("Hall of Fame announcement: The %d class will remain empty. No retired players met the criteria for induction this year.", year),
		fmt.Sprintf("No new Hall of Famers in %d. The committee evaluated all recently retired players but none were selected for enshrinement at this time.", year),
	}

	return s.post(AchievementAnalyst, s.pick(messages), date, models.PostTypeHallOfFame)
}
