package league

import (
	"context"
	"errors"
	"time"

	"github.com/gkha/league/internal/achievements"
	"github.com/gkha/league/internal/common/clock"
	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/playoffs"
	leaguerepo "github.com/gkha/league/internal/repositories/league"
	"github.com/gkha/league/internal/roster"
	"github.com/gkha/league/internal/schedule"
	"github.com/gkha/league/internal/season"
	"github.com/gkha/league/internal/seed"
	feedsvc "github.com/gkha/league/internal/services/feed"
	"github.com/gkha/league/internal/sim"
	"github.com/gkha/league/internal/standings"
)

// Define errors
var (
	ErrNilConfig           = errors.New("config cannot be nil")
	ErrNilRepository       = errors.New("repository cannot be nil")
	ErrNilSimEngine        = errors.New("sim engine cannot be nil")
	ErrNilSeasonEngine     = errors.New("season engine cannot be nil")
	ErrNilSeeder           = errors.New("seeder cannot be nil")
	ErrNilScheduler        = errors.New("schedule generator cannot be nil")
	ErrNilFeed             = errors.New("feed service cannot be nil")
	ErrNilUUIDGenerator    = errors.New("uuid generator cannot be nil")
	ErrNilClock            = errors.New("clock cannot be nil")
	ErrLeagueAlreadyExists = errors.New("league already exists")
	ErrTeamNotFound        = errors.New("team not found")
	ErrSeasonComplete      = errors.New("regular season is complete")
	ErrSeasonNotComplete   = errors.New("regular season is not complete")
	ErrPlayoffsStarted     = errors.New("playoffs already started")
	ErrPlayoffsNotStarted  = errors.New("playoffs have not started")
	ErrPlayoffsComplete    = errors.New("playoffs are complete")
	ErrPlayoffsNotComplete = errors.New("playoffs are not complete")
)

// service implements the Service interface
type service struct {
	repo      leaguerepo.Repository
	simEngine *sim.Engine
	seasons   *season.Engine
	seeder    *seed.Seeder
	scheduler *schedule.Generator
	feed      *feedsvc.Service
	uuider    uuid.UUID
	clock     clock.Clock
}

// Config holds service dependencies
type Config struct {
	Repository   leaguerepo.Repository
	SimEngine    *sim.Engine
	SeasonEngine *season.Engine
	Seeder       *seed.Seeder
	Scheduler    *schedule.Generator
	Feed         *feedsvc.Service
	UUID         uuid.UUID
	Clock        clock.Clock
}

// New creates a new league service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.SimEngine == nil {
		return nil, ErrNilSimEngine
	}
	if cfg.SeasonEngine == nil {
		return nil, ErrNilSeasonEngine
	}
	if cfg.Seeder == nil {
		return nil, ErrNilSeeder
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.Feed == nil {
		return nil, ErrNilFeed
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		repo:      cfg.Repository,
		simEngine: cfg.SimEngine,
		seasons:   cfg.SeasonEngine,
		seeder:    cfg.Seeder,
		scheduler: cfg.Scheduler,
		feed:      cfg.Feed,
		uuider:    cfg.UUID,
		clock:     cfg.Clock,
	}, nil
}

func (s *service) load(ctx context.Context, leagueID string) (*models.League, error) {
	return s.repo.GetLeague(ctx, &leaguerepo.GetLeagueInput{
		LeagueID: leagueID,
	})
}

func (s *service) save(ctx context.Context, league *models.League) error {
	league.UpdatedAt = s.clock.Now()
	return s.repo.SaveLeague(ctx, &leaguerepo.SaveLeagueInput{
		League: league,
	})
}

// addPost prepends a post, the feed is newest first.
func addPost(league *models.League, post *models.FeedPost) {
	league.FeedPosts = append([]*models.FeedPost{post}, league.FeedPosts...)
}

// postUnlocks writes one achievement post per newly unlocked entry.
func (s *service) postUnlocks(league *models.League, unlocked []*models.Achievement, date time.Time) {
	for _, a := range unlocked {
		addPost(league, s.feed.AchievementUnlocked(a, date))
	}
}

// CreateLeague bootstraps a brand new league: seeded rosters, the
// scripted free agent class, a full schedule, and the welcome posts.
func (s *service) CreateLeague(ctx context.Context, input *CreateLeagueInput) (*CreateLeagueOutput, error) {
	leagueID := input.LeagueID
	if leagueID == "" {
		leagueID = s.uuider.NewUUID()
	}

	existing, err := s.load(ctx, leagueID)
	if err == nil && existing != nil {
		return nil, ErrLeagueAlreadyExists
	}
	if err != nil && !errors.Is(err, leaguerepo.ErrLeagueNotFound) {
		return nil, err
	}

	league := s.seeder.League(leagueID)
	league.Games = s.scheduler.Generate(league.Teams, league.CurrentYear)

	if err := s.save(ctx, league); err != nil {
		return nil, err
	}

	return &CreateLeagueOutput{League: league}, nil
}

// GetLeague retrieves a league by ID
func (s *service) GetLeague(ctx context.Context, input *GetLeagueInput) (*GetLeagueOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	return &GetLeagueOutput{League: league}, nil
}

// ListLeagues retrieves every saved league ID
func (s *service) ListLeagues(ctx context.Context, input *ListLeaguesInput) (*ListLeaguesOutput, error) {
	out, err := s.repo.ListLeagues(ctx, &leaguerepo.ListLeaguesInput{})
	if err != nil {
		return nil, err
	}
	return &ListLeaguesOutput{LeagueIDs: out.LeagueIDs}, nil
}

// applyTeamRecords updates the standings counters for a finished
// regular season game. The winner takes 2 points, an overtime loser
// keeps 1.
func applyTeamRecords(game *models.Game, home, away *models.Team) {
	home.GamesPlayed++
	away.GamesPlayed++
	home.GoalsFor += game.HomeScore
	home.GoalsAgainst += game.AwayScore
	away.GoalsFor += game.AwayScore
	away.GoalsAgainst += game.HomeScore

	winner, loser := home, away
	if game.AwayScore > game.HomeScore {
		winner, loser = away, home
	}

	winner.Wins++
	winner.Points += 2
	if game.Overtime {
		loser.OvertimeLosses++
		loser.Points++
	} else {
		loser.Losses++
	}
}

// applyGameLegacy awards franchise legacy for single-game feats: a
// seven goal outburst or a shutout.
func applyGameLegacy(game *models.Game, home, away *models.Team) {
	if game.HomeScore >= 7 {
		home.Legacy++
	}
	if game.AwayScore >= 7 {
		away.Legacy++
	}
	if game.AwayScore == 0 {
		home.Legacy++
	}
	if game.HomeScore == 0 {
		away.Legacy++
	}
}

func findPlayer(players []*models.Player, id string) *models.Player {
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// fillVacancy repairs a single missing lineup slot and posts the
// resulting signing and position switch.
func (s *service) fillVacancy(league *models.League, team *models.Team, date time.Time) {
	missing, ok := roster.MissingPosition(team)
	if !ok {
		return
	}

	fill := roster.AutoFillMissingPosition(team, &league.FreeAgents, missing)
	if !fill.Filled {
		return
	}

	s.postFill(league, fill, date)
}

func (s *service) postFill(league *models.League, fill roster.FillResult, date time.Time) {
	if fill.Signed != nil {
		addPost(league, s.feed.Signing(fill.Signed, fill.Team, date))
	}
	if fill.PositionSwitched {
		addPost(league, s.feed.PositionSwitch(fill.Player, fill.Team, fill.OldPosition, fill.NewPosition, date))
	}
}

func (s *service) processInjuries(league *models.League, game *models.Game, teams ...*models.Team) {
	for _, team := range teams {
		for _, injury := range s.simEngine.CheckForInjuries(team.ActivePlayers) {
			player := findPlayer(team.ActivePlayers, injury.PlayerID)
			if player == nil {
				continue
			}

			addPost(league, s.feed.Injury(player, team, injury.Description, game.Date))

			roster.MoveToIR(team, player, injury.DaysRemaining)
			tracked := injury
			league.Injuries = append(league.Injuries, &tracked)
			addPost(league, s.feed.MovedToIR(player, team, game.Date))

			s.fillVacancy(league, team, game.Date)
		}
	}
}

func (s *service) processSuspensions(league *models.League, game *models.Game, teams ...*models.Team) {
	for _, team := range teams {
		for _, suspension := range s.simEngine.CheckForSuspensions(team.ActivePlayers) {
			player := findPlayer(team.ActivePlayers, suspension.PlayerID)
			if player == nil {
				continue
			}

			addPost(league, s.feed.Suspension(player, team, suspension.Reason, suspension.GamesRemaining, game.Date))

			roster.MoveToSuspended(team, player, suspension.GamesRemaining)
			tracked := suspension
			league.Suspensions = append(league.Suspensions, &tracked)
			addPost(league, s.feed.MovedToSuspended(player, team, game.Date))

			s.fillVacancy(league, team, game.Date)
		}
	}
}

// decrementCountdowns ticks every IR day and suspension game across
// the league and drops finished entries from the tracking lists.
func decrementCountdowns(league *models.League) {
	for _, team := range league.Teams {
		for _, p := range team.IRPlayers {
			if p.InjuryDaysRemaining > 0 {
				p.InjuryDaysRemaining--
			}
		}
		for _, p := range team.SuspendedPlayers {
			if p.SuspensionGamesRemaining > 0 {
				p.SuspensionGamesRemaining--
			}
		}
	}

	var injuries []*models.Injury
	for _, injury := range league.Injuries {
		injury.DaysRemaining--
		if injury.DaysRemaining > 0 {
			injuries = append(injuries, injury)
		}
	}
	league.Injuries = injuries

	var suspensions []*models.Suspension
	for _, suspension := range league.Suspensions {
		suspension.GamesRemaining--
		if suspension.GamesRemaining > 0 {
			suspensions = append(suspensions, suspension)
		}
	}
	league.Suspensions = suspensions
}

func (s *service) postReturn(league *models.League, result roster.ReturnResult, date time.Time, fromSuspension bool) {
	switch result.Action {
	case roster.ReturnToActive:
		if fromSuspension {
			addPost(league, s.feed.SuspensionReturnToActive(result.Player, result.Team, result.Benched, date))
		} else {
			addPost(league, s.feed.IRReturnToActive(result.Player, result.Team, result.Benched, date))
		}
		if result.Dropped != nil {
			addPost(league, s.feed.Release(result.Dropped, result.Team, date))
		}
	case roster.ReturnToBench:
		if fromSuspension {
			addPost(league, s.feed.SuspensionReturnToBench(result.Player, result.Team, date))
		} else {
			addPost(league, s.feed.IRReturnToBench(result.Player, result.Team, date))
		}
		if result.Dropped != nil {
			addPost(league, s.feed.Release(result.Dropped, result.Team, date))
		}
	case roster.ReturnDropped:
		addPost(league, s.feed.Release(result.Player, result.Team, date))
	}
}

func (s *service) processReturns(league *models.League, date time.Time) {
	for _, result := range roster.DrainSuspensionReturns(league.Teams, &league.FreeAgents) {
		s.postReturn(league, result, date, true)
	}
	for _, result := range roster.DrainIRReturns(league.Teams, &league.FreeAgents) {
		s.postReturn(league, result, date, false)
	}
}

// playRegularSeasonGame runs the full commit cascade for one game.
// Final games are silently skipped so a replay cannot double-count.
func (s *service) playRegularSeasonGame(league *models.League, game *models.Game) error {
	if game.Status == models.GameStatusFinal {
		return nil
	}

	home := league.Team(game.HomeTeamID)
	away := league.Team(game.AwayTeamID)
	if home == nil || away == nil {
		return ErrTeamNotFound
	}

	result := s.simEngine.DetermineWinner(home, away)
	game.HomeScore = result.HomeScore
	game.AwayScore = result.AwayScore
	game.Overtime = result.Overtime
	game.Events = s.simEngine.GenerateGameEvents(game, home, away, result.HomeScore, result.AwayScore)
	game.Status = models.GameStatusFinal

	participants := make([]*models.Player, 0, len(home.ActivePlayers)+len(away.ActivePlayers))
	participants = append(participants, home.ActivePlayers...)
	participants = append(participants, away.ActivePlayers...)
	s.simEngine.UpdatePlayerStats(participants, game.Events)

	s.postUnlocks(league, achievements.CheckPlayerStats(standings.AllPlayers(league.Teams), league.Achievements, game.Date), game.Date)

	applyTeamRecords(game, home, away)
	applyGameLegacy(game, home, away)

	s.processInjuries(league, game, home, away)
	s.processSuspensions(league, game, home, away)

	s.postUnlocks(league, achievements.CheckGame(game, league.Achievements, game.Date), game.Date)
	addPost(league, s.feed.GameResult(game, home, away, game.Date))

	decrementCountdowns(league)
	s.processReturns(league, game.Date)

	for _, fill := range roster.ValidateAndFixAllTeamRosters(league.Teams, &league.FreeAgents) {
		s.postFill(league, fill, game.Date)
	}

	if !league.SeasonComplete && schedule.SeasonComplete(league.Games) {
		league.SeasonComplete = true
		s.postUnlocks(league, achievements.CheckSeasonEnd(league.Teams, league.Achievements, game.Date), game.Date)
	}

	if next := schedule.NextScheduledGame(league.Games); next != nil {
		league.GameDate = next.Date
	} else {
		league.GameDate = game.Date
	}

	return nil
}

// SimulateNextGame plays the next scheduled regular season game
func (s *service) SimulateNextGame(ctx context.Context, input *SimulateNextGameInput) (*SimulateNextGameOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	game := schedule.NextScheduledGame(league.Games)
	if game == nil {
		return nil, ErrSeasonComplete
	}

	if err := s.playRegularSeasonGame(league, game); err != nil {
		return nil, err
	}

	if err := s.save(ctx, league); err != nil {
		return nil, err
	}

	return &SimulateNextGameOutput{Game: game, League: league}, nil
}

// SimulateGames plays up to Count regular season games
func (s *service) SimulateGames(ctx context.Context, input *SimulateGamesInput) (*SimulateGamesOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	var played []*models.Game
	for i := 0; i < input.Count; i++ {
		game := schedule.NextScheduledGame(league.Games)
		if game == nil {
			break
		}
		if err := s.playRegularSeasonGame(league, game); err != nil {
			return nil, err
		}
		played = append(played, game)
	}

	if len(played) == 0 {
		return nil, ErrSeasonComplete
	}

	if err := s.save(ctx, league); err != nil {
		return nil, err
	}

	return &SimulateGamesOutput{Games: played, League: league}, nil
}

// SimulateSeason plays every remaining regular season game
func (s *service) SimulateSeason(ctx context.Context, input *SimulateSeasonInput) (*SimulateSeasonOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	played := 0
	for {
		game := schedule.NextScheduledGame(league.Games)
		if game == nil {
			break
		}
		if err := s.playRegularSeasonGame(league, game); err != nil {
			return nil, err
		}
		played++
	}

	if err := s.save(ctx, league); err != nil {
		return nil, err
	}

	return &SimulateSeasonOutput{GamesPlayed: played, League: league}, nil
}

// StartPlayoffs seeds the bracket once the season is complete
func (s *service) StartPlayoffs(ctx context.Context, input *StartPlayoffsInput) (*StartPlayoffsOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	if !league.SeasonComplete {
		return nil, ErrSeasonNotComplete
	}
	if league.PlayoffsStarted {
		return nil, ErrPlayoffsStarted
	}

	bracket := playoffs.GenerateBracket(league.Teams)
	if bracket == nil {
		return nil, ErrSeasonNotComplete
	}

	for i, series := range bracket {
		opener := playoffs.SeriesOpener(series, playoffs.SemifinalStart(league.CurrentYear, i))
		league.Games = append(league.Games, opener)
	}
	league.PlayoffSeries = bracket
	league.PlayoffsStarted = true

	addPost(league, s.feed.PlayoffsStart(standings.PlayoffTeams(league.Teams), league.GameDate))
	league.GameDate = playoffs.SemifinalStart(league.CurrentYear, 0)

	if err := s.save(ctx, league); err != nil {
		return nil, err
	}

	return &StartPlayoffsOutput{Series: bracket, League: league}, nil
}

// seriesStart returns the date the series opened.
func seriesStart(league *models.League, series *models.PlayoffSeries) time.Time {
	for _, g := range league.Games {
		if g.SeriesID == series.ID && g.GameNumber == 1 {
			return g.Date
		}
	}
	return league.GameDate
}

// maybeCreateChampionship builds the final series once both
// semifinals are decided. Returns nil when it is not time yet or the
// final already exists.
func (s *service) maybeCreateChampionship(league *models.League) *models.PlayoffSeries {
	var semifinals []*models.PlayoffSeries
	for _, series := range league.PlayoffSeries {
		if series.Round == models.PlayoffRoundChampionship {
			return nil
		}
		if series.Round == models.PlayoffRoundSemifinal {
			semifinals = append(semifinals, series)
		}
	}

	championship := playoffs.CreateChampionship(semifinals, league.Teams)
	if championship == nil {
		return nil
	}

	league.PlayoffSeries = append(league.PlayoffSeries, championship)
	opener := playoffs.SeriesOpener(championship, playoffs.ChampionshipStart(league.CurrentYear))
	league.Games = append(league.Games, opener)

	return championship
}

// playPlayoffGame simulates the next available playoff game. Playoff
// games touch team goal totals, series state, and rosters, but never
// season records or individual stats.
func (s *service) playPlayoffGame(league *models.League) (*models.Game, *models.PlayoffSeries, error) {
	series := playoffs.NextAvailableSeries(league.PlayoffSeries, league.Games)
	if series == nil {
		series = s.maybeCreateChampionship(league)
		if series == nil {
			return nil, nil, ErrPlayoffsComplete
		}
	}

	game := playoffs.NextUnplayedGame(series.ID, league.Games)
	if game == nil {
		return nil, nil, ErrPlayoffsComplete
	}

	home := league.Team(game.HomeTeamID)
	away := league.Team(game.AwayTeamID)
	if home == nil || away == nil {
		return nil, nil, ErrTeamNotFound
	}

	result := s.simEngine.DetermineWinner(home, away)
	game.HomeScore = result.HomeScore
	game.AwayScore = result.AwayScore
	game.Overtime = result.Overtime
	game.Events = s.simEngine.GenerateGameEvents(game, home, away, result.HomeScore, result.AwayScore)
	game.Status = models.GameStatusFinal

	home.GoalsFor += game.HomeScore
	home.GoalsAgainst += game.AwayScore
	away.GoalsFor += game.AwayScore
	away.GoalsAgainst += game.HomeScore
	applyGameLegacy(game, home, away)

	winner := home
	if game.AwayScore > game.HomeScore {
		winner = away
	}
	playoffs.RecordSeriesWin(series, winner.ID)

	// rosters churn in the playoffs exactly as in the regular season,
	// individual stats do not accrue
	s.processInjuries(league, game, home, away)
	s.processSuspensions(league, game, home, away)

	addPost(league, s.feed.GameResult(game, home, away, game.Date))
	league.GameDate = game.Date

	decrementCountdowns(league)
	s.processReturns(league, game.Date)

	for _, fill := range roster.ValidateAndFixAllTeamRosters(league.Teams, &league.FreeAgents) {
		s.postFill(league, fill, game.Date)
	}

	if !series.Complete() {
		if next := playoffs.NextSeriesGame(series, seriesStart(league, series), league.Games); next != nil {
			league.Games = append(league.Games, next)
		}
		return game, series, nil
	}

	if series.Round == models.PlayoffRoundChampionship {
		addPost(league, s.feed.Championship(winner, league.CurrentYear, game.Date))
	} else {
		s.maybeCreateChampionship(league)
	}

	return game, series, nil
}

// SimulatePlayoffGame plays the next available playoff game
func (s *service) SimulatePlayoffGame(ctx context.Context, input *SimulatePlayoffGameInput) (*SimulatePlayoffGameOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	if !league.PlayoffsStarted {
		return nil, ErrPlayoffsNotStarted
	}
	if league.Champion() != "" {
		return nil, ErrPlayoffsComplete
	}

	game, series, err := s.playPlayoffGame(league)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, league); err != nil {
		return nil, err
	}

	return &SimulatePlayoffGameOutput{Game: game, Series: series, League: league}, nil
}

// SimulatePlayoffs plays playoff games until a champion is crowned
func (s *service) SimulatePlayoffs(ctx context.Context, input *SimulatePlayoffsInput) (*SimulatePlayoffsOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	if !league.PlayoffsStarted {
		return nil, ErrPlayoffsNotStarted
	}

	for league.Champion() == "" {
		if _, _, err := s.playPlayoffGame(league); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, league); err != nil {
		return nil, err
	}

	return &SimulatePlayoffsOutput{ChampionID: league.Champion(), League: league}, nil
}

// healInjuriesOver advances every injury countdown by the given number
// of offseason days.
func healInjuriesOver(league *models.League, days int) {
	if days <= 0 {
		return
	}

	for _, team := range league.Teams {
		for _, p := range team.IRPlayers {
			p.InjuryDaysRemaining -= days
			if p.InjuryDaysRemaining < 0 {
				p.InjuryDaysRemaining = 0
			}
		}
	}

	var injuries []*models.Injury
	for _, injury := range league.Injuries {
		injury.DaysRemaining -= days
		if injury.DaysRemaining > 0 {
			injuries = append(injuries, injury)
		}
	}
	league.Injuries = injuries
}

// AdvanceSeason runs the offseason once a champion is decided: legacy
// awards, aging, retirements, a new prospect class, development, the
// Hall of Fame vote, and a fresh schedule.
func (s *service) AdvanceSeason(ctx context.Context, input *AdvanceSeasonInput) (*AdvanceSeasonOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	championID := league.Champion()
	if championID == "" {
		return nil, ErrPlayoffsNotComplete
	}
	champion := league.Team(championID)
	if champion == nil {
		return nil, ErrTeamNotFound
	}

	var playoffTeamNames, finalistTeamNames []string
	for _, series := range league.PlayoffSeries {
		team1 := league.Team(series.Team1ID)
		team2 := league.Team(series.Team2ID)
		if team1 == nil || team2 == nil {
			continue
		}
		if series.Round == models.PlayoffRoundSemifinal {
			playoffTeamNames = append(playoffTeamNames, team1.Name, team2.Name)
		} else {
			finalistTeamNames = append(finalistTeamNames, team1.Name, team2.Name)
		}
	}

	previousDate := league.GameDate
	result := s.seasons.AdvanceSeason(league, champion.Name, playoffTeamNames, finalistTeamNames)
	newDate := result.NewGameDate

	offseasonDays := int(newDate.Sub(previousDate).Hours() / 24)
	healInjuriesOver(league, offseasonDays)

	for _, retiree := range result.Retiring {
		addPost(league, s.feed.Retirement(retiree, newDate))
	}
	s.postUnlocks(league, achievements.CheckRetirements(result.Retiring, league.Achievements, newDate), newDate)

	for _, prospect := range result.NewFreeAgents {
		addPost(league, s.feed.NewFreeAgent(prospect, newDate))
	}
	s.postUnlocks(league, achievements.CheckNewPlayers(result.NewFreeAgents, league.Achievements, newDate), newDate)

	if result.NewInductee != nil {
		addPost(league, s.feed.HallOfFameInduction(result.NewInductee, newDate))
	} else if result.NewYear > season.HallOfFameOpenYear {
		addPost(league, s.feed.HallOfFameNoInduction(result.NewYear, newDate))
	}
	if result.NewYear > season.HallOfFameOpenYear {
		s.postUnlocks(league, achievements.CheckHallOfFame(len(league.HallOfFame), league.Achievements, newDate), newDate)
	}

	s.postUnlocks(league, achievements.CheckSeasonCount(len(league.SeasonHistory), league.Achievements, newDate), newDate)
	s.postUnlocks(league, achievements.CheckThreePeat(league.SeasonHistory, league.Achievements, newDate), newDate)

	league.SeasonComplete = false
	league.PlayoffsStarted = false
	league.PlayoffSeries = nil
	league.Games = s.scheduler.Generate(league.Teams, league.CurrentYear)

	addPost(league, s.feed.SeasonStart(league.CurrentYear, newDate))

	if err := s.save(ctx, league); err != nil {
		return nil, err
	}

	return &AdvanceSeasonOutput{
		NewYear:      result.NewYear,
		Retired:      result.Retiring,
		NewProspects: result.NewFreeAgents,
		NewInductee:  result.NewInductee,
		League:       league,
	}, nil
}

// GetStandings returns teams sorted by points
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	return &GetStandingsOutput{Teams: standings.Standings(league.Teams)}, nil
}

// GetLeaders returns the top players in a stat category
func (s *service) GetLeaders(ctx context.Context, input *GetLeadersInput) (*GetLeadersOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	players := standings.LeagueLeaders(standings.AllPlayers(league.Teams), input.Category, !input.Career, limit)
	return &GetLeadersOutput{Players: players}, nil
}

// GetFeed returns the newest feed posts
func (s *service) GetFeed(ctx context.Context, input *GetFeedInput) (*GetFeedOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}

	posts := league.FeedPosts
	if input.Limit > 0 && len(posts) > input.Limit {
		posts = posts[:input.Limit]
	}
	return &GetFeedOutput{Posts: posts}, nil
}

// GetHallOfFame returns the inductee list
func (s *service) GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	return &GetHallOfFameOutput{Inductees: league.HallOfFame}, nil
}

// GetAchievements returns the achievement registry
func (s *service) GetAchievements(ctx context.Context, input *GetAchievementsInput) (*GetAchievementsOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	return &GetAchievementsOutput{Achievements: league.Achievements}, nil
}

// GetSchedule returns the current season's games
func (s *service) GetSchedule(ctx context.Context, input *GetScheduleInput) (*GetScheduleOutput, error) {
	league, err := s.load(ctx, input.LeagueID)
	if err != nil {
		return nil, err
	}
	return &GetScheduleOutput{Games: league.Games}, nil
}
