package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/gkha/league/internal/common/clock"
	"github.com/gkha/league/internal/common/uuid"
	"github.com/gkha/league/internal/dice"
	"github.com/gkha/league/internal/models"
	"github.com/gkha/league/internal/names"
	leaguerepo "github.com/gkha/league/internal/repositories/league"
	"github.com/gkha/league/internal/schedule"
	"github.com/gkha/league/internal/season"
	"github.com/gkha/league/internal/seed"
	feedsvc "github.com/gkha/league/internal/services/feed"
	leaguesvc "github.com/gkha/league/internal/services/league"
	"github.com/gkha/league/internal/sim"
)

type handlerTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	server *httptest.Server
}

func (s *handlerTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := leaguerepo.NewRedis(&leaguerepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	roller := dice.New(&dice.Config{Seed: 7})
	nameGen := names.New(&names.Config{Roller: roller})
	uuider := &uuid.DefaultUUID{}
	clk := &clock.DefaultClock{}

	svc, err := leaguesvc.New(&leaguesvc.Config{
		Repository:   repo,
		SimEngine:    sim.New(&sim.Config{Roller: roller}),
		SeasonEngine: season.New(&season.Config{Roller: roller, Names: nameGen, UUID: uuider}),
		Seeder:       seed.New(&seed.Config{Roller: roller, Names: nameGen, UUID: uuider, Clock: clk}),
		Scheduler:    schedule.New(&schedule.Config{Roller: roller, UUID: uuider}),
		Feed:         feedsvc.New(&feedsvc.Config{Roller: roller, UUID: uuider}),
		UUID:         uuider,
		Clock:        clk,
	})
	s.Require().NoError(err)

	router := NewRouter(&RouterConfig{
		Handler: New(&Config{Service: svc}),
	})
	s.server = httptest.NewServer(router)
}

func (s *handlerTestSuite) TearDownTest() {
	s.server.Close()
	s.client.Close()
	s.mr.Close()
}

func (s *handlerTestSuite) post(path, body string) *http.Response {
	resp, err := http.Post(s.server.URL+path, "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	return resp
}

func (s *handlerTestSuite) get(path string) *http.Response {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	return resp
}

func (s *handlerTestSuite) decode(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

func (s *handlerTestSuite) createLeague() string {
	resp := s.post("/leagues", `{"id": "test-league"}`)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var league models.League
	s.decode(resp, &league)
	return league.ID
}

func (s *handlerTestSuite) TestCreateLeague() {
	resp := s.post("/leagues", `{"id": "test-league"}`)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var league models.League
	s.decode(resp, &league)
	s.Equal("test-league", league.ID)
	s.Len(league.Teams, 6)
	s.Len(league.Games, 60)

	// creating the same league twice conflicts
	resp = s.post("/leagues", `{"id": "test-league"}`)
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func (s *handlerTestSuite) TestGetLeague_NotFound() {
	resp := s.get("/leagues/nope")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *handlerTestSuite) TestListLeagues() {
	id := s.createLeague()

	resp := s.get("/leagues")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string][]string
	s.decode(resp, &body)
	s.Contains(body["leagues"], id)
}

func (s *handlerTestSuite) TestSimulateNextGame() {
	id := s.createLeague()

	resp := s.post("/leagues/"+id+"/simulate", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var game models.Game
	s.decode(resp, &game)
	s.Equal(models.GameStatusFinal, game.Status)
	s.NotEmpty(game.Events)
}

func (s *handlerTestSuite) TestSimulateBatch() {
	id := s.createLeague()

	resp := s.post("/leagues/"+id+"/simulate/batch", `{"count": 3}`)
	s.Equal(http.StatusOK, resp.StatusCode)

	var games []*models.Game
	s.decode(resp, &games)
	s.Len(games, 3)

	resp = s.post("/leagues/"+id+"/simulate/batch", `{"count": 0}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *handlerTestSuite) TestPlayoffGuards() {
	id := s.createLeague()

	// playoffs cannot start mid-season
	resp := s.post("/leagues/"+id+"/playoffs/start", "")
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// playoff simulation requires a started bracket
	resp = s.post("/leagues/"+id+"/playoffs/simulate", "")
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func (s *handlerTestSuite) TestFullSeasonFlow() {
	id := s.createLeague()

	resp := s.post("/leagues/"+id+"/simulate/season", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var seasonOut map[string]int
	s.decode(resp, &seasonOut)
	s.Equal(60, seasonOut["gamesPlayed"])

	resp = s.post("/leagues/"+id+"/playoffs/start", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var series []*models.PlayoffSeries
	s.decode(resp, &series)
	s.Len(series, 2)

	resp = s.post("/leagues/"+id+"/playoffs/run", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var runOut map[string]string
	s.decode(resp, &runOut)
	s.NotEmpty(runOut["championId"])

	resp = s.post("/leagues/"+id+"/season/advance", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	var advanceOut struct {
		NewYear int `json:"newYear"`
	}
	s.decode(resp, &advanceOut)
	s.Equal(seed.StartYear+1, advanceOut.NewYear)
}

func (s *handlerTestSuite) TestStandings() {
	id := s.createLeague()

	resp := s.get("/leagues/" + id + "/standings")
	s.Equal(http.StatusOK, resp.StatusCode)

	var teams []*models.Team
	s.decode(resp, &teams)
	s.Len(teams, 6)
}

func (s *handlerTestSuite) TestLeaders() {
	id := s.createLeague()

	s.post("/leagues/"+id+"/simulate", "").Body.Close()

	resp := s.get("/leagues/" + id + "/leaders?category=goals&limit=5")
	s.Equal(http.StatusOK, resp.StatusCode)

	var players []*models.Player
	s.decode(resp, &players)
	s.LessOrEqual(len(players), 5)

	resp = s.get("/leagues/" + id + "/leaders?limit=nope")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *handlerTestSuite) TestFeed() {
	id := s.createLeague()

	resp := s.get("/leagues/" + id + "/feed?limit=1")
	s.Equal(http.StatusOK, resp.StatusCode)

	var posts []*models.FeedPost
	s.decode(resp, &posts)
	s.Len(posts, 1)
}

func (s *handlerTestSuite) TestAchievementsAndHallOfFame() {
	id := s.createLeague()

	resp := s.get("/leagues/" + id + "/achievements")
	s.Equal(http.StatusOK, resp.StatusCode)
	var achievementList []*models.Achievement
	s.decode(resp, &achievementList)
	s.NotEmpty(achievementList)

	resp = s.get("/leagues/" + id + "/hall-of-fame")
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *handlerTestSuite) TestSchedule() {
	id := s.createLeague()

	resp := s.get("/leagues/" + id + "/schedule")
	s.Equal(http.StatusOK, resp.StatusCode)

	var games []*models.Game
	s.decode(resp, &games)
	s.Len(games, 60)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(handlerTestSuite))
}
