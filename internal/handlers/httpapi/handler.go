// Package httpapi exposes the league service over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gkha/league/internal/handlers/httpapi/respond"
	leaguerepo "github.com/gkha/league/internal/repositories/league"
	leaguesvc "github.com/gkha/league/internal/services/league"
	"github.com/gkha/league/internal/standings"
)

// Handler holds the API's dependencies
type Handler struct {
	service leaguesvc.Service
}

// Config holds Handler dependencies
type Config struct {
	Service leaguesvc.Service
}

// New creates an API handler
func New(cfg *Config) *Handler {
	return &Handler{
		service: cfg.Service,
	}
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, leaguerepo.ErrLeagueNotFound):
		respond.WriteError(w, http.StatusNotFound, "LEAGUE_NOT_FOUND", "league not found")
	case errors.Is(err, leaguesvc.ErrLeagueAlreadyExists):
		respond.WriteError(w, http.StatusConflict, "LEAGUE_EXISTS", err.Error())
	case errors.Is(err, leaguesvc.ErrSeasonComplete),
		errors.Is(err, leaguesvc.ErrSeasonNotComplete),
		errors.Is(err, leaguesvc.ErrPlayoffsStarted),
		errors.Is(err, leaguesvc.ErrPlayoffsNotStarted),
		errors.Is(err, leaguesvc.ErrPlayoffsComplete),
		errors.Is(err, leaguesvc.ErrPlayoffsNotComplete):
		respond.WriteError(w, http.StatusConflict, "INVALID_STATE", err.Error())
	default:
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func leagueID(r *http.Request) string {
	return chi.URLParam(r, "leagueID")
}

// CreateLeague bootstraps a new league.
func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if r.Body != nil {
		// an empty body means a generated id
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	out, err := h.service.CreateLeague(r.Context(), &leaguesvc.CreateLeagueInput{LeagueID: body.ID})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusCreated, out.League)
}

// ListLeagues returns every known league id.
func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListLeagues(r.Context(), &leaguesvc.ListLeaguesInput{})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string][]string{"leagues": out.LeagueIDs})
}

// GetLeague returns the full league aggregate.
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetLeague(r.Context(), &leaguesvc.GetLeagueInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.League)
}

// SimulateNextGame plays the next scheduled regular season game.
func (h *Handler) SimulateNextGame(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.SimulateNextGame(r.Context(), &leaguesvc.SimulateNextGameInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Game)
}

// SimulateGames plays a batch of regular season games.
func (h *Handler) SimulateGames(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "body must be JSON with a count field")
		return
	}
	if body.Count <= 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_COUNT", "count must be positive")
		return
	}

	out, err := h.service.SimulateGames(r.Context(), &leaguesvc.SimulateGamesInput{
		LeagueID: leagueID(r),
		Count:    body.Count,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Games)
}

// SimulateSeason plays every remaining regular season game.
func (h *Handler) SimulateSeason(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.SimulateSeason(r.Context(), &leaguesvc.SimulateSeasonInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]int{"gamesPlayed": out.GamesPlayed})
}

// StartPlayoffs seeds the playoff bracket.
func (h *Handler) StartPlayoffs(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.StartPlayoffs(r.Context(), &leaguesvc.StartPlayoffsInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Series)
}

// SimulatePlayoffGame plays the next available playoff game.
func (h *Handler) SimulatePlayoffGame(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.SimulatePlayoffGame(r.Context(), &leaguesvc.SimulatePlayoffGameInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Game)
}

// SimulatePlayoffs plays out the whole bracket.
func (h *Handler) SimulatePlayoffs(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.SimulatePlayoffs(r.Context(), &leaguesvc.SimulatePlayoffsInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]string{"championId": out.ChampionID})
}

// AdvanceSeason runs the offseason.
func (h *Handler) AdvanceSeason(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.AdvanceSeason(r.Context(), &leaguesvc.AdvanceSeasonInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"newYear":      out.NewYear,
		"retired":      out.Retired,
		"newProspects": out.NewProspects,
		"newInductee":  out.NewInductee,
	})
}

// GetStandings returns teams sorted by points.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetStandings(r.Context(), &leaguesvc.GetStandingsInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Teams)
}

// GetLeaders returns the top players in a stat category.
func (h *Handler) GetLeaders(w http.ResponseWriter, r *http.Request) {
	category := standings.StatCategory(r.URL.Query().Get("category"))
	if category == "" {
		category = standings.CategoryPoints
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer")
			return
		}
		limit = parsed
	}

	out, err := h.service.GetLeaders(r.Context(), &leaguesvc.GetLeadersInput{
		LeagueID: leagueID(r),
		Category: category,
		Career:   r.URL.Query().Get("career") == "true",
		Limit:    limit,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Players)
}

// GetFeed returns the newest feed posts.
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer")
			return
		}
		limit = parsed
	}

	out, err := h.service.GetFeed(r.Context(), &leaguesvc.GetFeedInput{
		LeagueID: leagueID(r),
		Limit:    limit,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Posts)
}

// GetHallOfFame returns the inductee list.
func (h *Handler) GetHallOfFame(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetHallOfFame(r.Context(), &leaguesvc.GetHallOfFameInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Inductees)
}

// GetAchievements returns the achievement registry.
func (h *Handler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetAchievements(r.Context(), &leaguesvc.GetAchievementsInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Achievements)
}

// GetSchedule returns the current season's games.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetSchedule(r.Context(), &leaguesvc.GetScheduleInput{LeagueID: leagueID(r)})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, out.Games)
}
