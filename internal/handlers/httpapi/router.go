package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
)

// RouterConfig holds router options
type RouterConfig struct {
	Handler *Handler

	// AllowedOrigins for CORS, "*" when empty
	AllowedOrigins []string
}

// NewRouter creates and configures the Chi router with all middleware
// and routes.
func NewRouter(cfg *RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := corslib.New(corslib.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	h := cfg.Handler

	r.Route("/leagues", func(r chi.Router) {
		r.Post("/", h.CreateLeague)
		r.Get("/", h.ListLeagues)

		r.Route("/{leagueID}", func(r chi.Router) {
			r.Get("/", h.GetLeague)

			r.Post("/simulate", h.SimulateNextGame)
			r.Post("/simulate/batch", h.SimulateGames)
			r.Post("/simulate/season", h.SimulateSeason)

			r.Post("/playoffs/start", h.StartPlayoffs)
			r.Post("/playoffs/simulate", h.SimulatePlayoffGame)
			r.Post("/playoffs/run", h.SimulatePlayoffs)

			r.Post("/season/advance", h.AdvanceSeason)

			r.Get("/standings", h.GetStandings)
			r.Get("/leaders", h.GetLeaders)
			r.Get("/feed", h.GetFeed)
			r.Get("/hall-of-fame", h.GetHallOfFame)
			r.Get("/achievements", h.GetAchievements)
			r.Get("/schedule", h.GetSchedule)
		})
	})

	return r
}
