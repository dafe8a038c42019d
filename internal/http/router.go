package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/merev/ds-scorekeeper/internal/game"
)

func NewRouter(gh *game.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/matches", gh.CreateMatch)                     // POST /api/matches
		api.Get("/matches/{id}", gh.GetMatch)                    // GET /api/matches/:id
		api.Delete("/matches/{id}", gh.DiscardMatch)             // DELETE /api/matches/:id
		api.Post("/matches/{id}/turns", gh.PostTurn)             // POST /api/matches/:id/turns
		api.Post("/matches/{id}/checkout", gh.PostCheckoutDarts) // POST /api/matches/:id/checkout
		api.Post("/matches/{id}/doubles", gh.PostDoubleAttempts) // POST /api/matches/:id/doubles
		api.Post("/matches/{id}/undo", gh.UndoLastTurn)          // POST /api/matches/:id/undo
		api.Post("/matches/{id}/persist", gh.PersistMatch)       // POST /api/matches/:id/persist
		api.Get("/matches/{id}/ws", gh.StreamMatch)              // GET /api/matches/:id/ws
		api.Get("/checkout/{score}", gh.GetCheckout)             // GET /api/checkout/:score
		api.Get("/players/{id}/career", gh.GetCareer)            // GET /api/players/:id/career
	})

	return r
}
