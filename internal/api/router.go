package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/eightd-studio/engine/internal/api/handlers"
	mw "github.com/eightd-studio/engine/internal/api/middleware"
	"github.com/eightd-studio/engine/internal/api/types"
	"github.com/eightd-studio/engine/pkg/metrics"
)

type Dependencies struct {
	ProblemsHandler *handlers.ProblemsHandler
	CausesHandler   *handlers.CausesHandler
	HealthHandler   *handlers.HealthHandler
	RateLimitRPS    float64
	RateLimitBurst  int
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	r.Use(chimid.Compress(5))

	// Set before mounting so /api inherits them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		types.WriteJSON(w, http.StatusNotFound, types.Failure(types.MsgEndpointNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		types.WriteJSON(w, http.StatusMethodNotAllowed, types.Failure(types.MsgMethodNotAllowed))
	})

	// Operational endpoints
	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	routes := func(api chi.Router) {
		api.Route("/problems", func(pr chi.Router) {
			pr.Get("/", dep.ProblemsHandler.List)
			pr.Post("/", dep.ProblemsHandler.Create)
			pr.Get("/{id:[0-9]+}", dep.ProblemsHandler.Get)
			pr.Put("/{id:[0-9]+}", dep.ProblemsHandler.Update)
			pr.Delete("/{id:[0-9]+}", dep.ProblemsHandler.Delete)
			pr.Get("/{id:[0-9]+}/causes", dep.CausesHandler.Tree)
			pr.Get("/{id:[0-9]+}/root-causes", dep.CausesHandler.RootCauses)
		})

		api.Route("/causes", func(cr chi.Router) {
			cr.Post("/", dep.CausesHandler.Create)
			cr.Get("/{id:[0-9]+}", dep.CausesHandler.Get)
			cr.Put("/{id:[0-9]+}", dep.CausesHandler.Update)
			cr.Delete("/{id:[0-9]+}", dep.CausesHandler.Delete)
		})
	}

	r.Group(routes)
	r.Route("/api", routes)

	return r
}
