package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/metravel/bookgen/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	themesHandler := handlers.NewThemesHandler()
	layoutsHandler := handlers.NewLayoutsHandler()
	exportHandler := handlers.NewExportHandler(s.config, s.exportOpts)

	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/themes", themesHandler.List)
		r.Get("/themes/{id}", themesHandler.Get)

		r.Get("/layouts", layoutsHandler.List)
		r.Get("/layouts/{id}", layoutsHandler.Get)

		r.Post("/export", exportHandler.Export)
	})
}
