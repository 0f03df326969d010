package server

import (
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, deps Deps) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("HazardHunt API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(deps.Registry))

	// Auth.
	r.Post("/api/login", handleLogin(deps.Catalog, deps.Store))
	r.Post("/api/logout", handleLogout(deps.Store))
	r.Get("/api/me", handleMe(deps.Store))

	// Scene catalog.
	r.Route("/api/scenes", func(r chi.Router) {
		r.Use(authMiddleware(deps.Store))
		r.Get("/", handleListScenes(deps.Catalog))
		r.Get("/{id}", handleGetScene(deps.Catalog))
		r.Get("/{id}/geometry", handleSceneGeometry(deps.Catalog, deps.Geometry))
	})

	// Hazard-hunt sessions.
	r.With(authMiddleware(deps.Store)).Post("/api/sessions", handleCreateSession(deps.Catalog, deps.Registry))
	r.Route("/api/sessions/{session}", func(r chi.Router) {
		// The browser cannot set headers on EventSource or WebSocket
		// requests, so these two authenticate via a token query
		// parameter instead of the Bearer middleware.
		r.Get("/events", handleEvents(deps.Registry, deps.Store, deps.Broker))
		r.Get("/ws", handleSessionWS(deps.Logger, deps.Registry, deps.Store))

		r.Group(func(r chi.Router) {
			r.Use(sessionMiddleware(deps.Registry, deps.Store))
			r.Get("/", handleSessionState())
			r.Post("/start", handleSessionStart(deps.Broker))
			r.Post("/identify", handleIdentify(deps.Broker))
			r.Post("/submit", handleSubmit(deps.Store, deps.Broker))
			r.Post("/reset", handleSessionReset(deps.Broker))
			r.Post("/hints", handleToggleHints(deps.Broker))
			r.Get("/results", handleSessionResults())
		})
	})

	// Quizzes.
	r.Route("/api/quizzes", func(r chi.Router) {
		r.Use(authMiddleware(deps.Store))
		r.Get("/", handleListQuizzes(deps.Catalog))
		r.Get("/{id}", handleGetQuiz(deps.Catalog))
		r.Post("/{id}/attempts", handleQuizAttempt(deps.Catalog, deps.Store))
	})

	// Admin auth and dashboards.
	r.Post("/api/admin/login", handleAdminLogin(deps.Catalog, deps.Store))
	r.Post("/api/admin/logout", handleAdminLogout(deps.Store))
	r.Get("/api/admin/me", handleAdminMe(deps.Store))
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminAuthMiddleware(deps.Store))
		r.Get("/stats", handleAdminStats(deps.Catalog, deps.Store))
		r.Get("/users", handleAdminListUsers(deps.Catalog))
		r.Get("/performance", handleAdminPerformance(deps.Catalog, deps.Store))
		r.Get("/attempts", handleAdminAttempts(deps.Store))
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			deps.Logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
