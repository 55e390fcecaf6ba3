package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/medsimlab/clinsim/internal/narrative"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, store Store, gen narrative.Generator, spaDir string) {
	sessions := NewSessions()
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("ClinSim API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", handleStartSession(logger, sessions, gen))
		r.Get("/sessions/{sessionID}", handleGetSession(sessions))
		r.Post("/sessions/{sessionID}/actions", handleAction(logger, sessions, gen, broker))
		r.Post("/sessions/{sessionID}/debrief", handleDebrief(logger, sessions, store))
		r.Get("/sessions/{sessionID}/events", handleEvents(sessions, broker))

		r.Get("/cases", handleListCases())
		r.Post("/cases/generate", handleGenerateCase())

		r.Get("/leaderboard", handleLeaderboard(logger, store))
		r.Get("/players/{playerName}/stats", handlePlayerStats(logger, store))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
