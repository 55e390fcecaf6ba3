package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func handleLeaderboard(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := store.Leaderboard(r.Context(), r.URL.Query().Get("specialty"))
		if err != nil {
			logger.Error("loading leaderboard", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if results == nil {
			results = []GameResult{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func handlePlayerStats(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "playerName")
		history, err := store.PlayerHistory(r.Context(), name)
		if err != nil {
			logger.Error("loading player history", "player", name, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, computeStats(history))
	}
}
