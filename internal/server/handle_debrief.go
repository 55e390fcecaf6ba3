package server

import (
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/medsimlab/clinsim/internal/protocol"
)

type DebriefRequest struct {
	PlayerName string `json:"playerName,omitempty"`
}

type DebriefResponse struct {
	Outcome    string               `json:"outcome"`
	Score      int                  `json:"score"`
	Report     string               `json:"report"`
	Evaluation *protocol.Evaluation `json:"evaluation,omitempty"`
	ResultID   int64                `json:"resultId,omitempty"`
}

// handleDebrief closes a session: evaluates protocol adherence over the
// action timeline, renders the debrief report and persists the result. The
// session stays readable afterwards but accepts no further actions.
func handleDebrief(logger *slog.Logger, sessions *Sessions, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessions.Get(chi.URLParam(r, "sessionID"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		var req DebriefRequest
		if r.ContentLength > 0 {
			if err := readJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		if !s.TryLock() {
			writeError(w, http.StatusConflict, ErrSessionBusy.Error())
			return
		}
		defer s.Unlock()

		if name := strings.TrimSpace(req.PlayerName); name != "" {
			s.PlayerName = name
		}

		resp := DebriefResponse{
			Outcome: string(s.Acuity),
			Score:   s.Score,
		}

		var blocks []string
		var protocolID string
		var adherence *float64
		if s.Protocol != nil {
			ev := protocol.Evaluate(*s.Protocol, s.Engine.Timeline(), s.Engine.AppliedInterventions())
			s.LastEval = &ev
			resp.Evaluation = &ev
			blocks = append(blocks, protocol.ReportBlock(ev))
			protocolID = s.Protocol.Name
			adherence = &ev.AdherenceScore
			if resp.Score == 0 {
				resp.Score = int(math.Round(ev.AdherenceScore * 10))
			}
		}
		blocks = append(blocks, s.Engine.DebriefTimeline())
		resp.Report = strings.Join(blocks, "\n\n")

		id, err := store.SaveResult(r.Context(), GameResult{
			SessionID:      s.ID,
			PlayerName:     s.PlayerName,
			Specialty:      s.Specialty,
			Difficulty:     s.Difficulty,
			CaseTitle:      s.CaseTitle,
			ProtocolID:     protocolID,
			Outcome:        resp.Outcome,
			Score:          resp.Score,
			AdherenceScore: adherence,
			GameMinutes:    s.Engine.GameTimeMinutes(),
		})
		if err != nil {
			logger.Error("saving game result", "session_id", s.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		resp.ResultID = id

		logger.Info("session debriefed",
			"session_id", s.ID,
			"outcome", resp.Outcome,
			"score", resp.Score,
		)
		writeJSON(w, http.StatusOK, resp)
	}
}
