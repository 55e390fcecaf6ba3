package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/medsimlab/clinsim/internal/narrative"
	"github.com/medsimlab/clinsim/internal/sim"
)

// timeoutAction is logged when the player lets the decision timer lapse.
const timeoutAction = "TEMPO ESGOTADO - nenhuma ação tomada"

type ActionRequest struct {
	Action string `json:"action"`
	// TimedOut marks a turn where the player's decision timer lapsed; the
	// clock advances with no intervention applied.
	TimedOut bool `json:"timedOut,omitempty"`
}

type ActionResponse struct {
	MatchedKey  string          `json:"matchedKey,omitempty"`
	Matched     bool            `json:"matched"`
	Critical    []string        `json:"criticalActions"`
	CostMinutes int             `json:"costMinutes"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Session     SessionSnapshot `json:"session"`
}

func handleAction(logger *slog.Logger, sessions *Sessions, gen narrative.Generator, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessions.Get(chi.URLParam(r, "sessionID"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		var req ActionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Action = strings.TrimSpace(req.Action)
		if req.Action == "" && !req.TimedOut {
			writeError(w, http.StatusBadRequest, "action is required")
			return
		}

		if !s.TryLock() {
			writeError(w, http.StatusConflict, ErrSessionBusy.Error())
			return
		}
		defer s.Unlock()

		if s.Acuity.Terminal() {
			writeError(w, http.StatusConflict, "session has ended")
			return
		}

		resp := ActionResponse{Critical: []string{}}
		if req.TimedOut {
			resp.CostMinutes = sim.DefaultActionCost
			s.Engine.Tick(resp.CostMinutes, s.Acuity)
			s.Engine.LogActionCritical(timeoutAction, true)
		} else {
			res := s.Engine.ApplyIntervention(req.Action)
			s.Engine.Tick(res.CostMinutes, s.Acuity)
			s.Engine.LogAction(req.Action)

			resp.MatchedKey = res.MatchedKey
			resp.Matched = res.Matched
			resp.CostMinutes = res.CostMinutes
			if res.Critical != nil {
				resp.Critical = res.Critical
			}
			if !res.Matched {
				resp.Suggestions = sim.DiagnoseMatch(req.Action).Suggestions
			}
		}

		if gen != nil {
			action := req.Action
			if req.TimedOut {
				action = timeoutAction
			}
			s.History = append(s.History, narrative.Message{
				Role:    "user",
				Content: action + "\n\n" + s.Engine.PromptBlock(),
			})
			state, err := gen.Simulate(r.Context(), s.History)
			if err != nil {
				// The turn already happened: clock, vitals and timeline are
				// committed. Report the generator failure without rollback.
				logger.Error("narrative generator failed", "session_id", s.ID, "error", err)
				writeError(w, http.StatusBadGateway, "narrative generator unavailable")
				return
			}
			applyTurnState(s, state, s.CaseText)
		}

		broker.Publish(s.ID, SSEEvent{
			Type:        "vitals",
			Vitals:      vitalsView(s.Engine.Vitals()),
			Acuity:      string(s.Acuity),
			GameMinutes: s.Engine.GameTimeMinutes(),
			Clock:       s.Engine.FormattedTime(),
		})

		resp.Session = snapshot(s)
		writeJSON(w, http.StatusOK, resp)
	}
}
