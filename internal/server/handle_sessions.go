package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/medsimlab/clinsim/internal/casegen"
	"github.com/medsimlab/clinsim/internal/narrative"
	"github.com/medsimlab/clinsim/internal/protocol"
	"github.com/medsimlab/clinsim/internal/sim"
)

type StartSessionRequest struct {
	PlayerName string `json:"playerName"`
	Specialty  string `json:"specialty"`
	Difficulty string `json:"difficulty"`
	// Seed makes case generation reproducible. Zero draws a fresh seed.
	Seed int64 `json:"seed,omitempty"`
}

func handleStartSession(logger *slog.Logger, sessions *Sessions, gen narrative.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartSessionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.PlayerName = strings.TrimSpace(req.PlayerName)
		if req.Difficulty == "" {
			req.Difficulty = "INTERNO"
		}

		seed := req.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		vitals := sim.DefaultVitals()
		caseTitle := "Caso Clínico Geral"
		caseText := ""
		if c, ok := casegen.New(seed).GenerateCase(req.Specialty); ok {
			vitals = c.InitialVitals
			caseTitle = c.TemplateName
			caseText = c.ScenarioPrompt
		}

		engine := sim.NewEngine(vitals)
		engine.SetConditionsFromNarrative(caseText)

		s := &Session{
			PlayerName: req.PlayerName,
			Specialty:  req.Specialty,
			Difficulty: req.Difficulty,
			CaseTitle:  caseTitle,
			CaseText:   caseText,
			Engine:     engine,
			Acuity:     sim.AcuityStable,
		}
		if def, ok := protocol.Detect(caseText); ok {
			s.Protocol = &def
		}
		if caseText != "" {
			s.History = append(s.History, narrative.Message{Role: "system", Content: caseText})
		}

		if gen != nil {
			s.History = append(s.History, narrative.Message{Role: "user", Content: "START_GAME"})
			state, err := gen.Simulate(r.Context(), s.History)
			if err != nil {
				logger.Error("narrative generator failed at session start", "error", err)
				writeError(w, http.StatusBadGateway, "narrative generator unavailable")
				return
			}
			applyTurnState(s, state, caseText)
		}

		sessions.Create(s)
		logger.Info("session started",
			"session_id", s.ID,
			"specialty", s.Specialty,
			"difficulty", s.Difficulty,
			"case", s.CaseTitle,
		)

		writeJSON(w, http.StatusCreated, snapshot(s))
	}
}

// applyTurnState folds one generator response into the session: the opening
// narrative may override seed vitals, later turns only update acuity,
// conditions, score and the offered options. Engine vitals stay
// authoritative after the first turn.
func applyTurnState(s *Session, state narrative.TurnState, seedText string) {
	text := state.Text()

	if s.Engine.GameTimeMinutes() == 0 && len(s.Engine.Timeline()) == 0 {
		s.Engine.Reset(narrative.ParseVitals(text, s.Engine.Vitals()))
	}
	s.Engine.SetConditionsFromNarrative(seedText + "\n" + text)

	s.Acuity = narrative.ParseAcuity(state.Status.EstadoPaciente)
	if state.Status.CurrentScore != 0 {
		s.Score = state.Status.CurrentScore
	}
	s.Opts = state.Options
	s.LastMessage = state.UI.NarrativaPrincipal
	s.History = append(s.History, narrative.Message{Role: "assistant", Content: text})

	if s.Protocol == nil {
		if def, ok := protocol.Detect(text); ok {
			s.Protocol = &def
		}
	}
}

func handleGetSession(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := sessions.Get(chi.URLParam(r, "sessionID"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		if !s.TryLock() {
			writeError(w, http.StatusConflict, ErrSessionBusy.Error())
			return
		}
		defer s.Unlock()

		writeJSON(w, http.StatusOK, snapshot(s))
	}
}
