package server

import (
	"net/http"
	"time"

	"github.com/medsimlab/clinsim/internal/casegen"
)

func handleListCases() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, casegen.Templates())
	}
}

type GenerateCaseRequest struct {
	Specialty string `json:"specialty"`
	Seed      int64  `json:"seed,omitempty"`
}

type GenerateCaseResponse struct {
	TemplateID     string          `json:"templateId"`
	TemplateName   string          `json:"templateName"`
	Specialty      string          `json:"specialty"`
	Patient        casegen.Profile `json:"patient"`
	InitialVitals  VitalsView      `json:"initialVitals"`
	ScenarioPrompt string          `json:"scenarioPrompt"`
	Seed           int64           `json:"seed"`
}

// handleGenerateCase previews a generated case without opening a session.
// The echoed seed reproduces the exact case via StartSessionRequest.Seed.
func handleGenerateCase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateCaseRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Specialty == "" {
			writeError(w, http.StatusBadRequest, "specialty is required")
			return
		}
		if req.Seed == 0 {
			req.Seed = time.Now().UnixNano()
		}

		c, ok := casegen.New(req.Seed).GenerateCase(req.Specialty)
		if !ok {
			writeError(w, http.StatusNotFound, "no case template for specialty")
			return
		}

		writeJSON(w, http.StatusOK, GenerateCaseResponse{
			TemplateID:     c.TemplateID,
			TemplateName:   c.TemplateName,
			Specialty:      c.Specialty,
			Patient:        c.Patient,
			InitialVitals:  vitalsView(c.InitialVitals),
			ScenarioPrompt: c.ScenarioPrompt,
			Seed:           req.Seed,
		})
	}
}
