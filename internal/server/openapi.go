package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/medsimlab/clinsim/internal/casegen"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "ClinSim API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the clinical simulation trainer.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/sessions
	postSessions, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	postSessions.SetSummary("Start a session")
	postSessions.SetDescription("Opens a new simulation session, optionally generating a case for the given specialty. A zero seed draws a fresh one.")
	postSessions.AddReqStructure(StartSessionRequest{})
	postSessions.AddRespStructure(SessionSnapshot{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSessions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSessions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postSessions)

	// GET /api/sessions/{sessionID}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}")
	getSession.SetSummary("Get session state")
	getSession.SetDescription("Returns the full observable state of a session.")
	getSession.AddRespStructure(SessionSnapshot{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// POST /api/sessions/{sessionID}/actions
	postAction, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/actions")
	postAction.SetSummary("Play one turn")
	postAction.SetDescription("Applies a free-text action to the session engine, advances the game clock and requests the next narrative turn. Concurrent turns on the same session are rejected with 409.")
	postAction.AddReqStructure(ActionRequest{})
	postAction.AddRespStructure(ActionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAction.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postAction.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postAction.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postAction.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	_ = r.AddOperation(postAction)

	// POST /api/sessions/{sessionID}/debrief
	postDebrief, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{sessionID}/debrief")
	postDebrief.SetSummary("Debrief a session")
	postDebrief.SetDescription("Evaluates protocol adherence over the action timeline, renders the debrief report and persists the result.")
	postDebrief.AddReqStructure(DebriefRequest{})
	postDebrief.AddRespStructure(DebriefResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postDebrief.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postDebrief.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postDebrief)

	// GET /api/sessions/{sessionID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/events")
	getEvents.SetSummary("SSE vitals stream")
	getEvents.SetDescription("Server-Sent Events stream of vitals snapshots published after each turn.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	getEvents.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getEvents)

	// GET /api/cases
	getCases, _ := r.NewOperationContext(http.MethodGet, "/api/cases")
	getCases.SetSummary("List case templates")
	getCases.SetDescription("Lists the available clinical case templates.")
	getCases.AddRespStructure([]casegen.TemplateInfo{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCases)

	// POST /api/cases/generate
	postGenerate, _ := r.NewOperationContext(http.MethodPost, "/api/cases/generate")
	postGenerate.SetSummary("Generate a case")
	postGenerate.SetDescription("Generates a patient case for a specialty without opening a session. The echoed seed reproduces the case.")
	postGenerate.AddReqStructure(GenerateCaseRequest{})
	postGenerate.AddRespStructure(GenerateCaseResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGenerate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postGenerate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postGenerate)

	// GET /api/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getLeaderboard.SetSummary("Leaderboard")
	getLeaderboard.SetDescription("Top results by score. Filter with ?specialty=; TODAS means all.")
	getLeaderboard.AddRespStructure([]GameResult{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/players/{playerName}/stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/players/{playerName}/stats")
	getStats.SetSummary("Player statistics")
	getStats.SetDescription("Aggregated statistics over a player's history: level ladder, difficulty-weighted total score, per-specialty performance.")
	getStats.AddRespStructure(PlayerStats{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStats)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
