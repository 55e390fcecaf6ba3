package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAPISpec(t *testing.T) {
	h := handleOpenAPI()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()
	h(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var spec struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.NewDecoder(w.Body).Decode(&spec); err != nil {
		t.Fatalf("decode spec: %v", err)
	}

	if spec.Info.Title != "ClinSim API" {
		t.Errorf("title = %q", spec.Info.Title)
	}

	want := []string{
		"/healthz",
		"/api/sessions",
		"/api/sessions/{sessionID}",
		"/api/sessions/{sessionID}/actions",
		"/api/sessions/{sessionID}/debrief",
		"/api/sessions/{sessionID}/events",
		"/api/cases",
		"/api/cases/generate",
		"/api/leaderboard",
		"/api/players/{playerName}/stats",
	}
	for _, path := range want {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("path %q missing from spec", path)
		}
	}
}
