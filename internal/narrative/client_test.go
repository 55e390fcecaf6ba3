package narrative

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSimulate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}

		var req simulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(TurnState{
			Status: Status{EstadoPaciente: "INSTAVEL", Fase: "TRATAMENTO"},
			UI:     UIData{NarrativaPrincipal: "Paciente piora."},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	state, err := c.Simulate(context.Background(), []Message{{Role: "user", Content: "START_GAME"}})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if state.Status.EstadoPaciente != "INSTAVEL" {
		t.Errorf("estado = %q, want INSTAVEL", state.Status.EstadoPaciente)
	}
}

func TestClientSimulateErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "rate limited"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Simulate(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("err = %v, want rate limited", err)
	}
}

func TestClientSimulateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Simulate(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("err = %v, want status 502", err)
	}
}

func TestClientSimulateContextCancel(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "")
	if _, err := c.Simulate(ctx, nil); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
