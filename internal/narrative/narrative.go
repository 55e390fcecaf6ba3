// Package narrative is the boundary to the external LLM narrator. The
// engine treats it as an opaque generator: numeric context goes in via
// prompt blocks, free-text narration comes back, and the best-effort
// parsers here extract the few structured facts the engine needs (seed
// vitals, patient acuity). Parsing lives behind narrow functions so a
// structured-output contract can replace it without touching the engine.
package narrative

import "context"

// Message is one turn of the conversation with the generator.
type Message struct {
	Role    string `json:"role"` // "user", "assistant" or "system"
	Content string `json:"content"`
}

// Status is the generator's own view of the simulation state.
type Status struct {
	Fase           string `json:"fase"`
	EstadoPaciente string `json:"estado_paciente"`
	VidaRestante   int    `json:"vida_restante"`
	CurrentScore   int    `json:"current_score"`
	TempoDeJogo    string `json:"tempo_de_jogo"`
	TimerSeconds   int    `json:"timer_seconds,omitempty"`
}

// UIData carries the player-facing narration.
type UIData struct {
	Manchete           string `json:"manchete"`
	NarrativaPrincipal string `json:"narrativa_principal"`
	FeedbackMentor     string `json:"feedback_mentor"`
	ScoreFeedback      string `json:"score_feedback"`
}

// MedicalData carries the prose rendering of vitals and exam results.
type MedicalData struct {
	SinaisVitais     string `json:"sinais_vitais"`
	ExamesResultados string `json:"exames_resultados"`
}

// Option is one interaction choice offered to the player.
type Option struct {
	ID    string `json:"id"`
	Texto string `json:"texto"`
	Tipo  string `json:"tipo"`
}

// TurnState is the generator's full response for one turn.
type TurnState struct {
	Status  Status      `json:"status_simulacao"`
	UI      UIData      `json:"interface_usuario"`
	Medical MedicalData `json:"dados_medicos"`
	Options []Option    `json:"opcoes_interacao"`
}

// Text concatenates the narrative fragments scanned for conditions,
// protocol detection and vitals extraction.
func (t TurnState) Text() string {
	return t.UI.Manchete + "\n" + t.UI.NarrativaPrincipal + "\n" +
		t.Medical.SinaisVitais + "\n" + t.Medical.ExamesResultados
}

// Generator produces the next turn of narration from the conversation so
// far. Implementations may block on network I/O; the context cancels them.
type Generator interface {
	Simulate(ctx context.Context, messages []Message) (TurnState, error)
}
