package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/medsimlab/clinsim/internal/narrative"
	"github.com/medsimlab/clinsim/internal/protocol"
	"github.com/medsimlab/clinsim/internal/sim"
)

var ErrSessionBusy = errors.New("session busy")

// Session owns one running simulation: a dedicated engine, the conversation
// history fed to the narrative generator, and the detected protocol. Turns
// are serialized by mu; a turn that cannot take the lock is rejected rather
// than queued, so a slow generator call never stacks actions.
type Session struct {
	ID          string
	PlayerName  string
	Specialty   string
	Difficulty  string
	CaseTitle   string
	CaseText    string
	Engine      *sim.Engine
	Protocol    *protocol.Definition
	History     []narrative.Message
	Acuity      sim.Acuity
	Score       int
	LastEval    *protocol.Evaluation
	Opts        []narrative.Option
	LastMessage string

	mu sync.Mutex
}

// TryLock reserves the session for one turn. Callers must Unlock.
func (s *Session) TryLock() bool { return s.mu.TryLock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// Sessions is the in-memory registry of live simulations, keyed by UUID.
type Sessions struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byID: make(map[string]*Session)}
}

// Create registers a new session with a fresh UUID.
func (r *Sessions) Create(s *Session) *Session {
	s.ID = uuid.NewString()
	r.mu.Lock()
	r.byID[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.byID[id]
	r.mu.RUnlock()
	return s, ok
}

func (r *Sessions) Delete(id string) {
	r.mu.Lock()
	delete(r.byID, id)
	r.mu.Unlock()
}

func (r *Sessions) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
