package server

import (
	"context"
)

// GameResult is one persisted session outcome.
type GameResult struct {
	ID             int64    `json:"id"`
	SessionID      string   `json:"sessionId"`
	PlayerName     string   `json:"playerName"`
	Specialty      string   `json:"specialty"`
	Difficulty     string   `json:"difficulty"`
	CaseTitle      string   `json:"caseTitle"`
	ProtocolID     string   `json:"protocolId,omitempty"`
	Outcome        string   `json:"outcome"`
	Score          int      `json:"score"`
	AdherenceScore *float64 `json:"adherenceScore,omitempty"`
	GameMinutes    int      `json:"gameMinutes"`
	CreatedAt      string   `json:"createdAt"`
}

type Store interface {
	SaveResult(ctx context.Context, res GameResult) (int64, error)
	// Leaderboard returns the top results by score. specialty filters
	// unless empty or "TODAS".
	Leaderboard(ctx context.Context, specialty string) ([]GameResult, error)
	// PlayerHistory returns a player's results, newest first, capped at 200.
	PlayerHistory(ctx context.Context, playerName string) ([]GameResult, error)
}
