package server

import (
	"context"
	"database/sql"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) SaveResult(ctx context.Context, res GameResult) (int64, error) {
	if res.PlayerName == "" {
		res.PlayerName = "Anônimo"
	}
	if res.CaseTitle == "" {
		res.CaseTitle = "Caso Clínico Geral"
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO game_results
			(session_id, player_name, specialty, difficulty, case_title,
			 protocol_id, outcome, score, adherence_score, game_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, res.SessionID, res.PlayerName, res.Specialty, res.Difficulty,
		res.CaseTitle, nullString(res.ProtocolID), res.Outcome, res.Score,
		nullFloat(res.AdherenceScore), res.GameMinutes).Scan(&id)
	return id, err
}

func (s *SQLiteStore) Leaderboard(ctx context.Context, specialty string) ([]GameResult, error) {
	query := `
		SELECT id, session_id, player_name, specialty, difficulty, case_title,
		       protocol_id, outcome, score, adherence_score, game_minutes, created_at
		FROM game_results
	`
	var args []any
	if specialty != "" && specialty != "TODAS" {
		query += " WHERE specialty = ?"
		args = append(args, specialty)
	}
	query += " ORDER BY score DESC, created_at ASC LIMIT 10"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

func (s *SQLiteStore) PlayerHistory(ctx context.Context, playerName string) ([]GameResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, player_name, specialty, difficulty, case_title,
		       protocol_id, outcome, score, adherence_score, game_minutes, created_at
		FROM game_results
		WHERE player_name = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 200
	`, playerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]GameResult, error) {
	var out []GameResult
	for rows.Next() {
		var r GameResult
		var protocolID sql.NullString
		var adherence sql.NullFloat64
		err := rows.Scan(&r.ID, &r.SessionID, &r.PlayerName, &r.Specialty,
			&r.Difficulty, &r.CaseTitle, &protocolID, &r.Outcome, &r.Score,
			&adherence, &r.GameMinutes, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		if protocolID.Valid {
			r.ProtocolID = protocolID.String
		}
		if adherence.Valid {
			v := adherence.Float64
			r.AdherenceScore = &v
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
