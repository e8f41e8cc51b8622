package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// CategoryStatData is the per-category tally stored with a finished result.
type CategoryStatData struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ResultRecord is one finished session in the history.
type ResultRecord struct {
	ID         int
	SessionID  string
	QuizTitle  string
	Mode       string
	Score      int
	Total      int
	Percent    int
	Categories map[string]CategoryStatData
	FinishedAt time.Time
}

// ResultRepo appends and lists finished session results.
type ResultRepo interface {
	Append(ctx context.Context, rec ResultRecord) error

	// List returns results most recent first, at most limit (0 = all).
	List(ctx context.Context, limit int) ([]ResultRecord, error)
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, rec ResultRecord) error {
	cats, err := json.Marshal(rec.Categories)
	if err != nil {
		return fmt.Errorf("marshal category stats: %w", err)
	}

	finishedAt := rec.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO results (session_id, quiz_title, mode, score, total, percent, category_stats, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.QuizTitle, rec.Mode, rec.Score, rec.Total, rec.Percent, string(cats), finishedAt)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (r *resultRepo) List(ctx context.Context, limit int) ([]ResultRecord, error) {
	q := `SELECT id, session_id, quiz_title, mode, score, total, percent, category_stats, finished_at
		FROM results ORDER BY finished_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var (
			rec  ResultRecord
			cats string
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.QuizTitle, &rec.Mode,
			&rec.Score, &rec.Total, &rec.Percent, &cats, &rec.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(cats), &rec.Categories); err != nil {
			return nil, fmt.Errorf("unmarshal category stats: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}
