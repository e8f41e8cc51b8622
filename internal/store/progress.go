package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ModePrefKey is the preferences key for the remembered quiz mode. It is
// independent of the in-progress record: clearing progress keeps the mode.
const ModePrefKey = "mode"

// ProgressRecord is the durable snapshot of an in-progress session.
// A record is resumable only against a pack whose length equals Total.
type ProgressRecord struct {
	Index   int         `json:"index"`
	Answers map[int]int `json:"answers"`
	Mode    string      `json:"mode"`
	Total   int         `json:"total"`
}

// ProgressRepo persists the single in-progress session record.
type ProgressRepo interface {
	// Save overwrites the progress record.
	Save(ctx context.Context, rec ProgressRecord) error

	// Load returns the saved record, or nil if none exists.
	Load(ctx context.Context) (*ProgressRecord, error)

	// Clear deletes the saved record.
	Clear(ctx context.Context) error
}

// PrefRepo persists small key-value preferences.
type PrefRepo interface {
	// SetMode remembers the chosen quiz mode across sessions.
	SetMode(ctx context.Context, mode string) error

	// Mode returns the remembered mode, or "" if none is saved.
	Mode(ctx context.Context) (string, error)
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Save(ctx context.Context, rec ProgressRecord) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO progress (id, current_index, answers, mode, total, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			current_index = excluded.current_index,
			answers = excluded.answers,
			mode = excluded.mode,
			total = excluded.total,
			updated_at = excluded.updated_at`,
		rec.Index, string(answers), rec.Mode, rec.Total, time.Now())
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Load(ctx context.Context) (*ProgressRecord, error) {
	var (
		rec     ProgressRecord
		answers string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT current_index, answers, mode, total FROM progress WHERE id = 1`).
		Scan(&rec.Index, &answers, &rec.Mode, &rec.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}
	return &rec, nil
}

func (r *progressRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE id = 1`); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

type prefRepo struct {
	db *sql.DB
}

func (r *prefRepo) SetMode(ctx context.Context, mode string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		ModePrefKey, mode)
	if err != nil {
		return fmt.Errorf("save mode preference: %w", err)
	}
	return nil
}

func (r *prefRepo) Mode(ctx context.Context) (string, error) {
	var mode string
	err := r.db.QueryRowContext(ctx, `
		SELECT value FROM preferences WHERE key = ?`, ModePrefKey).
		Scan(&mode)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load mode preference: %w", err)
	}
	return mode, nil
}
