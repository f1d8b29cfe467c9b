package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"akwana/internal/domain"
)

// Save stores a. Artifacts are immutable, so saving an existing id is a no-op.
func (db *DB) Save(ctx context.Context, a domain.Artifact) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO artifacts (id, input_ref, input_kind, matched_rule_id, fallback, title,
			status, confidence, issues, recommendations, cost_estimate, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING
	`, a.ID, a.InputRef, string(a.InputKind), a.MatchedRuleID, a.Fallback, a.Title,
		string(a.Status), a.Confidence, a.Issues, a.Recommendations, a.CostEstimate, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("save artifact %s: %w", a.ID, err)
	}
	return nil
}

func (db *DB) Load(ctx context.Context, id string) (domain.Artifact, error) {
	var (
		a      domain.Artifact
		kind   string
		status string
	)
	err := db.Pool.QueryRow(ctx, `
		SELECT id, input_ref, input_kind, COALESCE(matched_rule_id, ''), fallback, title,
			status, confidence, issues, recommendations, cost_estimate, created_at
		FROM artifacts
		WHERE id = $1
	`, id).Scan(&a.ID, &a.InputRef, &kind, &a.MatchedRuleID, &a.Fallback, &a.Title,
		&status, &a.Confidence, &a.Issues, &a.Recommendations, &a.CostEstimate, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Artifact{}, fmt.Errorf("artifact %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Artifact{}, err
	}
	a.InputKind = domain.InputKind(kind)
	a.Status = domain.Status(status)
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

// Recent returns up to limit artifacts, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]domain.Artifact, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, input_ref, input_kind, COALESCE(matched_rule_id, ''), fallback, title,
			status, confidence, issues, recommendations, cost_estimate, created_at
		FROM artifacts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Artifact{}
	for rows.Next() {
		var (
			a      domain.Artifact
			kind   string
			status string
		)
		if err := rows.Scan(&a.ID, &a.InputRef, &kind, &a.MatchedRuleID, &a.Fallback, &a.Title,
			&status, &a.Confidence, &a.Issues, &a.Recommendations, &a.CostEstimate, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.InputKind = domain.InputKind(kind)
		a.Status = domain.Status(status)
		a.CreatedAt = a.CreatedAt.UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}
