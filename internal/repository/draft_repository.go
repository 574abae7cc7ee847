package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
)

// DraftRepository persists pending submissions.
type DraftRepository struct {
	db *sqlx.DB
}

// NewDraftRepository constructs the repository.
func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Create inserts a new pending draft row.
func (r *DraftRepository) Create(ctx context.Context, draft *models.Draft) error {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if draft.Status == "" {
		draft.Status = models.DraftStatusPending
	}
	now := time.Now().UTC()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now
	const query = `INSERT INTO drafts
	(id, title, description, video_url, thumbnail_url, category, duration, quiz_questions, instructor_id, status, created_at, updated_at)
	VALUES (:id, :title, :description, :video_url, :thumbnail_url, :category, :duration, :quiz_questions, :instructor_id, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, draft); err != nil {
		return fmt.Errorf("create draft: %w", err)
	}
	return nil
}

// GetByID fetches a draft by identifier.
func (r *DraftRepository) GetByID(ctx context.Context, id string) (*models.Draft, error) {
	const query = `SELECT id, title, description, video_url, thumbnail_url, category, duration, quiz_questions, instructor_id, status, created_at, updated_at
	FROM drafts WHERE id = $1`
	var draft models.Draft
	if err := r.db.GetContext(ctx, &draft, query, id); err != nil {
		return nil, err
	}
	return &draft, nil
}

// ListPending returns all drafts awaiting review, newest first.
func (r *DraftRepository) ListPending(ctx context.Context) ([]models.Draft, error) {
	const query = `SELECT id, title, description, video_url, thumbnail_url, category, duration, quiz_questions, instructor_id, status, created_at, updated_at
	FROM drafts WHERE status = $1 ORDER BY created_at DESC`
	var drafts []models.Draft
	if err := r.db.SelectContext(ctx, &drafts, query, models.DraftStatusPending); err != nil {
		return nil, fmt.Errorf("list pending drafts: %w", err)
	}
	return drafts, nil
}

// MarkPublished claims a pending draft for publication. The conditional update
// makes concurrent approvals of the same draft mutually exclusive: the loser
// sees sql.ErrNoRows.
func (r *DraftRepository) MarkPublished(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, models.DraftStatusPending, models.DraftStatusPublished)
}

// MarkPending reverts a claimed draft back to the review queue.
func (r *DraftRepository) MarkPending(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, models.DraftStatusPublished, models.DraftStatusPending)
}

func (r *DraftRepository) setStatus(ctx context.Context, id string, from, to models.DraftStatus) error {
	const query = `UPDATE drafts SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	result, err := r.db.ExecContext(ctx, query, to, time.Now().UTC(), id, from)
	if err != nil {
		return fmt.Errorf("update draft status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check draft status rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a draft row. Deleting an absent draft is not an error.
func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM drafts WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// DeletePublished sweeps rows already copied into the catalog and returns the
// number removed.
func (r *DraftRepository) DeletePublished(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM drafts WHERE status = $1", models.DraftStatusPublished)
	if err != nil {
		return 0, fmt.Errorf("purge published drafts: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("check purge rows: %w", err)
	}
	return rows, nil
}
