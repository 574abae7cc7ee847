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

// CourseRepository persists the public catalog.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new catalog row. A fresh identity is minted when the caller
// leaves ID empty, which is always the case on publish.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses
	(id, title, description, video_url, thumbnail_url, category, duration, quiz_questions, status, views, instructor_id, created_at)
	VALUES (:id, :title, :description, :video_url, :thumbnail_url, :category, :duration, :quiz_questions, :status, :views, :instructor_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// GetByID fetches a course by identifier.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	const query = `SELECT id, title, description, video_url, thumbnail_url, category, duration, quiz_questions, status, views, instructor_id, created_at
	FROM courses WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// ListApproved returns the publicly visible catalog, newest first.
func (r *CourseRepository) ListApproved(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT id, title, description, video_url, thumbnail_url, category, duration, quiz_questions, status, views, instructor_id, created_at
	FROM courses WHERE status = $1 ORDER BY created_at DESC`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, models.CourseStatusApproved); err != nil {
		return nil, fmt.Errorf("list approved courses: %w", err)
	}
	return courses, nil
}

// ListAll returns every catalog row regardless of status, newest first.
func (r *CourseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT id, title, description, video_url, thumbnail_url, category, duration, quiz_questions, status, views, instructor_id, created_at
	FROM courses ORDER BY created_at DESC`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// IncrementViews bumps the display counter in a single statement, so
// concurrent increments never lose updates.
func (r *CourseRepository) IncrementViews(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE courses SET views = views + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check increment rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete hard-removes a course. Deleting an absent id reports sql.ErrNoRows.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check delete rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
