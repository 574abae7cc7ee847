package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func draftColumns() []string {
	return []string{"id", "title", "description", "video_url", "thumbnail_url", "category", "duration", "quiz_questions", "instructor_id", "status", "created_at", "updated_at"}
}

func TestDraftRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDraftRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO drafts")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	draft := &models.Draft{
		Title:       "Haunted Attic",
		Description: "Footsteps above an empty room",
		VideoURL:    "https://youtu.be/abc123",
		Category:    models.CategoryMedium,
		Duration:    "12 min",
	}
	require.NoError(t, repo.Create(context.Background(), draft))
	require.NotEmpty(t, draft.ID)
	require.Equal(t, models.DraftStatusPending, draft.Status)

	rows := sqlmock.NewRows(draftColumns()).
		AddRow(draft.ID, "Haunted Attic", "Footsteps above an empty room", "https://youtu.be/abc123", nil, "medium", "12 min", `[]`, nil, "pending", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description")).
		WithArgs(draft.ID).
		WillReturnRows(rows)

	found, err := repo.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	require.Equal(t, draft.ID, found.ID)
	require.Equal(t, models.CategoryMedium, found.Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepositoryListPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDraftRepository(db)
	rows := sqlmock.NewRows(draftColumns()).
		AddRow("draft-1", "Ghost Bridge", "Lights under the arch", "https://youtu.be/xyz", nil, "hard", "8 min", `[]`, nil, "pending", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM drafts WHERE status =")).
		WithArgs(models.DraftStatusPending).
		WillReturnRows(rows)

	drafts, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	require.Equal(t, "draft-1", drafts[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepositoryMarkPublished(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDraftRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE drafts SET status =")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkPublished(context.Background(), "draft-1"))

	// A second claim finds no pending row and loses.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drafts SET status =")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.MarkPublished(context.Background(), "draft-1")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepositoryDeleteIsIdempotent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDraftRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM drafts WHERE id =")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "missing"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepositoryDeletePublished(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewDraftRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM drafts WHERE status =")).
		WithArgs(models.DraftStatusPublished).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.DeletePublished(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), purged)
	require.NoError(t, mock.ExpectationsWereMet())
}
