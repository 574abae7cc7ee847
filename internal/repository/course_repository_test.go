package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
)

func courseColumns() []string {
	return []string{"id", "title", "description", "video_url", "thumbnail_url", "category", "duration", "quiz_questions", "status", "views", "instructor_id", "created_at"}
}

func TestCourseRepositoryCreateMintsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO courses")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	course := &models.Course{
		Title:    "Shadow in the Orchard",
		VideoURL: "https://youtu.be/abc",
		Category: models.CategoryEasy,
		Status:   models.CourseStatusApproved,
	}
	require.NoError(t, repo.Create(context.Background(), course))
	require.NotEmpty(t, course.ID)
	require.False(t, course.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListApproved(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	rows := sqlmock.NewRows(courseColumns()).
		AddRow("course-1", "Shadow in the Orchard", "", "https://youtu.be/abc", nil, "easy", "5 min", `[]`, "approved", 7, nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE status =")).
		WithArgs(models.CourseStatusApproved).
		WillReturnRows(rows)

	courses, err := repo.ListApproved(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, int64(7), courses[0].Views)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryIncrementViews(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE courses SET views = views + 1")).
		WithArgs("course-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.IncrementViews(context.Background(), "course-1"))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE courses SET views = views + 1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.IncrementViews(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM courses WHERE id =")).
		WithArgs("course-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "course-1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM courses WHERE id =")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
