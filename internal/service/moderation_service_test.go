package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
)

type stubDraftStore struct {
	drafts         map[string]*models.Draft
	pending        []models.Draft
	claimErr       error
	deleteErr      error
	publishedCount int64
	deleted        []string
	reverted       []string
}

func (s *stubDraftStore) GetByID(_ context.Context, id string) (*models.Draft, error) {
	draft, ok := s.drafts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *draft
	return &copied, nil
}

func (s *stubDraftStore) ListPending(_ context.Context) ([]models.Draft, error) {
	return s.pending, nil
}

func (s *stubDraftStore) MarkPublished(_ context.Context, id string) error {
	if s.claimErr != nil {
		return s.claimErr
	}
	draft, ok := s.drafts[id]
	if !ok || draft.Status != models.DraftStatusPending {
		return sql.ErrNoRows
	}
	draft.Status = models.DraftStatusPublished
	return nil
}

func (s *stubDraftStore) MarkPending(_ context.Context, id string) error {
	s.reverted = append(s.reverted, id)
	if draft, ok := s.drafts[id]; ok {
		draft.Status = models.DraftStatusPending
	}
	return nil
}

func (s *stubDraftStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	delete(s.drafts, id)
	return nil
}

func (s *stubDraftStore) DeletePublished(_ context.Context) (int64, error) {
	return s.publishedCount, nil
}

type stubCourseWriter struct {
	created []*models.Course
	err     error
}

func (s *stubCourseWriter) Create(_ context.Context, course *models.Course) error {
	if s.err != nil {
		return s.err
	}
	course.ID = "course-1"
	s.created = append(s.created, course)
	return nil
}

type stubAudit struct {
	logs []*models.AuditLog
	err  error
}

func (s *stubAudit) CreateAuditLog(_ context.Context, log *models.AuditLog) error {
	if s.err != nil {
		return s.err
	}
	s.logs = append(s.logs, log)
	return nil
}

type stubInvalidator struct {
	patterns []string
}

func (s *stubInvalidator) Invalidate(_ context.Context, pattern string) {
	s.patterns = append(s.patterns, pattern)
}

func pendingDraft(id string) *models.Draft {
	thumb := "https://img.youtube.com/vi/abc/hqdefault.jpg"
	return &models.Draft{
		ID:           id,
		Title:        "Orb Field at Dusk",
		Description:  "Multiple light anomalies",
		VideoURL:     "https://youtu.be/abc",
		ThumbnailURL: &thumb,
		Category:     models.CategoryHard,
		Duration:     "9 min",
		QuizQuestions: models.QuizQuestions{
			{Question: "How many orbs?", Options: []string{"Two", "Five"}, CorrectAnswer: 1},
		},
		Status: models.DraftStatusPending,
	}
}

func TestModerationApprovePublishesCourse(t *testing.T) {
	drafts := &stubDraftStore{drafts: map[string]*models.Draft{"draft-1": pendingDraft("draft-1")}}
	courses := &stubCourseWriter{}
	audit := &stubAudit{}
	cache := &stubInvalidator{}
	svc := NewModerationService(drafts, courses, audit, cache, nil, nil)

	course, err := svc.Approve(context.Background(), "draft-1", "session-9")
	require.NoError(t, err)
	require.Len(t, courses.created, 1)
	require.Equal(t, "Orb Field at Dusk", course.Title)
	require.Equal(t, models.CourseStatusApproved, course.Status)
	require.Equal(t, int64(0), course.Views)
	require.Len(t, course.QuizQuestions, 1)

	// Draft stays behind as published rather than being deleted.
	require.Equal(t, models.DraftStatusPublished, drafts.drafts["draft-1"].Status)

	require.Len(t, audit.logs, 1)
	require.Equal(t, models.AuditActionApprove, audit.logs[0].Action)
	require.Equal(t, "session-9", audit.logs[0].AdminID)
	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(audit.logs[0].Metadata, &meta))
	require.Equal(t, "course-1", meta["course_id"])

	require.Equal(t, []string{"catalog:*"}, cache.patterns)
}

func TestModerationApproveUnknownDraft(t *testing.T) {
	svc := NewModerationService(&stubDraftStore{drafts: map[string]*models.Draft{}}, &stubCourseWriter{}, &stubAudit{}, nil, nil, nil)

	_, err := svc.Approve(context.Background(), "missing", "session-9")
	require.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestModerationApproveAlreadyPublished(t *testing.T) {
	draft := pendingDraft("draft-1")
	draft.Status = models.DraftStatusPublished
	drafts := &stubDraftStore{drafts: map[string]*models.Draft{"draft-1": draft}}
	courses := &stubCourseWriter{}
	svc := NewModerationService(drafts, courses, &stubAudit{}, nil, nil, nil)

	_, err := svc.Approve(context.Background(), "draft-1", "session-9")
	require.True(t, appErrors.Is(err, appErrors.ErrConflict))
	require.Empty(t, courses.created)
}

func TestModerationApproveLosesConcurrentClaim(t *testing.T) {
	drafts := &stubDraftStore{
		drafts:   map[string]*models.Draft{"draft-1": pendingDraft("draft-1")},
		claimErr: sql.ErrNoRows,
	}
	courses := &stubCourseWriter{}
	svc := NewModerationService(drafts, courses, &stubAudit{}, nil, nil, nil)

	_, err := svc.Approve(context.Background(), "draft-1", "session-9")
	require.True(t, appErrors.Is(err, appErrors.ErrConflict))
	require.Empty(t, courses.created)
}

func TestModerationApproveRevertsClaimOnInsertFailure(t *testing.T) {
	drafts := &stubDraftStore{drafts: map[string]*models.Draft{"draft-1": pendingDraft("draft-1")}}
	courses := &stubCourseWriter{err: errors.New("insert failed")}
	svc := NewModerationService(drafts, courses, &stubAudit{}, nil, nil, nil)

	_, err := svc.Approve(context.Background(), "draft-1", "session-9")
	require.True(t, appErrors.Is(err, appErrors.ErrInternal))
	require.Equal(t, []string{"draft-1"}, drafts.reverted)
	require.Equal(t, models.DraftStatusPending, drafts.drafts["draft-1"].Status)
}

func TestModerationApproveSurvivesAuditFailure(t *testing.T) {
	drafts := &stubDraftStore{drafts: map[string]*models.Draft{"draft-1": pendingDraft("draft-1")}}
	svc := NewModerationService(drafts, &stubCourseWriter{}, &stubAudit{err: errors.New("audit down")}, nil, nil, nil)

	course, err := svc.Approve(context.Background(), "draft-1", "session-9")
	require.NoError(t, err)
	require.NotNil(t, course)
}

func TestModerationRejectDeletesDraft(t *testing.T) {
	drafts := &stubDraftStore{drafts: map[string]*models.Draft{"draft-1": pendingDraft("draft-1")}}
	courses := &stubCourseWriter{}
	audit := &stubAudit{}
	svc := NewModerationService(drafts, courses, audit, nil, nil, nil)

	require.NoError(t, svc.Reject(context.Background(), "draft-1", "session-9"))
	require.Equal(t, []string{"draft-1"}, drafts.deleted)
	require.Empty(t, courses.created)
	require.Len(t, audit.logs, 1)
	require.Equal(t, models.AuditActionReject, audit.logs[0].Action)
}

func TestModerationRejectAbsentDraftIsSatisfied(t *testing.T) {
	drafts := &stubDraftStore{drafts: map[string]*models.Draft{}}
	svc := NewModerationService(drafts, &stubCourseWriter{}, &stubAudit{}, nil, nil, nil)

	require.NoError(t, svc.Reject(context.Background(), "missing", "session-9"))
}

func TestModerationPurgePublished(t *testing.T) {
	drafts := &stubDraftStore{publishedCount: 4}
	audit := &stubAudit{}
	svc := NewModerationService(drafts, &stubCourseWriter{}, audit, nil, nil, nil)

	purged, err := svc.PurgePublished(context.Background(), "session-9")
	require.NoError(t, err)
	require.Equal(t, int64(4), purged)
	require.Len(t, audit.logs, 1)
	require.Equal(t, models.AuditActionPurge, audit.logs[0].Action)
}

func TestModerationListPendingNeverNil(t *testing.T) {
	svc := NewModerationService(&stubDraftStore{}, &stubCourseWriter{}, &stubAudit{}, nil, nil, nil)

	drafts, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.NotNil(t, drafts)
	require.Empty(t, drafts)
}
