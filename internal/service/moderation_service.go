package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
)

type draftStore interface {
	GetByID(ctx context.Context, id string) (*models.Draft, error)
	ListPending(ctx context.Context) ([]models.Draft, error)
	MarkPublished(ctx context.Context, id string) error
	MarkPending(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeletePublished(ctx context.Context) (int64, error)
}

type courseWriter interface {
	Create(ctx context.Context, course *models.Course) error
}

type auditLogger interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string)
}

// ModerationService owns the review queue and the pending→published
// transition. Per draft the state machine is:
// pending --approve--> published (course created), pending --reject--> deleted.
type ModerationService struct {
	drafts  draftStore
	courses courseWriter
	audit   auditLogger
	cache   cacheInvalidator
	metrics *MetricsService
	logger  *zap.Logger
}

// NewModerationService constructs the service.
func NewModerationService(drafts draftStore, courses courseWriter, audit auditLogger, cache cacheInvalidator, metrics *MetricsService, logger *zap.Logger) *ModerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModerationService{drafts: drafts, courses: courses, audit: audit, cache: cache, metrics: metrics, logger: logger}
}

// ListPending returns the review queue, newest submission first.
func (s *ModerationService) ListPending(ctx context.Context) ([]models.Draft, error) {
	drafts, err := s.drafts.ListPending(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pending drafts")
	}
	if drafts == nil {
		drafts = []models.Draft{}
	}
	return drafts, nil
}

// Approve publishes a pending draft: the draft is conditionally claimed
// (pending→published), then a fresh approved course is inserted with views
// initialised to zero. The conditional claim makes a concurrent second approve
// lose cleanly instead of producing a duplicate course. When the course insert
// fails the claim is reverted so the draft returns to the queue; a failed
// revert is logged and never surfaced because the reviewer will simply see the
// draft again after the next purge inspection.
func (s *ModerationService) Approve(ctx context.Context, draftID, adminID string) (*models.Course, error) {
	draft, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "draft not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load draft")
	}
	if draft.Status != models.DraftStatusPending {
		return nil, appErrors.Clone(appErrors.ErrConflict, "draft already published")
	}

	if err := s.drafts.MarkPublished(ctx, draftID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "draft already claimed by another review")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to claim draft")
	}

	course := &models.Course{
		Title:         draft.Title,
		Description:   draft.Description,
		VideoURL:      draft.VideoURL,
		ThumbnailURL:  draft.ThumbnailURL,
		Category:      draft.Category,
		Duration:      draft.Duration,
		QuizQuestions: draft.QuizQuestions,
		Status:        models.CourseStatusApproved,
		Views:         0,
		InstructorID:  draft.InstructorID,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		if revertErr := s.drafts.MarkPending(ctx, draftID); revertErr != nil {
			s.logger.Error("failed to revert claimed draft after course insert failure",
				zap.String("draft_id", draftID), zap.Error(revertErr))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to publish course")
	}

	s.emitAudit(ctx, &models.AuditLog{
		AdminID:      adminID,
		Action:       models.AuditActionApprove,
		ResourceType: models.AuditResourceDraft,
		ResourceID:   draftID,
		Metadata: mustJSON(map[string]interface{}{
			"draft_title": draft.Title,
			"category":    draft.Category,
			"course_id":   course.ID,
		}),
	})
	if s.cache != nil {
		s.cache.Invalidate(ctx, catalogCachePattern)
	}
	s.metrics.RecordModerationDecision(models.AuditActionApprove)
	s.logger.Info("draft approved", zap.String("draft_id", draftID), zap.String("course_id", course.ID))
	return course, nil
}

// Reject removes a pending draft outright. Rejecting an already-absent draft
// is treated as satisfied; no course is ever created from a rejected draft.
func (s *ModerationService) Reject(ctx context.Context, draftID, adminID string) error {
	if err := s.drafts.Delete(ctx, draftID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reject draft")
	}
	s.emitAudit(ctx, &models.AuditLog{
		AdminID:      adminID,
		Action:       models.AuditActionReject,
		ResourceType: models.AuditResourceDraft,
		ResourceID:   draftID,
	})
	s.metrics.RecordModerationDecision(models.AuditActionReject)
	s.logger.Info("draft rejected", zap.String("draft_id", draftID))
	return nil
}

// PurgePublished sweeps drafts already copied into the catalog.
func (s *ModerationService) PurgePublished(ctx context.Context, adminID string) (int64, error) {
	purged, err := s.drafts.DeletePublished(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to purge published drafts")
	}
	s.emitAudit(ctx, &models.AuditLog{
		AdminID:      adminID,
		Action:       models.AuditActionPurge,
		ResourceType: models.AuditResourceDraft,
		ResourceID:   "published",
		Metadata:     mustJSON(map[string]interface{}{"purged": purged}),
	})
	s.metrics.RecordModerationDecision(models.AuditActionPurge)
	s.logger.Info("published drafts purged", zap.Int64("purged", purged))
	return purged, nil
}

func (s *ModerationService) emitAudit(ctx context.Context, log *models.AuditLog) {
	if s.audit == nil || log == nil {
		return
	}
	if err := s.audit.CreateAuditLog(ctx, log); err != nil {
		s.logger.Warn("failed to persist audit log",
			zap.String("action", log.Action), zap.String("resource_id", log.ResourceID), zap.Error(err))
	}
}

func mustJSON(value map[string]interface{}) []byte {
	raw, err := json.Marshal(value)
	if err != nil {
		return []byte("{}")
	}
	return raw
}
