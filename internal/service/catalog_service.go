package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
)

const (
	catalogCacheKey     = "catalog:approved"
	catalogCachePattern = "catalog:*"
)

type courseStore interface {
	GetByID(ctx context.Context, id string) (*models.Course, error)
	ListApproved(ctx context.Context) ([]models.Course, error)
	ListAll(ctx context.Context) ([]models.Course, error)
	IncrementViews(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type catalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Invalidate(ctx context.Context, pattern string)
}

// CatalogService serves the approved catalog, the view counter, and the
// administrative course operations.
type CatalogService struct {
	courses courseStore
	audit   auditLogger
	cache   catalogCache
	logger  *zap.Logger
}

// NewCatalogService constructs the service.
func NewCatalogService(courses courseStore, audit auditLogger, cache catalogCache, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{courses: courses, audit: audit, cache: cache, logger: logger}
}

// ListApproved returns approved courses newest first. Category and free-text
// filters are applied in memory over the full fetched set; the unfiltered set
// is what gets cached, so every filter combination shares one entry. View
// counts in cached listings may lag by up to the cache TTL.
func (s *CatalogService) ListApproved(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	var courses []models.Course
	if s.cache == nil || !s.cache.Get(ctx, catalogCacheKey, &courses) {
		fetched, err := s.courses.ListApproved(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
		}
		courses = fetched
		if s.cache != nil {
			s.cache.Set(ctx, catalogCacheKey, courses)
		}
	}
	return filterCourses(courses, filter), nil
}

// ListAll returns every catalog row for the admin dashboard, bypassing the
// cache.
func (s *CatalogService) ListAll(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// IncrementViews bumps the display counter for a course.
func (s *CatalogService) IncrementViews(ctx context.Context, id string) error {
	if err := s.courses.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to increment views")
	}
	return nil
}

// Delete hard-removes a course and records the decision in the audit trail.
func (s *CatalogService) Delete(ctx context.Context, id, adminID string) error {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}

	metadata, _ := json.Marshal(map[string]interface{}{
		"video_title":     course.Title,
		"video_status":    course.Status,
		"video_category":  course.Category,
		"deletion_reason": "Manual deletion by admin",
	})
	if s.audit != nil {
		if auditErr := s.audit.CreateAuditLog(ctx, &models.AuditLog{
			AdminID:      adminID,
			Action:       models.AuditActionDelete,
			ResourceType: models.AuditResourceCourse,
			ResourceID:   id,
			Metadata:     metadata,
		}); auditErr != nil {
			s.logger.Warn("failed to persist audit log", zap.String("course_id", id), zap.Error(auditErr))
		}
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, catalogCachePattern)
	}
	s.logger.Info("course deleted", zap.String("course_id", id))
	return nil
}

func filterCourses(courses []models.Course, filter models.CourseFilter) []models.Course {
	category := strings.ToLower(strings.TrimSpace(filter.Category))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if category != "" && category != "all" && string(course.Category) != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Title), search) &&
			!strings.Contains(strings.ToLower(course.Description), search) {
			continue
		}
		result = append(result, course)
	}
	return result
}
