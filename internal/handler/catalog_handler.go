package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
	"github.com/lotuslabs/lotus-arcana-api/pkg/response"
)

type catalogService interface {
	ListApproved(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	ListAll(ctx context.Context) ([]models.Course, error)
	IncrementViews(ctx context.Context, id string) error
	Delete(ctx context.Context, id, adminID string) error
}

// CatalogHandler serves the public catalog and its admin operations.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListApproved godoc
// @Summary List approved courses
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter (easy|medium|hard)"
// @Param search query string false "Case-insensitive title/description search"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) ListApproved(c *gin.Context) {
	filter := models.CourseFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	courses, err := h.service.ListApproved(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// ListAll godoc
// @Summary List every catalog row for the admin dashboard
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/courses [get]
func (h *CatalogHandler) ListAll(c *gin.Context) {
	courses, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// IncrementViews godoc
// @Summary Increment the view counter for a course
// @Tags Catalog
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id}/views [post]
func (h *CatalogHandler) IncrementViews(c *gin.Context) {
	if err := h.service.IncrementViews(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"counted": true})
}

// Delete godoc
// @Summary Delete a published course
// @Tags Catalog
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /admin/courses/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	claims := adminFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), claims.SessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
