package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotuslabs/lotus-arcana-api/internal/dto"
	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
	"github.com/lotuslabs/lotus-arcana-api/pkg/response"
)

type moderationService interface {
	ListPending(ctx context.Context) ([]models.Draft, error)
	Approve(ctx context.Context, draftID, adminID string) (*models.Course, error)
	Reject(ctx context.Context, draftID, adminID string) error
	PurgePublished(ctx context.Context, adminID string) (int64, error)
}

// ModerationHandler exposes the review queue to administrators.
type ModerationHandler struct {
	service moderationService
}

// NewModerationHandler constructs the handler.
func NewModerationHandler(service moderationService) *ModerationHandler {
	return &ModerationHandler{service: service}
}

// ListPending godoc
// @Summary List drafts awaiting review
// @Tags Moderation
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/drafts [get]
func (h *ModerationHandler) ListPending(c *gin.Context) {
	drafts, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, drafts)
}

// Approve godoc
// @Summary Approve a pending draft and publish it to the catalog
// @Tags Moderation
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Envelope
// @Router /admin/drafts/{id}/approve [post]
func (h *ModerationHandler) Approve(c *gin.Context) {
	claims := adminFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	course, err := h.service.Approve(c.Request.Context(), c.Param("id"), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Reject godoc
// @Summary Reject a pending draft
// @Tags Moderation
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Envelope
// @Router /admin/drafts/{id}/reject [post]
func (h *ModerationHandler) Reject(c *gin.Context) {
	claims := adminFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.service.Reject(c.Request.Context(), c.Param("id"), claims.SessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"rejected": true})
}

// PurgePublished godoc
// @Summary Sweep drafts already published to the catalog
// @Tags Moderation
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/maintenance/drafts/purge [post]
func (h *ModerationHandler) PurgePublished(c *gin.Context) {
	claims := adminFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	purged, err := h.service.PurgePublished(c.Request.Context(), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PurgeResult{Purged: purged})
}
