package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/lotuslabs/lotus-arcana-api/internal/dto"
	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
	"github.com/lotuslabs/lotus-arcana-api/pkg/response"
)

type intakeService interface {
	Submit(ctx context.Context, req dto.SubmitDraftRequest) (*models.Draft, error)
}

// IntakeHandler exposes the public submission endpoint.
type IntakeHandler struct {
	service intakeService
}

// NewIntakeHandler constructs the handler.
func NewIntakeHandler(service intakeService) *IntakeHandler {
	return &IntakeHandler{service: service}
}

// Submit godoc
// @Summary Submit a video draft for moderation
// @Tags Drafts
// @Accept json
// @Produce json
// @Param payload body dto.SubmitDraftRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Router /drafts [post]
func (h *IntakeHandler) Submit(c *gin.Context) {
	var req dto.SubmitDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid submission payload"))
		return
	}
	draft, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, draft)
}
