package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotuslabs/lotus-arcana-api/internal/service"
	"github.com/lotuslabs/lotus-arcana-api/pkg/response"
)

type exportService interface {
	RenderCatalog(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
}

// ExportHandler serves catalog snapshots for the admin dashboard.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Catalog godoc
// @Summary Download the catalog as CSV or PDF
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /admin/export/courses [get]
func (h *ExportHandler) Catalog(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))
	result, err := h.service.RenderCatalog(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
