package service

import (
	"context"
	"strconv"

	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
	"github.com/lotuslabs/lotus-arcana-api/pkg/export"
)

// ExportFormat names a supported catalog export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportService renders catalog snapshots for the admin dashboard.
type ExportService struct {
	catalog *CatalogService
}

// NewExportService constructs the service.
func NewExportService(catalog *CatalogService) *ExportService {
	return &ExportService{catalog: catalog}
}

// ExportResult carries rendered bytes plus the response metadata a handler
// needs to serve them.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// RenderCatalog produces a tabular snapshot of every catalog row.
func (s *ExportService) RenderCatalog(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	courses, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   "Lotus Arcana Catalog",
		Columns: []string{"ID", "Title", "Category", "Duration", "Status", "Views", "Created"},
	}
	for _, c := range courses {
		table.Rows = append(table.Rows, []string{
			c.ID,
			c.Title,
			string(c.Category),
			c.Duration,
			string(c.Status),
			strconv.FormatInt(c.Views, 10),
			c.CreatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}

	switch format {
	case ExportFormatCSV:
		content, err := export.RenderCSV(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "catalog.csv"}, nil
	case ExportFormatPDF:
		content, err := export.RenderPDF(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "catalog.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
