package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
)

func newExportFixture() *ExportService {
	store := &stubCourseStore{all: []models.Course{
		approvedCourse("c1", "Poltergeist Kitchen", "Cabinets open on their own", models.CategoryEasy),
		approvedCourse("c2", "The Marsh Lights", "Blue flames over the bog", models.CategoryMedium),
	}}
	return NewExportService(NewCatalogService(store, &stubAudit{}, nil, nil))
}

func TestExportRenderCatalogCSV(t *testing.T) {
	svc := newExportFixture()

	result, err := svc.RenderCatalog(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	require.Equal(t, "text/csv", result.ContentType)
	require.Equal(t, "catalog.csv", result.Filename)

	body := string(result.Content)
	require.True(t, strings.HasPrefix(body, "ID,Title,Category"))
	require.Contains(t, body, "Poltergeist Kitchen")
	require.Contains(t, body, "The Marsh Lights")
}

func TestExportRenderCatalogPDF(t *testing.T) {
	svc := newExportFixture()

	result, err := svc.RenderCatalog(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", result.ContentType)
	require.Equal(t, "catalog.pdf", result.Filename)
	require.True(t, bytes.HasPrefix(result.Content, []byte("%PDF")))
}

func TestExportRenderCatalogUnknownFormat(t *testing.T) {
	svc := newExportFixture()

	_, err := svc.RenderCatalog(context.Background(), ExportFormat("xlsx"))
	require.True(t, appErrors.Is(err, appErrors.ErrValidation))
}
