package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gestdoc/internal/domain"
	"gestdoc/internal/handler"
	"gestdoc/mocks"
)

func documentRouter(docSvc *mocks.MockDocumentService, companySvc *mocks.MockCompanyService, templateSvc *mocks.MockTemplateService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewDocumentHandler(docSvc, companySvc, templateSvc)
	r.GET("/api/v1/documents/export", h.Export)
	return r
}

func registryPage(n int, companyID, templateID uuid.UUID) []domain.GeneratedDocument {
	docs := make([]domain.GeneratedDocument, n)
	for i := range docs {
		docs[i] = domain.GeneratedDocument{
			ID:           uuid.New(),
			CompanyID:    companyID,
			TemplateID:   templateID,
			EmployeeName: "MARIO PEREZ",
			Status:       domain.DocumentStatusFinal,
		}
	}
	return docs
}

func TestDocumentHandler_ExportPagesThroughWholeRegistry(t *testing.T) {
	docSvc := new(mocks.MockDocumentService)
	companySvc := new(mocks.MockCompanyService)
	templateSvc := new(mocks.MockTemplateService)

	companyID := uuid.New()
	templateID := uuid.New()
	const total = 1173

	// Three pages: 500 + 500 + 173. The export must keep paging past the
	// first batch instead of truncating.
	docSvc.On("List", mock.Anything, mock.Anything, 0, 500).Return(registryPage(500, companyID, templateID), total, nil)
	docSvc.On("List", mock.Anything, mock.Anything, 500, 500).Return(registryPage(500, companyID, templateID), total, nil)
	docSvc.On("List", mock.Anything, mock.Anything, 1000, 500).Return(registryPage(173, companyID, templateID), total, nil)
	companySvc.On("GetByID", mock.Anything, companyID).Return(&domain.Company{ID: companyID, LegalName: "ACME S.A."}, nil)
	templateSvc.On("GetByID", mock.Anything, templateID).Return(&domain.Template{ID: templateID, Name: "Contrato Base"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/export", nil)
	w := httptest.NewRecorder()
	documentRouter(docSvc, companySvc, templateSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	docSvc.AssertExpectations(t)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Documentos")
	require.NoError(t, err)
	assert.Len(t, rows, total+1)
	assert.Equal(t, "ACME S.A.", rows[1][3])

	// Reference names are resolved once per id, not once per row.
	companySvc.AssertNumberOfCalls(t, "GetByID", 1)
	templateSvc.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestDocumentHandler_ExportEmptyRegistry(t *testing.T) {
	docSvc := new(mocks.MockDocumentService)
	docSvc.On("List", mock.Anything, mock.Anything, 0, 500).Return([]domain.GeneratedDocument{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/export", nil)
	w := httptest.NewRecorder()
	documentRouter(docSvc, new(mocks.MockCompanyService), new(mocks.MockTemplateService)).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Documentos")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
