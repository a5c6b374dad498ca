package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gestdoc/internal/domain"
	"gestdoc/internal/export"
	"gestdoc/internal/port"
	"gestdoc/internal/service"
)

// DocumentHandler handles contract generation and registry endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
	companyService  service.CompanyService
	templateService service.TemplateService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(
	documentService service.DocumentService,
	companyService service.CompanyService,
	templateService service.TemplateService,
) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		companyService:  companyService,
		templateService: templateService,
	}
}

// Generate handles POST /api/v1/documents/generate
func (h *DocumentHandler) Generate(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.CreatedBy = userID

	doc, err := h.documentService.Generate(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// Process handles POST /api/v1/documents/process
// Multipart form: image file plus template_id, company_id and
// representative_id fields. Runs recognition, extraction and rendering in a
// single call.
func (h *DocumentHandler) Process(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	templateID, err := uuid.Parse(c.PostForm("template_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid template_id")
		return
	}
	companyID, err := uuid.Parse(c.PostForm("company_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid company_id")
		return
	}
	representativeID, err := uuid.Parse(c.PostForm("representative_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid representative_id")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing image file")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot open uploaded file")
		return
	}
	defer f.Close()
	image, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot read uploaded file")
		return
	}

	out, err := h.documentService.Process(c.Request.Context(), service.ProcessInput{
		TemplateID:       templateID,
		CompanyID:        companyID,
		RepresentativeID: representativeID,
		ContractDate:     c.PostForm("fecha_contrato"),
		Image:            image,
		ContentType:      fileHeader.Header.Get("Content-Type"),
		Notes:            c.PostForm("notas"),
		CreatedBy:        userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, out)
}

// List handles GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	filter := h.parseFilter(c)
	docs, total, err := h.documentService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Download handles GET /api/v1/documents/:id/download
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	url, err := h.documentService.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// UpdateStatus handles PATCH /api/v1/documents/:id/status
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var input struct {
		Status domain.DocumentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	switch input.Status {
	case domain.DocumentStatusDraft, domain.DocumentStatusFinal, domain.DocumentStatusCancelled:
	default:
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid status; allowed: borrador, final, anulado")
		return
	}

	if err := h.documentService.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"status": input.Status})
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": id})
}

// exportPageSize is the batch size used when walking the registry for an
// export. The export itself is unbounded; it pages until the filter is
// exhausted.
const exportPageSize = 500

// Export handles GET /api/v1/documents/export
// Streams the filtered registry as an xlsx workbook.
func (h *DocumentHandler) Export(c *gin.Context) {
	filter := h.parseFilter(c)

	var docs []domain.GeneratedDocument
	for offset := 0; ; offset += exportPageSize {
		page, total, err := h.documentService.List(c.Request.Context(), filter, offset, exportPageSize)
		if err != nil {
			HandleError(c, err)
			return
		}
		docs = append(docs, page...)
		if len(page) == 0 || len(docs) >= total {
			break
		}
	}

	rows := make([]export.RegistryRow, 0, len(docs))
	companies := map[uuid.UUID]string{}
	templates := map[uuid.UUID]string{}
	for _, doc := range docs {
		companyName, known := companies[doc.CompanyID]
		if !known {
			if company, err := h.companyService.GetByID(c.Request.Context(), doc.CompanyID); err == nil {
				companyName = company.LegalName
			}
			companies[doc.CompanyID] = companyName
		}
		templateName, known := templates[doc.TemplateID]
		if !known {
			if tpl, err := h.templateService.GetByID(c.Request.Context(), doc.TemplateID); err == nil {
				templateName = tpl.Name
			}
			templates[doc.TemplateID] = templateName
		}
		rows = append(rows, export.RegistryRow{
			Document:     doc,
			CompanyName:  companyName,
			TemplateName: templateName,
		})
	}

	workbook, err := export.RegistryWorkbook(rows)
	if err != nil {
		HandleError(c, err)
		return
	}

	fileName := fmt.Sprintf("documentos_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, export.XlsxContentType, workbook)
}

func (h *DocumentHandler) parseFilter(c *gin.Context) port.DocumentFilter {
	filter := port.DocumentFilter{
		Status:   domain.DocumentStatus(c.Query("status")),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if id, err := uuid.Parse(c.Query("company_id")); err == nil {
		filter.CompanyID = id
	}
	if id, err := uuid.Parse(c.Query("template_id")); err == nil {
		filter.TemplateID = id
	}
	return filter
}
