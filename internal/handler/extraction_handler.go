package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gestdoc/internal/service"
)

// ExtractionHandler handles OCR field-extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// ExtractFromImage handles POST /api/v1/extraction/ocr
// Multipart form with an "image" file part.
func (h *ExtractionHandler) ExtractFromImage(c *gin.Context) {
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

	out, err := h.extractionService.ExtractFromImage(c.Request.Context(), image, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// ExtractFromText handles POST /api/v1/extraction/text
// Accepts already-recognized text and runs field extraction only.
func (h *ExtractionHandler) ExtractFromText(c *gin.Context) {
	var input struct {
		Text string `json:"texto" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	RespondOK(c, h.extractionService.ExtractFromText(input.Text))
}
