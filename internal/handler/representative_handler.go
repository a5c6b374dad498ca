package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gestdoc/internal/service"
)

// RepresentativeHandler handles legal-representative endpoints.
type RepresentativeHandler struct {
	representativeService service.RepresentativeService
}

// NewRepresentativeHandler creates a new RepresentativeHandler.
func NewRepresentativeHandler(representativeService service.RepresentativeService) *RepresentativeHandler {
	return &RepresentativeHandler{representativeService: representativeService}
}

// Create handles POST /api/v1/representatives
func (h *RepresentativeHandler) Create(c *gin.Context) {
	var input service.RepresentativeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rep, err := h.representativeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rep)
}

// GetByID handles GET /api/v1/representatives/:id
func (h *RepresentativeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid representative ID")
		return
	}

	rep, err := h.representativeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rep)
}

// Update handles PUT /api/v1/representatives/:id
func (h *RepresentativeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid representative ID")
		return
	}

	var input service.RepresentativeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rep, err := h.representativeService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rep)
}

// Delete handles DELETE /api/v1/representatives/:id
func (h *RepresentativeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid representative ID")
		return
	}

	if err := h.representativeService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": id})
}
