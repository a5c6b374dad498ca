package handler

import (
	"github.com/gin-gonic/gin"

	"gestdoc/internal/render"
)

// PlaceholderHandler exposes the supported placeholder catalog so template
// authors can see exactly which tokens a .docx may use.
type PlaceholderHandler struct{}

// NewPlaceholderHandler creates a new PlaceholderHandler.
func NewPlaceholderHandler() *PlaceholderHandler {
	return &PlaceholderHandler{}
}

// List handles GET /api/v1/placeholders
func (h *PlaceholderHandler) List(c *gin.Context) {
	RespondOK(c, render.Catalog)
}
