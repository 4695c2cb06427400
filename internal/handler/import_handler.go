package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cybermcq/mcq-backend/internal/model"
	"github.com/cybermcq/mcq-backend/internal/response"
	"github.com/cybermcq/mcq-backend/internal/service"
)

// ImportHandler serves the bulk question import endpoint.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Import godoc
// POST /questions/bulk
func (h *ImportHandler) Import(c *gin.Context) {
	var req model.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgQuestionsRequired)
		return
	}
	if len(req.Questions) == 0 {
		response.Error(c, http.StatusBadRequest, response.MsgQuestionsRequired)
		return
	}

	report := h.importService.Import(c.Request.Context(), req.Questions)
	response.JSON(c, http.StatusOK, report)
}
