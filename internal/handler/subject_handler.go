package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cybermcq/mcq-backend/internal/model"
	"github.com/cybermcq/mcq-backend/internal/response"
	"github.com/cybermcq/mcq-backend/internal/service"
	"github.com/cybermcq/mcq-backend/internal/validator"
)

// SubjectHandler serves the /subjects routes.
type SubjectHandler struct {
	subjectService *service.SubjectService
}

// NewSubjectHandler creates a new SubjectHandler.
func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// List godoc
// GET /subjects?limit=&nextToken=
func (h *SubjectHandler) List(c *gin.Context) {
	page, err := h.subjectService.List(c.Request.Context(), queryInt(c, "limit", 0), c.Query("nextToken"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// Create godoc
// POST /subjects (admin)
func (h *SubjectHandler) Create(c *gin.Context) {
	var req model.CreateSubjectRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	subject, err := h.subjectService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, subject)
}

// Get godoc
// GET /subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	subject, err := h.subjectService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subject)
}

// Update godoc
// PUT /subjects/:id (admin)
func (h *SubjectHandler) Update(c *gin.Context) {
	var req model.UpdateSubjectRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	subject, err := h.subjectService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subject)
}

// Delete godoc
// DELETE /subjects/:id (admin)
func (h *SubjectHandler) Delete(c *gin.Context) {
	if err := h.subjectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
