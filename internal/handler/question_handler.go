package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cybermcq/mcq-backend/internal/model"
	"github.com/cybermcq/mcq-backend/internal/response"
	"github.com/cybermcq/mcq-backend/internal/service"
	"github.com/cybermcq/mcq-backend/internal/validator"
)

// QuestionHandler serves the admin-only /questions routes.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// List godoc
// GET /questions?limit=&nextToken=&subjectId=
func (h *QuestionHandler) List(c *gin.Context) {
	page, err := h.questionService.List(c.Request.Context(),
		queryInt(c, "limit", 0), c.Query("nextToken"), c.Query("subjectId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// Create godoc
// POST /questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req model.CreateQuestionRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, question)
}

// Get godoc
// GET /questions/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	question, err := h.questionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, question)
}

// Update godoc
// PUT /questions/:id
func (h *QuestionHandler) Update(c *gin.Context) {
	var req model.UpdateQuestionRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, question)
}

// Delete godoc
// DELETE /questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	if err := h.questionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
