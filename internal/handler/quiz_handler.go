package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cybermcq/mcq-backend/internal/response"
	"github.com/cybermcq/mcq-backend/internal/service"
)

// QuizHandler serves the public quiz endpoint.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Get godoc
// GET /quiz?count=&subjectId=
func (h *QuizHandler) Get(c *gin.Context) {
	count := queryInt(c, "count", service.DefaultQuizCount)

	quiz, err := h.quizService.Compose(c.Request.Context(), count, c.Query("subjectId"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quiz)
}
