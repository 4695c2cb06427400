package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cybermcq/mcq-backend/internal/repository"
	"github.com/cybermcq/mcq-backend/internal/response"
	"github.com/cybermcq/mcq-backend/internal/service"
)

// writeError maps domain and store errors onto the status taxonomy:
// validation 400, absent 404, uniqueness 409, anything unexpected 500 with
// the raw failure message.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingSubjectName),
		errors.Is(err, service.ErrNoUpdatableFields),
		errors.Is(err, service.ErrInvalidSubjectID),
		errors.Is(err, service.ErrBadOptions),
		errors.Is(err, service.ErrBadAnswerIndex),
		errors.Is(err, service.ErrSubjectHasQuestions),
		errors.Is(err, service.ErrBadPageToken):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSubjectNameTaken),
		errors.Is(err, service.ErrQuestionIDTaken):
		response.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, response.MsgNotFound)
	default:
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}
