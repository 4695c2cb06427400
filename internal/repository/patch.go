package repository

import "github.com/cybermcq/mcq-backend/internal/model"

// SubjectPatch is a partial subject update; nil fields are left unchanged.
// UpdatedAt is always written.
type SubjectPatch struct {
	SubjectName *string
	Description *string
	UpdatedAt   model.Timestamp
}

// QuestionPatch is a partial question update; nil fields are left
// unchanged. SubjectName travels with SubjectID so the denormalized name
// is refreshed in the same write.
type QuestionPatch struct {
	Question    *string
	Options     *[]string
	AnswerIndex *int
	Tags        *[]string
	SubjectID   *string
	SubjectName *string
	UpdatedAt   model.Timestamp
}
