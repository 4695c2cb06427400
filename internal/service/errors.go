package service

import "errors"

// Domain errors. Handlers map these to statuses; the messages are the wire
// contract, so they match the error bodies exactly.
var (
	ErrMissingSubjectName  = errors.New("Missing field: subjectName")
	ErrSubjectNameTaken    = errors.New("Subject name already exists")
	ErrSubjectHasQuestions = errors.New("Subject has questions; delete them first")
	ErrNoUpdatableFields   = errors.New("No updatable fields provided")
	ErrInvalidSubjectID    = errors.New("Invalid subjectId")
	ErrBadOptions          = errors.New("options must be a list of 4 strings")
	ErrBadAnswerIndex      = errors.New("answerIndex must be 0..3")
	ErrQuestionIDTaken     = errors.New("Question already exists")
	ErrBadPageToken        = errors.New("Invalid nextToken")
)
