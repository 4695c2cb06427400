package model

// Question is a single multiple-choice item: exactly 4 options, one
// correct answer index. SubjectName is a denormalized snapshot of the
// referenced subject's name at the question's last write; it may go stale
// if the subject is later renamed.
type Question struct {
	QuestionID  string    `json:"questionId"`
	Question    string    `json:"question"`
	Options     []string  `json:"options"`
	AnswerIndex int       `json:"answerIndex"`
	Tags        []string  `json:"tags"`
	SubjectID   string    `json:"subjectId"`
	SubjectName string    `json:"subjectName"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// CreateQuestionRequest is the payload for creating a question. QuestionID
// is optional; one is generated when absent. An absent options field fails
// the required binding ("Missing field: options"); a present list of the
// wrong length passes binding (required only rejects nil slices) and gets
// the shape message from the service.
type CreateQuestionRequest struct {
	QuestionID  string   `json:"questionId"`
	Question    string   `json:"question" binding:"required"`
	Options     []string `json:"options" binding:"required"`
	AnswerIndex *int     `json:"answerIndex" binding:"required"`
	SubjectID   string   `json:"subjectId" binding:"required"`
	Tags        []string `json:"tags"`
}

// UpdateQuestionRequest carries a partial update; only non-nil fields change.
// Changing SubjectID also refreshes the denormalized SubjectName.
type UpdateQuestionRequest struct {
	Question    *string   `json:"question"`
	Options     *[]string `json:"options"`
	AnswerIndex *int      `json:"answerIndex"`
	Tags        *[]string `json:"tags"`
	SubjectID   *string   `json:"subjectId"`
}

// QuestionPage is one page of a question listing.
type QuestionPage struct {
	Items     []Question `json:"items"`
	NextToken *string    `json:"nextToken"`
}

// QuizQuestion is the quiz-play projection of a question: no tags, no
// timestamps, options already shuffled with the answer index remapped.
type QuizQuestion struct {
	QuestionID  string   `json:"questionId"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

// Quiz is the rendered quiz response.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
	Total     int            `json:"total"`
}
