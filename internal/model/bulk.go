package model

// BulkImportRequest wraps the rows of a bulk question upload.
type BulkImportRequest struct {
	Questions []BulkQuestionRow `json:"questions"`
}

// BulkQuestionRow is one row of a bulk upload. Subject is the subject's
// *name* (not an id); an unknown name creates the subject. The required
// fields are pointers so an absent field is distinguishable from a zero
// value when building row errors.
type BulkQuestionRow struct {
	QuestionID  string    `json:"questionId"`
	Question    *string   `json:"question"`
	Options     *[]string `json:"options"`
	AnswerIndex *int      `json:"answerIndex"`
	Subject     *string   `json:"subject"`
	Tags        []string  `json:"tags"`
}

// Row outcome statuses.
const (
	RowStatusCreated = "created"
	RowStatusSkipped = "skipped"
)

// RowResult is the per-row outcome of a bulk import.
type RowResult struct {
	QuestionID string `json:"questionId"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	Subject    string `json:"subject"`
}

// ImportReport aggregates a bulk import run. Rows with a caller-supplied
// questionId are idempotent across re-runs (they come back skipped); rows
// relying on generated ids are not and re-import as new questions.
type ImportReport struct {
	Processed       int         `json:"processed"`
	Successful      int         `json:"successful"`
	Skipped         int         `json:"skipped"`
	Errors          int         `json:"errors"`
	CreatedSubjects []string    `json:"created_subjects"`
	Results         []RowResult `json:"results"`
	ErrorDetails    []string    `json:"error_details"`
}
