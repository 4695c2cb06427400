package model

// Subject is a named category grouping quiz questions. SubjectName is
// unique across live subjects (case-sensitive, enforced by the service
// layer); Slug is a derived, best-effort-unique URL fragment set only for
// subjects auto-created by bulk import.
type Subject struct {
	SubjectID   string    `json:"subjectId"`
	SubjectName string    `json:"subjectName"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// CreateSubjectRequest is the payload for creating a subject. SubjectID is
// optional; one is generated when absent.
type CreateSubjectRequest struct {
	SubjectID   string `json:"subjectId"`
	SubjectName string `json:"subjectName" binding:"required"`
	Description string `json:"description"`
}

// UpdateSubjectRequest carries a partial update; only non-nil fields change.
type UpdateSubjectRequest struct {
	SubjectName *string `json:"subjectName"`
	Description *string `json:"description"`
}

// SubjectPage is one page of a subject listing. NextToken is the opaque
// continuation cursor; null when no further pages exist.
type SubjectPage struct {
	Items     []Subject `json:"items"`
	NextToken *string   `json:"nextToken"`
}
