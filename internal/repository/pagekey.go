package repository

import "encoding/json"

// Continuation tokens are the JSON form of the store's last-evaluated
// primary key. Callers pass them back verbatim; the structure is not part
// of the API contract.

type subjectLastKey struct {
	SubjectID string `json:"subjectId"`
}

type questionLastKey struct {
	QuestionID string `json:"questionId"`
}

// EncodeSubjectToken serializes the last-seen subject key.
func EncodeSubjectToken(subjectID string) string {
	b, _ := json.Marshal(subjectLastKey{SubjectID: subjectID})
	return string(b)
}

// DecodeSubjectToken parses a continuation token back into a subject key.
func DecodeSubjectToken(token string) (string, error) {
	var key subjectLastKey
	if err := json.Unmarshal([]byte(token), &key); err != nil || key.SubjectID == "" {
		return "", ErrBadPageToken
	}
	return key.SubjectID, nil
}

// EncodeQuestionToken serializes the last-seen question key.
func EncodeQuestionToken(questionID string) string {
	b, _ := json.Marshal(questionLastKey{QuestionID: questionID})
	return string(b)
}

// DecodeQuestionToken parses a continuation token back into a question key.
func DecodeQuestionToken(token string) (string, error) {
	var key questionLastKey
	if err := json.Unmarshal([]byte(token), &key); err != nil || key.QuestionID == "" {
		return "", ErrBadPageToken
	}
	return key.QuestionID, nil
}
