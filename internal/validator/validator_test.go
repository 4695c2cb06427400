package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type samplePayload struct {
	SubjectName string `json:"subjectName" binding:"required"`
	Description string `json:"description"`
}

func bindBody(t *testing.T, body string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Setup()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/subjects", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst samplePayload
	return Bind(c, &dst)
}

func TestBind(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"valid payload", `{"subjectName":"Math"}`, ""},
		{"missing required field", `{"description":"x"}`, "Missing field: subjectName"},
		{"empty required field", `{"subjectName":""}`, "Missing field: subjectName"},
		{"syntax error", `{"subjectName":`, "Invalid JSON payload"},
		{"wrong type", `{"subjectName":42}`, "Invalid JSON payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bindBody(t, tt.body); got != tt.want {
				t.Errorf("Bind() = %q, want %q", got, tt.want)
			}
		})
	}
}
