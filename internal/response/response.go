package response

import "github.com/gin-gonic/gin"

// Canonical error messages shared by handlers and middleware. The wire
// contract is a plain {"error": "<message>"} body; admin gating reuses
// MsgNotFound so a missing grant is indistinguishable from a missing
// resource.
const (
	MsgNotFound          = "Not found"
	MsgRouteNotFound     = "Route not found"
	MsgQuestionsRequired = "questions array is required"
	MsgTooManyRequests   = "Too many requests; slow down"
)

// JSON writes a success body. A nil body serializes as {} so every
// response carries a JSON object.
func JSON(c *gin.Context, status int, body any) {
	if body == nil {
		body = gin.H{}
	}
	c.JSON(status, body)
}

// Error writes the standard error body.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortError aborts the middleware chain with the standard error body.
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
