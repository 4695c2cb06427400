package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cybermcq/mcq-backend/internal/config"
	"github.com/cybermcq/mcq-backend/internal/handler"
	"github.com/cybermcq/mcq-backend/internal/middleware"
	"github.com/cybermcq/mcq-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Subject  *handler.SubjectHandler
	Question *handler.QuestionHandler
	Quiz     *handler.QuizHandler
	Import   *handler.ImportHandler
}

// SetupRouter configures the Gin engine with all routes and middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		msg := "Internal server error"
		switch v := recovered.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		}
		response.AbortError(c, http.StatusInternalServerError, msg)
	}))

	// CORS runs first so preflight requests short-circuit before auth.
	router.Use(middleware.CORS(cfg))
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireAdmin := middleware.RequireAdmin(cfg)
	bulkLimiter := middleware.NewRateLimiter(cfg.BulkRateLimit, cfg.BulkRateInterval)

	// Public routes.
	router.GET("/quiz", handlers.Quiz.Get)
	router.GET("/subjects", handlers.Subject.List)
	router.GET("/subjects/:id", handlers.Subject.Get)

	// Admin routes.
	router.POST("/subjects", requireAdmin, handlers.Subject.Create)
	router.PUT("/subjects/:id", requireAdmin, handlers.Subject.Update)
	router.DELETE("/subjects/:id", requireAdmin, handlers.Subject.Delete)

	router.GET("/questions", requireAdmin, handlers.Question.List)
	router.GET("/questions/:id", requireAdmin, handlers.Question.Get)
	router.POST("/questions", requireAdmin, handlers.Question.Create)
	router.PUT("/questions/:id", requireAdmin, handlers.Question.Update)
	router.DELETE("/questions/:id", requireAdmin, handlers.Question.Delete)

	router.POST("/questions/bulk", requireAdmin, bulkLimiter.Middleware(), handlers.Import.Import)

	// Wrong-method requests also land here: method-not-allowed handling is
	// left off, so they fall through to NoRoute and get the same 404 body.
	router.NoRoute(func(c *gin.Context) {
		response.JSON(c, http.StatusNotFound, gin.H{
			"error": response.MsgRouteNotFound,
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
